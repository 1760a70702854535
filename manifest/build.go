package manifest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcboeker/duckext"
	"github.com/marcboeker/duckext/internal/ctxlog"
)

var (
	errDuplicateType     = errors.New("duplicate type name")
	errDuplicateFunction = errors.New("duplicate function name")
	errNoMembers         = errors.New("type declares no members")
	errTypeCycle         = errors.New("type refers to itself")
)

// Extension holds the types and functions built from a manifest.
// The caller must close it.
type Extension struct {
	Types     []*NamedType
	Functions []*duckext.ScalarFunction
}

// NamedType is a built STRUCT or UNION type.
type NamedType struct {
	Name string
	Type *duckext.LogicalType
}

// Build creates one logical type per type declaration and one scalar function per function
// declaration. Members may refer to other declared types by name.
func (m *Manifest) Build() (*Extension, error) {
	b := builder{
		manifest: m,
		built:    map[string]*duckext.LogicalType{},
		visiting: map[string]bool{},
	}
	ext := &Extension{}

	for _, decl := range m.Types {
		if _, err := b.named(decl); err != nil {
			b.close()
			return nil, err
		}
	}
	for _, decl := range m.Types {
		ext.Types = append(ext.Types, &NamedType{Name: decl.Name, Type: b.built[decl.Name]})
	}

	for _, decl := range m.Functions {
		returnType, err := duckext.ParseType(decl.Returns)
		if err != nil {
			ext.Close()
			return nil, fmt.Errorf("scalar_function %q: %w", decl.Name, err)
		}
		f, err := duckext.NewScalarFunctionBuilder(decl.Name, returnType).Build()
		if err != nil {
			ext.Close()
			return nil, fmt.Errorf("scalar_function %q: %w", decl.Name, err)
		}
		ext.Functions = append(ext.Functions, f)
	}
	return ext, nil
}

type builder struct {
	manifest *Manifest
	built    map[string]*duckext.LogicalType
	visiting map[string]bool
}

// named builds decl once and caches the result.
func (b *builder) named(decl *TypeDecl) (*duckext.LogicalType, error) {
	if t, ok := b.built[decl.Name]; ok {
		return t, nil
	}
	if b.visiting[decl.Name] {
		return nil, fmt.Errorf("%w: %q", errTypeCycle, decl.Name)
	}
	b.visiting[decl.Name] = true
	defer delete(b.visiting, decl.Name)

	names := make([]string, len(decl.Members))
	types := make([]*duckext.LogicalType, len(decl.Members))
	var owned []*duckext.LogicalType
	defer func() {
		for _, t := range owned {
			t.Close()
		}
	}()

	for i, member := range decl.Members {
		names[i] = member.Name
		t, isOwned, err := b.member(member.Type)
		if err != nil {
			return nil, fmt.Errorf("%s %q: member %q: %w", decl.Kind, decl.Name, member.Name, err)
		}
		if isOwned {
			owned = append(owned, t)
		}
		types[i] = t
	}

	var t *duckext.LogicalType
	var err error
	switch decl.Kind {
	case KindStruct:
		t, err = duckext.NewStructType(names, types)
	case KindUnion:
		t, err = duckext.NewUnionType(names, types)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", decl.Kind, decl.Name, err)
	}
	b.built[decl.Name] = t
	return t, nil
}

// member resolves a member type expression. It returns true if the caller owns the result.
func (b *builder) member(expr string) (*duckext.LogicalType, bool, error) {
	if decl, ok := b.manifest.Lookup(expr); ok {
		t, err := b.named(decl)
		return t, false, err
	}
	if inner, ok := strings.CutSuffix(strings.TrimSpace(expr), "[]"); ok {
		child, isOwned, err := b.member(inner)
		if err != nil {
			return nil, false, err
		}
		if isOwned {
			defer child.Close()
		}
		list, err := duckext.NewListType(child)
		return list, true, err
	}

	id, err := duckext.ParseType(expr)
	if err != nil {
		return nil, false, err
	}
	t, err := duckext.NewLogicalType(id)
	return t, true, err
}

func (b *builder) close() {
	for _, t := range b.built {
		t.Close()
	}
}

// Register creates one SQL type per named type and registers every scalar function on conn.
func (e *Extension) Register(ctx context.Context, conn *duckext.Connection) error {
	logger := ctxlog.FromContext(ctx)

	for _, t := range e.Types {
		query := fmt.Sprintf("CREATE TYPE %s AS %s", quoteIdentifier(t.Name), t.Type)
		if err := conn.Exec(query); err != nil {
			return fmt.Errorf("failed to create type %q: %w", t.Name, err)
		}
		logger.Info("Created type", "name", t.Name, "type", t.Type.String())
	}

	for _, f := range e.Functions {
		if err := conn.RegisterScalarFunction(f); err != nil {
			return fmt.Errorf("failed to register scalar function %q: %w", f.Name(), err)
		}
		logger.Info("Registered scalar function", "name", f.Name(), "returns", f.ReturnType().String())
	}
	return nil
}

// Close releases all types and functions.
func (e *Extension) Close() {
	for _, t := range e.Types {
		t.Type.Close()
	}
	for _, f := range e.Functions {
		f.Close()
	}
}

// Register builds m and registers the result on conn.
func (m *Manifest) Register(ctx context.Context, conn *duckext.Connection) error {
	ext, err := m.Build()
	if err != nil {
		return err
	}
	defer ext.Close()
	return ext.Register(ctx, conn)
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
