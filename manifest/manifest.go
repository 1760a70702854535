// Package manifest loads extension definitions from HCL files.
//
// A manifest declares STRUCT and UNION types and scalar functions:
//
//	struct "point" {
//	  field "x" { type = INTEGER }
//	  field "y" { type = INTEGER }
//	}
//
//	union "shape" {
//	  member "p"     { type = point }
//	  member "label" { type = "VARCHAR" }
//	}
//
//	scalar_function "my_func" { returns = BIGINT }
//
// Type expressions are strings. Every DuckDB type name and every declared type name is also
// available as a bare identifier.
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/marcboeker/duckext"
	"github.com/marcboeker/duckext/internal/ctxlog"
)

// Kind distinguishes STRUCT from UNION declarations.
type Kind string

const (
	KindStruct Kind = "struct"
	KindUnion  Kind = "union"
)

// Manifest is the decoded content of a manifest file.
type Manifest struct {
	Path      string
	Types     []*TypeDecl
	Functions []*FunctionDecl
}

// TypeDecl declares a named STRUCT or UNION type.
type TypeDecl struct {
	Kind    Kind
	Name    string
	Members []MemberDecl
}

// MemberDecl is a STRUCT field or a UNION member.
type MemberDecl struct {
	Name string
	Type string
}

// FunctionDecl declares a scalar function.
type FunctionDecl struct {
	Name    string
	Returns string
}

type hclFile struct {
	Structs   []*hclType     `hcl:"struct,block"`
	Unions    []*hclUnion    `hcl:"union,block"`
	Functions []*hclFunction `hcl:"scalar_function,block"`
}

type hclType struct {
	Name    string       `hcl:"name,label"`
	Members []*hclMember `hcl:"field,block"`
}

type hclUnion struct {
	Name    string       `hcl:"name,label"`
	Members []*hclMember `hcl:"member,block"`
}

type hclMember struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type"`
}

type hclFunction struct {
	Name    string `hcl:"name,label"`
	Returns string `hcl:"returns"`
}

var declSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: string(KindStruct), LabelNames: []string{"name"}},
		{Type: string(KindUnion), LabelNames: []string{"name"}},
		{Type: "scalar_function", LabelNames: []string{"name"}},
	},
}

// Load parses and decodes the manifest file at path.
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading manifest", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}
	return decode(path, file.Body)
}

// Parse decodes a manifest from src. filename is only used in diagnostics.
func Parse(filename string, src []byte) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}
	return decode(filename, file.Body)
}

func decode(path string, body hcl.Body) (*Manifest, error) {
	evalCtx, err := evalContext(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(body, evalCtx, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	m := &Manifest{Path: path}
	for _, s := range parsed.Structs {
		m.Types = append(m.Types, newTypeDecl(KindStruct, s.Name, s.Members))
	}
	for _, u := range parsed.Unions {
		m.Types = append(m.Types, newTypeDecl(KindUnion, u.Name, u.Members))
	}
	for _, f := range parsed.Functions {
		m.Functions = append(m.Functions, &FunctionDecl{Name: f.Name, Returns: f.Returns})
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return m, nil
}

// evalContext declares one string variable per DuckDB type name and per declared type name,
// so that type expressions may omit the quotes.
func evalContext(body hcl.Body) (*hcl.EvalContext, error) {
	content, _, diags := body.PartialContent(declSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	vars := map[string]cty.Value{}
	for _, name := range duckext.TypeNames() {
		vars[name] = cty.StringVal(name)
	}
	for _, block := range content.Blocks {
		if block.Type == string(KindStruct) || block.Type == string(KindUnion) {
			vars[block.Labels[0]] = cty.StringVal(block.Labels[0])
		}
	}
	return &hcl.EvalContext{Variables: vars}, nil
}

func newTypeDecl(kind Kind, name string, members []*hclMember) *TypeDecl {
	decl := &TypeDecl{Kind: kind, Name: name}
	for _, m := range members {
		decl.Members = append(decl.Members, MemberDecl{Name: m.Name, Type: m.Type})
	}
	return decl
}

func (m *Manifest) validate() error {
	seen := map[string]struct{}{}
	for _, t := range m.Types {
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("%w: %q", errDuplicateType, t.Name)
		}
		seen[t.Name] = struct{}{}
		if len(t.Members) == 0 {
			return fmt.Errorf("%w: %s %q", errNoMembers, t.Kind, t.Name)
		}
	}

	seen = map[string]struct{}{}
	for _, f := range m.Functions {
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: %q", errDuplicateFunction, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// Lookup returns the type declaration called name.
func (m *Manifest) Lookup(name string) (*TypeDecl, bool) {
	for _, t := range m.Types {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
