package duckext

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/marcboeker/duckext/mapping"
)

// maxUnionMembers is DuckDB's upper bound for the number of UNION members.
const maxUnionMembers = 256

// LogicalType is a handle to a DuckDB logical type.
// The caller owns every LogicalType returned by this package and must release it with Close.
type LogicalType struct {
	lt mapping.LogicalType
}

// NewLogicalType returns a new primitive logical type.
// Nested types have their own constructors, e.g., NewStructType or NewUnionType.
func NewLogicalType(t Type) (*LogicalType, error) {
	lt, err := newLogicalType(t)
	if err != nil {
		return nil, getError(errAPI, err)
	}
	return &LogicalType{lt: lt}, nil
}

// newLogicalType creates the native type for a primitive type id.
func newLogicalType(t Type) (mapping.LogicalType, error) {
	if _, ok := nestedTypes[t]; ok {
		return mapping.LogicalType{}, tryOtherFuncError(nestedConstructor(t))
	}
	if _, ok := typeToStringMap[t]; !ok || t == TYPE_INVALID {
		return mapping.LogicalType{}, unsupportedTypeError(t.String())
	}
	return mapping.CreateLogicalType(mapping.Type(t)), nil
}

// NewDecimalType returns a new DECIMAL(width, scale) logical type.
func NewDecimalType(width uint8, scale uint8) *LogicalType {
	return &LogicalType{lt: mapping.CreateDecimalType(width, scale)}
}

// NewListType returns a new LIST logical type with child as its element type.
// child is not consumed.
func NewListType(child *LogicalType) (*LogicalType, error) {
	if child.isNil() {
		return nil, getError(errAPI, errLogicalTypeIsNil)
	}
	return &LogicalType{lt: mapping.CreateListType(child.lt)}, nil
}

// NewMapType returns a new MAP logical type. key and value are not consumed.
func NewMapType(key *LogicalType, value *LogicalType) (*LogicalType, error) {
	if key.isNil() || value.isNil() {
		return nil, getError(errAPI, errLogicalTypeIsNil)
	}
	return &LogicalType{lt: mapping.CreateMapType(key.lt, value.lt)}, nil
}

// NewStructType returns a new STRUCT logical type.
// Its fields are exactly the (names[i], types[i]) pairs, in order.
// Duplicate names are left to DuckDB. The child types are not consumed.
func NewStructType(names []string, types []*LogicalType) (*LogicalType, error) {
	members, err := collectMembers(names, types)
	if err != nil {
		return nil, getError(errAPI, err)
	}
	return &LogicalType{lt: mapping.CreateStructType(members, names)}, nil
}

// NewUnionType returns a new UNION logical type.
// Its members are exactly the (names[i], types[i]) pairs, in order.
// The child types are not consumed.
func NewUnionType(names []string, types []*LogicalType) (*LogicalType, error) {
	members, err := collectMembers(names, types)
	if err != nil {
		return nil, getError(errAPI, err)
	}
	if len(members) > maxUnionMembers {
		return nil, getError(errAPI, errTooManyMembers)
	}
	return &LogicalType{lt: mapping.CreateUnionType(members, names)}, nil
}

// collectMembers turns the parallel names and types slices into the member list
// that DuckDB's nested type constructors expect.
func collectMembers(names []string, types []*LogicalType) ([]mapping.LogicalType, error) {
	if len(names) != len(types) {
		return nil, memberCountError(len(names), len(types))
	}
	if len(types) == 0 {
		return nil, errNoMembers
	}

	members := make([]mapping.LogicalType, len(types))
	for i, t := range types {
		if t.isNil() {
			return nil, addIndexToError(errMemberTypeIsNil, i)
		}
		members[i] = t.lt
	}
	return members, nil
}

// ID returns the type id of the logical type.
func (t *LogicalType) ID() Type {
	if t.isNil() {
		return TYPE_INVALID
	}
	return Type(mapping.GetTypeId(t.lt))
}

// ChildCount returns the number of STRUCT fields or UNION members.
// It returns 0 for all other types.
func (t *LogicalType) ChildCount() int {
	switch t.ID() {
	case TYPE_STRUCT:
		return int(mapping.StructTypeChildCount(t.lt))
	case TYPE_UNION:
		return int(mapping.UnionTypeMemberCount(t.lt))
	}
	return 0
}

// ChildName returns the name of the i-th STRUCT field or UNION member.
func (t *LogicalType) ChildName(i int) (string, error) {
	if err := t.checkChild(i); err != nil {
		return "", err
	}
	return t.childName(i), nil
}

// ChildType returns the type of the i-th STRUCT field or UNION member.
// The returned type is a new handle that the caller must close.
func (t *LogicalType) ChildType(i int) (*LogicalType, error) {
	if err := t.checkChild(i); err != nil {
		return nil, err
	}
	return t.childType(i), nil
}

// childName and childType expect a STRUCT or UNION and an index in range.
func (t *LogicalType) childName(i int) string {
	if t.ID() == TYPE_UNION {
		return mapping.UnionTypeMemberName(t.lt, mapping.IdxT(i))
	}
	return mapping.StructTypeChildName(t.lt, mapping.IdxT(i))
}

func (t *LogicalType) childType(i int) *LogicalType {
	if t.ID() == TYPE_UNION {
		return &LogicalType{lt: mapping.UnionTypeMemberType(t.lt, mapping.IdxT(i))}
	}
	return &LogicalType{lt: mapping.StructTypeChildType(t.lt, mapping.IdxT(i))}
}

func (t *LogicalType) checkChild(i int) error {
	switch t.ID() {
	case TYPE_STRUCT, TYPE_UNION:
	default:
		return getError(errAPI, errNotNested)
	}
	if i < 0 || i >= t.ChildCount() {
		return getError(errAPI, addIndexToError(errChildIndex, i))
	}
	return nil
}

// Clone returns a new handle with the same type id.
// Like the C API's type id constructor, it only preserves primitive types.
func (t *LogicalType) Clone() (*LogicalType, error) {
	return NewLogicalType(t.ID())
}

// String returns the SQL spelling of the type, e.g., STRUCT("x" INTEGER, "y" VARCHAR).
func (t *LogicalType) String() string {
	var b strings.Builder
	t.writeSQL(&b)
	return b.String()
}

func (t *LogicalType) writeSQL(b *strings.Builder) {
	id := t.ID()
	switch id {
	case TYPE_DECIMAL:
		width, scale := t.decimalProperties()
		b.WriteString("DECIMAL(")
		b.WriteString(strconv.Itoa(int(width)))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(int(scale)))
		b.WriteByte(')')

	case TYPE_LIST:
		child := t.listChild()
		child.writeSQL(b)
		child.Close()
		b.WriteString("[]")

	case TYPE_MAP:
		key, value := t.mapChildren()
		b.WriteString("MAP(")
		key.writeSQL(b)
		b.WriteString(", ")
		value.writeSQL(b)
		b.WriteByte(')')
		key.Close()
		value.Close()

	case TYPE_STRUCT, TYPE_UNION:
		b.WriteString(id.String())
		b.WriteByte('(')
		for i := 0; i < t.ChildCount(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quoteIdentifier(t.childName(i)))
			b.WriteByte(' ')

			child := t.childType(i)
			child.writeSQL(b)
			child.Close()
		}
		b.WriteByte(')')

	default:
		b.WriteString(id.String())
	}
}

func (t *LogicalType) decimalProperties() (uint8, uint8) {
	return mapping.DecimalWidth(t.lt), mapping.DecimalScale(t.lt)
}

func (t *LogicalType) listChild() *LogicalType {
	return &LogicalType{lt: mapping.ListTypeChildType(t.lt)}
}

func (t *LogicalType) mapChildren() (*LogicalType, *LogicalType) {
	return &LogicalType{lt: mapping.MapTypeKeyType(t.lt)}, &LogicalType{lt: mapping.MapTypeValueType(t.lt)}
}

// Close releases the logical type. Closing a type twice is a no-op.
func (t *LogicalType) Close() {
	if t.isNil() {
		return
	}
	mapping.DestroyLogicalType(&t.lt)
	t.lt.Ptr = nil
}

func (t *LogicalType) isNil() bool {
	return t == nil || t.lt.Ptr == nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func nestedConstructor(t Type) string {
	switch t {
	case TYPE_DECIMAL:
		return funcName(NewDecimalType)
	case TYPE_LIST:
		return funcName(NewListType)
	case TYPE_MAP:
		return funcName(NewMapType)
	case TYPE_STRUCT:
		return funcName(NewStructType)
	case TYPE_UNION:
		return funcName(NewUnionType)
	}
	return "a nested type constructor"
}

func funcName(i any) string {
	return runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
}
