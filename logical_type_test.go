package duckext

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcboeker/duckext/mapping"
)

func requireMembers(t *testing.T, lt *LogicalType, names []string, types []Type) {
	require.Equal(t, len(names), lt.ChildCount())
	for i := range names {
		name, err := lt.ChildName(i)
		require.NoError(t, err)
		require.Equal(t, names[i], name)

		child, err := lt.ChildType(i)
		require.NoError(t, err)
		require.Equal(t, types[i], child.ID())
		child.Close()
	}
}

func TestNewStructType(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	intType := newTestType(t, TYPE_INTEGER)
	defer intType.Close()
	textType := newTestType(t, TYPE_VARCHAR)
	defer textType.Close()

	t.Run("single field", func(t *testing.T) {
		lt, err := NewStructType([]string{"x"}, []*LogicalType{intType})
		require.NoError(t, err)
		defer lt.Close()

		require.Equal(t, TYPE_STRUCT, lt.ID())
		requireMembers(t, lt, []string{"x"}, []Type{TYPE_INTEGER})
		require.Equal(t, `STRUCT("x" INTEGER)`, lt.String())
	})

	t.Run("field order", func(t *testing.T) {
		names := []string{"b", "a", "c"}
		lt, err := NewStructType(names, []*LogicalType{textType, intType, textType})
		require.NoError(t, err)
		defer lt.Close()

		requireMembers(t, lt, names, []Type{TYPE_VARCHAR, TYPE_INTEGER, TYPE_VARCHAR})
		require.Equal(t, `STRUCT("b" VARCHAR, "a" INTEGER, "c" VARCHAR)`, lt.String())
	})

	t.Run("quoted names", func(t *testing.T) {
		lt, err := NewStructType([]string{`my "field"`}, []*LogicalType{intType})
		require.NoError(t, err)
		defer lt.Close()
		require.Equal(t, `STRUCT("my ""field""" INTEGER)`, lt.String())
	})
}

func TestNewUnionType(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	intType := newTestType(t, TYPE_INTEGER)
	defer intType.Close()
	textType := newTestType(t, TYPE_VARCHAR)
	defer textType.Close()

	lt, err := NewUnionType([]string{"a", "b"}, []*LogicalType{intType, textType})
	require.NoError(t, err)
	defer lt.Close()

	require.Equal(t, TYPE_UNION, lt.ID())
	requireMembers(t, lt, []string{"a", "b"}, []Type{TYPE_INTEGER, TYPE_VARCHAR})
	require.Equal(t, `UNION("a" INTEGER, "b" VARCHAR)`, lt.String())
}

func TestNestedTypeString(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	intType := newTestType(t, TYPE_INTEGER)
	defer intType.Close()
	textType := newTestType(t, TYPE_VARCHAR)
	defer textType.Close()

	point, err := NewStructType([]string{"x", "y"}, []*LogicalType{intType, intType})
	require.NoError(t, err)
	defer point.Close()

	list, err := NewListType(textType)
	require.NoError(t, err)
	defer list.Close()
	require.Equal(t, "VARCHAR[]", list.String())

	m, err := NewMapType(textType, point)
	require.NoError(t, err)
	defer m.Close()
	require.Equal(t, `MAP(VARCHAR, STRUCT("x" INTEGER, "y" INTEGER))`, m.String())

	decimal := NewDecimalType(18, 3)
	defer decimal.Close()
	require.Equal(t, "DECIMAL(18,3)", decimal.String())

	u, err := NewUnionType([]string{"p", "tags"}, []*LogicalType{point, list})
	require.NoError(t, err)
	defer u.Close()
	require.Equal(t, `UNION("p" STRUCT("x" INTEGER, "y" INTEGER), "tags" VARCHAR[])`, u.String())
}

func TestNestedTypeIndependentHandles(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	intType := newTestType(t, TYPE_INTEGER)
	names := []string{"x"}
	types := []*LogicalType{intType}

	first, err := NewStructType(names, types)
	require.NoError(t, err)
	second, err := NewStructType(names, types)
	require.NoError(t, err)
	require.NotEqual(t, first.lt.Ptr, second.lt.Ptr)

	// The children are not consumed.
	intType.Close()
	require.Equal(t, `STRUCT("x" INTEGER)`, first.String())

	first.Close()
	require.Equal(t, `STRUCT("x" INTEGER)`, second.String())
	second.Close()

	// Closing twice is a no-op.
	second.Close()
	require.Equal(t, TYPE_INVALID, second.ID())
}

func TestNestedTypeInCatalog(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	_, conn, closeDB := openTestConn(t)
	defer closeDB()

	intType := newTestType(t, TYPE_INTEGER)
	defer intType.Close()
	textType := newTestType(t, TYPE_VARCHAR)
	defer textType.Close()

	point, err := NewStructType([]string{"x", "y"}, []*LogicalType{intType, intType})
	require.NoError(t, err)
	defer point.Close()
	u, err := NewUnionType([]string{"num", "text"}, []*LogicalType{intType, textType})
	require.NoError(t, err)
	defer u.Close()

	require.NoError(t, conn.Exec(fmt.Sprintf("CREATE TYPE point AS %s", point)))
	require.NoError(t, conn.Exec(fmt.Sprintf("CREATE TYPE num_or_text AS %s", u)))
	require.NoError(t, conn.Exec(`CREATE TABLE shapes (p point, v num_or_text)`))
	require.NoError(t, conn.Exec(`INSERT INTO shapes VALUES ({'x': 1, 'y': 2}, 42::INTEGER), ({'x': 3, 'y': 4}, 'hello')`))

	sum, err := conn.QueryInt64(`SELECT sum(p.x + p.y) FROM shapes`)
	require.NoError(t, err)
	require.Equal(t, int64(10), sum)

	count, err := conn.QueryInt64(`SELECT count(*) FROM shapes WHERE union_tag(v) = 'text'`)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestNewLogicalType(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	lt := newTestType(t, TYPE_BIGINT)
	defer lt.Close()
	require.Equal(t, TYPE_BIGINT, lt.ID())
	require.Equal(t, "BIGINT", lt.String())
	require.Equal(t, 0, lt.ChildCount())

	clone, err := lt.Clone()
	require.NoError(t, err)
	defer clone.Close()
	require.Equal(t, TYPE_BIGINT, clone.ID())
	require.NotEqual(t, lt.lt.Ptr, clone.lt.Ptr)
}

func TestErrLogicalType(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	intType := newTestType(t, TYPE_INTEGER)
	defer intType.Close()

	t.Run("nested type id", func(t *testing.T) {
		lt, err := NewLogicalType(TYPE_STRUCT)
		require.Nil(t, lt)
		testError(t, err, errAPI.Error(), tryOtherFuncErrMsg, "NewStructType")
	})

	t.Run("invalid type id", func(t *testing.T) {
		_, err := NewLogicalType(TYPE_INVALID)
		testError(t, err, errAPI.Error(), unsupportedTypeErrMsg)
	})

	t.Run(errMemberCount.Error(), func(t *testing.T) {
		_, err := NewStructType([]string{"a", "b"}, []*LogicalType{intType})
		testError(t, err, errAPI.Error(), errMemberCount.Error())
		require.ErrorIs(t, err, errMemberCount)
	})

	t.Run(errNoMembers.Error(), func(t *testing.T) {
		_, err := NewUnionType(nil, nil)
		testError(t, err, errAPI.Error(), errNoMembers.Error())
	})

	t.Run(errMemberTypeIsNil.Error(), func(t *testing.T) {
		_, err := NewStructType([]string{"a", "b"}, []*LogicalType{intType, nil})
		testError(t, err, errAPI.Error(), errMemberTypeIsNil.Error(), indexErrMsg+": 1")
	})

	t.Run(errTooManyMembers.Error(), func(t *testing.T) {
		n := maxUnionMembers + 1
		names := make([]string, n)
		types := make([]*LogicalType, n)
		for i := range names {
			names[i] = fmt.Sprintf("m%d", i)
			types[i] = intType
		}
		_, err := NewUnionType(names, types)
		testError(t, err, errAPI.Error(), errTooManyMembers.Error())
	})

	t.Run(errLogicalTypeIsNil.Error(), func(t *testing.T) {
		_, err := NewListType(nil)
		testError(t, err, errAPI.Error(), errLogicalTypeIsNil.Error())
		_, err = NewMapType(intType, &LogicalType{})
		testError(t, err, errAPI.Error(), errLogicalTypeIsNil.Error())
	})

	t.Run(errNotNested.Error(), func(t *testing.T) {
		_, err := intType.ChildName(0)
		testError(t, err, errAPI.Error(), errNotNested.Error())
	})

	t.Run(errChildIndex.Error(), func(t *testing.T) {
		lt, err := NewStructType([]string{"x"}, []*LogicalType{intType})
		require.NoError(t, err)
		defer lt.Close()

		_, err = lt.ChildType(1)
		testError(t, err, errAPI.Error(), errChildIndex.Error())
		_, err = lt.ChildName(-1)
		testError(t, err, errAPI.Error(), errChildIndex.Error())
	})
}
