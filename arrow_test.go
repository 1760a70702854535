package duckext

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/require"

	"github.com/marcboeker/duckext/mapping"
)

func TestArrowType(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	intType := newTestType(t, TYPE_INTEGER)
	defer intType.Close()
	textType := newTestType(t, TYPE_VARCHAR)
	defer textType.Close()

	t.Run("primitive", func(t *testing.T) {
		dt, err := ArrowType(textType)
		require.NoError(t, err)
		require.True(t, arrow.TypeEqual(arrow.BinaryTypes.String, dt))
	})

	t.Run("struct", func(t *testing.T) {
		lt, err := NewStructType([]string{"x", "s"}, []*LogicalType{intType, textType})
		require.NoError(t, err)
		defer lt.Close()

		dt, err := ArrowType(lt)
		require.NoError(t, err)
		expected := arrow.StructOf(
			arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
			arrow.Field{Name: "s", Type: arrow.BinaryTypes.String, Nullable: true},
		)
		require.True(t, arrow.TypeEqual(expected, dt), dt.String())
	})

	t.Run("union", func(t *testing.T) {
		lt, err := NewUnionType([]string{"a", "b"}, []*LogicalType{intType, textType})
		require.NoError(t, err)
		defer lt.Close()

		dt, err := ArrowType(lt)
		require.NoError(t, err)
		require.Equal(t, arrow.DENSE_UNION, dt.ID())

		union := dt.(*arrow.DenseUnionType)
		require.Equal(t, []arrow.UnionTypeCode{0, 1}, union.TypeCodes())
		require.Equal(t, "a", union.Fields()[0].Name)
		require.True(t, arrow.TypeEqual(arrow.BinaryTypes.String, union.Fields()[1].Type))
	})

	t.Run("list and map", func(t *testing.T) {
		list, err := NewListType(intType)
		require.NoError(t, err)
		defer list.Close()
		m, err := NewMapType(textType, list)
		require.NoError(t, err)
		defer m.Close()

		dt, err := ArrowType(m)
		require.NoError(t, err)
		require.True(t, arrow.TypeEqual(arrow.MapOf(arrow.BinaryTypes.String, arrow.ListOf(arrow.PrimitiveTypes.Int32)), dt))
	})

	t.Run("decimal", func(t *testing.T) {
		decimal := NewDecimalType(10, 2)
		defer decimal.Close()

		dt, err := ArrowType(decimal)
		require.NoError(t, err)
		require.True(t, arrow.TypeEqual(&arrow.Decimal128Type{Precision: 10, Scale: 2}, dt))
	})
}

func TestErrArrowType(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	_, err := ArrowType(nil)
	testError(t, err, errAPI.Error(), errLogicalTypeIsNil.Error())

	bit := newTestType(t, TYPE_BIT)
	defer bit.Close()
	intType := newTestType(t, TYPE_INTEGER)
	defer intType.Close()

	lt, err := NewStructType([]string{"flags", "n"}, []*LogicalType{bit, intType})
	require.NoError(t, err)
	defer lt.Close()

	_, err = ArrowType(lt)
	testError(t, err, errAPI.Error(), unsupportedTypeErrMsg, "BIT", `"flags"`)
}
