package duckext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcboeker/duckext/mapping"
)

func TestScalarFunctionBuilder(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	b := NewScalarFunctionBuilder("my_func", TYPE_BIGINT)
	require.Equal(t, "my_func", b.Name())
	require.Equal(t, TYPE_BIGINT, b.ReturnType())

	f, err := b.Build()
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, "my_func", f.Name())
	require.Equal(t, []Type{TYPE_VARCHAR}, f.Parameters())
	require.Equal(t, TYPE_BIGINT, f.ReturnType())
	require.NotNil(t, f.Eval())

	// The parameters are a copy.
	params := f.Parameters()
	params[0] = TYPE_BLOB
	require.Equal(t, []Type{TYPE_VARCHAR}, f.Parameters())

	// Each Build returns an independent record.
	other, err := b.Build()
	require.NoError(t, err)
	require.NotEqual(t, f.function.Ptr, other.function.Ptr)
	other.Close()
	require.Equal(t, "my_func", f.Name())
}

func TestScalarFunctionNoopEval(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	f, err := NewScalarFunctionBuilder("my_func", TYPE_BIGINT).Build()
	require.NoError(t, err)
	defer f.Close()

	textType := newTestType(t, TYPE_VARCHAR)
	defer textType.Close()
	intType := newTestType(t, TYPE_BIGINT)
	defer intType.Close()

	input, err := NewDataChunk([]*LogicalType{textType})
	require.NoError(t, err)
	defer input.Close()
	output, err := NewDataChunk([]*LogicalType{intType})
	require.NoError(t, err)
	defer output.Close()

	const rows = 4
	in, err := input.Vector(0)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		in.AssignString(i, "hello")
	}
	require.NoError(t, input.SetSize(rows))

	out, err := output.Vector(0)
	require.NoError(t, err)
	data := VectorData[int64](out, rows)
	for i := range data {
		data[i] = int64(i * 10)
	}
	mask := out.EnsureValidityWritable()
	mask.SetRowInvalid(2)
	require.NoError(t, output.SetSize(rows))

	before := append([]int64(nil), data...)
	beforeMask := mask.Rows(rows)

	require.NoError(t, f.Eval()(*input, ExpressionState{}, out))

	require.Equal(t, before, VectorData[int64](out, rows))
	require.Equal(t, beforeMask, out.Validity().Rows(rows))
	require.Equal(t, "..X.", beforeMask)
	require.Equal(t, rows, output.Size())
}

func TestScalarFunctionRegister(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	_, conn, closeDB := openTestConn(t)
	defer closeDB()

	f, err := NewScalarFunctionBuilder("my_func", TYPE_BIGINT).Build()
	require.NoError(t, err)
	require.NoError(t, conn.RegisterScalarFunction(f))
	f.Close()

	count, err := conn.QueryInt64(`SELECT count(*) FROM duckdb_functions()
		WHERE function_name = 'my_func' AND function_type = 'scalar'
		AND return_type = 'BIGINT' AND parameter_types = ['VARCHAR']`)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func timesTwo(args DataChunk, _ ExpressionState, out Vector) error {
	in, err := args.Vector(0)
	if err != nil {
		return err
	}
	rows := args.Size()
	src := VectorData[int64](in, rows)
	dst := VectorData[int64](out, rows)
	for i := range src {
		dst[i] = src[i] * 2
	}
	return nil
}

func TestScalarFunctionEval(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	_, conn, closeDB := openTestConn(t)
	defer closeDB()

	f, err := newScalarFunction("times_two", []Type{TYPE_BIGINT}, TYPE_BIGINT, timesTwo)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, conn.RegisterScalarFunction(f))

	res, err := conn.QueryInt64(`SELECT times_two(21)`)
	require.NoError(t, err)
	require.Equal(t, int64(42), res)

	res, err = conn.QueryInt64(`SELECT sum(times_two(i)) FROM range(10) t(i)`)
	require.NoError(t, err)
	require.Equal(t, int64(90), res)
}

func TestScalarFunctionEvalError(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	_, conn, closeDB := openTestConn(t)
	defer closeDB()

	failing := func(DataChunk, ExpressionState, Vector) error {
		return errors.New("evaluation failed")
	}
	f, err := newScalarFunction("failing", []Type{TYPE_BIGINT}, TYPE_BIGINT, failing)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, conn.RegisterScalarFunction(f))

	_, err = conn.QueryInt64(`SELECT failing(i) FROM range(3) t(i)`)
	testError(t, err, errQuery.Error(), "evaluation failed")
}

func TestErrScalarFunction(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	t.Run(errScalarFunctionNoName.Error(), func(t *testing.T) {
		f, err := NewScalarFunctionBuilder("", TYPE_BIGINT).Build()
		require.Nil(t, f)
		testError(t, err, errAPI.Error(), errScalarFunctionNoName.Error())
	})

	t.Run(errScalarFunctionReturnTypeIsANY.Error(), func(t *testing.T) {
		_, err := NewScalarFunctionBuilder("my_func", TYPE_ANY).Build()
		testError(t, err, errAPI.Error(), errScalarFunctionReturnTypeIsANY.Error())
	})

	t.Run(errScalarFunctionReturnTypeIsNil.Error(), func(t *testing.T) {
		_, err := NewScalarFunctionBuilder("my_func", TYPE_INVALID).Build()
		testError(t, err, errAPI.Error(), errScalarFunctionReturnTypeIsNil.Error())
	})

	t.Run("nested return type", func(t *testing.T) {
		_, err := NewScalarFunctionBuilder("my_func", TYPE_STRUCT).Build()
		testError(t, err, errAPI.Error(), tryOtherFuncErrMsg, "NewStructType")
	})

	t.Run("nested parameter type", func(t *testing.T) {
		_, err := newScalarFunction("my_func", []Type{TYPE_VARCHAR, TYPE_LIST}, TYPE_BIGINT, noopScalarFunc)
		testError(t, err, errAPI.Error(), tryOtherFuncErrMsg, "NewListType", indexErrMsg+": 1")
	})

	t.Run(errScalarFunctionNoEval.Error(), func(t *testing.T) {
		_, err := newScalarFunction("my_func", nil, TYPE_BIGINT, nil)
		testError(t, err, errAPI.Error(), errScalarFunctionNoEval.Error())
	})

	t.Run(errScalarFunctionParamIsNil.Error(), func(t *testing.T) {
		_, err := newScalarFunction("my_func", []Type{TYPE_BIGINT, TYPE_INVALID}, TYPE_BIGINT, noopScalarFunc)
		testError(t, err, errAPI.Error(), errScalarFunctionParamIsNil.Error(), indexErrMsg+": 1")
	})

	t.Run(errScalarFunctionClosed.Error(), func(t *testing.T) {
		_, conn, closeDB := openTestConn(t)
		defer closeDB()

		f, err := NewScalarFunctionBuilder("my_func", TYPE_BIGINT).Build()
		require.NoError(t, err)
		f.Close()
		f.Close()
		testError(t, conn.RegisterScalarFunction(f), errAPI.Error(), errScalarFunctionClosed.Error())
	})
}
