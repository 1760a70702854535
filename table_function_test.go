package duckext

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcboeker/duckext/mapping"
)

type seriesBindData struct {
	n    int64
	step int64
}

type seriesInitData struct {
	next int64
}

func seriesBind(info BindInfo) error {
	if info.ParameterCount() != 1 {
		return errors.New("expected one parameter")
	}
	param := info.Parameter(0)
	defer param.Close()

	step := int64(1)
	if v := info.NamedParameter("step"); v != nil {
		step = v.Int64()
		v.Close()
	}

	t, err := NewLogicalType(TYPE_BIGINT)
	if err != nil {
		return err
	}
	defer t.Close()
	if err = info.AddResultColumn("i", t); err != nil {
		return err
	}

	n := param.Int64()
	info.SetCardinality(uint(n), true)
	info.SetBindData(&seriesBindData{n: n, step: step})
	return nil
}

func seriesInit(info InitInfo) error {
	info.SetInitData(&seriesInitData{})
	info.SetMaxThreads(1)
	return nil
}

func seriesFill(info FunctionInfo, output DataChunk) error {
	b := info.BindData().(*seriesBindData)
	state := info.InitData().(*seriesInitData)

	vec, err := output.Vector(0)
	if err != nil {
		return err
	}
	size := min(b.n-state.next, int64(GetDataChunkCapacity()))
	data := VectorData[int64](vec, int(size))
	for i := range data {
		data[i] = state.next * b.step
		state.next++
	}
	return output.SetSize(int(size))
}

func newSeriesFunction(t *testing.T, name string) *TableFunction {
	bigint := newTestType(t, TYPE_BIGINT)
	defer bigint.Close()

	f := NewTableFunction(name)
	require.NoError(t, f.AddParameter(bigint))
	require.NoError(t, f.AddNamedParameter("step", bigint))
	f.SetBind(seriesBind)
	f.SetInit(seriesInit)
	f.SetFunction(seriesFill)
	return f
}

func TestTableFunction(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	_, conn, closeDB := openTestConn(t)
	defer closeDB()

	f := newSeriesFunction(t, "gen_series")
	require.Equal(t, "gen_series", f.Name())
	require.NoError(t, conn.RegisterTableFunction(f))
	f.Close()

	sum, err := conn.QueryInt64(`SELECT sum(i) FROM gen_series(10)`)
	require.NoError(t, err)
	require.Equal(t, int64(45), sum)

	sum, err = conn.QueryInt64(`SELECT sum(i) FROM gen_series(10, step := 2)`)
	require.NoError(t, err)
	require.Equal(t, int64(90), sum)

	count, err := conn.QueryInt64(`SELECT count(*) FROM gen_series(5000)`)
	require.NoError(t, err)
	require.Equal(t, int64(5000), count)
}

func TestTableFunctionLocalInit(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	_, conn, closeDB := openTestConn(t)
	defer closeDB()

	var localInits atomic.Int64
	f := newSeriesFunction(t, "local_series")
	defer f.Close()
	f.SetExtraInfo(&localInits)
	f.SetLocalInit(func(info InitInfo) error {
		info.ExtraInfo().(*atomic.Int64).Add(1)
		info.SetInitData(info.ColumnCount())
		return nil
	})
	f.SetFunction(func(info FunctionInfo, output DataChunk) error {
		if info.LocalInitData().(int) != 1 {
			return errors.New("expected one projected column")
		}
		return seriesFill(info, output)
	})
	require.NoError(t, conn.RegisterTableFunction(f))

	sum, err := conn.QueryInt64(`SELECT sum(i) FROM local_series(4)`)
	require.NoError(t, err)
	require.Equal(t, int64(6), sum)
	require.Positive(t, localInits.Load())
}

func TestTableFunctionProjectionPushdown(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	_, conn, closeDB := openTestConn(t)
	defer closeDB()

	bigint := newTestType(t, TYPE_BIGINT)
	defer bigint.Close()

	f := NewTableFunction("pairs")
	defer f.Close()
	f.SupportsProjectionPushdown(true)
	f.SetBind(func(info BindInfo) error {
		if err := info.AddResultColumn("a", bigint); err != nil {
			return err
		}
		return info.AddResultColumn("b", bigint)
	})
	f.SetInit(func(info InitInfo) error {
		columns := make([]int, info.ColumnCount())
		for i := range columns {
			columns[i] = info.ColumnIndex(i)
		}
		info.SetInitData(&columns)
		return nil
	})
	done := false
	f.SetFunction(func(info FunctionInfo, output DataChunk) error {
		if done {
			return output.SetSize(0)
		}
		done = true
		columns := *info.InitData().(*[]int)
		for i, column := range columns {
			vec, err := output.Vector(i)
			if err != nil {
				return err
			}
			VectorData[int64](vec, 1)[0] = int64(column + 1)
		}
		return output.SetSize(1)
	})
	require.NoError(t, conn.RegisterTableFunction(f))

	b, err := conn.QueryInt64(`SELECT b FROM pairs()`)
	require.NoError(t, err)
	require.Equal(t, int64(2), b)
}

func TestErrTableFunction(t *testing.T) {
	defer mapping.VerifyAllocationCounters()
	_, conn, closeDB := openTestConn(t)
	defer closeDB()

	t.Run(errTableFunctionIncomplete.Error(), func(t *testing.T) {
		f := NewTableFunction("incomplete")
		defer f.Close()
		f.SetBind(seriesBind)
		testError(t, conn.RegisterTableFunction(f), errAPI.Error(), errTableFunctionIncomplete.Error())
	})

	t.Run(errTableFunctionNoName.Error(), func(t *testing.T) {
		f := newSeriesFunction(t, "")
		defer f.Close()
		testError(t, conn.RegisterTableFunction(f), errAPI.Error(), errTableFunctionNoName.Error())
	})

	t.Run(errTableFunctionClosed.Error(), func(t *testing.T) {
		f := newSeriesFunction(t, "closed")
		f.Close()
		testError(t, conn.RegisterTableFunction(f), errAPI.Error(), errTableFunctionClosed.Error())
	})

	t.Run(errLogicalTypeIsNil.Error(), func(t *testing.T) {
		f := NewTableFunction("nil_param")
		defer f.Close()
		testError(t, f.AddParameter(nil), errAPI.Error(), errLogicalTypeIsNil.Error())
		testError(t, f.AddNamedParameter("x", nil), errAPI.Error(), errLogicalTypeIsNil.Error())
	})

	t.Run("bind error", func(t *testing.T) {
		f := NewTableFunction("failing_bind")
		defer f.Close()
		f.SetBind(func(BindInfo) error {
			return errors.New("bind failed")
		})
		f.SetInit(seriesInit)
		f.SetFunction(seriesFill)
		require.NoError(t, conn.RegisterTableFunction(f))

		err := conn.Exec(`SELECT * FROM failing_bind()`)
		testError(t, err, errQuery.Error(), "bind failed")
	})
}
