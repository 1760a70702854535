package duckext

/*
void duckext_scalar_callback(void *, void *, void *);
typedef void (*duckext_scalar_callback_t)(void *, void *, void *);
*/
import "C"

import (
	"unsafe"

	"github.com/marcboeker/duckext/mapping"
)

// ScalarFunc evaluates a scalar function over one batch of rows.
// args holds the input columns, and out receives one result per input row.
// A returned error aborts the query with the error's message.
type ScalarFunc func(args DataChunk, state ExpressionState, out Vector) error

// ExpressionState is the per-call execution state DuckDB passes to a ScalarFunc.
// The zero value is detached from DuckDB, e.g., when calling a ScalarFunc directly.
type ExpressionState struct {
	info mapping.FunctionInfo
}

// SetError reports err to DuckDB. It is a no-op on a detached state.
func (s ExpressionState) SetError(err error) {
	if s.info.Ptr == nil || err == nil {
		return
	}
	mapping.ScalarFunctionSetError(s.info, err.Error())
}

// noopScalarFunc writes nothing to out.
func noopScalarFunc(DataChunk, ExpressionState, Vector) error {
	return nil
}

// ScalarFunctionBuilder assembles scalar function registration records.
// Its name and return type are fixed at construction.
type ScalarFunctionBuilder struct {
	name       string
	returnType Type
}

// NewScalarFunctionBuilder returns a builder for scalar functions called name that return returnType.
func NewScalarFunctionBuilder(name string, returnType Type) *ScalarFunctionBuilder {
	return &ScalarFunctionBuilder{
		name:       name,
		returnType: returnType,
	}
}

// Name returns the function name of the builder.
func (b *ScalarFunctionBuilder) Name() string {
	return b.name
}

// ReturnType returns the declared return type of the builder.
func (b *ScalarFunctionBuilder) ReturnType() Type {
	return b.returnType
}

// Build returns a new registration record. The record takes a single VARCHAR parameter,
// returns the builder's return type, and evaluates to a no-op that leaves its output untouched.
// Each call returns an independent record that the caller must close.
func (b *ScalarFunctionBuilder) Build() (*ScalarFunction, error) {
	return newScalarFunction(b.name, []Type{TYPE_VARCHAR}, b.returnType, noopScalarFunc)
}

// ScalarFunction is a scalar function registration record.
type ScalarFunction struct {
	name       string
	params     []Type
	returnType Type
	eval       ScalarFunc

	function mapping.ScalarFunction
}

// newScalarFunction assembles the native record. The evaluation routine is bound as extra info,
// and DuckDB releases it once neither the record nor the catalog references it.
func newScalarFunction(name string, params []Type, returnType Type, eval ScalarFunc) (*ScalarFunction, error) {
	if name == "" {
		return nil, getError(errAPI, errScalarFunctionNoName)
	}
	if eval == nil {
		return nil, getError(errAPI, errScalarFunctionNoEval)
	}
	if returnType == TYPE_INVALID {
		return nil, getError(errAPI, errScalarFunctionReturnTypeIsNil)
	}
	if returnType == TYPE_ANY {
		return nil, getError(errAPI, errScalarFunctionReturnTypeIsANY)
	}

	f := &ScalarFunction{
		name:       name,
		params:     append([]Type(nil), params...),
		returnType: returnType,
		eval:       eval,
		function:   mapping.CreateScalarFunction(),
	}
	mapping.ScalarFunctionSetName(f.function, name)

	for i, p := range params {
		if p == TYPE_INVALID {
			f.Close()
			return nil, getError(errAPI, addIndexToError(errScalarFunctionParamIsNil, i))
		}
		if err := addScalarParameter(f.function, p); err != nil {
			f.Close()
			return nil, getError(errAPI, addIndexToError(err, i))
		}
	}

	t, err := newLogicalType(returnType)
	if err != nil {
		f.Close()
		return nil, getError(errAPI, err)
	}
	mapping.ScalarFunctionSetReturnType(f.function, t)
	mapping.DestroyLogicalType(&t)

	callbackPtr := unsafe.Pointer(C.duckext_scalar_callback_t(C.duckext_scalar_callback))
	mapping.ScalarFunctionSetFunction(f.function, callbackPtr)
	mapping.ScalarFunctionSetExtraInfo(f.function, pinHandle(eval), deleteCallbackPtr())
	return f, nil
}

func addScalarParameter(function mapping.ScalarFunction, p Type) error {
	t, err := newLogicalType(p)
	if err != nil {
		return err
	}
	mapping.ScalarFunctionAddParameter(function, t)
	mapping.DestroyLogicalType(&t)
	return nil
}

// Name returns the function name.
func (f *ScalarFunction) Name() string {
	return f.name
}

// Parameters returns a copy of the parameter types.
func (f *ScalarFunction) Parameters() []Type {
	return append([]Type(nil), f.params...)
}

// ReturnType returns the return type.
func (f *ScalarFunction) ReturnType() Type {
	return f.returnType
}

// Eval returns the bound evaluation routine.
func (f *ScalarFunction) Eval() ScalarFunc {
	return f.eval
}

// Close releases the native record. A registered function stays in the catalog.
func (f *ScalarFunction) Close() {
	if f.closed() {
		return
	}
	mapping.DestroyScalarFunction(&f.function)
	f.function.Ptr = nil
}

func (f *ScalarFunction) closed() bool {
	return f == nil || f.function.Ptr == nil
}

//export duckext_scalar_callback
func duckext_scalar_callback(infoPtr unsafe.Pointer, inputPtr unsafe.Pointer, outputPtr unsafe.Pointer) {
	info := mapping.FunctionInfo{Ptr: infoPtr}
	eval := getPinned[ScalarFunc](mapping.ScalarFunctionGetExtraInfo(info))

	args := DataChunk{chunk: mapping.DataChunk{Ptr: inputPtr}}
	out := Vector{vec: mapping.Vector{Ptr: outputPtr}}
	if err := eval(args, ExpressionState{info: info}, out); err != nil {
		mapping.ScalarFunctionSetError(info, err.Error())
	}
}
