package duckext

/*
void duckext_table_bind(void *);
typedef void (*duckext_table_bind_t)(void *);

void duckext_table_init(void *);
void duckext_table_local_init(void *);
typedef void (*duckext_table_init_t)(void *);

void duckext_table_callback(void *, void *);
typedef void (*duckext_table_callback_t)(void *, void *);
*/
import "C"

import (
	"unsafe"

	"github.com/marcboeker/duckext/mapping"
)

type (
	// BindFunc declares the result columns of a table function call and prepares its bind data.
	BindFunc func(info BindInfo) error
	// InitFunc prepares the global or thread-local state of a table function call.
	InitFunc func(info InitInfo) error
	// TableFunc fills output with the next rows. Setting the output size to 0 ends the scan.
	TableFunc func(info FunctionInfo, output DataChunk) error
)

// tableCallbacks is the extra info of a table function.
type tableCallbacks struct {
	bind      BindFunc
	init      InitFunc
	localInit InitFunc
	function  TableFunc
	extraInfo any
}

// TableFunction is a table function registration record. The caller must close it.
type TableFunction struct {
	name      string
	callbacks *tableCallbacks
	function  mapping.TableFunction
}

// NewTableFunction returns a new table function record called name.
// The bind, init and function callbacks must be set before registering it.
func NewTableFunction(name string) *TableFunction {
	f := &TableFunction{
		name:      name,
		callbacks: &tableCallbacks{},
		function:  mapping.CreateTableFunction(),
	}
	mapping.TableFunctionSetName(f.function, name)
	mapping.TableFunctionSetExtraInfo(f.function, pinHandle(f.callbacks), deleteCallbackPtr())
	return f
}

// Name returns the function name.
func (f *TableFunction) Name() string {
	return f.name
}

// AddParameter adds a positional parameter. t is not consumed.
func (f *TableFunction) AddParameter(t *LogicalType) error {
	if t.isNil() {
		return getError(errAPI, errLogicalTypeIsNil)
	}
	mapping.TableFunctionAddParameter(f.function, t.lt)
	return nil
}

// AddNamedParameter adds a named parameter, e.g., name := 'value'. t is not consumed.
func (f *TableFunction) AddNamedParameter(name string, t *LogicalType) error {
	if t.isNil() {
		return getError(errAPI, errLogicalTypeIsNil)
	}
	mapping.TableFunctionAddNamedParameter(f.function, name, t.lt)
	return nil
}

// SupportsProjectionPushdown sets whether the function only produces the projected columns.
// See InitInfo.ColumnIndex.
func (f *TableFunction) SupportsProjectionPushdown(pushdown bool) {
	mapping.TableFunctionSupportsProjectionPushdown(f.function, pushdown)
}

// SetBind sets the bind callback.
func (f *TableFunction) SetBind(bind BindFunc) {
	f.callbacks.bind = bind
	mapping.TableFunctionSetBind(f.function, unsafe.Pointer(C.duckext_table_bind_t(C.duckext_table_bind)))
}

// SetInit sets the global init callback.
func (f *TableFunction) SetInit(init InitFunc) {
	f.callbacks.init = init
	mapping.TableFunctionSetInit(f.function, unsafe.Pointer(C.duckext_table_init_t(C.duckext_table_init)))
}

// SetLocalInit sets the thread-local init callback.
func (f *TableFunction) SetLocalInit(init InitFunc) {
	f.callbacks.localInit = init
	mapping.TableFunctionSetLocalInit(f.function, unsafe.Pointer(C.duckext_table_init_t(C.duckext_table_local_init)))
}

// SetFunction sets the main callback.
func (f *TableFunction) SetFunction(function TableFunc) {
	f.callbacks.function = function
	mapping.TableFunctionSetFunction(f.function, unsafe.Pointer(C.duckext_table_callback_t(C.duckext_table_callback)))
}

// SetExtraInfo sets a value that every callback can read with ExtraInfo.
func (f *TableFunction) SetExtraInfo(v any) {
	f.callbacks.extraInfo = v
}

// Close releases the native record. A registered function stays in the catalog.
func (f *TableFunction) Close() {
	if f.closed() {
		return
	}
	mapping.DestroyTableFunction(&f.function)
	f.function.Ptr = nil
}

func (f *TableFunction) closed() bool {
	return f == nil || f.function.Ptr == nil
}

func (f *TableFunction) complete() error {
	if f.name == "" {
		return errTableFunctionNoName
	}
	if f.callbacks.bind == nil || f.callbacks.init == nil || f.callbacks.function == nil {
		return errTableFunctionIncomplete
	}
	return nil
}

// BindInfo is passed to a BindFunc.
type BindInfo struct {
	info mapping.BindInfo
}

// ParameterCount returns the number of positional parameters.
func (info BindInfo) ParameterCount() int {
	return int(mapping.BindGetParameterCount(info.info))
}

// Parameter returns the positional parameter at index i. The caller must close it.
func (info BindInfo) Parameter(i int) *Value {
	return &Value{v: mapping.BindGetParameter(info.info, mapping.IdxT(i))}
}

// NamedParameter returns the named parameter called name, or nil, if the call did not set it.
// The caller must close it.
func (info BindInfo) NamedParameter(name string) *Value {
	v := mapping.BindGetNamedParameter(info.info, name)
	if v.Ptr == nil {
		return nil
	}
	return &Value{v: v}
}

// AddResultColumn adds a result column. t is not consumed.
func (info BindInfo) AddResultColumn(name string, t *LogicalType) error {
	if t.isNil() {
		return errLogicalTypeIsNil
	}
	mapping.BindAddResultColumn(info.info, name, t.lt)
	return nil
}

// SetCardinality sets the (estimated) number of rows the call produces.
func (info BindInfo) SetCardinality(n uint, exact bool) {
	mapping.BindSetCardinality(info.info, mapping.IdxT(n), exact)
}

// SetBindData stores v for the init and function callbacks.
func (info BindInfo) SetBindData(v any) {
	mapping.BindSetBindData(info.info, pinHandle(v), deleteCallbackPtr())
}

// ExtraInfo returns the value set with TableFunction.SetExtraInfo.
func (info BindInfo) ExtraInfo() any {
	return getPinned[*tableCallbacks](mapping.BindGetExtraInfo(info.info)).extraInfo
}

// SetError reports err to DuckDB.
func (info BindInfo) SetError(err error) {
	mapping.BindSetError(info.info, err.Error())
}

// InitInfo is passed to an InitFunc.
type InitInfo struct {
	info mapping.InitInfo
}

// BindData returns the value set with BindInfo.SetBindData.
func (info InitInfo) BindData() any {
	return pinnedOrNil(mapping.InitGetBindData(info.info))
}

// ColumnCount returns the number of projected columns.
func (info InitInfo) ColumnCount() int {
	return int(mapping.InitGetColumnCount(info.info))
}

// ColumnIndex returns the result column index of the i-th projected column.
func (info InitInfo) ColumnIndex(i int) int {
	return int(mapping.InitGetColumnIndex(info.info, mapping.IdxT(i)))
}

// SetInitData stores v for the function callback.
func (info InitInfo) SetInitData(v any) {
	mapping.InitSetInitData(info.info, pinHandle(v), deleteCallbackPtr())
}

// SetMaxThreads sets the maximum number of threads that scan in parallel.
func (info InitInfo) SetMaxThreads(n int) {
	mapping.InitSetMaxThreads(info.info, mapping.IdxT(n))
}

// ExtraInfo returns the value set with TableFunction.SetExtraInfo.
func (info InitInfo) ExtraInfo() any {
	return getPinned[*tableCallbacks](mapping.InitGetExtraInfo(info.info)).extraInfo
}

// SetError reports err to DuckDB.
func (info InitInfo) SetError(err error) {
	mapping.InitSetError(info.info, err.Error())
}

// FunctionInfo is passed to a TableFunc.
type FunctionInfo struct {
	info mapping.FunctionInfo
}

// BindData returns the value set with BindInfo.SetBindData.
func (info FunctionInfo) BindData() any {
	return pinnedOrNil(mapping.FunctionGetBindData(info.info))
}

// InitData returns the value set with InitInfo.SetInitData in the global init callback.
func (info FunctionInfo) InitData() any {
	return pinnedOrNil(mapping.FunctionGetInitData(info.info))
}

// LocalInitData returns the value set with InitInfo.SetInitData in the local init callback.
func (info FunctionInfo) LocalInitData() any {
	return pinnedOrNil(mapping.FunctionGetLocalInitData(info.info))
}

// ExtraInfo returns the value set with TableFunction.SetExtraInfo.
func (info FunctionInfo) ExtraInfo() any {
	return getPinned[*tableCallbacks](mapping.FunctionGetExtraInfo(info.info)).extraInfo
}

// SetError reports err to DuckDB.
func (info FunctionInfo) SetError(err error) {
	mapping.FunctionSetError(info.info, err.Error())
}

func pinnedOrNil(handle unsafe.Pointer) any {
	if handle == nil {
		return nil
	}
	return getPinned[any](handle)
}

//export duckext_table_bind
func duckext_table_bind(infoPtr unsafe.Pointer) {
	info := mapping.BindInfo{Ptr: infoPtr}
	callbacks := getPinned[*tableCallbacks](mapping.BindGetExtraInfo(info))
	if err := callbacks.bind(BindInfo{info: info}); err != nil {
		mapping.BindSetError(info, err.Error())
	}
}

//export duckext_table_init
func duckext_table_init(infoPtr unsafe.Pointer) {
	info := mapping.InitInfo{Ptr: infoPtr}
	callbacks := getPinned[*tableCallbacks](mapping.InitGetExtraInfo(info))
	if err := callbacks.init(InitInfo{info: info}); err != nil {
		mapping.InitSetError(info, err.Error())
	}
}

//export duckext_table_local_init
func duckext_table_local_init(infoPtr unsafe.Pointer) {
	info := mapping.InitInfo{Ptr: infoPtr}
	callbacks := getPinned[*tableCallbacks](mapping.InitGetExtraInfo(info))
	if err := callbacks.localInit(InitInfo{info: info}); err != nil {
		mapping.InitSetError(info, err.Error())
	}
}

//export duckext_table_callback
func duckext_table_callback(infoPtr unsafe.Pointer, outputPtr unsafe.Pointer) {
	info := mapping.FunctionInfo{Ptr: infoPtr}
	callbacks := getPinned[*tableCallbacks](mapping.FunctionGetExtraInfo(info))
	output := DataChunk{chunk: mapping.DataChunk{Ptr: outputPtr}}
	if err := callbacks.function(FunctionInfo{info: info}, output); err != nil {
		mapping.FunctionSetError(info, err.Error())
	}
}
