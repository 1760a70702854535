package duckext

/*
void duckext_replacement_scan(void *, void *, void *);
typedef void (*duckext_replacement_scan_t)(void *, void *, void *);
*/
import "C"

import (
	"unsafe"

	"github.com/marcboeker/duckext/mapping"
)

// ReplacementScanFunc maps a table name that is not in the catalog to a table function call.
// It returns the function name and its parameters, which must be strings or int64s.
// Returning an empty function name leaves the table name unresolved.
type ReplacementScanFunc func(tableName string) (string, []any, error)

// AddReplacementScan adds a replacement scan to the database.
func (db *Database) AddReplacementScan(scan ReplacementScanFunc) {
	callbackPtr := unsafe.Pointer(C.duckext_replacement_scan_t(C.duckext_replacement_scan))
	mapping.AddReplacementScan(db.db, callbackPtr, pinHandle(scan), deleteCallbackPtr())
}

//export duckext_replacement_scan
func duckext_replacement_scan(infoPtr unsafe.Pointer, tableNamePtr unsafe.Pointer, data unsafe.Pointer) {
	info := mapping.ReplacementScanInfo{Ptr: infoPtr}
	tableName := C.GoString((*C.char)(tableNamePtr))

	scan := getPinned[ReplacementScanFunc](data)
	functionName, params, err := scan(tableName)
	if err != nil {
		mapping.ReplacementScanSetError(info, err.Error())
		return
	}
	if functionName == "" {
		return
	}
	mapping.ReplacementScanSetFunctionName(info, functionName)

	for i, param := range params {
		var v *Value
		switch p := param.(type) {
		case string:
			v = NewVarcharValue(p)
		case int64:
			v = NewInt64Value(p)
		default:
			mapping.ReplacementScanSetError(info, addIndexToError(errReplacementScanParam, i).Error())
			return
		}
		mapping.ReplacementScanAddParameter(info, v.v)
		v.Close()
	}
}
