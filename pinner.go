package duckext

/*
void duckext_delete_callback(void *);
typedef void (*duckext_delete_callback_t)(void *);
*/
import "C"

import (
	"runtime"
	"runtime/cgo"
	"unsafe"
)

// Helpers for passing Go values to C and back.

type pinnedValue[T any] struct {
	pinner *runtime.Pinner
	value  T
}

type unpinner interface {
	unpin()
}

func (v pinnedValue[T]) unpin() {
	v.pinner.Unpin()
}

// pinHandle wraps value in a pinned cgo.Handle and returns a pointer that is safe to hand to DuckDB.
// DuckDB releases the handle through deleteCallbackPtr.
func pinHandle[T any](value T) unsafe.Pointer {
	v := pinnedValue[T]{
		pinner: &runtime.Pinner{},
		value:  value,
	}
	h := cgo.NewHandle(v)
	v.pinner.Pin(&h)
	return unsafe.Pointer(&h)
}

func getPinned[T any](handle unsafe.Pointer) T {
	h := *(*cgo.Handle)(handle)
	return h.Value().(pinnedValue[T]).value
}

func deleteCallbackPtr() unsafe.Pointer {
	return unsafe.Pointer(C.duckext_delete_callback_t(C.duckext_delete_callback))
}

//export duckext_delete_callback
func duckext_delete_callback(handle unsafe.Pointer) {
	h := (*cgo.Handle)(handle)
	h.Value().(unpinner).unpin()
	h.Delete()
}
