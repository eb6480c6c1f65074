package parsekit

import (
	"reflect"
	"unsafe"
)

// reflectFuncPointer returns the address of a function value's closure
// record, used as a comparable stand-in for func identity. Two
// closures created from the same func literal at the same call site
// but in different invocations are NOT equal by this measure (each
// closure allocation gets its own pointer) — which is exactly the
// "identity equality of their functions" spec.md §9 calls for: a
// parser built once and reused compares equal to itself, a second,
// separately-constructed parser with equivalent-looking logic does
// not. A literal that captures no variables is a single static value,
// so it always compares equal to itself.
func reflectFuncPointer(f any) uintptr {
	if v := reflect.ValueOf(f); v.Kind() != reflect.Func || v.IsNil() {
		return 0
	}
	// A func value is pointer-shaped, so the interface's data word is
	// the closure record pointer itself (reflect.Value.Pointer would
	// return the code pointer, shared by every closure of one literal).
	return uintptr((*[2]unsafe.Pointer)(unsafe.Pointer(&f))[1])
}
