// Package typeinfo inspects type layouts.
package typeinfo

import "reflect"

// HasPointers reports whether values of t contain any word the garbage
// collector must scan. Memory carved out of a plain byte buffer is never
// scanned, so such types may only live in GC-typed allocations.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// pointers, strings, slices, maps, chans, funcs, interfaces, unsafe.Pointer
		return true
	}
}

// HasPointersFor is HasPointers for a static type.
func HasPointersFor[T any]() bool {
	return HasPointers(reflect.TypeFor[T]())
}
