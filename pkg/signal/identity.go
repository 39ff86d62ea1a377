package signal

import (
	"math"
	"reflect"
	"unsafe"
)

// Identical reports whether a and b are the same value under strict
// identity. Scalars compare with ==, except that NaN is identical to NaN and
// +0 is not identical to -0. Reference kinds (pointers, maps, channels,
// slices) compare by address, never by contents. Funcs compare by closure
// reference: the same func value is identical to itself, while two closures
// built from one literal are not.
func Identical[T any](a, b T) bool {
	// Fast paths for the common scalar types.
	switch av := any(a).(type) {
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case int64:
		bv, ok := any(b).(int64)
		return ok && av == bv
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && sameFloat(av, bv)
	}
	return identical(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func identical(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		return sameFloat(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ac, bc := a.Complex(), b.Complex()
		return sameFloat(real(ac), real(bc)) && sameFloat(imag(ac), imag(bc))
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return a.Pointer() == b.Pointer() && a.Len() == b.Len() && a.Cap() == b.Cap()
	case reflect.Func:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return closure(a) == closure(b)
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return identical(a.Elem(), b.Elem())
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !identical(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !identical(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// closure returns the word a func value holds, which points at its closure
// record. reflect's Pointer only yields the code address, so closures sharing
// a literal would collide.
func closure(v reflect.Value) unsafe.Pointer {
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return *(*unsafe.Pointer)(c.Addr().UnsafePointer())
}

// sameFloat mirrors SameValue semantics.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Float64bits(a) == math.Float64bits(b)
}
