package engine

import (
	"bytes"
	"fmt"
	"reflect"
)

// EqualInt fails the case unless a == b
func (t *T) EqualInt(a, b int64) {
	if a != b {
		t.Fail("expected %d to equal %d", a, b)
	}
}

// NotEqualInt fails the case if a == b
func (t *T) NotEqualInt(a, b int64) {
	if a == b {
		t.Fail("expected %d to not equal %d", a, b)
	}
}

// EqualFloat fails the case unless a == b
func (t *T) EqualFloat(a, b float64) {
	if a != b {
		t.Fail("expected %g to equal %g", a, b)
	}
}

// NotEqualFloat fails the case if a == b
func (t *T) NotEqualFloat(a, b float64) {
	if a == b {
		t.Fail("expected %g to not equal %g", a, b)
	}
}

// EqualPtr fails the case unless a and b refer to the same object
func (t *T) EqualPtr(a, b any) {
	if !samePointer(a, b) {
		t.Fail("expected %s to equal %s", pointerString(a), pointerString(b))
	}
}

// NotEqualPtr fails the case if a and b refer to the same object
func (t *T) NotEqualPtr(a, b any) {
	if samePointer(a, b) {
		t.Fail("expected %s to not equal %s", pointerString(a), pointerString(b))
	}
}

// EqualStr fails the case unless a and b have the same content
func (t *T) EqualStr(a, b string) {
	if a != b {
		t.Fail("expected %q to equal %q", a, b)
	}
}

// NotEqualStr fails the case if a and b have the same content
func (t *T) NotEqualStr(a, b string) {
	if a == b {
		t.Fail("expected %q to not equal %q", a, b)
	}
}

// EqualBuf compares the first n bytes of a and b
func (t *T) EqualBuf(a, b []byte, n int) {
	t.checkBufLen(a, b, n)
	if !bytes.Equal(a[:n], b[:n]) {
		t.Fail("expected buffers to be equal (%d bytes): %q and %q", n, clip(a, n), clip(b, n))
	}
}

// NotEqualBuf fails the case if the first n bytes of a and b are equal
func (t *T) NotEqualBuf(a, b []byte, n int) {
	t.checkBufLen(a, b, n)
	if bytes.Equal(a[:n], b[:n]) {
		t.Fail("expected buffers to not be equal (%d bytes): %q", n, clip(a, n))
	}
}

// Equal compares two values of the same comparison kind: integer, float,
// string, byte buffer, bool or pointer. Any other kind fails the case.
func (t *T) Equal(a, b any) {
	equal, err := compare(a, b)
	if err != nil {
		t.FailNow(err.Error())
	}
	if !equal {
		t.Fail("expected %s to equal %s", render(a), render(b))
	}
}

// NotEqual is the inverse of Equal
func (t *T) NotEqual(a, b any) {
	equal, err := compare(a, b)
	if err != nil {
		t.FailNow(err.Error())
	}
	if equal {
		t.Fail("expected %s to not equal %s", render(a), render(b))
	}
}

type compareKind int

const (
	kindUnsupported compareKind = iota
	kindInt
	kindUint
	kindFloat
	kindString
	kindBuffer
	kindBool
	kindPointer
)

func kindOf(v any) compareKind {
	if v == nil {
		return kindPointer
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUint
	case reflect.Float32, reflect.Float64:
		return kindFloat
	case reflect.String:
		return kindString
	case reflect.Bool:
		return kindBool
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return kindBuffer
		}
		return kindPointer
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map:
		return kindPointer
	}
	return kindUnsupported
}

func compare(a, b any) (bool, error) {
	ka, kb := kindOf(a), kindOf(b)
	if ka == kindUnsupported || kb == kindUnsupported {
		return false, fmt.Errorf("cannot compare values of type %T and %T", a, b)
	}
	// An untyped nil matches a nil buffer
	if (a == nil && kb == kindBuffer) || (b == nil && ka == kindBuffer) {
		return isNil(a) && isNil(b), nil
	}
	if ka != kb {
		return false, fmt.Errorf("cannot compare %T with %T", a, b)
	}
	switch ka {
	case kindInt:
		return reflect.ValueOf(a).Int() == reflect.ValueOf(b).Int(), nil
	case kindUint:
		return reflect.ValueOf(a).Uint() == reflect.ValueOf(b).Uint(), nil
	case kindFloat:
		return reflect.ValueOf(a).Float() == reflect.ValueOf(b).Float(), nil
	case kindString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String(), nil
	case kindBool:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool(), nil
	case kindBuffer:
		return bytes.Equal(reflect.ValueOf(a).Bytes(), reflect.ValueOf(b).Bytes()), nil
	}
	return samePointer(a, b), nil
}

func render(v any) string {
	switch kindOf(v) {
	case kindString:
		return fmt.Sprintf("%q", v)
	case kindBuffer:
		return fmt.Sprintf("%q", reflect.ValueOf(v).Bytes())
	case kindPointer:
		return pointerString(v)
	}
	return fmt.Sprintf("%v", v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// samePointer compares by identity. Typed and untyped nils are equal.
func samePointer(a, b any) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ra.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		switch rb.Kind() {
		case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
			return ra.Pointer() == rb.Pointer()
		}
		return false
	}
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return a == b
}

func pointerString(v any) string {
	if isNil(v) {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return fmt.Sprintf("%#x", rv.Pointer())
	}
	return fmt.Sprintf("%v", v)
}

// checkBufLen fails the case unless both buffers hold at least n bytes
func (t *T) checkBufLen(a, b []byte, n int) {
	if n < 0 || n > len(a) || n > len(b) {
		t.Fail("buffer length %d exceeds buffer (%d/%d bytes)", n, len(a), len(b))
	}
}

func clip(b []byte, n int) []byte {
	if n >= 0 && n < len(b) {
		return b[:n]
	}
	return b
}
