package dbg

import (
	"reflect"
	"strconv"

	"github.com/mattn/go-runewidth"
)

func (f *formatter) formatString(s string) string {
	if f.maxStringWidth > 0 && runewidth.StringWidth(s) > f.maxStringWidth {
		s = truncate(s, f.maxStringWidth)
	}
	return paint(f.pal.str, `"`+s+`"`)
}

func (f *formatter) formatChar(r Char) string {
	return paint(f.pal.str, "'"+string(rune(r))+"'")
}

func (f *formatter) formatBool(b bool) string {
	return paint(f.pal.boolean, strconv.FormatBool(b))
}

func (f *formatter) formatScalar(v reflect.Value) string {
	return paint(f.pal.def, scalarText(v))
}

// scalarText returns the default representation of a scalar value. Error
// and String methods take priority over the numeric kind.
func scalarText(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	if x, ok := asInterface(v, errorType); ok {
		return x.(error).Error()
	}
	if x, ok := asInterface(v, stringerType); ok {
		return x.(interface{ String() string }).String()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	}
	return v.Type().String()
}

// asInterface returns v as an iface value, taking the address of a copy
// when only *T implements iface.
func asInterface(v reflect.Value, iface reflect.Type) (any, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	if v.Type().Implements(iface) {
		return v.Interface(), true
	}
	if reflect.PointerTo(v.Type()).Implements(iface) {
		return addressable(v).Interface(), true
	}
	return nil, false
}

// addressable returns a pointer to a copy of v.
func addressable(v reflect.Value) reflect.Value {
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

// truncate shortens s to at most width display columns, ending in "...".
func truncate(s string, width int) string {
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
