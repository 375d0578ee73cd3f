package dbg

import (
	"fmt"
	"reflect"
	"strings"
)

// notImplemented is rendered for values of an Unrecognized category.
const notImplemented = "Not implemented"

// formatter renders values with one resolved palette. It holds no state
// between calls.
type formatter struct {
	pal            palette
	maxDepth       int
	maxStringWidth int
}

// format classifies v and renders it, recursing into containers.
func (f *formatter) format(v reflect.Value, depth int) (out string) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return paint(f.pal.def, "nil")
		}
		if v.Kind() == reflect.Pointer {
			if depth > f.maxDepth {
				return f.elided()
			}
			depth++
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return paint(f.pal.def, "nil")
	}

	defer func() {
		if r := recover(); r != nil {
			out = paint(f.pal.err, fmt.Sprintf("<panic: %v>", r))
		}
	}()

	switch cat := Classify(v.Type()); cat {
	case Character:
		return f.formatChar(Char(v.Int()))
	case String:
		return f.formatString(v.String())
	case Boolean:
		return f.formatBool(v.Bool())
	case Scalar:
		return f.formatScalar(v)
	case Unrecognized:
		return paint(f.pal.err, notImplemented)
	default:
		if nilContainer(v) {
			return paint(f.pal.def, "nil")
		}
		if depth >= f.maxDepth {
			return f.elided()
		}
		return f.formatContainer(v, cat, depth)
	}
}

// nilContainer reports whether v is a nil iterator function. Nil slices
// and maps render as empty containers.
func nilContainer(v reflect.Value) bool {
	return v.Kind() == reflect.Func && v.IsNil()
}

func (f *formatter) elided() string {
	return paint(f.pal.container, "{ ") + paint(f.pal.sep, "...") + paint(f.pal.container, " }")
}

// join wraps already formatted children in braces with separators between
// them. An empty list renders as "{ }".
func (f *formatter) join(children []string) string {
	if len(children) == 0 {
		return paint(f.pal.container, "{ }")
	}
	var sb strings.Builder
	sb.WriteString(paint(f.pal.container, "{ "))
	for i, c := range children {
		if i > 0 {
			sb.WriteString(paint(f.pal.sep, ", "))
		}
		sb.WriteString(c)
	}
	sb.WriteString(paint(f.pal.container, " }"))
	return sb.String()
}

func (f *formatter) entry(key, value string) string {
	return key + paint(f.pal.sep, ": ") + value
}
