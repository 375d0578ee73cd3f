package dbg

import (
	"fmt"
	"reflect"
)

// Category is the structural class a type is rendered as.
type Category int

const (
	Unrecognized Category = iota
	Boolean
	Character
	String
	LinearSequence
	AssociativeMapping
	StackOrdered
	QueueOrdered
	Pair
	Tuple
	Scalar
)

var categoryNames = [...]string{
	Unrecognized:       "unrecognized",
	Boolean:            "boolean",
	Character:          "character",
	String:             "string",
	LinearSequence:     "sequence",
	AssociativeMapping: "mapping",
	StackOrdered:       "stack",
	QueueOrdered:       "queue",
	Pair:               "pair",
	Tuple:              "tuple",
	Scalar:             "scalar",
}

// String returns the category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Char marks a rune as a character. A plain rune is an int32 and renders
// as a number.
type Char rune

var (
	charType     = reflect.TypeFor[Char]()
	errorType    = reflect.TypeFor[error]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

// classifiers are tried in order; the first match decides the category.
// Mappings and drainable containers come before plain sequences because
// they usually offer an All iterator as well.
var classifiers = []struct {
	cat   Category
	match func(reflect.Type) bool
}{
	{Character, func(t reflect.Type) bool { return t == charType }},
	{String, func(t reflect.Type) bool { return t.Kind() == reflect.String }},
	{Boolean, func(t reflect.Type) bool { return t.Kind() == reflect.Bool }},
	{AssociativeMapping, isMapping},
	{StackOrdered, func(t reflect.Type) bool { return isDrainable(t, "Top") }},
	{QueueOrdered, func(t reflect.Type) bool { return isDrainable(t, "Front") }},
	{LinearSequence, isSequence},
	{Pair, isPair},
	{Tuple, isTuple},
	{Scalar, isScalar},
}

// Classify reports the category of values of type t. Pointer types are
// classified by their element type, with methods looked up on the pointer.
// The nil type, as returned by reflect.TypeOf(nil), is a Scalar.
func Classify(t reflect.Type) Category {
	if t == nil {
		return Scalar
	}
	for t.Kind() == reflect.Pointer && t.Elem() != t {
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface {
		return Unrecognized
	}
	for _, c := range classifiers {
		if c.match(t) {
			return c.cat
		}
	}
	return Unrecognized
}

// ClassifyValue reports the category v is rendered as.
func ClassifyValue(v any) Category { return Classify(reflect.TypeOf(v)) }

func isMapping(t reflect.Type) bool {
	return t.Kind() == reflect.Map || seqArity(t) == 2 || allArity(t) == 2
}

func isSequence(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return seqArity(t) == 1 || allArity(t) == 1
}

func isPair(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t.NumField() != 2 {
		return false
	}
	return t.Field(0).Name == "First" && t.Field(1).Name == "Second"
}

func isTuple(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			return false
		}
	}
	return true
}

func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return implements(t, errorType) || implements(t, stringerType)
}

// implements reports whether t or *t implements iface.
func implements(t reflect.Type, iface reflect.Type) bool {
	return t.Implements(iface) || reflect.PointerTo(t).Implements(iface)
}

// method looks up name on *t, which includes the methods of t.
func method(t reflect.Type, name string) (reflect.Method, bool) {
	return reflect.PointerTo(t).MethodByName(name)
}

// seqArity returns 1 when t has the shape of an iter.Seq, 2 for an
// iter.Seq2, and 0 otherwise.
func seqArity(t reflect.Type) int {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return 0
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return 0
	}
	if n := yield.NumIn(); n == 1 || n == 2 {
		return n
	}
	return 0
}

// allArity returns the seqArity of the iterator returned by t's All method.
func allArity(t reflect.Type) int {
	m, ok := method(t, "All")
	// Method types from a concrete type include the receiver.
	if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return 0
	}
	return seqArity(m.Type.Out(0))
}

// isDrainable reports whether t can be observed by cloning and draining:
// Empty() bool, a zero-argument accessor returning one value, a
// zero-argument Pop, and Clone returning T or *T.
func isDrainable(t reflect.Type, access string) bool {
	get, ok := method(t, access)
	if !ok || get.Type.NumIn() != 1 || get.Type.NumOut() != 1 {
		return false
	}
	pop, ok := method(t, "Pop")
	if !ok || pop.Type.NumIn() != 1 {
		return false
	}
	empty, ok := method(t, "Empty")
	if !ok || empty.Type.NumIn() != 1 || empty.Type.NumOut() != 1 || empty.Type.Out(0).Kind() != reflect.Bool {
		return false
	}
	clone, ok := method(t, "Clone")
	if !ok || clone.Type.NumIn() != 1 || clone.Type.NumOut() != 1 {
		return false
	}
	out := clone.Type.Out(0)
	return out == t || out == reflect.PointerTo(t)
}
