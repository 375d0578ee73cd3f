package dbg

import "reflect"

func (f *formatter) formatContainer(v reflect.Value, cat Category, depth int) string {
	var children []string
	switch cat {
	case LinearSequence:
		children = f.sequence(v, depth)
	case AssociativeMapping:
		children = f.mapping(v, depth)
	case StackOrdered:
		children = f.drain(v, "Top", depth)
	case QueueOrdered:
		children = f.drain(v, "Front", depth)
	case Pair:
		children = []string{
			f.format(v.Field(0), depth+1),
			f.format(v.Field(1), depth+1),
		}
	case Tuple:
		children = make([]string, v.NumField())
		for i := range children {
			children[i] = f.format(v.Field(i), depth+1)
		}
	}
	return f.join(children)
}

func (f *formatter) sequence(v reflect.Value, depth int) []string {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		children := make([]string, v.Len())
		for i := range children {
			children[i] = f.format(v.Index(i), depth+1)
		}
		return children
	}
	var children []string
	for e := range iterator(v).Seq() {
		children = append(children, f.format(e, depth+1))
	}
	return children
}

func (f *formatter) mapping(v reflect.Value, depth int) []string {
	var children []string
	if v.Kind() == reflect.Map {
		keys := v.MapKeys()
		sortKeys(keys)
		for _, k := range keys {
			children = append(children, f.entry(f.format(k, depth+1), f.format(v.MapIndex(k), depth+1)))
		}
		return children
	}
	for k, e := range iterator(v).Seq2() {
		children = append(children, f.entry(f.format(k, depth+1), f.format(e, depth+1)))
	}
	return children
}

// iterator returns v itself when it is an iterator function, or the result
// of its All method.
func iterator(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Func {
		return v
	}
	return addressable(v).MethodByName("All").Call(nil)[0]
}

// drain renders the elements of a stack- or queue-ordered container in
// removal order. It works on a Clone of a copy of v, so the caller's
// container is left untouched.
func (f *formatter) drain(v reflect.Value, access string, depth int) []string {
	c := addressable(v).MethodByName("Clone").Call(nil)[0]
	if c.Kind() != reflect.Pointer {
		c = addressable(c)
	}
	if c.IsNil() {
		return nil
	}
	empty := c.MethodByName("Empty")
	get := c.MethodByName(access)
	pop := c.MethodByName("Pop")

	var children []string
	for !empty.Call(nil)[0].Bool() {
		children = append(children, f.format(get.Call(nil)[0], depth+1))
		pop.Call(nil)
	}
	return children
}
