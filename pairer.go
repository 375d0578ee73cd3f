package dbg

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Var is a value with the name it is printed under.
type Var struct {
	Name  string
	Value any
}

// V returns Var{name, value}.
func V(name string, value any) Var { return Var{Name: name, Value: value} }

// Print writes the header for f followed by one line per variable.
func (p *Printer) Print(f Frame, vars ...Var) error {
	names := make([]string, len(vars))
	values := make([]any, len(vars))
	for i, v := range vars {
		names[i], values[i] = v.Name, v.Value
	}
	return p.Vars(f, names, values...)
}

// Vars writes the header for f followed by one "name = value" line per
// position. When the two lists differ in length, the common prefix is
// written, then a marker line, and an error wrapping ErrArgCountMismatch
// is returned.
func (p *Printer) Vars(f Frame, names []string, values ...any) error {
	if err := p.WriteHeader(f); err != nil {
		return err
	}
	n := min(len(names), len(values))
	width := 0
	if p.alignNames {
		width = nameWidth(names[:n])
	}
	for i := range n {
		if err := p.writeVar(names[i], values[i], width); err != nil {
			return err
		}
	}
	if len(names) == len(values) {
		return nil
	}
	marker := fmt.Sprintf("<%d names, %d values>", len(names), len(values))
	if _, err := io.WriteString(p.w, p.indent+paint(p.f.pal.err, marker)+"\n"); err != nil {
		return err
	}
	return fmt.Errorf("%w: %d names, %d values", ErrArgCountMismatch, len(names), len(values))
}

// writeVar writes one name/value line, padding the name to width columns.
func (p *Printer) writeVar(name string, value any, width int) error {
	if width > 0 {
		name = runewidth.FillRight(name, width)
	}
	line := p.indent + name + paint(p.f.pal.operator, " = ") + p.Sprint(value) + "\n"
	_, err := io.WriteString(p.w, line)
	return err
}

func nameWidth(names []string) int {
	width := 0
	for _, n := range names {
		width = max(width, runewidth.StringWidth(n))
	}
	return width
}
