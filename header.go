package dbg

import (
	"io"
	"strconv"
	"strings"
)

// Frame identifies the call site of a diagnostic.
type Frame struct {
	File     string
	Line     int
	Function string
}

// Caller returns the Frame of the function calling Caller, or of one of its
// callers when skip is positive. The file is reduced to its base name and
// the function to its name without package qualification.
func Caller(skip int) Frame {
	f, _ := caller(skip + 1)
	return f
}

// shortFuncName strips the import path and package name from a fully
// qualified function name: "example.com/pkg.(*T).M" becomes "(*T).M" and
// "main.main" becomes "main".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// header returns "[file:line - function]", leaving out the function part
// when it is empty or the entry function.
func (p *Printer) header(f Frame) string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(f.File)
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(f.Line))
	if f.Function != "" && f.Function != p.entryFunc {
		sb.WriteString(" - ")
		sb.WriteString(f.Function)
	}
	sb.WriteString("]")
	return paint(p.f.pal.header, sb.String())
}

// WriteHeader writes the header line for f.
func (p *Printer) WriteHeader(f Frame) error {
	_, err := io.WriteString(p.w, p.header(f)+"\n")
	return err
}
