package dbg

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Debug writes a diagnostic for values to standard error, naming each value
// by the source text of the corresponding argument:
//
//	dbg.Debug(len(xs), m["k"])
//
// prints
//
//	[main.go:12 - load]
//	  len(xs) = 3
//	  m["k"] = "v"
//
// Names fall back to arg0, arg1, ... when the caller's source file cannot
// be read, or when the arguments are passed with a spread (xs...).
func Debug(values ...any) { _ = Default().debug(1, values) }

// Debug is like the package-level [Debug] but writes to p.
func (p *Printer) Debug(values ...any) error { return p.debug(1, values) }

func (p *Printer) debug(skip int, values []any) error {
	f, path := caller(skip + 1)
	names, ok := sourceArgs(path, f.Line, "Debug", len(values))
	if !ok {
		names = make([]string, len(values))
		for i := range names {
			names[i] = "arg" + strconv.Itoa(i)
		}
	}
	return p.Vars(f, names, values...)
}

// Exprs writes a diagnostic naming values by the comma-separated argument
// list src, split with [SplitArgs].
func (p *Printer) Exprs(f Frame, src string, values ...any) error {
	return p.Vars(f, SplitArgs(src), values...)
}

// caller is Caller plus the full path of the source file.
func caller(skip int) (Frame, string) {
	pc, path, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Frame{File: "???"}, ""
	}
	var fn string
	if f := runtime.FuncForPC(pc); f != nil {
		fn = shortFuncName(f.Name())
	}
	return Frame{File: filepath.Base(path), Line: line, Function: fn}, path
}

// sourceArgs parses the Go file at path and returns the source text of the
// arguments of the call to a function or method named callee with n
// arguments that spans line. When several calls qualify, the innermost one
// wins.
func sourceArgs(path string, line int, callee string, n int) ([]string, bool) {
	if path == "" {
		return nil, false
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, false
	}

	var found *ast.CallExpr
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}
		if line < fset.Position(call.Pos()).Line || line > fset.Position(call.End()).Line {
			return false
		}
		if calleeName(call.Fun) == callee && len(call.Args) == n && !call.Ellipsis.IsValid() {
			found = call
		}
		return true
	})
	if found == nil {
		return nil, false
	}

	names := make([]string, n)
	for i, arg := range found.Args {
		text := string(src[fset.Position(arg.Pos()).Offset:fset.Position(arg.End()).Offset])
		if strings.Contains(text, "\n") {
			text = strings.Join(strings.Fields(text), " ")
		}
		names[i] = text
	}
	return names, true
}

func calleeName(fun ast.Expr) string {
	switch x := fun.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.SelectorExpr:
		return x.Sel.Name
	case *ast.IndexExpr:
		return calleeName(x.X)
	case *ast.IndexListExpr:
		return calleeName(x.X)
	case *ast.ParenExpr:
		return calleeName(x.X)
	}
	return ""
}

// SplitArgs splits the source text of an argument list into one string per
// argument. Only top-level commas separate arguments: commas inside
// parentheses, brackets, braces, and string, raw string or rune literals
// are kept, so "m[K, V]{}, f(a, b)" yields two arguments. Each argument is
// trimmed of surrounding space and a trailing comma is ignored.
func SplitArgs(src string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '"', '\'':
			i = skipQuoted(src, i, c)
		case '`':
			if j := strings.IndexByte(src[i+1:], '`'); j >= 0 {
				i += j + 1
			} else {
				i = len(src)
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(src[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(src[start:]); last != "" {
		args = append(args, last)
	}
	return args
}

// skipQuoted returns the index of the quote closing the literal opened at
// src[i], or len(src) if it is unterminated.
func skipQuoted(src string, i int, quote byte) int {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}
	return len(src)
}
