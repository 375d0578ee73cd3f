// Package dbg prints named values for debugging, rendering each one by its
// structure instead of by a per-type format.
//
// The central entry point is [Debug], which takes any number of values and
// names them by the source text of the arguments it was called with:
//
//	dbg.Debug(user.ID, len(queue), cfg.Hosts)
//
// writes to standard error
//
//	[server.go:88 - (*Server).reload]
//	  user.ID = 42
//	  len(queue) = 3
//	  cfg.Hosts = { "a.example", "b.example" }
//
// The header names the file, line and function; the function is left out
// for main. Output is colored when standard error is a terminal.
//
// # Categories
//
// Every value is classified into one [Category] by the shape of its type,
// checked in this order:
//
//   - [Character]: [Char]
//   - [String]: string kinds, rendered in double quotes
//   - [Boolean]: bool kinds
//   - [AssociativeMapping]: maps, iter.Seq2 functions, types with an
//     All method returning an iter.Seq2
//   - [StackOrdered]: types with Top, Pop, Empty and Clone methods
//   - [QueueOrdered]: types with Front, Pop, Empty and Clone methods
//   - [LinearSequence]: slices, arrays, iter.Seq functions, types with an
//     All method returning an iter.Seq
//   - [Pair]: structs with exactly the fields First and Second
//   - [Tuple]: structs whose fields are all exported
//   - [Scalar]: numbers, errors, fmt.Stringer values and nil
//   - [Unrecognized]: anything else, rendered as "Not implemented"
//
// Containers render as "{ a, b, c }" and mappings as "{ k: v, ... }",
// recursively. Built-in maps are shown with their keys sorted, strings in
// natural order. Stack- and queue-ordered containers are shown in removal
// order; the printer drains a Clone, never the caller's value. The
// containers in package ds have these shapes.
//
// # Naming Values Explicitly
//
// [Printer.Print] takes [Var] pairs and [Printer.Vars] takes parallel name
// and value lists. A length mismatch is reported on the output and
// returned as [ErrArgCountMismatch]. [SplitArgs] splits argument list text
// at top-level commas for callers that capture source text themselves.
//
// # Styling
//
// A [Printer] resolves its [Theme] once, against the color profile of its
// writer. Use [ColorNever] or [PlainTheme] for uncolored output, and
// [LoadTheme] to read a palette from YAML:
//
//	header: bold yellow
//	string: "#98c379"
//	separator: gray
//
// # Errors
//
// Formatting never fails. The package exports sentinel errors for the
// operations that can:
//
//   - [ErrArgCountMismatch]: names and values differ in number
//   - [ErrUnsupportedColorMode]: unknown color mode string
//   - [ErrInvalidStyle]: unparsable style description
//   - [ErrInvalidTheme]: malformed theme document
package dbg
