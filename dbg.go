package dbg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"

	"github.com/muesli/termenv"
)

// Sentinel errors for programmatic error handling.
var (
	ErrArgCountMismatch     = errors.New("argument name/value count mismatch")
	ErrUnsupportedColorMode = errors.New("unsupported color mode")
	ErrInvalidStyle         = errors.New("invalid style")
	ErrInvalidTheme         = errors.New("invalid theme")
)

// ColorMode selects when escape sequences are written.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var colorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

// String returns the mode name.
func (m ColorMode) String() string { return string(m) }

// ColorModes returns all supported color modes.
func ColorModes() []ColorMode {
	out := make([]ColorMode, len(colorModes))
	copy(out, colorModes)
	return out
}

// ParseColorMode parses a color mode name. The empty string is ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	if s == "" {
		return ColorAuto, nil
	}
	for _, m := range colorModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedColorMode, s)
}

// Defaults applied to zero Config fields.
const (
	DefaultIndent    = "  "
	DefaultEntryFunc = "main"
	DefaultMaxDepth  = 32
)

// Config controls a Printer. The zero value is ready to use.
type Config struct {
	// Theme is the palette. Nil selects DefaultTheme.
	Theme *Theme
	// Color selects when styling is applied. Empty means ColorAuto, which
	// follows the writer's terminal capabilities and the NO_COLOR and
	// CLICOLOR_FORCE environment variables.
	Color ColorMode
	// Indent prefixes every name/value line.
	Indent string
	// EntryFunc is the function name left out of headers.
	EntryFunc string
	// MaxDepth bounds container nesting; deeper containers render as
	// "{ ... }".
	MaxDepth int
	// MaxStringWidth truncates string values wider than this many columns.
	// Zero means no limit.
	MaxStringWidth int
	// AlignNames pads names so that the "=" signs line up.
	AlignNames bool
}

// Printer writes diagnostics to a writer. A Printer resolves its theme once
// at construction and is not safe for concurrent use.
type Printer struct {
	w          io.Writer
	indent     string
	entryFunc  string
	alignNames bool
	profile    termenv.Profile
	f          formatter
}

// New returns a Printer writing to w.
func New(w io.Writer, cfg Config) *Printer {
	theme := DefaultTheme()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	profile := colorProfile(w, cfg.Color)
	p := &Printer{
		w:          w,
		indent:     cfg.Indent,
		entryFunc:  cfg.EntryFunc,
		alignNames: cfg.AlignNames,
		profile:    profile,
		f: formatter{
			pal:            newPalette(theme, profile),
			maxDepth:       cfg.MaxDepth,
			maxStringWidth: cfg.MaxStringWidth,
		},
	}
	if p.indent == "" {
		p.indent = DefaultIndent
	}
	if p.entryFunc == "" {
		p.entryFunc = DefaultEntryFunc
	}
	if p.f.maxDepth <= 0 {
		p.f.maxDepth = DefaultMaxDepth
	}
	return p
}

func colorProfile(w io.Writer, m ColorMode) termenv.Profile {
	switch m {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.TrueColor
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// Sprint formats v. It never fails: values of an unrecognized category
// render as an error marker.
func (p *Printer) Sprint(v any) string {
	return p.f.format(reflect.ValueOf(v), 0)
}

// Styled renders text in s, degraded to the color profile of p's writer.
func (p *Printer) Styled(s Style, text string) string {
	return paint(s.sequence(p.profile), text)
}

var plain = New(io.Discard, Config{Color: ColorNever})

// Sprint formats v without styling.
func Sprint(v any) string { return plain.Sprint(v) }

var std = sync.OnceValue(func() *Printer { return New(os.Stderr, Config{}) })

// Default returns the Printer used by the package-level functions. It
// writes to standard error.
func Default() *Printer { return std() }
