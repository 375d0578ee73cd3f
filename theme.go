package dbg

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Style is a foreground color with an optional bold attribute. The zero
// Style renders text unchanged.
type Style struct {
	Color termenv.Color
	Bold  bool
}

// Theme is the palette used to render diagnostics.
type Theme struct {
	Header    Style `yaml:"header"`
	Error     Style `yaml:"error"`
	Default   Style `yaml:"default"`
	String    Style `yaml:"string"`
	Bool      Style `yaml:"bool"`
	Container Style `yaml:"container"`
	Separator Style `yaml:"separator"`
	Operator  Style `yaml:"operator"`
}

// DefaultTheme returns the built-in palette, tuned for dark terminals.
func DefaultTheme() Theme {
	return Theme{
		Header:    Style{Color: termenv.ANSIYellow, Bold: true},
		Error:     Style{Color: termenv.ANSIRed, Bold: true},
		Default:   Style{Color: termenv.ANSIBrightMagenta},
		String:    Style{Color: termenv.ANSIBrightGreen},
		Bool:      Style{Color: termenv.ANSIBrightGreen},
		Container: Style{Color: termenv.ANSIBlue},
		Separator: Style{Color: termenv.ANSIBrightBlack},
		Operator:  Style{Color: termenv.ANSICyan, Bold: true},
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme { return Theme{} }

// Entries yields each style of t under its YAML key, in declaration order.
func (t Theme) Entries() iter.Seq2[string, Style] {
	return func(yield func(string, Style) bool) {
		_ = yield("header", t.Header) &&
			yield("error", t.Error) &&
			yield("default", t.Default) &&
			yield("string", t.String) &&
			yield("bool", t.Bool) &&
			yield("container", t.Container) &&
			yield("separator", t.Separator) &&
			yield("operator", t.Operator)
	}
}

var resetSequence = termenv.CSI + termenv.ResetSeq + "m"

var namedColors = map[string]termenv.ANSIColor{
	"black":          termenv.ANSIBlack,
	"red":            termenv.ANSIRed,
	"green":          termenv.ANSIGreen,
	"yellow":         termenv.ANSIYellow,
	"blue":           termenv.ANSIBlue,
	"magenta":        termenv.ANSIMagenta,
	"cyan":           termenv.ANSICyan,
	"white":          termenv.ANSIWhite,
	"bright-black":   termenv.ANSIBrightBlack,
	"gray":           termenv.ANSIBrightBlack,
	"grey":           termenv.ANSIBrightBlack,
	"bright-red":     termenv.ANSIBrightRed,
	"bright-green":   termenv.ANSIBrightGreen,
	"bright-yellow":  termenv.ANSIBrightYellow,
	"bright-blue":    termenv.ANSIBrightBlue,
	"bright-magenta": termenv.ANSIBrightMagenta,
	"bright-cyan":    termenv.ANSIBrightCyan,
	"bright-white":   termenv.ANSIBrightWhite,
}

var colorNames = func() map[termenv.ANSIColor]string {
	m := make(map[termenv.ANSIColor]string, len(namedColors))
	for name, c := range namedColors {
		if name == "gray" || name == "grey" {
			continue
		}
		m[c] = name
	}
	return m
}()

// ParseStyle parses a space-separated style description. Recognized words
// are "bold", "none", the color names "red", "bright-red", "gray" and so on,
// "#rrggbb" hex colors, and 256-color indexes such as "208". The empty string
// and "none" yield the zero Style.
func ParseStyle(s string) (Style, error) {
	var st Style
	for _, word := range strings.Fields(strings.ToLower(s)) {
		switch {
		case word == "none":
			continue
		case word == "bold":
			st.Bold = true
		case strings.HasPrefix(word, "#"):
			if len(word) != 7 {
				return Style{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidStyle, word)
			}
			if _, err := strconv.ParseUint(word[1:], 16, 32); err != nil {
				return Style{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidStyle, word)
			}
			st.Color = termenv.RGBColor(word)
		default:
			if c, ok := namedColors[word]; ok {
				st.Color = c
				continue
			}
			n, err := strconv.Atoi(word)
			if err != nil || n < 0 || n > 255 {
				return Style{}, fmt.Errorf("%w: unknown word %q", ErrInvalidStyle, word)
			}
			st.Color = termenv.ANSI256Color(n)
		}
	}
	return st, nil
}

// String returns the description ParseStyle accepts for s.
func (s Style) String() string {
	var words []string
	if s.Bold {
		words = append(words, "bold")
	}
	switch c := s.Color.(type) {
	case termenv.ANSIColor:
		words = append(words, colorNames[c])
	case termenv.ANSI256Color:
		words = append(words, strconv.Itoa(int(c)))
	case termenv.RGBColor:
		words = append(words, strings.ToLower(string(c)))
	}
	if len(words) == 0 {
		return "none"
	}
	return strings.Join(words, " ")
}

// sequence returns the escape sequence opening s under profile p, or "" when
// nothing would change.
func (s Style) sequence(p termenv.Profile) string {
	if p == termenv.Ascii {
		return ""
	}
	var params []string
	if s.Bold {
		params = append(params, termenv.BoldSeq)
	}
	if s.Color != nil {
		if c := p.Convert(s.Color); c != nil {
			if seq := c.Sequence(false); seq != "" {
				params = append(params, seq)
			}
		}
	}
	if len(params) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(params, ";") + "m"
}

// palette is a Theme resolved to escape sequences for one color profile.
// It is computed once per Printer and never modified.
type palette struct {
	header, err, def, str, boolean, container, sep, operator string
}

func newPalette(t Theme, p termenv.Profile) palette {
	return palette{
		header:    t.Header.sequence(p),
		err:       t.Error.sequence(p),
		def:       t.Default.sequence(p),
		str:       t.String.sequence(p),
		boolean:   t.Bool.sequence(p),
		container: t.Container.sequence(p),
		sep:       t.Separator.sequence(p),
		operator:  t.Operator.sequence(p),
	}
}

// paint wraps text in the open sequence and a reset.
func paint(open, text string) string {
	if open == "" {
		return text
	}
	return open + text + resetSequence
}
