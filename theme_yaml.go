package dbg

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a style from its ParseStyle description.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: style must be a string", ErrInvalidStyle, node.Line)
	}
	st, err := ParseStyle(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = st
	return nil
}

// MarshalYAML encodes a style as its ParseStyle description.
func (s Style) MarshalYAML() (any, error) { return s.String(), nil }

// LoadTheme reads a YAML theme. Keys present in the document override the
// corresponding entries of [DefaultTheme]; unknown keys are rejected.
//
//	header: bold yellow
//	string: "#98c379"
//	separator: gray
func LoadTheme(r io.Reader) (Theme, error) {
	t := DefaultTheme()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if err == io.EOF {
			return t, nil
		}
		return Theme{}, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}
	return t, nil
}

// LoadThemeFile reads a YAML theme from path.
func LoadThemeFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, err
	}
	defer f.Close()
	return LoadTheme(f)
}

// WriteTheme encodes t as YAML.
func WriteTheme(w io.Writer, t Theme) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}
