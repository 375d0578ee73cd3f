package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/bjaus/dbg"
)

func (a *app) themeCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the palette, each entry in its own style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := dbg.DefaultTheme()
			if a.opts.theme != "" {
				t, err := dbg.LoadThemeFile(a.opts.theme)
				if err != nil {
					return fmt.Errorf("load theme %s: %w", a.opts.theme, err)
				}
				theme = t
			}
			out := cmd.OutOrStdout()
			if asYAML {
				return dbg.WriteTheme(out, theme)
			}
			p, err := a.printer(out, "")
			if err != nil {
				return err
			}
			for name, style := range theme.Entries() {
				line := runewidth.FillRight(name, 10) + p.Styled(style, style.String())
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the theme as YAML")
	return cmd
}
