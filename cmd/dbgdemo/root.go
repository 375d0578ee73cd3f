package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/dbg"
)

type options struct {
	color    string
	theme    string
	verbose  bool
	maxDepth int
	align    bool
}

type app struct {
	opts      options
	newLogger func(verbose bool) (*zap.Logger, error)
	logger    *zap.Logger
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func newRootCmd(build func(verbose bool) (*zap.Logger, error)) *cobra.Command {
	a := &app{newLogger: build, logger: zap.NewNop()}

	modes := make([]string, 0, len(dbg.ColorModes()))
	for _, m := range dbg.ColorModes() {
		modes = append(modes, m.String())
	}

	root := &cobra.Command{
		Use:   "dbgdemo",
		Short: "Render sample diagnostics",
		Long: `dbgdemo renders a set of sample values the way dbg.Debug prints them.

Run without arguments to print the samples.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		Args: cobra.NoArgs,
		RunE: a.runSamples,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.color, "color", dbg.ColorAuto.String(), "When to color output ("+strings.Join(modes, ", ")+")")
	flags.StringVar(&a.opts.theme, "theme", "", "YAML theme file")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.IntVar(&a.opts.maxDepth, "max-depth", dbg.DefaultMaxDepth, "Maximum container nesting")
	flags.BoolVar(&a.opts.align, "align", false, "Align the = signs of each diagnostic")

	root.AddCommand(a.samplesCmd(), a.splitCmd(), a.themeCmd())
	return root
}

// printer builds a Printer from the flags. Diagnostics made from entry
// render without a function name in their header.
func (a *app) printer(w io.Writer, entry string) (*dbg.Printer, error) {
	mode, err := dbg.ParseColorMode(a.opts.color)
	if err != nil {
		return nil, err
	}
	cfg := dbg.Config{
		Color:      mode,
		EntryFunc:  entry,
		MaxDepth:   a.opts.maxDepth,
		AlignNames: a.opts.align,
	}
	if a.opts.theme != "" {
		theme, err := dbg.LoadThemeFile(a.opts.theme)
		if err != nil {
			return nil, fmt.Errorf("load theme %s: %w", a.opts.theme, err)
		}
		cfg.Theme = &theme
		a.logger.Debug("Theme loaded", zap.String("path", a.opts.theme))
	}
	a.logger.Debug("Printer configured",
		zap.Stringer("color", mode),
		zap.Int("max_depth", cfg.MaxDepth),
		zap.Bool("align", cfg.AlignNames))
	return dbg.New(w, cfg), nil
}
