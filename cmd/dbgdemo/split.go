package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bjaus/dbg"
)

func (a *app) splitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "split <args>",
		Short:   "Split argument list source text at top-level commas",
		Example: `  dbgdemo split 'm[K, V]{}, f(a, b), "x,y"'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := dbg.SplitArgs(args[0])
			a.logger.Debug("Split argument list", zap.Int("parts", len(parts)))
			for _, part := range parts {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), part); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
