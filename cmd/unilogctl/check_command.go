package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/unilog/adapter/unified"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show how a label would be routed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flush, err := ctx.bootstrap(cmd)
			if err != nil {
				return err
			}
			defer flush()

			a, err := adapterFor(label)
			if err != nil {
				return err
			}
			rows := [][]string{
				{"label", a.Label()},
				{"app id", a.Subsystem()},
				{"facility", cfg.Facility},
				{"bound", yesNo(a.Bound())},
				{"suppressed", yesNo(a.Suppressed())},
				{"min level", a.MinLevel().String()},
				{"metadata", unified.Prettify(a.MetadataSnapshot())},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows, nil, isTerminal(out)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Logger label to inspect")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
