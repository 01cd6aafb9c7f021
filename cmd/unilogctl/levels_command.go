package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/unilog"
	"github.com/trickstertwo/unilog/adapter/unified"
)

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List levels with their icon and native severity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Level", "Value", "Icon", "Severity"},
				levelRows(),
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
				isTerminal(out),
			))
			return nil
		},
	}
}

func levelRows() [][]string {
	rows := make([][]string, 0, len(unilog.Levels))
	for _, l := range unilog.Levels {
		rows = append(rows, []string{
			l.String(),
			strconv.Itoa(int(l)),
			unified.Icon(l),
			unified.SeverityFor(l).String(),
		})
	}
	return rows
}
