package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/unilog"
)

func newEmitCommand(ctx *commandContext) *cobra.Command {
	var label string
	var level string
	var meta []string

	cmd := &cobra.Command{
		Use:   "emit MESSAGE...",
		Short: "Send one message through the adapter for a label",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := unilog.ParseLevel(level)
			if err != nil {
				return err
			}
			md, err := parseMeta(meta)
			if err != nil {
				return err
			}
			flush, err := ctx.bootstrap(cmd)
			if err != nil {
				return err
			}
			defer flush()

			unilog.Get(label).Log(lvl, strings.Join(args, " "), md)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Logger label; also the environment variable that mutes it")
	cmd.Flags().StringVar(&level, "level", "info", "Level: trace, debug, info, notice, warning, error, critical")
	cmd.Flags().StringArrayVarP(&meta, "meta", "m", nil, "Per-call metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

// parseMeta turns key=value pairs into metadata. Later pairs win.
func parseMeta(pairs []string) (unilog.Metadata, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	md := make(unilog.Metadata, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --meta %q: want key=value", p)
		}
		md[k] = unilog.StringValue(v)
	}
	return md, nil
}
