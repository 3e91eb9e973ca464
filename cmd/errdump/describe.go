package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/secureworks/errno"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe CODE...",
		Short: "Print the name and description of status codes",
		Long: "Describe accepts numeric codes (13) and symbolic names (EACCES)\n" +
			"and prints one line per code: name, number and description.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.describe(cmd, args)
		},
	}
}

func (a *app) describe(cmd *cobra.Command, args []string) error {
	name := color.New(color.FgRed, color.Bold)
	if a.v.GetBool(keyNoColor) {
		name.DisableColor()
	}

	w := cmd.OutOrStdout()
	for _, arg := range args {
		code, ok := errno.ParseCode(arg)
		if !ok {
			a.log.Error().Str("code", arg).Msg("unknown code")
			return fmt.Errorf("unknown code %q", arg)
		}
		a.log.Debug().Uint16("code", uint16(code)).Str("input", arg).Msg("describe")
		if _, err := name.Fprintf(w, "%-15s", code.Name()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, " %4d  %s\n", uint16(code), code.Description()); err != nil {
			return err
		}
	}
	return nil
}
