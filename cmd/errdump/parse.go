package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/secureworks/errno"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse error dumps from files, or stdin",
		Long: "Parse reads every error dump found in the input, ignoring the text\n" +
			"around them, and writes them back in the selected format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.parse(cmd, args)
		},
	}
	cmd.Flags().StringP(keyOutput, "o", "text", "Output format: text, json, yaml or toml")
	return cmd
}

func (a *app) parse(cmd *cobra.Command, files []string) error {
	enc, err := newEncoder(a.v.GetString(keyOutput), !a.v.GetBool(keyNoColor))
	if err != nil {
		return err
	}

	var values []*errno.Value
	read := func(name string, r io.Reader) error {
		text, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read %s: %v", name, err)
		}
		parsed, err := errno.ParseDumps(text)
		for _, v := range parsed {
			a.log.Debug().Str("source", name).Object("error", v).Msg("parsed dump")
		}
		if err != nil {
			a.log.Error().Str("source", name).Err(err).Msg("malformed dump")
			return fmt.Errorf("%s: %v", name, err)
		}
		if len(parsed) == 0 {
			a.log.Warn().Str("source", name).Msg("no dump found")
		}
		values = append(values, parsed...)
		return nil
	}

	if len(files) == 0 {
		if err := read("stdin", cmd.InOrStdin()); err != nil {
			return err
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = read(name, f)
		f.Close()
		if err != nil {
			return err
		}
	}

	a.log.Info().Int("count", len(values)).Msg("parsed dumps")
	return enc.encode(cmd.OutOrStdout(), values)
}
