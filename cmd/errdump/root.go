package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Every key is also a flag, and an environment
// variable with the ERRDUMP_ prefix: ERRDUMP_LOG_LEVEL=debug.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyNoColor  = "no-color"
	keyOutput   = "output"
)

// app is the state shared by the subcommands once flags, environment
// and config file are merged.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v, log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "errdump",
		Short:         "Inspect errno error dumps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	globalFlags(cmd.PersistentFlags())

	cmd.AddCommand(newParseCmd(a), newDescribeCmd(a))
	return cmd
}

func globalFlags(flags *pflag.FlagSet) {
	flags.String(keyConfig, "", "Config file (json, yaml or toml)")
	flags.String(keyLogLevel, "warn", "Log level: trace, debug, info, warn, error")
	flags.Bool(keyNoColor, false, "Disable colored output")
}

func (a *app) configure(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix("errdump")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if file := a.v.GetString(keyConfig); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %v", err)
		}
	}

	level, err := zerolog.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("invalid %s: %v", keyLogLevel, err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		NoColor:    a.v.GetBool(keyNoColor),
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()

	if file := a.v.ConfigFileUsed(); file != "" {
		a.log.Debug().Str("file", file).Msg("loaded config")
	}
	return nil
}
