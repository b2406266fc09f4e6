package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("output", "text")
	viper.SetDefault("log.level", "info")
}

// readConfig wires flags and LAUNCHCFG_* environment variables into viper.
// These are the tool's own knobs; the configuration file itself is parsed by
// the launchcfg package.
func readConfig(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		slog.Warn("failed to bind flags", "err", err)
	}

	viper.SetEnvPrefix("LAUNCHCFG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
