package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cfgkit/launchcfg"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the full configuration and its well-known fields",
	Long: `Print every key/value pair read from the configuration file followed
by the well-known typed fields.

Examples:
  launchcfg show
  launchcfg show --config /opt/game/config.txt
  launchcfg show -o json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	f, err := newFormatter(viper.GetString("output"))
	if err != nil {
		return err
	}
	return f.FormatSummary(cmd.OutOrStdout(), launchcfg.Instance())
}
