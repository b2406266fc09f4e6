package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cfgkit/launchcfg"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Enumerate all key/value pairs in file order",
	Long: `Enumerate every key/value pair read from the configuration file, in
the order the keys first appeared.

Examples:
  launchcfg list
  launchcfg list -o yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	f, err := newFormatter(viper.GetString("output"))
	if err != nil {
		return err
	}
	return f.FormatEntries(cmd.OutOrStdout(), launchcfg.Instance().All())
}
