package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cfgkit/launchcfg"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Look up a single raw value by key",
	Long: `Look up the raw string value for a key, including keys that have no
typed accessor. A key that was not present in the file is an error.

Examples:
  launchcfg get AppId
  launchcfg get Signature -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	value, ok := launchcfg.Instance().Raw(key)
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}

	f, err := newFormatter(viper.GetString("output"))
	if err != nil {
		return err
	}
	return f.FormatValue(cmd.OutOrStdout(), key, value)
}
