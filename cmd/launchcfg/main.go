package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cfgkit/launchcfg"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "launchcfg",
	Short:   "Inspect a launcher's key=value configuration file",
	Long: `launchcfg reads a flat key=value configuration file (Java properties
syntax) and prints its typed fields and raw entries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readConfig(cmd)
		setupLogging()
		return initStore()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "configuration file path (default: ./config.txt, env: LAUNCHCFG_CONFIG)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: text, json, yaml (default: text, env: LAUNCHCFG_OUTPUT)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: LAUNCHCFG_LOG_LEVEL)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initStore constructs the configuration snapshot from --config when given.
// Without an explicit path the subcommands fall back to launchcfg.Instance,
// which reads the default path lazily.
func initStore() error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}
	_, err := launchcfg.Init(path)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
