package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/navtree/internal/config"
)

var configOutput = newOutputFormat(config.OutputYAML, config.OutputYAML, config.OutputJSON)

// configCmd groups configuration-related subcommands similar to gh-style CLIs.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage navtree configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show merged configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rc, err := loadRunConfig(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if configOutput.String() == config.OutputJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rc.file)
		}
		data, err := yaml.Marshal(rc.file)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in default config (a starting point for your own)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.ResolvePath(configFile)
		if path == "" {
			path = "(none, using defaults)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() { //nolint:gochecknoinits
	configGetCmd.Flags().VarP(configOutput, "output", "o", configOutput.usage())
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configDefaultCmd)
	configCmd.AddCommand(configPathCmd)
}
