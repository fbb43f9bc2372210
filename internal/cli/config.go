package cli

import (
	"fmt"
	"io"

	"github.com/cogmd/cogmd/internal/config"
	"github.com/spf13/cobra"
)

var configListOutput string

func init() {
	configListCmd.Flags().StringVarP(&configListOutput, "output", "o", outputText, "Output format: text, json, yaml")
	configCmd.AddCommand(configSetCmd, configGetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write CogMD configuration stored at ~/.cogmd/config.yaml.
COGMD_<KEY> environment variables take precedence over the file.

Keys:
  extensions_dir  install root used instead of ~/.cogmd/extensions
  log_level       default log level (debug, info, warn, error)`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if key == config.KeyLogLevel {
			if _, err := newLogger(io.Discard, value); err != nil {
				return err
			}
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnown(args[0]) {
			return fmt.Errorf("unknown config key %q (known: %v)", args[0], config.Keys)
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every configuration key and its effective value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutputFormat(configListOutput); err != nil {
			return err
		}
		values := make(map[string]string, len(config.Keys))
		for _, key := range config.Keys {
			values[key] = config.Get(key)
		}
		return writeOutput(cmd.OutOrStdout(), configListOutput, values, func(w io.Writer) {
			fmt.Fprintf(w, "%s\n", config.FilePath())
			for _, key := range config.Keys {
				v := values[key]
				if v == "" {
					v = "(unset)"
				}
				fmt.Fprintf(w, "  %-15s %s\n", key, v)
			}
		})
	},
}
