package commands

import (
	"fmt"

	"github.com/fivetwenty-io/photo-album/internal/config"
	"github.com/fivetwenty-io/photo-album/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settingsView is the machine-readable form of "config show".
type settingsView struct {
	BaseURL    string `json:"base_url"    yaml:"base_url"`
	RetryCount string `json:"retry_count" yaml:"retry_count"`
	RetryMax   int    `json:"retry_max"   yaml:"retry_max"`
	Timeout    string `json:"timeout"     yaml:"timeout"`
	Verbose    bool   `json:"verbose"     yaml:"verbose"`
	Output     string `json:"output"      yaml:"output"`
	UserAgent  string `json:"user_agent"  yaml:"user_agent"`
	ConfigFile string `json:"config_file" yaml:"config_file"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the photo-album configuration file",
	}

	cmd.AddCommand(newConfigShowCommand(v))
	cmd.AddCommand(newConfigSetCommand(v))
	cmd.AddCommand(newConfigUnsetCommand(v))
	cmd.AddCommand(newConfigPathCommand(v))

	return cmd
}

func newConfigShowCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after the file, .env, environment and flags are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			path, err := config.Path(v)
			if err != nil {
				path = constants.NotAvailable
			}

			view := settingsView{
				BaseURL:    settings.BaseURL,
				RetryCount: settings.RetryCount,
				RetryMax:   settings.RetryMax(),
				Timeout:    settings.Timeout.String(),
				Verbose:    settings.Verbose,
				Output:     settings.Output,
				UserAgent:  settings.UserAgent,
				ConfigFile: path,
			}

			rows := make([][]string, 0, len(config.Keys())+1)
			for _, entry := range settings.Entries() {
				rows = append(rows, []string{entry.Key, entry.Value})
			}

			rows = append(rows, []string{"config_file", path})

			return render(cmd.OutOrStdout(), settings.Output, view, rows)
		},
	}
}

func newConfigSetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Validate and store a configuration value in the config file",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			path, err := config.Path(v)
			if err != nil {
				return err
			}

			err = config.Set(path, key, value)
			if err != nil {
				return fmt.Errorf("failed to set %s: %w", key, err)
			}

			return outputConfigUpdateResult(cmd, v, "Set", key, value, path)
		},
	}
}

func newConfigUnsetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file so its default applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			path, err := config.Path(v)
			if err != nil {
				return err
			}

			err = config.Unset(path, key)
			if err != nil {
				return fmt.Errorf("failed to unset %s: %w", key, err)
			}

			return outputConfigUpdateResult(cmd, v, "Unset", key, "", path)
		},
	}
}

func newConfigPathCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		Long:  "Print the path of the config file read and written by the CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path(v)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)

			return err
		},
	}
}

func outputConfigUpdateResult(cmd *cobra.Command, v *viper.Viper, action, key, value, path string) error {
	result := map[string]string{
		"action": action,
		"key":    key,
		"file":   path,
	}

	rows := [][]string{
		{"Action", action},
		{"Key", key},
	}

	if value != "" {
		result["value"] = value
		rows = append(rows, []string{"Value", value})
	}

	rows = append(rows, []string{"File", path})

	return render(cmd.OutOrStdout(), outputFormat(v), result, rows)
}
