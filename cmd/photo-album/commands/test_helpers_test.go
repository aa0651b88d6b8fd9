package commands_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/photo-album/cmd/photo-album/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// execute runs a fresh root command against an isolated config file and
// returns stdout, stderr and the error.
func execute(t *testing.T, v *viper.Viper, configFile string, args ...string) (string, string, error) {
	t.Helper()

	if v == nil {
		v = viper.New()
	}

	root := commands.NewRootCommand(commands.Options{
		Build: commands.BuildInfo{
			Version: "1.2.3",
			Commit:  "abc123",
			Date:    "2024-01-01",
		},
		Viper:      v,
		ConfigFile: configFile,
		DotEnvFile: filepath.Join(t.TempDir(), "missing.env"),
	})

	var stdout, stderr bytes.Buffer

	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}
