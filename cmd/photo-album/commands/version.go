package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(v *viper.Viper, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the photo-album CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit"  yaml:"commit"`
				Built   string `json:"built"   yaml:"built"`
			}

			versionInfo := VersionInfo{
				Version: info.Version,
				Commit:  info.Commit,
				Built:   info.Date,
			}

			return render(cmd.OutOrStdout(), outputFormat(v), versionInfo, [][]string{
				{"Version", info.Version},
				{"Commit", info.Commit},
				{"Built", info.Date},
			})
		},
	}
}
