// Package commands wires the photo-album CLI.
package commands

import (
	"fmt"

	"github.com/fivetwenty-io/photo-album/internal/client"
	"github.com/fivetwenty-io/photo-album/internal/config"
	"github.com/fivetwenty-io/photo-album/internal/console"
	"github.com/fivetwenty-io/photo-album/internal/dispatch"
	"github.com/fivetwenty-io/photo-album/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Options configures the root command.
type Options struct {
	Build BuildInfo
	// Viper holds the resolved settings. A fresh instance is used when nil.
	Viper *viper.Viper
	// ConfigFile is used when --config is not given.
	ConfigFile string
	// DotEnvFile overrides the .env location.
	DotEnvFile string
}

type app struct {
	v    *viper.Viper
	opts Options
}

// NewRootCommand creates the photo-album root command. The root does not
// parse flags: every argument is handed to the dispatcher as a token.
func NewRootCommand(opts Options) *cobra.Command {
	v := opts.Viper
	if v == nil {
		v = viper.New()
	}

	a := &app{v: v, opts: opts}

	cmd := &cobra.Command{
		Use:   "photo-album [--h | --allalbums | --album=ID | --album=ID*photo=ID]",
		Short: "Browse photo albums served by a JSON photo API",
		Long: `Browse photo albums served by a JSON photo API.

Tokens are read in order and the first recognized one is executed:
  --h                   show the available commands
  --allalbums           list every album id
  --album=ID            list the photos in an album
  --album=ID*photo=ID   show one photo from an album

Settings come from $HOME/.photo-album/config.yml, a .env file and
PHOTOALBUM_* environment variables (PHOTOALBUM_BASE_URL,
PHOTOALBUM_RETRY_COUNT, PHOTOALBUM_TIMEOUT, PHOTOALBUM_VERBOSE).`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE:  a.initConfig,
		RunE:               a.runTokens,
	}

	// Global flags, honored by subcommands
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.photo-album/config.yml)")
	cmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = v.BindPFlag(config.KeyOutput, cmd.PersistentFlags().Lookup("output"))
	_ = v.BindPFlag(config.KeyVerbose, cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(NewVersionCommand(v, opts.Build))
	cmd.AddCommand(NewConfigCommand(v))

	return cmd
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	configFile := a.opts.ConfigFile

	if flag := cmd.Flags().Lookup("config"); flag != nil && flag.Changed {
		configFile = flag.Value.String()
	}

	err := config.Init(a.v, config.Options{
		ConfigFile: configFile,
		DotEnvFile: a.opts.DotEnvFile,
		Version:    a.opts.Build.Version,
	})
	if err != nil {
		return fmt.Errorf("initializing configuration: %w", err)
	}

	return nil
}

func (a *app) runTokens(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), settings.Verbose)

	albumClient, err := client.New(settings.AlbumConfig(logger))
	if err != nil {
		return fmt.Errorf("creating album client: %w", err)
	}

	out := console.NewWriter(cmd.OutOrStdout())

	err = dispatch.New(albumClient, out, dispatch.WithLogger(logger)).Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	return out.Err()
}
