// Package config resolves CLI settings from defaults, the YAML config file,
// a .env file, PHOTOALBUM_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/photo-album/internal/constants"
	"github.com/fivetwenty-io/photo-album/pkg/album"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyBaseURL    = "base_url"
	KeyRetryCount = "retry_count"
	KeyTimeout    = "timeout"
	KeyVerbose    = "verbose"
	KeyOutput     = "output"
	KeyUserAgent  = "user_agent"
)

// Keys lists every configuration key in display order.
func Keys() []string {
	return []string{KeyBaseURL, KeyRetryCount, KeyTimeout, KeyVerbose, KeyOutput, KeyUserAgent}
}

// IsKey reports whether key is a known configuration key.
func IsKey(key string) bool {
	for _, known := range Keys() {
		if key == known {
			return true
		}
	}

	return false
}

// Options controls where Init looks for configuration.
type Options struct {
	// ConfigFile overrides the config file location. When empty the
	// PHOTOALBUM_CONFIG variable is consulted, then $HOME/.photo-album/config.yml.
	ConfigFile string
	// DotEnvFile is loaded into the process environment when it exists.
	// Defaults to .env in the working directory.
	DotEnvFile string
	// Version is embedded in the default User-Agent.
	Version string
}

// Settings is the resolved configuration.
type Settings struct {
	BaseURL    string        `json:"base_url"    yaml:"base_url"`
	RetryCount string        `json:"retry_count" yaml:"retry_count"`
	Timeout    time.Duration `json:"timeout"     yaml:"timeout"`
	Verbose    bool          `json:"verbose"     yaml:"verbose"`
	Output     string        `json:"output"      yaml:"output"`
	UserAgent  string        `json:"user_agent"  yaml:"user_agent"`
}

// Entry is a single key and its effective value.
type Entry struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper, version string) {
	v.SetDefault(KeyBaseURL, constants.DefaultBaseURL)
	v.SetDefault(KeyRetryCount, strconv.Itoa(constants.DefaultRetryMax))
	v.SetDefault(KeyTimeout, constants.DefaultHTTPTimeout.String())
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyOutput, constants.FormatTable)
	v.SetDefault(KeyUserAgent, UserAgent(version))
}

// UserAgent returns the default User-Agent for version.
func UserAgent(version string) string {
	if version == "" {
		version = "dev"
	}

	return "photo-album/" + version
}

// Init wires v to the config file and environment. A missing config file or
// .env file is not an error.
func Init(v *viper.Viper, opts Options) error {
	SetDefaults(v, opts.Version)

	dotEnv := opts.DotEnvFile
	if dotEnv == "" {
		dotEnv = constants.DotEnvFile
	}

	err := godotenv.Load(dotEnv)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", dotEnv, err)
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = os.Getenv(constants.EnvPrefix + "_CONFIG")
	}

	if configFile == "" {
		configFile, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	v.SetConfigFile(configFile)
	v.SetConfigType(constants.ConfigFileType)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil && !isMissingConfig(err) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	timeout, err := parseTimeout(v.GetString(KeyTimeout))
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		BaseURL:    strings.TrimSpace(v.GetString(KeyBaseURL)),
		RetryCount: v.GetString(KeyRetryCount),
		Timeout:    timeout,
		Verbose:    v.GetBool(KeyVerbose),
		Output:     strings.ToLower(v.GetString(KeyOutput)),
		UserAgent:  v.GetString(KeyUserAgent),
	}

	err = ValidateBaseURL(settings.BaseURL)
	if err != nil {
		return nil, err
	}

	err = validateOutput(settings.Output)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// RetryMax parses RetryCount, falling back to the default when it is not a
// non-negative integer.
func (s *Settings) RetryMax() int {
	count, err := strconv.Atoi(strings.TrimSpace(s.RetryCount))
	if err != nil || count < 0 {
		return constants.DefaultRetryMax
	}

	return count
}

// AlbumConfig converts the settings into a client configuration.
func (s *Settings) AlbumConfig(logger album.Logger) *album.Config {
	return &album.Config{
		BaseURL:     s.BaseURL,
		RetryMax:    s.RetryMax(),
		RetryBase:   constants.DefaultRetryBase,
		RetryJitter: constants.DefaultRetryJitter,
		Timeout:     s.Timeout,
		Debug:       s.Verbose,
		Logger:      logger,
		UserAgent:   s.UserAgent,
	}
}

// Entries returns the effective settings in display order.
func (s *Settings) Entries() []Entry {
	return []Entry{
		{Key: KeyBaseURL, Value: s.BaseURL},
		{Key: KeyRetryCount, Value: fmt.Sprintf("%s (effective %d)", s.RetryCount, s.RetryMax())},
		{Key: KeyTimeout, Value: s.Timeout.String()},
		{Key: KeyVerbose, Value: strconv.FormatBool(s.Verbose)},
		{Key: KeyOutput, Value: s.Output},
		{Key: KeyUserAgent, Value: s.UserAgent},
	}
}

// ValidateBaseURL checks that raw is an absolute http or https URL.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return album.ErrBaseURLRequired
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", album.ErrInvalidBaseURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: %s", album.ErrInvalidBaseURL, raw)
	}

	return nil
}

// DefaultPath returns $HOME/.photo-album/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrNoHomeDirectory, err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// Path returns the config file v reads from, or the default location.
func Path(v *viper.Viper) (string, error) {
	if used := v.ConfigFileUsed(); used != "" {
		return used, nil
	}

	return DefaultPath()
}

func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return constants.DefaultHTTPTimeout, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil || timeout < 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidTimeout, raw)
	}

	return timeout, nil
}

func validateOutput(output string) error {
	switch output {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, output)
	}
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
