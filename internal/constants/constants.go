package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under the user's home holding the config file.
	ConfigDirName = ".photo-album"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file extension and format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "PHOTOALBUM"

	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"
)

// Album API defaults.
const (
	// DefaultBaseURL is the photo collection endpoint used when none is configured.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com/photos"

	// AlbumIDQueryParam filters the photo collection by album.
	AlbumIDQueryParam = "albumId"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP attempt.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is used when the configured retry count is not a number.
	DefaultRetryMax = 5

	// DefaultRetryBase is the backoff unit; the wait before retry n is base * 2^n.
	DefaultRetryBase = 1 * time.Second

	// DefaultRetryJitter bounds the random delay added to each wait.
	DefaultRetryJitter = 1000 * time.Millisecond

	// ExponentialBackoffBase is the base for exponential backoff.
	ExponentialBackoffBase = 2
)

// Validation and limits.
const (
	// MinimumArgumentCount is the number of arguments taken by "config set".
	MinimumArgumentCount = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)
