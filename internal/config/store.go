package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/photo-album/internal/constants"
	"gopkg.in/yaml.v3"
)

// ReadFile returns the values stored in the YAML file at path. A missing file
// yields an empty map.
func ReadFile(path string) (map[string]interface{}, error) {
	// path comes from the user's own flag, environment or home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]interface{}{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	values := map[string]interface{}{}

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return values, nil
}

// Save writes values to path as YAML, creating the parent directory.
func Save(path string, values map[string]interface{}) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Set validates value for key and stores it in the file at path.
func Set(path, key, value string) error {
	stored, err := normalize(key, value)
	if err != nil {
		return err
	}

	values, err := ReadFile(path)
	if err != nil {
		return err
	}

	values[key] = stored

	return Save(path, values)
}

// Unset removes key from the file at path.
func Unset(path, key string) error {
	if !IsKey(key) {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	values, err := ReadFile(path)
	if err != nil {
		return err
	}

	delete(values, key)

	return Save(path, values)
}

// normalize converts a command-line value into the form written to the file.
// retry_count is kept as given; an unparsable count falls back at load time.
func normalize(key, value string) (interface{}, error) {
	value = strings.TrimSpace(value)

	switch key {
	case KeyBaseURL:
		err := ValidateBaseURL(value)
		if err != nil {
			return nil, err
		}

		return value, nil
	case KeyTimeout:
		timeout, err := parseTimeout(value)
		if err != nil {
			return nil, err
		}

		return timeout.String(), nil
	case KeyVerbose:
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}

		return verbose, nil
	case KeyOutput:
		output := strings.ToLower(value)

		err := validateOutput(output)
		if err != nil {
			return nil, err
		}

		return output, nil
	case KeyRetryCount, KeyUserAgent:
		return value, nil
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}
}
