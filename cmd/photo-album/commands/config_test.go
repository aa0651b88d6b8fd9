package commands_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fivetwenty-io/photo-album/internal/config"
	"github.com/fivetwenty-io/photo-album/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigCommand_SetShowUnset(t *testing.T) {
	t.Parallel()

	configFile := filepath.Join(t.TempDir(), ".photo-album", "config.yml")

	_, _, err := execute(t, nil, "", "config", "set", "base_url", "http://localhost:8080/photos", "--config", configFile)
	require.NoError(t, err)

	_, _, err = execute(t, nil, "", "config", "set", "retry_count", "2", "--config", configFile)
	require.NoError(t, err)

	stdout, _, err := execute(t, nil, "", "config", "show", "--output", "json", "--config", configFile)
	require.NoError(t, err)

	shown := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	assert.Equal(t, "http://localhost:8080/photos", shown["base_url"])
	assert.Equal(t, "2", shown["retry_count"])
	assert.InDelta(t, 2, shown["retry_max"], 0)
	assert.Equal(t, "30s", shown["timeout"])
	assert.Equal(t, "photo-album/1.2.3", shown["user_agent"])
	assert.Equal(t, configFile, shown["config_file"])

	_, _, err = execute(t, nil, "", "config", "unset", "base_url", "--config", configFile)
	require.NoError(t, err)

	stdout, _, err = execute(t, nil, "", "config", "show", "--output", "yaml", "--config", configFile)
	require.NoError(t, err)

	shown = map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &shown))
	assert.Equal(t, constants.DefaultBaseURL, shown["base_url"])
	assert.Equal(t, 2, shown["retry_max"])
}

func TestConfigCommand_ShowTable(t *testing.T) {
	t.Parallel()

	configFile := filepath.Join(t.TempDir(), "config.yml")

	stdout, _, err := execute(t, nil, configFile, "config", "show")
	require.NoError(t, err)

	for _, key := range config.Keys() {
		assert.Contains(t, stdout, key)
	}

	assert.Contains(t, stdout, "5 (effective 5)")
}

func TestConfigCommand_SetResult(t *testing.T) {
	t.Parallel()

	configFile := filepath.Join(t.TempDir(), "config.yml")

	stdout, _, err := execute(t, nil, configFile, "config", "set", "timeout", "45s", "--output", "json")
	require.NoError(t, err)

	result := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, map[string]string{
		"action": "Set",
		"key":    "timeout",
		"value":  "45s",
		"file":   configFile,
	}, result)

	values, err := config.ReadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, "45s", values["timeout"])
}

func TestConfigCommand_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, nil, filepath.Join(t.TempDir(), "config.yml"), "config", "set", "token", "abc")
		require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, nil, filepath.Join(t.TempDir(), "config.yml"), "config", "set", "output", "csv")
		require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, nil, filepath.Join(t.TempDir(), "config.yml"), "config", "set", "timeout")
		require.Error(t, err)
	})

	t.Run("invalid output flag on show", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, nil, filepath.Join(t.TempDir(), "config.yml"), "config", "show", "--output", "xml")
		require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
	})
}

func TestConfigCommand_Path(t *testing.T) {
	t.Parallel()

	configFile := filepath.Join(t.TempDir(), "custom.yml")

	stdout, _, err := execute(t, nil, "", "config", "path", "--config", configFile)
	require.NoError(t, err)
	assert.Equal(t, configFile, strings.TrimSpace(stdout))
}
