//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/photo-album/pkg/album"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BinaryPath  string
	LiveBaseURL string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BinaryPath:  getBinaryPath(),
		LiveBaseURL: os.Getenv("PHOTOALBUM_INTEGRATION_BASE_URL"),
		Verbose:     os.Getenv("PHOTOALBUM_INTEGRATION_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the photo-album binary
func getBinaryPath() string {
	if path := os.Getenv("PHOTOALBUM_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../photo-album",
		"./photo-album",
		"../photo-album",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "photo-album" // Fallback to PATH
}

// SkipIfMissingBinary skips the test when the binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("photo-album binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the binary with an isolated home directory and environment
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
	home   string
	env    map[string]string
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		t:      t,
		home:   t.TempDir(),
		env:    map[string]string{},
	}
}

// Setenv sets a variable for every subsequent run
func (runner *CommandRunner) Setenv(key, value string) {
	runner.env[key] = value
}

// ConfigFile returns the default config location inside the runner's home
func (runner *CommandRunner) ConfigFile() string {
	return filepath.Join(runner.home, ".photo-album", "config.yml")
}

// Run executes a photo-album command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Dir = runner.home
	cmd.Env = runner.environ()

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// environ drops inherited PHOTOALBUM_* variables so the host cannot leak settings
func (runner *CommandRunner) environ() []string {
	env := []string{"HOME=" + runner.home}

	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "PHOTOALBUM_") || strings.HasPrefix(entry, "HOME=") {
			continue
		}

		env = append(env, entry)
	}

	for key, value := range runner.env {
		env = append(env, key+"="+value)
	}

	return env
}

// FakePhotoAPI serves photos and honors the albumId filter like the public API
type FakePhotoAPI struct {
	*httptest.Server

	failures atomic.Int32
	requests atomic.Int32
}

// NewFakePhotoAPI starts a fake API that answers the first failures requests
// with 503 before serving photos.
func NewFakePhotoAPI(t *testing.T, photos []album.Photo, failures int) *FakePhotoAPI {
	t.Helper()

	api := &FakePhotoAPI{}
	api.failures.Store(int32(failures)) //nolint:gosec // test input

	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.requests.Add(1)

		if api.failures.Add(-1) >= 0 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		result := photos

		if raw := r.URL.Query().Get("albumId"); raw != "" {
			albumID, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "bad albumId", http.StatusBadRequest)

				return
			}

			result = []album.Photo{}

			for _, photo := range photos {
				if photo.AlbumID == albumID {
					result = append(result, photo)
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}))

	t.Cleanup(api.Close)

	return api
}

// Requests returns how many requests the fake API received
func (api *FakePhotoAPI) Requests() int {
	return int(api.requests.Load())
}

// SamplePhotos returns two albums of two photos each
func SamplePhotos() []album.Photo {
	return []album.Photo{
		{AlbumID: 1, ID: 1, Title: "accusamus beatae ad facilis cum similique qui sunt"},
		{AlbumID: 1, ID: 2, Title: "reprehenderit est deserunt velit ipsam"},
		{AlbumID: 2, ID: 51, Title: "non sunt voluptatem placeat consequuntur rem incidunt"},
		{AlbumID: 2, ID: 52, Title: "eveniet pariatur quia nobis reiciendis laboriosam ea"},
	}
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}
