// Package testutil provides test utilities and helpers for stencil tests.
package testutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// HelperProcessConfig configures the behavior of TestHelperProcess.
type HelperProcessConfig struct {
	// ExitCode is the exit code to return (default 0).
	ExitCode int `json:"exit_code"`
	// Stdout is the content to write to stdout.
	Stdout string `json:"stdout"`
	// Stderr is the content to write to stderr.
	Stderr string `json:"stderr"`
	// RecordPath, when set, receives a JSON HelperProcessRecord of the invocation.
	RecordPath string `json:"record_path"`
	// CreateFiles are written (empty) relative to the working directory, simulating command output.
	CreateFiles []string `json:"create_files"`
}

// HelperProcessRecord describes how the helper process was invoked.
type HelperProcessRecord struct {
	Args []string `json:"args"`
	Dir  string   `json:"dir"`
}

// HelperProcessEnvVars contains the environment variable names used by TestHelperProcess.
const (
	// EnvWantHelperProcess signals that the test binary should run as a helper process.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "GO_HELPER_PROCESS_CONFIG"
)

// TestHelperProcess is a function to be called from a test function
// to implement the helper process pattern. When invoked with GO_WANT_HELPER_PROCESS=1,
// it behaves as a mock subprocess and exits without returning.
//
// Usage in test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.TestHelperProcess(t)
//	}
func TestHelperProcess(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	config := parseHelperConfig()
	runHelperProcess(config, argsAfterDashes(os.Args))
}

// HelperCommand returns the executable, leading arguments and environment that
// run testName as a helper process. Arguments appended after the leading ones
// are what the helper records as its own.
func HelperCommand(t *testing.T, testName string, config HelperProcessConfig) (name string, args []string, env []string) {
	t.Helper()

	testBinary, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to get test binary path: %v", err)
	}

	configJSON, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("encoding helper config: %v", err)
	}

	env = []string{
		EnvWantHelperProcess + "=1",
		EnvHelperProcessConfig + "=" + string(configJSON),
	}
	return testBinary, []string{"-test.run=^" + testName + "$", "--"}, env
}

// ReadHelperRecord loads the record written by the helper process.
// It returns nil when the helper was never invoked.
func ReadHelperRecord(t *testing.T, path string) *HelperProcessRecord {
	t.Helper()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading helper record: %v", err)
	}

	var rec HelperProcessRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("parsing helper record: %v", err)
	}
	return &rec
}

// parseHelperConfig parses HelperProcessConfig from environment variable.
func parseHelperConfig() HelperProcessConfig {
	config := HelperProcessConfig{}
	configJSON := os.Getenv(EnvHelperProcessConfig)
	if configJSON != "" {
		// Ignore parse errors; use defaults on failure
		_ = json.Unmarshal([]byte(configJSON), &config)
	}
	return config
}

// argsAfterDashes returns the arguments following the first "--".
func argsAfterDashes(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args[i+1:]
		}
	}
	return nil
}

// runHelperProcess executes the helper process behavior and always exits.
func runHelperProcess(config HelperProcessConfig, args []string) {
	dir, _ := os.Getwd()

	if config.RecordPath != "" {
		data, _ := json.Marshal(HelperProcessRecord{Args: args, Dir: dir})
		_ = os.WriteFile(config.RecordPath, data, 0o644)
	}

	for _, f := range config.CreateFiles {
		path := filepath.Join(dir, f)
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
		_ = os.WriteFile(path, nil, 0o644)
	}

	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}

	os.Exit(config.ExitCode)
}
