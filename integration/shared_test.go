//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedSkoscanPath holds the path to a shared skoscan binary built once for all tests.
	sharedSkoscanPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getSkoscanBinary returns the path to the skoscan binary, building it once if needed.
func getSkoscanBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "skoscan-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		skoscanPath := filepath.Join(tempDir, "skoscan")
		buildCmd := exec.Command("go", "build", "-o", skoscanPath, "./cmd/skoscan")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build skoscan: %v", err))
		}

		sharedSkoscanPath = skoscanPath
	})

	return sharedSkoscanPath
}

func runSkoscanCommand(t *testing.T, args ...string) error {
	skoscanPath := getSkoscanBinary()
	cmd := exec.Command(skoscanPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
