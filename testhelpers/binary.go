package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	binaryPath string
	binaryOnce sync.Once
	binaryErr  error
)

// Binary returns the path of the git-trunk binary, building it on first use.
// The test is skipped when the go toolchain is not available.
func Binary(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}
	binaryOnce.Do(func() {
		binaryPath, binaryErr = buildBinary()
	})
	if binaryErr != nil {
		t.Fatalf("failed to build git-trunk binary: %v", binaryErr)
	}
	return binaryPath
}

// buildBinary builds the git-trunk binary and returns its path.
func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "git-trunk-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	path := filepath.Join(tmpDir, "git-trunk")
	cmd := exec.Command("go", "build", "-o", path, "./cmd/git-trunk")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tmpDir) // Ignore cleanup errors
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}
	return path, nil
}

// findModuleRoot walks up the directory tree from startDir to find the module root
// (directory containing go.mod file).
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
