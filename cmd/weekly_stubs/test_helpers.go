package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the weekly_stubs binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "weekly_stubs"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/weekly_stubs ./cmd/weekly_stubs'", binaryPath)
	}

	return binaryPath
}
