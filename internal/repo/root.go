// Package repo locates the site repository that weekly stubs are written into.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// ContentDir is the site content directory relative to the repository root.
var ContentDir = filepath.Join("blog", "content")

// markers identify a repository root, most specific first.
var markers = []string{
	ContentDir,
	"blog",
	".git",
}

// DetectRoot walks upward from dir and returns the first directory that
// contains one of the root markers. For each directory, markers are checked in
// order, and a closer directory wins over a farther one. If no marker is found
// the absolute form of dir is returned.
func DetectRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for candidate := abs; ; {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(candidate, marker)); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(candidate)
		if parent == candidate {
			return abs, nil
		}
		candidate = parent
	}
}

// DetectRootFromWorkingDir runs DetectRoot from the current working directory.
func DetectRootFromWorkingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return DetectRoot(cwd)
}

// ContentRoot returns <root>/blog/content.
func ContentRoot(root string) string {
	return filepath.Join(root, ContentDir)
}

// WeeklyDir returns the output directory for one language: <content>/<lang>/weekly.
func WeeklyDir(contentRoot, lang string) string {
	return filepath.Join(contentRoot, lang, "weekly")
}
