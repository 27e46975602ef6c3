// Package gradle locates Gradle projects and builds tool invocations.
package gradle

import (
	"fmt"
	"os"
	"path/filepath"
)

// rootMarkers are files that identify a Gradle project root, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rootMarkers = []string{
	"settings.gradle.kts",
	"settings.gradle",
	"gradlew",
	"build.gradle.kts",
	"build.gradle",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// ErrNoProject is returned when no Gradle project encloses a path.
var ErrNoProject = fmt.Errorf("no gradle project found")

// FindRoot searches upward from a source file (or directory) for the
// enclosing Gradle project root. The search stops one directory past a VCS
// root, at the user's home directory, or at the filesystem root.
func FindRoot(start string) (string, error) {
	absPath, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	currentDir := absPath
	if info, statErr := os.Stat(absPath); statErr != nil || !info.IsDir() {
		currentDir = filepath.Dir(absPath)
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		// Without a home dir we just skip the home boundary check.
		homeDir = ""
	}

	for {
		for _, name := range rootMarkers {
			if fileExists(filepath.Join(currentDir, name)) {
				return currentDir, nil
			}
		}

		// A VCS root without Gradle markers means we've left the project.
		if isVCSRoot(currentDir) {
			return "", fmt.Errorf("%w for %s", ErrNoProject, start)
		}

		if homeDir != "" && currentDir == homeDir {
			return "", fmt.Errorf("%w for %s", ErrNoProject, start)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("%w for %s", ErrNoProject, start)
		}
		currentDir = parentDir
	}
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
