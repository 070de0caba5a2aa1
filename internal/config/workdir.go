package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WorkDirEnv names the environment variable holding the output root.
const WorkDirEnv = "WD"

// OutDirName is the subdirectory of the work dir that receives images.
const OutDirName = "out"

// ErrNoWorkDir is returned when WD is unset or empty.
var ErrNoWorkDir = errors.New(WorkDirEnv + " is not set")

// WorkDir returns the output root from the environment. It must name an
// existing directory.
func WorkDir() (string, error) {
	wd := os.Getenv(WorkDirEnv)
	if wd == "" {
		return "", ErrNoWorkDir
	}
	info, err := os.Stat(wd)
	if err != nil {
		return "", fmt.Errorf("work dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("work dir %s is not a directory", wd)
	}
	return wd, nil
}

// OutDir returns <wd>/out, creating it if needed.
func OutDir(wd string) (string, error) {
	dir := filepath.Join(wd, OutDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// OutputPath returns <wd>/out/<name>.png.
func OutputPath(wd string, v Variant) string {
	return filepath.Join(wd, OutDirName, v.Name+".png")
}
