package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves the runtime directory before any .env is loaded.
func GetRuntimePath() string {
	return absRuntimePath(os.Getenv("PROMPTCMD_RUNTIME_PATH"))
}

// GetEnvPath is the .env file inside the runtime directory.
func GetEnvPath() string {
	return filepath.Join(GetRuntimePath(), ".env")
}

func absRuntimePath(path string) string {
	if path == "" {
		path = ".promptcmd"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
