package cli_config

import (
	"os"
	"path/filepath"
)

// DeadlinePath returns a path under ~/.deadline, the directory shared with the
// Deadline Cloud client tools.
func DeadlinePath(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home, ".deadline"}, elem...)...), nil
}

// DefaultLogDir is where the daily farm creator logs are written unless
// FARM_CREATOR_LOG_DIR is set.
func DefaultLogDir() string {
	if dir := LogDirEnv.GetOr(""); dir != "" {
		return dir
	}
	dir, err := DeadlinePath("logs", "farm_creator")
	if err != nil {
		return ""
	}
	return dir
}
