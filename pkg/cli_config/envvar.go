package cli_config

import "os"

// EnvVar represents an environment variable, specified by its key name.
// Use GetOr to get its value, or a default if the value isn't set.
type EnvVar string

const (
	LogDirEnv   EnvVar = "FARM_CREATOR_LOG_DIR"
	SettingsEnv EnvVar = "FARM_CREATOR_SETTINGS"
	ProfileEnv  EnvVar = "AWS_PROFILE"
)

// GetOr returns the value of the env var, or defaultValue if it is unset or empty.
func (s EnvVar) GetOr(defaultValue string) string {
	value := os.Getenv(string(s))
	if value == "" {
		return defaultValue
	}
	return value
}
