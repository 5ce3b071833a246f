package main

import (
	"os"

	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
	"github.com/klothoplatform/farmcreator/pkg/settings"
	"github.com/spf13/afero"
)

// loadSettings reads the settings document when one exists. The create and
// cleanup commands can run without it; required is set for the listener.
func loadSettings(fs afero.Fs, path string, required bool) (*settings.Settings, error) {
	if !required {
		if _, err := fs.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}
	return settings.Load(fs, path)
}

func sessionOptions(cfg *settings.Settings) deadlinecloud.SessionOptions {
	return deadlinecloud.SessionOptions{
		Region:      firstNonEmpty(commonCfg.region, cfg.EffectiveRegion()),
		Profile:     firstNonEmpty(commonCfg.profile, cfg.Profile),
		HTTPTimeout: cfg.HTTPTimeout,
	}
}
