package clicommon

import (
	"context"
	"os"

	"github.com/klothoplatform/farmcreator/pkg/cleanup"
	"github.com/klothoplatform/farmcreator/pkg/cli_config"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceAnnotation marks long-running commands, which log wall-clock times.
const ServiceAnnotation = "farmcreator/service"

type CommonConfig struct {
	verbose   Verbosity
	jsonLog   bool
	color     string
	logDir    string
	noLogFile bool
}

func (c *CommonConfig) logOpts(cmd *cobra.Command) logging.LogOpts {
	opts := logging.LogOpts{
		Verbose: c.verbose.Debug(),
		Color:   c.color,
		Service: cmd.Annotations[ServiceAnnotation] == "true",
	}
	if !c.verbose.HTTP() {
		opts.DefaultLevels = map[string]zapcore.Level{
			"http": zap.InfoLevel,
		}
	}
	if c.jsonLog {
		opts.Encoding = "json"
	}
	if !c.noLogFile {
		opts.LogFileDir = c.logDir
	}
	return opts
}

func SetupRoot(root *cobra.Command, commonCfg *CommonConfig) {
	flags := root.PersistentFlags()
	flags.VarP(&commonCfg.verbose, "verbose", "v", "Enable verbose logging (repeat for AWS request logs)")
	flags.Lookup("verbose").NoOptDefVal = "true"
	flags.BoolVar(&commonCfg.jsonLog, "json-log", false, "Enable JSON logging")
	flags.StringVar(&commonCfg.color, "color", "auto", "Colour console logs: auto, always or never")
	flags.StringVar(&commonCfg.logDir, "log-dir", cli_config.DefaultLogDir(), "Directory for the daily log file")
	flags.BoolVar(&commonCfg.noLogFile, "no-log-file", false, "Don't write the daily log file")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger := commonCfg.logOpts(cmd).NewLogger()
		zap.ReplaceGlobals(logger)
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

		cleanup.OnKill(func(ctx context.Context, sig os.Signal) error {
			_ = logger.Sync()
			return nil
		})
	}

	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		zap.L().Sync() //nolint:errcheck
	}
}
