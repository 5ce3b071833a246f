package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/klothoplatform/farmcreator/pkg/cleanup"
	clicommon "github.com/klothoplatform/farmcreator/pkg/cli_common"
	"github.com/klothoplatform/farmcreator/pkg/cli_config"
	"github.com/klothoplatform/farmcreator/pkg/settings"
	"github.com/spf13/cobra"
)

var commonCfg struct {
	clicommon.CommonConfig
	region       string
	profile      string
	settingsPath string
}

// errReported is returned by commands that have already printed their failure.
var errReported = errors.New("failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "farmcreator",
		Short: "Create Deadline Cloud farms, queues and fleets",
		Long: heredoc.Doc(`
			Creates a Deadline Cloud farm with a queue, a customer-managed fleet, the
			fleet's IAM role and the association between queue and fleet. If any step
			fails, everything created so far is deleted again.

			Run it directly with "create", or start "listen" to create farms from an
			asset-management Action Menu Item.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	clicommon.SetupRoot(root, &commonCfg.CommonConfig)
	flags := root.PersistentFlags()
	flags.StringVar(&commonCfg.region, "region", "", "AWS region (defaults to the studio ID's region)")
	flags.StringVar(&commonCfg.profile, "profile", cli_config.ProfileEnv.GetOr(""), "AWS shared config profile")
	flags.StringVar(&commonCfg.settingsPath, "settings", cli_config.SettingsEnv.GetOr(settings.DefaultPath), "Settings document")

	root.AddCommand(newCreateCmd(), newListenCmd(), newCleanupCmd())
	return root
}

func cli() int {
	ctx := cleanup.InitializeHandler(context.Background())
	defer func() {
		if r := recover(); r != nil {
			_ = cleanup.Execute(context.Background(), syscall.SIGTERM)
			panic(r) // re-throw panic after cleanup
		}
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			color.New(color.FgHiRed).Fprintln(os.Stderr, fmt.Sprintf("Error: %v", err)) //nolint:errcheck
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(cli())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
