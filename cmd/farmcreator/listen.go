package main

import (
	clicommon "github.com/klothoplatform/farmcreator/pkg/cli_common"
	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
	"github.com/klothoplatform/farmcreator/pkg/listener"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/klothoplatform/farmcreator/pkg/provision"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listenCfg struct {
	host string
	port int
}

func newListenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Serve the Action Menu Item webhook",
		Long: `Listens for Action Menu Item requests from a project page and creates a farm
named after the project for each one. The browser is redirected to the new
farm in the console once it is ready.`,
		Annotations: map[string]string{clicommon.ServiceAnnotation: "true"},
		RunE:        runListen,
	}
	flags := cmd.Flags()
	flags.StringVar(&listenCfg.host, "host", "", "Override listener_host from the settings")
	flags.IntVar(&listenCfg.port, "port", 0, "Override listener_port from the settings")
	return cmd
}

func runListen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.GetLogger(ctx).Named("listener")
	fs := afero.NewOsFs()

	cfg, err := loadSettings(fs, commonCfg.settingsPath, true)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.ListenerHost = listenCfg.host
	}
	if cmd.Flags().Changed("port") {
		cfg.ListenerPort = listenCfg.port
	}
	if commonCfg.region != "" {
		cfg.Region = commonCfg.region
	}
	if err := cfg.Validate(true); err != nil {
		return err
	}

	client, err := deadlinecloud.NewClient(ctx, sessionOptions(cfg))
	if err != nil {
		return err
	}
	if cfg.Region == "" {
		cfg.Region = client.Region
	}

	p := &provision.Provisioner{
		Client:      client,
		FS:          fs,
		QueuePoll:   cfg.QueuePoll,
		FleetCreate: cfg.FleetCreate,
	}
	log.Info("Starting farm creator listener",
		zap.String("addr", cfg.ListenAddr()),
		zap.String("studio_id", cfg.StudioID),
		zap.String("region", cfg.EffectiveRegion()),
	)
	return listener.NewServer(cfg, p).ListenAndServe(ctx, cfg.ListenAddr())
}
