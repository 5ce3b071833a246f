package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
	"github.com/klothoplatform/farmcreator/pkg/listener"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/klothoplatform/farmcreator/pkg/provision"
	"github.com/klothoplatform/farmcreator/pkg/settings"
	"github.com/pkg/browser"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type createOptions struct {
	studioID  string
	farmName  string
	queueName string
	fleetName string

	fleetConfigurationPath string
	trustPolicyPath        string
	workerPermissionsPath  string

	maxWorkerCount int
	user           string
	group          string
	runAs          string
	bucket         string
	rootPrefix     string

	dryRun     bool
	output     string
	noProgress bool
	open       bool
}

// openURL is replaced in tests.
var openURL = browser.OpenURL

var createCfg createOptions

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a farm with a queue and a customer-managed fleet",
		Example: `  farmcreator create -s us-west-2:studio-1234 -f "My Show" -q "My Show Queue" -l "My Show Fleet"
  farmcreator create -f demo -q demo -l demo --region us-west-2 --dry-run --output yaml`,
		RunE: runCreate,
	}
	flags := cmd.Flags()
	flags.StringVarP(&createCfg.studioID, "studio-id", "s", "", "Studio to tag the farm with")
	flags.StringVarP(&createCfg.farmName, "farm", "f", "", "Farm display name")
	flags.StringVarP(&createCfg.queueName, "queue", "q", "", "Queue display name")
	flags.StringVarP(&createCfg.fleetName, "fleet", "l", "", "Fleet display name")
	flags.StringVar(&createCfg.fleetConfigurationPath, "fleet-configuration-path", "", "Fleet configuration document")
	flags.StringVar(&createCfg.trustPolicyPath, "trust-policy", "", "Fleet role trust policy document")
	flags.StringVar(&createCfg.workerPermissionsPath, "worker-permissions", "", "Fleet role worker permissions document")
	flags.IntVarP(&createCfg.maxWorkerCount, "max-worker-count", "m", 1, "Maximum number of workers in the fleet")
	flags.StringVarP(&createCfg.user, "user", "u", "jobuser", "POSIX user that queue jobs run as")
	flags.StringVarP(&createCfg.group, "group", "g", "jobgroup", "POSIX group that queue jobs run as")
	flags.StringVarP(&createCfg.runAs, "run-as", "a", "WORKER_AGENT_USER", "Run-as mode: QUEUE_CONFIGURED_USER or WORKER_AGENT_USER")
	flags.StringVarP(&createCfg.bucket, "job-attachment-bucket", "b", "", "S3 bucket for job attachments")
	flags.StringVarP(&createCfg.rootPrefix, "root-prefix", "p", "", "Root prefix for job attachments in the bucket")
	flags.BoolVar(&createCfg.dryRun, "dry-run", false, "Print what would be created without calling AWS")
	flags.StringVarP(&createCfg.output, "output", "o", "json", "Output format: json or yaml")
	flags.BoolVar(&createCfg.noProgress, "no-progress", false, "Don't show a progress spinner")
	flags.BoolVar(&createCfg.open, "open", false, "Open the new farm in the console in a browser")
	return cmd
}

// request merges the command line over the settings document. Flags given
// explicitly always win; unset flags fall back to the settings.
func (o createOptions) request(cmd *cobra.Command, cfg *settings.Settings) provision.Request {
	changed := func(name string) bool { return cmd.Flags().Changed(name) }

	req := provision.Request{
		StudioID:               firstNonEmpty(o.studioID, cfg.StudioID),
		FarmName:               o.farmName,
		QueueName:              o.queueName,
		FleetName:              o.fleetName,
		Region:                 commonCfg.region,
		FleetConfigurationPath: firstNonEmpty(o.fleetConfigurationPath, cfg.FleetConfigurationPath),
		TrustPolicyPath:        firstNonEmpty(o.trustPolicyPath, cfg.TrustPolicyPath),
		WorkerPermissionsPath:  firstNonEmpty(o.workerPermissionsPath, cfg.WorkerPermissionsPath),
		MaxWorkerCount:         cfg.MaxWorkerCount,
		JobRunAsUser:           cfg.JobRunAsUser,
		JobAttachmentSettings:  cfg.JobAttachmentSettings,
	}
	if req.Region == "" {
		req.Region = cfg.Region
	}
	if changed("max-worker-count") || req.MaxWorkerCount == 0 {
		req.MaxWorkerCount = o.maxWorkerCount
	}
	if req.JobRunAsUser == nil || changed("user") || changed("group") || changed("run-as") {
		req.JobRunAsUser = &deadlinecloud.JobRunAsUser{
			Posix: &deadlinecloud.PosixUser{User: o.user, Group: o.group},
			RunAs: o.runAs,
		}
	}
	if o.bucket != "" {
		req.JobAttachmentSettings = &deadlinecloud.JobAttachmentSettings{
			S3BucketName: o.bucket,
			RootPrefix:   o.rootPrefix,
		}
	}
	return req
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.GetLogger(ctx)
	fs := afero.NewOsFs()

	cfg, err := loadSettings(fs, commonCfg.settingsPath, false)
	if err != nil {
		return err
	}
	req := createCfg.request(cmd, cfg)
	p := &provision.Provisioner{
		FS:          fs,
		QueuePoll:   cfg.QueuePoll,
		FleetCreate: cfg.FleetCreate,
	}

	if createCfg.dryRun {
		plan, err := p.Plan(ctx, req)
		if err != nil {
			_ = printResult(cmd.OutOrStdout(), createCfg.output, provision.ResultDocument(nil, err))
			return errReported
		}
		return printResult(cmd.OutOrStdout(), createCfg.output, plan)
	}

	client, err := deadlinecloud.NewClient(ctx, sessionOptions(cfg))
	if err != nil {
		return err
	}
	if req.Region == "" {
		req.Region = firstNonEmpty(deadlinecloud.StudioRegion(req.StudioID), client.Region)
	}
	p.Client = client

	if !createCfg.noProgress && term.IsTerminal(int(os.Stderr.Fd())) {
		s := newSpinner(os.Stderr)
		p.Observer = s
		progress, err := p.CreateFarmAndFleet(ctx, req)
		s.Close()
		return reportCreate(cmd, log, req, progress, err)
	}
	progress, err := p.CreateFarmAndFleet(ctx, req)
	return reportCreate(cmd, log, req, progress, err)
}

func reportCreate(cmd *cobra.Command, log *zap.Logger, req provision.Request, progress *provision.Progress, err error) error {
	if perr := printResult(cmd.OutOrStdout(), createCfg.output, provision.ResultDocument(progress, err)); perr != nil {
		log.Error("Could not print result", zap.Error(perr))
	}
	if err != nil {
		log.Error("Farm creation failed", zap.Error(err))
		return errReported
	}
	url := listener.ConsoleURL(req.Region, progress.FarmID)
	color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Farm created: %s\n", url) //nolint:errcheck
	if createCfg.open {
		// stdout carries the result document
		browser.Stdout = cmd.ErrOrStderr()
		if err := openURL(url); err != nil {
			log.Warn("Could not open browser", zap.String("url", url), zap.Error(err))
		}
	}
	return nil
}
