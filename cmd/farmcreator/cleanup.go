package main

import (
	"errors"

	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/klothoplatform/farmcreator/pkg/provision"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type cleanupOptions struct {
	progressFile string
	farmID       string
	queueID      string
	fleetID      string
	roleName     string
	rolePolicy   string
}

var cleanupCfg cleanupOptions

func newCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete the resources recorded by a previous run",
		Example: `  farmcreator create ... > result.json
  farmcreator cleanup --progress-file result.json
  farmcreator cleanup --farm-id farm-1234 --queue-id queue-5678`,
		RunE: runCleanup,
	}
	flags := cmd.Flags()
	flags.StringVar(&cleanupCfg.progressFile, "progress-file", "", "JSON result of a previous create")
	flags.StringVar(&cleanupCfg.farmID, "farm-id", "", "Farm to delete")
	flags.StringVar(&cleanupCfg.queueID, "queue-id", "", "Queue to delete")
	flags.StringVar(&cleanupCfg.fleetID, "fleet-id", "", "Fleet to delete")
	flags.StringVar(&cleanupCfg.roleName, "role-name", "", "Fleet role to delete")
	flags.StringVar(&cleanupCfg.rolePolicy, "role-policy", "", "Inline policy of --role-name to delete")
	return cmd
}

// progress reads the progress file, if any, and applies the ID flags over it.
func (o cleanupOptions) progress(fs afero.Fs) (provision.Progress, error) {
	var p provision.Progress
	if o.progressFile != "" {
		var err error
		if p, err = provision.ReadProgress(fs, o.progressFile); err != nil {
			return p, err
		}
	}
	p.FarmID = firstNonEmpty(o.farmID, p.FarmID)
	p.QueueID = firstNonEmpty(o.queueID, p.QueueID)
	p.FleetID = firstNonEmpty(o.fleetID, p.FleetID)
	p.RoleName = firstNonEmpty(o.roleName, p.RoleName)
	if o.rolePolicy != "" {
		p.RolePolicy = &provision.RolePolicy{
			RoleName:   firstNonEmpty(o.roleName, p.RoleName),
			PolicyName: o.rolePolicy,
		}
	}
	if p.RolePolicy != nil && p.RolePolicy.RoleName == "" {
		return p, errors.New("--role-policy needs --role-name or a role recorded in the progress file")
	}
	if p.Empty() {
		return p, errors.New("nothing to clean up: give --progress-file or at least one resource ID")
	}
	return p, nil
}

func runCleanup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fs := afero.NewOsFs()

	progress, err := cleanupCfg.progress(fs)
	if err != nil {
		return err
	}
	cfg, err := loadSettings(fs, commonCfg.settingsPath, false)
	if err != nil {
		return err
	}
	client, err := deadlinecloud.NewClient(ctx, sessionOptions(cfg))
	if err != nil {
		return err
	}
	ctx, _ = logging.Named(ctx, "provision")
	return (&provision.Provisioner{Client: client, FS: fs}).CleanUp(ctx, progress)
}
