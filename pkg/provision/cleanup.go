package provision

import (
	"context"
	"fmt"

	"github.com/klothoplatform/farmcreator/pkg/logging"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// CleanUp deletes every resource recorded in progress in TeardownOrder. Each
// deletion is attempted regardless of earlier failures; the failures are
// returned combined.
func (p *Provisioner) CleanUp(ctx context.Context, progress Progress) error {
	ctx, log := logging.Named(ctx, "cleanup")
	log.Debug("cleaning up", zap.Any("resources", progress))

	order, err := TeardownOrder()
	if err != nil {
		return err
	}

	var errs error
	for _, r := range order {
		if !progress.Has(r) {
			continue
		}
		if err := p.deleteResource(ctx, r, progress); err != nil {
			log.Warn("couldn't delete resource", zap.String("resource", string(r)), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		log.Info("deleted", zap.String("resource", string(r)))
	}
	return errs
}

func (p *Provisioner) deleteResource(ctx context.Context, r Resource, progress Progress) error {
	needFarm := func() error {
		if progress.FarmID == "" {
			return fmt.Errorf("%s recorded without a farm id", r)
		}
		return nil
	}

	var (
		op  string
		ok  bool
		err error
	)
	switch r {
	case ResourceFleet:
		if err := needFarm(); err != nil {
			return err
		}
		op = "DeleteFleet"
		ok, err = p.Client.DeleteFleet(ctx, progress.FarmID, progress.FleetID)
	case ResourceRolePolicy:
		op = "DeleteRolePolicy"
		ok, err = p.Client.DeleteRolePolicy(ctx, progress.RolePolicy.RoleName, progress.RolePolicy.PolicyName)
	case ResourceRole:
		op = "DeleteRole"
		ok, err = p.Client.DeleteRole(ctx, progress.RoleName)
	case ResourceQueue:
		if err := needFarm(); err != nil {
			return err
		}
		op = "DeleteQueue"
		ok, err = p.Client.DeleteQueue(ctx, progress.FarmID, progress.QueueID)
	case ResourceFarm:
		op = "DeleteFarm"
		ok, err = p.Client.DeleteFarm(ctx, progress.FarmID)
	default:
		return nil
	}
	return remoteResult(op, ok, err)
}
