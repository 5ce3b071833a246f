package provision

import (
	"context"
	"encoding/json"

	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/klothoplatform/farmcreator/pkg/policy"
)

// Placeholders used in documents rendered for a Plan.
const (
	PlanAccountID = "<account-id>"
	PlanFarmID    = "<farm-id>"
)

// Plan is what a run would create, worked out without any remote call.
type Plan struct {
	Region             string          `json:"region" yaml:"region"`
	FarmName           string          `json:"farm_name" yaml:"farm_name"`
	QueueName          string          `json:"queue_name" yaml:"queue_name"`
	FleetName          string          `json:"fleet_name" yaml:"fleet_name"`
	RoleName           string          `json:"role_name" yaml:"role_name"`
	TrustPolicy        json.RawMessage `json:"trust_policy" yaml:"trust_policy"`
	WorkerPermissions  json.RawMessage `json:"worker_permissions" yaml:"worker_permissions"`
	FleetConfiguration json.RawMessage `json:"fleet_configuration" yaml:"fleet_configuration"`
	Order              []Resource      `json:"order" yaml:"order"`
}

// Plan validates req and renders every document it would use, with
// placeholders for the account and farm IDs.
func (p *Provisioner) Plan(ctx context.Context, req Request) (*Plan, error) {
	ctx, _ = logging.Named(ctx, "provision")
	if err := req.normalize(); err != nil {
		return nil, err
	}

	data := req.templateData(defaultPartition, PlanAccountID, PlanFarmID)
	trust, err := p.trustPolicy(ctx, req.TrustPolicyPath, data, PlanAccountID,
		policy.SourceArn(defaultPartition, req.Region, PlanAccountID, PlanFarmID))
	if err != nil {
		return nil, err
	}
	worker, err := policy.LoadAndRender(p.fs(), req.WorkerPermissionsPath, data)
	if err != nil {
		return nil, &DocumentError{Path: req.WorkerPermissionsPath, Cause: err}
	}
	fleetConfig, err := policy.LoadAndRender(p.fs(), req.FleetConfigurationPath, data)
	if err != nil {
		return nil, &DocumentError{Path: req.FleetConfigurationPath, Cause: err}
	}
	if _, err := deadlinecloud.ParseFleetConfiguration(fleetConfig); err != nil {
		return nil, &DocumentError{Path: req.FleetConfigurationPath, Cause: err}
	}
	order, err := CreationOrder()
	if err != nil {
		return nil, err
	}

	return &Plan{
		Region:             req.Region,
		FarmName:           req.FarmName,
		QueueName:          req.QueueName,
		FleetName:          req.FleetName,
		RoleName:           data.RoleName,
		TrustPolicy:        json.RawMessage(trust),
		WorkerPermissions:  json.RawMessage(worker),
		FleetConfiguration: json.RawMessage(fleetConfig),
		Order:              order,
	}, nil
}
