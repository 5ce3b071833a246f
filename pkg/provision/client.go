package provision

import (
	"context"

	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
)

// ResourceClient is the set of remote operations a run uses.
type ResourceClient interface {
	GetCallerIdentity(ctx context.Context) (*deadlinecloud.CallerIdentity, error)

	CreateFarm(ctx context.Context, spec deadlinecloud.FarmSpec) (string, error)
	DeleteFarm(ctx context.Context, farmID string) (bool, error)

	CreateQueue(ctx context.Context, spec deadlinecloud.QueueSpec) (string, error)
	GetQueue(ctx context.Context, farmID, queueID string) (string, error)
	DeleteQueue(ctx context.Context, farmID, queueID string) (bool, error)

	CreateFleet(ctx context.Context, spec deadlinecloud.FleetSpec) (string, error)
	DeleteFleet(ctx context.Context, farmID, fleetID string) (bool, error)

	CreateQueueFleetAssociation(ctx context.Context, farmID, queueID, fleetID string) (bool, error)

	GetRole(ctx context.Context, roleName string) (*deadlinecloud.Role, error)
	CreateRole(ctx context.Context, roleName, assumeRolePolicyDocument string) (*deadlinecloud.Role, error)
	DeleteRole(ctx context.Context, roleName string) (bool, error)
	PutRolePolicy(ctx context.Context, roleName, policyName, policyDocument string) (bool, error)
	DeleteRolePolicy(ctx context.Context, roleName, policyName string) (bool, error)
}

var _ ResourceClient = (*deadlinecloud.Client)(nil)
