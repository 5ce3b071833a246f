package deadlinecloud

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/deadline"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

//go:generate mockgen -source=api.go -destination=api_mock_test.go -package=deadlinecloud

// DeadlineAPI is the subset of the Deadline Cloud SDK client used by Client.
type DeadlineAPI interface {
	CreateFarm(ctx context.Context, params *deadline.CreateFarmInput, optFns ...func(*deadline.Options)) (*deadline.CreateFarmOutput, error)
	DeleteFarm(ctx context.Context, params *deadline.DeleteFarmInput, optFns ...func(*deadline.Options)) (*deadline.DeleteFarmOutput, error)
	CreateQueue(ctx context.Context, params *deadline.CreateQueueInput, optFns ...func(*deadline.Options)) (*deadline.CreateQueueOutput, error)
	GetQueue(ctx context.Context, params *deadline.GetQueueInput, optFns ...func(*deadline.Options)) (*deadline.GetQueueOutput, error)
	DeleteQueue(ctx context.Context, params *deadline.DeleteQueueInput, optFns ...func(*deadline.Options)) (*deadline.DeleteQueueOutput, error)
	CreateFleet(ctx context.Context, params *deadline.CreateFleetInput, optFns ...func(*deadline.Options)) (*deadline.CreateFleetOutput, error)
	DeleteFleet(ctx context.Context, params *deadline.DeleteFleetInput, optFns ...func(*deadline.Options)) (*deadline.DeleteFleetOutput, error)
	CreateQueueFleetAssociation(ctx context.Context, params *deadline.CreateQueueFleetAssociationInput, optFns ...func(*deadline.Options)) (*deadline.CreateQueueFleetAssociationOutput, error)
}

// IAMAPI is the subset of the IAM SDK client used by Client.
type IAMAPI interface {
	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error)
	PutRolePolicy(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error)
	DeleteRolePolicy(ctx context.Context, params *iam.DeleteRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DeleteRolePolicyOutput, error)
}

// STSAPI is the subset of the STS SDK client used by Client.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}
