package deadlinecloud

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/deadline"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"go.uber.org/zap"
)

// Client issues exactly one remote call per method. Errors from the SDK are
// returned untouched; a response that lacks the expected field yields the zero
// value ("" / nil / false) with a nil error.
type Client struct {
	Deadline DeadlineAPI
	IAM      IAMAPI
	STS      STSAPI

	// Region is the region the SDK clients were configured for, if known.
	Region string
}

func New(d DeadlineAPI, i IAMAPI, s STSAPI) *Client {
	return &Client{Deadline: d, IAM: i, STS: s}
}

func debug(ctx context.Context, operation string, fields ...zap.Field) {
	logging.GetLogger(ctx).Debug(operation, fields...)
}

func (c *Client) GetCallerIdentity(ctx context.Context) (*CallerIdentity, error) {
	out, err := c.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, err
	}
	if out == nil || out.UserId == nil {
		return nil, nil
	}
	warnRetries(ctx, "GetCallerIdentity", out.ResultMetadata)
	identity := &CallerIdentity{
		Account: aws.ToString(out.Account),
		Arn:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}
	debug(ctx, "GetCallerIdentity", zap.String("account", identity.Account), zap.String("arn", identity.Arn))
	return identity, nil
}

func (c *Client) CreateFarm(ctx context.Context, spec FarmSpec) (string, error) {
	in := &deadline.CreateFarmInput{
		DisplayName: aws.String(spec.DisplayName),
	}
	if spec.StudioID != "" {
		in.Tags = map[string]string{StudioTag: spec.StudioID}
	}
	out, err := c.Deadline.CreateFarm(ctx, in)
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	warnRetries(ctx, "CreateFarm", out.ResultMetadata)
	farmID := aws.ToString(out.FarmId)
	debug(ctx, "CreateFarm", zap.String("farm_id", farmID))
	return farmID, nil
}

func (c *Client) DeleteFarm(ctx context.Context, farmID string) (bool, error) {
	out, err := c.Deadline.DeleteFarm(ctx, &deadline.DeleteFarmInput{FarmId: aws.String(farmID)})
	if err != nil {
		return false, err
	}
	if out == nil {
		return false, nil
	}
	warnRetries(ctx, "DeleteFarm", out.ResultMetadata)
	debug(ctx, "DeleteFarm", zap.String("farm_id", farmID))
	return true, nil
}

func (c *Client) CreateQueue(ctx context.Context, spec QueueSpec) (string, error) {
	runAs, err := spec.JobRunAsUser.toSDK()
	if err != nil {
		return "", err
	}
	out, err := c.Deadline.CreateQueue(ctx, &deadline.CreateQueueInput{
		DisplayName:           aws.String(spec.DisplayName),
		FarmId:                aws.String(spec.FarmID),
		JobRunAsUser:          runAs,
		JobAttachmentSettings: spec.JobAttachmentSettings.toSDK(),
	})
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	warnRetries(ctx, "CreateQueue", out.ResultMetadata)
	queueID := aws.ToString(out.QueueId)
	debug(ctx, "CreateQueue", zap.String("farm_id", spec.FarmID), zap.String("queue_id", queueID))
	return queueID, nil
}

func (c *Client) GetQueue(ctx context.Context, farmID, queueID string) (string, error) {
	out, err := c.Deadline.GetQueue(ctx, &deadline.GetQueueInput{
		FarmId:  aws.String(farmID),
		QueueId: aws.String(queueID),
	})
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	warnRetries(ctx, "GetQueue", out.ResultMetadata)
	return aws.ToString(out.QueueId), nil
}

func (c *Client) DeleteQueue(ctx context.Context, farmID, queueID string) (bool, error) {
	out, err := c.Deadline.DeleteQueue(ctx, &deadline.DeleteQueueInput{
		FarmId:  aws.String(farmID),
		QueueId: aws.String(queueID),
	})
	if err != nil {
		return false, err
	}
	if out == nil {
		return false, nil
	}
	warnRetries(ctx, "DeleteQueue", out.ResultMetadata)
	debug(ctx, "DeleteQueue", zap.String("farm_id", farmID), zap.String("queue_id", queueID))
	return true, nil
}

func (c *Client) CreateFleet(ctx context.Context, spec FleetSpec) (string, error) {
	out, err := c.Deadline.CreateFleet(ctx, &deadline.CreateFleetInput{
		DisplayName:    aws.String(spec.DisplayName),
		FarmId:         aws.String(spec.FarmID),
		RoleArn:        aws.String(spec.RoleArn),
		MaxWorkerCount: aws.Int32(spec.MaxWorkerCount),
		Configuration:  spec.Configuration,
	})
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	warnRetries(ctx, "CreateFleet", out.ResultMetadata)
	fleetID := aws.ToString(out.FleetId)
	debug(ctx, "CreateFleet", zap.String("farm_id", spec.FarmID), zap.String("fleet_id", fleetID))
	return fleetID, nil
}

func (c *Client) DeleteFleet(ctx context.Context, farmID, fleetID string) (bool, error) {
	out, err := c.Deadline.DeleteFleet(ctx, &deadline.DeleteFleetInput{
		FarmId:  aws.String(farmID),
		FleetId: aws.String(fleetID),
	})
	if err != nil {
		return false, err
	}
	if out == nil {
		return false, nil
	}
	warnRetries(ctx, "DeleteFleet", out.ResultMetadata)
	debug(ctx, "DeleteFleet", zap.String("farm_id", farmID), zap.String("fleet_id", fleetID))
	return true, nil
}

func (c *Client) CreateQueueFleetAssociation(ctx context.Context, farmID, queueID, fleetID string) (bool, error) {
	out, err := c.Deadline.CreateQueueFleetAssociation(ctx, &deadline.CreateQueueFleetAssociationInput{
		FarmId:  aws.String(farmID),
		QueueId: aws.String(queueID),
		FleetId: aws.String(fleetID),
	})
	if err != nil {
		return false, err
	}
	if out == nil {
		return false, nil
	}
	warnRetries(ctx, "CreateQueueFleetAssociation", out.ResultMetadata)
	debug(ctx, "CreateQueueFleetAssociation",
		zap.String("farm_id", farmID), zap.String("queue_id", queueID), zap.String("fleet_id", fleetID))
	return true, nil
}

func (c *Client) CreateRole(ctx context.Context, roleName, assumeRolePolicyDocument string) (*Role, error) {
	out, err := c.IAM.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(roleName),
		AssumeRolePolicyDocument: aws.String(assumeRolePolicyDocument),
	})
	if err != nil {
		return nil, err
	}
	if out == nil || out.Role == nil {
		return nil, nil
	}
	warnRetries(ctx, "CreateRole", out.ResultMetadata)
	role := &Role{Name: aws.ToString(out.Role.RoleName), Arn: aws.ToString(out.Role.Arn)}
	debug(ctx, "CreateRole", zap.String("role_arn", role.Arn))
	return role, nil
}

func (c *Client) GetRole(ctx context.Context, roleName string) (*Role, error) {
	out, err := c.IAM.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(roleName)})
	if err != nil {
		return nil, err
	}
	if out == nil || out.Role == nil {
		return nil, nil
	}
	warnRetries(ctx, "GetRole", out.ResultMetadata)
	return &Role{Name: aws.ToString(out.Role.RoleName), Arn: aws.ToString(out.Role.Arn)}, nil
}

func (c *Client) DeleteRole(ctx context.Context, roleName string) (bool, error) {
	out, err := c.IAM.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: aws.String(roleName)})
	if err != nil {
		return false, err
	}
	if out == nil {
		return false, nil
	}
	warnRetries(ctx, "DeleteRole", out.ResultMetadata)
	debug(ctx, "DeleteRole", zap.String("role_name", roleName))
	return true, nil
}

func (c *Client) PutRolePolicy(ctx context.Context, roleName, policyName, policyDocument string) (bool, error) {
	out, err := c.IAM.PutRolePolicy(ctx, &iam.PutRolePolicyInput{
		RoleName:       aws.String(roleName),
		PolicyName:     aws.String(policyName),
		PolicyDocument: aws.String(policyDocument),
	})
	if err != nil {
		return false, err
	}
	if out == nil {
		return false, nil
	}
	warnRetries(ctx, "PutRolePolicy", out.ResultMetadata)
	debug(ctx, "PutRolePolicy", zap.String("role_name", roleName), zap.String("policy_name", policyName))
	return true, nil
}

func (c *Client) DeleteRolePolicy(ctx context.Context, roleName, policyName string) (bool, error) {
	out, err := c.IAM.DeleteRolePolicy(ctx, &iam.DeleteRolePolicyInput{
		RoleName:   aws.String(roleName),
		PolicyName: aws.String(policyName),
	})
	if err != nil {
		return false, err
	}
	if out == nil {
		return false, nil
	}
	warnRetries(ctx, "DeleteRolePolicy", out.ResultMetadata)
	debug(ctx, "DeleteRolePolicy", zap.String("role_name", roleName), zap.String("policy_name", policyName))
	return true, nil
}
