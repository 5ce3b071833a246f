package provision

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/klothoplatform/farmcreator/pkg/policy"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	DefaultFleetConfigurationPath = "configuration/cmf_default.json"
	DefaultTrustPolicyPath        = "policy/iam_fleet_role.json"
	DefaultWorkerPermissionsPath  = "policy/iam_fleet_worker_permissions.json"

	WorkerPermissionsPolicyName = "WorkerPermissions"

	defaultPartition = "aws"
)

// Request describes one farm to create.
type Request struct {
	StudioID  string
	FarmName  string
	QueueName string
	FleetName string
	// Region defaults to the region prefix of StudioID.
	Region string

	FleetConfigurationPath string
	TrustPolicyPath        string
	WorkerPermissionsPath  string

	MaxWorkerCount        int
	JobRunAsUser          *deadlinecloud.JobRunAsUser
	JobAttachmentSettings *deadlinecloud.JobAttachmentSettings
}

// Provisioner creates a farm, queue, fleet role and fleet, and removes what it
// created when a later step fails.
type Provisioner struct {
	Client ResourceClient
	FS     afero.Fs

	QueuePoll   RetryPolicy
	FleetCreate RetryPolicy

	// Observer is optional.
	Observer Observer
}

func (p *Provisioner) observer() Observer {
	if p.Observer == nil {
		return nopObserver{}
	}
	return p.Observer
}

func (p *Provisioner) fs() afero.Fs {
	if p.FS == nil {
		return afero.NewOsFs()
	}
	return p.FS
}

func (req *Request) normalize() error {
	req.FarmName = strings.TrimSpace(req.FarmName)
	req.QueueName = strings.TrimSpace(req.QueueName)
	req.FleetName = strings.TrimSpace(req.FleetName)
	switch {
	case req.FarmName == "":
		return &ValidationError{Field: "farm name"}
	case req.QueueName == "":
		return &ValidationError{Field: "queue name"}
	case req.FleetName == "":
		return &ValidationError{Field: "fleet name"}
	case req.MaxWorkerCount < 0:
		return &ValidationError{Field: "max worker count", Reason: fmt.Sprintf("%d is negative", req.MaxWorkerCount)}
	case req.MaxWorkerCount > math.MaxInt32:
		return &ValidationError{Field: "max worker count", Reason: fmt.Sprintf("%d is larger than %d", req.MaxWorkerCount, math.MaxInt32)}
	}
	if req.JobRunAsUser != nil {
		if _, err := deadlinecloud.NormalizeRunAs(req.JobRunAsUser.RunAs); err != nil {
			return &ValidationError{Field: "run-as mode", Reason: err.Error()}
		}
	}
	if req.Region == "" {
		req.Region = deadlinecloud.StudioRegion(req.StudioID)
	}
	if req.Region == "" {
		return &ValidationError{Field: "region", Reason: "no region given and none could be derived from the studio ID"}
	}
	if req.FleetConfigurationPath == "" {
		req.FleetConfigurationPath = DefaultFleetConfigurationPath
	}
	if req.TrustPolicyPath == "" {
		req.TrustPolicyPath = DefaultTrustPolicyPath
	}
	if req.WorkerPermissionsPath == "" {
		req.WorkerPermissionsPath = DefaultWorkerPermissionsPath
	}
	return nil
}

func (req Request) templateData(partition, accountID, farmID string) policy.TemplateData {
	data := policy.TemplateData{
		AccountID: accountID,
		Region:    req.Region,
		Partition: partition,
		FarmID:    farmID,
		RoleName:  policy.RoleNameForFarm(req.FarmName),
	}
	if req.JobAttachmentSettings != nil {
		data.JobAttachmentBucket = req.JobAttachmentSettings.S3BucketName
		data.JobAttachmentRootPrefix = req.JobAttachmentSettings.RootPrefix
	}
	return data
}

// CreateFarmAndFleet runs the whole workflow. On success it returns the progress
// record. On failure everything recorded so far is cleaned up and the error is
// one of *ValidationError, *RemoteCallError or *DocumentError.
func (p *Provisioner) CreateFarmAndFleet(ctx context.Context, req Request) (*Progress, error) {
	ctx, log := logging.Named(ctx, "provision")

	if err := req.normalize(); err != nil {
		log.Error("invalid request", zap.Error(err))
		return nil, err
	}

	progress := &Progress{}
	err := p.run(ctx, req, progress)
	if err == nil {
		log.Info("farm created",
			zap.String("farm_id", progress.FarmID),
			zap.String("queue_id", progress.QueueID),
			zap.String("fleet_id", progress.FleetID),
		)
		return progress, nil
	}

	log.Error("farm creation failed", zap.Error(err))
	if !progress.Empty() {
		p.observer().Step("Cleaning up")
		if cerr := p.CleanUp(context.WithoutCancel(ctx), *progress); cerr != nil {
			log.Warn("clean-up was incomplete", zap.Error(cerr))
		}
	}
	return nil, err
}

func (p *Provisioner) run(ctx context.Context, req Request, progress *Progress) error {
	log := logging.GetLogger(ctx)
	obs := p.observer()

	obs.Step("Resolving caller identity")
	identity, err := p.Client.GetCallerIdentity(ctx)
	if err := remoteResult("GetCallerIdentity", identity != nil && identity.Account != "", err); err != nil {
		return err
	}
	partition := partitionOf(identity.Arn)
	roleName := policy.RoleNameForFarm(req.FarmName)
	roleArn := policy.RoleArn(partition, identity.Account, roleName)
	log.Debug("resolved caller identity", zap.String("account", identity.Account), zap.String("fleet_role_arn", roleArn))

	obs.Step("Creating farm")
	farmID, err := p.Client.CreateFarm(ctx, deadlinecloud.FarmSpec{DisplayName: req.FarmName, StudioID: req.StudioID})
	if err := remoteResult("CreateFarm", farmID != "", err); err != nil {
		return err
	}
	progress.FarmID = farmID

	obs.Step("Creating queue")
	queueID, err := p.Client.CreateQueue(ctx, deadlinecloud.QueueSpec{
		FarmID:                farmID,
		DisplayName:           req.QueueName,
		JobRunAsUser:          req.JobRunAsUser,
		JobAttachmentSettings: req.JobAttachmentSettings,
	})
	if err := remoteResult("CreateQueue", queueID != "", err); err != nil {
		return err
	}
	progress.QueueID = queueID

	obs.Step("Waiting for queue")
	attempts, err := p.QueuePoll.Do(ctx, p.onWait(ctx, "GetQueue"), func(ctx context.Context) error {
		id, err := p.Client.GetQueue(ctx, farmID, queueID)
		if err != nil {
			log.Debug("GetQueue attempt failed", zap.Error(err))
			return err
		}
		if id == "" {
			log.Warn("GetQueue didn't return a queue id")
			return ErrMissingField
		}
		return nil
	})
	if err != nil {
		return &RemoteCallError{Operation: "GetQueue", Attempts: attempts, Cause: err}
	}

	data := req.templateData(partition, identity.Account, farmID)
	sourceArn := policy.SourceArn(partition, req.Region, identity.Account, farmID)
	trustPolicy, err := p.trustPolicy(ctx, req.TrustPolicyPath, data, identity.Account, sourceArn)
	if err != nil {
		return err
	}

	obs.Step("Creating fleet role")
	reportedArn, err := p.ensureRole(ctx, roleName, trustPolicy, progress)
	if err != nil {
		return err
	}
	if reportedArn != "" {
		roleArn = reportedArn
	}

	workerPermissions, err := policy.LoadAndRender(p.fs(), req.WorkerPermissionsPath, data)
	if err != nil {
		return &DocumentError{Path: req.WorkerPermissionsPath, Cause: err}
	}
	obs.Step("Attaching worker permissions")
	ok, err := p.Client.PutRolePolicy(ctx, roleName, WorkerPermissionsPolicyName, string(workerPermissions))
	if err := remoteResult("PutRolePolicy", ok, err); err != nil {
		return err
	}
	progress.RolePolicy = &RolePolicy{RoleName: roleName, PolicyName: WorkerPermissionsPolicyName}

	rawFleetConfig, err := policy.LoadAndRender(p.fs(), req.FleetConfigurationPath, data)
	if err != nil {
		return &DocumentError{Path: req.FleetConfigurationPath, Cause: err}
	}
	fleetConfig, err := deadlinecloud.ParseFleetConfiguration(rawFleetConfig)
	if err != nil {
		return &DocumentError{Path: req.FleetConfigurationPath, Cause: err}
	}

	obs.Step("Creating fleet")
	spec := deadlinecloud.FleetSpec{
		FarmID:         farmID,
		DisplayName:    req.FleetName,
		RoleArn:        roleArn,
		MaxWorkerCount: int32(req.MaxWorkerCount),
		Configuration:  fleetConfig,
	}
	var fleetID string
	attempts, err = p.FleetCreate.Do(ctx, p.onWait(ctx, "CreateFleet"), func(ctx context.Context) error {
		id, err := p.Client.CreateFleet(ctx, spec)
		if err != nil {
			log.Debug("CreateFleet attempt failed", zap.Error(err))
			return err
		}
		if id == "" {
			return ErrMissingField
		}
		fleetID = id
		return nil
	})
	if err != nil {
		return &RemoteCallError{
			Operation: "CreateFleet",
			Attempts:  attempts,
			Hint:      "Please check fleet role: " + roleArn,
			Cause:     err,
		}
	}
	progress.FleetID = fleetID

	obs.Step("Associating fleet with queue")
	ok, err = p.Client.CreateQueueFleetAssociation(ctx, farmID, queueID, fleetID)
	return remoteResult("CreateQueueFleetAssociation", ok, err)
}

// trustPolicy loads the fleet role's trust policy and scopes it to the new farm.
func (p *Provisioner) trustPolicy(ctx context.Context, path string, data policy.TemplateData, account, sourceArn string) (string, error) {
	raw, err := policy.LoadAndRender(p.fs(), path, data)
	if err != nil {
		return "", &DocumentError{Path: path, Cause: err}
	}
	doc, err := policy.ParseDocument(raw)
	if err != nil {
		return "", &DocumentError{Path: path, Cause: err}
	}
	n, err := policy.InjectAssumeRoleCondition(doc, account, sourceArn)
	if err != nil {
		return "", &DocumentError{Path: path, Cause: err}
	}
	if n == 0 {
		logging.GetLogger(ctx).Warn("trust policy has no sts:AssumeRole statement to scope", zap.String("path", path))
	}
	out, err := doc.JSON()
	if err != nil {
		return "", &DocumentError{Path: path, Cause: err}
	}
	logging.GetLogger(ctx).Debug("fleet role trust policy", zap.String("policy", out))
	return out, nil
}

// ensureRole creates the fleet role unless it already exists. It returns the
// role's ARN when the service reported one.
func (p *Provisioner) ensureRole(ctx context.Context, roleName, trustPolicy string, progress *Progress) (string, error) {
	log := logging.GetLogger(ctx)

	existing, err := p.Client.GetRole(ctx, roleName)
	switch {
	case err == nil && existing != nil:
		log.Warn("reusing existing fleet role; its trust policy is left unchanged",
			zap.Error(&AlreadyExistsError{Resource: "fleet role", Name: roleName}))
		return existing.Arn, nil

	case err != nil && !deadlinecloud.IsNoSuchEntity(err):
		return "", &RemoteCallError{Operation: "GetRole", Cause: err}
	}

	role, err := p.Client.CreateRole(ctx, roleName, trustPolicy)
	switch {
	case deadlinecloud.IsEntityAlreadyExists(err):
		log.Warn("fleet role was created concurrently",
			zap.Error(&AlreadyExistsError{Resource: "fleet role", Name: roleName}))
		return "", nil
	case err != nil:
		return "", &RemoteCallError{Operation: "CreateRole", Cause: err}
	case role == nil:
		return "", &RemoteCallError{Operation: "CreateRole", Cause: ErrMissingField}
	}
	progress.RoleName = roleName
	return role.Arn, nil
}

func (p *Provisioner) onWait(ctx context.Context, operation string) WaitFunc {
	log := logging.GetLogger(ctx)
	return func(attempt int, d time.Duration) {
		log.Debug("waiting before retry",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Duration("delay", d),
		)
		p.observer().Wait(attempt, d)
	}
}

func partitionOf(identityArn string) string {
	parsed, err := arn.Parse(identityArn)
	if err != nil || parsed.Partition == "" {
		return defaultPartition
	}
	return parsed.Partition
}
