package deadlinecloud

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/deadline/types"
)

type (
	PosixUser struct {
		User  string `json:"user" yaml:"user" mapstructure:"user"`
		Group string `json:"group" yaml:"group" mapstructure:"group"`
	}

	// WindowsUser names the job user and the Secrets Manager secret holding its password.
	WindowsUser struct {
		User        string `json:"user" yaml:"user" mapstructure:"user"`
		PasswordArn string `json:"passwordArn" yaml:"passwordArn" mapstructure:"passwordArn"`
	}

	// JobRunAsUser is the OS identity that a queue's job sessions run as.
	JobRunAsUser struct {
		Posix   *PosixUser   `json:"posix,omitempty" yaml:"posix,omitempty" mapstructure:"posix"`
		Windows *WindowsUser `json:"windows,omitempty" yaml:"windows,omitempty" mapstructure:"windows"`
		RunAs   string       `json:"runAs" yaml:"runAs" mapstructure:"runAs"`
	}

	JobAttachmentSettings struct {
		S3BucketName string `json:"s3BucketName" yaml:"s3BucketName" mapstructure:"s3BucketName"`
		RootPrefix   string `json:"rootPrefix" yaml:"rootPrefix" mapstructure:"rootPrefix"`
	}

	FarmSpec struct {
		DisplayName string
		StudioID    string
	}

	QueueSpec struct {
		FarmID                string
		DisplayName           string
		JobRunAsUser          *JobRunAsUser
		JobAttachmentSettings *JobAttachmentSettings
	}

	FleetSpec struct {
		FarmID         string
		DisplayName    string
		RoleArn        string
		MaxWorkerCount int32
		Configuration  types.FleetConfiguration
	}

	CallerIdentity struct {
		Account string
		Arn     string
		UserID  string
	}

	Role struct {
		Name string
		Arn  string
	}
)

// StudioTag is the farm tag that records the studio a farm was created for.
const StudioTag = "studio-id"

// NormalizeRunAs maps a run-as mode to the service enum. The spelling
// CONFIGURED_QUEUE_USER is accepted as an alias of QUEUE_CONFIGURED_USER, and
// an empty mode defaults to WORKER_AGENT_USER.
func NormalizeRunAs(mode string) (types.RunAs, error) {
	switch strings.ToUpper(strings.TrimSpace(mode)) {
	case "", string(types.RunAsWorkerAgentUser):
		return types.RunAsWorkerAgentUser, nil
	case string(types.RunAsQueueConfiguredUser), "CONFIGURED_QUEUE_USER":
		return types.RunAsQueueConfiguredUser, nil
	default:
		return "", fmt.Errorf("unknown run-as mode %q (expected WORKER_AGENT_USER or QUEUE_CONFIGURED_USER)", mode)
	}
}

func (u *JobRunAsUser) toSDK() (*types.JobRunAsUser, error) {
	if u == nil {
		return nil, nil
	}
	runAs, err := NormalizeRunAs(u.RunAs)
	if err != nil {
		return nil, err
	}
	out := &types.JobRunAsUser{RunAs: runAs}
	if u.Posix != nil {
		out.Posix = &types.PosixUser{
			User:  aws.String(u.Posix.User),
			Group: aws.String(u.Posix.Group),
		}
	}
	if u.Windows != nil {
		out.Windows = &types.WindowsUser{
			User:        aws.String(u.Windows.User),
			PasswordArn: aws.String(u.Windows.PasswordArn),
		}
	}
	return out, nil
}

func (s *JobAttachmentSettings) toSDK() *types.JobAttachmentSettings {
	if s == nil || s.S3BucketName == "" {
		return nil
	}
	return &types.JobAttachmentSettings{
		S3BucketName: aws.String(s.S3BucketName),
		RootPrefix:   aws.String(s.RootPrefix),
	}
}

// StudioRegion returns the region prefix of a studio ID such as "us-west-2:abc123".
func StudioRegion(studioID string) string {
	region, _, ok := strings.Cut(studioID, ":")
	if !ok {
		return ""
	}
	return region
}
