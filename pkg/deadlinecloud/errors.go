package deadlinecloud

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws/retry"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/middleware"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"go.uber.org/zap"
)

// IsNoSuchEntity reports whether err is IAM's "entity does not exist" error.
func IsNoSuchEntity(err error) bool {
	var nse *iamtypes.NoSuchEntityException
	if errors.As(err, &nse) {
		return true
	}
	return hasErrorCode(err, "NoSuchEntity")
}

// IsEntityAlreadyExists reports whether err is IAM's "entity already exists" error.
func IsEntityAlreadyExists(err error) bool {
	var eae *iamtypes.EntityAlreadyExistsException
	if errors.As(err, &eae) {
		return true
	}
	return hasErrorCode(err, "EntityAlreadyExists")
}

func hasErrorCode(err error, code string) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == code
}

// warnRetries logs when the SDK had to retry a call before it succeeded.
func warnRetries(ctx context.Context, operation string, md middleware.Metadata) {
	results, ok := retry.GetAttemptResults(md)
	if !ok || len(results.Results) <= 1 {
		return
	}
	logging.GetLogger(ctx).Warn("call succeeded after retries",
		zap.String("operation", operation),
		zap.Int("attempts", len(results.Results)),
	)
}
