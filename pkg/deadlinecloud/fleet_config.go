package deadlinecloud

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/deadline/types"
)

// fleetConfigurationDocument mirrors the service's FleetConfiguration union as it
// appears in JSON documents: exactly one of the members is set. Member bodies are
// matched onto the SDK structs by encoding/json's case-insensitive field matching,
// so the documents use the service's camelCase names (e.g. "workerCapabilities").
type fleetConfigurationDocument struct {
	CustomerManaged   *types.CustomerManagedFleetConfiguration   `json:"customerManaged"`
	ServiceManagedEc2 *types.ServiceManagedEc2FleetConfiguration `json:"serviceManagedEc2"`
}

var ErrFleetConfigurationMember = errors.New("fleet configuration must set exactly one of customerManaged or serviceManagedEc2")

// ParseFleetConfiguration decodes a fleet configuration JSON document into the
// SDK's FleetConfiguration union.
func ParseFleetConfiguration(raw []byte) (types.FleetConfiguration, error) {
	var doc fleetConfigurationDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("could not decode fleet configuration: %w", err)
	}
	switch {
	case doc.CustomerManaged != nil && doc.ServiceManagedEc2 == nil:
		return &types.FleetConfigurationMemberCustomerManaged{Value: *doc.CustomerManaged}, nil
	case doc.ServiceManagedEc2 != nil && doc.CustomerManaged == nil:
		return &types.FleetConfigurationMemberServiceManagedEc2{Value: *doc.ServiceManagedEc2}, nil
	default:
		return nil, ErrFleetConfigurationMember
	}
}
