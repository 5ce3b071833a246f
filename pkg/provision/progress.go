package provision

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type RolePolicy struct {
	RoleName   string `json:"role_name" yaml:"role_name"`
	PolicyName string `json:"policy_name" yaml:"policy_name"`
}

// Progress records what a run has created so far. It is the success result of
// a run and the input to CleanUp.
type Progress struct {
	FarmID     string      `json:"farm_id,omitempty" yaml:"farm_id,omitempty"`
	QueueID    string      `json:"queue_id,omitempty" yaml:"queue_id,omitempty"`
	RoleName   string      `json:"role_name,omitempty" yaml:"role_name,omitempty"`
	RolePolicy *RolePolicy `json:"role_policy,omitempty" yaml:"role_policy,omitempty"`
	FleetID    string      `json:"fleet_id,omitempty" yaml:"fleet_id,omitempty"`
}

func (p Progress) Empty() bool {
	return p.FarmID == "" && p.QueueID == "" && p.RoleName == "" && p.RolePolicy == nil && p.FleetID == ""
}

// Has reports whether r is recorded as created.
func (p Progress) Has(r Resource) bool {
	switch r {
	case ResourceFarm:
		return p.FarmID != ""
	case ResourceQueue:
		return p.QueueID != ""
	case ResourceRole:
		return p.RoleName != ""
	case ResourceRolePolicy:
		return p.RolePolicy != nil
	case ResourceFleet:
		return p.FleetID != ""
	}
	return false
}

type ErrorResult struct {
	Error string `json:"error" yaml:"error"`
}

// ResultDocument is the document reported for a run: the progress record on
// success, {"error": msg} otherwise.
func ResultDocument(p *Progress, err error) any {
	if err != nil {
		return ErrorResult{Error: err.Error()}
	}
	if p == nil {
		return ErrorResult{Error: "no result was returned by the farm creator"}
	}
	return p
}

// ReadProgress loads a progress record saved from a previous run's output.
func ReadProgress(fs afero.Fs, path string) (Progress, error) {
	var p Progress
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return p, errors.Wrapf(err, "couldn't read progress file %s", path)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, errors.Wrapf(err, "couldn't decode progress file %s", path)
	}
	return p, nil
}
