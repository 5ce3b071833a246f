package provision

import (
	"context"
	"strings"

	"github.com/klothoplatform/farmcreator/pkg/deadlinecloud"
	"github.com/stretchr/testify/mock"
)

type MockResourceClient struct {
	mock.Mock
}

func (m *MockResourceClient) GetCallerIdentity(ctx context.Context) (*deadlinecloud.CallerIdentity, error) {
	args := m.Called(ctx)
	identity, _ := args.Get(0).(*deadlinecloud.CallerIdentity)
	return identity, args.Error(1)
}

func (m *MockResourceClient) CreateFarm(ctx context.Context, spec deadlinecloud.FarmSpec) (string, error) {
	args := m.Called(ctx, spec)
	return args.String(0), args.Error(1)
}

func (m *MockResourceClient) DeleteFarm(ctx context.Context, farmID string) (bool, error) {
	args := m.Called(ctx, farmID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceClient) CreateQueue(ctx context.Context, spec deadlinecloud.QueueSpec) (string, error) {
	args := m.Called(ctx, spec)
	return args.String(0), args.Error(1)
}

func (m *MockResourceClient) GetQueue(ctx context.Context, farmID, queueID string) (string, error) {
	args := m.Called(ctx, farmID, queueID)
	return args.String(0), args.Error(1)
}

func (m *MockResourceClient) DeleteQueue(ctx context.Context, farmID, queueID string) (bool, error) {
	args := m.Called(ctx, farmID, queueID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceClient) CreateFleet(ctx context.Context, spec deadlinecloud.FleetSpec) (string, error) {
	args := m.Called(ctx, spec)
	return args.String(0), args.Error(1)
}

func (m *MockResourceClient) DeleteFleet(ctx context.Context, farmID, fleetID string) (bool, error) {
	args := m.Called(ctx, farmID, fleetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceClient) CreateQueueFleetAssociation(ctx context.Context, farmID, queueID, fleetID string) (bool, error) {
	args := m.Called(ctx, farmID, queueID, fleetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceClient) GetRole(ctx context.Context, roleName string) (*deadlinecloud.Role, error) {
	args := m.Called(ctx, roleName)
	role, _ := args.Get(0).(*deadlinecloud.Role)
	return role, args.Error(1)
}

func (m *MockResourceClient) CreateRole(ctx context.Context, roleName, assumeRolePolicyDocument string) (*deadlinecloud.Role, error) {
	args := m.Called(ctx, roleName, assumeRolePolicyDocument)
	role, _ := args.Get(0).(*deadlinecloud.Role)
	return role, args.Error(1)
}

func (m *MockResourceClient) DeleteRole(ctx context.Context, roleName string) (bool, error) {
	args := m.Called(ctx, roleName)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceClient) PutRolePolicy(ctx context.Context, roleName, policyName, policyDocument string) (bool, error) {
	args := m.Called(ctx, roleName, policyName, policyDocument)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceClient) DeleteRolePolicy(ctx context.Context, roleName, policyName string) (bool, error) {
	args := m.Called(ctx, roleName, policyName)
	return args.Bool(0), args.Error(1)
}

// deleteCalls lists the Delete* methods called, in call order.
func (m *MockResourceClient) deleteCalls() []string {
	var names []string
	for _, c := range m.Calls {
		if strings.HasPrefix(c.Method, "Delete") {
			names = append(names, c.Method)
		}
	}
	return names
}
