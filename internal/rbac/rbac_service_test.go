package rbac

import (
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"employee applies leave", identity.RoleEmployee, ResourceLeave, ActionCreate, true},
		{"employee cannot decide", identity.RoleEmployee, ResourceLeave, ActionDecide, false},
		{"employee cannot read team", identity.RoleEmployee, ResourceLeave, ActionReadTeam, false},
		{"team lead decides", identity.RoleTeamLead, ResourceLeave, ActionDecide, true},
		{"team lead inherits employee", identity.RoleTeamLead, ResourceDashboard, ActionRead, true},
		{"team lead cannot read all", identity.RoleTeamLead, ResourceLeave, ActionReadAll, false},
		{"team lead cannot manage users", identity.RoleTeamLead, ResourceUser, ActionManage, false},
		{"admin reads all", identity.RoleAdmin, ResourceLeave, ActionReadAll, true},
		{"admin inherits team lead", identity.RoleAdmin, ResourceAI, ActionRecommend, true},
		{"admin inherits employee", identity.RoleAdmin, ResourceAI, ActionChat, true},
		{"unknown role", "contractor", ResourceLeave, ActionCreate, false},
		{"empty role", "", ResourceLeave, ActionCreate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.role, tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestService_Permissions(t *testing.T) {
	svc := newTestService(t)

	employee, err := svc.Permissions(identity.RoleEmployee)
	require.NoError(t, err)
	assert.Contains(t, employee, "leave:create")
	assert.NotContains(t, employee, "leave:decide")

	admin, err := svc.Permissions(identity.RoleAdmin)
	require.NoError(t, err)
	assert.Contains(t, admin, "leave:create")
	assert.Contains(t, admin, "leave:decide")
	assert.Contains(t, admin, "user:manage")
	assert.IsIncreasing(t, admin)
}
