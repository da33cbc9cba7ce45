package authorize

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"clinic/config"
	"clinic/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasbinPolicy_DefaultTable(t *testing.T) {
	policy, err := NewCasbinPolicy(&config.Config{})
	require.NoError(t, err)

	managerOps := map[entity.Operation]bool{
		entity.OpCreatePatient:        true,
		entity.OpListOwnPatients:      true,
		entity.OpViewOwnPatientDetail: true,
		entity.OpDeleteOwnPatient:     true,
	}

	for _, op := range entity.AllOperations {
		t.Run(string(op), func(t *testing.T) {
			asManager, err := policy.Allowed(entity.RoleManager, op)
			require.NoError(t, err)
			asDoctor, err := policy.Allowed(entity.RoleDoctor, op)
			require.NoError(t, err)
			asUnassigned, err := policy.Allowed(entity.RoleUnassigned, op)
			require.NoError(t, err)

			assert.Equal(t, managerOps[op], asManager)
			assert.Equal(t, !managerOps[op], asDoctor)
			assert.False(t, asUnassigned)
		})
	}
}

func TestCasbinPolicy_UnknownRoleDenied(t *testing.T) {
	policy, err := NewCasbinPolicy(nil)
	require.NoError(t, err)

	allowed, err := policy.Allowed(entity.Role("admin"), entity.OpCreatePatient)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCasbinPolicy_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.csv")
	body := "p, manager, CreatePatient\np, unassigned, ListAllPatients\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg := &config.Config{Access: &config.AccessConfig{PolicyPath: path}}
	policy, err := NewCasbinPolicy(cfg)
	require.NoError(t, err)

	allowed, err := policy.Allowed(entity.RoleManager, entity.OpCreatePatient)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = policy.Allowed(entity.RoleManager, entity.OpListOwnPatients)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = policy.Allowed(entity.RoleUnassigned, entity.OpListAllPatients)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCasbinPolicy_MissingFile(t *testing.T) {
	cfg := &config.Config{Access: &config.AccessConfig{PolicyPath: filepath.Join(t.TempDir(), "nope.csv")}}

	_, err := NewCasbinPolicy(cfg)
	assert.Error(t, err)
}

func TestCasbinPolicy_ConcurrentRequests(t *testing.T) {
	policy, err := NewCasbinPolicy(&config.Config{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(role entity.Role) {
			defer wg.Done()
			for _, op := range entity.AllOperations {
				_, err := policy.Allowed(role, op)
				assert.NoError(t, err)
			}
		}([]entity.Role{entity.RoleManager, entity.RoleDoctor}[i%2])
	}
	wg.Wait()

	allowed, err := policy.Allowed(entity.RoleDoctor, entity.OpCreateVisit)
	require.NoError(t, err)
	assert.True(t, allowed)
}
