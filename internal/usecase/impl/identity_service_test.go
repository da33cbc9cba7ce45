package impl

import (
	"context"
	"testing"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
	mockRepo "clinic/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_Resolve(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name    string
		profile *entity.Profile
		repoErr error
		want    entity.Role
		wantErr bool
	}{
		{name: "manager", profile: &entity.Profile{UserID: userID, Role: entity.RoleManager}, want: entity.RoleManager},
		{name: "doctor", profile: &entity.Profile{UserID: userID, Role: entity.RoleDoctor}, want: entity.RoleDoctor},
		{name: "no profile", repoErr: repository.ErrProfileNotFound, want: entity.RoleUnassigned},
		{name: "unknown stored role", profile: &entity.Profile{UserID: userID, Role: "nurse"}, want: entity.RoleUnassigned},
		{name: "datastore failure", repoErr: errors.New("connection reset"), want: entity.RoleUnassigned, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := mockRepo.NewMockProfileRepository(t)
			profileRepo.EXPECT().FindByUserID(ctx, userID).Return(tt.profile, tt.repoErr)

			resolver := NewIdentityService(IdentityServiceParams{ProfileRepo: profileRepo, Logger: newDiscardLogger()})

			role, err := resolver.Resolve(ctx, userID)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, role)
		})
	}
}
