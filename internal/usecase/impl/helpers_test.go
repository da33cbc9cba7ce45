package impl

import (
	"io"
	"log/slog"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPrincipal(role entity.Role) *entity.Principal {
	return &entity.Principal{
		UserID:    uuid.New(),
		Username:  string(role) + "-user",
		Role:      role,
		SessionID: uuid.New(),
	}
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }
