package postgres

import (
	"context"

	"clinic/internal/errors"
	"clinic/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the clinic tables, indexes and cascading foreign keys.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
