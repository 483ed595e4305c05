package postgres

import (
	"context"

	"sportera/internal/errors"
	"sportera/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables owned by this package.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.AccountModel{}, &model.PlaceModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
