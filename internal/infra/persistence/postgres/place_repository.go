package postgres

import (
	"context"

	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/repository"
	"sportera/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// placeRepository implements the domain PlaceRepository interface using GORM.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

func (repo *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	if err := repo.db.WithContext(ctx).Create(fromPlaceDomain(place)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
	}

	return nil
}

func (repo *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	var placeM model.PlaceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find place by id")
	}

	return toPlaceDomain(&placeM), nil
}

// Find lists places in insertion order. The bound is applied on the coordinate index.
func (repo *placeRepository) Find(ctx context.Context, query repository.PlaceQuery) ([]*entity.Place, error) {
	tx := repo.db.WithContext(ctx).Model(&model.PlaceModel{})

	if query.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if query.OwnerID != nil {
		tx = tx.Where("owner_id = ?", *query.OwnerID)
	}
	if query.Within != nil {
		tx = tx.Where("latitude BETWEEN ? AND ?", query.Within.Min.Lat(), query.Within.Max.Lat()).
			Where("longitude BETWEEN ? AND ?", query.Within.Min.Lon(), query.Within.Max.Lon())
	}

	var placeMs []*model.PlaceModel
	if err := tx.Order("seq ASC").Find(&placeMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list places")
	}

	places := make([]*entity.Place, 0, len(placeMs))
	for _, placeM := range placeMs {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

func (repo *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("id = ?", place.ID).
		Updates(map[string]any{
			"name":          placeM.Name,
			"address":       placeM.Address,
			"description":   placeM.Description,
			"latitude":      placeM.Latitude,
			"longitude":     placeM.Longitude,
			"sports":        placeM.Sports,
			"owner_id":      placeM.OwnerID,
			"is_active":     placeM.IsActive,
			"amenities":     placeM.Amenities,
			"opening_hours": placeM.OpeningHours,
			"contact_phone": placeM.ContactPhone,
			"contact_email": placeM.ContactEmail,
			"contact_url":   placeM.ContactURL,
			"updated_at":    placeM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

func (repo *placeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlaceModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete place")
	}

	return result.RowsAffected > 0, nil
}
