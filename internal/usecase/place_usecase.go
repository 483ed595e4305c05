// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sportera/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PlaceCriteria combines optional filters; unset fields do not restrict the result.
// The distance filter applies only when both Center and RadiusMeters are set.
type PlaceCriteria struct {
	Sports       []string   // Matches places offering at least one of these.
	OwnerID      *uuid.UUID // Managing organization.
	IsActive     *bool
	Center       *orb.Point // [longitude, latitude].
	RadiusMeters *float64
}

// NearbyPlace is a search hit with its distance from the query point.
type NearbyPlace struct {
	Place          *entity.Place
	DistanceMeters float64
}

// PlaceCatalog is the authoritative collection of places.
type PlaceCatalog interface {
	Create(ctx context.Context, spec entity.PlaceSpec) (*entity.Place, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)
	ListAll(ctx context.Context) ([]*entity.Place, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error)
	// ListBySport returns active places offering sport, compared case-insensitively.
	ListBySport(ctx context.Context, sport string) ([]*entity.Place, error)
	Update(ctx context.Context, id uuid.UUID, changes entity.PlaceChanges) (*entity.Place, error)
	// Delete reports false when the place did not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Filter(ctx context.Context, criteria PlaceCriteria) ([]*entity.Place, error)
}

// NearbyUsecase answers proximity queries over active places.
type NearbyUsecase interface {
	// FindNearby returns active places within radiusMeters of (lat, lng), closest first.
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]NearbyPlace, error)
}

// PartnerPlaceUsecase lets organization accounts manage the places they own.
type PartnerPlaceUsecase interface {
	ListOwnPlaces(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error)
	CreatePlace(ctx context.Context, ownerID uuid.UUID, spec entity.PlaceSpec) (*entity.Place, error)
	UpdatePlace(ctx context.Context, ownerID, placeID uuid.UUID, changes entity.PlaceChanges) (*entity.Place, error)
	DeletePlace(ctx context.Context, ownerID, placeID uuid.UUID) error
}
