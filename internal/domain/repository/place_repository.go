package repository

import (
	"context"
	"errors"

	"sportera/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrPlaceNotFound is returned when no place has the requested id.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceQuery narrows a listing at the store level. Zero values mean "no restriction".
// Within is a coarse pre-filter only; callers still apply exact distance checks.
type PlaceQuery struct {
	OwnerID    *uuid.UUID
	ActiveOnly bool
	Within     *orb.Bound
}

// PlaceRepository persists places and returns them in insertion order.
type PlaceRepository interface {
	// Create stores a new place.
	Create(ctx context.Context, place *entity.Place) error

	// FindByID returns the place or ErrPlaceNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// Find lists places matching query in insertion order.
	Find(ctx context.Context, query PlaceQuery) ([]*entity.Place, error)

	// Update replaces a stored place or returns ErrPlaceNotFound.
	Update(ctx context.Context, place *entity.Place) error

	// Delete removes a place and reports whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
