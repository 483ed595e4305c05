// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"sportera/config"
	deliverycontext "sportera/internal/delivery/context"
	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/geo"
	"sportera/internal/domain/repository"
	"sportera/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// placeCatalog implements the PlaceCatalog interface.
type placeCatalog struct {
	placeRepo  repository.PlaceRepository
	vocabulary entity.SportVocabulary
	now        func() time.Time
	logger     *slog.Logger
}

// PlaceCatalogParams holds dependencies for PlaceCatalog, injected by Fx.
type PlaceCatalogParams struct {
	fx.In

	PlaceRepo repository.PlaceRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPlaceCatalog is the constructor for placeCatalog.
func NewPlaceCatalog(params PlaceCatalogParams) usecase.PlaceCatalog {
	return &placeCatalog{
		placeRepo:  params.PlaceRepo,
		vocabulary: sportVocabulary(params.Config),
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *placeCatalog) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *placeCatalog) Create(ctx context.Context, spec entity.PlaceSpec) (*entity.Place, error) {
	place, err := entity.NewPlace(spec, srv.vocabulary, srv.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := srv.placeRepo.Create(ctx, place); err != nil {
		return nil, errors.Wrap(err, "failed to store place")
	}

	srv.log(ctx).Info("Place created", slog.String("placeID", place.ID.String()), slog.String("name", place.Name))

	return place, nil
}

func (srv *placeCatalog) GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	place, err := srv.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translatePlaceError(err)
	}

	return place, nil
}

func (srv *placeCatalog) ListAll(ctx context.Context) ([]*entity.Place, error) {
	places, err := srv.placeRepo.Find(ctx, repository.PlaceQuery{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	return places, nil
}

func (srv *placeCatalog) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error) {
	places, err := srv.placeRepo.Find(ctx, repository.PlaceQuery{OwnerID: &ownerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places by owner")
	}

	return places, nil
}

func (srv *placeCatalog) ListBySport(ctx context.Context, sport string) ([]*entity.Place, error) {
	places, err := srv.placeRepo.Find(ctx, repository.PlaceQuery{ActiveOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places by sport")
	}

	matches := make([]*entity.Place, 0, len(places))
	for _, place := range places {
		if place.OffersSport(sport) {
			matches = append(matches, place)
		}
	}

	return matches, nil
}

// Update merges changes into the stored place. Validation runs on a copy, so a
// rejected update leaves the stored place untouched.
func (srv *placeCatalog) Update(ctx context.Context, id uuid.UUID, changes entity.PlaceChanges) (*entity.Place, error) {
	current, err := srv.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translatePlaceError(err)
	}

	updated, err := current.Apply(changes, srv.vocabulary, srv.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := srv.placeRepo.Update(ctx, updated); err != nil {
		return nil, translatePlaceError(err)
	}

	srv.log(ctx).Info("Place updated", slog.String("placeID", id.String()))

	return updated, nil
}

func (srv *placeCatalog) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := srv.placeRepo.Delete(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete place")
	}

	if deleted {
		srv.log(ctx).Info("Place deleted", slog.String("placeID", id.String()))
	}

	return deleted, nil
}

// Filter combines every supplied criterion with AND.
func (srv *placeCatalog) Filter(ctx context.Context, criteria usecase.PlaceCriteria) ([]*entity.Place, error) {
	query := repository.PlaceQuery{OwnerID: criteria.OwnerID}
	if criteria.IsActive != nil && *criteria.IsActive {
		query.ActiveOnly = true
	}

	geoFilter := criteria.Center != nil && criteria.RadiusMeters != nil
	if geoFilter {
		if err := validateSearchArea(*criteria.Center, *criteria.RadiusMeters); err != nil {
			return nil, err
		}
		if bound, ok := geo.BoundAround(*criteria.Center, *criteria.RadiusMeters); ok {
			query.Within = &bound
		}
	}

	places, err := srv.placeRepo.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter places")
	}

	matches := make([]*entity.Place, 0, len(places))
	for _, place := range places {
		if criteria.IsActive != nil && place.IsActive != *criteria.IsActive {
			continue
		}
		if len(criteria.Sports) > 0 && !place.OffersAnySport(criteria.Sports) {
			continue
		}
		if geoFilter && geo.Distance(*criteria.Center, place.Location) > *criteria.RadiusMeters {
			continue
		}
		matches = append(matches, place)
	}

	return matches, nil
}

func translatePlaceError(err error) error {
	if errors.Is(err, repository.ErrPlaceNotFound) {
		return domainerrors.ErrPlaceNotFound
	}

	return errors.Wrap(err, "place store failure")
}

func sportVocabulary(cfg *config.Config) entity.SportVocabulary {
	if cfg == nil || cfg.Places == nil {
		return entity.NewSportVocabulary(nil)
	}

	return entity.NewSportVocabulary(cfg.Places.Sports)
}
