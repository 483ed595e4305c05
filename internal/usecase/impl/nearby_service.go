package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"

	"sportera/config"
	deliverycontext "sportera/internal/delivery/context"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/geo"
	"sportera/internal/domain/repository"
	"sportera/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultMaxSearchRadiusMeters caps nearby queries when configuration does not.
const DefaultMaxSearchRadiusMeters = 50000.0

// nearbyService scans every active place and keeps the ones inside the radius.
// The store's bounding-box pre-filter only trims rows; each query is still O(n)
// in the places it returns, with no spatial index.
type nearbyService struct {
	placeRepo       repository.PlaceRepository
	maxRadiusMeters float64
	logger          *slog.Logger
}

// NearbyServiceParams holds dependencies for NearbyService, injected by Fx.
type NearbyServiceParams struct {
	fx.In

	PlaceRepo repository.PlaceRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewNearbyService is the constructor for nearbyService.
func NewNearbyService(params NearbyServiceParams) usecase.NearbyUsecase {
	maxRadius := DefaultMaxSearchRadiusMeters
	if params.Config != nil && params.Config.Places != nil && params.Config.Places.MaxSearchRadiusMeters > 0 {
		maxRadius = params.Config.Places.MaxSearchRadiusMeters
	}

	return &nearbyService{
		placeRepo:       params.PlaceRepo,
		maxRadiusMeters: maxRadius,
		logger:          params.Logger,
	}
}

func (srv *nearbyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearby validates the query before touching the store, then returns every
// active place at most radiusMeters away, closest first. Equal distances keep
// catalog insertion order.
func (srv *nearbyService) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]usecase.NearbyPlace, error) {
	center := orb.Point{lng, lat}
	if err := validateSearchArea(center, radiusMeters); err != nil {
		return nil, err
	}
	if radiusMeters > srv.maxRadiusMeters {
		return nil, domainerrors.NewValidationErrorf("radius", "radius must be at most %.0f meters", srv.maxRadiusMeters)
	}

	query := repository.PlaceQuery{ActiveOnly: true}
	if bound, ok := geo.BoundAround(center, radiusMeters); ok {
		query.Within = &bound
	}

	places, err := srv.placeRepo.Find(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to load places for nearby search", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load places for nearby search")
	}

	results := make([]usecase.NearbyPlace, 0, len(places))
	for _, place := range places {
		if !place.IsActive {
			continue
		}
		distance := geo.Distance(center, place.Location)
		if distance <= radiusMeters {
			results = append(results, usecase.NearbyPlace{Place: place, DistanceMeters: distance})
		}
	}

	slices.SortStableFunc(results, func(a, b usecase.NearbyPlace) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	srv.log(ctx).Debug("Nearby search completed",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
		slog.Float64("radius", radiusMeters),
		slog.Int("results", len(results)),
	)

	return results, nil
}

func validateSearchArea(center orb.Point, radiusMeters float64) error {
	if !geo.ValidLatitude(center.Lat()) {
		return domainerrors.NewValidationError("latitude", "latitude must be between -90 and 90")
	}
	if !geo.ValidLongitude(center.Lon()) {
		return domainerrors.NewValidationError("longitude", "longitude must be between -180 and 180")
	}
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) || radiusMeters <= 0 {
		return domainerrors.NewValidationError("radius", "radius must be a positive number of meters")
	}

	return nil
}
