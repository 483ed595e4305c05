package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sportera/internal/delivery/context"
	"sportera/internal/domain/constants"
	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/service"
	"sportera/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// partnerPlaceService implements the PartnerPlaceUsecase interface on top of the catalog.
type partnerPlaceService struct {
	catalog   usecase.PlaceCatalog
	publisher service.PlaceEventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// PartnerPlaceServiceParams holds dependencies for PartnerPlaceService, injected by Fx.
type PartnerPlaceServiceParams struct {
	fx.In

	Catalog   usecase.PlaceCatalog
	Publisher service.PlaceEventPublisher
	Logger    *slog.Logger
}

// NewPartnerPlaceService is the constructor for partnerPlaceService.
func NewPartnerPlaceService(params PartnerPlaceServiceParams) usecase.PartnerPlaceUsecase {
	return &partnerPlaceService{
		catalog:   params.Catalog,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *partnerPlaceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *partnerPlaceService) ListOwnPlaces(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error) {
	return srv.catalog.ListByOwner(ctx, ownerID)
}

// CreatePlace always records ownerID as the owner, whatever the spec says.
func (srv *partnerPlaceService) CreatePlace(ctx context.Context, ownerID uuid.UUID, spec entity.PlaceSpec) (*entity.Place, error) {
	spec.OwnerID = &ownerID

	place, err := srv.catalog.Create(ctx, spec)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, constants.PlaceEventCreated, place)

	return place, nil
}

func (srv *partnerPlaceService) UpdatePlace(ctx context.Context, ownerID, placeID uuid.UUID, changes entity.PlaceChanges) (*entity.Place, error) {
	if _, err := srv.ownedPlace(ctx, ownerID, placeID); err != nil {
		return nil, err
	}

	place, err := srv.catalog.Update(ctx, placeID, changes)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, constants.PlaceEventUpdated, place)

	return place, nil
}

func (srv *partnerPlaceService) DeletePlace(ctx context.Context, ownerID, placeID uuid.UUID) error {
	place, err := srv.ownedPlace(ctx, ownerID, placeID)
	if err != nil {
		return err
	}

	deleted, err := srv.catalog.Delete(ctx, placeID)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrPlaceNotFound
	}

	srv.publish(ctx, constants.PlaceEventDeleted, place)

	return nil
}

func (srv *partnerPlaceService) ownedPlace(ctx context.Context, ownerID, placeID uuid.UUID) (*entity.Place, error) {
	place, err := srv.catalog.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if !place.IsOwnedBy(ownerID) {
		srv.log(ctx).Warn("Partner tried to manage a place it does not own",
			slog.String("ownerID", ownerID.String()),
			slog.String("placeID", placeID.String()),
		)

		return nil, errors.WithStack(domainerrors.ErrPlaceOwnershipViolation)
	}

	return place, nil
}

// publish logs broker failures instead of returning them; the catalog change is already applied.
func (srv *partnerPlaceService) publish(ctx context.Context, eventType string, place *entity.Place) {
	if srv.publisher == nil {
		return
	}

	event := &service.PlaceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		PlaceID:    place.ID.String(),
		Name:       place.Name,
		Latitude:   place.Latitude(),
		Longitude:  place.Longitude(),
		Sports:     place.Sports,
		OccurredAt: srv.now().UTC(),
	}
	if place.OwnerID != nil {
		event.OwnerID = place.OwnerID.String()
	}

	if err := srv.publisher.PublishPlaceEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish place event",
			slog.String("type", eventType),
			slog.String("placeID", event.PlaceID),
			slog.Any("error", err),
		)
	}
}
