package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sportera/internal/delivery/api/middleware"
	"sportera/internal/delivery/api/response"
	"sportera/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartnerHandlerParams holds dependencies for PartnerHandler, injected by Fx.
type PartnerHandlerParams struct {
	fx.In

	PartnerUC usecase.PartnerPlaceUsecase
	Logger    *slog.Logger
}

// PartnerHandler lets organization accounts manage the places they own
type PartnerHandler struct {
	partnerUC usecase.PartnerPlaceUsecase
	now       func() time.Time
	logger    *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler
func NewPartnerHandler(params PartnerHandlerParams) *PartnerHandler {
	return &PartnerHandler{
		partnerUC: params.PartnerUC,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// ListPlaces handles GET /api/v1/partner/places
func (h *PartnerHandler) ListPlaces(c echo.Context) error {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "authentication required")
	}

	places, err := h.partnerUC.ListOwnPlaces(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPlaceResponses(places, h.now()))
}

// CreatePlace handles POST /api/v1/partner/places
func (h *PartnerHandler) CreatePlace(c echo.Context) error {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "authentication required")
	}

	var req CreatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid place input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	place, err := h.partnerUC.CreatePlace(c.Request().Context(), ownerID, req.toSpec())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "place created", newPlaceResponse(place, h.now()))
}

// UpdatePlace handles PATCH /api/v1/partner/places/:id
func (h *PartnerHandler) UpdatePlace(c echo.Context) error {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "authentication required")
	}

	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	var req UpdatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid place input")
	}

	place, err := h.partnerUC.UpdatePlace(c.Request().Context(), ownerID, placeID, req.toChanges())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "place updated", newPlaceResponse(place, h.now()))
}

// DeletePlace handles DELETE /api/v1/partner/places/:id
func (h *PartnerHandler) DeletePlace(c echo.Context) error {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "authentication required")
	}

	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	if err := h.partnerUC.DeletePlace(c.Request().Context(), ownerID, placeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "place deleted", map[string]uuid.UUID{"id": placeID})
}
