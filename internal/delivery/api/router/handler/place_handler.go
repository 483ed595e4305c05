package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sportera/config"
	"sportera/internal/delivery/api/response"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/service"
	"sportera/internal/infra/metrics"
	"sportera/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	Catalog   usecase.PlaceCatalog
	NearbyUC  usecase.NearbyUsecase
	QRCodeSvc service.QRCodeService
	Config    *config.Config
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// PlaceHandler serves the public, read-only side of the directory
type PlaceHandler struct {
	catalog       usecase.PlaceCatalog
	nearbyUC      usecase.NearbyUsecase
	qrcodeSvc     service.QRCodeService
	defaultRadius float64
	metrics       *metrics.Metrics
	now           func() time.Time
	logger        *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	defaultRadius := params.Config.Places.DefaultSearchRadiusMeters
	if defaultRadius <= 0 {
		defaultRadius = 5000
	}

	return &PlaceHandler{
		catalog:       params.Catalog,
		nearbyUC:      params.NearbyUC,
		qrcodeSvc:     params.QRCodeSvc,
		defaultRadius: defaultRadius,
		metrics:       params.Metrics,
		now:           time.Now,
		logger:        params.Logger,
	}
}

// Center is a search origin
type Center struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyResponse lists places around a center, nearest first
type NearbyResponse struct {
	Places []PlaceResponse `json:"places"`
	Count  int             `json:"count"`
	Radius float64         `json:"radius"`
	Center Center          `json:"center"`
}

// Nearby handles GET /api/v1/places?lat=&lng=&radius=
func (h *PlaceHandler) Nearby(c echo.Context) error {
	lat, err := requiredFloatQuery(c, "lat", "latitude")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	lng, err := requiredFloatQuery(c, "lng", "longitude")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	radius, err := optionalFloatQuery(c, "radius", "radius", h.defaultRadius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results, err := h.nearbyUC.FindNearby(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.metrics.ObserveNearbySearch(len(results))

	now := h.now()
	places := make([]PlaceResponse, 0, len(results))
	for _, result := range results {
		resp := newPlaceResponse(result.Place, now)
		distance := result.DistanceMeters
		resp.DistanceMeters = &distance
		places = append(places, resp)
	}

	return response.Success(c, http.StatusOK, NearbyResponse{
		Places: places,
		Count:  len(places),
		Radius: radius,
		Center: Center{Latitude: lat, Longitude: lng},
	})
}

// Search handles GET /api/v1/places/search?sports=a,b&owner=&active=&lat=&lng=&radius=
// The geographic criterion applies only when both lat and lng are given; radius then defaults.
func (h *PlaceHandler) Search(c echo.Context) error {
	var criteria usecase.PlaceCriteria

	if raw := c.QueryParam("sports"); raw != "" {
		for _, sport := range strings.Split(raw, ",") {
			if sport = strings.TrimSpace(sport); sport != "" {
				criteria.Sports = append(criteria.Sports, sport)
			}
		}
	}

	if raw := c.QueryParam("owner"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.NewValidationError("owner", "must be a UUID"))
		}
		criteria.OwnerID = &ownerID
	}

	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.NewValidationError("active", "must be true or false"))
		}
		criteria.IsActive = &active
	}

	hasLat, hasLng := c.QueryParam("lat") != "", c.QueryParam("lng") != ""
	if hasLat != hasLng {
		return response.HandleAppError(c, domainerrors.NewValidationError("center", "lat and lng must be given together"))
	}

	if hasLat {
		lat, err := requiredFloatQuery(c, "lat", "latitude")
		if err != nil {
			return response.HandleAppError(c, err)
		}

		lng, err := requiredFloatQuery(c, "lng", "longitude")
		if err != nil {
			return response.HandleAppError(c, err)
		}

		radius, err := optionalFloatQuery(c, "radius", "radius", h.defaultRadius)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		center := orb.Point{lng, lat}
		criteria.Center = &center
		criteria.RadiusMeters = &radius
	}

	places, err := h.catalog.Filter(c.Request().Context(), criteria)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPlaceResponses(places, h.now()))
}

// All handles GET /api/v1/places/all
func (h *PlaceHandler) All(c echo.Context) error {
	places, err := h.catalog.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPlaceResponses(places, h.now()))
}

// BySport handles GET /api/v1/places/sport/:sport
func (h *PlaceHandler) BySport(c echo.Context) error {
	places, err := h.catalog.ListBySport(c.Request().Context(), c.Param("sport"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPlaceResponses(places, h.now()))
}

// GetByID handles GET /api/v1/places/:id
func (h *PlaceHandler) GetByID(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	place, err := h.catalog.GetByID(c.Request().Context(), placeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPlaceResponse(place, h.now()))
}

// ShareCode handles GET /api/v1/places/:id/qr and answers a PNG image
func (h *PlaceHandler) ShareCode(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	if _, err := h.catalog.GetByID(c.Request().Context(), placeID); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcodeSvc.GeneratePlaceQR(placeID)
	if err != nil {
		h.logger.Error("Failed to generate place QR code",
			slog.String("place_id", placeID.String()),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "QR_CODE_FAILED", "Failed to generate share code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// requiredFloatQuery reads a numeric query parameter; field names the value in validation errors.
func requiredFloatQuery(c echo.Context, param, field string) (float64, error) {
	raw := c.QueryParam(param)
	if raw == "" {
		return 0, domainerrors.NewValidationErrorf(field, "query parameter %q is required", param)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domainerrors.NewValidationErrorf(field, "query parameter %q must be a number", param)
	}

	return value, nil
}

func optionalFloatQuery(c echo.Context, param, field string, fallback float64) (float64, error) {
	if c.QueryParam(param) == "" {
		return fallback, nil
	}

	return requiredFloatQuery(c, param, field)
}
