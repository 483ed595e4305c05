package handler

import (
	"net/http"
	"testing"
	"time"

	"sportera/config"
	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/infra/metrics"
	mockService "sportera/internal/mocks/service"
	mockUsecase "sportera/internal/mocks/usecase"
	"sportera/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tuesdayMorning is a Tuesday.
var tuesdayMorning = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

type placeHandlerFixture struct {
	handler  *PlaceHandler
	catalog  *mockUsecase.MockPlaceCatalog
	nearbyUC *mockUsecase.MockNearbyUsecase
	qrcode   *mockService.MockQRCodeService
	metrics  *metrics.Metrics
}

func newPlaceHandlerFixture(t *testing.T) placeHandlerFixture {
	t.Helper()

	f := placeHandlerFixture{
		catalog:  mockUsecase.NewMockPlaceCatalog(t),
		nearbyUC: mockUsecase.NewMockNearbyUsecase(t),
		qrcode:   mockService.NewMockQRCodeService(t),
		metrics:  metrics.New(prometheus.NewRegistry()),
	}
	f.handler = NewPlaceHandler(PlaceHandlerParams{
		Catalog:   f.catalog,
		NearbyUC:  f.nearbyUC,
		QRCodeSvc: f.qrcode,
		Config:    &config.Config{Places: &config.PlacesConfig{DefaultSearchRadiusMeters: 5000}},
		Metrics:   f.metrics,
		Logger:    newDiscardLogger(),
	})
	f.handler.now = func() time.Time { return tuesdayMorning }

	return f
}

func testPlace(name string) *entity.Place {
	return &entity.Place{
		ID:       uuid.New(),
		Name:     name,
		Location: orb.Point{2.2530, 48.8415},
		Sports:   []string{"football"},
		IsActive: true,
	}
}

func TestPlaceHandler_Nearby_DefaultRadius(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/places?lat=48.8415&lng=2.2530", nil)

	stadium := testPlace("Stade Jean Bouin")
	pool := testPlace("Piscine Molitor")
	pool.OpeningHours = entity.OpeningHours{"monday": {Open: "08:00", Close: "20:00"}}

	f.nearbyUC.EXPECT().
		FindNearby(mock.Anything, 48.8415, 2.2530, 5000.0).
		Return([]usecase.NearbyPlace{
			{Place: stadium, DistanceMeters: 0},
			{Place: pool, DistanceMeters: 685.98},
		}, nil)

	require.NoError(t, f.handler.Nearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[NearbyResponse](t, decodeEnvelope(t, rec))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 5000.0, got.Radius)
	assert.Equal(t, Center{Latitude: 48.8415, Longitude: 2.2530}, got.Center)

	require.Len(t, got.Places, 2)
	assert.Equal(t, "Stade Jean Bouin", got.Places[0].Name)
	require.NotNil(t, got.Places[0].DistanceMeters)
	assert.Zero(t, *got.Places[0].DistanceMeters)
	assert.True(t, got.Places[0].OpenNow, "no opening hours means always open")
	assert.False(t, got.Places[1].OpenNow, "closed on tuesdays")
	assert.InDelta(t, 685.98, *got.Places[1].DistanceMeters, 0.001)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.NearbySearches))
}

func TestPlaceHandler_Nearby_EmptyResultIsAnEmptyList(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/places?lat=0&lng=0&radius=10", nil)

	f.nearbyUC.EXPECT().FindNearby(mock.Anything, 0.0, 0.0, 10.0).Return([]usecase.NearbyPlace{}, nil)

	require.NoError(t, f.handler.Nearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"places":[]`)
}

func TestPlaceHandler_Nearby_BadQuery(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantField string
	}{
		{"missing lat", "/api/v1/places?lng=2.25", "latitude"},
		{"missing lng", "/api/v1/places?lat=48.8", "longitude"},
		{"lat not a number", "/api/v1/places?lat=north&lng=2.25", "latitude"},
		{"radius not a number", "/api/v1/places?lat=48.8&lng=2.25&radius=far", "radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPlaceHandlerFixture(t)
			c, rec := newTestContext(t, http.MethodGet, tt.target, nil)

			require.NoError(t, f.handler.Nearby(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Contains(t, string(env.Error.Details), `"field":"`+tt.wantField+`"`)
			f.nearbyUC.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPlaceHandler_Nearby_RadiusAboveCeiling(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/places?lat=48.8&lng=2.25&radius=60000", nil)

	f.nearbyUC.EXPECT().
		FindNearby(mock.Anything, 48.8, 2.25, 60000.0).
		Return(nil, domainerrors.NewValidationError("radius", "must not exceed 50000 meters"))

	require.NoError(t, f.handler.Nearby(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, testutil.ToFloat64(f.metrics.NearbySearches))
}

func TestPlaceHandler_Search_BuildsCriteria(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	ownerID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet,
		"/api/v1/places/search?sports=Tennis,%20natation,,&owner="+ownerID.String()+"&active=true&lat=48.85&lng=2.35", nil)

	f.catalog.EXPECT().
		Filter(mock.Anything, mock.MatchedBy(func(criteria usecase.PlaceCriteria) bool {
			return assert.ObjectsAreEqual([]string{"Tennis", "natation"}, criteria.Sports) &&
				criteria.OwnerID != nil && *criteria.OwnerID == ownerID &&
				criteria.IsActive != nil && *criteria.IsActive &&
				criteria.Center != nil && *criteria.Center == orb.Point{2.35, 48.85} &&
				criteria.RadiusMeters != nil && *criteria.RadiusMeters == 5000
		})).
		Return([]*entity.Place{testPlace("Tennis Club de Paris")}, nil)

	require.NoError(t, f.handler.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[[]PlaceResponse](t, decodeEnvelope(t, rec))
	require.Len(t, got, 1)
	assert.Nil(t, got[0].DistanceMeters)
}

func TestPlaceHandler_Search_RejectsHalfACenter(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/places/search?lat=48.85", nil)

	require.NoError(t, f.handler.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.catalog.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything)
}

func TestPlaceHandler_AllAndBySport(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	places := []*entity.Place{testPlace("A"), testPlace("B")}

	f.catalog.EXPECT().ListAll(mock.Anything).Return(places, nil)
	f.catalog.EXPECT().ListBySport(mock.Anything, "Football").Return(places[:1], nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/places/all", nil)
	require.NoError(t, f.handler.All(c))
	assert.Len(t, decodeData[[]PlaceResponse](t, decodeEnvelope(t, rec)), 2)

	c, rec = newTestContext(t, http.MethodGet, "/api/v1/places/sport/Football", nil)
	c.SetParamNames("sport")
	c.SetParamValues("Football")
	require.NoError(t, f.handler.BySport(c))
	assert.Len(t, decodeData[[]PlaceResponse](t, decodeEnvelope(t, rec)), 1)
}

func TestPlaceHandler_GetByID(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	place := testPlace("Stade Jean Bouin")
	missing := uuid.New()

	f.catalog.EXPECT().GetByID(mock.Anything, place.ID).Return(place, nil)
	f.catalog.EXPECT().GetByID(mock.Anything, missing).Return(nil, errors.WithStack(domainerrors.ErrPlaceNotFound))

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"found", place.ID.String(), http.StatusOK},
		{"not found", missing.String(), http.StatusNotFound},
		{"malformed id", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodGet, "/api/v1/places/"+tt.id, nil)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, f.handler.GetByID(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPlaceHandler_ShareCode(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	place := testPlace("Stade Jean Bouin")
	png := []byte("\x89PNG\r\n\x1a\n")

	f.catalog.EXPECT().GetByID(mock.Anything, place.ID).Return(place, nil)
	f.qrcode.EXPECT().GeneratePlaceQR(place.ID).Return(png, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/places/"+place.ID.String()+"/qr", nil)
	c.SetParamNames("id")
	c.SetParamValues(place.ID.String())

	require.NoError(t, f.handler.ShareCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestPlaceHandler_ShareCode_UnknownPlace(t *testing.T) {
	f := newPlaceHandlerFixture(t)
	id := uuid.New()

	f.catalog.EXPECT().GetByID(mock.Anything, id).Return(nil, errors.WithStack(domainerrors.ErrPlaceNotFound))

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/places/"+id.String()+"/qr", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, f.handler.ShareCode(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.qrcode.AssertNotCalled(t, "GeneratePlaceQR", mock.Anything)
}
