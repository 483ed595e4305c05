package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sportera/config"
	"sportera/internal/domain/entity"
	"sportera/internal/domain/repository"
	"sportera/internal/infra/persistence/memory"
	"sportera/internal/usecase"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			TokenTTL:   time.Hour,
		},
		Places: &config.PlacesConfig{
			MaxSearchRadiusMeters:     50000,
			DefaultSearchRadiusMeters: 5000,
		},
	}
}

func newTestCatalog(placeRepo repository.PlaceRepository) *placeCatalog {
	catalog := NewPlaceCatalog(PlaceCatalogParams{
		PlaceRepo: placeRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*placeCatalog)
	catalog.now = func() time.Time { return testNow }

	return catalog
}

// newSeededCatalog returns a catalog over an in-memory store holding DemoPlaces.
func newSeededCatalog(t *testing.T) (usecase.PlaceCatalog, repository.PlaceRepository) {
	t.Helper()

	placeRepo := memory.NewPlaceRepository(memory.NewPlaceStore())
	catalog := newTestCatalog(placeRepo)
	require.NoError(t, SeedDemoPlaces(context.Background(), catalog, newDiscardLogger()))

	return catalog, placeRepo
}

func placeNames(places []*entity.Place) []string {
	names := make([]string, 0, len(places))
	for _, place := range places {
		names = append(names, place.Name)
	}

	return names
}

func nearbyNames(results []usecase.NearbyPlace) []string {
	names := make([]string, 0, len(results))
	for _, result := range results {
		names = append(names, result.Place.Name)
	}

	return names
}
