package impl

import (
	"context"
	"testing"

	"sportera/config"
	"sportera/internal/domain/entity"
	mockUsecase "sportera/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestSeedDemoPlaces_SkipsNonEmptyCatalog(t *testing.T) {
	catalog, _ := newSeededCatalog(t)
	ctx := context.Background()

	require.NoError(t, SeedDemoPlaces(ctx, catalog, newDiscardLogger()))

	places, err := catalog.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, places, len(DemoPlaces))
}

func TestSeedDemoPlaces_StopsOnFirstError(t *testing.T) {
	catalog := mockUsecase.NewMockPlaceCatalog(t)
	ctx := context.Background()

	catalog.EXPECT().ListAll(ctx).Return(nil, nil)
	catalog.EXPECT().Create(ctx, mock.AnythingOfType("entity.PlaceSpec")).Return(nil, errors.New("store down")).Once()

	err := SeedDemoPlaces(ctx, catalog, newDiscardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stade Jean Bouin")
}

func TestRegisterDemoSeed_RunsOnStartWhenEnabled(t *testing.T) {
	catalog := mockUsecase.NewMockPlaceCatalog(t)
	lc := fxtest.NewLifecycle(t)

	catalog.EXPECT().ListAll(mock.Anything).Return([]*entity.Place{{Name: "existing"}}, nil)

	RegisterDemoSeed(SeedParams{
		Lifecycle: lc,
		Catalog:   catalog,
		Config:    &config.Config{Places: &config.PlacesConfig{SeedDemoData: true}},
		Logger:    newDiscardLogger(),
	})

	lc.RequireStart()
	lc.RequireStop()
}

func TestRegisterDemoSeed_DisabledRegistersNothing(t *testing.T) {
	catalog := mockUsecase.NewMockPlaceCatalog(t)
	lc := fxtest.NewLifecycle(t)

	RegisterDemoSeed(SeedParams{
		Lifecycle: lc,
		Catalog:   catalog,
		Config:    &config.Config{Places: &config.PlacesConfig{SeedDemoData: false}},
		Logger:    newDiscardLogger(),
	})

	lc.RequireStart()
	lc.RequireStop()
	catalog.AssertNotCalled(t, "ListAll", mock.Anything)
}
