package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sportera/internal/domain/entity"
	"sportera/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newAccount(email string) *entity.Account {
	return &entity.Account{
		ID:        uuid.New(),
		Name:      "Camille",
		Email:     email,
		Secret:    entity.PasswordDigest("$2a$04$hash"),
		Kind:      entity.AccountKindStandard,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func newPlace(t *testing.T, name string, lat, lng float64) *entity.Place {
	t.Helper()

	place, err := entity.NewPlace(entity.PlaceSpec{
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
		Sports:    []string{"football"},
	}, entity.NewSportVocabulary(nil), testNow)
	require.NoError(t, err)

	return place
}

func TestAccountRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewAccountStore())
	account := newAccount("camille@example.com")

	require.NoError(t, repo.Save(ctx, account))

	byEmail, err := repo.FindByEmail(ctx, " Camille@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "camille@example.com", byID.Email)

	exists, err := repo.Exists(ctx, "CAMILLE@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewAccountStore())
	account := newAccount("a@example.com")
	require.NoError(t, repo.Save(ctx, account))

	account.Points = 99
	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	found.Name = "changed"

	again, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Zero(t, again.Points)
	assert.Equal(t, "Camille", again.Name)
}

func TestAccountRepository_SaveConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewAccountStore())
	require.NoError(t, repo.Save(ctx, newAccount("a@example.com")))

	err := repo.Save(ctx, newAccount("A@EXAMPLE.COM"))
	assert.ErrorIs(t, err, repository.ErrAccountConflict)
}

func TestAccountRepository_ConcurrentSaveSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewAccountStore())

	var wg sync.WaitGroup
	var saved atomic.Int32
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Save(ctx, newAccount("race@example.com")); err == nil {
				saved.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), saved.Load())
}

func TestAccountRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewAccountStore())
	first := newAccount("first@example.com")
	second := newAccount("second@example.com")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	first.Points = 10
	first.Email = "renamed@example.com"
	require.NoError(t, repo.Update(ctx, first))

	exists, err := repo.Exists(ctx, "first@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	second.Email = "renamed@example.com"
	assert.ErrorIs(t, repo.Update(ctx, second), repository.ErrAccountConflict)
	assert.ErrorIs(t, repo.Update(ctx, newAccount("ghost@example.com")), repository.ErrAccountNotFound)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrAccountNotFound)
	exists, err = repo.Exists(ctx, "renamed@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAccountRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewAccountRepository(NewAccountStore())
	assert.ErrorIs(t, repo.Save(ctx, newAccount("a@example.com")), context.Canceled)
}

func TestPlaceRepository_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepository(NewPlaceStore())

	var ids []uuid.UUID
	for i := range 5 {
		place := newPlace(t, fmt.Sprintf("Place %d", i), 48.85, 2.35)
		ids = append(ids, place.ID)
		require.NoError(t, repo.Create(ctx, place))
	}

	deleted, err := repo.Delete(ctx, ids[1])
	require.NoError(t, err)
	assert.True(t, deleted)

	places, err := repo.Find(ctx, repository.PlaceQuery{})
	require.NoError(t, err)
	require.Len(t, places, 4)
	assert.Equal(t, []uuid.UUID{ids[0], ids[2], ids[3], ids[4]}, []uuid.UUID{places[0].ID, places[1].ID, places[2].ID, places[3].ID})

	found, err := repo.FindByID(ctx, ids[4])
	require.NoError(t, err)
	assert.Equal(t, "Place 4", found.Name)

	deleted, err = repo.Delete(ctx, ids[1])
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPlaceRepository_FindFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepository(NewPlaceStore())
	owner := uuid.New()

	owned := newPlace(t, "Owned", 48.85, 2.35)
	owned.OwnerID = &owner
	inactive := newPlace(t, "Inactive", 48.85, 2.35)
	inactive.IsActive = false
	far := newPlace(t, "Far", 51.5, -0.12)

	for _, p := range []*entity.Place{owned, inactive, far} {
		require.NoError(t, repo.Create(ctx, p))
	}

	active, err := repo.Find(ctx, repository.PlaceQuery{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	byOwner, err := repo.Find(ctx, repository.PlaceQuery{OwnerID: &owner})
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, owned.ID, byOwner[0].ID)

	bound := orb.Bound{Min: orb.Point{2.0, 48.0}, Max: orb.Point{3.0, 49.0}}
	within, err := repo.Find(ctx, repository.PlaceQuery{Within: &bound})
	require.NoError(t, err)
	assert.Len(t, within, 2)
}

func TestPlaceRepository_UpdateAndIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepository(NewPlaceStore())
	place := newPlace(t, "Gymnase", 48.85, 2.35)
	require.NoError(t, repo.Create(ctx, place))

	place.Sports[0] = "tennis"
	found, err := repo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, "football", found.Sports[0])

	found.Name = "Gymnase rénové"
	require.NoError(t, repo.Update(ctx, found))
	updated, err := repo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gymnase rénové", updated.Name)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPlaceNotFound)
	assert.ErrorIs(t, repo.Update(ctx, newPlace(t, "Ghost", 0, 0)), repository.ErrPlaceNotFound)
}

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountStore()
	tm := NewTransactionManager(accounts, NewPlaceStore())
	account := newAccount("tx@example.com")
	require.NoError(t, NewAccountRepository(accounts).Save(ctx, account))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				found, err := f.AccountRepo().FindByIDForUpdate(ctx, account.ID)
				if err != nil {
					return err
				}
				if err := found.AddPoints(1, testNow); err != nil {
					return err
				}

				return f.AccountRepo().Update(ctx, found)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := NewAccountRepository(accounts).FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Points)

	sentinel := errors.New("boom")
	err = tm.Execute(ctx, func(repository.RepositoryFactory) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestTransactionManager_FailedCallbackKeepsEarlierWrites(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountStore()
	tm := NewTransactionManager(accounts, NewPlaceStore())
	account := newAccount("partial@example.com")
	require.NoError(t, NewAccountRepository(accounts).Save(ctx, account))

	sentinel := errors.New("after write")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		found, err := f.AccountRepo().FindByIDForUpdate(ctx, account.ID)
		if err != nil {
			return err
		}
		found.Points = 7
		if err := f.AccountRepo().Update(ctx, found); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	found, err := NewAccountRepository(accounts).FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.Points)
}

func TestTransactionManager_CancelledContextSkipsCallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tm := NewTransactionManager(NewAccountStore(), NewPlaceStore())
	called := false
	err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
