package memory

import (
	"context"
	"slices"
	"sync"

	"sportera/internal/domain/entity"
	"sportera/internal/domain/repository"

	"github.com/google/uuid"
)

// PlaceStore keeps places in insertion order.
type PlaceStore struct {
	mu     sync.RWMutex
	places []*entity.Place
	index  map[uuid.UUID]int
}

// NewPlaceStore creates an empty place store.
func NewPlaceStore() *PlaceStore {
	return &PlaceStore{index: make(map[uuid.UUID]int)}
}

type placeRepository struct {
	store *PlaceStore
}

// NewPlaceRepository returns a repository backed by store.
func NewPlaceRepository(store *PlaceStore) repository.PlaceRepository {
	return &placeRepository{store: store}
}

func (r *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.index[place.ID] = len(r.store.places)
	r.store.places = append(r.store.places, place.Clone())

	return nil
}

func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.index[id]
	if !ok {
		return nil, repository.ErrPlaceNotFound
	}

	return r.store.places[i].Clone(), nil
}

func (r *placeRepository) Find(ctx context.Context, query repository.PlaceQuery) ([]*entity.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Place, 0, len(r.store.places))
	for _, place := range r.store.places {
		if query.ActiveOnly && !place.IsActive {
			continue
		}
		if query.OwnerID != nil && !place.IsOwnedBy(*query.OwnerID) {
			continue
		}
		if query.Within != nil && !query.Within.Contains(place.Location) {
			continue
		}
		result = append(result, place.Clone())
	}

	return result, nil
}

func (r *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.index[place.ID]
	if !ok {
		return repository.ErrPlaceNotFound
	}
	r.store.places[i] = place.Clone()

	return nil
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.index[id]
	if !ok {
		return false, nil
	}

	r.store.places = slices.Delete(r.store.places, i, i+1)
	delete(r.store.index, id)
	for j := i; j < len(r.store.places); j++ {
		r.store.index[r.store.places[j].ID] = j
	}

	return true, nil
}
