package memory

import (
	"context"
	"sort"
	"sync"

	"spa-transferts/internal/domain/refuges"
)

type refugesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]refuges.Refuge
}

func NewRefugesRepo() refuges.Repository {
	return &refugesRepo{byID: make(map[int64]refuges.Refuge)}
}

func (r *refugesRepo) List(ctx context.Context) ([]refuges.Refuge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]refuges.Refuge, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *refugesRepo) GetByID(ctx context.Context, id int64) (refuges.Refuge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return refuges.Refuge{}, refuges.ErrNotFound
	}
	return it, nil
}

func (r *refugesRepo) Create(ctx context.Context, in refuges.Refuge) (refuges.Refuge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	in.ID = r.nextID
	r.byID[in.ID] = in
	return in, nil
}

func (r *refugesRepo) Update(ctx context.Context, in refuges.Refuge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[in.ID]; !ok {
		return refuges.ErrNotFound
	}
	r.byID[in.ID] = in
	return nil
}

func (r *refugesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return refuges.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
