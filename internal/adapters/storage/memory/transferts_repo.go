package memory

import (
	"context"
	"sort"
	"sync"

	"spa-transferts/internal/domain/transferts"
)

type transfertsRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]transferts.Transfert
}

func NewTransfertsRepo() transferts.Repository {
	return &transfertsRepo{byID: make(map[int64]transferts.Transfert)}
}

func (r *transfertsRepo) List(ctx context.Context) ([]transferts.Transfert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]transferts.Transfert, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *transfertsRepo) GetByID(ctx context.Context, id int64) (transferts.Transfert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return transferts.Transfert{}, transferts.ErrNotFound
	}
	return it, nil
}

func (r *transfertsRepo) Create(ctx context.Context, in transferts.Transfert) (transferts.Transfert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	in.ID = r.nextID
	r.byID[in.ID] = in
	return in, nil
}

func (r *transfertsRepo) Update(ctx context.Context, in transferts.Transfert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[in.ID]; !ok {
		return transferts.ErrNotFound
	}
	r.byID[in.ID] = in
	return nil
}

func (r *transfertsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return transferts.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
