package memory

import (
	"context"
	"sort"
	"sync"

	"spa-transferts/internal/domain/animaux"
)

// One repo per family: the tables are independent, so are their id
// sequences.

type chiensRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]animaux.Chien
}

func NewChiensRepo() animaux.ChienRepository {
	return &chiensRepo{byID: make(map[int64]animaux.Chien)}
}

func (r *chiensRepo) List(ctx context.Context) ([]animaux.Chien, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animaux.Chien, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *chiensRepo) GetByID(ctx context.Context, id int64) (animaux.Chien, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return animaux.Chien{}, animaux.ErrNotFound
	}
	return it, nil
}

func (r *chiensRepo) Create(ctx context.Context, in animaux.Chien) (animaux.Chien, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	in.ID = r.nextID
	r.byID[in.ID] = in
	return in, nil
}

func (r *chiensRepo) Update(ctx context.Context, in animaux.Chien) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[in.ID]; !ok {
		return animaux.ErrNotFound
	}
	r.byID[in.ID] = in
	return nil
}

func (r *chiensRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return animaux.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type chiens12Repo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]animaux.Chien12Mois
}

func NewChiens12Repo() animaux.Chien12Repository {
	return &chiens12Repo{byID: make(map[int64]animaux.Chien12Mois)}
}

func (r *chiens12Repo) List(ctx context.Context) ([]animaux.Chien12Mois, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animaux.Chien12Mois, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *chiens12Repo) GetByID(ctx context.Context, id int64) (animaux.Chien12Mois, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return animaux.Chien12Mois{}, animaux.ErrNotFound
	}
	return it, nil
}

func (r *chiens12Repo) Create(ctx context.Context, in animaux.Chien12Mois) (animaux.Chien12Mois, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	in.ID = r.nextID
	r.byID[in.ID] = in
	return in, nil
}

func (r *chiens12Repo) Update(ctx context.Context, in animaux.Chien12Mois) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[in.ID]; !ok {
		return animaux.ErrNotFound
	}
	r.byID[in.ID] = in
	return nil
}

func (r *chiens12Repo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return animaux.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type chats12Repo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]animaux.Chat12Mois
}

func NewChats12Repo() animaux.Chat12Repository {
	return &chats12Repo{byID: make(map[int64]animaux.Chat12Mois)}
}

func (r *chats12Repo) List(ctx context.Context) ([]animaux.Chat12Mois, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animaux.Chat12Mois, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *chats12Repo) GetByID(ctx context.Context, id int64) (animaux.Chat12Mois, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return animaux.Chat12Mois{}, animaux.ErrNotFound
	}
	return it, nil
}

func (r *chats12Repo) Create(ctx context.Context, in animaux.Chat12Mois) (animaux.Chat12Mois, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	in.ID = r.nextID
	r.byID[in.ID] = in
	return in, nil
}

func (r *chats12Repo) Update(ctx context.Context, in animaux.Chat12Mois) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[in.ID]; !ok {
		return animaux.ErrNotFound
	}
	r.byID[in.ID] = in
	return nil
}

func (r *chats12Repo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return animaux.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
