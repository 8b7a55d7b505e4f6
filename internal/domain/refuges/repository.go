package refuges

import "context"

type Repository interface {
	List(ctx context.Context) ([]Refuge, error)
	GetByID(ctx context.Context, id int64) (Refuge, error)
	// Create persists r and returns it with the storage-assigned id.
	Create(ctx context.Context, r Refuge) (Refuge, error)
	Update(ctx context.Context, r Refuge) error
	Delete(ctx context.Context, id int64) error
}
