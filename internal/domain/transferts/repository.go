package transferts

import "context"

type Repository interface {
	List(ctx context.Context) ([]Transfert, error)
	GetByID(ctx context.Context, id int64) (Transfert, error)
	// Create persists t and returns it with the storage-assigned id.
	Create(ctx context.Context, t Transfert) (Transfert, error)
	Update(ctx context.Context, t Transfert) error
	Delete(ctx context.Context, id int64) error
}
