package animaux

import "context"

type ChienRepository interface {
	List(ctx context.Context) ([]Chien, error)
	GetByID(ctx context.Context, id int64) (Chien, error)
	Create(ctx context.Context, c Chien) (Chien, error)
	Update(ctx context.Context, c Chien) error
	Delete(ctx context.Context, id int64) error
}

type Chien12Repository interface {
	List(ctx context.Context) ([]Chien12Mois, error)
	GetByID(ctx context.Context, id int64) (Chien12Mois, error)
	Create(ctx context.Context, c Chien12Mois) (Chien12Mois, error)
	Update(ctx context.Context, c Chien12Mois) error
	Delete(ctx context.Context, id int64) error
}

type Chat12Repository interface {
	List(ctx context.Context) ([]Chat12Mois, error)
	GetByID(ctx context.Context, id int64) (Chat12Mois, error)
	Create(ctx context.Context, c Chat12Mois) (Chat12Mois, error)
	Update(ctx context.Context, c Chat12Mois) error
	Delete(ctx context.Context, id int64) error
}
