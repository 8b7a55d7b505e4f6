package refuges

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("refuge not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Nom         string
	Responsable *string
	Telephone   *string
	Adresse     *string
}

// NullableString mirrors a JSON field that can be absent (Present=false),
// null (Present, Value=nil) or set. Needed because null clears a stored
// value while an absent field keeps it.
type NullableString struct {
	Present bool
	Value   *string
}

// UpdateInput: an absent field keeps the stored value; null clears the
// nullable contact fields.
type UpdateInput struct {
	Nom         *string
	Responsable NullableString
	Telephone   NullableString
	Adresse     NullableString
}

func (s *Service) List(ctx context.Context) ([]Refuge, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Refuge, error) {
	return s.repo.Create(ctx, Refuge{
		Nom:         in.Nom,
		Responsable: in.Responsable,
		Telephone:   in.Telephone,
		Adresse:     in.Adresse,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Refuge, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Refuge{}, err
	}

	if in.Nom != nil {
		current.Nom = *in.Nom
	}
	if in.Responsable.Present {
		current.Responsable = in.Responsable.Value
	}
	if in.Telephone.Present {
		current.Telephone = in.Telephone.Value
	}
	if in.Adresse.Present {
		current.Adresse = in.Adresse.Value
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Refuge{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
