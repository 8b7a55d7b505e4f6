package animaux

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
)

type Service struct {
	chiens   ChienRepository
	chiens12 Chien12Repository
	chats12  Chat12Repository
}

func NewService(chiens ChienRepository, chiens12 Chien12Repository, chats12 Chat12Repository) *Service {
	return &Service{
		chiens:   chiens,
		chiens12: chiens12,
		chats12:  chats12,
	}
}

type CreateInput struct {
	Nom      string
	Age      *int64
	Race     *string
	RefugeID *int64
}

// NullableInt and NullableString mirror a JSON field that can be absent
// (Present=false), null (Present, Value=nil) or set. Needed because null
// clears a stored value while an absent field keeps it.
type NullableInt struct {
	Present bool
	Value   *int64
}

type NullableString struct {
	Present bool
	Value   *string
}

// UpdateInput carries pointers/nullables so an absent field keeps the
// stored value.
type UpdateInput struct {
	Nom      *string
	Age      NullableInt
	Race     NullableString
	RefugeID NullableInt
}

// ---- chiens ----

func (s *Service) ListChiens(ctx context.Context) ([]Chien, error) {
	return s.chiens.List(ctx)
}

func (s *Service) CreateChien(ctx context.Context, in CreateInput) (Chien, error) {
	if strings.TrimSpace(in.Nom) == "" {
		return Chien{}, ErrInvalidInput
	}
	return s.chiens.Create(ctx, Chien{
		Nom:      in.Nom,
		Age:      in.Age,
		Race:     in.Race,
		RefugeID: in.RefugeID,
	})
}

func (s *Service) UpdateChien(ctx context.Context, id int64, in UpdateInput) (Chien, error) {
	current, err := s.chiens.GetByID(ctx, id)
	if err != nil {
		return Chien{}, err
	}

	if in.Nom != nil {
		current.Nom = *in.Nom
	}
	if in.Age.Present {
		current.Age = in.Age.Value
	}
	if in.Race.Present {
		current.Race = in.Race.Value
	}
	if in.RefugeID.Present {
		current.RefugeID = in.RefugeID.Value
	}

	if err := s.chiens.Update(ctx, current); err != nil {
		return Chien{}, err
	}
	return current, nil
}

func (s *Service) DeleteChien(ctx context.Context, id int64) error {
	return s.chiens.Delete(ctx, id)
}

// ---- chiens 12 mois ----

func (s *Service) ListChiens12(ctx context.Context) ([]Chien12Mois, error) {
	return s.chiens12.List(ctx)
}

func (s *Service) CreateChien12(ctx context.Context, in CreateInput) (Chien12Mois, error) {
	if strings.TrimSpace(in.Nom) == "" {
		return Chien12Mois{}, ErrInvalidInput
	}
	return s.chiens12.Create(ctx, Chien12Mois{
		Nom:      in.Nom,
		Age:      in.Age,
		Race:     in.Race,
		RefugeID: in.RefugeID,
	})
}

func (s *Service) UpdateChien12(ctx context.Context, id int64, in UpdateInput) (Chien12Mois, error) {
	current, err := s.chiens12.GetByID(ctx, id)
	if err != nil {
		return Chien12Mois{}, err
	}

	if in.Nom != nil {
		current.Nom = *in.Nom
	}
	if in.Age.Present {
		current.Age = in.Age.Value
	}
	if in.Race.Present {
		current.Race = in.Race.Value
	}
	if in.RefugeID.Present {
		current.RefugeID = in.RefugeID.Value
	}

	if err := s.chiens12.Update(ctx, current); err != nil {
		return Chien12Mois{}, err
	}
	return current, nil
}

func (s *Service) DeleteChien12(ctx context.Context, id int64) error {
	return s.chiens12.Delete(ctx, id)
}

// ---- chats 12 mois ----

func (s *Service) ListChats12(ctx context.Context) ([]Chat12Mois, error) {
	return s.chats12.List(ctx)
}

func (s *Service) CreateChat12(ctx context.Context, in CreateInput) (Chat12Mois, error) {
	if strings.TrimSpace(in.Nom) == "" {
		return Chat12Mois{}, ErrInvalidInput
	}
	return s.chats12.Create(ctx, Chat12Mois{
		Nom:      in.Nom,
		Age:      in.Age,
		Race:     in.Race,
		RefugeID: in.RefugeID,
	})
}

func (s *Service) UpdateChat12(ctx context.Context, id int64, in UpdateInput) (Chat12Mois, error) {
	current, err := s.chats12.GetByID(ctx, id)
	if err != nil {
		return Chat12Mois{}, err
	}

	if in.Nom != nil {
		current.Nom = *in.Nom
	}
	if in.Age.Present {
		current.Age = in.Age.Value
	}
	if in.Race.Present {
		current.Race = in.Race.Value
	}
	if in.RefugeID.Present {
		current.RefugeID = in.RefugeID.Value
	}

	if err := s.chats12.Update(ctx, current); err != nil {
		return Chat12Mois{}, err
	}
	return current, nil
}

func (s *Service) DeleteChat12(ctx context.Context, id int64) error {
	return s.chats12.Delete(ctx, id)
}

// ---- combined listing ----

// ListAll flattens the three families into tagged summaries, in family
// order: chiens, then chiens 12 mois, then chats 12 mois.
func (s *Service) ListAll(ctx context.Context) ([]Summary, error) {
	chiens, err := s.chiens.List(ctx)
	if err != nil {
		return nil, err
	}
	chiens12, err := s.chiens12.List(ctx)
	if err != nil {
		return nil, err
	}
	chats12, err := s.chats12.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(chiens)+len(chiens12)+len(chats12))
	for _, c := range chiens {
		out = append(out, Summary{ID: c.ID, Nom: c.Nom, Type: TypeChien})
	}
	for _, c := range chiens12 {
		out = append(out, Summary{ID: c.ID, Nom: c.Nom, Type: TypeChien12})
	}
	for _, c := range chats12 {
		out = append(out, Summary{ID: c.ID, Nom: c.Nom, Type: TypeChat12})
	}
	return out, nil
}
