package transferts

import (
	"context"
	"errors"
	"time"

	"spa-transferts/internal/domain/animaux"
)

var (
	ErrNotFound       = errors.New("transfert not found")
	ErrMissingRefuges = errors.New("refuge_depart_id et refuge_arrivee_id sont requis")
	ErrInvalidAnimal  = errors.New("animal_type invalide")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	AnimalType      string // "" = unset
	AnimalID        *int64
	ChienID         *int64
	RefugeDepartID  *int64
	RefugeArriveeID *int64
	Statut          string
}

// NullableInt / NullableString mirror JSON fields that can be absent,
// null, or set. Absent keeps the stored value; null clears it.
type NullableInt struct {
	Present bool
	Value   *int64
}

type NullableString struct {
	Present bool
	Value   *string
}

type UpdateInput struct {
	AnimalType      NullableString
	AnimalID        NullableInt
	ChienID         NullableInt
	RefugeDepartID  *int64
	RefugeArriveeID *int64
	Statut          *string
}

func (s *Service) List(ctx context.Context) ([]Transfert, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Transfert, error) {
	animalType, animalID := resolveAnimalRefOnCreate(in.AnimalType, in.AnimalID, in.ChienID)

	if animalType != nil && !animaux.ValidType(*animalType) {
		return Transfert{}, ErrInvalidAnimal
	}

	// Both shelter references are required before anything touches storage.
	if in.RefugeDepartID == nil || *in.RefugeDepartID == 0 ||
		in.RefugeArriveeID == nil || *in.RefugeArriveeID == 0 {
		return Transfert{}, ErrMissingRefuges
	}

	statut := in.Statut
	if statut == "" {
		statut = StatutEnAttente
	}

	// The clock's own calendar day, not the UTC day: truncating the
	// instant would shift early-morning creations in positive-offset
	// zones onto the previous date.
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return s.repo.Create(ctx, Transfert{
		AnimalType:      animalType,
		AnimalID:        animalID,
		ChienID:         in.ChienID, // stored verbatim for legacy readers
		RefugeDepartID:  *in.RefugeDepartID,
		RefugeArriveeID: *in.RefugeArriveeID,
		DateTransfert:   &today,
		Statut:          &statut,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Transfert, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Transfert{}, err
	}

	if in.AnimalType.Present {
		if in.AnimalType.Value == nil || *in.AnimalType.Value == "" {
			current.AnimalType = nil
		} else {
			t := animaux.AnimalType(*in.AnimalType.Value)
			if !animaux.ValidType(t) {
				return Transfert{}, ErrInvalidAnimal
			}
			current.AnimalType = &t
		}
	}
	if in.AnimalID.Present {
		current.AnimalID = in.AnimalID.Value
	}

	// Applied last: a non-null legacy chien_id overrides whatever
	// animal_type/animal_id the same request supplied.
	if in.ChienID.Present {
		applyChienIDOnUpdate(&current, in.ChienID.Value)
	}

	if in.RefugeDepartID != nil {
		current.RefugeDepartID = *in.RefugeDepartID
	}
	if in.RefugeArriveeID != nil {
		current.RefugeArriveeID = *in.RefugeArriveeID
	}
	if in.Statut != nil {
		current.Statut = in.Statut
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Transfert{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
