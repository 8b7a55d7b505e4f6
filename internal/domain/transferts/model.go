package transferts

import (
	"time"

	"spa-transferts/internal/domain/animaux"
)

// Transfert records moving one animal from a departure refuge to an
// arrival refuge, with a workflow status.
//
// AnimalType+AnimalID is the polymorphic animal reference (no single
// foreign key can span the three disjoint animal tables, so the pair is
// a contract, not a storage constraint). ChienID is the legacy
// single-species field, stored verbatim for old readers.
type Transfert struct {
	ID              int64
	AnimalType      *animaux.AnimalType
	AnimalID        *int64
	ChienID         *int64
	RefugeDepartID  int64
	RefugeArriveeID int64
	DateTransfert   *time.Time
	Statut          *string
}

// StatutEnAttente is the initial workflow status.
const StatutEnAttente = "En attente"
