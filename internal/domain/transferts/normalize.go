package transferts

import "spa-transferts/internal/domain/animaux"

// resolveAnimalRefOnCreate maps the legacy chien_id field onto the
// polymorphic (animal_type, animal_id) pair at creation time.
//
// The inference fires only when animal_type is entirely unset AND
// chien_id is present and non-zero. A caller that sets animal_type,
// even alongside a chien_id, is taken at its word.
func resolveAnimalRefOnCreate(animalType string, animalID, chienID *int64) (*animaux.AnimalType, *int64) {
	if animalType == "" && chienID != nil && *chienID != 0 {
		t := animaux.TypeChien
		return &t, chienID
	}
	if animalType == "" {
		return nil, animalID
	}
	t := animaux.AnimalType(animalType)
	return &t, animalID
}

// applyChienIDOnUpdate stores the supplied chien_id verbatim and, when
// it is non-null, forces the polymorphic pair to ("chien", chien_id).
// The legacy field wins over any animal_type/animal_id supplied in the
// same request; a null chien_id only clears the legacy column.
func applyChienIDOnUpdate(t *Transfert, chienID *int64) {
	t.ChienID = chienID
	if chienID != nil {
		typ := animaux.TypeChien
		t.AnimalType = &typ
		id := *chienID
		t.AnimalID = &id
	}
}
