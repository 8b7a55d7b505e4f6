package refuges

// Refuge is a shelter: it houses animals and is the origin or
// destination of transfers. Only the name is mandatory; the contact
// fields are nullable and serialize as null when unset.
type Refuge struct {
	ID          int64
	Nom         string
	Responsable *string
	Telephone   *string
	Adresse     *string
}
