package animaux

// AnimalType tags the three animal families. The tag travels in the
// combined listing and in the polymorphic transfer reference.
type AnimalType string

const (
	TypeChien   AnimalType = "chien"
	TypeChien12 AnimalType = "chien12"
	TypeChat12  AnimalType = "chat12"
)

func ValidType(t AnimalType) bool {
	switch t {
	case TypeChien, TypeChien12, TypeChat12:
		return true
	}
	return false
}

// Chien is the primary dog roster. RefugeID is nullable: a dog may be
// un-sheltered.
type Chien struct {
	ID       int64
	Nom      string
	Age      *int64
	Race     *string
	RefugeID *int64
}

// Chien12Mois and Chat12Mois are the "12 month" rosters. They share the
// shape of Chien but are independent entities with their own tables and
// id spaces; they are kept separate on purpose.
type Chien12Mois struct {
	ID       int64
	Nom      string
	Age      *int64
	Race     *string
	RefugeID *int64
}

type Chat12Mois struct {
	ID       int64
	Nom      string
	Age      *int64
	Race     *string
	RefugeID *int64
}

// Summary is one row of the combined listing: id, name and family tag only.
type Summary struct {
	ID   int64
	Nom  string
	Type AnimalType
}
