package pets

// Type es la especie declarada en el catálogo.
// Se guarda tal cual la carga el admin ("Dog", "dog"...), por eso toda
// comparación contra Type debe ser case-insensitive.
// @Enum Dog, Cat, Bird, Other
type Type string

const (
	TypeDog   Type = "Dog"
	TypeCat   Type = "Cat"
	TypeBird  Type = "Bird"
	TypeOther Type = "Other"
)

// Status define la disponibilidad de la mascota en tienda.
// @Enum Available, Sold, Reserved
type Status string

const (
	StatusAvailable Status = "Available"
	StatusSold      Status = "Sold"
	StatusReserved  Status = "Reserved"
)

// Gender de la mascota.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Pet representa una mascota en venta en el catálogo de la tienda.
type Pet struct {
	ID int64

	Name  string
	Breed string
	Type  Type

	AgeWeeks int
	Gender   Gender

	// Rango de precio publicado (la tienda negocia dentro del rango).
	PriceMin int
	PriceMax int

	Status   Status
	ImageURL string
	Featured bool

	Description string
}

// IsAvailable indica si la mascota puede venderse (y por lo tanto recomendarse).
func (p Pet) IsAvailable() bool {
	return p.Status == StatusAvailable
}
