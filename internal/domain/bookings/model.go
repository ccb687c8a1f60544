package bookings

// Type de reserva/consulta que deja un cliente desde la web.
// @Enum Visit, Grooming, Enquiry
type Type string

const (
	TypeVisit    Type = "Visit"
	TypeGrooming Type = "Grooming"
	TypeEnquiry  Type = "Enquiry"
)

// Status del ciclo de vida de la reserva (lo mueve el admin).
// @Enum Pending, Confirmed, Completed, Cancelled
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

type Booking struct {
	ID int64

	Name  string
	Phone string // opcional

	Type Type
	// Visit: nombre de la mascota; Grooming: paquete; Enquiry: lista de productos.
	Detail string
	// Texto libre tal como lo elige el cliente ("Mañana, 10:00").
	Time string

	Status Status
}
