package bookings

import "context"

type Repository interface {
	List(ctx context.Context) ([]Booking, error)
	GetByID(ctx context.Context, id int64) (Booking, error)
	Create(ctx context.Context, b Booking) (Booking, error)
	Update(ctx context.Context, b Booking) error
	Delete(ctx context.Context, id int64) error
}
