package pets

import "context"

type Repository interface {
	// List devuelve todo el catálogo ordenado por id.
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	// Create asigna el ID (serial) y devuelve el registro persistido.
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error
}
