package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"vahis-pet-care-hub/internal/domain/accounts"
	"vahis-pet-care-hub/internal/domain/bookings"
	"vahis-pet-care-hub/internal/domain/pets"
	"vahis-pet-care-hub/internal/domain/products"
)

func TestPetRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	a, _ := repo.Create(ctx, pets.Pet{Name: "A"})
	b, _ := repo.Create(ctx, pets.Pet{Name: "B"})
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected sequential ids, got %d %d", a.ID, b.ID)
	}

	b.Name = "B2"
	if err := repo.Update(ctx, b); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetByID(ctx, b.ID)
	if err != nil || got.Name != "B2" {
		t.Fatalf("get after update: %+v %v", got, err)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, a.ID); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, a.ID); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("double delete: expected pets.ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, pets.Pet{ID: 99}); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("update unknown: expected pets.ErrNotFound, got %v", err)
	}

	// Los ids no se reutilizan.
	c, _ := repo.Create(ctx, pets.Pet{Name: "C"})
	if c.ID != 3 {
		t.Fatalf("expected id 3, got %d", c.ID)
	}

	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0].ID != 2 || list[1].ID != 3 {
		t.Fatalf("unexpected list order: %+v", list)
	}
}

func TestPetRepo_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, pets.Pet{Name: "x"})
		}()
	}
	wg.Wait()

	list, _ := repo.List(ctx)
	if len(list) != 50 || list[49].ID != 50 {
		t.Fatalf("expected 50 pets with ids 1..50, got %d", len(list))
	}
}

func TestProductAndBookingRepos_NotFound(t *testing.T) {
	ctx := context.Background()

	if _, err := NewProductRepo().GetByID(ctx, 1); !errors.Is(err, products.ErrNotFound) {
		t.Fatalf("expected products.ErrNotFound, got %v", err)
	}
	if err := NewBookingRepo().Delete(ctx, 1); !errors.Is(err, bookings.ErrNotFound) {
		t.Fatalf("expected bookings.ErrNotFound, got %v", err)
	}
}

func TestUserRepo_UsernameIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	if err := repo.Create(ctx, accounts.User{ID: "u1", Username: "Admin"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, accounts.User{ID: "u2", Username: "admin"}); !errors.Is(err, accounts.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	u, err := repo.GetByUsername(ctx, "ADMIN")
	if err != nil || u.ID != "u1" {
		t.Fatalf("lookup by username: %+v %v", u, err)
	}
	if _, err := repo.GetByID(ctx, "nope"); !errors.Is(err, accounts.ErrNotFound) {
		t.Fatalf("expected accounts.ErrNotFound, got %v", err)
	}
}

func TestSessionRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo()

	if err := repo.Create(ctx, accounts.Session{Token: "t", UserID: "u1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	s, err := repo.Get(ctx, "t")
	if err != nil || s.UserID != "u1" {
		t.Fatalf("get: %+v %v", s, err)
	}
	if err := repo.Delete(ctx, "t"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "t"); !errors.Is(err, accounts.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	petSvc := pets.NewService(NewPetRepo())
	productSvc := products.NewService(NewProductRepo())

	nPets, nProducts, err := SeedCatalog(ctx, petSvc, productSvc)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if nPets != 6 || nProducts != 4 {
		t.Fatalf("expected 6 pets and 4 products, got %d/%d", nPets, nProducts)
	}

	all, _ := petSvc.List(ctx)
	var dogs, cats, reserved int
	for _, p := range all {
		switch {
		case p.Status == pets.StatusReserved:
			reserved++
		case p.Type == pets.TypeDog:
			dogs++
		case p.Type == pets.TypeCat:
			cats++
		}
	}
	if dogs != 4 || cats != 1 || reserved != 1 {
		t.Fatalf("unexpected catalog mix dogs=%d cats=%d reserved=%d", dogs, cats, reserved)
	}

	// Segunda vez no duplica.
	nPets, _, err = SeedCatalog(ctx, petSvc, productSvc)
	if err != nil || nPets != 0 {
		t.Fatalf("second seed must be a no-op, got %d %v", nPets, err)
	}
}
