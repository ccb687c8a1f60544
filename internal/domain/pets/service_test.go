package pets

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for i := int64(1); i <= r.nextID; i++ {
		if p, ok := r.byID[i]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AppliesDefaults(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		Name:     "  Barney ",
		Breed:    "Beagle",
		Type:     "Dog",
		ImageURL: "https://img/barney.png",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected serial id 1, got %d", p.ID)
	}
	if p.Name != "Barney" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.Status != StatusAvailable || p.Gender != GenderMale {
		t.Fatalf("expected defaults Available/Male, got %s/%s", p.Status, p.Gender)
	}
}

func TestService_Create_RejectsMissingFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []CreateInput{
		{Breed: "Beagle", Type: "Dog", ImageURL: "x"},
		{Name: "Barney", Type: "Dog", ImageURL: "x"},
		{Name: "Barney", Breed: "Beagle", ImageURL: "x"},
		{Name: "Barney", Breed: "Beagle", Type: "Dog"},
		{Name: "Barney", Breed: "Beagle", Type: "Dog", ImageURL: "x", Status: "Lost"},
		{Name: "Barney", Breed: "Beagle", Type: "Dog", ImageURL: "x", PriceMin: 300, PriceMax: 100},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Update_PatchesOnlyGivenFields(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{
		Name: "Coco", Breed: "Poodle", Type: "Dog", ImageURL: "x",
		PriceMin: 28000, PriceMax: 32000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sold := string(StatusSold)
	updated, err := svc.Update(ctx, p.ID, UpdateInput{Status: &sold})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != StatusSold {
		t.Fatalf("expected status Sold, got %s", updated.Status)
	}
	if updated.Name != "Coco" || updated.PriceMax != 32000 {
		t.Fatalf("expected untouched fields to survive, got %#v", updated)
	}
}

func TestService_Update_UnknownPet(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "Ghost"
	if _, err := svc.Update(context.Background(), 99, UpdateInput{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
