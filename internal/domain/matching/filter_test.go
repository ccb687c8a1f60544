package matching

import (
	"errors"
	"testing"

	"vahis-pet-care-hub/internal/domain/pets"

	"github.com/google/go-cmp/cmp"
)

func pet(id int64, typ pets.Type, status pets.Status) pets.Pet {
	return pets.Pet{
		ID:       id,
		Name:     "pet",
		Breed:    "mixed",
		Type:     typ,
		Status:   status,
		ImageURL: "https://img.example/x.jpg",
	}
}

func TestFilterCandidates_DogPreferenceKeepsOnlyDogs(t *testing.T) {
	all := []pets.Pet{
		pet(1, pets.TypeDog, pets.StatusAvailable),
		pet(2, pets.TypeCat, pets.StatusAvailable),
	}

	got, err := FilterCandidates(all, Preferences{PetType: "Dog"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []pets.Pet{all[0]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterCandidates_SpeciesIsCaseInsensitive(t *testing.T) {
	all := []pets.Pet{
		pet(1, pets.Type("dog"), pets.StatusAvailable),
		pet(2, pets.TypeCat, pets.StatusAvailable),
		pet(3, pets.Type("CAT"), pets.StatusAvailable),
	}

	got, err := FilterCandidates(all, Preferences{PetType: "cat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("expected cats 2 and 3, got %+v", got)
	}
}

func TestFilterCandidates_SpeciesIgnoresSurroundingSpaces(t *testing.T) {
	all := []pets.Pet{
		pet(1, pets.TypeDog, pets.StatusAvailable),
		pet(2, pets.TypeCat, pets.StatusAvailable),
	}

	got, err := FilterCandidates(all, Preferences{PetType: " Dog "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []pets.Pet{all[0]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
	if !IsSupportedSpecies(" Dog ") {
		t.Fatalf("quiz and filter must agree on padded species")
	}
}

func TestFilterCandidates_OnlySoldOfRequestedType(t *testing.T) {
	all := []pets.Pet{
		pet(1, pets.TypeDog, pets.StatusSold),
		pet(2, pets.TypeCat, pets.StatusAvailable),
	}

	_, err := FilterCandidates(all, Preferences{PetType: "Dog"})
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
	if err.Error() != "No available Dog found matching your criteria." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestFilterCandidates_NothingAvailable(t *testing.T) {
	all := []pets.Pet{
		pet(1, pets.TypeDog, pets.StatusSold),
		pet(2, pets.TypeCat, pets.StatusReserved),
	}

	_, err := FilterCandidates(all, Preferences{})
	var nc *NoCandidatesError
	if !errors.As(err, &nc) {
		t.Fatalf("expected *NoCandidatesError, got %v", err)
	}
	if nc.Error() != "No available pets found matching your criteria." {
		t.Fatalf("unexpected message: %q", nc.Error())
	}
}

func TestFilterCandidates_OtherOrMissingTypeDoesNotFilterSpecies(t *testing.T) {
	all := []pets.Pet{
		pet(1, pets.TypeDog, pets.StatusAvailable),
		pet(2, pets.TypeBird, pets.StatusAvailable),
		pet(3, pets.TypeCat, pets.StatusSold),
	}

	for _, pt := range []string{"", "Other", "Bird"} {
		got, err := FilterCandidates(all, Preferences{PetType: pt})
		if err != nil {
			t.Fatalf("petType %q: unexpected error: %v", pt, err)
		}
		if len(got) != 2 {
			t.Fatalf("petType %q: expected 2 available pets, got %d", pt, len(got))
		}
	}
}

func TestFilterCandidates_DoesNotMutateInput(t *testing.T) {
	all := []pets.Pet{
		pet(1, pets.TypeCat, pets.StatusAvailable),
		pet(2, pets.TypeDog, pets.StatusSold),
		pet(3, pets.TypeDog, pets.StatusAvailable),
	}
	before := append([]pets.Pet(nil), all...)

	if _, err := FilterCandidates(all, Preferences{PetType: "Dog"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(before, all); diff != "" {
		t.Fatalf("input was mutated (-before +after):\n%s", diff)
	}
}

func TestIsSupportedSpecies(t *testing.T) {
	cases := map[string]bool{
		"Dog":   true,
		" cat ": true,
		"DOG":   true,
		"Other": false,
		"":      false,
		"Bird":  false,
	}
	for in, want := range cases {
		if got := IsSupportedSpecies(in); got != want {
			t.Errorf("IsSupportedSpecies(%q) = %v, want %v", in, got, want)
		}
	}
}
