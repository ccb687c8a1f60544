package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Breed       string
	Type        string
	AgeWeeks    int
	Gender      string
	PriceMin    int
	PriceMax    int
	Status      string
	ImageURL    string
	Featured    bool
	Description string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p := Pet{
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Type:        Type(strings.TrimSpace(in.Type)),
		AgeWeeks:    in.AgeWeeks,
		Gender:      Gender(strings.TrimSpace(in.Gender)),
		PriceMin:    in.PriceMin,
		PriceMax:    in.PriceMax,
		Status:      Status(strings.TrimSpace(in.Status)),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Featured:    in.Featured,
		Description: strings.TrimSpace(in.Description),
	}

	// Defaults del esquema original
	if p.Gender == "" {
		p.Gender = GenderMale
	}
	if p.Status == "" {
		p.Status = StatusAvailable
	}

	if err := validate(p); err != nil {
		return Pet{}, err
	}

	return s.repo.Create(ctx, p)
}

// UpdateInput: punteros para PATCH real (nil = no tocar).
type UpdateInput struct {
	Name        *string
	Breed       *string
	Type        *string
	AgeWeeks    *int
	Gender      *string
	PriceMin    *int
	PriceMax    *int
	Status      *string
	ImageURL    *string
	Featured    *bool
	Description *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Type != nil {
		p.Type = Type(strings.TrimSpace(*in.Type))
	}
	if in.AgeWeeks != nil {
		p.AgeWeeks = *in.AgeWeeks
	}
	if in.Gender != nil {
		p.Gender = Gender(strings.TrimSpace(*in.Gender))
	}
	if in.PriceMin != nil {
		p.PriceMin = *in.PriceMin
	}
	if in.PriceMax != nil {
		p.PriceMax = *in.PriceMax
	}
	if in.Status != nil {
		p.Status = Status(strings.TrimSpace(*in.Status))
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}

	if err := validate(p); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// List devuelve el catálogo completo. El matcher lo usa como fuente de candidatos,
// así que no filtra por estado aquí.
func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func validate(p Pet) error {
	if p.Name == "" || p.Breed == "" || p.Type == "" || p.ImageURL == "" {
		return ErrInvalidInput
	}
	if p.AgeWeeks < 0 || p.PriceMin < 0 || p.PriceMax < 0 {
		return ErrInvalidInput
	}
	if p.PriceMax != 0 && p.PriceMax < p.PriceMin {
		return ErrInvalidInput
	}
	switch p.Status {
	case StatusAvailable, StatusSold, StatusReserved:
	default:
		return ErrInvalidInput
	}
	return nil
}
