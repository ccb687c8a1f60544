package products

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Description string
	Price       int
	ImageURL    string
	Category    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Product, error) {
	p := Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Category:    Category(strings.TrimSpace(in.Category)),
	}
	if err := validate(p); err != nil {
		return Product{}, err
	}
	return s.repo.Create(ctx, p)
}

type UpdateInput struct {
	Name        *string
	Description *string
	Price       *int
	ImageURL    *string
	Category    *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Category != nil {
		p.Category = Category(strings.TrimSpace(*in.Category))
	}

	if err := validate(p); err != nil {
		return Product{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// La categoría es texto libre en el esquema; solo exigimos que venga.
func validate(p Product) error {
	if p.Name == "" || p.Description == "" || p.ImageURL == "" || p.Category == "" {
		return ErrInvalidInput
	}
	if p.Price < 0 {
		return ErrInvalidInput
	}
	return nil
}
