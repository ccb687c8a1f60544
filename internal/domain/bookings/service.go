package bookings

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("booking not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name   string
	Phone  string
	Type   string
	Detail string
	Time   string
}

// Create registra una reserva pública. El estado siempre arranca en Pending:
// el cliente no puede auto-confirmarse.
func (s *Service) Create(ctx context.Context, in CreateInput) (Booking, error) {
	b := Booking{
		Name:   strings.TrimSpace(in.Name),
		Phone:  strings.TrimSpace(in.Phone),
		Type:   Type(strings.TrimSpace(in.Type)),
		Detail: strings.TrimSpace(in.Detail),
		Time:   strings.TrimSpace(in.Time),
		Status: StatusPending,
	}
	if err := validate(b); err != nil {
		return Booking{}, err
	}
	return s.repo.Create(ctx, b)
}

type UpdateInput struct {
	Name   *string
	Phone  *string
	Type   *string
	Detail *string
	Time   *string
	Status *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Booking{}, err
	}

	if in.Name != nil {
		b.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		b.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Type != nil {
		b.Type = Type(strings.TrimSpace(*in.Type))
	}
	if in.Detail != nil {
		b.Detail = strings.TrimSpace(*in.Detail)
	}
	if in.Time != nil {
		b.Time = strings.TrimSpace(*in.Time)
	}
	if in.Status != nil {
		b.Status = Status(strings.TrimSpace(*in.Status))
	}

	if err := validate(b); err != nil {
		return Booking{}, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}

func validate(b Booking) error {
	// type queda como texto libre (el front manda variantes tipo "Enquiry_Product")
	if b.Name == "" || b.Type == "" || b.Detail == "" || b.Time == "" {
		return ErrInvalidInput
	}
	switch b.Status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
	default:
		return ErrInvalidInput
	}
	return nil
}
