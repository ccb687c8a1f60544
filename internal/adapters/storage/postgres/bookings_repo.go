package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vahis-pet-care-hub/internal/domain/bookings"
)

const bookingColumns = ` id, name, phone, type, detail, time, status`

type BookingsRepo struct {
	db *sql.DB
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

func (r *BookingsRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT`+bookingColumns+` FROM bookings ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bookings.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookingsRepo) GetByID(ctx context.Context, id int64) (bookings.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+bookingColumns+` FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bookings.Booking{}, bookings.ErrNotFound
		}
		return bookings.Booking{}, err
	}
	return b, nil
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) (bookings.Booking, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bookings (name, phone, type, detail, time, status)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		b.Name,
		toNullString(b.Phone),
		string(b.Type),
		b.Detail,
		b.Time,
		string(b.Status),
	).Scan(&b.ID)
	if err != nil {
		return bookings.Booking{}, err
	}
	return b, nil
}

func (r *BookingsRepo) Update(ctx context.Context, b bookings.Booking) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET
			name = $2,
			phone = $3,
			type = $4,
			detail = $5,
			time = $6,
			status = $7
		WHERE id = $1
	`,
		b.ID,
		b.Name,
		toNullString(b.Phone),
		string(b.Type),
		b.Detail,
		b.Time,
		string(b.Status),
	)
	return affectedOrNotFound(res, err, bookings.ErrNotFound)
}

func (r *BookingsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return affectedOrNotFound(res, err, bookings.ErrNotFound)
}

func scanBooking(s scanner) (bookings.Booking, error) {
	var b bookings.Booking
	var phone sql.NullString
	var typ, status string
	if err := s.Scan(
		&b.ID,
		&b.Name,
		&phone,
		&typ,
		&b.Detail,
		&b.Time,
		&status,
	); err != nil {
		return bookings.Booking{}, err
	}
	b.Phone = phone.String
	b.Type = bookings.Type(typ)
	b.Status = bookings.Status(status)
	return b, nil
}

// phone es opcional: vacío se guarda como NULL.
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
