package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vahis-pet-care-hub/internal/domain/pets"
)

const petColumns = `
	id,
	name, breed, type,
	age_weeks, gender,
	price_min, price_max,
	status, image_url, featured, description`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT`+petColumns+` FROM pets ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+petColumns+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (
			name, breed, type,
			age_weeks, gender,
			price_min, price_max,
			status, image_url, featured, description
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`,
		p.Name,
		p.Breed,
		string(p.Type),
		p.AgeWeeks,
		string(p.Gender),
		p.PriceMin,
		p.PriceMax,
		string(p.Status),
		p.ImageURL,
		p.Featured,
		p.Description,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			breed = $3,
			type = $4,
			age_weeks = $5,
			gender = $6,
			price_min = $7,
			price_max = $8,
			status = $9,
			image_url = $10,
			featured = $11,
			description = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		string(p.Type),
		p.AgeWeeks,
		string(p.Gender),
		p.PriceMin,
		p.PriceMax,
		string(p.Status),
		p.ImageURL,
		p.Featured,
		p.Description,
	)
	return affectedOrNotFound(res, err, pets.ErrNotFound)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return affectedOrNotFound(res, err, pets.ErrNotFound)
}

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var typ, gender, status string
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Breed,
		&typ,
		&p.AgeWeeks,
		&gender,
		&p.PriceMin,
		&p.PriceMax,
		&status,
		&p.ImageURL,
		&p.Featured,
		&p.Description,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Type = pets.Type(typ)
	p.Gender = pets.Gender(gender)
	p.Status = pets.Status(status)
	return p, nil
}

// affectedOrNotFound: UPDATE/DELETE que no tocó filas => notFound.
func affectedOrNotFound(res sql.Result, err error, notFound error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
