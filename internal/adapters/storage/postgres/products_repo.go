package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vahis-pet-care-hub/internal/domain/products"
)

const productColumns = ` id, name, description, price, image_url, category`

type ProductsRepo struct {
	db *sql.DB
}

func NewProductsRepo(db *sql.DB) *ProductsRepo {
	return &ProductsRepo{db: db}
}

func (r *ProductsRepo) List(ctx context.Context) ([]products.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT`+productColumns+` FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]products.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductsRepo) GetByID(ctx context.Context, id int64) (products.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return products.Product{}, products.ErrNotFound
		}
		return products.Product{}, err
	}
	return p, nil
}

func (r *ProductsRepo) Create(ctx context.Context, p products.Product) (products.Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, image_url, category)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		p.Name,
		p.Description,
		p.Price,
		p.ImageURL,
		string(p.Category),
	).Scan(&p.ID)
	if err != nil {
		return products.Product{}, err
	}
	return p, nil
}

func (r *ProductsRepo) Update(ctx context.Context, p products.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET
			name = $2,
			description = $3,
			price = $4,
			image_url = $5,
			category = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Description,
		p.Price,
		p.ImageURL,
		string(p.Category),
	)
	return affectedOrNotFound(res, err, products.ErrNotFound)
}

func (r *ProductsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return affectedOrNotFound(res, err, products.ErrNotFound)
}

func scanProduct(s scanner) (products.Product, error) {
	var p products.Product
	var category string
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&category,
	); err != nil {
		return products.Product{}, err
	}
	p.Category = products.Category(category)
	return p, nil
}
