package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vahis-pet-care-hub/internal/domain/accounts"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation.
const uniqueViolation = "23505"

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u accounts.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1,$2,$3)
	`, u.ID, u.Username, u.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return accounts.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (accounts.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash
		FROM users
		WHERE lower(username) = lower($1)
	`, username)
	return scanUser(row)
}

func scanUser(s scanner) (accounts.User, error) {
	var u accounts.User
	if err := s.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.User{}, accounts.ErrNotFound
		}
		return accounts.User{}, err
	}
	return u, nil
}
