package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(user *User) error {
	err := r.db.QueryRow(
		context.Background(),
		`INSERT INTO users (username, password)
		 VALUES ($1, $2)
		 RETURNING id`,
		user.Username,
		user.Password,
	).Scan(&user.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateUsername
	}
	return err
}

func (r *PostgresUserRepository) GetByID(id int) (*User, error) {
	var user User
	err := r.db.QueryRow(
		context.Background(),
		`SELECT id, username, password FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.Password)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetByUsername(username string) (*User, error) {
	var user User
	err := r.db.QueryRow(
		context.Background(),
		`SELECT id, username, password FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.Password)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
