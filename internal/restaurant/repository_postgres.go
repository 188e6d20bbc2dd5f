package restaurant

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const restaurantColumns = `id, user_id, name, slug,
	COALESCE(address, ''), COALESCE(cuisine_type, ''),
	COALESCE(description, ''), COALESCE(cover_image, '')`

func scanRestaurant(row pgx.Row) (*Restaurant, error) {
	var r Restaurant
	err := row.Scan(
		&r.ID, &r.UserID, &r.Name, &r.Slug,
		&r.Address, &r.CuisineType, &r.Description, &r.CoverImage,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *PostgresRepository) Create(restaurant *Restaurant) error {
	err := p.db.QueryRow(
		context.Background(),
		`INSERT INTO restaurants
			(user_id, name, slug, address, cuisine_type, description, cover_image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		restaurant.UserID,
		restaurant.Name,
		restaurant.Slug,
		restaurant.Address,
		restaurant.CuisineType,
		restaurant.Description,
		restaurant.CoverImage,
	).Scan(&restaurant.ID)

	// The unique index on slug is the authoritative guard.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateSlug
	}
	return err
}

func (p *PostgresRepository) GetByID(id int) (*Restaurant, error) {
	return scanRestaurant(p.db.QueryRow(
		context.Background(),
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`,
		id,
	))
}

func (p *PostgresRepository) GetBySlug(slug string) (*Restaurant, error) {
	return scanRestaurant(p.db.QueryRow(
		context.Background(),
		`SELECT `+restaurantColumns+` FROM restaurants WHERE slug = $1`,
		slug,
	))
}

func (p *PostgresRepository) ListByOwner(userID int) ([]*Restaurant, error) {
	rows, err := p.db.Query(
		context.Background(),
		`SELECT `+restaurantColumns+` FROM restaurants
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owned []*Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		owned = append(owned, r)
	}
	return owned, rows.Err()
}

func (p *PostgresRepository) SetCoverImage(id int, url string) error {
	tag, err := p.db.Exec(
		context.Background(),
		`UPDATE restaurants SET cover_image = $1 WHERE id = $2`,
		url,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
