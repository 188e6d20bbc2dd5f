package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (p *PostgresRepository) CreateMenu(m *Menu) error {
	return p.db.QueryRow(
		context.Background(),
		`INSERT INTO menus (restaurant_id, name, description, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		m.RestaurantID, m.Name, m.Description, m.IsActive,
	).Scan(&m.ID)
}

func (p *PostgresRepository) GetMenu(id int) (*Menu, error) {
	var m Menu
	err := p.db.QueryRow(
		context.Background(),
		`SELECT id, restaurant_id, name, COALESCE(description, ''), is_active
		 FROM menus WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.IsActive)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (p *PostgresRepository) ListMenusByRestaurant(restaurantID int) ([]*Menu, error) {
	rows, err := p.db.Query(
		context.Background(),
		`SELECT id, restaurant_id, name, COALESCE(description, ''), is_active
		 FROM menus WHERE restaurant_id = $1 ORDER BY id`,
		restaurantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*Menu
	for rows.Next() {
		var m Menu
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.IsActive); err != nil {
			return nil, err
		}
		menus = append(menus, &m)
	}
	return menus, rows.Err()
}

const itemColumns = `id, menu_id, name, description, price, category,
	COALESCE(image_url, ''), is_available, is_bestseller, is_chefs_pick, is_todays_special`

func scanItem(row pgx.Row) (*MenuItem, error) {
	var it MenuItem
	err := row.Scan(
		&it.ID, &it.MenuID, &it.Name, &it.Description, &it.Price, &it.Category,
		&it.ImageURL, &it.IsAvailable, &it.IsBestseller, &it.IsChefsPick, &it.IsTodaysSpecial,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (p *PostgresRepository) CreateItem(item *MenuItem) error {
	return p.db.QueryRow(
		context.Background(),
		`INSERT INTO menu_items
			(menu_id, name, description, price, category, image_url,
			 is_available, is_bestseller, is_chefs_pick, is_todays_special)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		item.MenuID, item.Name, item.Description, item.Price, item.Category,
		item.ImageURL, item.IsAvailable, item.IsBestseller, item.IsChefsPick, item.IsTodaysSpecial,
	).Scan(&item.ID)
}

func (p *PostgresRepository) GetItem(id int) (*MenuItem, error) {
	return scanItem(p.db.QueryRow(
		context.Background(),
		`SELECT `+itemColumns+` FROM menu_items WHERE id = $1`,
		id,
	))
}

func (p *PostgresRepository) ListItemsByMenu(menuID int) ([]*MenuItem, error) {
	rows, err := p.db.Query(
		context.Background(),
		`SELECT `+itemColumns+` FROM menu_items WHERE menu_id = $1 ORDER BY id`,
		menuID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MenuItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (p *PostgresRepository) UpdateItem(id int, patch ItemPatch) (*MenuItem, error) {
	sets := []string{}
	args := []any{}
	arg := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.IsAvailable != nil {
		add("is_available", *patch.IsAvailable)
	}
	if patch.IsBestseller != nil {
		add("is_bestseller", *patch.IsBestseller)
	}
	if patch.IsChefsPick != nil {
		add("is_chefs_pick", *patch.IsChefsPick)
	}
	if patch.IsTodaysSpecial != nil {
		add("is_todays_special", *patch.IsTodaysSpecial)
	}

	if len(sets) == 0 {
		return p.GetItem(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE menu_items SET %s WHERE id = $%d RETURNING `+itemColumns,
		strings.Join(sets, ", "),
		arg,
	)

	return scanItem(p.db.QueryRow(context.Background(), query, args...))
}

func (p *PostgresRepository) DeleteItem(id int) error {
	_, err := p.db.Exec(
		context.Background(),
		`DELETE FROM menu_items WHERE id = $1`,
		id,
	)
	return err
}
