package menu

import "errors"

var ErrMenuNotFound = errors.New("menu not found")
var ErrItemNotFound = errors.New("menu item not found")

// Repository defines all database operations for menus and their
// items. DeleteItem is idempotent; UpdateItem merges only the patch's
// non-nil fields.
type Repository interface {
	CreateMenu(m *Menu) error
	GetMenu(id int) (*Menu, error)
	ListMenusByRestaurant(restaurantID int) ([]*Menu, error)

	CreateItem(item *MenuItem) error
	GetItem(id int) (*MenuItem, error)
	ListItemsByMenu(menuID int) ([]*MenuItem, error)
	UpdateItem(id int, patch ItemPatch) (*MenuItem, error)
	DeleteItem(id int) error
}
