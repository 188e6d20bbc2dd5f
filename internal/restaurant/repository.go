package restaurant

import "errors"

var ErrDuplicateSlug = errors.New("slug already exists")
var ErrNotFound = errors.New("restaurant not found")

// Repository defines the data-access contract for restaurants. The
// slug acts as a secondary unique index enforced at write time.
type Repository interface {
	Create(r *Restaurant) error
	GetByID(id int) (*Restaurant, error)
	GetBySlug(slug string) (*Restaurant, error)
	ListByOwner(userID int) ([]*Restaurant, error)
	SetCoverImage(id int, url string) error
}
