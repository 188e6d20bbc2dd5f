package restaurant

import (
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants map[int]*Restaurant
	bySlug      map[string]int
	nextID      int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: make(map[int]*Restaurant),
		bySlug:      make(map[string]int),
		nextID:      1,
	}
}

func (r *InMemoryRepository) Create(restaurant *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness re-checked under the write lock, so two concurrent
	// creations that both passed the service-level read still cannot
	// write the same slug twice.
	if _, exists := r.bySlug[restaurant.Slug]; exists {
		return ErrDuplicateSlug
	}

	restaurant.ID = r.nextID
	r.nextID++

	stored := *restaurant
	r.restaurants[restaurant.ID] = &stored
	r.bySlug[restaurant.Slug] = restaurant.ID
	return nil
}

func (r *InMemoryRepository) GetByID(id int) (*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *restaurant
	return &copied, nil
}

func (r *InMemoryRepository) GetBySlug(slug string) (*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r.restaurants[id]
	return &copied, nil
}

func (r *InMemoryRepository) ListByOwner(userID int) ([]*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []*Restaurant
	for _, restaurant := range r.restaurants {
		if restaurant.UserID == userID {
			copied := *restaurant
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	return owned, nil
}

func (r *InMemoryRepository) SetCoverImage(id int, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return ErrNotFound
	}
	restaurant.CoverImage = url
	return nil
}
