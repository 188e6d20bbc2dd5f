package menu

import (
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu         sync.RWMutex
	menus      map[int]*Menu
	items      map[int]*MenuItem
	nextMenuID int
	nextItemID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		menus:      make(map[int]*Menu),
		items:      make(map[int]*MenuItem),
		nextMenuID: 1,
		nextItemID: 1,
	}
}

func (r *InMemoryRepository) CreateMenu(m *Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextMenuID
	r.nextMenuID++

	stored := *m
	r.menus[m.ID] = &stored
	return nil
}

func (r *InMemoryRepository) GetMenu(id int) (*Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.menus[id]
	if !ok {
		return nil, ErrMenuNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *InMemoryRepository) ListMenusByRestaurant(restaurantID int) ([]*Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var menus []*Menu
	for _, m := range r.menus {
		if m.RestaurantID == restaurantID {
			copied := *m
			menus = append(menus, &copied)
		}
	}
	sort.Slice(menus, func(i, j int) bool { return menus[i].ID < menus[j].ID })
	return menus, nil
}

func (r *InMemoryRepository) CreateItem(item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextItemID
	r.nextItemID++

	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *InMemoryRepository) GetItem(id int) (*MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

// ListItemsByMenu returns items in insertion order (ascending id).
func (r *InMemoryRepository) ListItemsByMenu(menuID int) ([]*MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*MenuItem
	for _, item := range r.items {
		if item.MenuID == menuID {
			copied := *item
			items = append(items, &copied)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *InMemoryRepository) UpdateItem(id int, patch ItemPatch) (*MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
	if patch.IsAvailable != nil {
		item.IsAvailable = *patch.IsAvailable
	}
	if patch.IsBestseller != nil {
		item.IsBestseller = *patch.IsBestseller
	}
	if patch.IsChefsPick != nil {
		item.IsChefsPick = *patch.IsChefsPick
	}
	if patch.IsTodaysSpecial != nil {
		item.IsTodaysSpecial = *patch.IsTodaysSpecial
	}

	copied := *item
	return &copied, nil
}

func (r *InMemoryRepository) DeleteItem(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
