package menu

import (
	"context"
	"errors"

	"github.com/RiniPat/aaDinehub/internal/apperr"
	"github.com/RiniPat/aaDinehub/internal/llm"
)

type Service struct {
	repo Repository
	ai   llm.Client
}

func NewService(repo Repository, ai llm.Client) *Service {
	return &Service{repo: repo, ai: ai}
}

type CreateMenuInput struct {
	RestaurantID int
	Name         string
	Description  string
	IsActive     bool
}

func (s *Service) CreateMenu(in CreateMenuInput) (*Menu, error) {
	if in.RestaurantID <= 0 {
		return nil, apperr.Validation("restaurantId", "restaurantId must be a positive integer")
	}
	if in.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}

	m := &Menu{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		IsActive:     in.IsActive,
	}
	if err := s.repo.CreateMenu(m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMenu returns the menu with its items nested.
func (s *Service) GetMenu(id int) (*MenuWithItems, error) {
	m, err := s.repo.GetMenu(id)
	if err != nil {
		return nil, apperr.NotFound("Menu not found")
	}
	return s.withItems(m)
}

// ListForRestaurant returns every menu of the restaurant, each with
// its items nested.
func (s *Service) ListForRestaurant(restaurantID int) ([]*MenuWithItems, error) {
	menus, err := s.repo.ListMenusByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	result := make([]*MenuWithItems, 0, len(menus))
	for _, m := range menus {
		full, err := s.withItems(m)
		if err != nil {
			return nil, err
		}
		result = append(result, full)
	}
	return result, nil
}

func (s *Service) withItems(m *Menu) (*MenuWithItems, error) {
	items, err := s.repo.ListItemsByMenu(m.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*MenuItem{}
	}
	return &MenuWithItems{Menu: *m, Items: items}, nil
}

type CreateItemInput struct {
	MenuID          int
	Name            string
	Description     string
	Price           string
	Category        string
	ImageURL        string
	IsAvailable     bool
	IsBestseller    bool
	IsChefsPick     bool
	IsTodaysSpecial bool
}

func (s *Service) CreateItem(in CreateItemInput) (*MenuItem, error) {
	if in.MenuID <= 0 {
		return nil, apperr.Validation("menuId", "menuId must be a positive integer")
	}
	if in.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if in.Price == "" {
		return nil, apperr.Validation("price", "price is required")
	}

	// no item exists without a parent menu
	if _, err := s.repo.GetMenu(in.MenuID); err != nil {
		return nil, apperr.Validation("menuId", "menu does not exist")
	}

	item := &MenuItem{
		MenuID:          in.MenuID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		IsAvailable:     in.IsAvailable,
		IsBestseller:    in.IsBestseller,
		IsChefsPick:     in.IsChefsPick,
		IsTodaysSpecial: in.IsTodaysSpecial,
	}
	if err := s.repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem applies a partial patch; only supplied fields change.
func (s *Service) UpdateItem(id int, patch ItemPatch) (*MenuItem, error) {
	return s.repo.UpdateItem(id, patch)
}

// DeleteItem removes an item. Deleting a missing id is not an error.
func (s *Service) DeleteItem(id int) error {
	return s.repo.DeleteItem(id)
}

// GetItem looks up a single item.
func (s *Service) GetItem(id int) (*MenuItem, error) {
	item, err := s.repo.GetItem(id)
	if err != nil {
		return nil, apperr.NotFound("Menu item not found")
	}
	return item, nil
}

// GenerateDraft asks the AI client for a draft menu. Nothing is
// persisted here — the caller reviews the draft and creates the Menu
// and its items afterwards, so an aborted draft leaves no trace.
func (s *Service) GenerateDraft(ctx context.Context, restaurantID int, cuisine, tone string) (*llm.MenuDraft, error) {
	if restaurantID <= 0 {
		return nil, apperr.Validation("restaurantId", "restaurantId must be a positive integer")
	}
	if cuisine == "" {
		return nil, apperr.Validation("cuisine", "cuisine is required")
	}
	if s.ai == nil {
		return nil, apperr.Upstream("Failed to generate menu", errors.New("ai client not configured"))
	}

	raw, err := s.ai.GenerateMenu(ctx, cuisine, tone)
	if err != nil {
		return nil, apperr.Upstream("Failed to generate menu", err)
	}

	draft, err := llm.ParseDraft(raw)
	if err != nil {
		return nil, apperr.Upstream("Failed to generate menu", err)
	}
	return draft, nil
}
