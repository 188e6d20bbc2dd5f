package publicmenu

import (
	"github.com/RiniPat/aaDinehub/internal/menu"
	"github.com/RiniPat/aaDinehub/internal/restaurant"
)

// MenuView is one menu with its items grouped for display.
type MenuView struct {
	menu.Menu
	Categories []menu.CategoryGroup `json:"categories"`
}

// View is everything the public menu page needs: the restaurant, all
// of its menus (the client decides which tab to show first; the
// default is DefaultMenuID), the derived theme, and the table label
// echoed from the QR code.
type View struct {
	Restaurant    *restaurant.Restaurant `json:"restaurant"`
	Menus         []MenuView             `json:"menus"`
	DefaultMenuID int                    `json:"defaultMenuId,omitempty"`
	Theme         Theme                  `json:"theme"`
	Table         string                 `json:"table,omitempty"`
}

type Resolver struct {
	restaurants *restaurant.Service
	menus       *menu.Service
}

func NewResolver(restaurants *restaurant.Service, menus *menu.Service) *Resolver {
	return &Resolver{restaurants: restaurants, menus: menus}
}

// Resolve maps a public slug (plus an optional, purely cosmetic table
// label) to the themed read-only view. An unknown slug is terminal:
// the not-found error propagates and no partial view is produced.
func (r *Resolver) Resolve(slug, table string) (*View, error) {
	rest, err := r.restaurants.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	menus, err := r.menus.ListForRestaurant(rest.ID)
	if err != nil {
		return nil, err
	}

	views := make([]MenuView, 0, len(menus))
	plain := make([]*menu.Menu, 0, len(menus))
	for _, m := range menus {
		views = append(views, MenuView{
			Menu:       m.Menu,
			Categories: menu.GroupByCategory(m.Items),
		})
		mm := m.Menu
		plain = append(plain, &mm)
	}

	view := &View{
		Restaurant: rest,
		Menus:      views,
		Theme:      ThemeFor(rest.CuisineType),
		Table:      table,
	}
	if def := menu.DefaultMenu(plain); def != nil {
		view.DefaultMenuID = def.ID
	}
	return view, nil
}
