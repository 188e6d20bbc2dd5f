package menu

// Menu groups items for one restaurant. A menu with zero items is
// valid.
type Menu struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurantId"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"isActive"`
}

// MenuItem belongs to exactly one menu. Price is a display string, not
// a number — the stored formatting (currency symbol, exact cents) is
// authoritative. The three promotional flags are independent and may
// co-occur.
type MenuItem struct {
	ID              int    `json:"id"`
	MenuID          int    `json:"menuId"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	Category        string `json:"category"`
	ImageURL        string `json:"imageUrl,omitempty"`
	IsAvailable     bool   `json:"isAvailable"`
	IsBestseller    bool   `json:"isBestseller"`
	IsChefsPick     bool   `json:"isChefsPick"`
	IsTodaysSpecial bool   `json:"isTodaysSpecial"`
}

// MenuWithItems is the menu as served to clients, items nested.
type MenuWithItems struct {
	Menu
	Items []*MenuItem `json:"items"`
}

// ItemPatch carries a partial update; nil fields are left untouched.
type ItemPatch struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Price           *string `json:"price"`
	Category        *string `json:"category"`
	ImageURL        *string `json:"imageUrl"`
	IsAvailable     *bool   `json:"isAvailable"`
	IsBestseller    *bool   `json:"isBestseller"`
	IsChefsPick     *bool   `json:"isChefsPick"`
	IsTodaysSpecial *bool   `json:"isTodaysSpecial"`
}
