package llm

// MenuDraft is an unsaved AI-generated menu. The caller decides
// whether to persist it; generating one has no side effects.
type MenuDraft struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Items       []DraftItem `json:"items"`
}

// DraftItem matches the menu-item creation shape, minus the parent
// menu id.
type DraftItem struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	Category        string `json:"category"`
	IsBestseller    bool   `json:"isBestseller"`
	IsChefsPick     bool   `json:"isChefsPick"`
	IsTodaysSpecial bool   `json:"isTodaysSpecial"`
}
