package menu

import (
	"strconv"
	"strings"
)

// UncategorizedLabel is the bucket for items with no category.
const UncategorizedLabel = "Uncategorized"

// CategoryGroup is one display bucket of the public menu.
type CategoryGroup struct {
	Category string      `json:"category"`
	Items    []*MenuItem `json:"items"`
}

// GroupByCategory partitions items into category buckets. Buckets
// appear in first-seen order; items keep their original order within a
// bucket. Every item lands in exactly one bucket.
func GroupByCategory(items []*MenuItem) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)

	for _, item := range items {
		category := item.Category
		if category == "" {
			category = UncategorizedLabel
		}

		i, seen := index[category]
		if !seen {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// DisplayPrice prepends "$" unless the stored string already leads
// with one. No numeric reformatting — the stored string is
// authoritative.
func DisplayPrice(price string) string {
	if strings.HasPrefix(price, "$") {
		return price
	}
	return "$" + price
}

// ParsePrice extracts a numeric value from a price string for cart
// arithmetic. Every character that is not a digit or decimal point is
// stripped; a second decimal point ends the number. The parse is
// total: garbage yields 0.
func ParsePrice(price string) float64 {
	var b strings.Builder
	sawDot := false

scan:
	for _, r := range price {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if sawDot {
				break scan
			}
			sawDot = true
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(b.String(), "."), 64)
	if err != nil {
		return 0
	}
	return value
}

// DefaultMenu picks the menu displayed first on the public page: the
// lowest-id one.
func DefaultMenu(menus []*Menu) *Menu {
	var def *Menu
	for _, m := range menus {
		if def == nil || m.ID < def.ID {
			def = m
		}
	}
	return def
}
