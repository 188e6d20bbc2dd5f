package menu

import "testing"

func item(id int, name, category string) *MenuItem {
	return &MenuItem{ID: id, Name: name, Category: category}
}

func TestGroupByCategory_IsAPartition(t *testing.T) {
	items := []*MenuItem{
		item(1, "Soup", "Starters"),
		item(2, "Steak", "Mains"),
		item(3, "Salad", "Starters"),
		item(4, "Mystery", ""),
		item(5, "Cake", "Desserts"),
	}

	groups := GroupByCategory(items)

	total := 0
	seen := make(map[int]bool)
	for _, g := range groups {
		for _, it := range g.Items {
			if seen[it.ID] {
				t.Fatalf("item %d appears in more than one bucket", it.ID)
			}
			seen[it.ID] = true
			total++
		}
	}
	if total != len(items) {
		t.Fatalf("expected %d items across buckets, got %d", len(items), total)
	}
}

func TestGroupByCategory_FirstSeenOrder(t *testing.T) {
	items := []*MenuItem{
		item(1, "Soup", "Starters"),
		item(2, "Steak", "Mains"),
		item(3, "Salad", "Starters"),
	}

	groups := GroupByCategory(items)

	if len(groups) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(groups))
	}
	if groups[0].Category != "Starters" || groups[1].Category != "Mains" {
		t.Fatalf("buckets out of first-seen order: %s, %s", groups[0].Category, groups[1].Category)
	}
	if groups[0].Items[0].Name != "Soup" || groups[0].Items[1].Name != "Salad" {
		t.Fatal("item order within bucket not preserved")
	}
}

func TestGroupByCategory_UncategorizedBucket(t *testing.T) {
	groups := GroupByCategory([]*MenuItem{item(1, "Mystery", "")})

	if len(groups) != 1 || groups[0].Category != UncategorizedLabel {
		t.Fatalf("expected %q bucket, got %+v", UncategorizedLabel, groups)
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	if groups := GroupByCategory(nil); len(groups) != 0 {
		t.Fatalf("expected no buckets, got %d", len(groups))
	}
}

func TestDisplayPrice(t *testing.T) {
	cases := map[string]string{
		"12.50":  "$12.50",
		"$12.50": "$12.50",
		"8":      "$8",
		"$8.0":   "$8.0",
	}
	for in, want := range cases {
		if got := DisplayPrice(in); got != want {
			t.Errorf("DisplayPrice(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePrice_IsTotal(t *testing.T) {
	cases := map[string]float64{
		"$12.50":    12.50,
		"free":      0,
		"10":        10.0,
		"":          0,
		"$":         0,
		"USD 7.25":  7.25,
		"1.2.3":     1.2,
		"12,000.50": 12000.50,
	}
	for in, want := range cases {
		if got := ParsePrice(in); got != want {
			t.Errorf("ParsePrice(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDefaultMenu_LowestID(t *testing.T) {
	menus := []*Menu{{ID: 5}, {ID: 2}, {ID: 9}}
	if got := DefaultMenu(menus); got.ID != 2 {
		t.Fatalf("expected menu 2, got %d", got.ID)
	}
	if got := DefaultMenu(nil); got != nil {
		t.Fatal("expected nil for no menus")
	}
}
