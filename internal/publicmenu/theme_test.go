package publicmenu

import "testing"

func TestThemeFor_ExactKey(t *testing.T) {
	if got := ThemeFor("italian"); got.Accent != "#D4380D" {
		t.Fatalf("expected italian theme, got accent %s", got.Accent)
	}
}

func TestThemeFor_SubstringBothDirections(t *testing.T) {
	// cuisine contains a configured key
	if got := ThemeFor("Modern Italian Trattoria"); got.Accent != "#D4380D" {
		t.Fatalf("expected italian theme for superset cuisine, got %s", got.Accent)
	}
	// configured key contains the cuisine
	if got := ThemeFor("med"); got.Accent != "#0369A1" {
		t.Fatalf("expected mediterranean theme for 'med', got %s", got.Accent)
	}
}

func TestThemeFor_NormalizesInput(t *testing.T) {
	if got := ThemeFor("  THAI  "); got.Accent != "#9333EA" {
		t.Fatalf("expected thai theme, got %s", got.Accent)
	}
}

func TestThemeFor_DefaultWhenNoMatch(t *testing.T) {
	for _, cuisine := range []string{"", "martian", "fusion-nova"} {
		if got := ThemeFor(cuisine); got != defaultTheme {
			t.Errorf("expected default theme for %q, got %+v", cuisine, got)
		}
	}
}

func TestThemeFor_Deterministic(t *testing.T) {
	// "japanese sushi" could match two keys; the ordered table makes
	// the earlier entry win, every time.
	first := ThemeFor("japanese sushi")
	for i := 0; i < 100; i++ {
		if got := ThemeFor("japanese sushi"); got != first {
			t.Fatal("theme lookup is not deterministic")
		}
	}
}
