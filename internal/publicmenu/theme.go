package publicmenu

import "strings"

// Theme is the display styling for a public menu page, chosen from the
// restaurant's free-text cuisine type.
type Theme struct {
	Accent           string `json:"accent"`
	Background       string `json:"background"`
	HeaderBackground string `json:"headerBackground"`
	Badge            string `json:"badge"`
	Pattern          string `json:"pattern"`
}

type themeEntry struct {
	key   string
	theme Theme
}

// The table is ordered data, not code: matching walks it top to bottom
// and the first hit wins, which keeps the lookup deterministic.
var cuisineThemes = []themeEntry{
	{"italian", Theme{"#D4380D", "bg-amber-50", "from-red-900 to-amber-900", "bg-red-100 text-red-700", "🍝"}},
	{"indian", Theme{"#D97706", "bg-orange-50", "from-orange-900 to-red-900", "bg-orange-100 text-orange-700", "🍛"}},
	{"chinese", Theme{"#DC2626", "bg-red-50", "from-red-900 to-rose-950", "bg-red-100 text-red-700", "🥢"}},
	{"japanese", Theme{"#0F766E", "bg-slate-50", "from-slate-900 to-slate-800", "bg-teal-100 text-teal-700", "🍣"}},
	{"sushi", Theme{"#0F766E", "bg-slate-50", "from-slate-900 to-slate-800", "bg-teal-100 text-teal-700", "🍣"}},
	{"mexican", Theme{"#CA8A04", "bg-yellow-50", "from-green-900 to-red-900", "bg-green-100 text-green-700", "🌮"}},
	{"thai", Theme{"#9333EA", "bg-purple-50", "from-purple-900 to-pink-900", "bg-purple-100 text-purple-700", "🍜"}},
	{"american", Theme{"#2563EB", "bg-blue-50", "from-blue-900 to-slate-900", "bg-blue-100 text-blue-700", "🍔"}},
	{"burger", Theme{"#2563EB", "bg-blue-50", "from-blue-900 to-slate-900", "bg-blue-100 text-blue-700", "🍔"}},
	{"mediterranean", Theme{"#0369A1", "bg-cyan-50", "from-cyan-900 to-blue-900", "bg-cyan-100 text-cyan-700", "🫒"}},
	{"french", Theme{"#7C3AED", "bg-violet-50", "from-violet-950 to-slate-900", "bg-violet-100 text-violet-700", "🥐"}},
	{"korean", Theme{"#E11D48", "bg-rose-50", "from-rose-900 to-slate-900", "bg-rose-100 text-rose-700", "🍖"}},
}

var defaultTheme = Theme{"#7C3AED", "bg-gray-50", "from-gray-900 to-gray-800", "bg-primary/10 text-primary", "🍽️"}

// ThemeFor picks a theme for a cuisine string. The cuisine is
// lowercased and trimmed, then matched by substring in either
// direction ("modern italian" hits "italian"; "med" hits
// "mediterranean"). No match yields the neutral default.
func ThemeFor(cuisine string) Theme {
	key := strings.TrimSpace(strings.ToLower(cuisine))
	if key == "" {
		return defaultTheme
	}
	for _, entry := range cuisineThemes {
		if strings.Contains(key, entry.key) || strings.Contains(entry.key, key) {
			return entry.theme
		}
	}
	return defaultTheme
}
