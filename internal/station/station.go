package station

import "strings"

// Kitchen stations a prep item can be assigned to.
const (
	Grill = "grill"
	Saute = "saute"
	Fry   = "fry"
	Salad = "salad"
	Line  = "line"
)

// Infer returns the kitchen station for the given item name.
// It performs case-insensitive matching: exact match first, then substring
// match. Falls back to "line" if no keyword matches.
func Infer(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return Line
	}

	if s, ok := exactMatch[name]; ok {
		return s
	}

	// Ordered so specific keywords win over generic ones.
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.station
		}
	}

	return Line
}

var exactMatch = map[string]string{
	"ribeye":        Grill,
	"ribeye steak":  Grill,
	"sirloin":       Grill,
	"burger":        Grill,
	"cheeseburger":  Grill,
	"pork chop":     Grill,
	"salmon":        Saute,
	"scampi":        Saute,
	"alfredo":       Saute,
	"french fries":  Fry,
	"onion rings":   Fry,
	"calamari":      Fry,
	"caesar salad":  Salad,
	"house salad":   Salad,
	"cobb salad":    Salad,
	"half caesar":   Salad,
	"wedge salad":   Salad,
	"club sandwich": Line,
}

var substringMatches = []struct {
	keyword string
	station string
}{
	// grill
	{"steak", Grill},
	{"grilled", Grill},
	{"burger", Grill},
	{"ribs", Grill},
	{"chop", Grill},
	{"brisket", Grill},
	// saute
	{"sauteed", Saute},
	{"pasta", Saute},
	{"risotto", Saute},
	{"scallop", Saute},
	{"shrimp", Saute},
	{"piccata", Saute},
	{"marsala", Saute},
	// fry
	{"fried", Fry},
	{"fries", Fry},
	{"tempura", Fry},
	{"wings", Fry},
	{"tenders", Fry},
	{"calamari", Fry},
	// salad
	{"salad", Salad},
	{"caesar", Salad},
	{"slaw", Salad},
	{"crudite", Salad},
	// line
	{"sandwich", Line},
	{"wrap", Line},
	{"taco", Line},
	{"soup", Line},
}
