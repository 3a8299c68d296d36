package extract

// DocType tags the shape of an extracted document payload.
type DocType string

const (
	DocTypeSales    DocType = "sales"
	DocTypeParSheet DocType = "par_sheet"
	DocTypeRecipe   DocType = "recipe"
	DocTypeMenuItem DocType = "menu_item"
	DocTypeUnknown  DocType = "unknown"
)

// SalesRow is one line of an extracted sales report.
type SalesRow struct {
	Item     string  `json:"item"`
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
	Gross    float64 `json:"gross"`
}

// ParRow is one line of an extracted par sheet.
type ParRow struct {
	Item      string  `json:"item"`
	DayOfWeek int     `json:"day_of_week"`
	Quantity  float64 `json:"quantity"`
}

// IngredientRow is one ingredient line of an extracted recipe card.
type IngredientRow struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeCard is an extracted recipe document.
type RecipeCard struct {
	Name        string          `json:"name"`
	Ingredients []IngredientRow `json:"ingredients"`
	Method      string          `json:"method"`
	Yield       string          `json:"yield"`
}

// MenuItemRow is one line of an extracted menu.
type MenuItemRow struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Document is the narrowed, validated oracle output. Exactly one of the
// type-specific fields is populated, matching Type.
type Document struct {
	Type      DocType       `json:"type"`
	Sales     []SalesRow    `json:"sales,omitempty"`
	ParSheet  []ParRow      `json:"par_sheet,omitempty"`
	Recipe    *RecipeCard   `json:"recipe,omitempty"`
	MenuItems []MenuItemRow `json:"menu_items,omitempty"`
}

// RawNames returns the item-name strings the matching engine consumes.
func (d *Document) RawNames() []string {
	var names []string
	switch d.Type {
	case DocTypeSales:
		for _, row := range d.Sales {
			names = append(names, row.Item)
		}
	case DocTypeParSheet:
		for _, row := range d.ParSheet {
			names = append(names, row.Item)
		}
	case DocTypeRecipe:
		if d.Recipe != nil {
			names = append(names, d.Recipe.Name)
		}
	case DocTypeMenuItem:
		for _, row := range d.MenuItems {
			names = append(names, row.Name)
		}
	}
	return names
}
