package types

import "fmt"

// Product categories. The set is closed but extensible: the model stores
// whatever category it is handed, and display falls back to the raw value
// for slugs outside this set.
const (
	CategoryElectronics = "eletronicos"
	CategoryClothing    = "roupas"
	CategoryBooks       = "livros"
	CategoryHomeDecor   = "decoracao"
	CategoryOther       = "outros"
)

// categoryLabels maps category slugs to their display labels.
var categoryLabels = map[string]string{
	CategoryElectronics: "Eletrônicos",
	CategoryClothing:    "Roupas",
	CategoryBooks:       "Livros",
	CategoryHomeDecor:   "Decoração",
	CategoryOther:       "Outros",
}

// Categories returns the known category slugs in display order.
func Categories() []string {
	return []string{
		CategoryElectronics,
		CategoryClothing,
		CategoryBooks,
		CategoryHomeDecor,
		CategoryOther,
	}
}

// CategoryLabel returns the display label for a category slug.
// Unrecognized slugs display as themselves.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// CurrencyPrefix is the currency symbol shown before prices.
const CurrencyPrefix = "R$"

// CreatedAtLayout is the human-readable creation timestamp format.
const CreatedAtLayout = "02/01/2006 15:04:05"

// Product represents one catalog record.
type Product struct {
	ID        int64   `json:"id"`        // Unix-millisecond of creation, unique, monotonically increasing.
	Name      string  `json:"name"`      // Trimmed, non-empty on the validated path.
	Price     float64 `json:"price"`     // Positive on the validated path.
	Category  string  `json:"category"`  // One of the Category constants, or a raw extension value.
	Stock     int     `json:"stock"`     // Non-negative on the validated path.
	CreatedAt string  `json:"createdAt"` // Human-readable, immutable after creation.
}

// FormatPrice renders a price with the currency prefix and two decimals,
// e.g. "R$ 9.99".
func FormatPrice(price float64) string {
	return fmt.Sprintf("%s %.2f", CurrencyPrefix, price)
}

// ProductInput carries the raw, unparsed form values for an add operation.
// Parsing happens in the model; validation happens in the view.
type ProductInput struct {
	Name     string
	Price    string
	Category string
	Stock    string
}

// Stats summarizes the full, unfiltered collection.
type Stats struct {
	Total      int    `json:"total"`      // Number of products.
	TotalValue string `json:"totalValue"` // Sum of price×stock, two decimal places.
}
