package catalog

// Product is a single catalog entry.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// CategoryAll matches every product when used as a filter.
const CategoryAll = "All"
