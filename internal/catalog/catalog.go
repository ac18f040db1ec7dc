package catalog

import "strings"

var products = []Product{
	{
		ID:          "socket-head-bolt",
		Name:        "Socket Head Bolt",
		Category:    "Bolts",
		Description: "High tensile steel bolt used for precision clamping",
		ImageURL:    "https://images.unsplash.com/photo-1597484661643-2f5fef640dd1?auto=format&fit=crop&q=80",
	},
	{
		ID:          "hex-flange-nut",
		Name:        "Hex Flange Nut",
		Category:    "Nuts",
		Description: "Self-locking flange nut with serrated bearing surface",
	},
	{
		ID:          "thread-rolling",
		Name:        "Thread Rolling",
		Category:    "Tools",
		Description: "Precision ground dies for thread rolling applications",
	},
	{
		ID:          "machined-shaft",
		Name:        "Machined Shaft",
		Category:    "Custom",
		Description: "Custom machined shafts for industrial applications",
		ImageURL:    "https://images.unsplash.com/photo-1589792923962-537704632910?auto=format&fit=crop&q=80",
	},
}

var categories = []string{CategoryAll, "Bolts", "Nuts", "Tools", "Custom"}

// All returns every product in catalog order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Categories returns the filter categories, CategoryAll first.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Filter returns products matching both the category and the search
// term. CategoryAll (or an empty category) matches every category.
// The term is matched case-insensitively as a substring of the name
// or the description; an empty term matches everything.
func Filter(category, term string) []Product {
	term = strings.ToLower(term)
	var out []Product
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
