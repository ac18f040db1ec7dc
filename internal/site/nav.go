package site

// NavEntry is one navigation shell item. Active is set per request
// against the caller's current path.
type NavEntry struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// Contact is how visitors reach the sales team outside the site.
type Contact struct {
	Email  string `json:"email"`
	Mailto string `json:"mailto"`
}

var entries = []NavEntry{
	{Label: "Home", Path: "/"},
	{Label: "Products", Path: "/products"},
	{Label: "Submit", Path: "/submit-requirement"},
}

// Nav returns the navigation entries with the one matching
// currentPath marked active. At most one entry is active; an
// unknown path marks none.
func Nav(currentPath string) []NavEntry {
	out := make([]NavEntry, len(entries))
	copy(out, entries)
	for i := range out {
		out[i].Active = out[i].Path == currentPath
	}
	return out
}

// ContactFor wraps the configured contact address as a mailto link.
func ContactFor(email string) Contact {
	return Contact{Email: email, Mailto: "mailto:" + email}
}
