package domain

// Company is one tracked career page. Identity is Name.
type Company struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Valid reports whether both name and url are non-empty. Whitespace counts
// as present.
func (c Company) Valid() bool {
	return c.Name != "" && c.URL != ""
}
