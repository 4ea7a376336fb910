package schema

// Envelope is the `{"data": ...}` wrapper of every successful response.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// Page is a paginated list.
type Page[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page,omitempty"`
	LastPage    int `json:"last_page,omitempty"`
	PerPage     int `json:"per_page,omitempty"`
	Total       int `json:"total,omitempty"`
}

// HasMore reports whether pages follow this one.
func (p *Page[T]) HasMore() bool {
	return p.CurrentPage < p.LastPage
}
