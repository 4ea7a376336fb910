package schema

// Item is a listed piece of clothing.
type Item struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Size        string   `json:"size,omitempty"`
	Color       string   `json:"color,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Price       float64  `json:"price"`
	IsDonation  bool     `json:"is_donation"`
	Status      string   `json:"status"`
	Images      []string `json:"images,omitempty"`
	Seller      *User    `json:"seller,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// ItemUpdate is the body of an item update, zero fields are left out.
type ItemUpdate struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Status      string   `json:"status,omitempty"`
}
