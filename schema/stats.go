package schema

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers      int `json:"total_users"`
	TotalDrivers    int `json:"total_drivers"`
	VerifiedDrivers int `json:"verified_drivers"`
	TotalCharities  int `json:"total_charities"`
	TotalItems      int `json:"total_items,omitempty"`
	TotalOrders     int `json:"total_orders,omitempty"`
	TotalDeliveries int `json:"total_deliveries,omitempty"`
}
