package schema

type (
	// Delivery is the courier leg of an order.
	Delivery struct {
		ID              int      `json:"id"`
		Status          string   `json:"status"`
		PickupAddress   *Address `json:"pickup_address,omitempty"`
		DeliveryAddress *Address `json:"delivery_address,omitempty"`
		DistanceKm      float64  `json:"distance_km,omitempty"`
		DeliveryFee     float64  `json:"delivery_fee,omitempty"`
		DriverEarning   float64  `json:"driver_earning,omitempty"`
		DeliveryNotes   string   `json:"delivery_notes,omitempty"`
		FailureReason   string   `json:"failure_reason,omitempty"`
		Driver          *User    `json:"driver,omitempty"`
		Order           *Order   `json:"order,omitempty"`
		AssignedAt      *string  `json:"assigned_at,omitempty"`
		PickedUpAt      *string  `json:"picked_up_at,omitempty"`
		DeliveredAt     *string  `json:"delivered_at,omitempty"`
		CreatedAt       string   `json:"created_at,omitempty"`
	}

	DriverAssignment struct {
		DriverID int `json:"driver_id"`
	}
)
