package schema

type (
	// Address is a pickup or delivery address.
	Address struct {
		AddressLine string `json:"address_line,omitempty"`
		City        string `json:"city,omitempty"`
		Country     string `json:"country,omitempty"`
	}

	// Order is a purchase of an item.
	Order struct {
		ID                 int       `json:"id"`
		OrderNumber        string    `json:"order_number"`
		Status             string    `json:"status"`
		PaymentStatus      string    `json:"payment_status,omitempty"`
		PaymentMethod      string    `json:"payment_method,omitempty"`
		ItemPrice          float64   `json:"item_price"`
		DeliveryFee        float64   `json:"delivery_fee"`
		TotalAmount        float64   `json:"total_amount"`
		CancellationReason string    `json:"cancellation_reason,omitempty"`
		DeliveryAddress    *Address  `json:"delivery_address,omitempty"`
		Item               *Item     `json:"item,omitempty"`
		Buyer              *User     `json:"buyer,omitempty"`
		Seller             *User     `json:"seller,omitempty"`
		Delivery           *Delivery `json:"delivery,omitempty"`
		CreatedAt          string    `json:"created_at,omitempty"`
		ConfirmedAt        *string   `json:"confirmed_at,omitempty"`
		DeliveredAt        *string   `json:"delivered_at,omitempty"`
		CompletedAt        *string   `json:"completed_at,omitempty"`
	}

	OrderStatusUpdate struct {
		Status string `json:"status"`
	}

	// Reason carries a free-text reason for cancel and reject calls.
	Reason struct {
		Reason string `json:"reason"`
	}
)
