package schema

// DriverApplication is a request to become a verified driver.
type DriverApplication struct {
	ID                     int     `json:"id"`
	FullName               string  `json:"full_name"`
	Email                  string  `json:"email"`
	Phone                  string  `json:"phone,omitempty"`
	VehicleType            string  `json:"vehicle_type,omitempty"`
	Status                 string  `json:"status"`
	RejectionReason        string  `json:"rejection_reason,omitempty"`
	IDDocumentURL          string  `json:"id_document_url,omitempty"`
	DrivingLicenseURL      string  `json:"driving_license_url,omitempty"`
	VehicleRegistrationURL string  `json:"vehicle_registration_url,omitempty"`
	ReviewedAt             *string `json:"reviewed_at,omitempty"`
	CreatedAt              string  `json:"created_at,omitempty"`
}
