package schema

type (
	// Charity is a charity organization account.
	Charity struct {
		ID                      int    `json:"id"`
		Name                    string `json:"name,omitempty"`
		Email                   string `json:"email"`
		Phone                   string `json:"phone,omitempty"`
		OrganizationName        string `json:"organization_name"`
		OrganizationDescription string `json:"organization_description,omitempty"`
		RegistrationNumber      string `json:"registration_number,omitempty"`
		TaxID                   string `json:"tax_id,omitempty"`
		Address                 string `json:"address,omitempty"`
		City                    string `json:"city,omitempty"`
		Country                 string `json:"country,omitempty"`
		IsActive                bool   `json:"is_active"`
		CreatedAt               string `json:"created_at,omitempty"`
	}

	CreateCharityRequest struct {
		OrganizationName        string `json:"organization_name"`
		Email                   string `json:"email"`
		Password                string `json:"password,omitempty"`
		Phone                   string `json:"phone"`
		Address                 string `json:"address"`
		City                    string `json:"city"`
		Country                 string `json:"country"`
		OrganizationDescription string `json:"organization_description,omitempty"`
		RegistrationNumber      string `json:"registration_number,omitempty"`
		TaxID                   string `json:"tax_id,omitempty"`
	}
)

// Validate checks the fields the API requires.
func (r *CreateCharityRequest) Validate() error {
	missing := func(name string) error { return &FieldError{Field: name, Message: "is required"} }
	switch {
	case r.OrganizationName == "":
		return missing("organization_name")
	case r.Email == "":
		return missing("email")
	case r.Phone == "":
		return missing("phone")
	case r.Address == "":
		return missing("address")
	case r.City == "":
		return missing("city")
	case r.Country == "":
		return missing("country")
	}
	return nil
}

// FieldError reports an invalid request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message
}
