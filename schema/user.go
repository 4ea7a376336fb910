package schema

// UserTypeAdmin is the only user type allowed to sign in to the admin client.
const UserTypeAdmin = "admin"

// User is a platform account.
type User struct {
	ID                      int     `json:"id"`
	Name                    string  `json:"name"`
	Email                   string  `json:"email"`
	Phone                   string  `json:"phone,omitempty"`
	City                    string  `json:"city,omitempty"`
	Country                 string  `json:"country,omitempty"`
	Bio                     string  `json:"bio,omitempty"`
	UserType                string  `json:"user_type"`
	IsActive                bool    `json:"is_active"`
	IsDriver                bool    `json:"is_driver,omitempty"`
	DriverVerified          bool    `json:"driver_verified,omitempty"`
	DriverVerifiedAt        *string `json:"driver_verified_at,omitempty"`
	OrganizationName        string  `json:"organization_name,omitempty"`
	OrganizationDescription string  `json:"organization_description,omitempty"`
	RegistrationNumber      string  `json:"registration_number,omitempty"`
	LastLoginAt             *string `json:"last_login_at,omitempty"`
	CreatedAt               string  `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user holds admin privileges.
func (u *User) IsAdmin() bool {
	return u != nil && u.UserType == UserTypeAdmin
}

// Merge copies the non-zero profile fields of patch onto u.
func (u *User) Merge(patch *User) {
	if u == nil || patch == nil {
		return
	}
	if patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.Phone != "" {
		u.Phone = patch.Phone
	}
	if patch.City != "" {
		u.City = patch.City
	}
	if patch.Country != "" {
		u.Country = patch.Country
	}
	if patch.Bio != "" {
		u.Bio = patch.Bio
	}
	if patch.OrganizationName != "" {
		u.OrganizationName = patch.OrganizationName
	}
	if patch.OrganizationDescription != "" {
		u.OrganizationDescription = patch.OrganizationDescription
	}
}
