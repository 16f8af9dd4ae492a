package auth

type RegisterRequest struct {
	// UserType may be omitted; anything other than COMPANY is refused.
	UserType           string `json:"user_type"`
	Username           string `json:"username" binding:"required,min=3,max=150"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=6"`
	CompanyName        string `json:"company_name" binding:"required"`
	ContactEmail       string `json:"contact_email" binding:"omitempty,email"`
	PhoneNumber        string `json:"phone_number"`
	RegistrationNumber string `json:"registration_number"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	// UserType is an optional client-side sanity check; ADMIN accounts pass
	// it regardless of the value.
	UserType string `json:"user_type"`
}

type AuthResponse struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	OrganizationName string `json:"organization_name,omitempty"`
}
