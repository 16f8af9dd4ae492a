package company

import "time"

type ProfileResponse struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	CompanyName        string `json:"company_name"`
	ContactEmail       string `json:"contact_email,omitempty"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	CreatedAt          string `json:"created_at"`
}

type UpdateProfileRequest struct {
	CompanyName        *string `json:"company_name"`
	ContactEmail       *string `json:"contact_email" binding:"omitempty,email"`
	PhoneNumber        *string `json:"phone_number"`
	RegistrationNumber *string `json:"registration_number"`
}

func mapToResponse(p CompanyProfile) ProfileResponse {
	return ProfileResponse{
		ID:                 p.ID.String(),
		UserID:             p.UserID.String(),
		CompanyName:        p.CompanyName,
		ContactEmail:       p.ContactEmail,
		PhoneNumber:        p.PhoneNumber,
		RegistrationNumber: p.RegistrationNumber,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}
