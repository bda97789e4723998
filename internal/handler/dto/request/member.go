package request

import "strings"

type RegisterRequest struct {
	MobileNumber string  `json:"mobile_number" binding:"required"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
}

// Normalized returns the optional fields with whitespace trimmed and empty
// strings folded to nil, so "" never overwrites a stored value.
func (r RegisterRequest) Normalized() (name, email *string) {
	return trimOptional(r.Name), trimOptional(r.Email)
}

type VerifyRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required"`
	Code         string `json:"code" binding:"required"`
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
