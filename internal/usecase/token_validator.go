package usecase

import (
	"member-rewards/internal/pkg/jwt"
)

// TokenValidator decouples the auth middleware from the token implementation.
type TokenValidator interface {
	ValidateToken(token string) (memberID int64, mobileNumber string, err error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewTokenValidator(service *jwt.Service) TokenValidator {
	return &jwtTokenValidator{service: service}
}

func (v *jwtTokenValidator) ValidateToken(token string) (int64, string, error) {
	claims, err := v.service.ValidateToken(token)
	if err != nil {
		return 0, "", err
	}
	return claims.MemberID, claims.MobileNumber, nil
}
