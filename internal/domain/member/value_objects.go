package member

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidMobileNumber = errors.New("invalid mobile number")
	ErrInvalidEmail        = errors.New("invalid email format")
)

var (
	mobileRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type MobileNumber struct {
	value string
}

func NewMobileNumber(s string) (MobileNumber, error) {
	s = strings.TrimSpace(s)
	if !mobileRegex.MatchString(s) {
		return MobileNumber{}, ErrInvalidMobileNumber
	}
	return MobileNumber{value: s}, nil
}

func (m MobileNumber) Value() string {
	return m.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
