package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 10
	MaxPasswordLength = 72 // bcrypt input limit
	MaxNameLength     = 100
)

// RegisterInput holds parameters for registering a user.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	switch n := utf8.RuneCountInString(username); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case n < MinUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too short"})
	case n > MaxUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	switch n := len(i.Password); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case n < MinPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case n > MaxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(strings.TrimSpace(i.FirstName)) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if len(strings.TrimSpace(i.LastName)) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
