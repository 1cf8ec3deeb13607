package voting

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// UpdateVoteInput holds the parameters for casting a vote.
type UpdateVoteInput struct {
	VoteID uuid.UUID
	Status string
}

// Validate checks all fields and collects all errors.
func (i UpdateVoteInput) Validate(maxStatusLength int) error {
	var errs []domain.FieldError

	if i.VoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vote_id", Message: "required"})
	}

	status := strings.TrimSpace(i.Status)
	if status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	}
	if maxStatusLength > 0 && utf8.RuneCountInString(status) > maxStatusLength {
		errs = append(errs, domain.FieldError{Field: "status", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
