package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
)

// Register creates a user with a bcrypt-hashed password.
// Returns domain.ErrAlreadyExists if the username is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     strings.TrimSpace(input.Username),
			PasswordHash: hash,
			FirstName:    strings.TrimSpace(input.FirstName),
			LastName:     strings.TrimSpace(input.LastName),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID(ctx),
			EntityType: domain.EntityTypeUser,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"username": map[string]any{"new": created.Username},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()),
		slog.String("username", created.Username),
	)

	return created, nil
}
