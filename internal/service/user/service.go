package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripvote-backend/internal/domain"
	"github.com/heartmarshall/tripvote-backend/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// membershipRepo resolves the trips a user belongs to.
type membershipRepo interface {
	TripIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// passwordHasher is the credential store collaborator.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// auditLogger defines the audit interface needed by user service.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the user directory.
type Service struct {
	log     *slog.Logger
	users   userRepo
	members membershipRepo
	hasher  passwordHasher
	audit   auditLogger
	tx      txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	members membershipRepo,
	hasher passwordHasher,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		members: members,
		hasher:  hasher,
		audit:   audit,
		tx:      tx,
	}
}

func actorID(ctx context.Context) *uuid.UUID {
	return ctxutil.ActorIDFromCtx(ctx)
}
