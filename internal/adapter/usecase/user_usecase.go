package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

// UserUseCase registers accounts.
type UserUseCase struct {
	repo port.UserRepository
	cost int
	now  func() time.Time
}

func NewUserUseCase(repo port.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, cost: bcrypt.DefaultCost, now: time.Now}
}

// Register stores a free-tier user with the default credit balance. Only a
// bcrypt hash of the password is kept.
func (u *UserUseCase) Register(ctx context.Context, req port.RegisterReq) (*domain.User, error) {
	existing, err := u.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return nil, port.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:               uuid.NewString(),
		Email:            req.Email,
		FullName:         req.FullName,
		Company:          req.Company,
		PlanTier:         domain.PlanFree,
		CreditsRemaining: domain.DefaultCredits,
		PasswordHash:     string(hash),
		CreatedAt:        u.now().UTC(),
	}
	if err = u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}
