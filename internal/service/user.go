package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/service/ports"
)

type UserService struct {
	repo  ports.UserRepo
	clock clock.Clock
}

func NewUserService(repo ports.UserRepo, clk clock.Clock) *UserService {
	return &UserService{repo: repo, clock: clk}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if strings.ContainsAny(username, " \t\n") {
		return nil, fmt.Errorf("%w: username must not contain spaces", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		FullName:       strings.TrimSpace(input.FullName),
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
