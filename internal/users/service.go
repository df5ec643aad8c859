package users

import (
	"context"
	"fmt"

	"voyago/internal/shared/constants"
	"voyago/pkg/cache"

	"github.com/google/uuid"
)

// Service interface defines the contract for user profile reads
type Service interface {
	GetProfile(ctx context.Context, userID string) (*User, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

// NewService creates a new user service instance
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) GetProfile(ctx context.Context, userID string) (*User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	var user User
	if s.cache != nil {
		key := constants.BuildUserProfileKey(id.String())
		err := s.cache.GetOrSet(ctx, key, constants.TTL_USER_PROFILE, func() (interface{}, error) {
			return s.repo.GetByID(ctx, id)
		}, &user)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	return s.repo.GetByID(ctx, id)
}
