package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"nexum-supply/internal/adapters/persistence/models"
	"nexum-supply/internal/adapters/persistence/repositories"
	"nexum-supply/internal/core/domain"

	"gorm.io/gorm"
)

// UserService handles user management business logic.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersOutput represents a page of users.
type ListUsersOutput struct {
	Users []*models.UserResponse `json:"users"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// UpdateUserInput represents update input; nil fields stay untouched.
type UpdateUserInput struct {
	Email   *string `json:"email"`
	BadgeNo *string `json:"badge_no"`
	Role    *string `json:"role"`
}

// ListUsers lists users with pagination.
func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*ListUsersOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	users, total, err := s.userRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}

	return &ListUsersOutput{
		Users: responses,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// GetUserByID gets a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateUser updates a user. Role changes require an elevated actor.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UpdateUserInput, actorRole string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Role != nil {
		if !domain.TierElevated.Allows(actorRole) {
			return nil, domain.ErrForbidden
		}
		if !domain.ValidRole(*input.Role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}

	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrEmailTaken
			}
			user.Email = email
		}
	}

	if input.BadgeNo != nil {
		user.BadgeNo = strings.TrimSpace(*input.BadgeNo)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User updated: ID %d", user.ID)

	return user.ToResponse(), nil
}

// DeleteUser soft deletes a user.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ User deleted: ID %d", id)
	return nil
}
