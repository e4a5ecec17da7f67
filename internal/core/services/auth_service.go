package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"nexum-supply/internal/adapters/persistence/models"
	"nexum-supply/internal/adapters/persistence/repositories"
	"nexum-supply/internal/core/domain"
	"nexum-supply/internal/pkg/jwt"
	"nexum-supply/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *jwt.Issuer
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repositories.UserRepository, tokens *jwt.Issuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// LoginInput represents login input.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput represents registration input.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	BadgeNo  string `json:"badge_no"`
	Role     string `json:"role"`
}

// AuthResponse represents a successful authentication.
type AuthResponse struct {
	User  *models.UserResponse `json:"user"`
	Token string               `json:"token"`
}

// Login authenticates a user and issues a session token.
//
// The distinct errors (user not found, corrupt hash, wrong password)
// exist for logging; callers present not-found and wrong-password as a
// single failure so that email existence cannot be probed.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if user.Password == "" || !password.IsHash(user.Password) {
		log.Printf("⚠️ Corrupt password hash for user ID %d", user.ID)
		return nil, domain.ErrCorruptCredential
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return &AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}, nil
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.UserResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		BadgeNo:  strings.TrimSpace(input.BadgeNo),
		Role:     input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s (role: %s)", user.Email, user.Role)

	return user.ToResponse(), nil
}

// VerifyToken validates a session token and returns its claims.
func (s *AuthService) VerifyToken(token string) (*jwt.Claims, error) {
	return s.tokens.Verify(token)
}
