package services

import (
	"context"
	"testing"
	"time"

	"nexum-supply/internal/adapters/persistence/models"
	"nexum-supply/internal/core/domain"
	"nexum-supply/internal/pkg/jwt"
	"nexum-supply/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokens := jwt.NewIssuer("test-secret", time.Hour)
	return NewAuthService(repo, tokens), repo
}

func userWith(email, hash, role string) *models.User {
	return &models.User{Email: email, Password: hash, Role: role}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		Email:    "a@b.com",
		Password: "secret1",
		Role:     domain.RoleStandard,
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, domain.RoleStandard, user.Role)

	result, err := svc.Login(ctx, &LoginInput{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := svc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStandard, claims.Role)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		Email:    "a@b.com",
		Password: "secret1",
		Role:     domain.RoleStandard,
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, &LoginInput{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()

	result, err := svc.Login(context.Background(), &LoginInput{Email: "nobody@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, result)
}

func TestLogin_CorruptStoredHash(t *testing.T) {
	t.Parallel()

	svc, repo := newAuthService()
	ctx := context.Background()

	hashed, err := password.Hash("secret1")
	require.NoError(t, err)

	// A valid account next to a corrupt one, to make sure only the
	// corrupt row is rejected.
	require.NoError(t, repo.Create(ctx, userWith("ok@b.com", hashed, domain.RoleStandard)))
	require.NoError(t, repo.Create(ctx, userWith("broken@b.com", "not-a-bcrypt-hash", domain.RoleStandard)))
	require.NoError(t, repo.Create(ctx, userWith("empty@b.com", "", domain.RoleStandard)))

	_, err = svc.Login(ctx, &LoginInput{Email: "ok@b.com", Password: "secret1"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "broken@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrCorruptCredential)

	_, err = svc.Login(ctx, &LoginInput{Email: "empty@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrCorruptCredential)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "a@b.com", Password: "secret1", Role: domain.RoleStandard})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Email: "a@b.com", Password: "other12", Role: domain.RoleManager})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	// Email matching is case-insensitive
	_, err = svc.Register(ctx, &RegisterInput{Email: "A@B.com", Password: "other12", Role: domain.RoleManager})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_InvalidRole(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:    "a@b.com",
		Password: "secret1",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegister_PasswordStoredHashed(t *testing.T) {
	t.Parallel()

	svc, repo := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{Email: "a@b.com", Password: "secret1", Role: domain.RoleStandard})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, password.Verify("secret1", stored.Password))
}
