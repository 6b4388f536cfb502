package services_test

import (
	"testing"

	"sitecraft_backend/internal/auth"
	"sitecraft_backend/internal/models"
	"sitecraft_backend/internal/services"
	"sitecraft_backend/internal/services/dto"
	"sitecraft_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (services.AuthService, *fakeUserRepo) {
	clock := newFakeClock()
	userRepo := newFakeUserRepo(clock)
	return services.NewAuthService(userRepo), userRepo
}

func TestRegister_Success(t *testing.T) {
	svc, userRepo := newAuthFixture()

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)
	assert.NotEmpty(t, resp.AccessToken)

	// Токен сразу после выпуска резолвится в того же пользователя
	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// Пароль никогда не сохраняется в открытом виде
	stored, err := userRepo.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("password123", stored.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Username: "bob", Email: "a@x.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Username: "alice", Email: "b@x.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

// Конкурирующая регистрация: пре-чек прошел, но вставка уперлась в
// уникальный индекс. Должен вернуться конфликт, а не 500.
func TestRegister_LostRaceMapsToConflict(t *testing.T) {
	clock := newFakeClock()
	userRepo := newFakeUserRepo(clock)
	svc := services.NewAuthService(userRepo)

	winner := &models.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, userRepo.Create(winner))

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice2", Email: "a@x.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

// Требований к сложности пароля нет: короткий пароль регистрируется
// и работает на логине.
func TestRegister_ShortPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	reg, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.AccessToken)

	resp, err := svc.Login(&dto.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthFixture()

	reg, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)

	// Оба токена несут одну и ту же идентичность
	regClaims, err := auth.ParseToken(reg.AccessToken)
	require.NoError(t, err)
	loginClaims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, regClaims.UserID, loginClaims.UserID)
}

// Неизвестный email и неверный пароль наружу неразличимы.
func TestLogin_IndistinguishableFailures(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(&dto.LoginRequest{Email: "nobody@x.com", Password: "password123"})
	_, errWrongPass := svc.Login(&dto.LoginRequest{Email: "a@x.com", Password: "wrong-password"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestGetCurrentUser(t *testing.T) {
	svc, _ := newAuthFixture()

	reg, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetCurrentUser("missing-id")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
