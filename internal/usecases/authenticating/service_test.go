package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adreport-api/infrastructure/repository"
	"github.com/vfg2006/adreport-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adreport-api/internal/config"
	"github.com/vfg2006/adreport-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() *config.Config {
	return &config.Config{SecretKey: "segredo_de_teste"}
}

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	mockUserRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// A senha nunca chega em claro no repositório
			assert.NotEqual(t, "senha123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))

			user.ID = 10
			return user, nil
		})

	user, err := service.RegisterUser("alice", "Alice@Example.com", "senha123")
	require.NoError(t, err)

	assert.Equal(t, 10, user.ID)
	assert.Equal(t, "alice", user.Username)
	// Email é normalizado antes de persistir
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{name: "Username ausente", username: "", email: "a@b.com", password: "x"},
		{name: "Email ausente", username: "alice", email: "", password: "x"},
		{name: "Senha ausente", username: "alice", email: "a@b.com", password: ""},
		{name: "Email sem arroba", username: "alice", email: "a.b.com", password: "x"},
		{name: "Email sem domínio", username: "alice", email: "a@bcom", password: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma chamada ao repositório deve acontecer
			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			service := NewService(mockUserRepo, newTestConfig())

			user, err := service.RegisterUser(tt.username, tt.email, tt.password)
			assert.Error(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestRegisterUserDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	mockUserRepo.EXPECT().
		CreateUser(gomock.Any()).
		Return(nil, repository.ErrDuplicateUser)

	user, err := service.RegisterUser("demo", "demo@adreport.com", "senha123")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &domain.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	mockUserRepo.EXPECT().
		GetUserByUsername("alice").
		Return(storedUser, nil)

	user, token, err := service.LoginUser("alice", "senha123")
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.NotEmpty(t, token)
	// O hash nunca sai na resposta
	assert.Empty(t, user.PasswordHash)

	// O token emitido é aceito pela própria validação
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "alice", claims.UserUsername)
}

// Usuário inexistente e senha incorreta precisam ser indistinguíveis para o
// chamador: mesmo erro, nenhum detalhe extra.
func TestLoginUserInvalidCredentialsAreUniform(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.DefaultCost)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	mockUserRepo.EXPECT().
		GetUserByUsername("fantasma").
		Return(nil, nil)

	mockUserRepo.EXPECT().
		GetUserByUsername("alice").
		Return(&domain.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil)

	_, _, errUnknownUser := service.LoginUser("fantasma", "qualquer")
	_, _, errWrongPassword := service.LoginUser("alice", "senha-errada")

	assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.Equal(t, errUnknownUser.Error(), errWrongPassword.Error())
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), newTestConfig())

	claims, err := service.ValidateToken("nao-e-um-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
