package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Login válido",
			body: `{"email":"ana@example.com","password":"Secret#123"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "Secret#123").Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Senha incorreta",
			body: `{"email":"ana@example.com","password":"wrong"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().
					LoginUser(gomock.Any(), "ana@example.com", "wrong").
					Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 1, "Senha incorreta"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "Usuário desativado",
			body: `{"email":"ana@example.com","password":"Secret#123"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().
					LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 1, "Conta desativada"))
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrUserDisabled,
		},
		{
			name: "Erro inesperado",
			body: `{"email":"ana@example.com","password":"Secret#123"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
		{
			name:           "Corpo inválido",
			body:           `not-json`,
			setup:          func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			rec := serve(Authentication(auth), http.MethodPost, "/v1/login", strings.NewReader(tt.body), 0)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
			} else {
				assert.Equal(t, "jwt-token", decodeBody[map[string]string](t, rec)["token"])
			}
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("Cria usuário sem aceitar perfil do cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := mocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, "Ana", user.Name)
				assert.Equal(t, "Souza", user.Lastname)
				assert.Equal(t, "Secret#123", user.PasswordHash)
				assert.Zero(t, user.RoleID)

				created := *user
				created.ID = 10
				created.RoleID = middleware.RoleAnalyst
				created.PasswordHash = ""
				return &created, nil
			})

		body := `{"name":"Ana","lastname":"Souza","email":"ana@example.com","password":"Secret#123","role_id":1}`
		rec := serve(Authentication(auth), http.MethodPost, "/v1/register", strings.NewReader(body), 0)

		assert.Equal(t, http.StatusCreated, rec.Code)

		user := decodeBody[domain.User](t, rec)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := mocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado"))

		body := `{"name":"Ana","lastname":"Souza","email":"ana@example.com","password":"Secret#123"}`
		rec := serve(Authentication(auth), http.MethodPost, "/v1/register", strings.NewReader(body), 0)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrUserAlreadyExists, errorCode(t, rec))
	})
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().
		GetUserProfile(gomock.Any(), testUserID).
		Return(&domain.User{ID: testUserID, Email: "ana@example.com"}, nil)

	rec := serve(Authentication(auth), http.MethodGet, "/v1/me", nil, middleware.RoleAnalyst)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana@example.com", decodeBody[domain.User](t, rec).Email)
}

func TestChangePassword(t *testing.T) {
	body := `{"current_password":"Secret#123","new_password":"Secret#456"}`

	t.Run("Própria senha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := mocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().ChangePassword(gomock.Any(), testUserID, "Secret#123", "Secret#456").Return(nil)

		rec := serve(Authentication(auth), http.MethodPost, "/v1/users/7/change-password", strings.NewReader(body), middleware.RoleAnalyst)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Senha de outro usuário", func(t *testing.T) {
		rec := serve(Authentication(nil), http.MethodPost, "/v1/users/8/change-password", strings.NewReader(body), middleware.RoleAdmin)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, rec))
	})

	t.Run("ID inválido", func(t *testing.T) {
		rec := serve(Authentication(nil), http.MethodPost, "/v1/users/abc/change-password", strings.NewReader(body), middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("Senha fraca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth := mocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().
			ChangePassword(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
			Return(authenticating.NewUserAuthError(authenticating.ErrWeakPassword, apiErrors.ErrInvalidFormat, testUserID, "a senha deve conter pelo menos um número"))

		rec := serve(Authentication(auth), http.MethodPost, "/v1/users/7/change-password", strings.NewReader(body), middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})
}
