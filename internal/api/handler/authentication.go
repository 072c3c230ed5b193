package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Company  *string `json:"company"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleAuthError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{"token": token})
	}
}

// Register cria uma conta de analista. O perfil não pode ser escolhido pelo cliente.
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
			Company:      req.Company,
		})
		if err != nil {
			handleAuthError(w, r, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

// GetMe retorna o perfil do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			handleAuthError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// ChangePassword permite que o usuário altere apenas a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if claims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			handleAuthError(w, r, err, "Erro ao alterar senha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleAuthError usa o código carregado pelo AuthError. Demais erros viram erro interno.
func handleAuthError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authErr.Code == apiErrors.ErrDatabaseOperation || authErr.Code == apiErrors.ErrInternalServer {
			log.ForContext(r.Context()).WithError(err).Error(fallback)
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
