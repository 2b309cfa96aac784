package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/internal/dto"
	pkgauth "github.com/SKuzmin/cryptopay/pkg/auth"
	"github.com/SKuzmin/cryptopay/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, username, secret string, role domain.Role) (*domain.Account, error)
	Login(ctx context.Context, email, secret string) (string, *domain.Account, error)
	Logout(sessionID string)
}

type AuthHandler struct {
	authService Service
	jwtService  pkgauth.JWTServiceInterface
}

func New(authService Service, jwtService pkgauth.JWTServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create an account with email, username, password and role, then open a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.authService.Register(r.Context(), req.Email, req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	token, _, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error opening session")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message:   "Account successfully registered",
		AccountID: account.ID,
		Username:  account.Username,
		Role:      string(account.Role),
	})
}

// Login godoc
//
//	@Summary		Authenticate an account
//	@Description	Open a session and receive a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, account, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message:   "Account successfully authenticated",
		AccountID: account.ID,
		Username:  account.Username,
		Role:      string(account.Role),
	})
}

// Logout godoc
//
//	@Summary		Close the current session
//	@Description	Idempotent; a request without an active session still succeeds
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LogoutResponseDTO
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := pkgauth.SessionFromContext(r.Context()); ok {
		h.authService.Logout(sessionID)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{
		Message: "Session closed",
	})
}
