package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamarlaylatt/my-expense/internal/middleware"
	"github.com/kamarlaylatt/my-expense/internal/models"
	"github.com/kamarlaylatt/my-expense/internal/service"
)

// AuthHandler handles signup, signin, the external-identity callback and
// the profile endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleAuthRequest struct {
	Email             string  `json:"email" validate:"required,email"`
	Name              string  `json:"name" validate:"omitempty,max=100"`
	Provider          string  `json:"provider" validate:"required"`
	ProviderAccountID string  `json:"providerAccountId" validate:"required"`
	Image             *string `json:"image" validate:"omitempty,max=500"`
}

type authData struct {
	User  *models.UserView `json:"user"`
	Token string           `json:"token"`
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusCreated, "User registered successfully", authData{User: user, Token: token})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, token, err := h.auth.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusOK, "Signed in successfully", authData{User: user, Token: token})
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, token, err := h.auth.GoogleAuth(c.Request.Context(), service.GoogleAuthInput{
		Email:             req.Email,
		Name:              req.Name,
		Provider:          req.Provider,
		ProviderAccountID: req.ProviderAccountID,
		Image:             req.Image,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusOK, "Google authentication successful", authData{User: user, Token: token})
}

// Profile returns the sanitized user already resolved by the auth guard.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	middleware.RespondWithData(c, http.StatusOK, gin.H{"user": user})
}
