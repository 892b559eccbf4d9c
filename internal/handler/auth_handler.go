package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"CreditPathAI/internal/auth"
	"CreditPathAI/internal/middleware"
	"CreditPathAI/internal/models"
	"CreditPathAI/internal/storage"
)

// SignupRequest is the /api/auth/signup body.
type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha Rao"`
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

// LoginRequest is the /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string      `json:"token_type" example:"bearer"`
	User        models.User `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup godoc
// @Summary      Sign up
// @Description  Creates an account and returns a bearer token for it.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "account details"
// @Success      200 {object} handler.TokenResponse
// @Failure      400 {object} handler.ErrorResponse "email already registered"
// @Failure      422 {object} handler.ValidationErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: validationDetail(err)})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("Signup(): hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to hash password"})
		return
	}

	user, err := h.Store.CreateUser(strings.TrimSpace(req.Name), normalizeEmail(req.Email), hash)
	if err != nil {
		if eris.Is(err, storage.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email already registered"})
			return
		}
		h.Log.Error("Signup(): create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Database error"})
		return
	}

	h.issueToken(c, http.StatusOK, user)
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email and password for a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "credentials"
// @Success      200 {object} handler.TokenResponse
// @Failure      401 {object} handler.ErrorResponse "invalid credentials"
// @Failure      422 {object} handler.ValidationErrorResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: validationDetail(err)})
		return
	}

	user, err := h.Store.GetUserByEmail(normalizeEmail(req.Email))
	if err != nil {
		if eris.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		h.Log.Error("Login(): user lookup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Database error"})
		return
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	h.issueToken(c, http.StatusOK, user)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the account the bearer token belongs to.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) issueToken(c *gin.Context, status int, user models.User) {
	token, err := h.Tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		h.Log.Error("issueToken(): sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.JSON(status, TokenResponse{AccessToken: token, TokenType: "bearer", User: user})
}
