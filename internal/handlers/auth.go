package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shortlyhq/shortly-backend/internal/services"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type authResponse struct {
	AccessToken string   `json:"access_token"`
	User        userInfo `json:"user"`
}

type userInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	token, user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		AccessToken: token,
		User:        userInfo{ID: user.ID, Email: user.Email},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		AccessToken: token,
		User:        userInfo{ID: user.ID, Email: user.Email},
	})
}
