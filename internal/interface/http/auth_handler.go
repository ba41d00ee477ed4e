package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/pkg/response"
)

type AuthHandler struct {
	Authenticate *application.AuthenticateUserUseCase
	Logger       logrus.FieldLogger
}

func NewAuthHandler(authenticate *application.AuthenticateUserUseCase, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{Authenticate: authenticate, Logger: logger}
}

type loginRequest struct {
	User struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	} `json:"user"`
}

type loginResponse struct {
	User        userResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	out, err := h.Authenticate.Execute(c.Request.Context(), application.AuthenticateInput{
		Email:    req.User.Email,
		Password: req.User.Password,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, loginResponse{
		User:        presentUser(out.User),
		AccessToken: out.AccessToken,
		ExpiresAt:   out.ExpiresAt,
	}, "Login successful", nil)
}
