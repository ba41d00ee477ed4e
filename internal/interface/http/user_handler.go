package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/pkg/response"
)

// UserUseCases groups the use-cases the user endpoints call.
type UserUseCases struct {
	Create         *application.CreateUserUseCase
	GetByID        *application.GetUserByIDUseCase
	GetAll         *application.GetAllUsersUseCase
	Update         *application.UpdateUserUseCase
	Delete         *application.DeleteUserUseCase
	ChangePassword *application.ChangePasswordUseCase
	Search         *application.SearchUsersUseCase
}

type UserHandler struct {
	UC     UserUseCases
	Logger logrus.FieldLogger
}

func NewUserHandler(uc UserUseCases, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{UC: uc, Logger: logger}
}

// Fields are checked by the entity factory so its messages reach the client.
type createUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type updateUserRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,personname"`
	LastName  string `json:"last_name" binding:"omitempty,personname"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type searchUsersQuery struct {
	Q    string `form:"q"`
	Size int    `form:"size"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	u, err := h.UC.Create.Execute(c.Request.Context(), application.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presentUser(u), "User created", nil)
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.UC.GetAll.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presentUsers(users), "Users", gin.H{"count": len(users)})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.UC.GetByID.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presentUser(u), "User", nil)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	u, err := h.UC.GetByID.Execute(c.Request.Context(), uid)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presentUser(u), "Profile", nil)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	u, err := h.UC.Update.Execute(c.Request.Context(), application.UpdateUserInput{
		ID:        uid,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presentUser(u), "Profile updated", nil)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UC.Delete.Execute(c.Request.Context(), uid); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": uid}, "User deleted", nil)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	u, err := h.UC.ChangePassword.Execute(c.Request.Context(), application.ChangePasswordInput{
		UserID:          uid,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presentUser(u), "Password changed", nil)
}

func (h *UserHandler) Search(c *gin.Context) {
	var q searchUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}
	hits, err := h.UC.Search.Execute(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "Search results", gin.H{"count": len(hits)})
}
