package application

import "github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"

var (
	ErrEmailExists        = apperror.Conflict(apperror.CodeEmailExists, "Email already exists")
	ErrInvalidCredentials = apperror.Unauthorized(apperror.CodeInvalidCredentials, "Invalid email or password")
	ErrUserNotFound       = apperror.NotFound(apperror.CodeUserNotFound, "User not found")
	ErrDeleteFailed       = apperror.Internal("Failed to delete user", nil)
	ErrWrongPassword      = apperror.Unauthorized(apperror.CodeInvalidCredentials, "Current password is incorrect")
)
