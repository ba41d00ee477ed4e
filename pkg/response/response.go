package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request id middleware writes to.
const RequestIDKey = "request_id"

// Header is the part every envelope shares.
type Header struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
}

// APIResponse is the success envelope. Data is always present so an empty
// list still serializes as [].
type APIResponse[T any] struct {
	Header
	Data T   `json:"data"`
	Meta any `json:"meta,omitempty"`
}

// ErrorResponse is the failure envelope; Error carries {code, ...details}.
type ErrorResponse struct {
	Header
	Error any `json:"error,omitempty"`
}

func header(ctx *gin.Context, status int, ok bool, message string) Header {
	return Header{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString(RequestIDKey),
		Success:   ok,
		Message:   message,
	}
}

// Success writes a success envelope. Status 0 means 200.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta any) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{Header: header(ctx, status, true, message), Data: data, Meta: meta}
	ctx.JSON(status, resp)
	return resp
}

// Error writes an error envelope and aborts the chain. Status 0 means 400.
func Error(ctx *gin.Context, status int, message string, err any) ErrorResponse {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := ErrorResponse{Header: header(ctx, status, false, message), Error: err}
	ctx.AbortWithStatusJSON(status, resp)
	return resp
}
