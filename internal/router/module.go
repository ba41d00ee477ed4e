package router

import "github.com/gin-gonic/gin"

// Module registers one feature's routes, with its own auth and rate limits, on a group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
