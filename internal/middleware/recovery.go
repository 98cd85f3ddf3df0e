package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pgms-be-svc/pkg/utils"
)

// ErrorHandler recovers from panics in handlers and returns the generic
// failure envelope instead of dropping the connection
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, utils.APIResponse{
					Success: false,
					Message: "An unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}

// NoRouteHandler returns a JSON 404 for unknown routes
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.APIResponse{
			Success: false,
			Message: "Route not found",
		})
	}
}

// NoMethodHandler returns a JSON 405 for unsupported methods
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.APIResponse{
			Success: false,
			Message: "Method not allowed",
		})
	}
}
