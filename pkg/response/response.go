package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the data as the response body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response with the given status and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrResp{Error: message})
}

// ErrorDetails sends an error response with an extra details string.
func ErrorDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, ErrResp{Error: message, Details: details})
}

// InternalError sends 500 with a generic body, hiding internals from callers.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: "internal server error"})
}
