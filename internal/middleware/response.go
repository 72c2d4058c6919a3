package middleware

import "github.com/gin-gonic/gin"

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func RespondWithData(c *gin.Context, code int, data any) {
	c.JSON(code, Envelope{Success: true, Data: data})
}

func RespondWithMessage(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{Success: true, Message: message, Data: data})
}

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Success: false, Message: message})
}

func RespondWithValidationError(c *gin.Context, validationErrors []ValidationError) {
	c.JSON(400, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  validationErrors,
	})
}
