package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure half of the API envelope:
// {"success": false, "error": "<message>"}.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationResponse is the shape returned for request binding and
// validation failures, with one issue per offending field.
type ValidationResponse struct {
	Code   string  `json:"code"`
	Issues []Issue `json:"issues"`
}

type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope wraps successful payloads: {"success": true, "data": ...}.
func Envelope(data any) gin.H {
	return gin.H{"success": true, "data": data}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Success: false, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortWithValidation(c *gin.Context, status int, err error, issues []Issue) {
	if err == nil {
		panic("AbortWithValidation: err cannot be nil")
	}

	resp := ValidationResponse{Code: "VALIDATION_ERROR", Issues: issues}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
