package api

import "github.com/gin-gonic/gin"

// ErrorsResponse is the failure body every endpoint emits: a flat array of
// human-readable messages for the caller to surface inline.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func respondErrors(c *gin.Context, status int, msgs ...string) {
	c.JSON(status, ErrorsResponse{Errors: msgs})
}
