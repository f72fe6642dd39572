package handler

import (
	"net/http"

	sharedError "github.com/changhyeonkim/member-registry/internal/shared/error"
	"github.com/changhyeonkim/member-registry/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req MemberRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

// BindURI binds path parameters (e.g. :id) the same way BindJSON binds bodies
func BindURI(c *gin.Context, obj any) bool {
	if err := c.ShouldBindUri(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func respondBindError(c *gin.Context, err error) {
	// Add error to context for middleware logging
	c.Error(err)

	if resp, ok := validator.ToErrorResponse(err); ok {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	// JSON parsing error or other binding errors
	c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	c.JSON(errResp.Status, errResp)
}
