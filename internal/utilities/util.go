// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/model"
)

// IdentityKey is the gin context key of the authenticated identity
const IdentityKey = "identity"

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 422 when form fields are rejected
type ValidationErrorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"field_errors"`
}

// ExtractIdentity extracts the authenticated identity from Gin context.
// It does not abort the request; it returns an error when missing or invalid.
func ExtractIdentity(c *gin.Context) (*model.Identity, error) {
	v, _ := c.Get(IdentityKey)
	if v == nil {
		return nil, errors.New("identity not provided")
	}

	id, ok := v.(*model.Identity)
	if !ok {
		return nil, errors.New("failed to assert identity type")
	}
	return id, nil
}
