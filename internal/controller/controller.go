// Package controller hold helpers shared by the HTTP handlers of each domain
package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/recordstore"
	"jobboard-backend/internal/utilities"
)

// ParamOrAbort return the route parameter name, answering 404 when it is empty
func ParamOrAbort(c *gin.Context, name string) (string, bool) {
	v := c.Param(name)
	if v == "" {
		c.AbortWithStatusJSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Missing " + name})
		return "", false
	}
	return v, true
}

// RespondStoreError answer a failed profile store call: 404 for missing records,
// 504 when the request deadline passed, 502 for every other external failure.
func RespondStoreError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, recordstore.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Record not found"})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, utilities.ErrorResponse{Error: "Profile store did not respond in time"})
	default:
		if log != nil {
			log.Error("profile store call failed", zap.String("route", c.FullPath()), zap.Error(err))
		}
		c.JSON(http.StatusBadGateway, utilities.ErrorResponse{Error: "Failed to reach profile store, please try again"})
	}
}

// Identity return the authenticated identity, answering 401 when it is absent
func Identity(c *gin.Context) (*model.Identity, bool) {
	id, err := utilities.ExtractIdentity(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return id, true
}
