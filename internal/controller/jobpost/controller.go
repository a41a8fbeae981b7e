// Package jobpost provides HTTP handlers for the job posting wizard, recruiter
// posting management and the public job board.
package jobpost

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard-backend/internal/controller"
	svc "jobboard-backend/internal/jobpost"
	"jobboard-backend/internal/utilities"
)

// JobPostController handles job posting endpoints
type JobPostController struct {
	Wizard   *svc.Wizard
	Postings *svc.Service
	Board    *svc.Board
	Log      *zap.Logger
}

// NewJobPostController creates a new instance of JobPostController
func NewJobPostController(wizard *svc.Wizard, postings *svc.Service, board *svc.Board, log *zap.Logger) *JobPostController {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobPostController{Wizard: wizard, Postings: postings, Board: board, Log: log}
}

func (jc *JobPostController) respondError(c *gin.Context, err error) {
	var verr *svc.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, utilities.ValidationErrorResponse{
			Error:       "Please fix the highlighted fields",
			FieldErrors: verr.Fields,
		})
	case errors.Is(err, svc.ErrForbidden):
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
	case errors.Is(err, svc.ErrNotFound), errors.Is(err, svc.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
	case errors.Is(err, svc.ErrFirstStep), errors.Is(err, svc.ErrLastStep),
		errors.Is(err, svc.ErrNotLastStep), errors.Is(err, svc.ErrConfirmRequired),
		errors.Is(err, svc.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
	default:
		controller.RespondStoreError(c, jc.Log, err)
	}
}
