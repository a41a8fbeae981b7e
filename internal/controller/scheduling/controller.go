// Package scheduling provides HTTP handlers for the interview scheduling form.
package scheduling

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/controller"
	svc "jobboard-backend/internal/scheduling"
	"jobboard-backend/internal/utilities"
)

// SchedulingController handles the scheduling form
type SchedulingController struct {
	Service *svc.Service
	Log     *zap.Logger
}

// NewSchedulingController creates a new instance of SchedulingController
func NewSchedulingController(service *svc.Service, log *zap.Logger) *SchedulingController {
	if log == nil {
		log = zap.NewNop()
	}
	return &SchedulingController{Service: service, Log: log}
}

// SubmitFailedResponse is returned when the feedback record could not be written.
// Input echo the submitted values so the form keeps them.
type SubmitFailedResponse struct {
	Error string    `json:"error"`
	Input svc.Input `json:"input"`
}

// GetSchedule load the scheduling form of a candidate
// @Summary Get scheduling form
// @Description Return earlier Calendly link and availability of the candidate in this order, if any
// @Tags Scheduling
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param order_id path string true "Order ID"
// @Param candidate_id path string true "Candidate record ID"
// @Success 200 {object} svc.Form
// @Failure 404 {object} utilities.ErrorResponse "Candidate not in order"
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /orders/{order_id}/candidates/{candidate_id}/schedule [get]
func (sc *SchedulingController) GetSchedule(c *gin.Context) {
	orderID, ok := controller.ParamOrAbort(c, "order_id")
	if !ok {
		return
	}
	candidateID, ok := controller.ParamOrAbort(c, "candidate_id")
	if !ok {
		return
	}

	form, err := sc.Service.Prefill(c.Request.Context(), candidateID, orderID)
	if errors.Is(err, svc.ErrNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		controller.RespondStoreError(c, sc.Log, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// SubmitSchedule request an interview with the candidate
// @Summary Submit scheduling form
// @Description Provide a Calendly link, availability slots (MM/DD/YYYY HH:MM AM/PM ET, one per line) or both.
// @Description Submitting again for the same candidate and order updates the earlier request.
// @Tags Scheduling
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param order_id path string true "Order ID"
// @Param candidate_id path string true "Candidate record ID"
// @Param body body svc.Input true "Scheduling form"
// @Success 200 {object} model.Feedback
// @Failure 400 {object} utilities.ErrorResponse "Malformed body"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not in order"
// @Failure 409 {object} utilities.ErrorResponse "Another submission in progress"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid form fields"
// @Failure 502 {object} SubmitFailedResponse "Profile store failure"
// @Router /orders/{order_id}/candidates/{candidate_id}/schedule [put]
func (sc *SchedulingController) SubmitSchedule(c *gin.Context) {
	orderID, ok := controller.ParamOrAbort(c, "order_id")
	if !ok {
		return
	}
	candidateID, ok := controller.ParamOrAbort(c, "candidate_id")
	if !ok {
		return
	}

	var in svc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	fb, err := sc.Service.Submit(c.Request.Context(), candidateID, orderID, in)
	var verr *svc.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, fb)
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, utilities.ValidationErrorResponse{
			Error:       "Please fix the highlighted fields",
			FieldErrors: verr.Fields,
		})
	case errors.Is(err, svc.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
	case errors.Is(err, cache.ErrLockTimeout):
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Another submission for this candidate is in progress, please try again"})
	default:
		sc.Log.Error("failed to save interview request",
			zap.String("candidate", candidateID), zap.String("order", orderID), zap.Error(err))
		c.JSON(http.StatusBadGateway, SubmitFailedResponse{
			Error: "Failed to submit interview request, please try again",
			Input: in,
		})
	}
}
