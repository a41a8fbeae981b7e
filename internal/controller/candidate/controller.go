// Package candidate provides HTTP handlers for the recruiter candidate list.
package candidate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	svc "jobboard-backend/internal/candidate"
	"jobboard-backend/internal/controller"
	"jobboard-backend/internal/utilities"
)

// CandidateController handles candidate list endpoints
type CandidateController struct {
	Service *svc.Service
	Log     *zap.Logger
}

// NewCandidateController creates a new instance of CandidateController
func NewCandidateController(service *svc.Service, log *zap.Logger) *CandidateController {
	return &CandidateController{Service: service, Log: log}
}

// ExpansionRequest select the card to toggle
type ExpansionRequest struct {
	Index *int `json:"index" binding:"required"`
}

// ExpansionResponse carry the expanded card index, null when every card is collapsed
type ExpansionResponse struct {
	OrderID       string `json:"order_id"`
	ExpandedIndex *int   `json:"expanded_index"`
}

func (cc *CandidateController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, svc.ErrMissingOrder), errors.Is(err, svc.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
	case errors.Is(err, svc.ErrInvalidIndex):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
	default:
		controller.RespondStoreError(c, cc.Log, err)
	}
}

// ListCandidates return ranked visible candidates of an order
// @Summary List candidates of an order
// @Description Candidates are ranked by recommendation tier and carry their interview status
// @Tags Candidate
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param order_id path string true "Order ID"
// @Success 200 {object} svc.List "Ranked candidates, empty list with message when the order has none"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as recruiter"
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /orders/{order_id}/candidates [get]
func (cc *CandidateController) ListCandidates(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	orderID, ok := controller.ParamOrAbort(c, "order_id")
	if !ok {
		return
	}

	list, err := cc.Service.List(c.Request.Context(), id.Email, orderID)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetExpansion return the expanded card of an order
// @Summary Get expanded candidate card
// @Tags Candidate
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param order_id path string true "Order ID"
// @Success 200 {object} ExpansionResponse
// @Failure 502 {object} utilities.ErrorResponse "State store failure"
// @Router /orders/{order_id}/expansion [get]
func (cc *CandidateController) GetExpansion(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	orderID, ok := controller.ParamOrAbort(c, "order_id")
	if !ok {
		return
	}

	idx, err := cc.Service.Expansion(c.Request.Context(), id.Email, orderID)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExpansionResponse{OrderID: orderID, ExpandedIndex: idx})
}

// ToggleExpansion expand a card, or collapse it when it is already expanded
// @Summary Toggle candidate card
// @Description Only one card of an order is expanded at a time
// @Tags Candidate
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param order_id path string true "Order ID"
// @Param body body ExpansionRequest true "Card index"
// @Success 200 {object} ExpansionResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid index"
// @Router /orders/{order_id}/expansion [post]
func (cc *CandidateController) ToggleExpansion(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	orderID, ok := controller.ParamOrAbort(c, "order_id")
	if !ok {
		return
	}

	var req ExpansionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	idx, err := cc.Service.ToggleExpansion(c.Request.Context(), id.Email, orderID, *req.Index)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExpansionResponse{OrderID: orderID, ExpandedIndex: idx})
}

// DeclineCandidate hide a candidate from the order and return the reloaded list
// @Summary Decline candidate
// @Tags Candidate
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param order_id path string true "Order ID"
// @Param candidate_id path string true "Candidate record ID"
// @Success 200 {object} svc.List "Reloaded list, every card collapsed"
// @Failure 404 {object} utilities.ErrorResponse "Candidate not in order"
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /orders/{order_id}/candidates/{candidate_id}/decline [post]
func (cc *CandidateController) DeclineCandidate(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	orderID, ok := controller.ParamOrAbort(c, "order_id")
	if !ok {
		return
	}
	candidateID, ok := controller.ParamOrAbort(c, "candidate_id")
	if !ok {
		return
	}

	list, err := cc.Service.Decline(c.Request.Context(), id.Email, orderID, candidateID)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetCandidate return full candidate profile
// @Summary Get candidate detail
// @Tags Candidate
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param candidate_id path string true "Candidate record ID"
// @Success 200 {object} model.CandidateDetail
// @Failure 404 {object} utilities.ErrorResponse "Candidate not found"
// @Router /candidates/{candidate_id} [get]
func (cc *CandidateController) GetCandidate(c *gin.Context) {
	candidateID, ok := controller.ParamOrAbort(c, "candidate_id")
	if !ok {
		return
	}

	detail, err := cc.Service.Detail(c.Request.Context(), candidateID)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
