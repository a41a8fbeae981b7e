// Package onboarding provides HTTP handlers for role based landing and recruiter company registration.
package onboarding

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard-backend/internal/controller"
	"jobboard-backend/internal/model"
	svc "jobboard-backend/internal/onboarding"
	"jobboard-backend/internal/utilities"
)

// OnboardingController handles onboarding endpoints
type OnboardingController struct {
	Service *svc.Service
	Log     *zap.Logger
}

// NewOnboardingController creates a new instance of OnboardingController
func NewOnboardingController(service *svc.Service, log *zap.Logger) *OnboardingController {
	return &OnboardingController{Service: service, Log: log}
}

// CompanyResponse is returned after a company is registered
type CompanyResponse struct {
	Company     model.Company   `json:"company"`
	Destination svc.Destination `json:"next"`
}

// GetDestination resolve where the signed in user should land
// @Summary Get onboarding destination
// @Description Jobseekers go to their dashboard. Recruiters go to the job list once their company is registered, otherwise to recruiter onboarding.
// @Tags Onboarding
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} svc.Destination
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Role has no destination"
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /onboarding/destination [get]
func (oc *OnboardingController) GetDestination(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}

	dest, err := oc.Service.Destination(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dest)
	case errors.Is(err, svc.ErrUnknownRole):
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
	default:
		controller.RespondStoreError(c, oc.Log, err)
	}
}

// CreateCompany register the recruiter's company
// @Summary Register company
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param body body model.Company true "Company information"
// @Success 201 {object} CompanyResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid body"
// @Failure 403 {object} utilities.ErrorResponse "Not a recruiter"
// @Failure 409 {object} utilities.ErrorResponse "Company already registered"
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /onboarding/company [post]
func (oc *OnboardingController) CreateCompany(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}

	var company model.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	created, dest, err := oc.Service.CreateCompany(c.Request.Context(), id, company)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, CompanyResponse{Company: created, Destination: dest})
	case errors.Is(err, svc.ErrNotRecruiter):
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
	case errors.Is(err, svc.ErrCompanyExists):
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: err.Error()})
	default:
		controller.RespondStoreError(c, oc.Log, err)
	}
}
