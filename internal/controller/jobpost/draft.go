package jobpost

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/controller"
	svc "jobboard-backend/internal/jobpost"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/utilities"
)

// StepFailedResponse is returned when the current step has invalid fields.
// Draft is unchanged and still on the failing step.
type StepFailedResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"field_errors"`
	Draft       svc.Draft         `json:"draft"`
}

// StartDraft open a new job posting wizard
// @Summary Start job posting draft
// @Tags Job Posting Wizard
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 201 {object} svc.Draft "New draft on the Basic Information step"
// @Failure 403 {object} utilities.ErrorResponse "Not a recruiter"
// @Router /jobposts/drafts [post]
func (jc *JobPostController) StartDraft(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	d, err := jc.Wizard.Start(c.Request.Context(), id)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GetDraft return a draft of the caller
// @Summary Get job posting draft
// @Tags Job Posting Wizard
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} svc.Draft
// @Failure 404 {object} utilities.ErrorResponse "Draft not found or expired"
// @Router /jobposts/drafts/{draft_id} [get]
func (jc *JobPostController) GetDraft(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	draftID, ok := controller.ParamOrAbort(c, "draft_id")
	if !ok {
		return
	}
	d, err := jc.Wizard.Get(c.Request.Context(), id, draftID)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// UpdateDraft save the accumulated form of a draft without validation
// @Summary Save job posting draft
// @Description The whole form is replaced. Fields are validated when moving to the next step.
// @Tags Job Posting Wizard
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param draft_id path string true "Draft ID"
// @Param body body model.JobPostForm true "Form values"
// @Success 200 {object} svc.Draft
// @Failure 400 {object} utilities.ErrorResponse "Malformed body"
// @Failure 404 {object} utilities.ErrorResponse "Draft not found or expired"
// @Router /jobposts/drafts/{draft_id} [patch]
func (jc *JobPostController) UpdateDraft(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	draftID, ok := controller.ParamOrAbort(c, "draft_id")
	if !ok {
		return
	}
	var form model.JobPostForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	d, err := jc.Wizard.Update(c.Request.Context(), id, draftID, form)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// NextStep validate the current step and advance the draft
// @Summary Go to next wizard step
// @Tags Job Posting Wizard
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} svc.Draft
// @Failure 400 {object} utilities.ErrorResponse "Already on the last step"
// @Failure 404 {object} utilities.ErrorResponse "Draft not found or expired"
// @Failure 422 {object} StepFailedResponse "Current step has invalid fields"
// @Router /jobposts/drafts/{draft_id}/next [post]
func (jc *JobPostController) NextStep(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	draftID, ok := controller.ParamOrAbort(c, "draft_id")
	if !ok {
		return
	}
	d, err := jc.Wizard.Next(c.Request.Context(), id, draftID)
	var verr *svc.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, StepFailedResponse{
			Error:       "Please complete the required fields before continuing",
			FieldErrors: verr.Fields,
			Draft:       d,
		})
		return
	}
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// PreviousStep move the draft back one step, keeping entered values
// @Summary Go to previous wizard step
// @Tags Job Posting Wizard
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} svc.Draft
// @Failure 400 {object} utilities.ErrorResponse "Already on the first step"
// @Failure 404 {object} utilities.ErrorResponse "Draft not found or expired"
// @Router /jobposts/drafts/{draft_id}/back [post]
func (jc *JobPostController) PreviousStep(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	draftID, ok := controller.ParamOrAbort(c, "draft_id")
	if !ok {
		return
	}
	d, err := jc.Wizard.Back(c.Request.Context(), id, draftID)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// SubmitDraft create the job posting from a completed draft
// @Summary Submit job posting draft
// @Description The posting is created with status "Not approved" and shown once approved.
// @Tags Job Posting Wizard
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param draft_id path string true "Draft ID"
// @Success 201 {object} model.JobPosting
// @Failure 400 {object} utilities.ErrorResponse "Draft is not on the last step"
// @Failure 404 {object} utilities.ErrorResponse "Draft not found or expired"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid form fields"
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure, draft is kept"
// @Router /jobposts/drafts/{draft_id}/submit [post]
func (jc *JobPostController) SubmitDraft(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	draftID, ok := controller.ParamOrAbort(c, "draft_id")
	if !ok {
		return
	}
	p, err := jc.Wizard.Submit(c.Request.Context(), id, draftID)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}
