package jobpost

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/controller"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/utilities"
)

// VisibilityRequest show or hide a posting
type VisibilityRequest struct {
	Show *bool `json:"show" binding:"required"`
}

// CreatePosting create a posting in one request, without the wizard
// @Summary Create job posting
// @Tags Job Posting
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param body body model.JobPostForm true "Complete job posting form"
// @Success 201 {object} model.JobPosting
// @Failure 403 {object} utilities.ErrorResponse "Not a recruiter"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid form fields"
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /jobposts [post]
func (jc *JobPostController) CreatePosting(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	var form model.JobPostForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	p, err := jc.Postings.Create(c.Request.Context(), id, form)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListMyPostings list postings created by the caller
// @Summary List my job postings
// @Tags Job Posting
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.JobPosting
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /jobposts [get]
func (jc *JobPostController) ListMyPostings(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	posts, err := jc.Postings.ListMine(c.Request.Context(), id.Email)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// EditPosting replace the editable fields of a posting
// @Summary Edit job posting
// @Tags Job Posting
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job posting ID"
// @Param body body model.JobPostForm true "Complete job posting form"
// @Success 200 {object} model.JobPosting
// @Failure 404 {object} utilities.ErrorResponse "Posting not found"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid form fields"
// @Router /jobposts/{id} [patch]
func (jc *JobPostController) EditPosting(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	postingID, ok := controller.ParamOrAbort(c, "id")
	if !ok {
		return
	}
	var form model.JobPostForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	p, err := jc.Postings.Edit(c.Request.Context(), id, postingID, form)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetVisibility show or hide a posting on the job board
// @Summary Show or hide job posting
// @Tags Job Posting
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job posting ID"
// @Param body body VisibilityRequest true "Visibility"
// @Success 200 {object} model.JobPosting
// @Failure 404 {object} utilities.ErrorResponse "Posting not found"
// @Router /jobposts/{id}/visibility [put]
func (jc *JobPostController) SetVisibility(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	postingID, ok := controller.ParamOrAbort(c, "id")
	if !ok {
		return
	}
	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	p, err := jc.Postings.SetVisibility(c.Request.Context(), id, postingID, *req.Show)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePosting delete a posting, confirm=true is required
// @Summary Delete job posting
// @Tags Job Posting
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job posting ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Delete not confirmed"
// @Failure 404 {object} utilities.ErrorResponse "Posting not found"
// @Router /jobposts/{id} [delete]
func (jc *JobPostController) DeletePosting(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	postingID, ok := controller.ParamOrAbort(c, "id")
	if !ok {
		return
	}
	confirm, _ := strconv.ParseBool(c.Query("confirm"))
	if err := jc.Postings.Delete(c.Request.Context(), id, postingID, confirm); err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job posting deleted"})
}
