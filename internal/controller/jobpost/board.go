package jobpost

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/controller"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/utilities"
)

// CategoryResponse carry the jobseeker's preferred category, empty when no intake form was filled
type CategoryResponse struct {
	Category string `json:"category"`
}

// queryList accept both repeated (?k=a&k=b) and comma separated (?k=a,b) values
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ListJobs return one page of the public job board
// @Summary Browse job board
// @Description Approved and visible postings, most recently updated first
// @Tags Job Board
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param keyword query string false "Title keyword"
// @Param work_types query []string false "Remote, In person" collectionFormat(csv)
// @Param payment_types query []string false "Paid, Unpaid" collectionFormat(csv)
// @Param job_types query []string false "Internship, Full-time" collectionFormat(csv)
// @Param category query string false "Internship or Full-time"
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} model.JobBoardPage
// @Failure 400 {object} utilities.ErrorResponse "Invalid query"
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /jobs [get]
func (jc *JobPostController) ListJobs(c *gin.Context) {
	filter := model.JobBoardFilter{
		Keyword:      c.Query("keyword"),
		WorkTypes:    queryList(c, "work_types"),
		PaymentTypes: queryList(c, "payment_types"),
		JobTypes:     queryList(c, "job_types"),
		Category:     c.Query("category"),
		Page:         1,
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "page must be a positive number"})
			return
		}
		filter.Page = page
	}

	page, err := jc.Board.List(c.Request.Context(), filter)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// PreferredCategory return the job board category preselected for the jobseeker
// @Summary Get preferred job category
// @Tags Job Board
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} CategoryResponse
// @Failure 502 {object} utilities.ErrorResponse "Profile store failure"
// @Router /jobseeker/preferred-category [get]
func (jc *JobPostController) PreferredCategory(c *gin.Context) {
	id, ok := controller.Identity(c)
	if !ok {
		return
	}
	category, err := jc.Board.PreferredCategory(c.Request.Context(), id.Email)
	if err != nil {
		jc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CategoryResponse{Category: category})
}
