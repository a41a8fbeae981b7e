package model

import "time"

var (
	// MethodInternalATS let candidate apply through the job board tracker
	MethodInternalATS = "Use Our Internal Applicant Tracking System"
	// MethodExternalLink send candidate to an external application page
	MethodExternalLink = "Input External Link"
	// MethodEmail let candidate apply by email to the client contact
	MethodEmail = "Receive Email From Candidates"

	// ApplicationMethods list every accepted application method
	ApplicationMethods = []string{MethodInternalATS, MethodExternalLink, MethodEmail}

	// WorkTypes list accepted Remote/In person values
	WorkTypes = []string{"Remote", "In person"}
	// PaymentTypes list accepted Paid/Unpaid values
	PaymentTypes = []string{"Paid", "Unpaid"}
	// JobTypes list accepted role types
	JobTypes = []string{"Internship", "Full-time"}

	// JobStatusNotApproved is the status of every newly created job posting
	JobStatusNotApproved = "Not approved"
	// JobStatusApproved is set externally once a posting is reviewed
	JobStatusApproved = "Approved"
)

// DateLayout is the date format of job posting timeline cells
const DateLayout = "01/02/2006"

// JobPostForm is the accumulated input of the job posting wizard.
// The validate tags are checked by the wizard, not by request binding, so a partial draft can be saved.
type JobPostForm struct {
	Title           string   `json:"title" validate:"required,max=200"`
	StartDate       string   `json:"start_date" validate:"required,datetime=01/02/2006"`
	EndDate         string   `json:"end_date" validate:"required,datetime=01/02/2006"`
	WorkType        string   `json:"work_type" validate:"required"`
	HoursPerWeek    int      `json:"hours_per_week" validate:"required,gt=0,lte=168"`
	Compensation    string   `json:"compensation" validate:"required"`
	JobType         []string `json:"job_type" validate:"required,min=1"`
	Description     string   `json:"description" validate:"required"`
	ApplicationMode string   `json:"application_method" validate:"required"`
	ExternalLink    string   `json:"external_link" validate:"omitempty,url"`
	ContactEmail    string   `json:"contact_email" validate:"omitempty,email"`
}

// JobPosting is a job posting record
type JobPosting struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	WorkType     string     `json:"work_type"`
	HoursPerWeek int        `json:"hours_per_week"`
	Compensation string     `json:"compensation"`
	JobType      []string   `json:"job_type"`
	Description  string     `json:"description"`
	Excerpt      string     `json:"excerpt,omitempty"`
	ATS          string     `json:"application_method"`
	ExternalLink string     `json:"external_link"`
	ContactEmail string     `json:"contact_email"`
	Status       string     `json:"status"`
	PosterName   string     `json:"poster_name"`
	PosterEmail  string     `json:"poster_email"`
	PosterRole   string     `json:"poster_role"`
	Visibility   string     `json:"visibility"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// JobBoardFilter narrows the public job board
type JobBoardFilter struct {
	Keyword      string
	WorkTypes    []string
	PaymentTypes []string
	JobTypes     []string
	Category     string
	Page         int
}

// JobBoardPage is one page of the public job board
type JobBoardPage struct {
	Jobs        []JobPosting `json:"jobs"`
	Page        int          `json:"page"`
	TotalPages  int          `json:"total_pages"`
	HasNextPage bool         `json:"has_next_page"`
}
