package profile

// Tables of the job board base
const (
	TableJobPostings = "Job Postings"
	TableClients     = "Job Board Clients"
	TableCandidates  = "Candidate-Client Profile"
	TableFeedback    = "Candidate-Client Feedback"
	TableInternship  = "Internship"
	TableFullTime    = "FT"
)

// Shared cells
const (
	FieldEmail      = "Email"
	FieldOrderID    = "Order ID"
	FieldVisibility = "Show/Hide"
	FieldUpdatedAt  = "Updated_at"
)

// Candidate-Client Profile cells
const (
	FieldCandidateName     = "Candidate Name"
	FieldHeadshot          = "Headshot"
	FieldCandidateType     = "Candidate Type Lookup"
	FieldUniversity        = "University Lookup"
	FieldReviewerRecommend = "Reviewer Recommendation Lookup"
	FieldCompanyName       = "Company Name"
	FieldRecommendation    = "Recommendation Level"
	FieldCandidateLink     = "Candidate"
	FieldClientLink        = "Client"
	FieldPhone             = "Phone"
	FieldLinkedIn          = "LinkedIn"
	FieldResume            = "Resume"
	FieldMajor             = "Major"
	FieldGraduationYear    = "Graduation Year"
	FieldCommitments       = "Spring/Summer Commitments"
	FieldAbout             = "About Yourself"
	FieldOverallEvaluation = "Overall Evaluation (to client)"
	FieldQualities         = "Candidate Qualities"
	FieldVideoInterview    = "Video Interview URL"
)

// Candidate-Client Feedback cells
const (
	FieldCalendly        = "Do you have a calendly invite we can include?"
	FieldAvailability    = "If you don't have any calendly link, please type availablity that we can share to student."
	FieldInterviewIntent = "Would you like to interview this candidate?"
)

// Job Postings cells
const (
	FieldJobTitle     = "Job Title"
	FieldStartDate    = "Ideal Start Date"
	FieldEndDate      = "Anticipated end date"
	FieldWorkType     = "Remote/In person"
	FieldHoursPerWeek = "Hours Per Week"
	FieldCompensation = "Paid/Unpaid"
	FieldJobType      = "Job Type"
	FieldDescription  = "Job Description"
	FieldATS          = "ATS"
	FieldExternalLink = "External Link"
	FieldContactEmail = "Client Contact Email"
	FieldStatus       = "Status"
	FieldPosterName   = "Name of Poster"
	FieldPosterRole   = "Role"
)

// Job Board Clients cells
const (
	FieldName                  = "Name"
	FieldType                  = "Type"
	FieldWebsite               = "Website"
	FieldCompanyLinkedin       = "Linkedin"
	FieldBasedState            = "Based_State"
	FieldBasedCity             = "Based_City"
	FieldPrimaryRecruiterName  = "Primary Recruiter Name"
	FieldPrimaryRecruiterEmail = "Primary Recruiter Email"
	FieldCompanyDescription    = "Description"
	FieldLogo                  = "Logo"
)

// FeedbackKey is the unique key of the feedback table
var FeedbackKey = []string{FieldCandidateLink, FieldOrderID}
