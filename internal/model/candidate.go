package model

// Tier is candidate recommendation level
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// Label return display name of the tier, empty for unknown tier
func (t Tier) Label() string {
	switch t {
	case TierA:
		return "Top Choice"
	case TierB:
		return "Strong Candidate"
	case TierC:
		return "Good Candidate"
	}
	return ""
}

// Stage is a column of the recruiter applicant tracker
type Stage string

const (
	StageApplicants Stage = "Applicants"
	StageInterview  Stage = "Interview"
	StageCaseStudy  Stage = "Case Study"
	StageOffer      Stage = "Offer"
)

// Stages list tracker columns in display order
var Stages = []Stage{StageApplicants, StageInterview, StageCaseStudy, StageOffer}

var (
	// VisibilityShow mark a record as listed
	VisibilityShow = "Show"
	// VisibilityHide mark a record as hidden from list
	VisibilityHide = "Hide"
	// InterviewStatus is the feedback status written once an interview is requested
	InterviewStatus = "Interview"
)

// Thumbnail is one resized variant of an attachment
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Thumbnails hold the small, large and full variants of an image attachment
type Thumbnails struct {
	Small *Thumbnail `json:"small,omitempty"`
	Large *Thumbnail `json:"large,omitempty"`
	Full  *Thumbnail `json:"full,omitempty"`
}

// Attachment is a file cell of the record store
type Attachment struct {
	ID         string      `json:"id"`
	URL        string      `json:"url"`
	Filename   string      `json:"filename"`
	Size       int         `json:"size"`
	Type       string      `json:"type"`
	Thumbnails *Thumbnails `json:"thumbnails,omitempty"`
}

// CandidateProfile is a candidate vetted for one order of a client
type CandidateProfile struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Headshot             []Attachment `json:"headshot"`
	CandidateType        string       `json:"candidate_type"`
	University           string       `json:"university"`
	ReviewRecommendation string       `json:"review_recommendation"`
	Tier                 Tier         `json:"recommendation_level"`
	TierLabel            string       `json:"recommendation_label"`
	Client               string       `json:"client"`
	OrderID              string       `json:"order_id"`
	Visibility           string       `json:"visibility"`
	Status               string       `json:"status,omitempty"`
	Stage                Stage        `json:"stage"`
	CandidateLink        []string     `json:"candidate_link,omitempty"`
	ClientLink           []string     `json:"client_link,omitempty"`
	Email                string       `json:"email,omitempty"`
}

// CandidateDetail is the full profile shown on candidate detail page
type CandidateDetail struct {
	CandidateProfile
	Phone             string       `json:"phone"`
	LinkedIn          string       `json:"linkedin"`
	Resume            []Attachment `json:"resume"`
	Major             string       `json:"major"`
	GraduationYear    string       `json:"graduation_year"`
	Commitments       string       `json:"commitments"`
	About             string       `json:"about"`
	OverallEvaluation string       `json:"overall_evaluation"`
	Qualities         string       `json:"qualities"`
	VideoInterviewURL string       `json:"video_interview_url"`
}
