package model

// Company is the client record created by recruiter onboarding
type Company struct {
	ID                    string `json:"id"`
	Name                  string `json:"name" binding:"required"`
	Email                 string `json:"email"`
	Type                  string `json:"type" binding:"required"`
	Website               string `json:"website" binding:"omitempty,url"`
	Linkedin              string `json:"linkedin" binding:"omitempty,url"`
	State                 string `json:"based_state"`
	City                  string `json:"based_city"`
	PrimaryRecruiterName  string `json:"primary_recruiter_name"`
	PrimaryRecruiterEmail string `json:"primary_recruiter_email" binding:"omitempty,email"`
	Description           string `json:"description"`
	Logo                  string `json:"logo"`
}
