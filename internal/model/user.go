package model

var (
	// RoleRecruiter is role for company recruiters who post jobs and review candidates
	RoleRecruiter = "recruiter"
	// RoleJobseeker is role for students and job seekers
	RoleJobseeker = "jobseeker"
)

// Identity is the authenticated user as asserted by the identity provider token.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

// IsRecruiter report whether identity carry recruiter role
func (i Identity) IsRecruiter() bool {
	return i.Role == RoleRecruiter
}
