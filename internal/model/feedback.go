package model

// Feedback is the interview scheduling record of one candidate in one order
type Feedback struct {
	ID            string   `json:"id"`
	CandidateName string   `json:"candidate_name"`
	OrderID       string   `json:"order_id"`
	CandidateLink []string `json:"candidate_link,omitempty"`
	ClientLink    []string `json:"client_link,omitempty"`
	CalendlyLink  string   `json:"calendly_link"`
	Availability  string   `json:"availability"`
	Status        string   `json:"status"`
}

// FeedbackRef identify the feedback record of a candidate in an order.
// The Candidate cell holds either the candidate name or its linked record ids.
type FeedbackRef struct {
	CandidateName string
	CandidateLink []string
	OrderID       string
}

// RefOf build the feedback reference of candidate c in its order
func RefOf(c CandidateProfile) FeedbackRef {
	return FeedbackRef{CandidateName: c.Name, CandidateLink: c.CandidateLink, OrderID: c.OrderID}
}
