// Package scheduling handle the interview request a recruiter sends to a candidate.
//
// A request is stored as one feedback record per (candidate, order). Submitting the
// form again updates that record instead of creating a second one.
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/metrics"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/recordstore"
)

// ErrNotFound is returned when the candidate does not exist in the order
var ErrNotFound = errors.New("candidate not found in order")

// Profiles is the part of the profile store used by scheduling
type Profiles interface {
	Candidate(ctx context.Context, id string) (model.CandidateDetail, error)
	FeedbackFor(ctx context.Context, ref model.FeedbackRef) (*model.Feedback, error)
	CreateFeedback(ctx context.Context, fb model.Feedback) (model.Feedback, error)
	UpdateFeedback(ctx context.Context, id string, fb model.Feedback) (model.Feedback, error)
}

// Form is the scheduling form as loaded for a candidate
type Form struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	OrderID       string `json:"order_id"`
	RecordID      string `json:"record_id,omitempty"`
	Existing      bool   `json:"existing"`
	Input
}

// Service serve the scheduling form
type Service struct {
	profiles Profiles
	locker   cache.Locker
	log      *zap.Logger
}

// NewService creates scheduling Service
func NewService(profiles Profiles, locker cache.Locker, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{profiles: profiles, locker: locker, log: log}
}

func (s *Service) candidateInOrder(ctx context.Context, candidateID, orderID string) (model.CandidateDetail, error) {
	if strings.TrimSpace(candidateID) == "" || strings.TrimSpace(orderID) == "" {
		return model.CandidateDetail{}, ErrNotFound
	}
	c, err := s.profiles.Candidate(ctx, candidateID)
	if errors.Is(err, recordstore.ErrNotFound) {
		return model.CandidateDetail{}, ErrNotFound
	}
	if err != nil {
		return model.CandidateDetail{}, err
	}
	if c.OrderID != orderID {
		return model.CandidateDetail{}, ErrNotFound
	}
	return c, nil
}

// Prefill load the form with the values of an earlier request, if any
func (s *Service) Prefill(ctx context.Context, candidateID, orderID string) (Form, error) {
	c, err := s.candidateInOrder(ctx, candidateID, orderID)
	if err != nil {
		return Form{}, err
	}

	form := Form{CandidateID: c.ID, CandidateName: c.Name, OrderID: orderID}
	ref := model.RefOf(c.CandidateProfile)
	fb, err := s.profiles.FeedbackFor(ctx, ref)
	if err != nil {
		return Form{}, err
	}
	if fb != nil {
		form.Existing = true
		form.RecordID = fb.ID
		form.CalendlyLink = fb.CalendlyLink
		form.Availability = fb.Availability
	}
	return form, nil
}

// Submit validate input and write it to the feedback record of the pair,
// creating the record on first submission.
func (s *Service) Submit(ctx context.Context, candidateID, orderID string, in Input) (model.Feedback, error) {
	in.CalendlyLink = strings.TrimSpace(in.CalendlyLink)
	if errs := Validate(in); errs != nil {
		return model.Feedback{}, &ValidationError{Fields: errs}
	}

	c, err := s.candidateInOrder(ctx, candidateID, orderID)
	if err != nil {
		return model.Feedback{}, err
	}

	unlock, err := s.locker.Lock(ctx, "schedule:"+c.Name+":"+orderID)
	if err != nil {
		return model.Feedback{}, err
	}
	defer unlock()

	fb := model.Feedback{
		CandidateName: c.Name,
		OrderID:       orderID,
		CandidateLink: c.CandidateLink,
		ClientLink:    c.ClientLink,
		CalendlyLink:  in.CalendlyLink,
		Availability:  in.Availability,
		Status:        model.InterviewStatus,
	}

	ref := model.RefOf(c.CandidateProfile)
	existing, err := s.profiles.FeedbackFor(ctx, ref)
	if err != nil {
		return model.Feedback{}, err
	}
	if existing != nil {
		return s.update(ctx, existing.ID, fb)
	}

	created, err := s.profiles.CreateFeedback(ctx, fb)
	if errors.Is(err, recordstore.ErrConflict) {
		s.log.Info("feedback created concurrently, updating instead",
			zap.String("candidate", c.ID), zap.String("order", orderID))
		existing, err = s.profiles.FeedbackFor(ctx, ref)
		if err != nil {
			return model.Feedback{}, err
		}
		if existing == nil {
			return model.Feedback{}, fmt.Errorf("feedback of %s in order %s: %w", c.Name, orderID, recordstore.ErrConflict)
		}
		return s.update(ctx, existing.ID, fb)
	}
	if err != nil {
		return model.Feedback{}, err
	}
	metrics.SchedulingSubmissions.WithLabelValues("create").Inc()
	return created, nil
}

func (s *Service) update(ctx context.Context, id string, fb model.Feedback) (model.Feedback, error) {
	out, err := s.profiles.UpdateFeedback(ctx, id, fb)
	if err != nil {
		return model.Feedback{}, err
	}
	metrics.SchedulingSubmissions.WithLabelValues("update").Inc()
	return out, nil
}
