// Package candidate implement the recruiter candidate list: ranking, status lookup,
// single card expansion and decline.
package candidate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/recordstore"
)

var (
	// ErrMissingOrder is returned when no order id is given
	ErrMissingOrder = errors.New("order id is required")
	// ErrNotFound is returned when the candidate does not exist in the order
	ErrNotFound = errors.New("candidate not found")
	// ErrInvalidIndex is returned for a negative card index
	ErrInvalidIndex = errors.New("card index must not be negative")
)

// EmptyMessage is shown when an order has no visible candidate
const EmptyMessage = "No candidates found for this order"

const statusLookupLimit = 4

// Profiles is the part of the profile store used by the candidate list
type Profiles interface {
	CandidatesByOrder(ctx context.Context, orderID string) ([]model.CandidateProfile, error)
	Candidate(ctx context.Context, id string) (model.CandidateDetail, error)
	HideCandidate(ctx context.Context, id string) error
	FeedbackFor(ctx context.Context, ref model.FeedbackRef) (*model.Feedback, error)
}

// List is the candidate list of one order as seen by one recruiter
type List struct {
	OrderID       string                   `json:"order_id"`
	Candidates    []model.CandidateProfile `json:"candidates"`
	ExpandedIndex *int                     `json:"expanded_index"`
	Message       string                   `json:"message,omitempty"`
}

// Service serve candidate list operations
type Service struct {
	profiles   Profiles
	expansions ExpansionStore
	policy     RankPolicy
	log        *zap.Logger
}

// NewService creates candidate Service
func NewService(profiles Profiles, expansions ExpansionStore, policy RankPolicy, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{profiles: profiles, expansions: expansions, policy: policy, log: log}
}

// List fetch visible candidates of order, attach interview status, rank them and
// restore the viewer's expanded card.
func (s *Service) List(ctx context.Context, viewer, orderID string) (List, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return List{}, ErrMissingOrder
	}

	candidates, err := s.profiles.CandidatesByOrder(ctx, orderID)
	if err != nil {
		return List{}, err
	}

	s.attachStatus(ctx, candidates)
	ranked := Rank(candidates, s.policy)

	list := List{OrderID: orderID, Candidates: ranked}
	if len(ranked) == 0 {
		list.Message = EmptyMessage
	}

	expanded, err := s.expansions.Get(ctx, expansionKey(viewer, orderID))
	if err != nil {
		s.log.Warn("failed to restore expanded card", zap.String("order", orderID), zap.Error(err))
	}
	if expanded != nil && *expanded < len(ranked) {
		list.ExpandedIndex = expanded
	}
	return list, nil
}

// attachStatus look up each candidate's feedback status. A failed lookup leaves the status empty.
func (s *Service) attachStatus(ctx context.Context, candidates []model.CandidateProfile) {
	var g errgroup.Group
	g.SetLimit(statusLookupLimit)
	for i := range candidates {
		c := &candidates[i]
		g.Go(func() error {
			fb, err := s.profiles.FeedbackFor(ctx, model.RefOf(*c))
			if err != nil {
				s.log.Warn("failed to fetch candidate status",
					zap.String("candidate", c.ID), zap.String("order", c.OrderID), zap.Error(err))
				return nil
			}
			if fb != nil {
				c.Status = fb.Status
				if fb.Status == model.InterviewStatus {
					c.Stage = model.StageInterview
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Expansion return the viewer's expanded card index of order
func (s *Service) Expansion(ctx context.Context, viewer, orderID string) (*int, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrMissingOrder
	}
	return s.expansions.Get(ctx, expansionKey(viewer, orderID))
}

// ToggleExpansion expand card index, or collapse it when it is already expanded
func (s *Service) ToggleExpansion(ctx context.Context, viewer, orderID string, index int) (*int, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrMissingOrder
	}
	if index < 0 {
		return nil, ErrInvalidIndex
	}
	key := expansionKey(viewer, orderID)
	current, err := s.expansions.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	next := Toggle(current, index)
	if err := s.expansions.Set(ctx, key, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Detail return full profile of a candidate
func (s *Service) Detail(ctx context.Context, candidateID string) (model.CandidateDetail, error) {
	detail, err := s.profiles.Candidate(ctx, candidateID)
	if errors.Is(err, recordstore.ErrNotFound) {
		return model.CandidateDetail{}, ErrNotFound
	}
	return detail, err
}

// Decline hide candidate from order, collapse the list and return the reloaded list
func (s *Service) Decline(ctx context.Context, viewer, orderID, candidateID string) (List, error) {
	if strings.TrimSpace(orderID) == "" {
		return List{}, ErrMissingOrder
	}

	detail, err := s.Detail(ctx, candidateID)
	if err != nil {
		return List{}, err
	}
	if detail.OrderID != orderID {
		return List{}, ErrNotFound
	}

	if err := s.profiles.HideCandidate(ctx, candidateID); err != nil {
		return List{}, fmt.Errorf("decline candidate: %w", err)
	}
	if err := s.expansions.Set(ctx, expansionKey(viewer, orderID), nil); err != nil {
		s.log.Warn("failed to collapse list after decline", zap.String("order", orderID), zap.Error(err))
	}
	return s.List(ctx, viewer, orderID)
}
