// Package onboarding decide where a user lands after sign in and register recruiter companies.
package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"jobboard-backend/internal/model"
)

// companyLookupTimeout bound a shared company query once detached from its first caller
const companyLookupTimeout = 10 * time.Second

// Destinations a signed in user can be sent to
const (
	DestRecruiterOnboarding = "/onboarding/recruiter"
	DestRecruiterJobs       = "/recruiter/jobs"
	DestJobseekerDashboard  = "/dashboard/overview"
)

var (
	// ErrNotAuthenticated is returned when no identity is present
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUnknownRole is returned for an identity whose role has no destination
	ErrUnknownRole = errors.New("unknown role")
	// ErrCompanyExists is returned when the recruiter already registered a company
	ErrCompanyExists = errors.New("company already registered for this email")
	// ErrNotRecruiter is returned when a non recruiter tries to register a company
	ErrNotRecruiter = errors.New("only recruiters can register a company")
)

// Companies is the part of the profile store used by onboarding
type Companies interface {
	CompanyExists(ctx context.Context, email string) (bool, error)
	CreateCompany(ctx context.Context, c model.Company) (model.Company, error)
}

// Destination is where the client should navigate
type Destination struct {
	Path string `json:"destination"`
	Role string `json:"role"`
}

// Service is the role based onboarding router
type Service struct {
	companies Companies
	group     singleflight.Group
	log       *zap.Logger
}

// NewService creates onboarding Service
func NewService(companies Companies, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{companies: companies, log: log}
}

// Destination resolve landing page of identity. Concurrent lookups for the same
// recruiter share one store query.
func (s *Service) Destination(ctx context.Context, id *model.Identity) (Destination, error) {
	if id == nil {
		return Destination{}, ErrNotAuthenticated
	}

	switch id.Role {
	case model.RoleJobseeker:
		return Destination{Path: DestJobseekerDashboard, Role: id.Role}, nil
	case model.RoleRecruiter:
	default:
		return Destination{}, ErrUnknownRole
	}

	email := strings.ToLower(strings.TrimSpace(id.Email))
	// the query outlives any single caller, each caller waits on its own ctx
	ch := s.group.DoChan(email, func() (interface{}, error) {
		qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), companyLookupTimeout)
		defer cancel()
		return s.companies.CompanyExists(qctx, id.Email)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return Destination{}, ctx.Err()
	}
	if res.Err != nil {
		s.log.Error("failed to check recruiter company", zap.String("email", id.Email), zap.Error(res.Err))
		return Destination{}, res.Err
	}
	if res.Shared {
		s.log.Debug("company check shared with in-flight request", zap.String("email", id.Email))
	}

	if res.Val.(bool) {
		return Destination{Path: DestRecruiterJobs, Role: id.Role}, nil
	}
	return Destination{Path: DestRecruiterOnboarding, Role: id.Role}, nil
}

// CreateCompany register the recruiter's company and return the next destination
func (s *Service) CreateCompany(ctx context.Context, id *model.Identity, c model.Company) (model.Company, Destination, error) {
	if id == nil {
		return model.Company{}, Destination{}, ErrNotAuthenticated
	}
	if !id.IsRecruiter() {
		return model.Company{}, Destination{}, ErrNotRecruiter
	}

	exists, err := s.companies.CompanyExists(ctx, id.Email)
	if err != nil {
		return model.Company{}, Destination{}, err
	}
	if exists {
		return model.Company{}, Destination{}, ErrCompanyExists
	}

	c.Email = id.Email
	if c.PrimaryRecruiterEmail == "" {
		c.PrimaryRecruiterEmail = id.Email
	}
	if c.PrimaryRecruiterName == "" {
		c.PrimaryRecruiterName = id.DisplayName
	}
	created, err := s.companies.CreateCompany(ctx, c)
	if err != nil {
		return model.Company{}, Destination{}, err
	}
	s.log.Info("company registered", zap.String("email", id.Email), zap.String("company", created.ID))
	return created, Destination{Path: DestRecruiterJobs, Role: id.Role}, nil
}
