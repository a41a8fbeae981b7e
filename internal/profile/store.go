// Package profile translate record store rows into typed job board profiles.
//
// It is the only package that knows table and cell names of the base, so services
// above it never build store queries themselves.
package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/recordstore"
)

// Store is the profile store adapter
type Store struct {
	records recordstore.Store
	log     *zap.Logger
}

// NewStore creates profile store over records
func NewStore(records recordstore.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{records: records, log: log}
}

// CandidatesByOrder return visible candidates of an order, in store order
func (s *Store) CandidatesByOrder(ctx context.Context, orderID string) ([]model.CandidateProfile, error) {
	recs, err := s.records.Select(ctx, TableCandidates, recordstore.Query{
		Filter: recordstore.And(
			recordstore.Eq(FieldOrderID, orderID),
			recordstore.Eq(FieldVisibility, model.VisibilityShow),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("list candidates of order %s: %w", orderID, err)
	}

	out := make([]model.CandidateProfile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.toCandidate(rec))
	}
	return out, nil
}

// Candidate return detail profile of a candidate record
func (s *Store) Candidate(ctx context.Context, id string) (model.CandidateDetail, error) {
	rec, err := s.records.Find(ctx, TableCandidates, id)
	if err != nil {
		return model.CandidateDetail{}, fmt.Errorf("find candidate %s: %w", id, err)
	}

	f := rec.Fields
	detail := model.CandidateDetail{
		CandidateProfile:  s.toCandidate(rec),
		Phone:             f.String(FieldPhone),
		LinkedIn:          f.String(FieldLinkedIn),
		Major:             f.String(FieldMajor),
		GraduationYear:    f.String(FieldGraduationYear),
		Commitments:       f.String(FieldCommitments),
		About:             f.String(FieldAbout),
		OverallEvaluation: f.String(FieldOverallEvaluation),
		Qualities:         f.String(FieldQualities),
		VideoInterviewURL: f.String(FieldVideoInterview),
	}
	if err := f.Decode(FieldResume, &detail.Resume); err != nil {
		s.log.Warn("malformed resume cell", zap.String("candidate", id), zap.Error(err))
	}
	return detail, nil
}

// HideCandidate set candidate visibility to Hide
func (s *Store) HideCandidate(ctx context.Context, id string) error {
	if _, err := s.records.Update(ctx, TableCandidates, id, recordstore.Fields{
		FieldVisibility: model.VisibilityHide,
	}); err != nil {
		return fmt.Errorf("hide candidate %s: %w", id, err)
	}
	return nil
}

func (s *Store) toCandidate(rec recordstore.Record) model.CandidateProfile {
	f := rec.Fields
	tier := model.Tier(f.String(FieldRecommendation))
	c := model.CandidateProfile{
		ID:                   rec.ID,
		Name:                 f.String(FieldCandidateName),
		CandidateType:        f.String(FieldCandidateType),
		University:           f.String(FieldUniversity),
		ReviewRecommendation: f.String(FieldReviewerRecommend),
		Tier:                 tier,
		TierLabel:            tier.Label(),
		Client:               f.String(FieldCompanyName),
		OrderID:              f.String(FieldOrderID),
		Visibility:           f.String(FieldVisibility),
		Stage:                model.StageApplicants,
		CandidateLink:        f.Strings(FieldCandidateLink),
		ClientLink:           f.Strings(FieldClientLink),
		Email:                f.String(FieldEmail),
	}
	if err := f.Decode(FieldHeadshot, &c.Headshot); err != nil {
		s.log.Warn("malformed headshot cell", zap.String("candidate", rec.ID), zap.Error(err))
	}
	if c.Headshot == nil {
		c.Headshot = []model.Attachment{}
	}
	return c
}

// FeedbackFor return the feedback record of ref, nil when none exist.
// The Candidate cell is matched against the name and every linked record id.
func (s *Store) FeedbackFor(ctx context.Context, ref model.FeedbackRef) (*model.Feedback, error) {
	recs, err := s.records.Select(ctx, TableFeedback, recordstore.Query{
		Filter: recordstore.And(
			recordstore.Or(
				recordstore.Eq(FieldCandidateLink, ref.CandidateName),
				recordstore.AnyOf(FieldCandidateLink, ref.CandidateLink),
			),
			recordstore.Eq(FieldOrderID, ref.OrderID),
		),
		MaxRecords: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("find feedback of %s in order %s: %w", ref.CandidateName, ref.OrderID, err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	fb := toFeedback(recs[0])
	fb.CandidateName = ref.CandidateName
	return &fb, nil
}

// CreateFeedback creates new feedback record
func (s *Store) CreateFeedback(ctx context.Context, fb model.Feedback) (model.Feedback, error) {
	rec, err := s.records.Create(ctx, TableFeedback, feedbackFields(fb))
	if err != nil {
		return model.Feedback{}, fmt.Errorf("create feedback: %w", err)
	}
	out := toFeedback(rec)
	out.CandidateName = fb.CandidateName
	return out, nil
}

// UpdateFeedback overwrite scheduling cells of feedback record id
func (s *Store) UpdateFeedback(ctx context.Context, id string, fb model.Feedback) (model.Feedback, error) {
	rec, err := s.records.Update(ctx, TableFeedback, id, feedbackFields(fb))
	if err != nil {
		return model.Feedback{}, fmt.Errorf("update feedback %s: %w", id, err)
	}
	out := toFeedback(rec)
	out.CandidateName = fb.CandidateName
	return out, nil
}

func feedbackFields(fb model.Feedback) recordstore.Fields {
	candidate := fb.CandidateLink
	if len(candidate) == 0 {
		candidate = []string{fb.CandidateName}
	}
	f := recordstore.Fields{
		FieldCalendly:        fb.CalendlyLink,
		FieldAvailability:    fb.Availability,
		FieldInterviewIntent: fb.Status,
		FieldOrderID:         fb.OrderID,
		FieldCandidateLink:   candidate,
	}
	if len(fb.ClientLink) > 0 {
		f[FieldClientLink] = fb.ClientLink
	}
	return f
}

func toFeedback(rec recordstore.Record) model.Feedback {
	f := rec.Fields
	return model.Feedback{
		ID:            rec.ID,
		OrderID:       f.String(FieldOrderID),
		CandidateLink: f.Strings(FieldCandidateLink),
		ClientLink:    f.Strings(FieldClientLink),
		CalendlyLink:  f.String(FieldCalendly),
		Availability:  f.String(FieldAvailability),
		Status:        f.String(FieldInterviewIntent),
	}
}

// CompanyExists report whether a client record is registered for email
func (s *Store) CompanyExists(ctx context.Context, email string) (bool, error) {
	recs, err := s.records.Select(ctx, TableClients, recordstore.Query{
		Filter:     recordstore.Eq(FieldEmail, email),
		MaxRecords: 1,
	})
	if err != nil {
		return false, fmt.Errorf("find company of %s: %w", email, err)
	}
	return len(recs) > 0, nil
}

// CreateCompany creates client record
func (s *Store) CreateCompany(ctx context.Context, c model.Company) (model.Company, error) {
	rec, err := s.records.Create(ctx, TableClients, recordstore.Fields{
		FieldName:                  c.Name,
		FieldEmail:                 c.Email,
		FieldType:                  c.Type,
		FieldWebsite:               c.Website,
		FieldCompanyLinkedin:       c.Linkedin,
		FieldBasedState:            c.State,
		FieldBasedCity:             c.City,
		FieldPrimaryRecruiterName:  c.PrimaryRecruiterName,
		FieldPrimaryRecruiterEmail: c.PrimaryRecruiterEmail,
		FieldCompanyDescription:    c.Description,
		FieldLogo:                  c.Logo,
	})
	if err != nil {
		return model.Company{}, fmt.Errorf("create company: %w", err)
	}
	c.ID = rec.ID
	return c, nil
}

// HasIntake report whether email filled the intake form stored in table
func (s *Store) HasIntake(ctx context.Context, table, email string) (bool, error) {
	recs, err := s.records.Select(ctx, table, recordstore.Query{
		Filter:     recordstore.Eq(FieldEmail, email),
		MaxRecords: 1,
	})
	if err != nil {
		return false, fmt.Errorf("find %s intake of %s: %w", table, email, err)
	}
	return len(recs) > 0, nil
}

// CreateJobPosting creates job posting record
func (s *Store) CreateJobPosting(ctx context.Context, p model.JobPosting) (model.JobPosting, error) {
	f := jobPostingFields(p)
	f[FieldStatus] = p.Status
	f[FieldPosterName] = p.PosterName
	f[FieldEmail] = p.PosterEmail
	f[FieldPosterRole] = p.PosterRole
	f[FieldVisibility] = p.Visibility

	rec, err := s.records.Create(ctx, TableJobPostings, f)
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("create job posting: %w", err)
	}
	return toJobPosting(rec), nil
}

// JobPosting return job posting record id
func (s *Store) JobPosting(ctx context.Context, id string) (model.JobPosting, error) {
	rec, err := s.records.Find(ctx, TableJobPostings, id)
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("find job posting %s: %w", id, err)
	}
	return toJobPosting(rec), nil
}

// JobPostingsByOwner return postings created by email, most recently updated first
func (s *Store) JobPostingsByOwner(ctx context.Context, email string) ([]model.JobPosting, error) {
	return s.selectJobPostings(ctx, recordstore.Eq(FieldEmail, email))
}

// ApprovedJobPostings return visible approved postings matching filter, most recently updated first
func (s *Store) ApprovedJobPostings(ctx context.Context, filter model.JobBoardFilter) ([]model.JobPosting, error) {
	conds := []recordstore.Filter{
		recordstore.Eq(FieldStatus, model.JobStatusApproved),
		recordstore.Eq(FieldVisibility, model.VisibilityShow),
		recordstore.AnyOf(FieldWorkType, filter.WorkTypes),
		recordstore.AnyOf(FieldCompensation, filter.PaymentTypes),
	}
	if filter.Keyword != "" {
		conds = append(conds, recordstore.Contains(FieldJobTitle, filter.Keyword))
	}
	if len(filter.JobTypes) > 0 {
		has := make([]recordstore.Filter, 0, len(filter.JobTypes))
		for _, jt := range filter.JobTypes {
			has = append(has, recordstore.Has(FieldJobType, jt))
		}
		conds = append(conds, recordstore.Or(has...))
	}
	if filter.Category != "" {
		conds = append(conds, recordstore.Has(FieldJobType, filter.Category))
	}
	return s.selectJobPostings(ctx, recordstore.And(conds...))
}

func (s *Store) selectJobPostings(ctx context.Context, filter recordstore.Filter) ([]model.JobPosting, error) {
	recs, err := s.records.Select(ctx, TableJobPostings, recordstore.Query{
		Filter: filter,
		Sort:   []recordstore.Sort{{Field: FieldUpdatedAt, Desc: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	out := make([]model.JobPosting, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toJobPosting(rec))
	}
	return out, nil
}

// UpdateJobPosting overwrite the editable cells of posting id
func (s *Store) UpdateJobPosting(ctx context.Context, id string, p model.JobPosting) (model.JobPosting, error) {
	rec, err := s.records.Update(ctx, TableJobPostings, id, jobPostingFields(p))
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("update job posting %s: %w", id, err)
	}
	return toJobPosting(rec), nil
}

// SetJobPostingVisibility set Show/Hide of posting id
func (s *Store) SetJobPostingVisibility(ctx context.Context, id string, visibility string) (model.JobPosting, error) {
	rec, err := s.records.Update(ctx, TableJobPostings, id, recordstore.Fields{FieldVisibility: visibility})
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("set visibility of job posting %s: %w", id, err)
	}
	return toJobPosting(rec), nil
}

// DeleteJobPosting destroy posting id
func (s *Store) DeleteJobPosting(ctx context.Context, id string) error {
	if err := s.records.Destroy(ctx, TableJobPostings, id); err != nil {
		return fmt.Errorf("delete job posting %s: %w", id, err)
	}
	return nil
}

func jobPostingFields(p model.JobPosting) recordstore.Fields {
	jobType := p.JobType
	if jobType == nil {
		jobType = []string{}
	}
	return recordstore.Fields{
		FieldJobTitle:     p.Title,
		FieldStartDate:    p.StartDate,
		FieldEndDate:      p.EndDate,
		FieldWorkType:     p.WorkType,
		FieldHoursPerWeek: p.HoursPerWeek,
		FieldCompensation: p.Compensation,
		FieldJobType:      jobType,
		FieldDescription:  p.Description,
		FieldATS:          p.ATS,
		FieldExternalLink: p.ExternalLink,
		FieldContactEmail: p.ContactEmail,
	}
}

func toJobPosting(rec recordstore.Record) model.JobPosting {
	f := rec.Fields
	p := model.JobPosting{
		ID:           rec.ID,
		Title:        f.String(FieldJobTitle),
		StartDate:    f.String(FieldStartDate),
		EndDate:      f.String(FieldEndDate),
		WorkType:     f.String(FieldWorkType),
		HoursPerWeek: f.Int(FieldHoursPerWeek),
		Compensation: f.String(FieldCompensation),
		JobType:      f.Strings(FieldJobType),
		Description:  f.String(FieldDescription),
		ATS:          f.String(FieldATS),
		ExternalLink: f.String(FieldExternalLink),
		ContactEmail: f.String(FieldContactEmail),
		Status:       f.String(FieldStatus),
		PosterName:   f.String(FieldPosterName),
		PosterEmail:  f.String(FieldEmail),
		PosterRole:   f.String(FieldPosterRole),
		Visibility:   f.String(FieldVisibility),
	}
	if p.JobType == nil {
		p.JobType = []string{}
	}
	if ts := f.String(FieldUpdatedAt); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			p.UpdatedAt = &t
		}
	}
	return p
}
