package onboarding

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/profile"
	"jobboard-backend/internal/recordstore"
)

func recruiter(email string) *model.Identity {
	return &model.Identity{ID: "u1", Email: email, Role: model.RoleRecruiter, DisplayName: "Rita"}
}

func TestDestination(t *testing.T) {
	mem := recordstore.NewMemoryStore()
	mem.Seed(profile.TableClients, recordstore.Fields{profile.FieldEmail: "known@acme.co", profile.FieldName: "Acme"})
	svc := NewService(profile.NewStore(mem, nil), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		id      *model.Identity
		want    string
		wantErr error
	}{
		{"recruiter without company", recruiter("new@acme.co"), DestRecruiterOnboarding, nil},
		{"recruiter with company", recruiter("known@acme.co"), DestRecruiterJobs, nil},
		{"jobseeker", &model.Identity{Email: "s@uni.edu", Role: model.RoleJobseeker}, DestJobseekerDashboard, nil},
		{"unknown role", &model.Identity{Email: "x@y.z", Role: "admin"}, "", ErrUnknownRole},
		{"no identity", nil, "", ErrNotAuthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Destination(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Path)
		})
	}
}

type countingCompanies struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (c *countingCompanies) CompanyExists(context.Context, string) (bool, error) {
	c.calls.Add(1)
	<-c.release
	return true, c.err
}

func (c *countingCompanies) CreateCompany(_ context.Context, co model.Company) (model.Company, error) {
	return co, nil
}

func TestDestination_concurrentLookupsShareQuery(t *testing.T) {
	companies := &countingCompanies{release: make(chan struct{})}
	svc := NewService(companies, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := svc.Destination(context.Background(), recruiter("Rita@Acme.co"))
			assert.NoError(t, err)
			assert.Equal(t, DestRecruiterJobs, d.Path)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(companies.release)
	wg.Wait()

	assert.Equal(t, int32(1), companies.calls.Load())
}

type slowCompanies struct {
	calls   atomic.Int32
	release chan struct{}
}

func (c *slowCompanies) CompanyExists(ctx context.Context, _ string) (bool, error) {
	c.calls.Add(1)
	select {
	case <-c.release:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (c *slowCompanies) CreateCompany(_ context.Context, co model.Company) (model.Company, error) {
	return co, nil
}

func TestDestination_cancelledCallerDoesNotFailOthers(t *testing.T) {
	companies := &slowCompanies{release: make(chan struct{})}
	svc := NewService(companies, nil)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Destination(firstCtx, recruiter("rita@acme.co"))
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return companies.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	type result struct {
		dest Destination
		err  error
	}
	second := make(chan result, 1)
	go func() {
		d, err := svc.Destination(context.Background(), recruiter("rita@acme.co"))
		second <- result{d, err}
	}()

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(companies.release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, DestRecruiterJobs, got.dest.Path)
}

func TestDestination_storeFailure(t *testing.T) {
	boom := errors.New("boom")
	companies := &countingCompanies{release: make(chan struct{}), err: boom}
	close(companies.release)
	svc := NewService(companies, nil)

	d, err := svc.Destination(context.Background(), recruiter("a@b.co"))

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, d.Path)
}

func TestCreateCompany(t *testing.T) {
	mem := recordstore.NewMemoryStore()
	svc := NewService(profile.NewStore(mem, nil), nil)
	ctx := context.Background()
	id := recruiter("rita@acme.co")

	c, dest, err := svc.CreateCompany(ctx, id, model.Company{Name: "Acme", Type: "Startup"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "rita@acme.co", c.Email)
	assert.Equal(t, "Rita", c.PrimaryRecruiterName)
	assert.Equal(t, DestRecruiterJobs, dest.Path)

	d, err := svc.Destination(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, DestRecruiterJobs, d.Path)

	_, _, err = svc.CreateCompany(ctx, id, model.Company{Name: "Acme", Type: "Startup"})
	assert.ErrorIs(t, err, ErrCompanyExists)

	_, _, err = svc.CreateCompany(ctx, &model.Identity{Email: "s@u.edu", Role: model.RoleJobseeker}, model.Company{Name: "X", Type: "Y"})
	assert.ErrorIs(t, err, ErrNotRecruiter)
}
