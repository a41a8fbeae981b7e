// Command-line tool to seed the postgres record store with a demo order and print
// identity tokens for a recruiter and a jobseeker.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobboard-backend/internal/auth"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/profile"
	"jobboard-backend/internal/recordstore"
	"jobboard-backend/internal/server"
)

const demoOrder = "demo-order-1"

func prompt(reader *bufio.Reader, label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	v, _ := reader.ReadString('\n')
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.StoreBackend != config.BackendPostgres {
		fmt.Println("seed-demo only writes to the postgres backend, set STORE_BACKEND=postgres")
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	recruiterEmail := prompt(reader, "Recruiter email", "recruiter@demo.test")
	seekerEmail := prompt(reader, "Jobseeker email", "student@demo.test")

	records, db, err := server.OpenRecordStore(cfg, zap.NewNop())
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	store := profile.NewStore(records, nil)

	company, err := store.CreateCompany(ctx, model.Company{
		Name:                  "Demo Co",
		Email:                 recruiterEmail,
		Type:                  "Startup",
		PrimaryRecruiterEmail: recruiterEmail,
	})
	if err != nil {
		log.Fatalf("failed to create company: %v", err)
	}

	for _, c := range []struct{ name, tier string }{
		{"Avery Chen", "B"},
		{"Jordan Diaz", "A"},
		{"Sam Patel", "C"},
	} {
		if _, err := records.Create(ctx, profile.TableCandidates, recordstore.Fields{
			profile.FieldCandidateName:  c.name,
			profile.FieldOrderID:        demoOrder,
			profile.FieldVisibility:     model.VisibilityShow,
			profile.FieldRecommendation: []string{c.tier},
			profile.FieldCompanyName:    company.Name,
			profile.FieldClientLink:     []string{company.ID},
		}); err != nil {
			log.Fatalf("failed to create candidate %s: %v", c.name, err)
		}
	}

	if _, err := store.CreateJobPosting(ctx, model.JobPosting{
		Title:        "Backend Intern",
		StartDate:    time.Now().AddDate(0, 1, 0).Format(model.DateLayout),
		EndDate:      time.Now().AddDate(0, 4, 0).Format(model.DateLayout),
		WorkType:     "Remote",
		HoursPerWeek: 20,
		Compensation: "Paid",
		JobType:      []string{"Internship"},
		Description:  "<p>Help build our job board API.</p>",
		ATS:          model.MethodInternalATS,
		Status:       model.JobStatusApproved,
		PosterName:   "Demo Recruiter",
		PosterEmail:  recruiterEmail,
		PosterRole:   model.RoleRecruiter,
		Visibility:   model.VisibilityShow,
	}); err != nil {
		log.Fatalf("failed to create job posting: %v", err)
	}

	if _, err := records.Create(ctx, profile.TableInternship, recordstore.Fields{profile.FieldEmail: seekerEmail}); err != nil {
		log.Fatalf("failed to create intake record: %v", err)
	}

	verifier := auth.NewVerifier(cfg.Identity.JWTSecret, cfg.Identity.Issuer)
	recruiterToken, err := verifier.Issue(model.Identity{ID: "demo-recruiter", Email: recruiterEmail, Role: model.RoleRecruiter, DisplayName: "Demo Recruiter"}, 24*time.Hour)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	seekerToken, err := verifier.Issue(model.Identity{ID: "demo-jobseeker", Email: seekerEmail, Role: model.RoleJobseeker, DisplayName: "Demo Student"}, 24*time.Hour)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	fmt.Println("Demo data seeded successfully!")
	fmt.Println("======================================")
	fmt.Printf("Order ID:        %s\n", demoOrder)
	fmt.Printf("Recruiter token: %s\n", recruiterToken)
	fmt.Printf("Jobseeker token: %s\n", seekerToken)
	fmt.Println("======================================")
}
