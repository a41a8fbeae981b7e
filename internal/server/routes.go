package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "jobboard-backend/docs"

	"jobboard-backend/internal/auth"
	candidatectl "jobboard-backend/internal/controller/candidate"
	jobpostctl "jobboard-backend/internal/controller/jobpost"
	onboardingctl "jobboard-backend/internal/controller/onboarding"
	schedulingctl "jobboard-backend/internal/controller/scheduling"
	"jobboard-backend/internal/middleware"
	"jobboard-backend/internal/model"
)

// maxBodyBytes cap JSON request bodies, job descriptions are the largest field
const maxBodyBytes = 1 << 20

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics(), middleware.SafeHeader(s.cfg.IsProduction()))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	candidates := candidatectl.NewCandidateController(s.candidates, s.log)
	schedule := schedulingctl.NewSchedulingController(s.scheduling, s.log)
	onboard := onboardingctl.NewOnboardingController(s.onboarding, s.log)
	jobs := jobpostctl.NewJobPostController(s.wizard, s.postings, s.board, s.log)
	logout := auth.NewLogoutController(s.blacklist)

	v1 := r.Group("/api/v1")
	if s.cfg.Limiter.Enabled {
		// a typed nil *redis.Client must not reach the limiter as a non-nil interface
		var limiterClient redis.UniversalClient
		if s.Redis != nil {
			limiterClient = s.Redis
		}
		v1.Use(middleware.RateLimiterMiddleware(s.cfg.Limiter.RequestsPerSecond, limiterClient))
	}
	v1.Use(middleware.SizeLimit(maxBodyBytes))

	needAuth := v1.Group("")
	{
		needAuth.Use(middleware.JwtBlacklistCheck(s.blacklist, s.log), middleware.RequireAuth(s.verifier, s.log))

		needAuth.POST("/auth/logout", logout.LogoutHandler)

		onboardingRoute := needAuth.Group("/onboarding")
		{
			onboardingRoute.GET("/destination", onboard.GetDestination)
			onboardingRoute.POST("/company", middleware.CheckRole(model.RoleRecruiter), onboard.CreateCompany)
		}

		needRecruiter := needAuth.Group("")
		{
			needRecruiter.Use(middleware.CheckRole(model.RoleRecruiter))

			orderRoute := needRecruiter.Group("/orders/:order_id")
			{
				orderRoute.GET("/candidates", candidates.ListCandidates)
				orderRoute.GET("/expansion", candidates.GetExpansion)
				orderRoute.POST("/expansion", candidates.ToggleExpansion)
				orderRoute.POST("/candidates/:candidate_id/decline", candidates.DeclineCandidate)
				orderRoute.GET("/candidates/:candidate_id/schedule", schedule.GetSchedule)
				orderRoute.PUT("/candidates/:candidate_id/schedule", schedule.SubmitSchedule)
			}
			needRecruiter.GET("/candidates/:candidate_id", candidates.GetCandidate)

			jobPostRoute := needRecruiter.Group("/jobposts")
			{
				jobPostRoute.POST("/drafts", jobs.StartDraft)
				jobPostRoute.GET("/drafts/:draft_id", jobs.GetDraft)
				jobPostRoute.PATCH("/drafts/:draft_id", jobs.UpdateDraft)
				jobPostRoute.POST("/drafts/:draft_id/next", jobs.NextStep)
				jobPostRoute.POST("/drafts/:draft_id/back", jobs.PreviousStep)
				jobPostRoute.POST("/drafts/:draft_id/submit", jobs.SubmitDraft)

				jobPostRoute.POST("", jobs.CreatePosting)
				jobPostRoute.GET("", jobs.ListMyPostings)
				jobPostRoute.PATCH("/:id", jobs.EditPosting)
				jobPostRoute.PUT("/:id/visibility", jobs.SetVisibility)
				jobPostRoute.DELETE("/:id", jobs.DeletePosting)
			}
		}

		needJobseeker := needAuth.Group("")
		{
			needJobseeker.Use(middleware.CheckRole(model.RoleJobseeker))
			needJobseeker.GET("/jobs", jobs.ListJobs)
			needJobseeker.GET("/jobseeker/preferred-category", jobs.PreferredCategory)
		}
	}

	return r
}

func (s *MyServer) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	status := http.StatusOK
	resp := gin.H{"status": "up", "store": s.cfg.StoreBackend}

	if s.DB != nil {
		dbStats := s.DB.Health()
		resp["database"] = dbStats
		if dbStats["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			resp["redis"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			resp["redis"] = "up"
		}
	}
	if status != http.StatusOK {
		resp["status"] = "down"
	}
	c.JSON(status, resp)
}
