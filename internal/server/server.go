// Package server wire the job board services and expose them over gin
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jobboard-backend/internal/auth"
	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/candidate"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/jobpost"
	"jobboard-backend/internal/onboarding"
	"jobboard-backend/internal/profile"
	"jobboard-backend/internal/recordstore"
	"jobboard-backend/internal/recordstore/airtable"
	"jobboard-backend/internal/scheduling"
)

// MyServer hold the services behind the HTTP routes
type MyServer struct {
	cfg *config.Config
	log *zap.Logger

	// DB is set for the postgres backend only
	DB *database.DBinstanceStruct
	// Redis is nil when REDIS_ADDR is empty
	Redis *redis.Client

	verifier   *auth.Verifier
	blacklist  auth.JwtBlacklistStore
	candidates *candidate.Service
	scheduling *scheduling.Service
	onboarding *onboarding.Service
	postings   *jobpost.Service
	wizard     *jobpost.Wizard
	board      *jobpost.Board
}

// LocalStoreOptions is the unique feedback key and update stamp enforced by the
// memory and postgres backends. Airtable computes Updated_at itself.
func LocalStoreOptions() []recordstore.Option {
	return []recordstore.Option{
		recordstore.WithUniqueKey(profile.TableFeedback, profile.FeedbackKey...),
		recordstore.WithTouchField(profile.FieldUpdatedAt),
	}
}

// OpenRecordStore open the record store backend selected by cfg
func OpenRecordStore(cfg *config.Config, log *zap.Logger) (recordstore.Store, *database.DBinstanceStruct, error) {
	switch cfg.StoreBackend {
	case config.BackendAirtable:
		return airtable.NewClient(cfg.Airtable.URL, cfg.Airtable.BaseID, cfg.Airtable.APIKey, cfg.Airtable.Timeout), nil, nil
	case config.BackendPostgres:
		db, err := database.GetMainDB(&database.DBConfig{
			Host:      cfg.DB.Host,
			Port:      cfg.DB.Port,
			User:      cfg.DB.User,
			Password:  cfg.DB.Password,
			DBName:    cfg.DB.Name,
			Constr:    cfg.DB.ConnString,
			UseConstr: cfg.DB.UseConnString,
		}, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		return db.Records(LocalStoreOptions()...), db, nil
	case config.BackendMemory:
		return recordstore.NewMemoryStore(LocalStoreOptions()...), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// New open the configured backends and build every service. ctx bounds background
// goroutines such as the in-memory token blacklist cleanup.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*MyServer, error) {
	records, db, err := OpenRecordStore(cfg, log)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx, rdb); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	}

	s := NewWithStore(ctx, cfg, log, records, rdb)
	s.DB = db
	log.Info("record store ready", zap.String("backend", cfg.StoreBackend))
	return s, nil
}

// NewWithStore build the services over records. Workflow state is kept in rdb when
// it is not nil, in process memory otherwise.
func NewWithStore(ctx context.Context, cfg *config.Config, log *zap.Logger, records recordstore.Store, rdb *redis.Client) *MyServer {
	if log == nil {
		log = zap.NewNop()
	}
	profiles := profile.NewStore(recordstore.Instrument(records), log)

	var (
		expansions candidate.ExpansionStore
		drafts     jobpost.DraftStore
		locker     cache.Locker
		blacklist  auth.JwtBlacklistStore
	)
	if rdb != nil {
		expansions = candidate.NewRedisExpansionStore(rdb, cfg.Workflow.ExpansionTTL)
		drafts = jobpost.NewRedisDraftStore(rdb, cfg.Workflow.DraftTTL)
		locker = cache.NewRedisLocker(rdb, cfg.Workflow.LockTTL)
		blacklist = auth.NewRedisBlacklistStore(rdb)
	} else {
		expansions = candidate.NewMemoryExpansionStore()
		drafts = jobpost.NewMemoryDraftStore()
		locker = cache.NewMemoryLocker()
		blacklist = auth.NewInMemoryBlacklistStore(ctx)
	}

	policy := candidate.UnknownFirst
	if cfg.Workflow.RankUnknownTiersLast {
		policy = candidate.UnknownLast
	}

	postings := jobpost.NewService(profiles, log)
	return &MyServer{
		cfg:        cfg,
		log:        log,
		Redis:      rdb,
		verifier:   auth.NewVerifier(cfg.Identity.JWTSecret, cfg.Identity.Issuer),
		blacklist:  blacklist,
		candidates: candidate.NewService(profiles, expansions, policy, log),
		scheduling: scheduling.NewService(profiles, locker, log),
		onboarding: onboarding.NewService(profiles, log),
		postings:   postings,
		wizard:     jobpost.NewWizard(drafts, postings),
		board:      jobpost.NewBoard(profiles),
	}
}

// HTTPServer return the http.Server serving the routes of s
func (s *MyServer) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.GetServerAddr(),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Close release database and redis connections
func (s *MyServer) Close() error {
	var firstErr error
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
