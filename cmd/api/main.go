package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/aryanpyx/finsight/internal/application"
	appanalysis "github.com/aryanpyx/finsight/internal/application/analysis"
	appfiles "github.com/aryanpyx/finsight/internal/application/files"
	appproposal "github.com/aryanpyx/finsight/internal/application/proposal"
	appusers "github.com/aryanpyx/finsight/internal/application/users"
	"github.com/aryanpyx/finsight/internal/config"
	domanalysis "github.com/aryanpyx/finsight/internal/domain/analysis"
	domfiles "github.com/aryanpyx/finsight/internal/domain/files"
	domproposal "github.com/aryanpyx/finsight/internal/domain/proposal"
	domusers "github.com/aryanpyx/finsight/internal/domain/users"
	openaiClient "github.com/aryanpyx/finsight/internal/infra/ai/openai"
	"github.com/aryanpyx/finsight/internal/infra/db/memory"
	mysqlp "github.com/aryanpyx/finsight/internal/infra/db/mysql"
	postgresp "github.com/aryanpyx/finsight/internal/infra/db/postgres"
	"github.com/aryanpyx/finsight/internal/infra/httpserver"
	minioStore "github.com/aryanpyx/finsight/internal/infra/storage"
	"github.com/aryanpyx/finsight/internal/middleware"
)

func main() {
	// .env untuk development, abaikan kalau tidak ada
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// pick store by driver
	var (
		fileRepo     domfiles.Repository
		resultRepo   domanalysis.Repository
		proposalRepo domproposal.Repository
		userRepo     domusers.Repository
		health       http.HandlerFunc
	)

	switch cfg.Database.Driver {
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		fileRepo = mysqlp.NewFileRepository(db)
		resultRepo = mysqlp.NewAnalysisRepository(db)
		proposalRepo = mysqlp.NewProposalRepository(db)
		userRepo = mysqlp.NewUserRepository(db)
		health = middleware.HealthHandler(map[string]middleware.HealthChecker{
			"database": &middleware.DatabaseHealthChecker{DB: db},
		})
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		fileRepo = postgresp.NewFileRepository(db)
		resultRepo = postgresp.NewAnalysisRepository(db)
		proposalRepo = postgresp.NewProposalRepository(db)
		userRepo = postgresp.NewUserRepository(db)
		health = middleware.HealthHandler(map[string]middleware.HealthChecker{
			"database": &middleware.DatabaseHealthChecker{DB: db},
		})
	default:
		// process-lifetime memory store, nothing survives restart
		store := memory.NewStore()
		fileRepo = memory.NewFileRepository(store)
		resultRepo = memory.NewAnalysisRepository(store)
		proposalRepo = memory.NewProposalRepository(store)
		userRepo = memory.NewUserRepository(store)
	}

	// init minio archive kalau endpoint dikonfigurasi
	var archive domfiles.ArchiveStore
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		archive = store
	}

	// init AI client
	ai := openaiClient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	clock := application.SystemClock{}

	// init services
	filesSvc := &appfiles.Service{Files: fileRepo, Archive: archive, Clock: clock}
	analysisSvc := &appanalysis.Service{Files: fileRepo, Results: resultRepo, AI: ai, Clock: clock}
	proposalSvc := &appproposal.Service{Results: resultRepo, Proposals: proposalRepo, AI: ai, Clock: clock}
	usersSvc := &appusers.Service{Users: userRepo}

	// init router
	mux := chi.NewRouter()
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	if cfg.RateLimit.Enabled {
		mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
	}
	mux.Mount("/", httpserver.NewRouter(filesSvc, analysisSvc, proposalSvc, usersSvc, health, cfg.Upload.MaxBytes))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// proposal generation can hold a request open for a while
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
