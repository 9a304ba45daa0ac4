package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecoverse/ecosort/internal/application"
	appanalysis "github.com/ecoverse/ecosort/internal/application/analysis"
	appcommunity "github.com/ecoverse/ecosort/internal/application/community"
	appcontent "github.com/ecoverse/ecosort/internal/application/content"
	apppayments "github.com/ecoverse/ecosort/internal/application/payments"
	"github.com/ecoverse/ecosort/internal/config"
	domanalysis "github.com/ecoverse/ecosort/internal/domain/analysis"
	domcommunity "github.com/ecoverse/ecosort/internal/domain/community"
	"github.com/ecoverse/ecosort/internal/infra/ai/canned"
	"github.com/ecoverse/ecosort/internal/infra/ai/gemini"
	aiopenai "github.com/ecoverse/ecosort/internal/infra/ai/openai"
	mysqlp "github.com/ecoverse/ecosort/internal/infra/db/mysql"
	postgresp "github.com/ecoverse/ecosort/internal/infra/db/postgres"
	"github.com/ecoverse/ecosort/internal/infra/httpserver"
	infrapayments "github.com/ecoverse/ecosort/internal/infra/payments"
	minioStore "github.com/ecoverse/ecosort/internal/infra/storage"
	"github.com/ecoverse/ecosort/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect database per configured driver
	var db *sql.DB
	var listings domcommunity.ListingRepository
	var challenges domcommunity.ChallengeRepository
	var submissions domcommunity.SubmissionRepository
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		listings = postgresp.NewListingRepository(db)
		challenges = postgresp.NewChallengeRepository(db)
		submissions = postgresp.NewSubmissionRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		listings = mysqlp.NewListingRepository(db)
		challenges = mysqlp.NewChallengeRepository(db)
		submissions = mysqlp.NewSubmissionRepository(db)
	}
	defer db.Close()

	gen := buildGenerator(cfg)

	// optional transcript archive for failed sanitizations
	var transcripts domanalysis.TranscriptStore
	if cfg.Minio.Enabled {
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
		transcripts = store
	}

	analysisSvc := appanalysis.NewService(gen, transcripts)
	communitySvc := &appcommunity.Service{
		Listings:    listings,
		Challenges:  challenges,
		Submissions: submissions,
		Clock:       application.SystemClock{},
	}
	contentSvc := appcontent.NewService()
	paymentsSvc := apppayments.NewService(infrapayments.NewSimulated())

	handler := httpserver.NewRouter(httpserver.Deps{
		Analysis:       analysisSvc,
		Community:      communitySvc,
		Content:        contentSvc,
		Payments:       paymentsSvc,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		HealthCheckers: map[string]middleware.HealthChecker{
			"database": &middleware.DatabaseHealthChecker{DB: db},
		},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

// buildGenerator picks the AI provider. Without an API key the canned
// provider keeps /api/analyze answering instead of failing outright.
func buildGenerator(cfg *config.Config) domanalysis.Generator {
	switch cfg.AI.Provider {
	case "openai":
		if cfg.AI.OpenAIAPIKey == "" {
			log.Println("OPENAI_API_KEY not set, using canned responses")
			return canned.NewClient()
		}
		return aiopenai.NewClient(cfg.AI.OpenAIAPIKey, cfg.AI.Model)
	default:
		if cfg.AI.GeminiAPIKey == "" {
			log.Println("GEMINI_API_KEY not set, using canned responses")
			return canned.NewClient()
		}
		return gemini.NewClient(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	}
}
