package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/halee5027/RecruitNova/internal/fetch"
	"github.com/halee5027/RecruitNova/internal/insights"
	"github.com/halee5027/RecruitNova/internal/queue"
	"github.com/halee5027/RecruitNova/internal/screening"
	"github.com/halee5027/RecruitNova/internal/shared/config"
	"github.com/halee5027/RecruitNova/internal/shared/server"
	"github.com/halee5027/RecruitNova/internal/shared/storage/db"
	"github.com/halee5027/RecruitNova/internal/shared/storage/object"
	localstore "github.com/halee5027/RecruitNova/internal/shared/storage/object/local"
	s3store "github.com/halee5027/RecruitNova/internal/shared/storage/object/s3"
)

// ScreeningProcessor executes a queued screening job.
type ScreeningProcessor interface {
	ProcessScreening(ctx context.Context, msg queue.Message) error
}

// App aggregates the wired application components shared by the API server
// and the queue worker.
type App struct {
	Config config.Config
	Router *gin.Engine

	DB    *sql.DB
	Store object.ObjectStore
	Queue queue.Client

	ScreeningRepo    screening.Repo
	ScreeningService *screening.Service
	ScreeningHandler *screening.Handler

	InsightsService *insights.Service
	InsightsHandler *insights.Handler

	Fetcher            *fetch.Fetcher
	FetchHandler       *fetch.Handler
	ScreeningProcessor ScreeningProcessor
}

// Build wires configuration, storage, services, and the HTTP router.
// A missing or unreachable database degrades to in-memory repositories
// outside production.
func Build(cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := buildDB(cfg, app); err != nil {
		return nil, err
	}
	if err := buildStore(cfg, app); err != nil {
		return nil, err
	}
	buildQueue(app)
	buildServices(cfg, app)

	app.Router = server.NewRouter(cfg, server.RouterDeps{
		Screenings: app.ScreeningHandler,
		Insights:   app.InsightsHandler,
		Fetch:      app.FetchHandler,
	})
	return app, nil
}

func buildDB(cfg config.Config, app *App) error {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return fmt.Errorf("DATABASE_URL is required in production")
		}
		return nil
	}

	ctx := context.Background()
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	if db.IsLambdaRuntime() {
		opts = db.OptionsFromEnv(db.DefaultLambdaOptions())
	}

	var (
		conn *sql.DB
		err  error
	)
	if db.IsLambdaRuntime() {
		conn, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		conn, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if cfg.Env == "production" {
			return fmt.Errorf("connect database: %w", err)
		}
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}

	if err := db.RunMigrations(ctx, conn); err != nil {
		if cfg.Env == "production" {
			return fmt.Errorf("run migrations: %w", err)
		}
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		return nil
	}

	app.DB = conn
	return nil
}

func buildStore(cfg config.Config, app *App) error {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return fmt.Errorf("build s3 store: %w", err)
		}
		app.Store = store
		return nil
	}
	app.Store = localstore.New(cfg.LocalStoreDir)
	return nil
}

func buildQueue(app *App) {
	if strings.TrimSpace(os.Getenv("RN_SQS_QUEUE_URL")) == "" {
		return
	}
	client, err := queue.NewSQSClient(context.Background())
	if err != nil {
		log.Printf("failed to build sqs client, async screening disabled: %v", err)
		return
	}
	app.Queue = client
}

func buildServices(cfg config.Config, app *App) {
	if app.DB != nil {
		app.ScreeningRepo = &screening.PGRepo{DB: app.DB}
	} else {
		app.ScreeningRepo = screening.NewMemoryRepo()
	}

	app.ScreeningService = &screening.Service{
		Repo:    app.ScreeningRepo,
		Store:   app.Store,
		Workers: cfg.BatchWorkers,
	}
	app.ScreeningHandler = screening.NewHandler(app.ScreeningService)

	app.InsightsService = insights.NewService()
	app.InsightsHandler = insights.NewHandler(app.InsightsService)

	app.Fetcher = &fetch.Fetcher{}
	fetchHandler := fetch.NewHandler(app.Fetcher, app.ScreeningService)
	fetchHandler.Queue = app.Queue
	app.FetchHandler = fetchHandler

	app.ScreeningProcessor = &fetch.Processor{
		Fetcher: app.Fetcher,
		Svc:     app.ScreeningService,
	}
}
