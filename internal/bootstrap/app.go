package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "github.com/Yoshida28/sekkot/internal/auth"
	"github.com/Yoshida28/sekkot/internal/catalog"
	"github.com/Yoshida28/sekkot/internal/requirements"
	"github.com/Yoshida28/sekkot/internal/shared/config"
	"github.com/Yoshida28/sekkot/internal/shared/metrics"
	"github.com/Yoshida28/sekkot/internal/shared/server"
	"github.com/Yoshida28/sekkot/internal/shared/storage/db"
	"github.com/Yoshida28/sekkot/internal/shared/storage/object"
	localstore "github.com/Yoshida28/sekkot/internal/shared/storage/object/local"
	miniostore "github.com/Yoshida28/sekkot/internal/shared/storage/object/minio"
	s3store "github.com/Yoshida28/sekkot/internal/shared/storage/object/s3"
	"github.com/Yoshida28/sekkot/internal/site"
	"github.com/Yoshida28/sekkot/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	UsersRepo           users.Repo
	RequirementsRepo    requirements.Repo
	Uploader            *requirements.Uploader
	UsersService        *users.Service
	UsersHandler        *users.Handler
	RequirementsHandler *requirements.Handler
	CatalogHandler      *catalog.Handler
	SiteHandler         *site.Handler
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	deps := server.RouterDeps{
		Config:              cfg,
		CatalogHandler:      app.CatalogHandler,
		SiteHandler:         app.SiteHandler,
		RequirementsHandler: app.RequirementsHandler,
		UsersHandler:        app.UsersHandler,
		GoogleAuth:          app.GoogleAuth,
	}
	if cfg.ObjectStoreType == "local" {
		deps.LocalFilesDir = cfg.LocalStoreDir
	}
	app.Router = server.NewRouter(deps)

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.PublicBaseURL)
	case "minio":
		return miniostore.New(
			cfg.MinioEndpoint,
			cfg.MinioAccessKey,
			cfg.MinioSecretKey,
			cfg.MinioBucket,
			cfg.PublicBaseURL,
			cfg.MinioUseSSL,
		)
	default:
		publicBase := cfg.PublicBaseURL
		if publicBase == "" {
			publicBase = "http://localhost:" + strings.TrimPrefix(cfg.Port, ":") + "/files"
		}
		return localstore.New(cfg.LocalStoreDir, publicBase), nil
	}
}

func buildServices(app *App) {
	var userRepo users.Repo
	var reqRepo requirements.Repo
	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		reqRepo = &requirements.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		reqRepo = requirements.NewMemoryRepo()
	}

	uploader := requirements.NewUploader(app.Store)
	uploader.Started = metrics.IncUploadStarted
	uploader.Finished = func(err error) {
		if err != nil {
			metrics.IncUploadFailed()
			return
		}
		metrics.IncUploadCompleted()
	}

	userSvc := users.NewService(userRepo)

	app.UsersRepo = userRepo
	app.RequirementsRepo = reqRepo
	app.Uploader = uploader
	app.UsersService = userSvc
	app.UsersHandler = users.NewHandler(userSvc)
	app.RequirementsHandler = requirements.NewHandler(uploader, reqRepo)
	app.CatalogHandler = catalog.NewHandler()
	app.SiteHandler = site.NewHandler(app.Config.ContactEmail)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
