package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "github.com/Yoshida28/sekkot/internal/auth"
	"github.com/Yoshida28/sekkot/internal/catalog"
	"github.com/Yoshida28/sekkot/internal/requirements"
	"github.com/Yoshida28/sekkot/internal/shared/config"
	"github.com/Yoshida28/sekkot/internal/shared/metrics"
	"github.com/Yoshida28/sekkot/internal/shared/server/middleware"
	"github.com/Yoshida28/sekkot/internal/shared/server/respond"
	"github.com/Yoshida28/sekkot/internal/site"
	"github.com/Yoshida28/sekkot/internal/users"
)

// RouterDeps carries everything the router needs; bootstrap fills it in.
type RouterDeps struct {
	Config              config.Config
	CatalogHandler      *catalog.Handler
	SiteHandler         *site.Handler
	RequirementsHandler *requirements.Handler
	UsersHandler        *users.Handler
	GoogleAuth          *googleauth.GoogleService

	// LocalFilesDir, when non-empty, is served under /files for the
	// local object store's public URLs.
	LocalFilesDir string
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"UPLOAD": {Rate: 0.2, Burst: 3},
			"SUBMIT": {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method != http.MethodPost {
				return ""
			}
			switch c.FullPath() {
			case "/api/v1/requirements/upload":
				return "UPLOAD"
			case "/api/v1/requirements":
				return "SUBMIT"
			default:
				return ""
			}
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.SiteHandler != nil {
		deps.SiteHandler.RegisterRoutes(api)
	}
	if deps.RequirementsHandler != nil {
		deps.RequirementsHandler.RegisterRoutes(api)
	}

	r.GET("/metrics", metrics.Handler())

	if deps.LocalFilesDir != "" {
		r.Static("/files", deps.LocalFilesDir)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
