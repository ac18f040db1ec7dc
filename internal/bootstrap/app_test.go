package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Yoshida28/sekkot/internal/shared/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "8080",
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		ContactEmail:    "sekkot_engineering@yahoo.com",
	}
}

func TestBuildWithoutDatabaseFallsBackToMemory(t *testing.T) {
	app, err := Build(testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatal("expected nil DB without DATABASE_URL")
	}
	if app.Router == nil {
		t.Fatal("expected router to be wired")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", resp.Code)
	}
}

func TestBuiltRouterServesCatalogAndSite(t *testing.T) {
	app, err := Build(testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, path := range []string{
		"/api/v1/products",
		"/api/v1/products/categories",
		"/api/v1/site/nav",
		"/api/v1/site/contact",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/site/contact", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if !strings.Contains(resp.Body.String(), "mailto:sekkot_engineering@yahoo.com") {
		t.Fatalf("contact body missing mailto: %s", resp.Body.String())
	}
}

func TestBuiltRouterExposesMetrics(t *testing.T) {
	app, err := Build(testConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "upload_started_total") {
		t.Fatalf("metrics body missing counters: %s", resp.Body.String())
	}
}
