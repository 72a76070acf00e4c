package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/ossa-dev/ossa/pkg/logger"
	"github.com/ossa-dev/ossa/pkg/schemas"
	"github.com/ossa-dev/ossa/pkg/validation"
)

var serverLog = logger.New("api:server")

// APIVersion is the version advertised in the OpenAPI document.
const APIVersion = "1.0.0"

// NewAPI builds the huma API with all routes registered. It is used both by
// NewServer and by tests that drive the handlers through httptest.
func NewAPI(mux *http.ServeMux, cfg *Config) huma.API {
	api := humago.New(mux, huma.DefaultConfig("OSSA Validation API", APIVersion))

	repo := schemas.NewRepository()
	engine := validation.NewEngine(repo, cfg.DefaultSchemaVersion)
	RegisterRoutes(api, engine, repo)

	return api
}

// NewServer builds the HTTP server for the given configuration.
func NewServer(cfg *Config) *http.Server {
	mux := http.NewServeMux()
	NewAPI(mux, cfg)

	serverLog.Printf("configured API server on %s (default schema %s)", cfg.Addr(), cfg.DefaultSchemaVersion)

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
