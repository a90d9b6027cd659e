package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Lelo88/menu-api-golang/internal/config"
	"github.com/Lelo88/menu-api-golang/internal/docs"
	"github.com/Lelo88/menu-api-golang/internal/health"
	"github.com/Lelo88/menu-api-golang/internal/httpx"
	"github.com/Lelo88/menu-api-golang/internal/logger"
	"github.com/Lelo88/menu-api-golang/internal/menu"
)

// appDeps agrupa lo que run necesita del mundo exterior, para poder testearlo.
type appDeps struct {
	loadConfig     func() (config.Config, error)
	newLogger      func(level string) (*zap.Logger, error)
	listenAndServe func(addr string, handler http.Handler) error
}

var (
	loadConfigFn     = config.Load
	newLoggerFn      = logger.New
	listenAndServeFn = http.ListenAndServe
	// Si falla config o logger no hay zap disponible todavía.
	fatal            = log.Fatal
)

func main() {
	err := run(appDeps{
		loadConfig:     loadConfigFn,
		newLogger:      newLoggerFn,
		listenAndServe: listenAndServeFn,
	})
	if err != nil {
		fatal(err)
	}
}

func run(deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	appLogger, err := deps.newLogger(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defer func() { _ = appLogger.Sync() }()

	// El catálogo vive lo mismo que el proceso y se inyecta a quien lo necesite.
	catalog := menu.NewCatalog()
	router := buildRouter(catalog, appLogger, cfg.RequestTimeout)

	addr := ":" + cfg.Port
	appLogger.Info("listening", zap.String("addr", addr))
	if err := deps.listenAndServe(addr, router); err != nil {
		return errors.Wrap(err, "listen and serve")
	}

	return nil
}

func buildRouter(catalog *menu.Catalog, appLogger *zap.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpx.RequestLogger(appLogger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	// Errores de routing se manejan a nivel router.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusNotFound, "not_found", "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	healthHandler := health.New(catalog)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	docs.RegisterRoutes(r)

	menuService := menu.NewService(catalog, appLogger)
	menu.RegisterRoutes(r, menu.NewHandler(menuService))

	return r
}
