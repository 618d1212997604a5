package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"precision/config"
	"precision/site"
	"precision/store"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Debug)
	defer func() { _ = logger.Sync() }()

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}

	siteStore := store.NewSiteStore(db, logger)
	identity := store.NewIdentityStore(db, logger)
	prefs := store.NewPrefsStore(db, logger)

	h := site.NewHandlers(siteStore, identity, prefs, logger)
	r := initRouter(h)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("listening", zap.String("addr", "http://localhost"+addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Block until a signal is received
	<-signals
	logger.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown did not complete cleanly", zap.Error(err))
	}

	store.Close(db, logger)
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func initRouter(h *site.Handlers) *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(100, time.Minute)) // general rate limiter for all routes (shared across all routes)
	r.Use(middleware.Recoverer)
	r.Use(h.TryPutUserInContext)

	r.Get("/", h.Home)
	r.Get("/services", h.Services)
	r.Get("/services/{serviceID}", h.ServiceDetail)
	r.Get("/p/{pageSlug}", h.CustomPage)
	r.Get("/lang/{lang}", h.SetLanguage)

	r.HandleFunc("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.With(h.AuthProtected).Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.Dashboard)

		r.HandleFunc("/content", h.ManageContent)

		r.Get("/services", h.ManageServices)
		r.HandleFunc("/services/new", h.CreateService)
		r.HandleFunc("/services/{serviceID}", h.EditService)
		r.Post("/services/{serviceID}/delete", h.DeleteService)

		r.Get("/pages", h.ManagePages)
		r.HandleFunc("/pages/new", h.CreatePage)
		r.HandleFunc("/pages/{pageID}", h.EditPage)
		r.Post("/pages/{pageID}/delete", h.DeletePage)

		r.HandleFunc("/settings", h.ManageSettings)

		r.Get("/users", h.ManageUsers)
		r.HandleFunc("/users/new", h.CreateUser)
		r.HandleFunc("/users/{userID}", h.EditUser)
		r.Post("/users/{userID}/delete", h.DeleteUser)

		r.HandleFunc("/password", h.ChangePassword)
	})

	r.NotFound(h.NotFound)

	return r
}
