package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"campusfood/internal/notifications"
	"campusfood/internal/payments"
	"campusfood/internal/ratelimiter"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	dispatcher  *notifications.Dispatcher
	orders      *payments.OrderService
	rateLimiter *ratelimiter.FixedWindowRateLimiter
}

type config struct {
	addr        string
	env         string
	frontendURL string
	otpProvider string
	relay       relayConfig
	smtp        smtpConfig
	payment     paymentConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type relayConfig struct {
	endpoint string
	origin   string
}

type smtpConfig struct {
	host string
	port int
	user string
	pass string
	from string
}

type paymentConfig struct {
	keyID     string
	keySecret string
	endpoint  string
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	allowedOrigins := []string{"https://*", "http://*"}
	if app.config.frontendURL != "" {
		allowedOrigins = []string{app.config.frontendURL}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Request context deadline; every outbound provider call is bounded by
	// its own shorter client timeout.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Post("/send-email", app.sendEmailHandler)
		r.Post("/orders", app.createOrderHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
