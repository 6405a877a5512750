// Package server assembles the HTTP router: middleware, CORS, and routes
// for the order API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	healthhandler "github.com/resolutionofarevolution/conversion-engine-api/internal/health/handler"
	orderhandler "github.com/resolutionofarevolution/conversion-engine-api/internal/order/handler"
	userhandler "github.com/resolutionofarevolution/conversion-engine-api/internal/user/handler"
)

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the HTTP handler for the order API.
func NewRouter(
	orders *orderhandler.Handler,
	users *userhandler.Handler,
	health *healthhandler.Handler,
	logger *zap.Logger,
	opts Options,
) http.Handler {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", docsPage)
	r.Get("/health", health.Check)
	r.Post("/check-phone", users.CheckPhone)
	r.Post("/create-test-order", orders.CreateOrder)
	r.Get("/orders-detailed", orders.ListDetailed)

	return r
}

// LoggerMiddleware logs HTTP requests.
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr))
		})
	}
}
