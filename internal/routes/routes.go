// internal/routes/routes.go
package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"snaplens-backend/internal/handlers"
	"snaplens-backend/internal/middleware"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Credits  *handlers.CreditsHandler
	Wishlist *handlers.WishlistHandler
	Lens     *handlers.LensHandler
	Payments *handlers.PaymentsHandler
}

func SetupRoutes(h *Handlers, jwtSecret string) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger())
	r.Use(middleware.Recoverer())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.Timeout(90 * time.Second))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// Health check routes
	r.Get("/", h.Health.HealthCheck)
	r.Get("/health", h.Health.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/signin", h.Auth.Signin)

			// Session-token protected
			r.With(middleware.Auth(jwtSecret)).Get("/me", h.Auth.Me)
		})

		r.Get("/user", h.User.GetUser)

		r.Post("/credits/debit", h.Credits.DebitCredits)

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", h.Wishlist.ListWishlist)
			r.Post("/", h.Wishlist.AddItem)
			r.Delete("/", h.Wishlist.RemoveItem)
		})

		r.Route("/lens", func(r chi.Router) {
			r.Get("/", h.Lens.Status)
			r.Post("/", h.Lens.Search)
		})

		r.Route("/payments/lemonsqueezy", func(r chi.Router) {
			r.Post("/create", h.Payments.CreateCheckout)
			r.Post("/webhook", h.Payments.Webhook)
		})
	})

	return r
}
