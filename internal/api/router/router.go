package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gotienda/internal/api/dashboard"
	"gotienda/internal/api/pricing"
	"gotienda/internal/api/product"
	"gotienda/internal/api/purchase"
	"gotienda/internal/api/sale"
	"gotienda/internal/api/seller"
	"gotienda/internal/api/user"
	"gotienda/internal/domain"
	"gotienda/internal/pkg/cache"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/metrics"
	"gotienda/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Product   *product.Handler
	Sale      *sale.Handler
	Purchase  *purchase.Handler
	Seller    *seller.Handler
	Pricing   *pricing.Handler
	Dashboard *dashboard.Handler
	User      *user.Handler
}

// Options são as dependências de infraestrutura dos middlewares.
type Options struct {
	TokenSvc        middleware.TokenService
	Cache           cache.Client
	Metrics         *metrics.Metrics
	Logger          logger.Logger
	CORSOrigins     []string
	IsProduction    bool
	RateLimit       int
	RateLimitWindow time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.CORSOrigins, !opts.IsProduction))
	r.Use(middleware.SecureHeaders(opts.IsProduction))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	// --- 2. Health check, métricas e documentação ---
	r.Get("/ping", PingHandler)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 3. API v1 ---
	r.Route("/v1", func(r chi.Router) {
		if opts.Cache != nil && opts.RateLimit > 0 {
			r.Use(middleware.RateLimiter(opts.Cache, opts.RateLimit, opts.RateLimitWindow, opts.Logger))
		}

		// Rotas públicas
		r.Route("/auth", h.User.Routes)

		// Rotas autenticadas
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthMiddleware(opts.TokenSvc, opts.Logger))
			r.Use(middleware.PermissionMiddleware(domain.RoleAdmin, domain.RoleUser))

			r.Route("/products", h.Product.Routes)
			r.Route("/sales", h.Sale.Routes)
			r.Route("/purchases", h.Purchase.Routes)
			r.Route("/sellers", h.Seller.Routes)
			r.Route("/pricing", h.Pricing.Routes)
			r.Get("/dashboard", h.Dashboard.DashboardHandler)
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
