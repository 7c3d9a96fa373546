package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"petnames/internal/http/handlers"
	"petnames/internal/infra"
	"petnames/internal/middleware"
)

type Options struct {
	Logger          *infra.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = app.Logger
	}

	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(*logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
	)
	r.NotFound(app.NotFound)
	r.MethodNotAllowed(app.MethodNotAllowed)

	// Health
	r.Get("/health", app.Health)
	r.Get("/health/ready", app.Ready)
	r.Get("/v1/healthz", app.Health)

	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))

		r.Post("/generate", app.Generate)
		r.Post("/generate-by-animal-type", app.GenerateByAnimalType)
		r.Post("/generate-bulk", app.GenerateBulk)
		r.Get("/recent-names", app.RecentNames)
		r.Get("/animal-types", app.AnimalTypes)
		r.Get("/stats", app.StatsSummary)
		r.Get("/weather", app.CurrentWeather)
	})

	return r
}
