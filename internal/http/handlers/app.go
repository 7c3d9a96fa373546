package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"petnames/internal/domain"
	"petnames/internal/infra"
	"petnames/internal/namegen"
	"petnames/internal/providers/weather"
)

const maxBodyBytes = 64 << 10

// WeatherProvider reports the current temperature at a default city or a given location.
type WeatherProvider interface {
	Current(ctx context.Context) (*weather.Reading, error)
	CurrentAt(ctx context.Context, loc domain.Location) (*weather.Reading, error)
	City() string
}

// Locator resolves a client IP to a location.
type Locator interface {
	Locate(ip string) (domain.Location, error)
}

// Pinger checks that the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	Names       *namegen.Service
	Repo        domain.GeneratedNameRepository
	Weather     WeatherProvider
	DB          Pinger
	Locator     Locator
	Logger      *infra.Logger
	RecentLimit int
}

func NewApp(names *namegen.Service, repo domain.GeneratedNameRepository, wx WeatherProvider, db Pinger, logger *infra.Logger, recentLimit int) *App {
	if logger == nil {
		logger = infra.NopLogger()
	}
	if recentLimit <= 0 {
		recentLimit = domain.DefaultRecentLimit
	}
	return &App{
		Names:       names,
		Repo:        repo,
		Weather:     wx,
		DB:          db,
		Logger:      logger,
		RecentLimit: recentLimit,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	a.json(w, status, body)
}

// decodeBody decodes a JSON object from r. An empty body decodes as {}.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (a *App) NotFound(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusNotFound, "not_found", "route not found")
}

func (a *App) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.error(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
}
