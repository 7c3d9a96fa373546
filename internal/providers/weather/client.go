package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"petnames/internal/domain"
	"petnames/internal/infra"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1"
	// Unit is the only temperature unit the forecast endpoint is asked for.
	Unit = "°C"
)

// Options configures the Open-Meteo client.
type Options struct {
	BaseURL        string
	City           string
	Latitude       float64
	Longitude      float64
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client fetches the current temperature for a default location or any
// location passed to CurrentAt.
type Client struct {
	baseURL    string
	location   domain.Location
	httpClient *http.Client
	logger     *infra.Logger
}

// Reading is a current temperature observation.
type Reading struct {
	Temperature float64
	Unit        string
}

type forecastResponse struct {
	Current *struct {
		Temperature *float64 `json:"temperature_2m"`
	} `json:"current"`
}

// NewClient constructs a client with defaults for any unset option.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	city := strings.TrimSpace(opts.City)
	if city == "" {
		city = "Copenhagen"
	}
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	return &Client{
		baseURL:    baseURL,
		location:   domain.Location{City: city, Latitude: opts.Latitude, Longitude: opts.Longitude},
		httpClient: httpClient,
		logger:     logger,
	}
}

// City returns the configured location name.
func (c *Client) City() string {
	return c.location.City
}

// Current reads the temperature at the configured location.
func (c *Client) Current(ctx context.Context) (*Reading, error) {
	return c.CurrentAt(ctx, c.location)
}

// CurrentAt performs a single forecast request for loc. Every failure wraps
// domain.ErrWeatherUnavailable.
func (c *Client) CurrentAt(ctx context.Context, loc domain.Location) (*Reading, error) {
	endpoint := c.baseURL + "/forecast?" + url.Values{
		"latitude":  {strconv.FormatFloat(loc.Latitude, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(loc.Longitude, 'f', -1, 64)},
		"current":   {"temperature_2m"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrWeatherUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", endpoint).Msg("weather: fetching current temperature")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("%w: weather API responded with status %d", domain.ErrWeatherUnavailable, resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrWeatherUnavailable, err)
	}
	if body.Current == nil || body.Current.Temperature == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWeatherUnavailable, ErrInvalidPayload)
	}

	temp := *body.Current.Temperature
	c.logger.Debug().Float64("temperature", temp).Str("city", loc.City).Msg("weather: fetched")
	return &Reading{Temperature: temp, Unit: Unit}, nil
}

// ErrInvalidPayload is returned when the response lacks current.temperature_2m.
var ErrInvalidPayload = errors.New("invalid weather data structure")

// Reason strips the sentinel prefix so callers can surface only the upstream cause.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := domain.ErrWeatherUnavailable.Error() + ": "
	return strings.TrimPrefix(msg, prefix)
}
