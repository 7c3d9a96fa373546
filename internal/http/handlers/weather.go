package handlers

import (
	"errors"
	"net"
	"net/http"

	"petnames/internal/domain"
	"petnames/internal/providers/weather"
)

type weatherResponse struct {
	Success     bool     `json:"success"`
	Temperature *float64 `json:"temperature"`
	Unit        string   `json:"unit"`
	City        string   `json:"city"`
	Message     string   `json:"message"`
}

// CurrentWeather handles GET /api/weather. The caller's city is used when a
// Locator can place their IP, otherwise the configured one. Upstream failures
// answer 503 with the cause in the message; anything else is a 500.
func (a *App) CurrentWeather(w http.ResponseWriter, r *http.Request) {
	if a.Weather == nil {
		a.json(w, http.StatusInternalServerError, weatherResponse{Unit: weather.Unit, Message: "Internal server error"})
		return
	}
	city := a.Weather.City()
	var (
		reading *weather.Reading
		err     error
	)
	if loc, ok := a.locate(r); ok {
		city = loc.City
		reading, err = a.Weather.CurrentAt(r.Context(), loc)
	} else {
		reading, err = a.Weather.Current(r.Context())
	}
	switch {
	case err == nil:
		temp := reading.Temperature
		a.json(w, http.StatusOK, weatherResponse{
			Success:     true,
			Temperature: &temp,
			Unit:        reading.Unit,
			City:        city,
			Message:     "Weather fetched successfully",
		})
	case errors.Is(err, domain.ErrWeatherUnavailable):
		a.Logger.Warn().Err(err).Str("city", city).Msg("weather lookup failed")
		a.json(w, http.StatusServiceUnavailable, weatherResponse{
			Unit:    weather.Unit,
			City:    city,
			Message: "Failed to fetch weather: " + weather.Reason(err),
		})
	default:
		a.Logger.Error().Err(err).Msg("weather lookup")
		a.json(w, http.StatusInternalServerError, weatherResponse{Unit: weather.Unit, City: city, Message: "Internal server error"})
	}
}

func (a *App) locate(r *http.Request) (domain.Location, bool) {
	if a.Locator == nil {
		return domain.Location{}, false
	}
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	loc, err := a.Locator.Locate(ip)
	if err != nil {
		a.Logger.Debug().Err(err).Str("ip", ip).Msg("geoip lookup missed, using default city")
		return domain.Location{}, false
	}
	return loc, true
}
