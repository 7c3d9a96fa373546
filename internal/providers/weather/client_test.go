package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petnames/internal/domain"
)

func TestCurrentReturnsTemperature(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":{"time":"2026-10-18T09:00","temperature_2m":11.4}}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL + "/v1/", Latitude: 55.6761, Longitude: 12.5683})
	reading, err := c.Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 11.4, reading.Temperature)
	assert.Equal(t, "°C", reading.Unit)
	assert.Contains(t, gotQuery, "latitude=55.6761")
	assert.Contains(t, gotQuery, "longitude=12.5683")
	assert.Contains(t, gotQuery, "current=temperature_2m")
	assert.Equal(t, "Copenhagen", c.City())
}

func TestCurrentZeroTemperatureIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":0}}`))
	}))
	defer srv.Close()

	reading, err := NewClient(Options{BaseURL: srv.URL}).Current(context.Background())
	require.NoError(t, err)
	assert.Zero(t, reading.Temperature)
}

func TestCurrentUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(Options{BaseURL: srv.URL}).Current(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWeatherUnavailable))
	assert.Equal(t, "weather API responded with status 502", Reason(err))
}

func TestCurrentInvalidPayload(t *testing.T) {
	for name, body := range map[string]string{
		"missing current":     `{}`,
		"missing temperature": `{"current":{}}`,
		"wrong type":          `{"current":{"temperature_2m":"warm"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := NewClient(Options{BaseURL: srv.URL}).Current(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
		})
	}
}

func TestCurrentTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewClient(Options{BaseURL: srv.URL, RequestTimeout: 20 * time.Millisecond}).Current(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
}

func TestCurrentAtUsesGivenLocation(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":24.1}}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Latitude: 55.6761, Longitude: 12.5683})
	reading, err := c.CurrentAt(context.Background(), domain.Location{City: "Lisbon", Latitude: 38.7223, Longitude: -9.1393})

	require.NoError(t, err)
	assert.Equal(t, 24.1, reading.Temperature)
	assert.Contains(t, gotQuery, "latitude=38.7223")
	assert.Contains(t, gotQuery, "longitude=-9.1393")
	assert.Equal(t, "Copenhagen", c.City())
}
