package geoip

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petnames/internal/domain"
)

func TestNewResolverEmptyPath(t *testing.T) {
	r, err := NewResolver("  ")
	require.NoError(t, err)
	assert.Nil(t, r)

	_, err = r.Locate("8.8.8.8")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, r.Close())
}

func TestNewResolverMissingFile(t *testing.T) {
	_, err := NewResolver(filepath.Join(t.TempDir(), "missing.mmdb"))
	assert.Error(t, err)
}

func TestLocationFrom(t *testing.T) {
	var rec geoip2.City
	rec.City.Names = map[string]string{"en": "Aarhus"}
	rec.Location.Latitude = 56.1567
	rec.Location.Longitude = 10.2108

	loc, err := locationFrom(&rec)
	require.NoError(t, err)
	assert.Equal(t, domain.Location{City: "Aarhus", Latitude: 56.1567, Longitude: 10.2108}, loc)
}

func TestLocationFromFallsBackToCountry(t *testing.T) {
	var rec geoip2.City
	rec.Country.Names = map[string]string{"en": "Denmark"}
	rec.Location.Latitude = 55.7123
	rec.Location.Longitude = 12.0564

	loc, err := locationFrom(&rec)
	require.NoError(t, err)
	assert.Equal(t, "Denmark", loc.City)
}

func TestLocationFromWithoutCoordinates(t *testing.T) {
	var rec geoip2.City
	rec.City.Names = map[string]string{"en": "Nowhere"}

	_, err := locationFrom(&rec)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = locationFrom(nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
