package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"

	"petnames/internal/domain"
)

// ErrUnavailable is returned when the resolver is not initialized.
var ErrUnavailable = errors.New("geoip resolver unavailable")

// Resolver maps client IPs to city locations using a MaxMind GeoIP2/GeoLite2 City database.
type Resolver struct {
	reader *geoip2.Reader
}

// NewResolver opens the City database at path. An empty path returns a nil resolver.
func NewResolver(path string) (*Resolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// Locate returns the city for ip. Addresses the database has no coordinates
// for report domain.ErrNotFound.
func (r *Resolver) Locate(ip string) (domain.Location, error) {
	if r == nil || r.reader == nil {
		return domain.Location{}, ErrUnavailable
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return domain.Location{}, fmt.Errorf("geoip: invalid ip %q", ip)
	}
	record, err := r.reader.City(parsed)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geoip: lookup city: %w", err)
	}
	return locationFrom(record)
}

func locationFrom(record *geoip2.City) (domain.Location, error) {
	if record == nil || (record.Location.Latitude == 0 && record.Location.Longitude == 0) {
		return domain.Location{}, domain.ErrNotFound
	}
	city := record.City.Names["en"]
	if city == "" {
		city = record.Country.Names["en"]
	}
	if city == "" {
		return domain.Location{}, domain.ErrNotFound
	}
	return domain.Location{
		City:      city,
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
	}, nil
}

// Close closes the underlying database reader.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
