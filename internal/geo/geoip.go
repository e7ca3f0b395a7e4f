package geo

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// ErrUnavailable is returned when no GeoIP database is configured.
var ErrUnavailable = errors.New("geoip resolver unavailable")

// IPResolver resolves ISO country codes from IP addresses. The server uses it
// to default country and currency on submissions that omit them.
type IPResolver struct {
	reader *geoip2.Reader
}

// NewIPResolver opens the MaxMind database at the given path. An empty path
// returns (nil, nil): resolution is optional and the caller degrades
// gracefully without it.
func NewIPResolver(path string) (*IPResolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &IPResolver{reader: reader}, nil
}

// CountryCode returns the ISO country code for the provided IP, or an empty
// string when the database has no record for it.
func (r *IPResolver) CountryCode(ip string) (string, error) {
	if r == nil || r.reader == nil {
		return "", ErrUnavailable
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("geoip: invalid ip %q", ip)
	}
	record, err := r.reader.Country(parsed)
	if err != nil {
		return "", fmt.Errorf("geoip: lookup country: %w", err)
	}
	if record == nil || record.Country.IsoCode == "" {
		return "", nil
	}
	return record.Country.IsoCode, nil
}

// Close closes the underlying database reader.
func (r *IPResolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
