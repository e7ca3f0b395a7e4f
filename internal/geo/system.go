package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultGeoEndpoint is the public geolocation service queried for the
// caller's country.
const DefaultGeoEndpoint = "https://ipapi.co/json/"

const geoLookupTimeout = 3 * time.Second

// SystemDetector detects defaults from the local machine: timezone from the
// local clock (always available) and country from a single external
// geolocation lookup (best-effort, not retried).
type SystemDetector struct {
	Client   *http.Client
	Endpoint string
}

// NewSystemDetector returns a detector with a short-timeout HTTP client.
func NewSystemDetector() *SystemDetector {
	return &SystemDetector{
		Client:   &http.Client{Timeout: geoLookupTimeout},
		Endpoint: DefaultGeoEndpoint,
	}
}

// Detect resolves timezone and country concurrently. Lookup failures are
// swallowed; the corresponding fields stay empty.
func (d *SystemDetector) Detect(ctx context.Context) Environment {
	var env Environment

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env.Timezone = localTimezone()
		return nil
	})
	g.Go(func() error {
		env.Country = d.lookupCountry(ctx)
		return nil
	})
	_ = g.Wait()

	if env.Country != "" {
		env.Currency = CurrencyForCountry(env.Country)
	}
	return env
}

// localTimezone prefers the IANA name from TZ, then the system zone name.
func localTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	abbrev, _ := time.Now().Zone()
	return abbrev
}

func (d *SystemDetector) lookupCountry(ctx context.Context) string {
	endpoint := d.Endpoint
	if endpoint == "" {
		endpoint = DefaultGeoEndpoint
	}
	client := d.Client
	if client == nil {
		client = &http.Client{Timeout: geoLookupTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}
	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var body struct {
		CountryCode string `json:"country_code"`
		Country     string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	if body.CountryCode != "" {
		return body.CountryCode
	}
	return body.Country
}
