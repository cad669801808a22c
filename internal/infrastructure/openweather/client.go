package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-mcp-server/internal/logger"
)

// ErrNoMatch is returned by GeocodeCity when the upstream geocoder has
// no usable hit for the requested name.
var ErrNoMatch = errors.New("no geocoding match")

// Client issues single-shot GET requests against the OpenWeatherMap
// API. Failed calls are logged and returned as errors; there are no
// retries — one failed attempt is a final failure for that call.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	lookupTimeout time.Duration
	searchTimeout time.Duration
	logger        logger.Logger
}

func NewClient(baseURL, apiKey string, lookupTimeout, searchTimeout time.Duration) *Client {
	return &Client{
		httpClient:    &http.Client{},
		baseURL:       baseURL,
		apiKey:        apiKey,
		lookupTimeout: lookupTimeout,
		searchTimeout: searchTimeout,
		logger:        logger.New("info", "development").WithField("component", "openweather_client"),
	}
}

func (c *Client) get(ctx context.Context, timeout time.Duration, path string, params url.Values, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	params.Set("appid", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("Request to %s failed: %v", path, err)
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Errorf("API %s returned status %d: %s", path, resp.StatusCode, string(body))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Errorf("Failed to decode %s response: %v", path, err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// CurrentByCity queries current conditions by free-text city name.
func (c *Client) CurrentByCity(ctx context.Context, city, units string) (*CurrentResponse, error) {
	c.logger.Debugf("Fetching current weather for city: %s", city)

	params := url.Values{}
	params.Set("q", city)
	params.Set("units", units)

	var resp CurrentResponse
	if err := c.get(ctx, c.lookupTimeout, "/data/2.5/weather", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentByCoords queries current conditions by coordinates.
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64, units string) (*CurrentResponse, error) {
	c.logger.Debugf("Fetching current weather for coordinates: %.4f, %.4f", lat, lon)

	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("units", units)

	var resp CurrentResponse
	if err := c.get(ctx, c.lookupTimeout, "/data/2.5/weather", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Forecast queries the 5-day/3-hour forecast. The endpoint is
// coordinate-only, so callers must geocode first.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, units string) (*ForecastResponse, error) {
	c.logger.Debugf("Fetching forecast for coordinates: %.4f, %.4f", lat, lon)

	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("units", units)

	var resp ForecastResponse
	if err := c.get(ctx, c.lookupTimeout, "/data/2.5/forecast", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GeocodeCity resolves a city name to coordinates, requesting exactly
// one match. Returns ErrNoMatch when the geocoder has no hit or the
// hit lacks a name.
func (c *Client) GeocodeCity(ctx context.Context, city string) (*GeoResult, error) {
	c.logger.Debugf("Geocoding city: %s", city)

	params := url.Values{}
	params.Set("q", city)
	params.Set("limit", "1")

	var results []GeoResult
	if err := c.get(ctx, c.lookupTimeout, "/geo/1.0/direct", params, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 || results[0].Name == "" {
		c.logger.Debugf("No geocoding match for %q", city)
		return nil, ErrNoMatch
	}
	return &results[0], nil
}

// SearchCities runs a free-text geocoding search with the shorter
// search timeout. A zero-match result is not an error.
func (c *Client) SearchCities(ctx context.Context, query string, limit int) ([]GeoResult, error) {
	c.logger.Debugf("Searching cities matching %q (limit %d)", query, limit)

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var results []GeoResult
	if err := c.get(ctx, c.searchTimeout, "/geo/1.0/direct", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// AirPollution queries the air-quality index for coordinates.
func (c *Client) AirPollution(ctx context.Context, lat, lon float64) (*AirPollutionResponse, error) {
	c.logger.Debugf("Fetching air quality for coordinates: %.4f, %.4f", lat, lon)

	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))

	var resp AirPollutionResponse
	if err := c.get(ctx, c.lookupTimeout, "/data/2.5/air_pollution", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
