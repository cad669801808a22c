package services

import (
	"context"
	"fmt"

	"weather-mcp-server/internal/domain/entities"
	"weather-mcp-server/internal/domain/ports"
	"weather-mcp-server/internal/infrastructure/openweather"
	"weather-mcp-server/internal/logger"
)

const (
	maxForecastDays    = 5
	defaultSearchLimit = 5
)

// WeatherService composes upstream calls into the reports the
// dispatcher exposes. It holds no state across invocations.
type WeatherService struct {
	client *openweather.Client
	logger logger.Logger
}

func NewWeatherService(client *openweather.Client) ports.Provider {
	return &WeatherService{
		client: client,
		logger: logger.New("info", "development").WithField("component", "weather_service"),
	}
}

// CurrentWeather tries a direct name-based lookup first and falls back
// to geocoding plus a coordinate lookup when that fails. Air quality
// is merged in when available; its failure never fails the report.
func (s *WeatherService) CurrentWeather(ctx context.Context, city, units string) (*entities.CurrentWeatherReport, error) {
	raw, err := s.client.CurrentByCity(ctx, city, units)
	if err == nil {
		return s.buildReport(ctx, raw, units, raw.Name, raw.Sys.Country, raw.Coord.Lat, raw.Coord.Lon), nil
	}

	s.logger.Warnf("Direct weather lookup for %q failed, falling back to geocoding: %v", city, err)

	loc, geoErr := s.client.GeocodeCity(ctx, city)
	if geoErr != nil {
		return nil, fmt.Errorf("resolve city %q: %w", city, geoErr)
	}

	raw, err = s.client.CurrentByCoords(ctx, loc.Lat, loc.Lon, units)
	if err != nil {
		return nil, fmt.Errorf("weather lookup by coordinates for %q: %w", city, err)
	}

	return s.buildReport(ctx, raw, units, loc.Name, loc.Country, loc.Lat, loc.Lon), nil
}

func (s *WeatherService) buildReport(ctx context.Context, raw *openweather.CurrentResponse, units, name, country string, lat, lon float64) *entities.CurrentWeatherReport {
	condition := ""
	if len(raw.Weather) > 0 {
		condition = raw.Weather[0].Description
	}

	report := &entities.CurrentWeatherReport{
		Temperature:   raw.Main.Temp,
		TempUnit:      tempUnit(units),
		FeelsLike:     raw.Main.FeelsLike,
		Condition:     condition,
		Humidity:      raw.Main.Humidity,
		WindSpeed:     convertWindSpeed(raw.Wind.Speed, units),
		WindUnit:      speedUnit(units),
		WindDirection: raw.Wind.Deg,
		Clouds:        raw.Clouds.All,
		Visibility:    float64(raw.Visibility) / 1000,
		Pressure:      raw.Main.Pressure,
		Sunrise:       formatUnixClock(raw.Sys.Sunrise),
		Sunset:        formatUnixClock(raw.Sys.Sunset),
		City:          name,
		Country:       country,
		Coordinates:   entities.Coordinates{Lat: lat, Lon: lon},
	}

	if aq, err := s.airQuality(ctx, lat, lon); err != nil {
		s.logger.Warnf("Air quality lookup failed for %.4f, %.4f: %v", lat, lon, err)
	} else {
		report.AQI = aq.Index
		report.AQILabel = aq.Label
		report.AQIMarker = aq.Marker
	}

	return report
}

func (s *WeatherService) airQuality(ctx context.Context, lat, lon float64) (entities.AirQuality, error) {
	resp, err := s.client.AirPollution(ctx, lat, lon)
	if err != nil {
		return entities.AirQuality{}, err
	}
	if len(resp.List) == 0 {
		return entities.AirQuality{}, fmt.Errorf("air pollution response has no entries")
	}
	return entities.AirQualityFromIndex(resp.List[0].Main.AQI), nil
}

// Forecast resolves the city (the forecast endpoint is coordinate-only)
// and samples the 3-hour series down to one representative entry per
// calendar date, preferring local hours 12 and 15, capped at 5 days.
func (s *WeatherService) Forecast(ctx context.Context, city, units string) (*entities.ForecastReport, error) {
	loc, err := s.client.GeocodeCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("resolve city %q: %w", city, err)
	}

	raw, err := s.client.Forecast(ctx, loc.Lat, loc.Lon, units)
	if err != nil {
		return nil, fmt.Errorf("forecast lookup for %q: %w", city, err)
	}

	return &entities.ForecastReport{
		City:    loc.Name,
		Country: loc.Country,
		Entries: sampleDailyForecasts(raw.List, tempUnit(units)),
	}, nil
}

func sampleDailyForecasts(items []openweather.ForecastItem, unit string) []entities.ForecastEntry {
	entries := make([]entities.ForecastEntry, 0, maxForecastDays)
	seen := make(map[string]bool)

	for _, item := range items {
		if len(item.DtTxt) < 13 {
			continue
		}
		date := item.DtTxt[:10]
		hour := item.DtTxt[11:13]

		if seen[date] || (hour != "12" && hour != "15") {
			continue
		}
		seen[date] = true

		condition := ""
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Description
		}

		entries = append(entries, entities.ForecastEntry{
			Date:        forecastDateLabel(date),
			Temperature: item.Main.Temp,
			TempUnit:    unit,
			Condition:   condition,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		})

		if len(entries) >= maxForecastDays {
			break
		}
	}

	return entries
}

// SearchCities runs a free-text geocoding search. The limit is clamped
// to 1..10 with a default of 5, and the result never exceeds it.
func (s *WeatherService) SearchCities(ctx context.Context, query string, limit int) ([]entities.CityMatch, error) {
	if limit < 1 || limit > 10 {
		limit = defaultSearchLimit
	}

	results, err := s.client.SearchCities(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("city search %q: %w", query, err)
	}

	if len(results) > limit {
		results = results[:limit]
	}

	matches := make([]entities.CityMatch, 0, len(results))
	for _, r := range results {
		matches = append(matches, entities.CityMatch{
			Name:    r.Name,
			State:   r.State,
			Country: r.Country,
			Lat:     r.Lat,
			Lon:     r.Lon,
		})
	}

	return matches, nil
}
