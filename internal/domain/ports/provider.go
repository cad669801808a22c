package ports

import (
	"context"

	"weather-mcp-server/internal/domain/entities"
)

// Provider assembles weather data for the tool/resource dispatcher.
type Provider interface {
	CurrentWeather(ctx context.Context, city, units string) (*entities.CurrentWeatherReport, error)
	Forecast(ctx context.Context, city, units string) (*entities.ForecastReport, error)
	SearchCities(ctx context.Context, query string, limit int) ([]entities.CityMatch, error)
}
