package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weather-mcp-server/internal/domain/entities"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CurrentWeather(ctx context.Context, city, units string) (*entities.CurrentWeatherReport, error) {
	args := m.Called(ctx, city, units)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CurrentWeatherReport), args.Error(1)
}

func (m *MockProvider) Forecast(ctx context.Context, city, units string) (*entities.ForecastReport, error) {
	args := m.Called(ctx, city, units)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ForecastReport), args.Error(1)
}

func (m *MockProvider) SearchCities(ctx context.Context, query string, limit int) ([]entities.CityMatch, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.CityMatch), args.Error(1)
}
