package server

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-mcp-server/internal/domain/entities"
)

var titleCaser = cases.Title(language.English)

func renderCurrentWeather(r *entities.CurrentWeatherReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌤️ Weather for %s, %s\n\n", r.City, r.Country)
	fmt.Fprintf(&b, "🌡️ Temperature: %d%s (feels like %d%s)\n",
		int(r.Temperature), r.TempUnit, int(r.FeelsLike), r.TempUnit)
	fmt.Fprintf(&b, "☁️ Conditions: %s\n", titleCaser.String(r.Condition))
	fmt.Fprintf(&b, "💧 Humidity: %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "💨 Wind: %.1f %s (%d°)\n", r.WindSpeed, r.WindUnit, r.WindDirection)
	fmt.Fprintf(&b, "☁️ Clouds: %d%%\n", r.Clouds)
	fmt.Fprintf(&b, "👁️ Visibility: %.1f km\n", r.Visibility)
	fmt.Fprintf(&b, "🔽 Pressure: %d hPa\n", r.Pressure)
	fmt.Fprintf(&b, "🌅 Sunrise: %s\n", r.Sunrise)
	fmt.Fprintf(&b, "🌇 Sunset: %s", r.Sunset)

	if r.HasAirQuality() {
		fmt.Fprintf(&b, "\n🍃 Air Quality: %s %s (AQI: %d)", r.AQIMarker, r.AQILabel, r.AQI)
	}

	return b.String()
}

func renderWeatherNotFound(city string) string {
	return fmt.Sprintf("❌ Could not find weather data for '%s'. Please check the city name and try again.", city)
}

func renderForecast(r *entities.ForecastReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 5-Day Forecast for %s, %s\n\n", r.City, r.Country)

	for _, entry := range r.Entries {
		fmt.Fprintf(&b, "📆 %s\n", entry.Date)
		fmt.Fprintf(&b, "   🌡️ %d%s - %s\n", int(entry.Temperature), entry.TempUnit, titleCaser.String(entry.Condition))
		fmt.Fprintf(&b, "   💧 %d%% humidity, 💨 %.1f m/s wind\n\n", entry.Humidity, entry.WindSpeed)
	}

	return b.String()
}

func renderForecastNotFound(city string) string {
	return fmt.Sprintf("❌ Could not find forecast data for '%s'. Please check the city name and try again.", city)
}

func renderCitySearch(query string, matches []entities.CityMatch) string {
	if len(matches) == 0 {
		return fmt.Sprintf("🔍 No cities found matching '%s'. Try a different search term.", query)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🔍 Found %d cities matching '%s':\n\n", len(matches), query)

	for i, match := range matches {
		fmt.Fprintf(&b, "%d. %s\n", i+1, match.DisplayName())
		fmt.Fprintf(&b, "   📍 Coordinates: %.2f, %.2f\n\n", match.Lat, match.Lon)
	}

	return b.String()
}
