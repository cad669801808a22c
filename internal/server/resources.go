package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	weatherScheme     = "weather://"
	searchResourceURI = "weather://search"
)

// popularCities get a pre-registered resource each. Anything outside
// this catalog is rejected by the harness as an unknown resource.
var popularCities = []string{
	"New York",
	"London",
	"Tokyo",
	"Paris",
	"Sydney",
	"Los Angeles",
	"Berlin",
}

func citySlug(city string) string {
	return strings.ReplaceAll(strings.ToLower(city), " ", "-")
}

func cityFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

func (s *Server) registerResources() {
	for _, city := range popularCities {
		s.mcp.AddResource(&mcp.Resource{
			URI:         weatherScheme + citySlug(city),
			Name:        fmt.Sprintf("Weather for %s", city),
			Description: fmt.Sprintf("Current weather conditions and forecast for %s", city),
			MIMEType:    "application/json",
		}, s.readCityResource)
	}

	s.mcp.AddResource(&mcp.Resource{
		URI:         searchResourceURI,
		Name:        "Weather Search",
		Description: "Search for weather information for any city worldwide",
		MIMEType:    "application/json",
	}, s.readSearchResource)
}

// readCityResource resolves the city from the URI slug and returns the
// metric current-weather report as indented JSON, or an error object
// when the lookup failed.
func (s *Server) readCityResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	slug := strings.TrimPrefix(req.Params.URI, weatherScheme)
	city := cityFromSlug(slug)

	var payload []byte
	report, err := s.provider.CurrentWeather(ctx, city, "metric")
	if err != nil {
		s.logger.Warnf("Resource read failed for %q: %v", city, err)
		payload, _ = json.Marshal(map[string]string{
			"error": fmt.Sprintf("Could not fetch weather data for %s", city),
		})
	} else {
		payload, _ = json.MarshalIndent(report, "", "  ")
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(payload),
		}},
	}, nil
}

func (s *Server) readSearchResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	payload, _ := json.Marshal(map[string]interface{}{
		"description":     "Use the get_weather or get_forecast tools to search for weather data",
		"available_tools": []string{"get_weather", "get_forecast", "search_cities"},
		"popular_cities":  popularCities,
	})

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(payload),
		}},
	}, nil
}
