package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"weather-mcp-server/internal/domain/ports"
	"weather-mcp-server/internal/logger"
)

const (
	serverName    = "weather-server"
	serverVersion = "1.0.0"
)

// Server exposes the weather assemblers as MCP tools and resources.
// Every invocation is independent and stateless; the transport harness
// drives requests one at a time.
type Server struct {
	provider ports.Provider
	logger   logger.Logger
	mcp      *mcp.Server
}

func New(provider ports.Provider, log logger.Logger) *Server {
	s := &Server{
		provider: provider,
		logger:   log.WithField("component", "mcp_server"),
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
	}

	s.registerTools()
	s.registerResources()

	return s
}

type GetWeatherInput struct {
	City  string `json:"city" jsonschema:"Name of the city to get weather for"`
	Units string `json:"units,omitempty" jsonschema:"Temperature units: metric for Celsius, imperial for Fahrenheit (default: metric)"`
}

type GetForecastInput struct {
	City  string `json:"city" jsonschema:"Name of the city to get forecast for"`
	Units string `json:"units,omitempty" jsonschema:"Temperature units: metric for Celsius, imperial for Fahrenheit (default: metric)"`
}

type SearchCitiesInput struct {
	Query string `json:"query" jsonschema:"City name or partial name to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results to return (1-10, default: 5)"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_weather",
		Description: "Get current weather conditions for a specific city",
	}, s.getWeather)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_forecast",
		Description: "Get 5-day weather forecast for a specific city",
	}, s.getForecast)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_cities",
		Description: "Search for cities and get their coordinates using geocoding",
	}, s.searchCities)
}

// Run serves the stdio transport until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Infof("Serving MCP over stdio as %s %s", serverName, serverVersion)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns the streamable-HTTP handler for the same server.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}

func normalizeUnits(units string) string {
	if units == "imperial" {
		return "imperial"
	}
	return "metric"
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func (s *Server) getWeather(ctx context.Context, _ *mcp.CallToolRequest, in GetWeatherInput) (*mcp.CallToolResult, any, error) {
	if in.City == "" {
		return errorResult("Error: City name is required"), nil, nil
	}

	report, err := s.provider.CurrentWeather(ctx, in.City, normalizeUnits(in.Units))
	if err != nil {
		s.logger.Warnf("get_weather failed for %q: %v", in.City, err)
		return errorResult(renderWeatherNotFound(in.City)), nil, nil
	}

	return textResult(renderCurrentWeather(report)), nil, nil
}

func (s *Server) getForecast(ctx context.Context, _ *mcp.CallToolRequest, in GetForecastInput) (*mcp.CallToolResult, any, error) {
	if in.City == "" {
		return errorResult("Error: City name is required"), nil, nil
	}

	report, err := s.provider.Forecast(ctx, in.City, normalizeUnits(in.Units))
	if err != nil {
		s.logger.Warnf("get_forecast failed for %q: %v", in.City, err)
		return errorResult(renderForecastNotFound(in.City)), nil, nil
	}

	return textResult(renderForecast(report)), nil, nil
}

func (s *Server) searchCities(ctx context.Context, _ *mcp.CallToolRequest, in SearchCitiesInput) (*mcp.CallToolResult, any, error) {
	if in.Query == "" {
		return errorResult("Error: Search query is required"), nil, nil
	}

	matches, err := s.provider.SearchCities(ctx, in.Query, in.Limit)
	if err != nil {
		s.logger.Warnf("search_cities failed for %q: %v", in.Query, err)
		return errorResult("❌ Error searching for cities. Please try again."), nil, nil
	}

	return textResult(renderCitySearch(in.Query, matches)), nil, nil
}
