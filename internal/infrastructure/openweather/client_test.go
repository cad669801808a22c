package openweather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "test-key", 10*time.Second, 5*time.Second)
}

func TestClient_CurrentByCity(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/data/2.5/weather", r.URL.Path)
			assert.Equal(t, "Paris", r.URL.Query().Get("q"))
			assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))

			response := map[string]interface{}{
				"coord": map[string]interface{}{"lat": 48.85, "lon": 2.35},
				"weather": []map[string]interface{}{
					{"description": "light rain"},
				},
				"main": map[string]interface{}{
					"temp":       15.0,
					"feels_like": 14.2,
					"pressure":   1013,
					"humidity":   80,
				},
				"visibility": 10000,
				"wind":       map[string]interface{}{"speed": 3.0, "deg": 180},
				"clouds":     map[string]interface{}{"all": 75},
				"sys": map[string]interface{}{
					"country": "FR",
					"sunrise": 1700000000,
					"sunset":  1700030000,
				},
				"name": "Paris",
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(response)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		resp, err := client.CurrentByCity(context.Background(), "Paris", "metric")

		require.NoError(t, err)
		assert.Equal(t, "Paris", resp.Name)
		assert.Equal(t, "FR", resp.Sys.Country)
		assert.Equal(t, 15.0, resp.Main.Temp)
		assert.Equal(t, 3.0, resp.Wind.Speed)
		assert.Equal(t, int64(1700000000), resp.Sys.Sunrise)
	})

	t.Run("API error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"cod":     "404",
				"message": "city not found",
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		resp, err := client.CurrentByCity(context.Background(), "Nowhere", "metric")

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "API returned status 404")
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("invalid json"))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		resp, err := client.CurrentByCity(context.Background(), "Paris", "metric")

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "failed to decode response")
	})
}

func TestClient_GeocodeCity(t *testing.T) {
	t.Run("requests exactly one match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/geo/1.0/direct", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("limit"))

			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"name": "Paris", "lat": 48.85, "lon": 2.35, "country": "FR"},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		result, err := client.GeocodeCity(context.Background(), "Paris")

		require.NoError(t, err)
		assert.Equal(t, "Paris", result.Name)
		assert.Equal(t, 48.85, result.Lat)
		assert.Equal(t, 2.35, result.Lon)
		assert.Equal(t, "FR", result.Country)
	})

	t.Run("zero matches", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]map[string]interface{}{})
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		result, err := client.GeocodeCity(context.Background(), "UnknownCityXYZ")

		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Nil(t, result)
	})

	t.Run("match without name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"lat": 1.0, "lon": 2.0},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		result, err := client.GeocodeCity(context.Background(), "Somewhere")

		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Nil(t, result)
	})
}

func TestClient_SearchCities(t *testing.T) {
	t.Run("passes limit through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/geo/1.0/direct", r.URL.Path)
			assert.Equal(t, "3", r.URL.Query().Get("limit"))
			assert.Equal(t, "Spring", r.URL.Query().Get("q"))

			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"name": "Springfield", "state": "Illinois", "country": "US", "lat": 39.8, "lon": -89.6},
				{"name": "Springfield", "state": "Missouri", "country": "US", "lat": 37.2, "lon": -93.3},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		results, err := client.SearchCities(context.Background(), "Spring", 3)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Illinois", results[0].State)
	})

	t.Run("zero matches is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]map[string]interface{}{})
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		results, err := client.SearchCities(context.Background(), "zzz", 5)

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestClient_AirPollution(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/air_pollution", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"list": []map[string]interface{}{
				{"main": map[string]interface{}{"aqi": 2}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.AirPollution(context.Background(), 48.85, 2.35)

	require.NoError(t, err)
	require.Len(t, resp.List, 1)
	assert.Equal(t, 2, resp.List[0].Main.AQI)
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.CurrentByCity(ctx, "Paris", "metric")

	assert.Error(t, err)
}
