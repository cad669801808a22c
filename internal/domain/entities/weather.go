package entities

// Value records produced by the data assemblers. All of them are
// request-scoped: built for a single tool invocation and never cached.

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeatherReport is a fully derived snapshot of current
// conditions. Temperature and wind fields are always expressed in the
// unit system the caller requested, never mixed. The air-quality
// fields are zero-valued when the air-pollution lookup failed.
type CurrentWeatherReport struct {
	Temperature   float64     `json:"temperature"`
	TempUnit      string      `json:"temp_unit"`
	FeelsLike     float64     `json:"feels_like"`
	Condition     string      `json:"condition"`
	Humidity      int         `json:"humidity"`
	WindSpeed     float64     `json:"wind_speed"`
	WindUnit      string      `json:"wind_unit"`
	WindDirection int         `json:"wind_direction"`
	Clouds        int         `json:"clouds"`
	Visibility    float64     `json:"visibility"`
	Pressure      int         `json:"pressure"`
	Sunrise       string      `json:"sunrise"`
	Sunset        string      `json:"sunset"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	Coordinates   Coordinates `json:"coordinates"`
	AQI           int         `json:"aqi,omitempty"`
	AQILabel      string      `json:"aqi_label,omitempty"`
	AQIMarker     string      `json:"aqi_color,omitempty"`
}

// HasAirQuality reports whether air-quality fields were merged in.
func (r *CurrentWeatherReport) HasAirQuality() bool {
	return r.AQI != 0
}

// AirQuality carries the upstream AQI code together with its semantic
// label and severity marker.
type AirQuality struct {
	Index  int    `json:"aqi"`
	Label  string `json:"aqi_label"`
	Marker string `json:"aqi_color"`
}

var (
	aqiLabels = map[int]string{
		1: "Good",
		2: "Fair",
		3: "Moderate",
		4: "Poor",
		5: "Very Poor",
	}
	aqiMarkers = map[int]string{
		1: "🟢",
		2: "🟡",
		3: "🟠",
		4: "🔴",
		5: "🟣",
	}
)

// AirQualityFromIndex maps an upstream AQI code to its label and
// marker. Codes outside 1..5 map to "Unknown" with a neutral marker.
func AirQualityFromIndex(index int) AirQuality {
	label, ok := aqiLabels[index]
	if !ok {
		label = "Unknown"
	}
	marker, ok := aqiMarkers[index]
	if !ok {
		marker = "⚪"
	}
	return AirQuality{Index: index, Label: label, Marker: marker}
}

// ForecastEntry is one day's representative reading, sampled from the
// upstream 3-hour series at local hour 12 or 15.
type ForecastEntry struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	TempUnit    string  `json:"temp_unit"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type ForecastReport struct {
	City    string          `json:"city"`
	Country string          `json:"country"`
	Entries []ForecastEntry `json:"forecasts"`
}

// CityMatch is a single geocoding search hit, in upstream order.
type CityMatch struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// DisplayName renders the match as "Name, State, Country", skipping
// the parts the upstream geocoder did not return.
func (m CityMatch) DisplayName() string {
	switch {
	case m.State != "" && m.Country != "":
		return m.Name + ", " + m.State + ", " + m.Country
	case m.Country != "":
		return m.Name + ", " + m.Country
	default:
		return m.Name
	}
}
