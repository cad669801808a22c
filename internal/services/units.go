package services

import "time"

// OpenWeatherMap reports wind in m/s regardless of the requested unit
// system; imperial output converts to mph.
const msToMph = 2.237

func tempUnit(units string) string {
	if units == "imperial" {
		return "°F"
	}
	return "°C"
}

func speedUnit(units string) string {
	if units == "imperial" {
		return "mph"
	}
	return "m/s"
}

func convertWindSpeed(speed float64, units string) float64 {
	if units == "imperial" {
		return speed * msToMph
	}
	return speed
}

// formatUnixClock renders a Unix timestamp as local HH:MM, or "--:--"
// when the upstream omitted it (zero value).
func formatUnixClock(ts int64) string {
	if ts == 0 {
		return "--:--"
	}
	return time.Unix(ts, 0).Format("15:04")
}

// forecastDateLabel turns "2006-01-02" into "Mon, Jan 02". Unparseable
// input is returned as-is.
func forecastDateLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 02")
}
