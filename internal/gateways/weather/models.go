package weather

// Snapshot is the normalized weather payload served to the UI.
type Snapshot struct {
	LocationName string        `json:"location"`
	TemperatureC float64       `json:"temperature"`
	FeelsLikeC   float64       `json:"feelsLike"`
	HumidityPct  int           `json:"humidity"`
	WindSpeedMs  float64       `json:"windSpeed"`
	Condition    string        `json:"condition"`
	Forecast     []ForecastDay `json:"forecast"`
	Alerts       []Alert       `json:"alerts"`
	Source       string        `json:"source"` // "live" or "fallback"
}

// Current is the current-conditions slice of a Snapshot, serialized as the
// top-level "current" object of the weather endpoint.
type Current struct {
	LocationName string  `json:"location"`
	TemperatureC float64 `json:"temperature"`
	FeelsLikeC   float64 `json:"feelsLike"`
	HumidityPct  int     `json:"humidity"`
	WindSpeedMs  float64 `json:"windSpeed"`
	Condition    string  `json:"condition"`
}

// Current projects the current conditions out of a snapshot.
func (s *Snapshot) Current() Current {
	return Current{
		LocationName: s.LocationName,
		TemperatureC: s.TemperatureC,
		FeelsLikeC:   s.FeelsLikeC,
		HumidityPct:  s.HumidityPct,
		WindSpeedMs:  s.WindSpeedMs,
		Condition:    s.Condition,
	}
}

// ForecastDay is one day of the 0-5 day forecast, ordered by date ascending.
type ForecastDay struct {
	Date      string  `json:"date"`
	MinC      float64 `json:"minTemp"`
	MaxC      float64 `json:"maxTemp"`
	Condition string  `json:"condition"`
}

// Alert is a farmer-facing advisory derived from current conditions.
type Alert struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Coordinates resolved by the geolocation chain.
type Coordinates struct {
	Lat  float64
	Lon  float64
	City string
}

// openMeteoResponse mirrors the upstream forecast payload.
type openMeteoResponse struct {
	Current struct {
		Temperature2m       float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		RelativeHumidity2m  int     `json:"relative_humidity_2m"`
		WindSpeed10m        float64 `json:"wind_speed_10m"`
		WeatherCode         int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		WeatherCode      []int     `json:"weather_code"`
	} `json:"daily"`
}

// geoProviderResponse covers the field spellings of all three IP providers.
type geoProviderResponse struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}

func (g geoProviderResponse) coords() (float64, float64) {
	if g.Lat != 0 || g.Lon != 0 {
		return g.Lat, g.Lon
	}
	return g.Latitude, g.Longitude
}

// reverseGeoResponse mirrors the Nominatim reverse-geocode payload.
type reverseGeoResponse struct {
	Address struct {
		Village string `json:"village"`
		Town    string `json:"town"`
		City    string `json:"city"`
		County  string `json:"county"`
		State   string `json:"state"`
	} `json:"address"`
}

func (r reverseGeoResponse) placeName() string {
	for _, candidate := range []string{r.Address.Village, r.Address.Town, r.Address.City, r.Address.County, r.Address.State} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// conditionFromCode maps WMO weather codes to display strings.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 3:
		return "Partly Cloudy"
	case code <= 48:
		return "Fog"
	case code <= 57:
		return "Drizzle"
	case code <= 67:
		return "Rain"
	case code <= 77:
		return "Snow"
	case code <= 82:
		return "Rain Showers"
	case code <= 86:
		return "Snow Showers"
	default:
		return "Thunderstorm"
	}
}
