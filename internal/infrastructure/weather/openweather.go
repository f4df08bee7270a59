package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Service implements domain.WeatherService against OpenWeatherMap
type Service struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewService creates a new weather service. baseURL is overridable for
// tests; empty means the real API.
func NewService(apiKey, baseURL string) *Service {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Service{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
}

type forecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// Current implements domain.WeatherService
func (s *Service) Current(ctx context.Context, location string) (*domain.CurrentWeather, error) {
	var data currentResponse
	if err := s.get(ctx, "/weather", location, &data); err != nil {
		return nil, err
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("weather response missing conditions")
	}

	return &domain.CurrentWeather{
		Location:      data.Name,
		Country:       data.Sys.Country,
		Temperature:   int(math.Round(data.Main.Temp)),
		FeelsLike:     int(math.Round(data.Main.FeelsLike)),
		Humidity:      data.Main.Humidity,
		Pressure:      data.Main.Pressure,
		Description:   data.Weather[0].Description,
		Icon:          data.Weather[0].Icon,
		WindSpeed:     int(math.Round(data.Wind.Speed * 3.6)), // m/s to km/h
		WindDirection: data.Wind.Deg,
		Visibility:    float64(data.Visibility) / 1000, // m to km
		Sunrise:       time.Unix(data.Sys.Sunrise, 0).Format("3:04:05 PM"),
		Sunset:        time.Unix(data.Sys.Sunset, 0).Format("3:04:05 PM"),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Forecast implements domain.WeatherService. The 3-hourly upstream list is
// grouped by day: average temperature, most frequent description, first
// icon, first five days.
func (s *Service) Forecast(ctx context.Context, location string) (*domain.Forecast, error) {
	var data forecastResponse
	if err := s.get(ctx, "/forecast", location, &data); err != nil {
		return nil, err
	}

	type dayAgg struct {
		temps        []float64
		descriptions []string
		icon         string
	}

	var order []string
	days := map[string]*dayAgg{}
	for _, item := range data.List {
		if len(item.Weather) == 0 {
			continue
		}
		date := time.Unix(item.Dt, 0).Format("Mon Jan 2 2006")
		agg, ok := days[date]
		if !ok {
			agg = &dayAgg{icon: item.Weather[0].Icon}
			days[date] = agg
			order = append(order, date)
		}
		agg.temps = append(agg.temps, item.Main.Temp)
		agg.descriptions = append(agg.descriptions, item.Weather[0].Description)
	}

	forecasts := make([]domain.DailyForecast, 0, len(order))
	for _, date := range order {
		agg := days[date]
		sum := 0.0
		for _, t := range agg.temps {
			sum += t
		}

		counts := map[string]int{}
		for _, d := range agg.descriptions {
			counts[d]++
		}
		descs := make([]string, 0, len(counts))
		for d := range counts {
			descs = append(descs, d)
		}
		sort.Slice(descs, func(i, j int) bool {
			if counts[descs[i]] != counts[descs[j]] {
				return counts[descs[i]] > counts[descs[j]]
			}
			return descs[i] < descs[j]
		})

		forecasts = append(forecasts, domain.DailyForecast{
			Date:        date,
			Temperature: int(math.Round(sum / float64(len(agg.temps)))),
			Description: descs[0],
			Icon:        agg.icon,
		})
	}
	if len(forecasts) > 5 {
		forecasts = forecasts[:5]
	}

	return &domain.Forecast{
		Location:  data.City.Name,
		Country:   data.City.Country,
		Forecasts: forecasts,
	}, nil
}

func (s *Service) get(ctx context.Context, path, location string, out interface{}) error {
	if s.apiKey == "" {
		return domain.ErrWeatherNotConfigured
	}

	endpoint := fmt.Sprintf("%s%s?q=%s&appid=%s&units=metric",
		s.baseURL, path, url.QueryEscape(location), url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.ErrLocationNotFound
	case http.StatusUnauthorized:
		return domain.ErrWeatherAPIKeyInvalid
	default:
		return fmt.Errorf("weather upstream returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode weather response: %w", err)
	}
	return nil
}
