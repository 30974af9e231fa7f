package weather

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"concierge/config"
	"concierge/internal/provider"
	"concierge/pkg/models"
)

const requestTimeout = 5 * time.Second

// Client wraps the OpenWeatherMap current-conditions API.
type Client struct {
	api    *provider.Client
	apiKey string
	logger zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		api:    provider.NewClient(cfg.OpenWeatherURL, requestTimeout, logger),
		apiKey: cfg.OpenWeatherAPIKey,
		logger: logger,
	}
}

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
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
	} `json:"wind"`
}

// Current fetches current conditions for a location. An unknown location maps
// to provider.ErrNotFound; a missing API key fails fast without a request.
func (c *Client) Current(ctx context.Context, location string) (*models.WeatherReport, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: OPENWEATHER_API_KEY not set", provider.ErrMisconfigured)
	}

	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	path := "/data/2.5/weather?" + params.Encode()

	c.logger.Debug().Str("location", location).Msg("fetching current weather")

	var resp currentResponse
	if err := c.api.GetJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("weather lookup for %q: %w", location, err)
	}

	report := &models.WeatherReport{
		Location:    resp.Name,
		Country:     resp.Sys.Country,
		Temperature: int(math.Round(resp.Main.Temp)),
		FeelsLike:   int(math.Round(resp.Main.FeelsLike)),
		Humidity:    resp.Main.Humidity,
		Pressure:    resp.Main.Pressure,
		WindSpeed:   resp.Wind.Speed,
	}
	if len(resp.Weather) > 0 {
		report.Description = resp.Weather[0].Description
		report.Icon = resp.Weather[0].Icon
	}

	return report, nil
}
