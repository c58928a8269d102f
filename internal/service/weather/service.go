package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/mindcare-app/backend/internal/config"
)

// Lookup errors.
var (
	ErrDisabled    = errors.New("weather lookup disabled: no API key configured")
	ErrUnavailable = errors.New("weather unavailable for requested cities")
)

// Report is the trimmed conditions snapshot shown on the dashboard.
type Report struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"` // celsius
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// apiResponse mirrors the fields we read from the upstream payload.
type apiResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Service fetches current conditions, walking a fallback chain of cities
// when the upstream rejects one.
type Service struct {
	cfg    config.WeatherConfig
	client *http.Client
	logger *zap.Logger
}

func NewService(cfg config.WeatherConfig, client *http.Client, logger *zap.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, client: client, logger: logger}
}

// Current returns conditions for the requested city, falling back to the
// configured default and then the fallback city. An empty city starts at
// the default.
func (s *Service) Current(ctx context.Context, city string) (Report, error) {
	if !s.cfg.Enabled() {
		return Report{}, ErrDisabled
	}

	chain := []string{city, s.cfg.DefaultCity, s.cfg.FallbackCity}
	tried := make(map[string]bool)
	var lastErr error
	for _, candidate := range chain {
		if candidate == "" || tried[candidate] {
			continue
		}
		tried[candidate] = true

		report, err := s.fetch(ctx, candidate)
		if err == nil {
			return report, nil
		}
		lastErr = err
		s.logger.Warn("weather lookup failed", zap.String("city", candidate), zap.Error(err))
	}
	if lastErr != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	return Report{}, ErrUnavailable
}

func (s *Service) fetch(ctx context.Context, city string) (Report, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", s.cfg.APIKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Report{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("upstream returned %s", resp.Status)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("decode weather payload: %w", err)
	}

	report := Report{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		report.Condition = payload.Weather[0].Main
		report.Description = payload.Weather[0].Description
	}
	return report, nil
}
