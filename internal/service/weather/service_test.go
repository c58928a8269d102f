package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mindcare-app/backend/internal/config"
)

func fakeUpstream(t *testing.T, known map[string]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") == "" {
			http.Error(w, `{"message":"Invalid API key"}`, http.StatusUnauthorized)
			return
		}
		city := r.URL.Query().Get("q")
		temp, ok := known[city]
		if !ok {
			http.Error(w, `{"message":"city not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"name":%q,"weather":[{"main":"Clouds","description":"scattered clouds"}],"main":{"temp":%g,"humidity":74},"wind":{"speed":3.6}}`, city, temp)
	}))
}

func testConfig(baseURL string) config.WeatherConfig {
	return config.WeatherConfig{
		APIKey:       "test-key",
		BaseURL:      baseURL,
		DefaultCity:  "Mumbai",
		FallbackCity: "Delhi",
	}
}

func TestCurrentReturnsRequestedCity(t *testing.T) {
	upstream := fakeUpstream(t, map[string]float64{"Pune": 27.4, "Mumbai": 30.1})
	defer upstream.Close()

	svc := NewService(testConfig(upstream.URL), upstream.Client(), nil)
	report, err := svc.Current(context.Background(), "Pune")
	if err != nil {
		t.Fatalf("Current err: %v", err)
	}
	if report.City != "Pune" || report.Temperature != 27.4 || report.Condition != "Clouds" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Humidity != 74 || report.WindSpeed != 3.6 {
		t.Fatalf("missing payload fields: %+v", report)
	}
}

func TestCurrentFallsBackThroughChain(t *testing.T) {
	upstream := fakeUpstream(t, map[string]float64{"Delhi": 24.0})
	defer upstream.Close()

	svc := NewService(testConfig(upstream.URL), upstream.Client(), nil)
	report, err := svc.Current(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("Current err: %v", err)
	}
	if report.City != "Delhi" {
		t.Fatalf("expected fallback city report, got %+v", report)
	}
}

func TestCurrentEmptyCityStartsAtDefault(t *testing.T) {
	upstream := fakeUpstream(t, map[string]float64{"Mumbai": 30.1})
	defer upstream.Close()

	svc := NewService(testConfig(upstream.URL), upstream.Client(), nil)
	report, err := svc.Current(context.Background(), "")
	if err != nil {
		t.Fatalf("Current err: %v", err)
	}
	if report.City != "Mumbai" {
		t.Fatalf("expected default city report, got %+v", report)
	}
}

func TestCurrentAllCitiesRejected(t *testing.T) {
	upstream := fakeUpstream(t, nil)
	defer upstream.Close()

	svc := NewService(testConfig(upstream.URL), upstream.Client(), nil)
	if _, err := svc.Current(context.Background(), "Atlantis"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCurrentDisabledWithoutKey(t *testing.T) {
	cfg := config.WeatherConfig{BaseURL: "http://127.0.0.1:0", DefaultCity: "Mumbai"}
	svc := NewService(cfg, nil, nil)
	if _, err := svc.Current(context.Background(), "Mumbai"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
