package routing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"tripplanner/models"
	"tripplanner/utils"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const directionsURL = "https://maps.googleapis.com/maps/api/directions/json"

// Client resolves driving routes through the Google Directions API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[models.Route]
	logger  *zap.Logger
}

func NewClient(apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: directionsURL,
		http:    &http.Client{Timeout: timeout},
		breaker: utils.NewBreaker[models.Route]("google-directions", logger),
		logger:  logger,
	}
}

func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []struct {
			StartAddress string `json:"start_address"`
			EndAddress   string `json:"end_address"`
			Distance     struct {
				Value float64 `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"` // seconds
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route returns the distance and duration of the first route between two
// places. Upstream failures are reported as ErrProviderUnavailable, an
// empty answer as ErrNotFound.
func (c *Client) Route(ctx context.Context, origin, destination string) (models.Route, error) {
	if c.apiKey == "" {
		return models.Route{}, models.NewPlanError(models.CodeProviderUnavailable, "directions api key not configured")
	}

	route, err := c.breaker.Execute(func() (models.Route, error) {
		return c.directions(ctx, origin, destination)
	})
	switch {
	case err == nil:
		return route, nil
	case errors.Is(err, models.ErrNotFound):
		return models.Route{}, err
	default:
		return models.Route{}, models.NewPlanError(models.CodeProviderUnavailable, fmt.Sprintf("directions: %v", err))
	}
}

func (c *Client) directions(ctx context.Context, origin, destination string) (models.Route, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.Route{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.Route{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Route{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Route{}, fmt.Errorf("decode response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return models.Route{}, models.NewPlanError(models.CodeNotFound, fmt.Sprintf("no route from %q to %q", origin, destination))
	default:
		return models.Route{}, fmt.Errorf("directions status %s: %s", body.Status, body.ErrorMessage)
	}
	if len(body.Routes) == 0 || len(body.Routes[0].Legs) == 0 {
		return models.Route{}, models.NewPlanError(models.CodeNotFound, fmt.Sprintf("no route from %q to %q", origin, destination))
	}

	leg := body.Routes[0].Legs[0]
	return models.Route{
		Origin:      leg.StartAddress,
		Destination: leg.EndAddress,
		DistanceKm:  math.Round(leg.Distance.Value/10) / 100,
		DurationMin: math.Round(leg.Duration.Value / 60),
	}, nil
}
