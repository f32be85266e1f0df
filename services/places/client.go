package places

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripplanner/models"
	"tripplanner/utils"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	detailsURL      = "https://maps.googleapis.com/maps/api/place/details/json"

	detailsFields = "place_id,name,rating,price_level,formatted_address,geometry,types,opening_hours"
)

// Client is a Google Places nearby search client guarded by a circuit
// breaker.
type Client struct {
	apiKey     string
	baseURL    string
	detailsURL string
	http       *http.Client
	breaker    *gobreaker.CircuitBreaker[[]models.RawPlace]
	details    *gobreaker.CircuitBreaker[models.RawPlace]
	logger     *zap.Logger
}

func NewClient(apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    nearbySearchURL,
		detailsURL: detailsURL,
		http:       &http.Client{Timeout: timeout},
		breaker:    utils.NewBreaker[[]models.RawPlace]("google-places", logger),
		details:    utils.NewBreaker[models.RawPlace]("google-place-details", logger),
		logger:     logger,
	}
}

// WithBaseURL points the nearby search at another endpoint.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// WithDetailsURL points the details lookup at another endpoint.
func (c *Client) WithDetailsURL(u string) *Client {
	c.detailsURL = u
	return c
}

type nearbyResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []nearbyResult `json:"results"`
}

type nearbyResult struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Rating     *float64 `json:"rating"`
	PriceLevel *int     `json:"price_level"`
	Vicinity   string   `json:"vicinity"`
	Address    string   `json:"formatted_address"`
	Types      []string `json:"types"`
	Geometry   struct {
		Location struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	OpeningHours *struct {
		OpenNow *bool `json:"open_now"`
	} `json:"opening_hours"`
}

func (r nearbyResult) toRaw() models.RawPlace {
	p := models.RawPlace{
		ID:         r.PlaceID,
		Name:       r.Name,
		Rating:     r.Rating,
		PriceLevel: r.PriceLevel,
		Latitude:   r.Geometry.Location.Lat,
		Longitude:  r.Geometry.Location.Lng,
		Vicinity:   r.Vicinity,
		Types:      r.Types,
	}
	if p.Vicinity == "" {
		p.Vicinity = r.Address
	}
	if r.OpeningHours != nil {
		p.OpenNow = r.OpeningHours.OpenNow
	}
	return p
}

type detailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Result       nearbyResult `json:"result"`
}

// Search returns the places of a type around lat/lon. Every failure is
// reported as ErrProviderUnavailable.
func (c *Client) Search(ctx context.Context, lat, lon float64, radiusMeters int, category string) ([]models.RawPlace, error) {
	if c.apiKey == "" {
		return nil, models.NewPlanError(models.CodeProviderUnavailable, "places api key not configured")
	}

	places, err := c.breaker.Execute(func() ([]models.RawPlace, error) {
		return c.nearby(ctx, lat, lon, radiusMeters, category)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn("Places request rejected by circuit breaker", zap.Error(err))
		}
		return nil, models.NewPlanError(models.CodeProviderUnavailable, fmt.Sprintf("places search: %v", err))
	}
	return places, nil
}

func (c *Client) nearby(ctx context.Context, lat, lon float64, radiusMeters int, category string) ([]models.RawPlace, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lon))
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("type", category)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []models.RawPlace{}, nil
	default:
		return nil, fmt.Errorf("places status %s: %s", body.Status, body.ErrorMessage)
	}

	places := make([]models.RawPlace, 0, len(body.Results))
	for _, r := range body.Results {
		places = append(places, r.toRaw())
	}
	c.logger.Debug("Places search complete",
		zap.String("type", category),
		zap.Int("radius", radiusMeters),
		zap.Int("results", len(places)))
	return places, nil
}

// Details returns one place by its provider id. Unknown ids are
// ErrNotFound; other failures are ErrProviderUnavailable.
func (c *Client) Details(ctx context.Context, placeID string) (models.RawPlace, error) {
	if c.apiKey == "" {
		return models.RawPlace{}, models.NewPlanError(models.CodeProviderUnavailable, "places api key not configured")
	}

	place, err := c.details.Execute(func() (models.RawPlace, error) {
		return c.lookup(ctx, placeID)
	})
	switch {
	case err == nil:
		return place, nil
	case errors.Is(err, models.ErrNotFound):
		return models.RawPlace{}, err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.logger.Warn("Place details rejected by circuit breaker", zap.Error(err))
	}
	return models.RawPlace{}, models.NewPlanError(models.CodeProviderUnavailable, fmt.Sprintf("place details: %v", err))
}

func (c *Client) lookup(ctx context.Context, placeID string) (models.RawPlace, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailsFields)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.detailsURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.RawPlace{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.RawPlace{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.RawPlace{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.RawPlace{}, fmt.Errorf("decode response: %w", err)
	}

	switch body.Status {
	case "OK":
		return body.Result.toRaw(), nil
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return models.RawPlace{}, models.NewPlanError(models.CodeNotFound, fmt.Sprintf("place %q not found", placeID))
	default:
		return models.RawPlace{}, fmt.Errorf("details status %s: %s", body.Status, body.ErrorMessage)
	}
}
