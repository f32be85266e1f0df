package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripplanner/middleware"
	"tripplanner/models"
	"tripplanner/services/planner"
	"tripplanner/services/transport"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePlanner struct {
	lastReq   models.ItineraryRequest
	lastQuery planner.SearchQuery
	err       error
}

func (f *fakePlanner) GenerateItinerary(_ context.Context, req models.ItineraryRequest) (models.Itinerary, error) {
	f.lastReq = req
	if f.err != nil {
		return models.Itinerary{}, f.err
	}
	return models.Itinerary{ID: "it-1", UserID: req.UserID}, nil
}

func (f *fakePlanner) SearchHotels(_ context.Context, q planner.SearchQuery) (planner.SearchResult, error) {
	f.lastQuery = q
	return planner.SearchResult{Candidates: []models.Candidate{{ID: "h1"}}, TotalFound: 4}, f.err
}

func (f *fakePlanner) SearchRestaurants(_ context.Context, q planner.SearchQuery) (planner.SearchResult, error) {
	f.lastQuery = q
	return planner.SearchResult{TotalFound: 0, Recommendations: []string{"try thali"}}, f.err
}

func (f *fakePlanner) HotelDetails(_ context.Context, id string) (models.Candidate, error) {
	if id != "h1" {
		return models.Candidate{}, models.ErrNotFound
	}
	return models.Candidate{ID: id, Name: "Casa Goa", Kind: models.KindHotel}, nil
}

func (f *fakePlanner) RestaurantDetails(_ context.Context, id string) (models.Candidate, error) {
	if f.err != nil {
		return models.Candidate{}, f.err
	}
	return models.Candidate{ID: id, Kind: models.KindRestaurant}, nil
}

type fakeRepo struct {
	saved []models.Itinerary
	items map[string]models.Itinerary
}

func (r *fakeRepo) Save(_ context.Context, it models.Itinerary) (string, error) {
	r.saved = append(r.saved, it)
	return it.ID, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (models.Itinerary, error) {
	it, ok := r.items[id]
	if !ok {
		return models.Itinerary{}, models.ErrNotFound
	}
	return it, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]models.Itinerary, error) {
	var out []models.Itinerary
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeExports struct{ ids []string }

func (e *fakeExports) EnqueueExport(_ context.Context, itineraryID, _ string) (string, error) {
	e.ids = append(e.ids, itineraryID)
	return "task-1", nil
}

type fakeTransport struct{ err error }

func (f fakeTransport) Options(_ context.Context, origin, destination, _ string) (transport.Options, error) {
	if f.err != nil {
		return transport.Options{}, f.err
	}
	return transport.Options{Route: models.Route{Origin: origin, Destination: destination, DistanceKm: 12}}, nil
}

func (f fakeTransport) Pricing(_ context.Context, origin, destination, fareType string) (transport.Pricing, error) {
	if f.err != nil {
		return transport.Pricing{}, f.err
	}
	return transport.Pricing{
		Route:         models.Route{Origin: origin, Destination: destination, DistanceKm: 5},
		Estimates:     []transport.FareEstimate{{Provider: "Ola", Category: "Mini", EstimatedTotal: 110, Available: true}},
		EstimatedTime: 14,
	}, nil
}

func (f fakeTransport) Availability(loc models.Location, mode string) (transport.Availability, error) {
	if f.err != nil {
		return transport.Availability{}, f.err
	}
	return transport.Availability{
		Location:  loc,
		Transport: []transport.ModeAvailability{{Type: "cab", Providers: []transport.ProviderAvailability{{Name: "Ola", Available: true}}}},
	}, nil
}

// asUser stands in for the auth middleware.
func asUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != "" {
			c.Set(middleware.UserIDKey, id)
		}
		c.Next()
	}
}

func newRouter(h *ItineraryHandler, user string) *gin.Engine {
	r := gin.New()
	r.Use(asUser(user))
	r.POST("/api/itinerary", h.Generate)
	r.GET("/api/itinerary", h.List)
	r.GET("/api/itinerary/:id", h.Get)
	r.GET("/api/itinerary/:id/export", h.Export)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate(t *testing.T) {
	p := &fakePlanner{}
	repo := &fakeRepo{}
	r := newRouter(NewItineraryHandler(p, repo, nil, nil), "user-1")

	w := serve(r, http.MethodPost, "/api/itinerary",
		`{"budget":20000,"days":3,"destination":"Goa","startDate":"2026-12-01","language":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "Goa", p.lastReq.Destination)
	assert.Equal(t, "user-1", p.lastReq.UserID)
	assert.Equal(t, "2026-12-01", p.lastReq.StartDate.Format("2006-01-02"))
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "it-1", repo.saved[0].ID)
}

func TestGenerateValidation(t *testing.T) {
	p := &fakePlanner{}
	r := newRouter(NewItineraryHandler(p, nil, nil, nil), "")

	bodies := map[string]string{
		"low budget": `{"budget":500,"days":3,"destination":"Goa","startDate":"2026-12-01"}`,
		"too long":   `{"budget":5000,"days":31,"destination":"Goa","startDate":"2026-12-01"}`,
		"short dest": `{"budget":5000,"days":3,"destination":"G","startDate":"2026-12-01"}`,
		"bad date":   `{"budget":5000,"days":3,"destination":"Goa","startDate":"01/12/2026"}`,
		"not json":   `budget=5000`,
		"no days":    `{"budget":5000,"destination":"Goa","startDate":"2026-12-01"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			w := serve(r, http.MethodPost, "/api/itinerary", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Empty(t, p.lastReq.Destination)
}

func TestGeneratePlannerError(t *testing.T) {
	p := &fakePlanner{err: models.ErrUnsupportedLanguage}
	r := newRouter(NewItineraryHandler(p, nil, nil, nil), "")

	w := serve(r, http.MethodPost, "/api/itinerary",
		`{"budget":5000,"days":2,"destination":"Goa","startDate":"2026-12-01","language":"xx"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndExport(t *testing.T) {
	repo := &fakeRepo{items: map[string]models.Itinerary{
		"mine":   {ID: "mine", UserID: "user-1"},
		"theirs": {ID: "theirs", UserID: "user-2"},
		"anon":   {ID: "anon"},
	}}
	exports := &fakeExports{}
	r := newRouter(NewItineraryHandler(&fakePlanner{}, repo, exports, nil), "user-1")

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/itinerary/mine", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/itinerary/anon", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/itinerary/theirs", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/itinerary/missing", "").Code)

	w := serve(r, http.MethodGet, "/api/itinerary/mine/export", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	var body struct {
		TaskID string `json:"taskId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "task-1", body.TaskID)
	assert.Equal(t, []string{"mine"}, exports.ids)

	w = serve(r, http.MethodGet, "/api/itinerary", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Itineraries []models.Itinerary `json:"itineraries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Itineraries, 1)
	assert.Equal(t, "mine", list.Itineraries[0].ID)
}

func TestStorageDisabled(t *testing.T) {
	r := newRouter(NewItineraryHandler(&fakePlanner{}, nil, nil, nil), "user-1")

	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/api/itinerary", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/api/itinerary/x", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/api/itinerary/x/export", "").Code)
}

func TestHotels(t *testing.T) {
	p := &fakePlanner{}
	h := NewSearchHandler(p)
	r := gin.New()
	r.GET("/api/hotels", h.Hotels)

	w := serve(r, http.MethodGet, "/api/hotels?lat=15.5&lng=73.8&budget=mid-range&rating=4", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 10.0, p.lastQuery.RadiusKm)
	assert.Equal(t, planner.BudgetMid, p.lastQuery.Filters.Budget)
	assert.Equal(t, 4.0, p.lastQuery.Filters.MinRating)
	assert.Equal(t, 15.5, p.lastQuery.Origin.Latitude)

	var body struct {
		TotalFound int `json:"totalFound"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 4, body.TotalFound)

	for _, path := range []string{
		"/api/hotels?lng=73.8",
		"/api/hotels?lat=15.5&lng=73.8&radius=51",
		"/api/hotels?lat=15.5&lng=73.8&budget=cheap",
		"/api/hotels?lat=15.5&lng=73.8&rating=6",
	} {
		assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, path, "").Code, path)
	}
}

func TestFood(t *testing.T) {
	p := &fakePlanner{}
	h := NewSearchHandler(p)
	r := gin.New()
	r.GET("/api/food", h.Food)

	w := serve(r, http.MethodGet, "/api/food?lat=0&lng=0&cuisine=italian", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5.0, p.lastQuery.RadiusKm)
	assert.Equal(t, "italian", p.lastQuery.Cuisine)
	assert.Contains(t, w.Body.String(), "try thali")

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/food?lat=0&lng=0&radius=25", "").Code)

	p.err = models.ErrInvalidCoordinate
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/food?lat=0&lng=0", "").Code)
}

func TestTransportOptions(t *testing.T) {
	r := gin.New()
	r.GET("/api/transport", NewTransportHandler(fakeTransport{}).Options)

	w := serve(r, http.MethodGet, "/api/transport?origin=Panaji&destination=Calangute&mode=cab", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"destination":"Calangute"`)

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/transport?origin=Panaji", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(r, http.MethodGet, "/api/transport?origin=a&destination=b&mode=boat", "").Code)

	r = gin.New()
	r.GET("/api/transport", NewTransportHandler(fakeTransport{err: models.ErrProviderUnavailable}).Options)
	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodGet, "/api/transport?origin=a&destination=b", "").Code)
}

func TestHotelAndRestaurantByID(t *testing.T) {
	p := &fakePlanner{}
	h := NewSearchHandler(p)
	r := gin.New()
	r.GET("/api/hotels/:id", h.Hotel)
	r.GET("/api/food/:id", h.Restaurant)

	w := serve(r, http.MethodGet, "/api/hotels/h1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Hotel models.Candidate `json:"hotel"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Casa Goa", body.Hotel.Name)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/hotels/h2", "").Code)
	w = serve(r, http.MethodGet, "/api/food/r9", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"restaurant"`)

	p.err = models.ErrProviderUnavailable
	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodGet, "/api/food/r9", "").Code)
}

func TestTransportPricing(t *testing.T) {
	r := gin.New()
	r.GET("/api/transport/pricing", NewTransportHandler(fakeTransport{}).Pricing)

	w := serve(r, http.MethodGet, "/api/transport/pricing?origin=Panaji&destination=Calangute&type=cab", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Pricing       []transport.FareEstimate `json:"pricing"`
		EstimatedTime float64                  `json:"estimatedTime"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Pricing, 1)
	assert.Equal(t, 110.0, body.Pricing[0].EstimatedTotal)
	assert.Equal(t, 14.0, body.EstimatedTime)

	for _, path := range []string{
		"/api/transport/pricing?origin=a&destination=b",
		"/api/transport/pricing?origin=a&destination=b&type=metro",
		"/api/transport/pricing?destination=b&type=cab",
	} {
		assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, path, "").Code, path)
	}
}

func TestTransportAvailability(t *testing.T) {
	r := gin.New()
	r.GET("/api/transport/availability", NewTransportHandler(fakeTransport{}).Availability)

	w := serve(r, http.MethodGet, "/api/transport/availability?lat=15.5&lng=73.8&type=cab", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"transport":[{"type":"cab"`)

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/transport/availability?lat=15.5", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(r, http.MethodGet, "/api/transport/availability?lat=15.5&lng=73.8&type=boat", "").Code)

	r = gin.New()
	r.GET("/api/transport/availability", NewTransportHandler(fakeTransport{err: models.ErrInvalidCoordinate}).Availability)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/transport/availability?lat=99&lng=0", "").Code)
}
