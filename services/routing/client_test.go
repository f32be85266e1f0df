package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("origin"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoute(t *testing.T) {
	srv := serve(t, `{"status":"OK","routes":[{"legs":[{
		"start_address":"Panaji, Goa","end_address":"Calangute, Goa",
		"distance":{"value":15432},"duration":{"value":1530}}]}]}`, http.StatusOK)

	route, err := NewClient("k", time.Second, nil).WithBaseURL(srv.URL).
		Route(context.Background(), "Panaji", "Calangute")
	require.NoError(t, err)

	assert.Equal(t, "Panaji, Goa", route.Origin)
	assert.Equal(t, 15.43, route.DistanceKm)
	assert.Equal(t, 26.0, route.DurationMin)
}

func TestRoute_NotFound(t *testing.T) {
	srv := serve(t, `{"status":"ZERO_RESULTS","routes":[]}`, http.StatusOK)

	c := NewClient("k", time.Second, nil).WithBaseURL(srv.URL)
	for i := 0; i < 6; i++ {
		_, err := c.Route(context.Background(), "Atlantis", "Goa")
		assert.ErrorIs(t, err, models.ErrNotFound)
	}
}

func TestRoute_UpstreamFailure(t *testing.T) {
	srv := serve(t, `{"status":"OVER_QUERY_LIMIT"}`, http.StatusOK)

	_, err := NewClient("k", time.Second, nil).WithBaseURL(srv.URL).
		Route(context.Background(), "Panaji", "Calangute")
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)

	_, err = NewClient("", time.Second, nil).Route(context.Background(), "a", "b")
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
}
