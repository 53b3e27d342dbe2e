package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/server"
	"github.com/katalvlaran/lvroute/transit"
)

// newTestServer builds a network A—B on line 1 plus an isolated C.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	net, err := transit.NewNetwork([]transit.Station{
		{ID: "a", Name: "A", Line: "1", NextStationID: "b"},
		{ID: "b", Name: "B", Line: "1", PreviousStationID: "a", Longitude: 0.1},
		{ID: "c", Name: "C", Line: "2", Latitude: 1},
	})
	require.NoError(t, err)

	return server.New(net, nil).Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestRoute_OK(t *testing.T) {
	rec := get(t, newTestServer(t), "/route?from=A&to=b")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var route transit.Route
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&route))
	require.Equal(t, "A", route.From)
	require.Equal(t, "B", route.To)
	require.Len(t, route.Legs, 1)
	require.Equal(t, "1", route.Legs[0].Line)
	require.Greater(t, route.Kilometres, 0.0)
}

func TestRoute_Errors(t *testing.T) {
	h := newTestServer(t)

	cases := []struct {
		target string
		status int
	}{
		{"/route?from=A", http.StatusBadRequest},
		{"/route?from=A&to=Z", http.StatusNotFound},
		{"/route?from=A&to=C", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		rec := get(t, h, tc.target)
		require.Equal(t, tc.status, rec.Code, tc.target)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body), tc.target)
		require.NotEmpty(t, body["error"], tc.target)
	}
}

func TestRoute_MethodNotAllowed(t *testing.T) {
	h := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/route?from=A&to=B", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStationsAndLines(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/stations")
	require.Equal(t, http.StatusOK, rec.Code)
	var stops []transit.Stop
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stops))
	require.Len(t, stops, 3)
	require.Equal(t, []string{"a"}, stops[0].IDs)

	rec = get(t, h, "/lines")
	require.Equal(t, http.StatusOK, rec.Code)
	var lines []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&lines))
	require.Equal(t, []string{"1", "2"}, lines)
}
