package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geoloc/internal/adapter/geocoding"
	"github.com/marcos-nsantos/geoloc/internal/app"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/nominatim"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geoloc/internal/pkg/geodesy"
	"github.com/marcos-nsantos/geoloc/internal/usecase/geo"
)

const (
	apiBasePath = "/api/v1"
	testSeed    = 7
)

// fakeNominatim answers /search and /reverse for a handful of known places.
type fakeNominatim struct {
	server   *httptest.Server
	requests atomic.Int64
	lastUA   atomic.Value
	failing  atomic.Bool
}

var knownPlaces = map[string]map[string]string{
	"stuttgart": {"lon": "9.1800132", "lat": "48.7784485", "display_name": "Stuttgart, Baden-Württemberg, Deutschland"},
	"london":    {"lon": "-0.1276474", "lat": "51.5073219", "display_name": "London, Greater London, England, United Kingdom"},
}

func newFakeNominatim(t *testing.T) *fakeNominatim {
	t.Helper()

	f := &fakeNominatim{}
	mux := http.NewServeMux()
	mux.HandleFunc("/search", f.search)
	mux.HandleFunc("/reverse", f.reverse)
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeNominatim) record(r *http.Request) bool {
	f.requests.Add(1)
	f.lastUA.Store(r.UserAgent())
	return !f.failing.Load()
}

func (f *fakeNominatim) search(w http.ResponseWriter, r *http.Request) {
	if !f.record(r) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
		return
	}

	results := []map[string]string{}
	if place, ok := knownPlaces[strings.ToLower(r.URL.Query().Get("q"))]; ok {
		results = append(results, place)
	}
	writeJSON(w, results)
}

func (f *fakeNominatim) reverse(w http.ResponseWriter, r *http.Request) {
	if !f.record(r) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	for _, place := range knownPlaces {
		if place["lon"] == q.Get("lon") && place["lat"] == q.Get("lat") {
			writeJSON(w, place)
			return
		}
	}
	writeJSON(w, map[string]string{"error": "Unable to geocode"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeNominatim) userAgent() string {
	ua, _ := f.lastUA.Load().(string)
	return ua
}

func testConfig(nominatimURL string) *config.Config {
	return &config.Config{
		Nominatim: config.NominatimConfig{
			BaseURL:   nominatimURL,
			UserAgent: config.DefaultUserAgent(),
			Timeout:   5 * time.Second,
		},
		Server: config.ServerConfig{Port: 0, Environment: "test", ShutdownTimeout: time.Second},
		Log:    config.LogConfig{Level: "error", Format: "json"},
	}
}

type TestAPI struct {
	Server     *httptest.Server
	Nominatim  *fakeNominatim
	httpClient *http.Client
}

func setupTestAPI(t *testing.T) *TestAPI {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)

	fake := newFakeNominatim(t)
	cfg := testConfig(fake.server.URL)

	metrics := observability.NewMetrics(config.Version)
	geocoder := geocoding.Instrument(nominatim.NewClient(cfg.Nominatim), metrics, zap.NewNop())
	svc := geo.NewService(geocoder, geodesy.NewSeededSource(testSeed))
	ts := httptest.NewServer(app.NewHandler(cfg, svc, nil, metrics, zap.NewNop()))
	t.Cleanup(ts.Close)

	return &TestAPI{
		Server:    ts,
		Nominatim: fake,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (api *TestAPI) get(t *testing.T, path string, query url.Values) (int, map[string]any) {
	t.Helper()

	resp, err := api.httpClient.Get(api.Server.URL + apiBasePath + path + "?" + query.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}
