package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locationDTO "naviplan_backend/internals/features/trips/location/dto"
)

const testToken = "test-token"

func fixedTokenSource() *TokenSource {
	// tanpa env lookup dan tanpa file .env supaya test deterministik
	return &TokenSource{EnvKey: "NAVIPLAN_TEST_UNSET", Configured: testToken}
}

func testService(baseURL string) *MapboxService {
	return NewMapboxService(fixedTokenSource(), baseURL, 5*time.Second)
}

func TestSuggest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suggest", r.URL.Path)
		assert.Equal(t, "museum", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "english", r.URL.Query().Get("language"))
		assert.Equal(t, "sess-1", r.URL.Query().Get("session_token"))
		assert.Equal(t, testToken, r.URL.Query().Get("access_token"))

		resp := locationDTO.SuggestResponse{
			Suggestions: []locationDTO.Suggestion{
				{Name: "Main St Museum", MapboxID: "mb-1"},
				{Name: "City Museum", MapboxID: "mb-2"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	result, err := testService(srv.URL).Suggest(context.Background(), "museum", "sess-1")
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, "Main St Museum", result.Suggestions[0].Name)
	assert.Equal(t, "mb-1", result.Suggestions[0].MapboxID)
}

func TestSuggest_EmptyQuery_NoNetworkCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	svc := testService(srv.URL)

	_, err := svc.Suggest(context.Background(), "   ", "sess-1")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = svc.Suggest(context.Background(), "museum", "")
	assert.ErrorIs(t, err, ErrEmptySessionID)

	assert.Equal(t, int32(0), calls.Load())
}

func TestRetrieve_Success_LonLatOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/retrieve/mb-1", r.URL.Path)
		assert.Equal(t, "sess-1", r.URL.Query().Get("session_token"))

		addr := "1 Main St, Springfield"
		resp := retrieveResponse{
			Features: []retrieveFeature{{
				Name:       "Main St Museum",
				Geometry:   &retrieveGeometry{Coordinates: []float64{-73.9, 40.0}},
				Properties: &retrieveProperties{FullAddress: &addr},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	loc, err := testService(srv.URL).Retrieve(context.Background(), "mb-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Main St Museum", loc.Title)
	// koordinat provider [lon, lat] harus dibalik ke lat/lon
	assert.Equal(t, 40.0, loc.Latitude)
	assert.Equal(t, -73.9, loc.Longitude)
	require.NotNil(t, loc.Address)
	assert.Equal(t, "1 Main St, Springfield", *loc.Address)
}

func TestRetrieve_ProviderFailures(t *testing.T) {
	t.Run("no features", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"features":[]}`))
		}))
		defer srv.Close()

		_, err := testService(srv.URL).Retrieve(context.Background(), "mb-1", "sess-1")
		assert.ErrorIs(t, err, ErrNoFeatures)
	})

	t.Run("feature without coordinates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"features":[{"name":"Somewhere"}]}`))
		}))
		defer srv.Close()

		_, err := testService(srv.URL).Retrieve(context.Background(), "mb-1", "sess-1")
		assert.ErrorIs(t, err, ErrNoCoordinates)
	})

	t.Run("upstream non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := testService(srv.URL).Retrieve(context.Background(), "mb-1", "sess-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})
}

func TestRetrieve_Preconditions(t *testing.T) {
	svc := testService("http://mapbox.invalid")

	_, err := svc.Retrieve(context.Background(), "", "sess-1")
	assert.ErrorIs(t, err, ErrEmptyMapboxID)

	_, err = svc.Retrieve(context.Background(), "mb-1", "  ")
	assert.ErrorIs(t, err, ErrEmptySessionID)
}
