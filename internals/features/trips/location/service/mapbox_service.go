package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	locationDTO "naviplan_backend/internals/features/trips/location/dto"
)

const suggestLimit = "5"

// Precondition failures — dicek sebelum token di-resolve atau ada network call.
var (
	ErrEmptyQuery     = errors.New("query cannot be empty")
	ErrEmptySessionID = errors.New("session id cannot be empty")
	ErrEmptyMapboxID  = errors.New("mapbox id cannot be empty")
)

// Provider failures — Mapbox merespon tapi datanya tidak bisa dipakai.
// Dua-duanya dilaporkan, tidak pernah di-default ke nol diam-diam.
var (
	ErrNoFeatures    = errors.New("no features returned by provider")
	ErrNoCoordinates = errors.New("feature has no coordinates")
)

// MapboxService membungkus Search Box API (suggest + retrieve).
// Stateless selain token yang di-resolve lazy lewat TokenSource.
type MapboxService struct {
	tokens     *TokenSource
	httpClient *http.Client
	baseURL    string
}

func NewMapboxService(tokens *TokenSource, baseURL string, timeout time.Duration) *MapboxService {
	return &MapboxService{
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Suggest meneruskan query ke endpoint autosuggest; hasil dibatasi 5,
// bahasa fixed english (mengikuti kontrak provider).
func (s *MapboxService) Suggest(ctx context.Context, query, sessionID string) (locationDTO.SuggestResponse, error) {
	if strings.TrimSpace(query) == "" {
		return locationDTO.SuggestResponse{}, ErrEmptyQuery
	}
	if strings.TrimSpace(sessionID) == "" {
		return locationDTO.SuggestResponse{}, ErrEmptySessionID
	}

	token, err := s.tokens.Token()
	if err != nil {
		return locationDTO.SuggestResponse{}, err
	}

	params := url.Values{
		// param Mapbox adalah "q", bukan "query"
		"q":             {query},
		"access_token":  {token},
		"limit":         {suggestLimit},
		"session_token": {sessionID},
		"language":      {"english"},
	}

	var resp locationDTO.SuggestResponse
	if err := s.doGet(ctx, s.baseURL+"/suggest?"+params.Encode(), "suggest", &resp); err != nil {
		return locationDTO.SuggestResponse{}, err
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []locationDTO.Suggestion{}
	}
	return resp, nil
}

// Retrieve mengambil detail satu place lalu meratakan feature pertama.
// Tanpa feature → ErrNoFeatures; tanpa koordinat → ErrNoCoordinates.
func (s *MapboxService) Retrieve(ctx context.Context, mapboxID, sessionID string) (locationDTO.SimpleLocation, error) {
	if strings.TrimSpace(mapboxID) == "" {
		return locationDTO.SimpleLocation{}, ErrEmptyMapboxID
	}
	if strings.TrimSpace(sessionID) == "" {
		return locationDTO.SimpleLocation{}, ErrEmptySessionID
	}

	token, err := s.tokens.Token()
	if err != nil {
		return locationDTO.SimpleLocation{}, err
	}

	params := url.Values{
		"access_token":  {token},
		"session_token": {sessionID},
	}

	var raw retrieveResponse
	reqURL := s.baseURL + "/retrieve/" + url.PathEscape(mapboxID) + "?" + params.Encode()
	if err := s.doGet(ctx, reqURL, "retrieve", &raw); err != nil {
		return locationDTO.SimpleLocation{}, err
	}

	if len(raw.Features) == 0 {
		return locationDTO.SimpleLocation{}, ErrNoFeatures
	}
	f := raw.Features[0]
	if f.Geometry == nil || len(f.Geometry.Coordinates) < 2 {
		return locationDTO.SimpleLocation{}, ErrNoCoordinates
	}

	out := locationDTO.SimpleLocation{
		Title: f.Name,
		// urutan Mapbox: [lon, lat]
		Longitude: f.Geometry.Coordinates[0],
		Latitude:  f.Geometry.Coordinates[1],
	}
	if f.Properties != nil {
		out.Address = f.Properties.FullAddress
	}
	return out, nil
}

func (s *MapboxService) doGet(ctx context.Context, fullURL, op string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mapbox API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// Tipe response retrieve mentah dari Mapbox.

type retrieveResponse struct {
	Features []retrieveFeature `json:"features"`
}

type retrieveFeature struct {
	Name       string              `json:"name"`
	Geometry   *retrieveGeometry   `json:"geometry"`
	Properties *retrieveProperties `json:"properties"`
}

type retrieveGeometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat]
}

type retrieveProperties struct {
	FullAddress *string `json:"full_address"`
}
