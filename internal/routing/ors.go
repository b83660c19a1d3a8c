package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.openrouteservice.org"
	orsProfile     = "driving-car"

	metersPerMile = 1609.34
)

// ORSClient talks to the OpenRouteService geocoding and directions APIs.
// It is safe for concurrent use.
type ORSClient struct {
	client  *http.Client
	apiKey  string
	baseURL string

	// fallbackSpeedMPH converts a great-circle distance into a duration
	// when the directions API is unavailable.
	fallbackSpeedMPH float64
}

// ORSOption customizes an ORSClient.
type ORSOption func(*ORSClient)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(url string) ORSOption {
	return func(c *ORSClient) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ORSOption {
	return func(c *ORSClient) { c.client = hc }
}

// NewORSClient constructs a client authenticated with the given API key.
func NewORSClient(apiKey string, opts ...ORSOption) (*ORSClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("routing.NewORSClient: api key is empty")
	}
	c := &ORSClient{
		client:           &http.Client{Timeout: 10 * time.Second},
		apiKey:           apiKey,
		baseURL:          defaultBaseURL,
		fallbackSpeedMPH: 60,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lng, lat]
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves an address via /geocode/search, taking the best match.
func (c *ORSClient) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	endpoint := c.baseURL + "/geocode/search"

	makeReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", address)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		req.Header.Set("Authorization", c.apiKey)
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := c.doWithRetry(ctx, makeReq)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("routing.ORSClient.Geocode: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("routing.ORSClient.Geocode: decode: %w", err)
	}
	if len(decoded.Features) == 0 || len(decoded.Features[0].Geometry.Coordinates) != 2 {
		return domain.Coordinate{}, fmt.Errorf("routing.ORSClient.Geocode: %q: %w", address, domain.ErrNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	return domain.Coordinate{Lat: coords[1], Lng: coords[0]}, nil
}

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Geometry     bool        `json:"geometry"`
	Instructions bool        `json:"instructions"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"` // meters
			Duration float64 `json:"duration"` // seconds
		} `json:"summary"`
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// Route computes a driving route through the waypoints in order via
// /v2/directions/driving-car. On any upstream failure it falls back to a
// great-circle estimate between the first and last waypoint, so callers
// always get a distance when the input coordinates are valid.
func (c *ORSClient) Route(ctx context.Context, waypoints ...domain.Coordinate) (domain.RouteInfo, error) {
	if len(waypoints) < 2 {
		return domain.RouteInfo{}, fmt.Errorf("routing.ORSClient.Route: need at least 2 waypoints, got %d", len(waypoints))
	}

	info, err := c.directions(ctx, waypoints)
	if err != nil {
		return GreatCircleRoute(c.fallbackSpeedMPH, waypoints...), nil
	}
	return info, nil
}

func (c *ORSClient) directions(ctx context.Context, waypoints []domain.Coordinate) (domain.RouteInfo, error) {
	coords := make([][]float64, len(waypoints))
	for i, w := range waypoints {
		coords[i] = []float64{w.Lng, w.Lat}
	}

	payload, err := json.Marshal(directionsRequest{
		Coordinates:  coords,
		Geometry:     true,
		Instructions: true,
	})
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("marshal directions request: %w", err)
	}

	endpoint := c.baseURL + "/v2/directions/" + orsProfile

	makeReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", c.apiKey)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	resp, err := c.doWithRetry(ctx, makeReq)
	if err != nil {
		return domain.RouteInfo{}, err
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RouteInfo{}, fmt.Errorf("decode directions response: %w", err)
	}
	if len(decoded.Routes) == 0 {
		return domain.RouteInfo{}, fmt.Errorf("no routes returned")
	}

	route := decoded.Routes[0]
	return domain.RouteInfo{
		DistanceMiles: route.Summary.Distance / metersPerMile,
		DurationHours: route.Summary.Duration / 3600,
		Polyline:      route.Geometry,
		Waypoints:     waypoints,
	}, nil
}

// GreatCircleRoute estimates a route from the haversine distance between the
// first and last waypoint, at the given average speed. It carries no polyline.
func GreatCircleRoute(speedMPH float64, waypoints ...domain.Coordinate) domain.RouteInfo {
	first := waypoints[0]
	last := waypoints[len(waypoints)-1]
	miles := first.Haversine(last)

	return domain.RouteInfo{
		DistanceMiles: miles,
		DurationHours: miles / speedMPH,
		Waypoints:     waypoints,
	}
}
