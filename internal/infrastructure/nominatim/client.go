package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/marcos-nsantos/geoloc/internal/domain"
	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
)

// maxErrorBody bounds how much of a failed response ends up in an error.
const maxErrorBody = 512

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(cfg config.NominatimConfig) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent()
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Search returns the best match for a free-form place query.
func (c *Client) Search(ctx context.Context, query string) (*valueobject.Place, error) {
	params := url.Values{
		"format": {"jsonv2"},
		"q":      {query},
		"limit":  {"1"},
	}

	var results []searchResult
	if err := c.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("searching %q: %w", query, domain.ErrPlaceNotFound)
	}

	point, err := parsePoint(results[0].Lon, results[0].Lat)
	if err != nil {
		return nil, err
	}

	return valueobject.NewPlace(point, results[0].DisplayName), nil
}

// Reverse returns the place at or nearest to point.
func (c *Client) Reverse(ctx context.Context, point valueobject.Point) (*valueobject.Place, error) {
	params := url.Values{
		"format": {"json"},
		"lon":    {valueobject.FormatCoordinate(point.Lon)},
		"lat":    {valueobject.FormatCoordinate(point.Lat)},
	}

	var result reverseResult
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return nil, err
	}

	// Nominatim answers 200 with an error member when nothing is there.
	if result.Error != "" || result.DisplayName == "" {
		return nil, fmt.Errorf("reverse geocoding %s: %w", point, domain.ErrPlaceNotFound)
	}

	place := valueobject.NewPlace(point, result.DisplayName)
	if result.Lon != "" && result.Lat != "" {
		if resolved, err := parsePoint(result.Lon, result.Lat); err == nil {
			place.Point = resolved
		}
	}

	return place, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrGeocoderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s returned %d: %s",
			domain.ErrGeocoderUnavailable, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", domain.ErrGeocoderUnavailable, path, err)
	}

	return nil
}

func parsePoint(lon, lat string) (valueobject.Point, error) {
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return valueobject.Point{}, fmt.Errorf("%w: malformed longitude %q", domain.ErrGeocoderUnavailable, lon)
	}
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return valueobject.Point{}, fmt.Errorf("%w: malformed latitude %q", domain.ErrGeocoderUnavailable, lat)
	}
	return valueobject.NewPoint(lonF, latF), nil
}
