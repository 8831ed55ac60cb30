package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/menttor/menttor-cli/internal/importer"
)

var (
	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("menttor backend unavailable")

	// ErrNotFound indicates the requested roadmap does not exist remotely.
	ErrNotFound = errors.New("roadmap not found on backend")

	// ErrUnauthorized indicates the access token was missing or rejected.
	ErrUnauthorized = errors.New("backend rejected credentials")
)

// Client fetches roadmap exports from a Menttor backend. The roadmap body
// comes back in whichever historical wire shape the backend emits; it is
// handed to the importer untouched so normalization stays in one place.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a backend client. token may be empty for public
// roadmaps.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchRoadmap downloads a roadmap export from url (absolute) or from the
// client's base URL when url is a bare roadmap ID.
func (c *Client) FetchRoadmap(ctx context.Context, url string) (*importer.Document, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		if c.baseURL == "" {
			return nil, fmt.Errorf("roadmap ID %q given but no backend URL configured", url)
		}
		url = c.baseURL + "/api/roadmaps/" + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building roadmap request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("fetching roadmap: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading roadmap body: %w", err)
	}

	doc, err := importer.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	// Some endpoints wrap the plan in an envelope {"data": ...}; if the
	// top level yielded no modules, look one level down before giving up.
	if len(doc.Modules) == 0 {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if envErr := json.Unmarshal(data, &envelope); envErr == nil && len(envelope.Data) > 0 {
			if inner, innerErr := importer.ParseDocument(envelope.Data); innerErr == nil && len(inner.Modules) > 0 {
				return inner, nil
			}
		}
	}
	return doc, nil
}
