package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Asset is a fetched brand image ready for embedding.
type Asset struct {
	Data   []byte
	Format string // image type as fpdf expects it: "PNG", "JPG", "GIF"
}

// AssetFetcher supplies the brand logo for the PDF letterhead. The renderer
// treats any error as "no logo" and falls back to the text wordmark, so
// implementations never need retry logic. Tests substitute a stub to avoid
// real network access.
type AssetFetcher interface {
	FetchLogo(ctx context.Context) (*Asset, error)
}

// HTTPAssetFetcher fetches the logo from a fixed URL with a short timeout.
type HTTPAssetFetcher struct {
	client *http.Client
	url    string
}

// DefaultLogoURL is the platform's hosted wordmark image.
const DefaultLogoURL = "https://menttor.app/assets/logo.png"

const assetMaxBytes = 2 << 20

// NewHTTPAssetFetcher creates a fetcher for the given logo URL, defaulting
// to DefaultLogoURL when url is empty.
func NewHTTPAssetFetcher(url string) *HTTPAssetFetcher {
	if url == "" {
		url = DefaultLogoURL
	}
	return &HTTPAssetFetcher{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
	}
}

func (f *HTTPAssetFetcher) FetchLogo(ctx context.Context) (*Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building logo request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching logo: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, assetMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("reading logo body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("fetching logo: empty body")
	}

	return &Asset{Data: data, Format: imageFormat(resp.Header.Get("Content-Type"), f.url)}, nil
}

func imageFormat(contentType, url string) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "png"):
		return "PNG"
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		return "JPG"
	case strings.Contains(ct, "gif"):
		return "GIF"
	}
	lower := strings.ToLower(url)
	switch {
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "JPG"
	case strings.HasSuffix(lower, ".gif"):
		return "GIF"
	default:
		return "PNG"
	}
}

// NoAssetFetcher always reports no logo, forcing the text wordmark.
type NoAssetFetcher struct{}

func (NoAssetFetcher) FetchLogo(context.Context) (*Asset, error) {
	return nil, nil
}
