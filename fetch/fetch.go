package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

const (
	DefaultBaseURL   = "http://pdmafia.com"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "pdmafia/1.0 (game archive crawler)"
)

// Site paths.
const (
	SettingsPath = "/settings"
	GamesPath    = "/games"
)

// SettingPath is the detail page of setting id.
func SettingPath(id int) string {
	return fmt.Sprintf("%s/%d", SettingsPath, id)
}

// GamePath is the detail page of game id.
func GamePath(id int) string {
	return fmt.Sprintf("%s/%d", GamesPath, id)
}

// Fetcher retrieves a site page and parses it into a document.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*goquery.Document, error)
}

// Options configures an HTTPFetcher. Zero values fall back to the defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.Logger
}

// HTTPFetcher fetches pages over HTTP. It does not retry.
type HTTPFetcher struct {
	client *resty.Client
	logger *zap.Logger
}

// NewHTTPFetcher creates a fetcher for the site at opts.BaseURL.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent)

	return &HTTPFetcher{
		client: client,
		logger: opts.Logger,
	}
}

// Fetch performs a GET for path and parses the body as HTML. Non-200
// responses are errors. The body is decoded to UTF-8 according to the
// response's Content-Type and any meta charset.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) (*goquery.Document, error) {
	start := time.Now()
	res, err := f.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	f.logger.Debug("fetched page",
		zap.String("path", path),
		zap.Int("status", res.StatusCode()),
		zap.Int("bytes", len(res.Body())),
		zap.Duration("elapsed", time.Since(start)),
	)

	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("HTTP error fetching %s: %s", path, res.Status())
	}

	body, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML of %s: %w", path, err)
	}

	return doc, nil
}
