package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrSearchUnavailable means no provider call succeeded. Distinct from zero matches.
	ErrSearchUnavailable = errors.New("search unavailable")
	// ErrProviderNotConfigured means no provider was wired before the first request.
	ErrProviderNotConfigured = errors.New("search provider not configured")
)

// ContentOptions selects which page content the provider extracts per result.
type ContentOptions struct {
	Text       bool `json:"text"`
	Highlights bool `json:"highlights"`
	Summary    bool `json:"summary"`
}

// SearchRequest is the provider-neutral search call.
type SearchRequest struct {
	Query           string
	Mode            SearchMode
	ResultCap       int
	DomainAllowList []string
	DomainDenyList  []string
	TextMustInclude []string
	TextMustExclude []string
	PublishedAfter  time.Time
	Contents        ContentOptions
}

// ProviderResult is one item as returned by the provider. Optional fields may be empty.
type ProviderResult struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	PublishedDate   string    `json:"publishedDate,omitempty"`
	Author          string    `json:"author,omitempty"`
	Text            string    `json:"text,omitempty"`
	Highlights      []string  `json:"highlights,omitempty"`
	HighlightScores []float64 `json:"highlightScores,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	Score           float64   `json:"score,omitempty"`
}

// Provider is the external search service.
type Provider interface {
	Search(ctx context.Context, req SearchRequest) ([]ProviderResult, error)
}

// --- HTTP provider ---

// HTTPProvider calls a JSON search API: POST {base}/search with an x-api-key header.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter // nil = unpaced
	retry   RetryConfig
}

// HTTPProviderOption configures an HTTPProvider.
type HTTPProviderOption func(*HTTPProvider)

// WithRateLimit paces outgoing calls to rps with the given burst. rps <= 0 disables pacing.
func WithRateLimit(rps float64, burst int) HTTPProviderOption {
	return func(p *HTTPProvider) {
		if rps <= 0 {
			p.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRetry overrides the retry policy.
func WithRetry(rc RetryConfig) HTTPProviderOption {
	return func(p *HTTPProvider) { p.retry = rc }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) HTTPProviderOption {
	return func(p *HTTPProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// NewHTTPProvider creates a provider client. Credentials are checked by Config.Validate,
// but an empty key or URL is rejected here too so a misconfigured client never starts a query.
func NewHTTPProvider(baseURL, apiKey string, opts ...HTTPProviderOption) (*HTTPProvider, error) {
	if strings.TrimSpace(baseURL) == "" || strings.TrimSpace(apiKey) == "" {
		return nil, ErrProviderNotConfigured
	}
	p := &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		retry:   DefaultRetryConfig,
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

type apiContents struct {
	Text       bool      `json:"text,omitempty"`
	Highlights *struct{} `json:"highlights,omitempty"`
	Summary    *struct{} `json:"summary,omitempty"`
}

type apiSearchRequest struct {
	Query              string       `json:"query"`
	Type               string       `json:"type"`
	NumResults         int          `json:"numResults,omitempty"`
	IncludeDomains     []string     `json:"includeDomains,omitempty"`
	ExcludeDomains     []string     `json:"excludeDomains,omitempty"`
	IncludeText        []string     `json:"includeText,omitempty"`
	ExcludeText        []string     `json:"excludeText,omitempty"`
	StartPublishedDate string       `json:"startPublishedDate,omitempty"`
	Contents           *apiContents `json:"contents,omitempty"`
}

type apiSearchResponse struct {
	Results []ProviderResult `json:"results"`
}

// providerType maps the search mode to the API's search type.
func providerType(m SearchMode) string {
	switch m {
	case ModeBroad:
		return "neural"
	case ModeExact:
		return "keyword"
	default:
		return "auto"
	}
}

func encodeSearchRequest(req SearchRequest) ([]byte, error) {
	body := apiSearchRequest{
		Query:          req.Query,
		Type:           providerType(req.Mode),
		NumResults:     req.ResultCap,
		IncludeDomains: req.DomainAllowList,
		ExcludeDomains: req.DomainDenyList,
		IncludeText:    req.TextMustInclude,
		ExcludeText:    req.TextMustExclude,
	}
	if !req.PublishedAfter.IsZero() {
		body.StartPublishedDate = req.PublishedAfter.UTC().Format(time.RFC3339)
	}
	if c := req.Contents; c.Text || c.Highlights || c.Summary {
		body.Contents = &apiContents{Text: c.Text}
		if c.Highlights {
			body.Contents.Highlights = &struct{}{}
		}
		if c.Summary {
			body.Contents.Summary = &struct{}{}
		}
	}
	return json.Marshal(body)
}

// Search executes one provider call with pacing and retry.
func (p *HTTPProvider) Search(ctx context.Context, req SearchRequest) ([]ProviderResult, error) {
	payload, err := encodeSearchRequest(req)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	metrics.ProviderRequests.Add(1)
	resp, err := RetryHTTP(ctx, p.retry, func() (*http.Response, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Accept", "application/json")
		httpReq.Header.Set("x-api-key", p.apiKey)
		httpReq.Header.Set("User-Agent", UserAgentBot)
		return p.client.Do(httpReq)
	})
	if err != nil {
		metrics.ProviderErrors.Add(1)
		return nil, fmt.Errorf("provider search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrors.Add(1)
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("provider search: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var data apiSearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&data); err != nil {
		metrics.ProviderErrors.Add(1)
		return nil, fmt.Errorf("provider search: decode: %w", err)
	}
	slog.Debug("provider search done",
		slog.String("mode", string(req.Mode)),
		slog.Int("results", len(data.Results)),
	)
	return data.Results, nil
}

// ParsePublishedDate parses the provider's date field; unknown formats yield the zero time.
func ParsePublishedDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
