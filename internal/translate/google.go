package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cpp-samouczek/lcpp/internal/model"
)

// Translator is the minimal translation contract the pipelines depend
// on. Tests substitute deterministic fakes.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// googleEndpoint is the unauthenticated Google Translate web endpoint.
// The gtx client returns a JSON array whose first element is the list of
// translated segments.
const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleClient translates text via the Google Translate web endpoint.
type GoogleClient struct {
	client *resty.Client
	pair   model.LangPair
}

// ClientOptions configures a GoogleClient.
type ClientOptions struct {
	// Timeout bounds a single request. Zero means 30s.
	Timeout time.Duration

	// MaxRetries is the total number of attempts per request, network
	// and server errors included. Zero means 5.
	MaxRetries int

	// BaseURL overrides the service endpoint. Used by tests.
	BaseURL string
}

// NewGoogleClient creates a translator for the given language pair.
// Retrying with a growing wait is delegated to resty, replacing the
// sleep-and-retry loops the pipelines would otherwise need.
func NewGoogleClient(pair model.LangPair, opts ClientOptions) *GoogleClient {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 5
	}
	if opts.BaseURL == "" {
		opts.BaseURL = googleEndpoint
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.MaxRetries - 1).
		SetRetryWaitTime(1200 * time.Millisecond).
		SetRetryMaxWaitTime(10 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError ||
				r.StatusCode() == http.StatusTooManyRequests
		})

	return &GoogleClient{client: client, pair: pair}
}

// Pair returns the client's language pair.
func (g *GoogleClient) Pair() model.LangPair {
	return g.pair
}

// Translate sends one text to the translation endpoint and returns the
// concatenated translated segments.
func (g *GoogleClient) Translate(ctx context.Context, text string) (string, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     g.pair.Source,
			"tl":     g.pair.Target,
			"dt":     "t",
			"q":      text,
		}).
		Get("")
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("translation request failed: status %d", resp.StatusCode())
	}

	return parseGoogleResponse(resp.Body())
}

// parseGoogleResponse extracts the translated text from the gtx response
// shape: [[["translated","source",...], ...], ...]. Each segment's first
// element is a translated chunk; chunks concatenate to the full result.
func parseGoogleResponse(body []byte) (string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("unexpected translation response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected translation response: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		var parts []json.RawMessage
		if err := json.Unmarshal(seg, &parts); err != nil || len(parts) == 0 {
			continue
		}
		var chunk string
		if err := json.Unmarshal(parts[0], &chunk); err != nil {
			continue
		}
		b.WriteString(chunk)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no translated segments in response")
	}
	return b.String(), nil
}
