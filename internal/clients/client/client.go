package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Beardsoft/pre-stake-watcher/internal/observability/metrics"
	"github.com/Beardsoft/pre-stake-watcher/internal/types"
)

// HttpClient is implemented by the per-API clients so SendRequest can build
// and time requests against their base URL.
type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Path string
	// TemplatePath is the path without per-request parameters, used as the
	// metrics label to keep cardinality bounded.
	TemplatePath string
	Headers      map[string]string
}

// SendRequest performs a single HTTP request against the client's base URL
// and decodes the JSON response into O. Failures are classified: transport
// errors for anything below HTTP, http_status for non-2xx responses and
// parse for bodies that do not match the expected shape.
func SendRequest[I, O any](
	ctx context.Context,
	c HttpClient,
	method string,
	opts *HttpClientOptions,
	input *I,
) (*O, error) {
	ctx, cancel := context.WithTimeout(ctx, c.GetDefaultRequestTimeout())
	defer cancel()

	var body io.Reader
	if input != nil {
		encoded, err := json.Marshal(input)
		if err != nil {
			return nil, types.NewErrorf(types.ParseError, "failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	url := c.GetBaseURL() + opts.Path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, types.NewErrorf(types.TransportError, "failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	timer := metrics.StartClientRequestDurationTimer(c.GetBaseURL(), method, opts.TemplatePath)
	resp, err := c.GetHttpClient().Do(req)
	if err != nil {
		timer(0)
		return nil, types.NewErrorf(types.TransportError, "failed to perform %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()
	timer(resp.StatusCode)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, types.NewErrorf(types.HttpStatusError, "rate limit exceeded when calling %s", url)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, types.NewErrorf(types.HttpStatusError, "unexpected status %d from %s %s", resp.StatusCode, method, url)
	}

	var output O
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return nil, types.NewErrorf(types.ParseError, "failed to decode response from %s: %w", url, err)
	}

	return &output, nil
}
