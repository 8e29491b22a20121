package nimiqclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Beardsoft/pre-stake-watcher/internal/clients/client"
	"github.com/Beardsoft/pre-stake-watcher/internal/config"
	"github.com/Beardsoft/pre-stake-watcher/internal/types"
)

const registrationEndpoint = "/api/v2/registration"

type Client struct {
	httpClient *http.Client
	cfg        *config.NimiqConfig
}

func NewClient(cfg *config.NimiqConfig) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.Endpoint
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

// GetRegistration fetches the pre-staking registration data for the given
// address. The returned response is structurally decoded but not yet
// validated; entries may still be missing required fields.
func (c *Client) GetRegistration(ctx context.Context, address string) (*types.RegistrationResponse, error) {
	if address == "" {
		return nil, fmt.Errorf("empty address provided")
	}

	type empty struct{}

	opts := &client.HttpClientOptions{
		Path:         registrationEndpoint + "/" + url.PathEscape(address),
		TemplatePath: registrationEndpoint,
	}

	resp, err := client.SendRequest[empty, types.RegistrationResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registration data for %q: %w", address, err)
	}

	return resp, nil
}
