package coingeckoclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Beardsoft/pre-stake-watcher/internal/clients/client"
	"github.com/Beardsoft/pre-stake-watcher/internal/config"
)

const priceEndpoint = "/api/v3/simple/price"

type Client struct {
	httpClient *http.Client
	cfg        *config.CoinGeckoConfig
}

func NewClient(cfg *config.CoinGeckoConfig) *Client {
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

// GetNimiqPrice fetches the current USD price of the configured asset.
// A structurally valid response that lacks the expected nested field means
// CoinGecko has no quote right now; that is reported as (nil, nil) rather
// than an error so the scrape cycle keeps the previous gauge value.
func (c *Client) GetNimiqPrice(ctx context.Context) (*float64, error) {
	type empty struct{}
	// CoinGecko keys the response by asset id, then by currency.
	type priceResponse map[string]map[string]float64

	query := url.Values{}
	query.Set("ids", c.cfg.AssetID)
	query.Set("vs_currencies", "usd")

	opts := &client.HttpClientOptions{
		Path:         priceEndpoint + "?" + query.Encode(),
		TemplatePath: priceEndpoint,
	}

	resp, err := client.SendRequest[empty, priceResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s price: %w", c.cfg.AssetID, err)
	}

	quote, ok := (*resp)[c.cfg.AssetID]
	if !ok {
		return nil, nil
	}
	price, ok := quote["usd"]
	if !ok {
		return nil, nil
	}

	return &price, nil
}
