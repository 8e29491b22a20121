package coingeckoclient

import "context"

type CoinGeckoInterface interface {
	GetNimiqPrice(ctx context.Context) (*float64, error)
}
