package nimiqclient

import (
	"context"

	"github.com/Beardsoft/pre-stake-watcher/internal/types"
)

type NimiqInterface interface {
	GetRegistration(ctx context.Context, address string) (*types.RegistrationResponse, error)
}
