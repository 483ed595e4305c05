package revocation

import (
	"log/slog"

	"sportera/internal/domain/service"
	"sportera/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the revocation list, injected by Fx
type Params struct {
	fx.In

	Client  *redis.Client `optional:"true"`
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// New picks the Redis list when a client is available and the in-memory list otherwise.
func New(params Params) service.TokenRevocationList {
	if params.Client == nil {
		params.Logger.Info("Using in-memory token revocation list")

		return NewMemoryTRL(params.Metrics)
	}

	params.Logger.Info("Using Redis token revocation list")

	return NewRedisTRL(params.Client, params.Metrics)
}
