package commands

import (
	"context"
	"fmt"

	"github.com/hezhis/dispatch"
	"github.com/hezhis/dispatch/internal/config"
	"github.com/rs/zerolog"
)

type Handlers struct {
	logger zerolog.Logger
}

func NewHandlers(logger zerolog.Logger) *Handlers {
	return &Handlers{logger: logger}
}

// Deactivate handles a DeactivateCommand. seed is fixed at bootstrap; in a
// real deployment it would be a dependency such as a repository.
func (h *Handlers) Deactivate(_ context.Context, seed int, msg DeactivateCommand) error {
	h.logger.Info().
		Int("seed", seed).
		Int("product_id", msg.ProductID).
		Str("reason", msg.Reason).
		Msg("deactivate")
	return nil
}

// Reactivate handles a ReactivateCommand on behalf of username, which is
// fixed at bootstrap.
func (h *Handlers) Reactivate(_ context.Context, username string, msg ReactivateCommand) error {
	h.logger.Info().
		Str("username", username).
		Int("id", msg.ID).
		Str("reason", msg.Reason).
		Msg("reactivate")
	return nil
}

// Bootstrap registers every command handler on d in one place, binding the
// configured fixed values into each handler.
func Bootstrap(d *dispatch.Dispatcher[Command], h *Handlers, cfg config.HandlersConfig) error {
	if err := dispatch.Register(d, dispatch.Bind(h.Deactivate, cfg.DeactivateSeed)); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if err := dispatch.Register(d, dispatch.Bind(h.Reactivate, cfg.ReactivateUser)); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	return nil
}

func Add(a, b int) int {
	return a + b
}
