// Package infrastructure assembles the systems the generator commands share:
// logging, the controller registry and artifact storage.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ExAtom/futar-backend/internal/api"
	"github.com/ExAtom/futar-backend/internal/config"
	"github.com/ExAtom/futar-backend/internal/routes"
	"github.com/ExAtom/futar-backend/internal/storage"
	"github.com/ExAtom/futar-backend/pkg/logging"
	pkgroutes "github.com/ExAtom/futar-backend/pkg/routes"
)

// Infrastructure holds the systems required by every command.
type Infrastructure struct {
	Logger  *slog.Logger
	Routes  pkgroutes.System
	Storage storage.System
}

// New creates an Infrastructure from the finalized configuration and
// registers every controller. Log records are written to logs, or to the
// configured logging output when logs is nil.
func New(cfg *config.Config, logs io.Writer) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging, logs)

	store, err := storage.New(cfg.Output.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	routeSys := routes.New(logger)
	if err := api.Register(routeSys); err != nil {
		return nil, fmt.Errorf("route registration failed: %w", err)
	}

	return &Infrastructure{
		Logger:  logger,
		Routes:  routeSys,
		Storage: store,
	}, nil
}
