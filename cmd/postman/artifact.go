package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/docker/go-units"

	"github.com/ExAtom/futar-backend/internal/infrastructure"
	"github.com/ExAtom/futar-backend/internal/storage"
)

// writeArtifact stores data under key unless the stored copy is already
// byte-identical. It returns the artifact path and whether it was rewritten.
func writeArtifact(ctx context.Context, infra *infrastructure.Infrastructure, key string, data []byte) (string, bool, error) {
	path, err := infra.Storage.Path(key)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", key, err)
	}

	existing, err := infra.Storage.Retrieve(ctx, key)
	switch {
	case err == nil && bytes.Equal(existing, data):
		infra.Logger.Info("artifact unchanged", "path", path)
		return path, false, nil
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return "", false, fmt.Errorf("read existing %s: %w", key, err)
	}

	if err := infra.Storage.Store(ctx, key, data); err != nil {
		return "", false, fmt.Errorf("write %s: %w", key, err)
	}

	infra.Logger.Info("artifact written", "path", path, "size", units.HumanSize(float64(len(data))))
	return path, true, nil
}
