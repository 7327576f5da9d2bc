//go:build bolt

package cmd

import (
	"log/slog"

	"github.com/inovacc/wspace/internal/store"
	"github.com/inovacc/wspace/internal/store/bolt"
)

const backendName = "bolt"

func openStore(path string, logger *slog.Logger) (store.Store, error) {
	s, err := bolt.New(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("bolt database opened", "path", path)

	return s, nil
}
