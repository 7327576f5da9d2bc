//go:build !bolt

package cmd

import (
	"log/slog"

	"github.com/inovacc/wspace/internal/store"
	"github.com/inovacc/wspace/internal/store/sqlite"
)

const backendName = "sqlite"

func openStore(path string, logger *slog.Logger) (store.Store, error) {
	s, err := sqlite.New(path, sqlite.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return s, nil
}
