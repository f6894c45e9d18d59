package main

import (
	"context"

	"songvault/internal/demo"
	"songvault/internal/store"

	"github.com/rs/zerolog"
)

func seedDemoData(ctx context.Context, dataStore *store.Store, logger zerolog.Logger) error {
	return demo.Seed(ctx, dataStore, logger)
}
