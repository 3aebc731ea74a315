package root

import (
	"context"
	"fmt"
	"os"

	"github.com/jhitchenor/hungerford-holdings/internal/catalog"
	"github.com/jhitchenor/hungerford-holdings/internal/config"
	"github.com/jhitchenor/hungerford-holdings/internal/engine"
	"github.com/jhitchenor/hungerford-holdings/internal/storage"
	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

// openEngine wires config, catalog and store into a running engine.
// If the store cannot be reached the session falls back to a degraded
// read-only engine seeded from the baseline catalog; commits will be
// rejected rather than silently kept local.
func openEngine(ctx context.Context) (*engine.Engine, func(), error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}

	cat := catalog.Baseline()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, nil, err
		}
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		warnDegraded(err)
		return engine.NewDegraded(cat), func() {}, nil
	}

	eng, err := engine.New(ctx, cat, storage.NewStore(db))
	if err != nil {
		_ = db.Close()
		warnDegraded(err)
		return engine.NewDegraded(cat), func() {}, nil
	}

	if report := eng.LoadReport(); report.SnapshotMismatch {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" snapshot disagreed with the ledger; recomputed from the log"))
	}

	cleanup := func() { _ = db.Close() }
	return eng, cleanup, nil
}

func warnDegraded(err error) {
	fmt.Fprintln(os.Stderr, ui.Warn.Render(fmt.Sprintf("%s store unavailable (%v); running read-only", ui.IconWarn, err)))
}
