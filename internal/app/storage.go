package app

import (
	"context"
	"fmt"

	"fxalerts/internal/adapters"
	"fxalerts/internal/adapters/postgres"
	"fxalerts/internal/adapters/sqlite"
	"fxalerts/internal/config"
	"fxalerts/internal/platform/db"

	"github.com/sirupsen/logrus"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

// openSubscriptionStore connects the configured store and brings its schema up to date.
// The returned close func is never nil.
func openSubscriptionStore(ctx context.Context, cfg *config.AppConfig) (adapters.SubscriptionRepository, func(), error) {
	switch cfg.Storage.Driver {
	case driverPostgres:
		pool, err := db.CreatePoolAndPing(ctx, cfg.DbServer)
		if err != nil {
			return nil, func() {}, fmt.Errorf("error connecting to db: %w", err)
		}
		if err = db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, func() {}, fmt.Errorf("error migrating db: %w", err)
		}
		logrus.Info("✅ Postgres connection successful")
		return postgres.NewSubscriptionRepository(pool), pool.Close, nil

	case driverSQLite:
		gdb, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, func() {}, err
		}
		logrus.Infof("✅ SQLite store opened at %s", cfg.Storage.SQLitePath)
		return sqlite.NewSubscriptionRepository(gdb), func() {
			if err := sqlite.Close(gdb); err != nil {
				logrus.WithError(err).Warn("SQLite close failed")
			}
		}, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
