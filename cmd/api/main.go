package main

import (
	"context"
	"net/http"
	"time"

	"spa-transferts/internal/adapters/storage/sqldb"
	"spa-transferts/internal/platform/config"
	"spa-transferts/internal/platform/logger"
	"spa-transferts/internal/router"
)

func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()

	// DATABASE_URL selects Postgres; otherwise a local SQLite file.
	driver, dsn := sqldb.DriverSQLite, cfg.SQLitePath
	if cfg.IsPostgres() {
		driver, dsn = sqldb.DriverPostgres, cfg.DatabaseURL
	}

	db, err := sqldb.Open(driver, dsn)
	if err != nil {
		log.Fatal().Err(err).Str("driver", driver).Msg("cannot open database")
	}

	ctx := context.Background()
	if err := sqldb.CreateSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema creation failed")
	}
	if err := sqldb.EnsureTransfertsColumns(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("transferts migration failed")
	}
	log.Info().Str("driver", driver).Msg("database initialized, auto migration ok")

	h := router.NewRouter(router.Options{
		DB:             db,
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
