package main

import (
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/joestump/counters/internal/config"
	"github.com/joestump/counters/internal/db"
	"github.com/joestump/counters/internal/logging"
)

// env is what every subcommand needs: config, a logger and an open pool.
type env struct {
	cfg    *config.Config
	logger zerolog.Logger
	db     *sqlx.DB

	closers []io.Closer
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, err
	}
	goose.SetLogger(logging.GooseLogger{Logger: logger})

	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN, db.PoolOptions{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		BusyTimeout:     cfg.DB.BusyTimeout,
	})
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		db:      database,
		closers: []io.Closer{database, logCloser},
	}, nil
}

func (e *env) Close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
}
