package main

import (
	"context"
	"fmt"

	"oracle-client/clients"
	"oracle-client/config"
	"oracle-client/sqlclient"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Config *config.Config
	Logger *zap.Logger
	Client *sqlclient.Client
}

// NewApp initializes the App with dependencies
func NewApp() (*App, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("fatal error loading config: %w", err)
	}

	logger, err := newLogger(cfg.Runtime.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("fatal error initializing logger: %w", err)
	}

	desc, ok := clients.ForDialect(cfg.DB.DBDialect)
	if !ok {
		return nil, fmt.Errorf("%w: %s", sqlclient.ErrUnsupportedDialect, cfg.DB.DBDialect)
	}

	client := sqlclient.NewClient(desc, logger)
	client.MaxOpenConns = cfg.Runtime.MaxOpenConns
	return &App{Config: cfg, Logger: logger, Client: client}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// ConnectionString renders the configured credentials with the password masked.
func (app *App) ConnectionString() (string, error) {
	conn, err := app.Client.GetConnectionString(app.Config.DB.Credentials())
	if err != nil {
		return "", err
	}
	return sqlclient.Redact(conn), nil
}

// Ping connects within the configured timeout.
func (app *App) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, app.Config.Runtime.ConnectTimeout)
	defer cancel()
	return app.Client.Connect(ctx, app.Config.DB.Credentials())
}

func (app *App) Close() {
	app.Logger.Sync()
	if app.Client.DB != nil {
		app.Client.Close()
	}
}
