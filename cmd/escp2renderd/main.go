// cmd/escp2renderd/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"escp2render/internal/api"
	"escp2render/internal/config"
	"escp2render/internal/jobqueue"
	"escp2render/internal/jobstore"
	"escp2render/internal/logging"
	"escp2render/internal/transport"
	"escp2render/internal/ws"
)

// Application wires every escp2renderd subsystem together, following the
// teacher's cmd/server Application struct: load config, build
// collaborators bottom-up, start the HTTP server, wait for a shutdown
// signal, tear everything down in reverse order.
type Application struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server

	transport transport.Printer
	queue     *jobqueue.Queue
	processor *jobqueue.Processor
	db        *jobstore.DB
	store     *jobstore.Store
	hub       *ws.Hub
}

func main() {
	app, err := NewApplication()
	if err != nil {
		fmt.Printf("failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Start(); err != nil {
		app.logger.Fatal("application exited with error", zap.Error(err))
	}
}

// NewApplication loads configuration and builds every collaborator.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	logger.Info("starting escp2renderd", zap.String("version", cfg.App.Version), zap.String("environment", cfg.App.Environment))

	app := &Application{config: cfg, logger: logger}

	if err := app.initializeTransport(); err != nil {
		return nil, fmt.Errorf("initialize transport: %w", err)
	}
	if err := app.initializeStorage(); err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}
	app.initializeJobPipeline()
	if err := app.initializeServer(); err != nil {
		return nil, fmt.Errorf("initialize server: %w", err)
	}

	return app, nil
}

func (app *Application) initializeTransport() error {
	transportLogger := logging.NewTransportLogger(app.logger, app.config.Transport.Default)
	printer, err := transport.New(transport.Kind(app.config.Transport.Default), app.config.Transport, transportLogger)
	if err != nil {
		return err
	}
	app.transport = printer
	app.logger.Info("transport configured", zap.String("kind", app.config.Transport.Default))
	return nil
}

// initializeStorage connects to Postgres and applies migrations when
// storage.enabled is set; escp2renderd runs perfectly well with jobs
// tracked only in the in-memory queue when it is not.
func (app *Application) initializeStorage() error {
	if !app.config.Storage.Enabled {
		app.logger.Info("job storage disabled (storage.enabled=false)")
		return nil
	}

	db, err := jobstore.Open(app.config.Storage)
	if err != nil {
		return err
	}
	app.db = db

	migrator := jobstore.NewMigrator(db, app.logger)
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	app.store = jobstore.NewStore(db)
	app.logger.Info("job storage initialized")
	return nil
}

func (app *Application) initializeJobPipeline() {
	queueLogger := logging.NewQueueLogger(app.logger)
	app.queue = jobqueue.NewQueue(queueLogger)

	env := api.NewRenderEnv(app.config.Paper, app.config.Rendering)
	app.processor = env.NewProcessor(app.queue, app.transport, app.config.Rendering.JobTimeout)

	app.hub = ws.NewHub()
	app.logger.Info("job pipeline initialized")
}

func (app *Application) initializeServer() error {
	handler := api.NewHandler(
		api.NewRenderEnv(app.config.Paper, app.config.Rendering),
		app.queue,
		app.processor,
		app.store,
		app.hub,
		app.logger,
		app.config.Rendering.JobTimeout,
	)
	wsHandler := ws.NewHandler(app.hub, app.logger)
	router := api.NewRouter(app.config, app.logger, handler, wsHandler)

	app.server = &http.Server{
		Addr:         app.config.GetServerAddr(),
		Handler:      router.Setup(),
		ReadTimeout:  app.config.Server.ReadTimeout,
		WriteTimeout: app.config.Server.WriteTimeout,
		IdleTimeout:  app.config.Server.IdleTimeout,
	}

	app.logger.Info("http server configured", zap.String("address", app.config.GetServerAddr()))
	return nil
}

// Start runs the HTTP server until a shutdown signal arrives, then tears
// down every subsystem.
func (app *Application) Start() error {
	go func() {
		app.logger.Info("listening", zap.String("address", app.server.Addr))
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	app.waitForShutdown()
	return nil
}

func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	app.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	app.shutdown()
}

func (app *Application) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("http server shutdown error", zap.Error(err))
	} else {
		app.logger.Info("http server stopped")
	}

	if app.transport != nil && app.transport.IsOpen() {
		if err := app.transport.Close(); err != nil {
			app.logger.Error("transport close error", zap.Error(err))
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("storage close error", zap.Error(err))
		}
	}

	if err := logging.Sync(app.logger); err != nil {
		fmt.Printf("logger sync error: %v\n", err)
	}
}
