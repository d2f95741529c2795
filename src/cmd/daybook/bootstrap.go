package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"daybook/local-app/src/pkg/cli"
	"daybook/local-app/src/pkg/config"
	"daybook/local-app/src/pkg/data"
	"daybook/local-app/src/pkg/log"
	"daybook/local-app/src/pkg/session"
	"daybook/local-app/src/pkg/storage"
)

// bootstrap initializes and runs the Daybook application. It loads
// configuration, initializes the logger, storage, data manager, session
// manager and CLI, runs the CLI, and handles graceful shutdown.
func bootstrap() error {
	configPath := flag.String("config", "", "path to the configuration file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *configPath != "" {
		config.SetPath(*configPath)
	}

	// Load configuration, creating defaults on first run
	if err := config.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.Get()

	// Initialize logger
	logger, err := log.New(cfg, *debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Application started", zap.String("dataDir", cfg.DataDir))

	// Initialize entity store
	store, err := storage.NewStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", zap.Error(err))
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", zap.Error(err))
		}
	}()

	logger.Info("Storage initialized")

	// Initialize data manager
	dataManager, err := data.NewDataManager(store, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize data manager", zap.Error(err))
		return fmt.Errorf("failed to initialize data manager: %w", err)
	}

	logger.Info("Data manager initialized")

	// Initialize session manager
	sessionManager, err := session.NewSessionManager(dataManager, storage.NewSessionStorage(store), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize session manager", zap.Error(err))
		return fmt.Errorf("failed to initialize session manager: %w", err)
	}

	logger.Info("Session manager initialized")

	// Initialize CLI
	cliInstance, err := cli.NewCLI(sessionManager, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize CLI", zap.Error(err))
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}

	logger.Info("CLI instance created")

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Received interrupt signal. Shutting down...")
		fmt.Println("\nReceived interrupt signal. Shutting down...")
		cliInstance.Stop()
	}()

	// Run CLI
	if err := cliInstance.Run(); err != nil {
		logger.Error("CLI error", zap.Error(err))
		return fmt.Errorf("CLI error: %w", err)
	}

	logger.Info("Application shutting down")
	return nil
}
