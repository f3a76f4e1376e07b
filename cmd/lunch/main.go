package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lunch-roll/domain/grouping"
	"lunch-roll/internal"
	"lunch-roll/repositories"
	"lunch-roll/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the store, the allocator and the service, then dispatches one command.
func run(args []string) error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	path := config.BadgerFilepath
	if path == "" {
		path = database.DefaultPath
	}
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	repository := repositories.NewRosterRepository(db, log)
	if _, err = repository.EnsureSchema(); err != nil {
		return err
	}

	// 3. Allocator & service
	seed := time.Now().UnixNano()
	if config.Seed != "" {
		if seed, err = strconv.ParseInt(config.Seed, 10, 64); err != nil {
			return fmt.Errorf("config error: SEED %q is not an integer", config.Seed)
		}
	}
	allocator := grouping.NewAllocator(rand.New(rand.NewSource(seed)), log)
	service := services.NewLunchService(log, repository, allocator)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := newApp(log, service, os.Stdout, config)
	return cli.dispatch(ctx, args)
}
