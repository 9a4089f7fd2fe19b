package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	moveRepo, closeRepo, err := newMoveRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	bot := service.NewBotService(logger, moveRepo, conf.Computer.Mark)
	gameManager := usecase.NewGameManager(logger, bot)

	cli := console.New(logger, os.Stdin, os.Stdout, gameManager, conf.Computer.Mark)

	log.Info("Starting console game", "computerMark", conf.Computer.Mark, "redisCache", conf.Redis.Enabled)

	if err = cli.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		if errors.Is(err, io.EOF) {
			log.Info("Input closed, shutting down")
			return nil
		}

		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

// newMoveRepository - Redis when enabled, memory otherwise.
func newMoveRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MoveRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryMoveRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == ":" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewMoveRepository(redisStorage.Connection, conf.Redis.TTL), closeFn, nil
}
