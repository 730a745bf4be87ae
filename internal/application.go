package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/console"
)

// RunApp - runs the console game on in/out until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
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

	eventRepo, closeEvents, err := newEventRepository(ctx, log, conf.Events)
	if err != nil {
		return err
	}
	defer closeEvents()

	opts, err := consoleOptions(conf)
	if err != nil {
		return err
	}

	gameSession := usecase.NewGameSession(logger, eventRepo)
	gameConsole := console.New(logger, gameSession, in, out, opts...)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		consoleErrCh <- gameConsole.Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("console error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newEventRepository(ctx context.Context, log *slog.Logger, conf config.Events) (repository.EventRepository, func(), error) {
	if !conf.Enabled {
		return repository.NewNopEventRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Publishing turn events", "addr", conf.GetRedisAddr(), "channel", conf.Channel)

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewEventRepository(redisStorage, conf.Channel), closeFn, nil
}

func consoleOptions(conf *config.Config) ([]console.Option, error) {
	var opts []console.Option

	if conf.FirstPlayer != "" {
		first, err := entity.ParseSymbol(conf.FirstPlayer)
		if err != nil {
			return nil, fmt.Errorf("invalid first player: %w", err)
		}
		opts = append(opts, console.WithFirstPlayer(first))
	}

	if conf.NoColor {
		opts = append(opts, console.WithoutColor())
	}

	return opts, nil
}
