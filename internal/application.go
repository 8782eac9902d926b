package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/streak-tournament/internal/config"
	"github.com/rocketscienceinc/streak-tournament/internal/entity"
	"github.com/rocketscienceinc/streak-tournament/internal/player"
	"github.com/rocketscienceinc/streak-tournament/internal/renderer"
	"github.com/rocketscienceinc/streak-tournament/internal/repository/storage"
	transportredis "github.com/rocketscienceinc/streak-tournament/internal/transport/redis"
	"github.com/rocketscienceinc/streak-tournament/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type resultPublisher interface {
	Publish(ctx context.Context, result *entity.TournamentResult) error
}

// RunApp - runs the tournament on the process's standard streams.
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
			log.Info("Received signal, stopping after the current round", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run validates conf, wires players, renderer and the optional publisher, plays the
// tournament and writes the report to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	boardRenderer, err := renderer.Build(conf.Renderer, out)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	playerFactory := player.NewFactory(
		rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
		player.NewKeyboardInput(in, out),
		out,
	)

	player1, err := playerFactory.BuildPlayer(conf.Player1.Type)
	if err != nil {
		return fmt.Errorf("invalid configuration for player 1: %w", err)
	}

	player2, err := playerFactory.BuildPlayer(conf.Player2.Type)
	if err != nil {
		return fmt.Errorf("invalid configuration for player 2: %w", err)
	}

	var publisher resultPublisher
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		publisher = transportredis.NewPublisher(redisStorage.Connection, conf.Redis.Channel)
	}

	name1, name2 := conf.PlayerNames()

	tournament := usecase.NewTournament(logger,
		usecase.Settings{
			Rounds:    conf.Rounds,
			BoardSize: conf.BoardSize,
			WinStreak: conf.WinStreak,
		},
		boardRenderer,
		usecase.Competitor{Name: name1, Player: player1},
		usecase.Competitor{Name: name2, Player: player2},
		publisher,
	)

	log.Info("Starting tournament", "rounds", conf.Rounds, "boardSize", conf.BoardSize, "winStreak", conf.WinStreak)

	result, err := tournament.Play(ctx)
	if err != nil {
		return fmt.Errorf("tournament failed: %w", err)
	}

	return usecase.WriteReport(out, result)
}
