package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/streak-tournament/internal/entity"
	"github.com/rocketscienceinc/streak-tournament/internal/tictactoe"
)

type player interface {
	PlayTurn(board *entity.Board, mark entity.Mark) error
}

type boardRenderer interface {
	RenderBoard(board *entity.Board)
}

type resultPublisher interface {
	Publish(ctx context.Context, result *entity.TournamentResult) error
}

// Competitor is a player as configured by the caller. Its identity is fixed for the
// whole tournament while the slot it plays from changes every round.
type Competitor struct {
	Name   string
	Player player
}

type Settings struct {
	Rounds    int
	BoardSize int
	WinStreak int
}

type Tournament struct {
	logger *slog.Logger

	settings    Settings
	renderer    boardRenderer
	competitors [2]Competitor
	publisher   resultPublisher
}

// NewTournament wires a tournament. publisher may be nil.
func NewTournament(
	logger *slog.Logger,
	settings Settings,
	renderer boardRenderer,
	first, second Competitor,
	publisher resultPublisher,
) *Tournament {
	return &Tournament{
		logger:      logger,
		settings:    settings,
		renderer:    renderer,
		competitors: [2]Competitor{first, second},
		publisher:   publisher,
	}
}

// Play runs every round in order. Even rounds start with the first competitor as X,
// odd rounds with the second. A cancelled ctx stops the run before the next round.
func (that *Tournament) Play(ctx context.Context) (*entity.TournamentResult, error) {
	result := &entity.TournamentResult{
		ID:          uuid.NewString(),
		Rounds:      that.settings.Rounds,
		BoardSize:   that.settings.BoardSize,
		WinStreak:   that.settings.WinStreak,
		Player1Name: that.competitors[0].Name,
		Player2Name: that.competitors[1].Name,
	}

	log := that.logger.With("method", "Play", "tournamentID", result.ID)

	for round := 0; round < that.settings.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("tournament stopped after %d rounds: %w", round, err)
		}

		// slots[0] plays X, slots[1] plays O
		slots := [2]int{round % 2, (round + 1) % 2}

		game := tictactoe.NewGame(
			that.competitors[slots[0]].Player,
			that.competitors[slots[1]].Player,
			that.settings.BoardSize,
			that.settings.WinStreak,
			that.renderer,
		)

		winner, err := game.Run()
		if err != nil {
			return result, fmt.Errorf("round %d failed: %w", round, err)
		}

		switch winner {
		case entity.X:
			that.credit(result, slots[0])
		case entity.O:
			that.credit(result, slots[1])
		default:
			result.Ties++
		}

		log.Debug("round finished", "round", round, "winner", winner.String())
	}

	log.Info("tournament finished",
		"player1", result.Player1Name, "player1Wins", result.Player1Wins,
		"player2", result.Player2Name, "player2Wins", result.Player2Wins,
		"ties", result.Ties,
	)

	if that.publisher != nil {
		if err := that.publisher.Publish(ctx, result); err != nil {
			log.Error("failed to publish results", "error", err)
		}
	}

	return result, nil
}

func (that *Tournament) credit(result *entity.TournamentResult, competitor int) {
	if competitor == 0 {
		result.Player1Wins++
		return
	}
	result.Player2Wins++
}
