package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

type player interface {
	PlayTurn(board *entity.Board, mark entity.Mark) error
}

type boardRenderer interface {
	RenderBoard(board *entity.Board)
}

// Game runs a single match between two players on a fresh board.
// playerX always moves first.
type Game struct {
	players   [2]player
	marks     [2]entity.Mark
	winStreak int
	renderer  boardRenderer
	board     *entity.Board
}

func NewGame(playerX, playerO player, size, winStreak int, renderer boardRenderer) *Game {
	return &Game{
		players:   [2]player{playerX, playerO},
		marks:     [2]entity.Mark{entity.X, entity.O},
		winStreak: winStreak,
		renderer:  renderer,
		board:     entity.NewBoard(size),
	}
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) WinStreak() int {
	return that.winStreak
}

// Run alternates turns until the mark that just moved has a streak or the board is full.
// It returns the winning mark, or entity.Blank for a tie.
func (that *Game) Run() (entity.Mark, error) {
	size := that.board.Size()

	for turn := 0; turn < size*size; turn++ {
		mark := that.marks[turn%2]
		before := snapshot(that.board)

		if err := that.players[turn%2].PlayTurn(that.board, mark); err != nil {
			return entity.Blank, fmt.Errorf("turn %d for %s: %w", turn, mark, err)
		}

		if !isSingleMove(before, that.board, mark) {
			return entity.Blank, fmt.Errorf("turn %d for %s: %w", turn, mark, apperror.ErrIllegalMove)
		}

		that.renderer.RenderBoard(that.board)

		if HasStreak(that.board, mark, that.winStreak) {
			return mark, nil
		}
	}

	return entity.Blank, nil
}

func snapshot(board *entity.Board) []entity.Mark {
	size := board.Size()
	cells := make([]entity.Mark, 0, size*size)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cells = append(cells, board.GetMark(row, col))
		}
	}

	return cells
}

// isSingleMove reports whether exactly one cell changed since before, and it went from blank to mark.
func isSingleMove(before []entity.Mark, board *entity.Board, mark entity.Mark) bool {
	changed := 0

	for i, after := range snapshot(board) {
		if after == before[i] {
			continue
		}

		changed++
		if before[i] != entity.Blank || after != mark {
			return false
		}
	}

	return changed == 1
}
