package player

import (
	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

// GeniusPlayer blocks a blank cell that has two opponent marks directly to its left.
// Otherwise it takes the last blank cell in row-major order.
//
// Only horizontal threats approaching from the left are seen.
type GeniusPlayer struct{}

func NewGeniusPlayer() *GeniusPlayer {
	return &GeniusPlayer{}
}

func (that *GeniusPlayer) PlayTurn(board *entity.Board, mark entity.Mark) error {
	size := board.Size()
	opponent := mark.Opponent()

	for row := 0; row < size; row++ {
		for col := 2; col < size; col++ {
			if board.GetMark(row, col) == entity.Blank &&
				board.GetMark(row, col-1) == opponent &&
				board.GetMark(row, col-2) == opponent {
				return place(board, mark, row, col)
			}
		}
	}

	for row := size - 1; row >= 0; row-- {
		for col := size - 1; col >= 0; col-- {
			if board.GetMark(row, col) == entity.Blank {
				return place(board, mark, row, col)
			}
		}
	}

	return apperror.ErrNoEmptyCell
}
