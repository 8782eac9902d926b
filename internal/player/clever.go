package player

import (
	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

// CleverPlayer takes the first blank cell scanning row by row from the top-left corner.
type CleverPlayer struct{}

func NewCleverPlayer() *CleverPlayer {
	return &CleverPlayer{}
}

func (that *CleverPlayer) PlayTurn(board *entity.Board, mark entity.Mark) error {
	size := board.Size()

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.GetMark(row, col) == entity.Blank {
				return place(board, mark, row, col)
			}
		}
	}

	return apperror.ErrNoEmptyCell
}
