package player

import (
	"fmt"

	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

// Player picks exactly one blank cell and puts its mark there.
// Calling PlayTurn on a full board returns apperror.ErrNoEmptyCell.
type Player interface {
	PlayTurn(board *entity.Board, mark entity.Mark) error
}

func place(board *entity.Board, mark entity.Mark, row, col int) error {
	if !board.PutMark(mark, row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	return nil
}
