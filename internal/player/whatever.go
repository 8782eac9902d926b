package player

import (
	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

type random interface {
	Intn(n int) int
}

// WhateverPlayer picks uniformly among the blank cells.
type WhateverPlayer struct {
	random random
}

func NewWhateverPlayer(rnd random) *WhateverPlayer {
	return &WhateverPlayer{random: rnd}
}

func (that *WhateverPlayer) PlayTurn(board *entity.Board, mark entity.Mark) error {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return apperror.ErrNoEmptyCell
	}

	chosenCell := availableCells[that.random.Intn(len(availableCells))]

	return place(board, mark, chosenCell.Row, chosenCell.Col)
}
