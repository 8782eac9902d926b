package player

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

const (
	UserPrompt           = "Player %s, type coordinates: \n"
	OutOfBoundsError     = "Invalid mark position. Please choose a valid position:"
	AlreadyOccupiedError = "Mark position is already occupied. Please choose a valid position:"
)

// CoordinateReader supplies a two-digit coordinate: tens digit is the row, units digit the column.
type CoordinateReader interface {
	ReadCoordinate() (int, error)
}

// HumanPlayer asks for coordinates until it gets a blank on-board cell.
type HumanPlayer struct {
	input  CoordinateReader
	output io.Writer
}

func NewHumanPlayer(input CoordinateReader, output io.Writer) *HumanPlayer {
	return &HumanPlayer{
		input:  input,
		output: output,
	}
}

func (that *HumanPlayer) PlayTurn(board *entity.Board, mark entity.Mark) error {
	fmt.Fprintf(that.output, UserPrompt, mark)

	size := board.Size()

	for {
		value, err := that.input.ReadCoordinate()
		if err != nil {
			return fmt.Errorf("failed to read coordinates: %w", err)
		}

		row, col := value/10, value%10

		if row < 0 || row >= size || col < 0 || col >= size {
			fmt.Fprintln(that.output, OutOfBoundsError)
			continue
		}

		if board.GetMark(row, col) != entity.Blank {
			fmt.Fprintln(that.output, AlreadyOccupiedError)
			continue
		}

		return place(board, mark, row, col)
	}
}
