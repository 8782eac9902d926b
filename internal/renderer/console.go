package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

// Console draws the board as text with row and column numbers.
type Console struct {
	output io.Writer
}

func NewConsole(output io.Writer) *Console {
	return &Console{output: output}
}

func (that *Console) RenderBoard(board *entity.Board) {
	size := board.Size()

	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < size; col++ {
			glyph, ok := entity.Glyph(board.GetMark(row, col))
			if !ok {
				glyph = " "
			}
			sb.WriteString("|" + glyph)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("\n")

	fmt.Fprint(that.output, sb.String())
}
