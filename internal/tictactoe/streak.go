package tictactoe

import "github.com/rocketscienceinc/streak-tournament/internal/entity"

// HasStreak reports whether mark forms a contiguous line of at least winStreak cells
// horizontally, vertically or on either diagonal.
//
// Each table holds the length of the run ending at a cell along one direction, so a
// single row-major pass is enough: a run is its predecessor's run plus one.
func HasStreak(board *entity.Board, mark entity.Mark, winStreak int) bool {
	size := board.Size()

	horizontal := newRunTable(size)
	vertical := newRunTable(size)
	diagonal := newRunTable(size)     // "\"
	antiDiagonal := newRunTable(size) // "/"

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.GetMark(row, col) != mark {
				// tables start zeroed and each cell is visited once
				continue
			}

			horizontal[row][col] = runAt(horizontal, row, col-1) + 1
			vertical[row][col] = runAt(vertical, row-1, col) + 1
			diagonal[row][col] = runAt(diagonal, row-1, col-1) + 1
			antiDiagonal[row][col] = runAt(antiDiagonal, row-1, col+1) + 1

			if horizontal[row][col] >= winStreak ||
				vertical[row][col] >= winStreak ||
				diagonal[row][col] >= winStreak ||
				antiDiagonal[row][col] >= winStreak {
				return true
			}
		}
	}

	return false
}

func newRunTable(size int) [][]int {
	table := make([][]int, size)
	for i := range table {
		table[i] = make([]int, size)
	}

	return table
}

// runAt returns the run length stored at (row, col), or 0 off the board.
func runAt(table [][]int, row, col int) int {
	if row < 0 || row >= len(table) || col < 0 || col >= len(table[row]) {
		return 0
	}

	return table[row][col]
}
