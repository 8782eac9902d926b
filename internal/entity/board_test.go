package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a 4x4 board is created
	board := NewBoard(4)

	// Then: every cell should be blank
	require.Equal(t, 4, board.Size())
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, Blank, board.GetMark(row, col))
		}
	}
	assert.Len(t, board.EmptyCells(), 16)
	assert.False(t, board.IsFull())
}

func TestBoard_PutMark(t *testing.T) {
	t.Run("Placed mark can be read back", func(t *testing.T) {
		board := NewBoard(3)

		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				// When: a mark is put on an in-bounds cell
				ok := board.PutMark(O, row, col)

				// Then: it should succeed and be readable immediately
				require.True(t, ok)
				assert.Equal(t, O, board.GetMark(row, col))
			}
		}
	})

	t.Run("Out of bounds leaves the board unchanged", func(t *testing.T) {
		// Given: a board with one mark
		board := NewBoard(3)
		require.True(t, board.PutMark(X, 1, 1))
		before := append([]Mark(nil), board.cells...)

		outOfBounds := []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}, {-1, -1}, {10, 1}}
		for _, cell := range outOfBounds {
			// When: a mark is put outside the board
			ok := board.PutMark(O, cell.Row, cell.Col)

			// Then: it should fail without touching any cell
			assert.False(t, ok, "cell %v", cell)
		}

		assert.Equal(t, before, board.cells)
	})

	t.Run("Occupied cell is overwritten", func(t *testing.T) {
		// Given: a cell holding X
		board := NewBoard(3)
		require.True(t, board.PutMark(X, 0, 0))

		// When: O is put on the same cell
		ok := board.PutMark(O, 0, 0)

		// Then: the primitive does not guard occupancy
		require.True(t, ok)
		assert.Equal(t, O, board.GetMark(0, 0))
	})
}

func TestBoard_GetMark(t *testing.T) {
	// Given: a full board
	board := NewBoard(2)
	for _, cell := range board.EmptyCells() {
		board.PutMark(X, cell.Row, cell.Col)
	}

	// Then: off-board reads are blank
	assert.Equal(t, Blank, board.GetMark(-1, 0))
	assert.Equal(t, Blank, board.GetMark(0, 2))
	assert.Equal(t, X, board.GetMark(1, 1))
	assert.True(t, board.IsFull())
	assert.Empty(t, board.EmptyCells())
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with two occupied cells
	board := NewBoard(2)
	board.PutMark(X, 0, 1)
	board.PutMark(O, 1, 0)

	// When: listing blank cells
	empty := board.EmptyCells()

	// Then: they come back in row-major order
	assert.Equal(t, []Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, empty)
}

func TestMark(t *testing.T) {
	t.Run("Glyphs", func(t *testing.T) {
		glyph, ok := Glyph(X)
		assert.True(t, ok)
		assert.Equal(t, "X", glyph)

		glyph, ok = Glyph(O)
		assert.True(t, ok)
		assert.Equal(t, "O", glyph)

		glyph, ok = Glyph(Blank)
		assert.False(t, ok)
		assert.Empty(t, glyph)
	})

	t.Run("Opponent", func(t *testing.T) {
		assert.Equal(t, O, X.Opponent())
		assert.Equal(t, X, O.Opponent())
		assert.Equal(t, Blank, Blank.Opponent())
	})
}

func TestTournamentResult_Played(t *testing.T) {
	result := &TournamentResult{Player1Wins: 3, Player2Wins: 1, Ties: 2}

	assert.Equal(t, 6, result.Played())
}
