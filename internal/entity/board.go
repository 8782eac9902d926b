package entity

// Board is a square grid of marks. It is created blank and only changed through PutMark.
type Board struct {
	size  int
	cells []Mark
}

// Cell addresses a board position.
type Cell struct {
	Row int
	Col int
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}
}

func (that *Board) Size() int {
	return that.size
}

// PutMark writes mark at (row, col) and reports whether the position was on the board.
// It does not check that the cell is blank; strategies only ever target blank cells.
func (that *Board) PutMark(mark Mark, row, col int) bool {
	if !that.inBounds(row, col) {
		return false
	}

	that.cells[row*that.size+col] = mark

	return true
}

// GetMark returns the mark at (row, col), or Blank when the position is off the board.
func (that *Board) GetMark(row, col int) Mark {
	if !that.inBounds(row, col) {
		return Blank
	}

	return that.cells[row*that.size+col]
}

// EmptyCells lists blank cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	empty := make([]Cell, 0, len(that.cells))
	for i, mark := range that.cells {
		if mark == Blank {
			empty = append(empty, Cell{Row: i / that.size, Col: i % that.size})
		}
	}

	return empty
}

func (that *Board) IsFull() bool {
	for _, mark := range that.cells {
		if mark == Blank {
			return false
		}
	}

	return true
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}
