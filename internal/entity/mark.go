package entity

// Mark is the state of a single board cell.
type Mark int

const (
	Blank Mark = iota
	X
	O
)

// Glyph returns the one-character display form of a mark. Blank has none.
func Glyph(mark Mark) (string, bool) {
	switch mark {
	case X:
		return "X", true
	case O:
		return "O", true
	default:
		return "", false
	}
}

func (that Mark) String() string {
	if glyph, ok := Glyph(that); ok {
		return glyph
	}
	return "blank"
}

// Opponent returns the other competitor's mark, or Blank for Blank.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Blank
	}
}
