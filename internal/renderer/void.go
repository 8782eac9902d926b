package renderer

import "github.com/rocketscienceinc/streak-tournament/internal/entity"

// Void renders nothing. It is used for headless tournaments.
type Void struct{}

func NewVoid() *Void {
	return &Void{}
}

func (that *Void) RenderBoard(*entity.Board) {}
