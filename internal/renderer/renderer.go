package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

// Renderer displays the board after every move.
type Renderer interface {
	RenderBoard(board *entity.Board)
}

const (
	TypeConsole = "console"
	TypeVoid    = "void"
)

var typeAliases = map[string]string{
	"console": TypeConsole,
	"visible": TypeConsole,
	"void":    TypeVoid,
	"silent":  TypeVoid,
}

// ParseType maps a renderer identifier to its canonical name, ignoring case.
func ParseType(rendererType string) (string, error) {
	canonical, ok := typeAliases[strings.ToLower(strings.TrimSpace(rendererType))]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownRendererType, rendererType)
	}

	return canonical, nil
}

// Build returns the renderer for rendererType. Console output goes to output.
func Build(rendererType string, output io.Writer) (Renderer, error) {
	canonical, err := ParseType(rendererType)
	if err != nil {
		return nil, err
	}

	if canonical == TypeConsole {
		return NewConsole(output), nil
	}

	return NewVoid(), nil
}
