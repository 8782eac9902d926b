package player

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
)

type Kind string

const (
	KindHuman    Kind = "human"
	KindWhatever Kind = "whatever"
	KindClever   Kind = "clever"
	KindGenius   Kind = "genius"
)

var kindAliases = map[string]Kind{
	"human":       KindHuman,
	"interactive": KindHuman,
	"whatever":    KindWhatever,
	"random":      KindWhatever,
	"clever":      KindClever,
	"first-empty": KindClever,
	"genius":      KindGenius,
	"heuristic":   KindGenius,
}

// ParseKind maps a player type identifier to its Kind, ignoring case.
func ParseKind(playerType string) (Kind, error) {
	kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(playerType))]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerType, playerType)
	}

	return kind, nil
}

// Factory builds players from their type identifiers.
type Factory struct {
	random random
	input  CoordinateReader
	output io.Writer
}

func NewFactory(rnd random, input CoordinateReader, output io.Writer) *Factory {
	return &Factory{
		random: rnd,
		input:  input,
		output: output,
	}
}

func (that *Factory) BuildPlayer(playerType string) (Player, error) {
	kind, err := ParseKind(playerType)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindHuman:
		return NewHumanPlayer(that.input, that.output), nil
	case KindWhatever:
		return NewWhateverPlayer(that.random), nil
	case KindClever:
		return NewCleverPlayer(), nil
	case KindGenius:
		return NewGeniusPlayer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerType, playerType)
	}
}
