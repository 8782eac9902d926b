package usecase

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/streak-tournament/internal/entity"
)

const reportBanner = "######### Results #########"

// WriteReport prints the final tally. Competitor order never depends on who started.
func WriteReport(w io.Writer, result *entity.TournamentResult) error {
	_, err := fmt.Fprintf(w, "%s\nPlayer 1, %s won: %d\nPlayer 2, %s won: %d\nTies: %d\n",
		reportBanner,
		result.Player1Name, result.Player1Wins,
		result.Player2Name, result.Player2Wins,
		result.Ties,
	)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
