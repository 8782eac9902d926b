package entity

// TournamentResult is the tally of a finished tournament, keyed by competitor rather than by slot.
type TournamentResult struct {
	ID          string `json:"id"`
	Rounds      int    `json:"rounds"`
	BoardSize   int    `json:"board_size"`
	WinStreak   int    `json:"win_streak"`
	Player1Name string `json:"player1_name"`
	Player2Name string `json:"player2_name"`
	Player1Wins int    `json:"player1_wins"`
	Player2Wins int    `json:"player2_wins"`
	Ties        int    `json:"ties"`
}

// Played returns the number of rounds that reached a result.
func (that *TournamentResult) Played() int {
	return that.Player1Wins + that.Player2Wins + that.Ties
}
