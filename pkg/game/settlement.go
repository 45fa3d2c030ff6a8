package game

import (
	"splitpoker-server/pkg/poker"
)

// BoardResult is the settled outcome of a single board
type BoardResult struct {
	Board   BoardID `json:"board"`
	Variant Variant `json:"variant"`
	Winner  int     `json:"winner"` // 0 means the board was split
	Share   int     `json:"share"`

	// WinningHand names the best hand shown on the board. On a split it
	// names the tied hand.
	WinningHand string `json:"winningHand"`

	// Hands holds each player's best evaluated hand keyed by seat id
	Hands map[int]*poker.Result `json:"hands"`
}

// Results is the settlement of a completed hand
type Results struct {
	Pot         int            `json:"pot"`
	Boards      []*BoardResult `json:"boards"`
	Totals      map[int]int    `json:"totals"`
	SweepBonus  bool           `json:"sweepBonus"`
	SweepWinner int            `json:"sweepWinner,omitempty"`

	// FinalBankrolls are the bankrolls after all winnings are credited
	FinalBankrolls map[int]int `json:"finalBankrolls"`
}

// settle evaluates every board, divides the pot, applies the sweep bonus,
// and credits the winnings back to the bankrolls
func (g *Game) settle() (*Results, error) {
	base := g.pot / len(g.boards)
	shares := []int{base, base, g.pot - 2*base}

	results := &Results{
		Pot:    g.pot,
		Boards: make([]*BoardResult, 0, len(g.boards)),
		Totals: map[int]int{player1: 0, player2: 0},
	}

	wins := map[int]int{player1: 0, player2: 0}
	for i, board := range g.boards {
		boardResult, err := g.settleBoard(board, shares[i])
		if err != nil {
			return nil, err
		}

		results.Boards = append(results.Boards, boardResult)
		if boardResult.Winner > 0 {
			wins[boardResult.Winner]++
			results.Totals[boardResult.Winner] += boardResult.Share
		} else {
			half := boardResult.Share / 2
			results.Totals[player1] += boardResult.Share - half
			results.Totals[player2] += half
		}
	}

	for _, playerID := range []int{player1, player2} {
		if wins[playerID] == len(g.boards) {
			results.SweepBonus = true
			results.SweepWinner = playerID
			results.Totals[playerID] = 2 * g.pot
		}
	}

	results.FinalBankrolls = make(map[int]int)
	for playerID, total := range results.Totals {
		g.players[playerID].bankroll += total
		results.FinalBankrolls[playerID] = g.players[playerID].bankroll
	}

	return results, nil
}

func (g *Game) settleBoard(board *Board, share int) (*BoardResult, error) {
	hands := make(map[int]*poker.Result)
	for _, playerID := range []int{player1, player2} {
		result, err := poker.Evaluate(board.PlayerCards(playerID), board.Community(), board.Variant.UseExactly())
		if err != nil {
			return nil, err
		}

		hands[playerID] = result
	}

	boardResult := &BoardResult{
		Board:       board.ID,
		Variant:     board.Variant,
		Share:       share,
		WinningHand: hands[player1].HandName,
		Hands:       hands,
	}

	switch {
	case hands[player1].Strength > hands[player2].Strength:
		boardResult.Winner = player1
	case hands[player2].Strength > hands[player1].Strength:
		boardResult.Winner = player2
		boardResult.WinningHand = hands[player2].HandName
	}

	return boardResult, nil
}
