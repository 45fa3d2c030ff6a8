package game

import (
	"splitpoker-server/pkg/deck"
)

// hiddenCard stands in for a card the viewer is not allowed to see. Notably
// it carries no card id.
type hiddenCard struct {
	Hidden bool `json:"hidden"`
}

// PlayerState is one seat's public-or-private view
type PlayerState struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Bankroll int           `json:"bankroll"`
	Bet      int           `json:"bet"`
	Ready    bool          `json:"ready"`
	Rematch  bool          `json:"rematch"`
	Hand     []interface{} `json:"hand"`
}

// BoardState is one board's view with the viewer's redaction applied
type BoardState struct {
	ID        BoardID               `json:"id"`
	Variant   Variant               `json:"variant"`
	Capacity  int                   `json:"capacity"`
	Community []interface{}         `json:"community"`
	Placed    map[int][]interface{} `json:"placed"`
}

// State is a full snapshot of the game redacted for one viewer
type State struct {
	Code        string               `json:"code"`
	Phase       Phase                `json:"phase"`
	MinBet      int                  `json:"minBet"`
	Pot         int                  `json:"pot"`
	CurrentTurn int                  `json:"currentTurn"`
	ViewerID    int                  `json:"viewerId"`
	Players     map[int]*PlayerState `json:"players"`
	Boards      []*BoardState        `json:"boards"`
	Results     *Results             `json:"results,omitempty"`
}

// State builds a snapshot for the given viewer. A viewer id of 0 is a
// spectator and sees no private cards. Hidden cards keep their positions
// so the client can render stable card backs.
func (g *Game) State(viewerID int) *State {
	state := &State{
		Code:        g.code,
		Phase:       g.phase,
		MinBet:      g.options.MinBet,
		Pot:         g.pot,
		CurrentTurn: g.currentTurn,
		ViewerID:    viewerID,
		Players:     make(map[int]*PlayerState),
		Results:     g.results,
	}

	for id, player := range g.players {
		state.Players[id] = &PlayerState{
			ID:       player.ID,
			Name:     player.Name,
			Bankroll: player.bankroll,
			Bet:      player.bet,
			Ready:    player.ready,
			Rematch:  player.rematch,
			Hand:     redactCards(player.hand, id == viewerID),
		}
	}

	if g.boards != nil {
		state.Boards = make([]*BoardState, 0, len(g.boards))
		for _, board := range g.boards {
			state.Boards = append(state.Boards, g.boardState(board, viewerID))
		}
	}

	return state
}

func (g *Game) boardState(board *Board, viewerID int) *BoardState {
	// placed cards go face up once the hand reaches the showdown
	faceUp := g.phase == PhaseShowdown || g.phase == PhaseComplete

	bs := &BoardState{
		ID:        board.ID,
		Variant:   board.Variant,
		Capacity:  board.Variant.HoleCardCount(),
		Community: make([]interface{}, 0, 5),
		Placed:    make(map[int][]interface{}),
	}

	for _, card := range board.community {
		bs.Community = append(bs.Community, card)
	}
	for len(bs.Community) < 5 {
		bs.Community = append(bs.Community, hiddenCard{Hidden: true})
	}

	for _, playerID := range []int{player1, player2} {
		bs.Placed[playerID] = redactCards(board.PlayerCards(playerID), faceUp || playerID == viewerID)
	}

	return bs
}

func redactCards(cards deck.Hand, visible bool) []interface{} {
	out := make([]interface{}, len(cards))
	for i, card := range cards {
		if visible {
			out[i] = card
		} else {
			out[i] = hiddenCard{Hidden: true}
		}
	}

	return out
}
