package game

import "splitpoker-server/pkg/deck"

// seat ids
const (
	player1 = 1
	player2 = 2
)

// Player is a seated player in a room
type Player struct {
	ID       int
	Name     string
	bankroll int
	bet      int
	hand     deck.Hand
	ready    bool
	rematch  bool
}

func newPlayer(id int, name string, bankroll int) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		bankroll: bankroll,
		hand:     make(deck.Hand, 0, 8),
	}
}

// Bankroll returns the player's current bankroll
func (p *Player) Bankroll() int {
	return p.bankroll
}

// Bet returns the player's wager for the current hand
func (p *Player) Bet() int {
	return p.bet
}

// Hand returns the player's unplaced private cards
func (p *Player) Hand() deck.Hand {
	return p.hand
}

// newHand resets the per-hand state ahead of a deal
func (p *Player) newHand() {
	p.bet = 0
	p.hand = make(deck.Hand, 0, 8)
	p.ready = false
	p.rematch = false
}

func otherPlayer(playerID int) int {
	if playerID == player1 {
		return player2
	}

	return player1
}
