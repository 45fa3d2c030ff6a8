package game

import (
	"splitpoker-server/pkg/deck"
)

// BoardID identifies one of the three board lanes
type BoardID string

// board ids
const (
	BoardA BoardID = "A"
	BoardB BoardID = "B"
	BoardC BoardID = "C"
)

// BoardIDs is the canonical board order
var BoardIDs = []BoardID{BoardA, BoardB, BoardC}

// Board is one of the three lanes in a room. It owns a variant assignment,
// the community cards dealt to it, and each player's placed cards.
type Board struct {
	ID        BoardID
	Variant   Variant
	community deck.Hand
	placed    map[int]deck.Hand
}

func newBoard(id BoardID, variant Variant) *Board {
	return &Board{
		ID:      id,
		Variant: variant,
		placed: map[int]deck.Hand{
			player1: make(deck.Hand, 0, 4),
			player2: make(deck.Hand, 0, 4),
		},
	}
}

// Community returns the community cards dealt so far (3 during placing,
// 5 after the showdown run-out)
func (b *Board) Community() deck.Hand {
	return b.community
}

// PlayerCards returns the cards the player has placed on this board
func (b *Board) PlayerCards(playerID int) deck.Hand {
	return b.placed[playerID]
}

// atCapacity returns true if the player cannot place another card here
func (b *Board) atCapacity(playerID int) bool {
	return len(b.placed[playerID]) >= b.Variant.HoleCardCount()
}

// isFilled returns true if the player has placed exactly the variant's
// required count
func (b *Board) isFilled(playerID int) bool {
	return len(b.placed[playerID]) == b.Variant.HoleCardCount()
}

func (b *Board) addCard(playerID int, card *deck.Card) {
	hand := b.placed[playerID]
	hand.AddCard(card)
	b.placed[playerID] = hand
}

func (b *Board) removeCardByID(playerID, cardID int) (*deck.Card, bool) {
	hand := b.placed[playerID]
	card, ok := hand.RemoveByID(cardID)
	if !ok {
		return nil, false
	}

	b.placed[playerID] = hand
	return card, true
}
