package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("2c"))
	h.AddCard(CardFromString("14s"))
	assert.Equal(t, "2c,14s", h.String())
	assert.True(t, h.HasCard(CardFromString("14s")))
	assert.False(t, h.HasCard(CardFromString("14h")))
}

func TestHand_CardByID(t *testing.T) {
	h := Hand{
		{ID: 3, Rank: 2, Suit: Clubs},
		{ID: 7, Rank: Ace, Suit: Spades},
	}

	assert.Equal(t, Ace, h.CardByID(7).Rank)
	assert.Nil(t, h.CardByID(8))
}

func TestHand_RemoveByID(t *testing.T) {
	h := Hand{
		{ID: 0, Rank: 2, Suit: Clubs},
		{ID: 1, Rank: 3, Suit: Clubs},
		{ID: 2, Rank: 4, Suit: Clubs},
	}

	card, ok := h.RemoveByID(1)
	assert.True(t, ok)
	assert.Equal(t, 3, card.Rank)
	assert.Equal(t, "2c,4c", h.String())

	card, ok = h.RemoveByID(1)
	assert.False(t, ok)
	assert.Nil(t, card)
	assert.Equal(t, "2c,4c", h.String())
}

func TestHand_Clone(t *testing.T) {
	h := Hand{CardFromString("2c")}
	clone := h.Clone()
	clone.AddCard(CardFromString("3c"))

	assert.Len(t, h, 1)
	assert.Len(t, clone, 2)
}
