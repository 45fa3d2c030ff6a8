package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()
	assert.Equal(t, 52, d.CardsLeft())

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		seen[CardToString(card)] = true
	}
	assert.Len(t, seen, 52)
}

func TestDeck_Shuffle(t *testing.T) {
	d1 := New()
	d1.Shuffle(42)

	d2 := New()
	d2.Shuffle(42)

	assert.Equal(t, int64(42), d1.GetSeed())
	assert.Equal(t, d1.HashCode(), d2.HashCode())

	d3 := New()
	d3.Shuffle(43)
	assert.NotEqual(t, d1.HashCode(), d3.HashCode())

	// a clock-seeded shuffle still holds all 52 cards
	d4 := New()
	d4.Shuffle(0)
	assert.Equal(t, 52, d4.CardsLeft())

	assert.Panics(t, func() {
		New().Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	d := New()
	card, err := d.Draw()
	assert.NoError(t, err)
	assert.Equal(t, "2c", CardToString(card))
	assert.Equal(t, 51, d.CardsLeft())

	d.Cards = nil
	card, err = d.Draw()
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Nil(t, card)
}

func TestDeck_Draw_assignsSequentialIDs(t *testing.T) {
	d := New()
	d.Shuffle(1)

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		assert.NoError(t, err)
		assert.Equal(t, i, card.ID)
	}
}

func TestDeck_Deal(t *testing.T) {
	d := New()
	cards, err := d.Deal(5)
	assert.NoError(t, err)
	assert.Equal(t, "2c,3c,4c,5c,6c", CardsToString(cards))
	assert.Equal(t, 47, d.CardsLeft())

	cards, err = d.Deal(48)
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Nil(t, cards)
	assert.Equal(t, 47, d.CardsLeft())
}

func TestDeck_CanDraw(t *testing.T) {
	d := New()
	assert.True(t, d.CanDraw(52))
	assert.False(t, d.CanDraw(53))
}
