package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"splitpoker-server/pkg/deck"
)

func analyze(s string) *HandAnalyzer {
	return NewHandAnalyzer(5, deck.CardsFromString(s))
}

func TestHandAnalyzer_GetHand(t *testing.T) {
	a := assert.New(t)

	a.Equal(RoyalFlush, analyze("14s,13s,12s,11s,10s").GetHand())
	a.Equal(StraightFlush, analyze("9h,8h,7h,6h,5h").GetHand())
	a.Equal(StraightFlush, analyze("14c,2c,3c,4c,5c").GetHand(), "steel wheel")
	a.Equal(FourOfAKind, analyze("8c,8d,8h,8s,2c").GetHand())
	a.Equal(FullHouse, analyze("9c,9d,9h,4s,4c").GetHand())
	a.Equal(Flush, analyze("14d,11d,9d,6d,2d").GetHand())
	a.Equal(Straight, analyze("10c,9d,8h,7s,6c").GetHand())
	a.Equal(Straight, analyze("14c,2d,3h,4s,5c").GetHand(), "wheel")
	a.Equal(ThreeOfAKind, analyze("7c,7d,7h,10s,2c").GetHand())
	a.Equal(TwoPair, analyze("13c,13d,4h,4s,9c").GetHand())
	a.Equal(OnePair, analyze("12c,12d,8h,5s,2c").GetHand())
	a.Equal(HighCard, analyze("14c,12d,9h,6s,3c").GetHand())
}

func TestHandAnalyzer_GetStraight(t *testing.T) {
	s, ok := analyze("10c,9d,8h,7s,6c").GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 10, s)

	s, ok = analyze("14c,2d,3h,4s,5c").GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 5, s, "wheel is five-high")

	_, ok = analyze("14c,13d,12h,11s,9c").GetStraight()
	assert.False(t, ok)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	fh, ok := analyze("9c,9d,9h,4s,4c").GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{9, 4}, fh)

	_, ok = analyze("9c,9d,9h,4s,5c").GetFullHouse()
	assert.False(t, ok)
}

func TestHandAnalyzer_strengthOrdering(t *testing.T) {
	hands := []string{
		"14c,12d,9h,6s,3c",  // high card
		"12c,12d,8h,5s,2c",  // pair
		"13c,13d,4h,4s,9c",  // two pair
		"7c,7d,7h,10s,2c",   // trips
		"14c,2d,3h,4s,5c",   // wheel
		"10c,9d,8h,7s,6c",   // straight
		"14d,11d,9d,6d,2d",  // flush
		"9c,9d,9h,4s,4c",    // full house
		"8c,8d,8h,8s,2c",    // quads
		"14c,2c,3c,4c,5c",   // steel wheel
		"9h,8h,7h,6h,5h",    // straight flush
		"14s,13s,12s,11s,10s", // royal
	}

	prev := 0
	for _, s := range hands {
		strength := analyze(s).GetStrength()
		assert.Greater(t, strength, prev, s)
		prev = strength
	}
}

func TestHandAnalyzer_kickersBreakTies(t *testing.T) {
	a := assert.New(t)

	// high card compares every kicker
	a.Greater(analyze("14c,13d,9h,6s,3c").GetStrength(), analyze("14c,12d,9h,6s,3c").GetStrength())
	a.Greater(analyze("14c,12d,9h,6s,4c").GetStrength(), analyze("14c,12d,9h,6s,3c").GetStrength())

	// pair kickers
	a.Greater(analyze("12c,12d,9h,5s,2c").GetStrength(), analyze("12c,12d,8h,5s,2c").GetStrength())

	// two pair compares high pair, low pair, then kicker
	a.Greater(analyze("13c,13d,5h,5s,2c").GetStrength(), analyze("13c,13d,4h,4s,14c").GetStrength())
	a.Greater(analyze("13c,13d,4h,4s,10c").GetStrength(), analyze("13c,13d,4h,4s,9c").GetStrength())

	// full house compares trips before pair
	a.Greater(analyze("9c,9d,9h,2s,2c").GetStrength(), analyze("8c,8d,8h,14s,14c").GetStrength())

	// identical ranks are an exact tie regardless of suits
	a.Equal(analyze("13c,13d,4h,4s,9c").GetStrength(), analyze("13h,13s,4c,4d,9d").GetStrength())
}

func TestHandAnalyzer_inputOrderInvariant(t *testing.T) {
	a := analyze("9c,9d,9h,4s,4c")
	b := analyze("4c,9d,4s,9h,9c")

	assert.Equal(t, a.GetHand(), b.GetHand())
	assert.Equal(t, a.GetStrength(), b.GetStrength())
}
