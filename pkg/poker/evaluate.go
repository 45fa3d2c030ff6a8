package poker

import (
	"errors"
	"fmt"

	"splitpoker-server/pkg/deck"
)

// Result is the outcome of evaluating hole cards against a board
type Result struct {
	Hand     Hand         `json:"-"`
	HandName string       `json:"handName"`
	Strength int          `json:"strength"`
	Cards    []*deck.Card `json:"cards"`
}

// errors returned by Evaluate
var (
	ErrBadCommunity     = errors.New("evaluate requires exactly five community cards")
	ErrBadUseConstraint = errors.New("useExactly must be between 1 and the hole-card count")
)

// Evaluate returns the best five-card hand that can be made from the hole
// cards and the community cards.
//
// If useExactly equals the hole-card count, the hole cards are pooled with
// the community cards and the best five of the union wins (best 5 of 7 for
// two hole cards). If useExactly is less than the hole-card count, every
// combination of exactly useExactly hole cards is paired with every
// combination of 5-useExactly community cards (the Omaha constraint: 4C2 x
// 5C3 = 60 combinations).
func Evaluate(holeCards, community []*deck.Card, useExactly int) (*Result, error) {
	if len(community) != 5 {
		return nil, ErrBadCommunity
	}

	if useExactly < 1 || useExactly > len(holeCards) {
		return nil, ErrBadUseConstraint
	}

	var best *Result
	consider := func(cards []*deck.Card) {
		ha := NewHandAnalyzer(5, cards)
		if best == nil || ha.GetStrength() > best.Strength {
			fiveCards := make([]*deck.Card, len(cards))
			copy(fiveCards, cards)

			best = &Result{
				Hand:     ha.GetHand(),
				HandName: ha.GetHand().String(),
				Strength: ha.GetStrength(),
				Cards:    fiveCards,
			}
		}
	}

	if useExactly == len(holeCards) {
		pool := make([]*deck.Card, 0, len(holeCards)+len(community))
		pool = append(pool, holeCards...)
		pool = append(pool, community...)

		eachCombination(pool, 5, consider)
		return best, nil
	}

	eachCombination(holeCards, useExactly, func(fromHole []*deck.Card) {
		eachCombination(community, 5-useExactly, func(fromCommunity []*deck.Card) {
			cards := make([]*deck.Card, 0, 5)
			cards = append(cards, fromHole...)
			cards = append(cards, fromCommunity...)
			consider(cards)
		})
	})

	if best == nil {
		// unreachable given the argument checks above
		return nil, fmt.Errorf("no %d-card combination produced a hand", useExactly)
	}

	return best, nil
}

// eachCombination calls fn with every k-sized combination of cards.
// The slice passed to fn is reused between calls.
func eachCombination(cards []*deck.Card, k int, fn func([]*deck.Card)) {
	combo := make([]*deck.Card, k)

	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			fn(combo)
			return
		}

		for i := start; i <= len(cards)-(k-depth); i++ {
			combo[depth] = cards[i]
			recurse(i+1, depth+1)
		}
	}

	recurse(0, 0)
}
