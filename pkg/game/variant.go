package game

import "fmt"

// Variant determines how a board deals and scores hole cards
type Variant string

// variant constants
const (
	// VariantOmaha deals four hole cards and requires exactly two of them
	// at showdown
	VariantOmaha Variant = "omaha"

	// VariantHoldEm deals two hole cards and plays the best five of seven
	VariantHoldEm Variant = "holdem"
)

// HoleCardCount returns the number of cards a player places on a board of
// this variant
func (v Variant) HoleCardCount() int {
	switch v {
	case VariantOmaha:
		return 4
	case VariantHoldEm:
		return 2
	}

	panic(fmt.Sprintf("unknown variant: %s", v))
}

// UseExactly returns the hole-card use constraint passed to the evaluator.
// For hold'em this equals the hole-card count, which relaxes the constraint
// to best-five-of-seven.
func (v Variant) UseExactly() int {
	return 2
}

// String returns a display name for the variant
func (v Variant) String() string {
	switch v {
	case VariantOmaha:
		return "Omaha"
	case VariantHoldEm:
		return "Hold'em"
	}

	panic(fmt.Sprintf("unknown variant: %s", string(v)))
}
