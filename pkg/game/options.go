package game

import "errors"

// TurnPolicy controls when the turn passes while placing cards
type TurnPolicy string

// turn policies
const (
	// TurnPerConfirm keeps the turn with a player until they confirm their
	// full placement
	TurnPerConfirm TurnPolicy = "perConfirm"

	// TurnPerMove passes the turn after every accepted card move, as long
	// as the other player has not confirmed yet
	TurnPerMove TurnPolicy = "perMove"
)

// Options configures a game
type Options struct {
	MinBet           int
	StartingBankroll int
	TurnPolicy       TurnPolicy

	// Variants pins the variant of boards A, B, and C in order. Leave
	// empty to have each hand shuffle one Omaha board and two hold'em
	// boards across the lanes.
	Variants []Variant
}

// DefaultOptions returns the default game options
func DefaultOptions() Options {
	return Options{
		MinBet:           25,
		StartingBankroll: 1000,
		TurnPolicy:       TurnPerConfirm,
	}
}

func validateOptions(opts Options) error {
	if opts.MinBet <= 0 {
		return errors.New("minimum bet must be greater than zero")
	}

	if opts.StartingBankroll < opts.MinBet {
		return errors.New("starting bankroll must cover the minimum bet")
	}

	switch opts.TurnPolicy {
	case TurnPerConfirm, TurnPerMove:
	default:
		return errors.New("unknown turn policy")
	}

	if len(opts.Variants) > 0 {
		if len(opts.Variants) != 3 {
			return errors.New("variants must cover all three boards")
		}

		omaha := 0
		for _, v := range opts.Variants {
			switch v {
			case VariantOmaha:
				omaha++
			case VariantHoldEm:
			default:
				return errors.New("unknown variant")
			}
		}

		if omaha != 1 {
			return errors.New("exactly one board must be Omaha")
		}
	}

	return nil
}
