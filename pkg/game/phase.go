package game

// Phase is the lifecycle phase of a room hand
type Phase string

// phase constants
const (
	// PhaseWaiting means the room has fewer than two players
	PhaseWaiting Phase = "waiting"

	// PhaseBetting means both seats are filled and bets are being collected
	PhaseBetting Phase = "betting"

	// PhasePlacing means cards are dealt and players are arranging their boards
	PhasePlacing Phase = "placing"

	// PhaseShowdown means the run-out is being dealt and hands are being scored
	PhaseShowdown Phase = "showdown"

	// PhaseComplete means the hand is settled; the room is open for a rematch
	PhaseComplete Phase = "complete"
)
