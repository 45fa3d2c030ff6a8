package room

// client actions
const (
	actionPlaceBet         = "placeBet"
	actionMoveCard         = "moveCard"
	actionConfirmPlacement = "confirmPlacement"
	actionRequestRematch   = "requestRematch"
	actionSendMessage      = "sendMessage"
	actionGetState         = "getState"
)

// maxChatLength caps a single chat message
const maxChatLength = 200

// Payload is a message received from a connected client. Context is an
// opaque client-supplied value echoed back on the matching response.
type Payload struct {
	Action  string `json:"action"`
	Context string `json:"context"`

	// placeBet
	Amount int `json:"amount"`

	// moveCard
	CardID int    `json:"cardId"`
	From   string `json:"from"`
	To     string `json:"to"`

	// sendMessage
	Message string `json:"message"`
}
