package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"splitpoker-server/pkg/deck"
)

// LogMessage is a single entry in the room's game log.
// If PlayerIDs is empty, it's a general statement about the hand.
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []int        `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// simpleLogMessage returns a new LogMessage
func simpleLogMessage(playerID int, format string, a ...interface{}) *LogMessage {
	var playerIDs []int
	if playerID > 0 {
		playerIDs = []int{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

func (g *Game) sendLogMessages(msgs ...*LogMessage) {
	select {
	case g.logChan <- msgs:
	default:
		g.logger.Warn("log channel is full; dropping game log messages")
	}
}

// LogChan returns the channel the game sends log messages to
func (g *Game) LogChan() <-chan []*LogMessage {
	return g.logChan
}
