package room

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitpoker-server/pkg/game"
)

func testDealer(t *testing.T) *Dealer {
	t.Helper()

	dealer, err := NewDealer(logrus.StandardLogger(), "ABCDEF", game.DefaultOptions())
	require.NoError(t, err)
	dealer.StartShift()
	t.Cleanup(dealer.EndShift)

	return dealer
}

// waitForKey reads from the client until a response with the key arrives
func waitForKey(t *testing.T, c *Client, key string) *Response {
	t.Helper()

	deadline := time.After(time.Second)
	for {
		select {
		case msg := <-c.SendChan():
			resp, ok := msg.(*Response)
			require.True(t, ok)
			if resp.Key == key {
				return resp
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q response", key)
			return nil
		}
	}
}

func TestDealer_Seat(t *testing.T) {
	dealer := testDealer(t)

	playerID, err := dealer.Seat("Alice")
	assert.NoError(t, err)
	assert.Equal(t, 1, playerID)

	// an empty name gets a generated one
	playerID, err = dealer.Seat("")
	assert.NoError(t, err)
	assert.Equal(t, 2, playerID)

	state, err := dealer.State(0)
	require.NoError(t, err)
	assert.Equal(t, game.PhaseBetting, state.Phase)
	assert.NotEmpty(t, state.Players[2].Name)

	_, err = dealer.Seat("Carol")
	assert.Error(t, err)
}

func TestDealer_GameActions(t *testing.T) {
	dealer := testDealer(t)

	_, err := dealer.Seat("Alice")
	require.NoError(t, err)
	_, err = dealer.Seat("Bob")
	require.NoError(t, err)

	c1 := NewClient(nil, dealer.Code(), 1)
	c2 := NewClient(nil, dealer.Code(), 2)
	dealer.AddClient(c1)
	dealer.AddClient(c2)

	// each client gets the current state on connect
	waitForKey(t, c1, "game")
	waitForKey(t, c2, "game")

	c1.ReceivedMessage(&Payload{Action: actionPlaceBet, Context: "bet-1", Amount: 25})
	resp := waitForKey(t, c1, "ok")
	assert.Equal(t, "bet-1", resp.Context)

	// betting out of phase order comes back as an error
	c2.ReceivedMessage(&Payload{Action: actionPlaceBet, Context: "bet-2", Amount: 10})
	resp = waitForKey(t, c2, "error")
	assert.Equal(t, "bet-2", resp.Context)
	assert.NotEmpty(t, resp.Value)

	c2.ReceivedMessage(&Payload{Action: actionPlaceBet, Context: "bet-3", Amount: 25})
	waitForKey(t, c2, "ok")

	resp = waitForKey(t, c2, "game")
	state, ok := resp.Data.(*game.State)
	require.True(t, ok)
	assert.Equal(t, game.PhasePlacing, state.Phase)
	assert.Equal(t, 50, state.Pot)

	c1.ReceivedMessage(&Payload{Action: "shuffle", Context: "x"})
	resp = waitForKey(t, c1, "error")
	assert.Equal(t, "x", resp.Context)
}

func TestDealer_Chat(t *testing.T) {
	dealer := testDealer(t)

	_, err := dealer.Seat("Alice")
	require.NoError(t, err)

	c1 := NewClient(nil, dealer.Code(), 1)
	dealer.AddClient(c1)
	waitForKey(t, c1, "game")

	c1.ReceivedMessage(&Payload{Action: actionSendMessage, Context: "chat-1", Message: "  nice hand  "})
	waitForKey(t, c1, "ok")

	resp := waitForKey(t, c1, "chat")
	chat, ok := resp.Data.(*chatMessage)
	require.True(t, ok)
	assert.Equal(t, 1, chat.PlayerID)
	assert.Equal(t, "Alice", chat.Name)
	assert.Equal(t, "nice hand", chat.Message)

	c1.ReceivedMessage(&Payload{Action: actionSendMessage, Context: "chat-2", Message: ""})
	resp = waitForKey(t, c1, "error")
	assert.Equal(t, "chat-2", resp.Context)

	tooLong := make([]byte, 0, maxChatLength+1)
	for i := 0; i <= maxChatLength; i++ {
		tooLong = append(tooLong, 'a')
	}

	c1.ReceivedMessage(&Payload{Action: actionSendMessage, Context: "chat-3", Message: string(tooLong)})
	resp = waitForKey(t, c1, "error")
	assert.Equal(t, "chat-3", resp.Context)
}
