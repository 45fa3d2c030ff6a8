package room

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"splitpoker-server/internal/util"
	"splitpoker-server/pkg/game"
)

// ErrRoomClosed is returned when an action races the room's teardown
var ErrRoomClosed = errors.New("the room is closed")

// Dealer owns a single room. All game mutations happen in its run loop, so
// the game itself never needs a lock.
type Dealer struct {
	logger  logrus.FieldLogger
	game    *game.Game
	clients map[*Client]bool
	lock    sync.RWMutex

	exec      chan func()
	close     chan bool
	closeOnce sync.Once
}

// NewDealer creates a dealer and its game for the room code
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, code string, options game.Options) (*Dealer, error) {
	g, err := game.NewGame(logger, code, options)
	if err != nil {
		return nil, err
	}

	return &Dealer{
		logger:  logger.WithField("code", code),
		game:    g,
		clients: make(map[*Client]bool),
		exec:    make(chan func(), 256),
		close:   make(chan bool),
	}, nil
}

// Code returns the room code
func (d *Dealer) Code() string {
	return d.game.Code()
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.exec:
			fn()
		case msgs := <-d.game.LogChan():
			d.broadcast(&Response{Key: "log", Data: msgs})
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed.
// Safe to call more than once; a straggling client can race the teardown.
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

// enqueue hands fn to the run loop.
// Returns false if the room closed instead; fn will never run.
func (d *Dealer) enqueue(fn func()) bool {
	select {
	case d.exec <- fn:
		return true
	case <-d.close:
		return false
	}
}

// Seat adds a player to the game and returns their seat.
// If name is empty, one is picked for them.
func (d *Dealer) Seat(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = util.GetRandomName()
	}

	type seatResult struct {
		playerID int
		err      error
	}

	res := make(chan seatResult, 1)
	ok := d.enqueue(func() {
		playerID, err := d.game.AddPlayer(name)
		if err == nil {
			d.broadcastState()
		}

		res <- seatResult{playerID: playerID, err: err}
	})
	if !ok {
		return 0, ErrRoomClosed
	}

	// the room can still close between the enqueue and the reply
	select {
	case r := <-res:
		return r.playerID, r.err
	case <-d.close:
		return 0, ErrRoomClosed
	}
}

// State returns a snapshot of the game redacted for the viewer
func (d *Dealer) State(viewerID int) (*game.State, error) {
	res := make(chan *game.State, 1)
	if !d.enqueue(func() { res <- d.game.State(viewerID) }) {
		return nil, ErrRoomClosed
	}

	select {
	case state := <-res:
		return state, nil
	case <-d.close:
		return nil, ErrRoomClosed
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.enqueue(func() {
		client.Send(&Response{Key: "game", Data: d.game.State(client.PlayerID)})
	})
}

// RemoveClient removes a client and reports whether it was the last one
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.enqueue(func() {
			d.broadcast(&Response{Key: "playerLeft", Data: client.PlayerID})
		})
		return false
	}

	return true
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *Payload) {
	switch msg.Action {
	case actionPlaceBet:
		d.performGameAction(c, msg, func() error {
			return d.game.PlaceBet(c.PlayerID, msg.Amount)
		})
	case actionMoveCard:
		d.performGameAction(c, msg, func() error {
			return d.game.MoveCard(c.PlayerID, msg.CardID, msg.From, msg.To)
		})
	case actionConfirmPlacement:
		d.performGameAction(c, msg, func() error {
			return d.game.ConfirmPlacement(c.PlayerID)
		})
	case actionRequestRematch:
		d.performGameAction(c, msg, func() error {
			return d.game.RequestRematch(c.PlayerID)
		})
	case actionGetState:
		d.enqueue(func() {
			c.Send(&Response{Key: "game", Context: msg.Context, Data: d.game.State(c.PlayerID)})
		})
	case actionSendMessage:
		d.sendChatMessage(c, msg)
	default:
		d.logger.WithField("msg", msg).Warn("unknown message")
		c.Send(newErrorResponse(msg.Context, fmt.Errorf("unknown action: %s", msg.Action)))
	}
}

func (d *Dealer) performGameAction(c *Client, msg *Payload, fn func() error) {
	ok := d.enqueue(func() {
		if err := fn(); err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(okResponse(msg.Context))
		d.broadcastState()
	})
	if !ok {
		c.Send(newErrorResponse(msg.Context, ErrRoomClosed))
	}
}

func (d *Dealer) sendChatMessage(c *Client, msg *Payload) {
	if c.PlayerID == 0 {
		c.Send(newErrorResponse(msg.Context, errors.New("spectators cannot chat")))
		return
	}

	text := strings.TrimSpace(msg.Message)
	if text == "" {
		c.Send(newErrorResponse(msg.Context, errors.New("the message is empty")))
		return
	}

	if utf8.RuneCountInString(text) > maxChatLength {
		c.Send(newErrorResponse(msg.Context, fmt.Errorf("the message cannot exceed %d characters", maxChatLength)))
		return
	}

	d.enqueue(func() {
		player := d.game.Player(c.PlayerID)
		if player == nil {
			c.Send(newErrorResponse(msg.Context, errors.New("you are not seated")))
			return
		}

		c.Send(okResponse(msg.Context))
		d.broadcast(&Response{Key: "chat", Data: &chatMessage{
			PlayerID: player.ID,
			Name:     player.Name,
			Message:  text,
			Time:     time.Now(),
		}})
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcastState() {
	for _, client := range d.Clients() {
		if !client.Send(&Response{Key: "game", Data: d.game.State(client.PlayerID)}) {
			d.logger.WithField("client", client.String()).Warn("client buffer is full; dropped state update")
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(msg *Response) {
	for _, client := range d.Clients() {
		if !client.Send(msg) {
			d.logger.WithField("client", client.String()).Warn("client buffer is full; dropped message")
		}
	}
}
