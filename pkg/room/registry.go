package room

import (
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"splitpoker-server/internal/rng"
	"splitpoker-server/pkg/game"
)

// CodeLength is the length of a room code
const CodeLength = 6

// codeAlphabet leaves out the characters that read ambiguously on a phone
// screen (0/O, 1/I)
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ErrRoomNotFound is returned when a room code does not resolve
var ErrRoomNotFound = errors.New("room not found")

// Registry tracks the active rooms and dispatches clients to their dealers
type Registry struct {
	logger  logrus.FieldLogger
	options game.Options
	random  rng.Generator

	lock    sync.RWMutex
	dealers map[string]*Dealer
}

// NewRegistry returns a registry that creates rooms with the given options
func NewRegistry(logger logrus.FieldLogger, options game.Options) *Registry {
	return &Registry{
		logger:  logger,
		options: options,
		random:  rng.Crypto{},
		dealers: make(map[string]*Dealer),
	}
}

// CreateRoom creates a room under a fresh code and starts its dealer
func (r *Registry) CreateRoom() (*Dealer, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	code, err := r.newCode()
	if err != nil {
		return nil, err
	}

	dealer, err := NewDealer(r.logger, code, r.options)
	if err != nil {
		return nil, err
	}

	dealer.StartShift()
	r.dealers[code] = dealer

	r.logger.WithField("code", code).Info("room created")
	return dealer, nil
}

// NOTE: must only be called with the lock held
func (r *Registry) newCode() (string, error) {
	// collisions are rare with 32^6 codes, but don't loop forever
	for attempt := 0; attempt < 100; attempt++ {
		code := rng.Token(r.random, codeAlphabet, CodeLength)
		if _, found := r.dealers[code]; !found {
			return code, nil
		}
	}

	return "", errors.New("could not find an unused room code")
}

// Dealer returns the dealer for the room code
func (r *Registry) Dealer(code string) (*Dealer, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	dealer, found := r.dealers[strings.ToUpper(code)]
	if !found {
		return nil, ErrRoomNotFound
	}

	return dealer, nil
}

// Count returns the number of active rooms
func (r *Registry) Count() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.dealers)
}

// ClientConnected is called when a client connects to the server
func (r *Registry) ClientConnected(dealer *Dealer, client *Client) {
	r.logger.WithField("client", client.String()).Debug("client connected")
	dealer.AddClient(client)
}

// ClientDisconnected is called when a client disconnects from the server.
// The room is torn down once its last client leaves.
func (r *Registry) ClientDisconnected(client *Client) {
	r.logger.WithField("client", client.String()).Debug("client disconnected")

	dealer := client.dealer
	if dealer == nil {
		return
	}

	if dealer.RemoveClient(client) {
		dealer.EndShift()

		r.lock.Lock()
		delete(r.dealers, dealer.Code())
		r.lock.Unlock()

		r.logger.WithField("code", dealer.Code()).Info("room closed")
	}
}
