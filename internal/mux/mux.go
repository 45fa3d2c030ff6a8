package mux

import (
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"splitpoker-server/internal/config"
	"splitpoker-server/internal/session"
	"splitpoker-server/pkg/game"
	"splitpoker-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version   string
	publicURL string
	registry  *room.Registry
	sessions  *session.Manager
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	signingKey := cfg.SigningKey
	if signingKey == "" {
		// seat tokens won't survive a restart, which is fine for dev
		signingKey = uuid.New().String()
		logrus.Warn("no signing key configured; using an ephemeral one")
	}

	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		publicURL: cfg.PublicURL,
		registry:  room.NewRegistry(logrus.StandardLogger(), gameOptions(cfg)),
		sessions:  session.New(signingKey),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

	rr := r.PathPrefix("/room/{code:[A-Za-z0-9]{6}}").Subrouter()
	rr.Methods(http.MethodGet).Path("").Handler(this.getRoom())
	rr.Methods(http.MethodPost).Path("/seat").Handler(this.postRoomSeat())
	rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomWS())
	rr.Methods(http.MethodGet).Path("/qr").Handler(this.getRoomQR())

	return this
}

func gameOptions(cfg config.Config) game.Options {
	options := game.DefaultOptions()
	if cfg.Game.MinBet > 0 {
		options.MinBet = cfg.Game.MinBet
	}

	if cfg.Game.StartingBankroll > 0 {
		options.StartingBankroll = cfg.Game.StartingBankroll
	}

	if cfg.Game.TurnPolicy != "" {
		options.TurnPolicy = game.TurnPolicy(cfg.Game.TurnPolicy)
	}

	return options
}
