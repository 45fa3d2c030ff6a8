package mux

import (
	"fmt"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
)

type seatResponse struct {
	Code     string `json:"code"`
	PlayerID int    `json:"playerId"`
	Token    string `json:"token"`
}

type roomPayload struct {
	Name string `json:"name"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload roomPayload
		if r.ContentLength > 0 && !decodeRequest(w, r, &payload) {
			return
		}

		dealer, err := m.registry.CreateRoom()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		playerID, err := dealer.Seat(payload.Name)
		if err != nil {
			writeGameError(w, err)
			return
		}

		m.writeSeatResponse(w, dealer.Code(), playerID)
	}
}

func (m *Mux) postRoomSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload roomPayload
		if r.ContentLength > 0 && !decodeRequest(w, r, &payload) {
			return
		}

		dealer, err := m.registry.Dealer(gmux.Vars(r)["code"])
		if err != nil {
			writeGameError(w, err)
			return
		}

		playerID, err := dealer.Seat(payload.Name)
		if err != nil {
			writeGameError(w, err)
			return
		}

		m.writeSeatResponse(w, dealer.Code(), playerID)
	}
}

func (m *Mux) writeSeatResponse(w http.ResponseWriter, code string, playerID int) {
	token, err := m.sessions.Sign(code, playerID)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, seatResponse{
		Code:     code,
		PlayerID: playerID,
		Token:    token,
	})
}

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.registry.Dealer(gmux.Vars(r)["code"])
		if err != nil {
			writeGameError(w, err)
			return
		}

		// spectator view; no private cards
		state, err := dealer.State(0)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) getRoomQR() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.registry.Dealer(gmux.Vars(r)["code"])
		if err != nil {
			writeGameError(w, err)
			return
		}

		joinURL := fmt.Sprintf("%s/room/%s", m.publicURL, dealer.Code())
		png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}
