package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"splitpoker-server/pkg/game"
	"splitpoker-server/pkg/room"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code,omitempty"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// writeGameError maps a game or registry error to the right status code
func writeGameError(w http.ResponseWriter, err error) {
	if errors.Is(err, room.ErrRoomNotFound) || errors.Is(err, room.ErrRoomClosed) {
		writeJSONError(w, http.StatusNotFound, err)
		return
	}

	var gameErr *game.Error
	if errors.As(err, &gameErr) {
		var statusCode int
		switch gameErr.Code {
		case game.CodeValidation:
			statusCode = http.StatusBadRequest
		case game.CodeStateConflict:
			statusCode = http.StatusConflict
		case game.CodeNotFound:
			statusCode = http.StatusNotFound
		default:
			statusCode = http.StatusInternalServerError
		}

		writeJSON(w, statusCode, errorResponse{
			Message:    gameErr.Message,
			StatusCode: statusCode,
			Code:       string(gameErr.Code),
		})
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}
