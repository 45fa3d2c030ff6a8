package room

import (
	"errors"
	"time"

	"splitpoker-server/pkg/game"
)

// Response is a message sent to a connected client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// chatMessage is the payload of a "chat" response
type chatMessage struct {
	PlayerID int       `json:"playerId"`
	Name     string    `json:"name"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

func okResponse(ctx string) *Response {
	return &Response{Key: "ok", Context: ctx}
}

func newErrorResponse(ctx string, err error) *Response {
	resp := &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}

	var gameErr *game.Error
	if errors.As(err, &gameErr) {
		resp.Data = gameErr
	}

	return resp
}
