package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer issues the seat tokens
const Issuer = "splitpoker"

// Audience is the intended token audience
const Audience = "splitpoker"

// Manager signs and verifies seat tokens. A seat token proves the bearer
// holds a particular seat in a particular room, so a dropped connection can
// be resumed.
type Manager struct {
	signingKey []byte
}

// New returns a seat token manager
func New(signingKey string) *Manager {
	return &Manager{signingKey: []byte(signingKey)}
}

// Sign will sign a seat token for the room code and seat
func (m *Manager) Sign(code string, playerID int) (string, error) {
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  fmt.Sprintf("%s:%d", code, playerID),
	})

	return token.SignedString(m.signingKey)
}

// Verify validates a signed seat token and returns the room code and seat
func (m *Manager) Verify(signedString string) (string, int, error) {
	token, err := jwtgo.ParseWithClaims(signedString, &jwtgo.RegisteredClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return m.signingKey, nil
	}, jwtgo.WithIssuer(Issuer), jwtgo.WithAudience(Audience))

	if err != nil {
		return "", 0, err
	}

	claims, ok := token.Claims.(*jwtgo.RegisteredClaims)
	if !ok {
		return "", 0, fmt.Errorf("expected jwt.RegisteredClaims, got %T", token.Claims)
	}

	code, seat, found := strings.Cut(claims.Subject, ":")
	if !found {
		return "", 0, errors.New("malformed subject")
	}

	playerID, err := strconv.Atoi(seat)
	if err != nil {
		return "", 0, errors.New("malformed subject")
	}

	return code, playerID, nil
}
