package rng

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequence returns 0, 1, 2, ... modulo n
type sequence struct {
	next int
}

func (s *sequence) Intn(n int) int {
	v := s.next % n
	s.next++
	return v
}

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(4)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.False(found[4])
}

func TestToken(t *testing.T) {
	a := assert.New(t)

	a.Equal("ABCDEF", Token(&sequence{}, "ABCDEFGH", 6))
	a.Equal("ABAB", Token(&sequence{}, "AB", 4))

	token := Token(Crypto{}, "XYZ", 16)
	a.Len(token, 16)
	for _, c := range token {
		a.True(strings.ContainsRune("XYZ", c))
	}
}
