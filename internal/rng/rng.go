// Package rng supplies the randomness behind room codes. A code is a
// shareable secret that gates entry to a room, so draws come from
// crypto/rand rather than a seeded PRNG. Deck shuffles have no such
// requirement and stay on their own seeded source.
package rng

import (
	"crypto/rand"
	"math/big"
)

// Generator picks a uniform random index below n.
// It seams out crypto/rand so tests can pin token generation.
type Generator interface {
	Intn(n int) int
}

// Crypto is the crypto/rand backed Generator used outside of tests
type Crypto struct{}

// Intn returns a uniform random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Token returns an n-character string drawn uniformly from alphabet
func Token(g Generator, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.Intn(len(alphabet))]
	}

	return string(b)
}
