package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	inAdjectives := make(map[string]bool)
	for _, a := range adjectives {
		inAdjectives[a] = true
	}

	inNouns := make(map[string]bool)
	for _, n := range nouns {
		inNouns[n] = true
	}

	for i := 0; i < 25; i++ {
		parts := strings.SplitN(GetRandomName(), " ", 2)
		assert.True(t, inAdjectives[parts[0]])
		assert.True(t, inNouns[parts[1]])
	}
}
