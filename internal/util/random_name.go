package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Lucky", "Bluffing", "Stoic", "Reckless", "Patient", "Grinning", "Quiet", "Bold", "Cagey", "Steady",
	"Wild", "Cold", "Loose", "Tight", "Crafty", "Fearless", "Sly", "Daring", "Stubborn", "Smooth",
}

var nouns = []string{
	"Ace", "Deuce", "Joker", "Shark", "Whale", "Fish", "Dealer", "Railbird", "Rounder", "Grinder",
	"Maverick", "Gambler", "Kibitzer", "High Roller", "Card Counter", "Cowboy", "Rock", "Nit",
}

// GetRandomName returns a random name for a player who didn't pick one
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[rand.Intn(len(adjectives))], nouns[rand.Intn(len(nouns))])
}
