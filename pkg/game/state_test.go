package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitpoker-server/pkg/deck"
)

func TestGame_State_RedactsOpponentCards(t *testing.T) {
	g := dealtGame(t, pinnedOptions())

	card := g.Player(player1).Hand().FirstCard()
	require.NoError(t, g.MoveCard(player1, card.ID, "hand", "board-A"))

	state := g.State(player1)
	assert.Equal(t, player1, state.ViewerID)
	assert.Equal(t, PhasePlacing, state.Phase)

	// own cards are visible
	require.Len(t, state.Players[player1].Hand, 7)
	_, ok := state.Players[player1].Hand[0].(*deck.Card)
	assert.True(t, ok)
	assert.Equal(t, card, state.Boards[0].Placed[player1][0])

	// the opponent's are not
	require.Len(t, state.Players[player2].Hand, 8)
	for _, c := range state.Players[player2].Hand {
		assert.Equal(t, hiddenCard{Hidden: true}, c)
	}

	// the opponent sees a card back in the same slot
	state = g.State(player2)
	require.Len(t, state.Boards[0].Placed[player1], 1)
	assert.Equal(t, hiddenCard{Hidden: true}, state.Boards[0].Placed[player1][0])

	// spectators see nothing private
	state = g.State(0)
	for _, c := range state.Players[player1].Hand {
		assert.Equal(t, hiddenCard{Hidden: true}, c)
	}
	assert.Equal(t, hiddenCard{Hidden: true}, state.Boards[0].Placed[player1][0])
}

func TestGame_State_CommunityPadding(t *testing.T) {
	g := dealtGame(t, pinnedOptions())

	state := g.State(player1)
	require.Len(t, state.Boards, 3)
	for _, board := range state.Boards {
		require.Len(t, board.Community, 5)
		for i := 0; i < 3; i++ {
			_, ok := board.Community[i].(*deck.Card)
			assert.True(t, ok)
		}
		assert.Equal(t, hiddenCard{Hidden: true}, board.Community[3])
		assert.Equal(t, hiddenCard{Hidden: true}, board.Community[4])
	}
}

func TestGame_State_ShowdownRevealsPlacements(t *testing.T) {
	g := dealtGame(t, pinnedOptions())
	fillBoards(t, g, player1)
	require.NoError(t, g.ConfirmPlacement(player1))
	fillBoards(t, g, player2)
	require.NoError(t, g.ConfirmPlacement(player2))

	state := g.State(player2)
	require.NotNil(t, state.Results)

	for _, board := range state.Boards {
		require.Len(t, board.Community, 5)
		for _, c := range append(board.Placed[player1], board.Placed[player2]...) {
			_, ok := c.(*deck.Card)
			assert.True(t, ok)
		}
	}
}

func TestHiddenCard_JSONCarriesNoIdentity(t *testing.T) {
	b, err := json.Marshal(hiddenCard{Hidden: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hidden":true}`, string(b))
}
