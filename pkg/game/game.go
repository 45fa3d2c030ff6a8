package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"splitpoker-server/pkg/deck"
)

// handSize is the number of private cards dealt to each player
const handSize = 8

// locationHand is the location name for a player's unplaced cards
const locationHand = "hand"

// seed of 0 means a clock-seeded shuffle
// setting to a global so we can override in a test
var seed int64

// Game is a single room's split-board poker state machine. It is not safe
// for concurrent use; the room dealer serializes all calls.
type Game struct {
	code        string
	logger      logrus.FieldLogger
	options     Options
	phase       Phase
	players     map[int]*Player
	boards      []*Board
	deck        *deck.Deck
	pot         int
	currentTurn int
	results     *Results
	logChan     chan []*LogMessage
}

// NewGame returns a new game in the Waiting phase
func NewGame(logger logrus.FieldLogger, code string, options Options) (*Game, error) {
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	return &Game{
		code:    code,
		logger:  logger.WithField("code", code),
		options: options,
		phase:   PhaseWaiting,
		players: make(map[int]*Player),
		logChan: make(chan []*LogMessage, 256),
	}, nil
}

// Code returns the room code
func (g *Game) Code() string {
	return g.code
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Pot returns the current pot
func (g *Game) Pot() int {
	return g.pot
}

// CurrentTurn returns the id of the player whose turn it is, or 0 if no
// turn order is in effect
func (g *Game) CurrentTurn() int {
	return g.currentTurn
}

// Player returns the player in the given seat, or nil
func (g *Game) Player(playerID int) *Player {
	return g.players[playerID]
}

// PlayerCount returns the number of seated players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// Boards returns the three boards in A, B, C order (nil before the deal)
func (g *Game) Boards() []*Board {
	return g.boards
}

// Results returns the settlement results, or nil if the hand has not
// completed yet
func (g *Game) Results() *Results {
	return g.results
}

// Options returns the game options
func (g *Game) Options() Options {
	return g.options
}

// AddPlayer seats a player and returns their seat id.
// Seating the second player moves the game to the Betting phase.
func (g *Game) AddPlayer(name string) (int, error) {
	if len(g.players) >= 2 {
		return 0, stateConflictError("the room is full")
	}

	playerID := player1
	if _, ok := g.players[player1]; ok {
		playerID = player2
	}

	g.players[playerID] = newPlayer(playerID, name, g.options.StartingBankroll)
	g.sendLogMessages(simpleLogMessage(playerID, "{} joined the room"))

	if len(g.players) == 2 {
		g.phase = PhaseBetting
		g.sendLogMessages(simpleLogMessage(0, "the room is ready to bet"))
	}

	return playerID, nil
}

// PlaceBet records a player's bet. The second bet must match or exceed the
// first. Once both bets are in, the pot is built, bankrolls are debited,
// and the hand is dealt.
func (g *Game) PlaceBet(playerID, amount int) error {
	if g.phase != PhaseBetting {
		return stateConflictError("bets cannot be placed in the %s phase", g.phase)
	}

	player, ok := g.players[playerID]
	if !ok {
		return notFoundError("player %d is not seated", playerID)
	}

	if player.bet > 0 {
		return stateConflictError("you already placed your bet")
	}

	if amount < g.options.MinBet {
		return validationError("the minimum bet is %d", g.options.MinBet)
	}

	if amount > player.bankroll {
		return validationError("you cannot bet more than your bankroll of %d", player.bankroll)
	}

	if other := g.players[otherPlayer(playerID)]; other.bet > 0 && amount < other.bet {
		return validationError("your bet must match or exceed the %d already wagered", other.bet)
	}

	player.bet = amount
	g.sendLogMessages(simpleLogMessage(playerID, "{} bet %d", amount))

	if g.players[player1].bet > 0 && g.players[player2].bet > 0 {
		return g.startHand()
	}

	return nil
}

// startHand debits the bets, builds the pot, and deals a fresh hand
func (g *Game) startHand() error {
	pot := 0
	for _, player := range g.players {
		player.bankroll -= player.bet
		pot += player.bet
	}
	g.pot = pot

	d := deck.New()
	d.Shuffle(seed)
	g.deck = d

	variants := g.options.Variants
	if len(variants) == 0 {
		variants = []Variant{VariantOmaha, VariantHoldEm, VariantHoldEm}
		rand.Shuffle(len(variants), func(i, j int) {
			variants[i], variants[j] = variants[j], variants[i]
		})
	}

	g.boards = make([]*Board, len(BoardIDs))
	for i, id := range BoardIDs {
		g.boards[i] = newBoard(id, variants[i])
	}

	// deal round-robin the way it would happen at a real table
	for i := 0; i < handSize; i++ {
		for _, id := range []int{player1, player2} {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			g.players[id].hand.AddCard(card)
		}
	}

	for _, board := range g.boards {
		flop, err := g.deck.Deal(3)
		if err != nil {
			return err
		}

		board.community = flop
	}

	g.phase = PhasePlacing
	g.currentTurn = player1
	g.results = nil

	g.sendLogMessages(simpleLogMessage(0, "hand dealt; boards are %s, %s, %s",
		g.boards[0].Variant, g.boards[1].Variant, g.boards[2].Variant))

	return nil
}

// MoveCard relocates one of the acting player's cards between their hand
// and the boards. It is only legal during Placing, on the player's own
// turn, before they confirm.
func (g *Game) MoveCard(playerID, cardID int, from, to string) error {
	if g.phase != PhasePlacing {
		return stateConflictError("cards cannot be moved in the %s phase", g.phase)
	}

	player, ok := g.players[playerID]
	if !ok {
		return notFoundError("player %d is not seated", playerID)
	}

	if player.ready {
		return stateConflictError("you already confirmed your placement")
	}

	if g.currentTurn != playerID {
		return stateConflictError("it is not your turn")
	}

	if from == to {
		return validationError("the source and destination are the same")
	}

	card, err := g.takeCard(player, cardID, from)
	if err != nil {
		return err
	}

	if err := g.putCard(player, card, to); err != nil {
		// rolling back the take keeps the partition intact
		g.giveBack(player, card, from)
		return err
	}

	if err := g.verifyCardAccounting(player); err != nil {
		g.logger.WithError(err).Error("card accounting failed after move")
		return err
	}

	if g.options.TurnPolicy == TurnPerMove {
		if other := g.players[otherPlayer(playerID)]; !other.ready {
			g.currentTurn = other.ID
		}
	}

	return nil
}

// takeCard removes the card from the named location, validating ownership
func (g *Game) takeCard(player *Player, cardID int, from string) (*deck.Card, error) {
	if from == locationHand {
		card, ok := player.hand.RemoveByID(cardID)
		if !ok {
			return nil, stateConflictError("card %d is not in your hand", cardID)
		}

		return card, nil
	}

	board, err := g.boardByLocation(from)
	if err != nil {
		return nil, err
	}

	card, ok := board.removeCardByID(player.ID, cardID)
	if !ok {
		return nil, stateConflictError("card %d is not on board %s", cardID, board.ID)
	}

	return card, nil
}

// putCard places the card at the named location, enforcing board capacity
func (g *Game) putCard(player *Player, card *deck.Card, to string) error {
	if to == locationHand {
		player.hand.AddCard(card)
		return nil
	}

	board, err := g.boardByLocation(to)
	if err != nil {
		return err
	}

	if board.atCapacity(player.ID) {
		return stateConflictError("board %s only takes %d cards", board.ID, board.Variant.HoleCardCount())
	}

	board.addCard(player.ID, card)
	return nil
}

// giveBack reverses a takeCard. The source location is known-good here.
func (g *Game) giveBack(player *Player, card *deck.Card, from string) {
	if from == locationHand {
		player.hand.AddCard(card)
		return
	}

	board, _ := g.boardByLocation(from)
	board.addCard(player.ID, card)
}

func (g *Game) boardByLocation(location string) (*Board, error) {
	name, ok := strings.CutPrefix(location, "board-")
	if !ok {
		return nil, validationError("unknown location: %s", location)
	}

	for _, board := range g.boards {
		if board.ID == BoardID(name) {
			return board, nil
		}
	}

	return nil, validationError("unknown board: %s", name)
}

// verifyCardAccounting ensures the player's hand and placements still
// partition their original eight cards. A failure is a bug, not a player
// mistake.
func (g *Game) verifyCardAccounting(player *Player) error {
	ids := make(map[int]bool)
	total := 0

	count := func(cards deck.Hand) {
		for _, card := range cards {
			ids[card.ID] = true
			total++
		}
	}

	count(player.hand)
	for _, board := range g.boards {
		count(board.PlayerCards(player.ID))
	}

	if total != handSize || len(ids) != handSize {
		return fmt.Errorf("player %d has %d cards (%d unique), expected %d", player.ID, total, len(ids), handSize)
	}

	return nil
}

// ConfirmPlacement marks the player ready for the showdown. Every board
// must hold exactly its required count and the hand must be empty. When
// both players have confirmed, the run-out is dealt and the hand settles.
func (g *Game) ConfirmPlacement(playerID int) error {
	if g.phase != PhasePlacing {
		return stateConflictError("placement cannot be confirmed in the %s phase", g.phase)
	}

	player, ok := g.players[playerID]
	if !ok {
		return notFoundError("player %d is not seated", playerID)
	}

	if player.ready {
		return stateConflictError("you already confirmed your placement")
	}

	if g.currentTurn != playerID {
		return stateConflictError("it is not your turn")
	}

	if len(player.hand) != 0 {
		return stateConflictError("you still have %d cards in hand", len(player.hand))
	}

	for _, board := range g.boards {
		if !board.isFilled(playerID) {
			return stateConflictError("board %s needs exactly %d cards", board.ID, board.Variant.HoleCardCount())
		}
	}

	player.ready = true
	g.sendLogMessages(simpleLogMessage(playerID, "{} confirmed their placement"))

	if other := g.players[otherPlayer(playerID)]; !other.ready {
		g.currentTurn = other.ID
		return nil
	}

	return g.showdown()
}

// showdown deals the turn and river to every board and settles the hand
func (g *Game) showdown() error {
	g.phase = PhaseShowdown
	g.currentTurn = 0

	for _, board := range g.boards {
		runOut, err := g.deck.Deal(2)
		if err != nil {
			return err
		}

		board.community = append(board.community, runOut...)
	}

	results, err := g.settle()
	if err != nil {
		return err
	}

	g.results = results
	g.pot = 0
	g.phase = PhaseComplete

	for _, boardResult := range results.Boards {
		if boardResult.Winner == 0 {
			g.sendLogMessages(simpleLogMessage(0, "board %s is a tie (%s)", boardResult.Board, boardResult.WinningHand))
			continue
		}

		g.sendLogMessages(simpleLogMessage(boardResult.Winner, "{} wins board %s with %s", boardResult.Board, boardResult.WinningHand))
	}

	if results.SweepBonus {
		g.sendLogMessages(simpleLogMessage(results.SweepWinner, "{} swept all three boards and doubled their winnings"))
	}

	return nil
}

// RequestRematch queues the player's intent to play another hand. When
// both players have requested one, a fresh hand begins with bankrolls
// carried over.
func (g *Game) RequestRematch(playerID int) error {
	if g.phase != PhaseComplete {
		return stateConflictError("a rematch can only be requested after the hand completes")
	}

	player, ok := g.players[playerID]
	if !ok {
		return notFoundError("player %d is not seated", playerID)
	}

	for _, p := range g.players {
		if p.bankroll < g.options.MinBet {
			return stateConflictError("%s cannot cover the minimum bet of %d", p.Name, g.options.MinBet)
		}
	}

	if player.rematch {
		return stateConflictError("you already requested a rematch")
	}

	player.rematch = true
	g.sendLogMessages(simpleLogMessage(playerID, "{} requested a rematch"))

	if other := g.players[otherPlayer(playerID)]; !other.rematch {
		return nil
	}

	for _, p := range g.players {
		p.newHand()
	}

	g.boards = nil
	g.deck = nil
	g.results = nil
	g.currentTurn = 0
	g.phase = PhaseBetting

	g.sendLogMessages(simpleLogMessage(0, "rematch accepted; place your bets"))
	return nil
}
