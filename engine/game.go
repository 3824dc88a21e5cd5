// Package engine implements the Mushtara (Gulf Hokum) rules.
//
// MatchState is a flat value type: hands, tricks and counters live in fixed
// arrays, so assigning a MatchState produces an independent snapshot. Every
// transition takes a MatchState and returns a new one; a rejected command
// returns the input unchanged.
package engine

import "math/rand/v2"

// MatchState holds the complete, self-contained state of a match.
type MatchState struct {
	Phase Phase
	Rules Rules

	Hands      [NumSeats]Hand
	Dealer     Seat
	NextDealer Seat
	Turn       Seat // seat expected to act; NoSeat between rounds

	Auction  AuctionState
	Contract Contract
	Round    RoundState

	Scores       [2]int // running score, reset when a match ends
	BoundPoints  [2]int // persistent match score
	RoundsPlayed int

	Settlement Settlement // outcome of the last settled round
	DealLabel  string

	// Token increases on every accepted command. Scheduled decisions compare
	// it to detect that the state moved on.
	Token uint64

	rng rand.PCG
}

// NewMatch initializes a MatchState with the given seed and rules. No cards
// are dealt until StartRound.
func NewMatch(seed uint64, rules Rules) MatchState {
	var m MatchState
	m.rng = *rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)
	m.Rules = rules
	m.resetBoard()
	m.Phase = PhaseStart
	return m
}

// resetBoard clears everything that belongs to a single round.
func (m *MatchState) resetBoard() {
	m.Hands = [NumSeats]Hand{}
	m.Turn = NoSeat
	m.Auction = AuctionState{HighBid: NoBid, HighBidder: NoSeat}
	m.Contract = Contract{Buyer: NoSeat}
	m.Round = RoundState{TrickIndex: 1, LastWinner: NoSeat}
	m.Settlement = Settlement{BoundWinner: -1}
	m.DealLabel = ""
}

// random returns a generator backed by this state's RNG, so draws advance the
// copy being built and not the caller's value.
func (m *MatchState) random() *rand.Rand { return rand.New(&m.rng) }

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// IsTerminal reports whether the match has ended and awaits a new one.
func (m MatchState) IsTerminal() bool { return m.Phase == PhaseMatchEnd }

// HandOf returns a copy of seat's cards.
func (m MatchState) HandOf(s Seat) []Card { return m.Hands[s].List() }

// HandCounts returns the number of cards each seat holds.
func (m MatchState) HandCounts() [NumSeats]int {
	var out [NumSeats]int
	for s := range m.Hands {
		out[s] = int(m.Hands[s].Len)
	}
	return out
}

// CardsPlayed counts cards that left the hands this round, including the
// trick in progress.
func (m MatchState) CardsPlayed() int {
	return int(m.Round.CompletedTricks())*NumSeats + int(m.Round.Trick.Len)
}

// ActingSeat returns the seat that must act next, or NoSeat when the engine
// is waiting for StartRound/ResetMatch.
func (m MatchState) ActingSeat() Seat {
	switch m.Phase {
	case PhaseBidding, PhaseChoosingTrump, PhasePlaying, PhaseBoundOffer:
		return m.Turn
	}
	return NoSeat
}

// LeadSuit returns the suit led in the current trick, SuitJoker when a joker
// was led or no card has been played.
func (m MatchState) LeadSuit() uint8 {
	lead := m.Round.Trick.Lead()
	if lead == EmptyCard {
		return SuitJoker
	}
	return lead.Suit()
}
