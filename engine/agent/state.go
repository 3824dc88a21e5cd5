// Package agent implements the opponent decision policy.
//
// Decisions are computed from an AgentState, the slice of a MatchState that
// one seat is entitled to see: its own hand, the public contract and trick,
// and the scores. Other seats' hands never reach the policy.
package agent

import engine "github.com/jason-s-yu/mushtara/engine"

// AgentState holds what one seat can see. It is a flat value type, so it can
// be copied with = like the MatchState it is derived from.
type AgentState struct {
	Seat engine.Seat
	Hand engine.Hand

	// Hand summary
	Power      int
	SuitCounts [engine.NumSuits]uint8
	Jokers     uint8

	// Public knowledge
	Phase          engine.Phase
	Dealer         engine.Seat
	HighBid        uint8
	DealerDecision bool
	Contract       engine.Contract
	Trick          engine.Trick
	TrickIndex     uint8
	TricksWon      [2]uint8
	Yidhamman      bool
	TeamScore      int
}

// Observe extracts the view of seat from m.
func Observe(m engine.MatchState, seat engine.Seat) AgentState {
	s := AgentState{
		Seat:           seat,
		Hand:           m.Hands[seat],
		Phase:          m.Phase,
		Dealer:         m.Dealer,
		HighBid:        m.Auction.HighBid,
		DealerDecision: m.Auction.Stage == engine.AuctionDealerDecision,
		Contract:       m.Contract,
		Trick:          m.Round.Trick,
		TrickIndex:     m.Round.TrickIndex,
		TricksWon:      m.Round.TricksWon,
		Yidhamman:      m.Round.Yidhamman,
		TeamScore:      m.Scores[seat.Team()],
	}
	for _, c := range s.Hand.List() {
		s.Power += cardPower(c)
		if c.IsJoker() {
			s.Jokers++
			continue
		}
		s.SuitCounts[c.Suit()]++
	}
	return s
}

func cardPower(c engine.Card) int {
	switch {
	case c.IsJoker():
		return WeightJoker
	case c.Rank() == engine.RankAce:
		return WeightAce
	case c.Rank() == engine.RankKing:
		return WeightKing
	}
	return 0
}

// IsBuyerSide reports whether the seat belongs to the buyer's team.
func (s AgentState) IsBuyerSide() bool {
	return s.Contract.Buyer != engine.NoSeat && s.Seat.Team() == s.Contract.BuyerTeam()
}

// Leading reports whether the seat opens the current trick.
func (s AgentState) Leading() bool { return s.Trick.Len == 0 }

// BestSuit returns the suit with the most cards in hand. Ties go to the
// earlier suit in S,H,C,D order.
func (s AgentState) BestSuit() uint8 {
	best := engine.SuitSpades
	for suit := uint8(1); suit < engine.NumSuits; suit++ {
		if s.SuitCounts[suit] > s.SuitCounts[best] {
			best = suit
		}
	}
	return best
}

// Controls counts the cards that win a trick against anything but a higher
// joker or trump: jokers plus cards of the trump suit.
func (s AgentState) Controls() int {
	if !s.Contract.TrumpChosen {
		return int(s.Jokers)
	}
	return int(s.Jokers) + int(s.SuitCounts[s.Contract.Trump])
}
