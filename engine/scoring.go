package engine

import "fmt"

// MatchEndReason explains why a settlement ended the match.
type MatchEndReason string

const (
	ReasonNone    MatchEndReason = ""
	ReasonBound   MatchEndReason = "bound"
	ReasonShutout MatchEndReason = "shutout"
	ReasonTarget  MatchEndReason = "target"
)

// Settlement is the scoring outcome of one round.
type Settlement struct {
	Done        bool
	Contract    Contract
	BuyerTricks uint8
	Made        bool
	Bound       bool
	Delta       [2]int
	Totals      [2]int // running score after Delta, before any match reset
	Scores      [2]int // running score carried into the next round
	BoundWinner int8   // team awarded a bound point, -1 for none
	Reason      MatchEndReason
}

// MatchOver reports whether the settlement awarded a bound point.
func (s Settlement) MatchOver() bool { return s.BoundWinner >= 0 }

// Settle scores a finished round. It depends only on its arguments.
//
// With Bound in force the buyer's team takes the bound point by winning all
// nine tricks and the defenders take it otherwise; the running score is
// reset either way. Without Bound a made contract scores its amount for the
// buyer's team, and a failed one scores twice the amount (a flat 6 for
// Malzoum) for the defenders. A team reaching ShutoutTarget while the other
// has nothing, or reaching WinTarget, takes the bound point.
func Settle(ct Contract, tricksWon [2]uint8, bound bool, scores [2]int) Settlement {
	bt := ct.BuyerTeam()
	s := Settlement{
		Done:        true,
		Contract:    ct,
		BuyerTricks: tricksWon[bt],
		Bound:       bound,
		BoundWinner: -1,
		Totals:      scores,
	}

	if bound {
		s.Made = tricksWon[bt] == TricksPer
		winner := bt
		if !s.Made {
			winner = bt.Other()
		}
		s.BoundWinner = int8(winner)
		s.Reason = ReasonBound
		return s
	}

	if tricksWon[bt] >= ct.Amount {
		s.Made = true
		s.Delta[bt] = int(ct.Amount)
	} else if ct.Malzoum {
		s.Delta[bt.Other()] = MalzoumPenalty
	} else {
		s.Delta[bt.Other()] = 2 * int(ct.Amount)
	}
	s.Totals[TeamA] += s.Delta[TeamA]
	s.Totals[TeamB] += s.Delta[TeamB]

	if winner, reason, ok := thresholdWinner(s.Totals); ok {
		s.BoundWinner = int8(winner)
		s.Reason = reason
		return s
	}
	s.Scores = s.Totals
	return s
}

// thresholdWinner checks the match-ending thresholds; the shutout rule is
// checked first, Team A before Team B.
func thresholdWinner(t [2]int) (Team, MatchEndReason, bool) {
	switch {
	case t[TeamA] >= ShutoutTarget && t[TeamB] == 0:
		return TeamA, ReasonShutout, true
	case t[TeamB] >= ShutoutTarget && t[TeamA] == 0:
		return TeamB, ReasonShutout, true
	case t[TeamA] >= WinTarget:
		return TeamA, ReasonTarget, true
	case t[TeamB] >= WinTarget:
		return TeamB, ReasonTarget, true
	}
	return 0, ReasonNone, false
}

// NextDealerAfter returns the dealer for the following round: the deal
// passes on only when the dealer's team leads on score.
func NextDealerAfter(dealer Seat, scores [2]int) Seat {
	t := dealer.Team()
	if scores[t] > scores[t.Other()] {
		return dealer.Next()
	}
	return dealer
}

// endRound settles the round and moves to round-end or match-end.
func (m *MatchState) endRound(out *events) {
	s := Settle(m.Contract, m.Round.TricksWon, m.Round.Bound, m.Scores)
	m.Settlement = s
	m.Scores = s.Scores
	m.RoundsPlayed++
	m.Turn = NoSeat

	out.add(Event{
		Kind:   EventRoundSettled,
		Seat:   m.Contract.Buyer,
		Team:   m.Contract.BuyerTeam(),
		Amount: s.Delta[TeamA] + s.Delta[TeamB],
		Card:   EmptyCard,
		Suit:   SuitJoker,
		Scores: s.Totals,
		Text:   fmt.Sprintf("Round over. A: %d, B: %d.", s.Totals[TeamA], s.Totals[TeamB]),
	})

	if s.MatchOver() {
		winner := Team(s.BoundWinner)
		m.BoundPoints[winner]++
		m.Phase = PhaseMatchEnd
		m.NextDealer = HumanSeat
		out.add(Event{
			Kind:      EventMatchEnded,
			Team:      winner,
			Seat:      NoSeat,
			Amount:    1,
			Card:      EmptyCard,
			Suit:      SuitJoker,
			Scores:    m.BoundPoints,
			Important: true,
			Text:      fmt.Sprintf("Team %s wins the match (%s) and earns a bound point.", winner, s.Reason),
		})
		return
	}
	m.Phase = PhaseRoundEnd
	m.NextDealer = NextDealerAfter(m.Dealer, m.Scores)
}

// resetMatch returns to the initial state, bound points included. The RNG
// stream continues.
func (m *MatchState) resetMatch(out *events) {
	m.resetBoard()
	m.Phase = PhaseStart
	m.Dealer = HumanSeat
	m.NextDealer = HumanSeat
	m.Scores = [2]int{}
	m.BoundPoints = [2]int{}
	m.RoundsPlayed = 0
	out.addf(EventMatchReset, NoSeat, true, "Match reset.")
}

// Winner returns the team that took the bound point of the finished match.
func (m MatchState) Winner() (Team, bool) {
	if m.Phase != PhaseMatchEnd || !m.Settlement.MatchOver() {
		return 0, false
	}
	return Team(m.Settlement.BoundWinner), true
}
