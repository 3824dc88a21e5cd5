package agent

import (
	"fmt"
	"math/rand/v2"

	engine "github.com/jason-s-yu/mushtara/engine"
)

// Policy chooses the next command for a seat that is due to act.
type Policy interface {
	Decide(m engine.MatchState, seat engine.Seat) (engine.Command, error)
}

// Heuristic is the standard opponent: hand-power bidding, longest-suit trump
// and a simple card-play rule.
type Heuristic struct{}

// NewHeuristic returns the standard opponent policy.
func NewHeuristic() Heuristic { return Heuristic{} }

// Decide implements Policy.
func (Heuristic) Decide(m engine.MatchState, seat engine.Seat) (engine.Command, error) {
	if m.ActingSeat() != seat {
		return engine.Command{}, fmt.Errorf("%w: P%d is not due to act", engine.ErrInvalidState, seat)
	}
	s := Observe(m, seat)

	switch m.Phase {
	case engine.PhaseBidding:
		if s.DealerDecision {
			return DealerDecision(s), nil
		}
		return BidDecision(s), nil
	case engine.PhaseChoosingTrump:
		return engine.Command{Kind: engine.CmdChooseTrump, Seat: seat, Suit: s.BestSuit()}, nil
	case engine.PhasePlaying:
		c, ok := ChooseCard(s, m.LegalCards(seat))
		if !ok {
			return engine.Command{}, fmt.Errorf("%w: P%d has no card to play", engine.ErrInvalidState, seat)
		}
		return engine.Command{Kind: engine.CmdPlayCard, Seat: seat, Card: c}, nil
	case engine.PhaseBoundOffer:
		return BoundDecision(s), nil
	}
	return engine.Command{}, fmt.Errorf("%w: nothing to decide during %s", engine.ErrInvalidState, m.Phase)
}

// BidDecision bids 6 or 7 on a strong enough hand, otherwise passes.
func BidDecision(s AgentState) engine.Command {
	switch {
	case s.Power > PowerBidSix && s.HighBid < engine.MinBid:
		return engine.Command{Kind: engine.CmdBid, Seat: s.Seat, Amount: engine.MinBid}
	case s.Power > PowerBidSeven && s.HighBid < engine.MinBid+1:
		return engine.Command{Kind: engine.CmdBid, Seat: s.Seat, Amount: engine.MinBid + 1}
	}
	return engine.Command{Kind: engine.CmdPass, Seat: s.Seat}
}

// DealerDecision resolves the forced dealer: bid 6 on a fair hand, redeal a
// very weak one when the team has a point to spend, else declare Malzoum.
func DealerDecision(s AgentState) engine.Command {
	switch {
	case s.Power > PowerBidSix:
		return engine.Command{Kind: engine.CmdBid, Seat: s.Seat, Amount: engine.MinBid}
	case s.Power < PowerRedeal && s.TeamScore >= engine.RedealCost:
		return engine.Command{Kind: engine.CmdRedeal, Seat: s.Seat}
	}
	return engine.Command{Kind: engine.CmdMalzoum, Seat: s.Seat}
}

// ChooseCard picks from the legal cards in hand order. Defenders on lead
// prefer plain cards over trump and jokers. The small joker goes out early,
// within EarlyTricks, unless Yidhamman already shields it.
func ChooseCard(s AgentState, legal []engine.Card) (engine.Card, bool) {
	if len(legal) == 0 {
		return engine.EmptyCard, false
	}
	if s.Leading() && !s.IsBuyerSide() {
		var plain []engine.Card
		for _, c := range legal {
			if !c.IsJoker() && c.Suit() != s.Contract.Trump {
				plain = append(plain, c)
			}
		}
		if len(plain) > 0 {
			legal = plain
		}
	}
	if !s.Yidhamman && s.TrickIndex <= EarlyTricks {
		for _, c := range legal {
			if c == engine.SmallJoker {
				return c, true
			}
		}
	}
	return legal[0], true
}

// BoundDecision accepts Bound when the hand holds a control for every
// remaining trick.
func BoundDecision(s AgentState) engine.Command {
	remaining := int(engine.TricksPer - s.TrickIndex)
	if s.Controls() >= remaining {
		return engine.Command{Kind: engine.CmdAcceptBound, Seat: s.Seat}
	}
	return engine.Command{Kind: engine.CmdDeclineBound, Seat: s.Seat}
}

// Random picks uniformly among the legal commands. Used as a baseline
// opponent in simulations.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random policy seeded with seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// Decide implements Policy.
func (r *Random) Decide(m engine.MatchState, seat engine.Seat) (engine.Command, error) {
	if m.ActingSeat() != seat {
		return engine.Command{}, fmt.Errorf("%w: P%d is not due to act", engine.ErrInvalidState, seat)
	}
	cmds := m.LegalCommands()
	if len(cmds) == 0 {
		return engine.Command{}, fmt.Errorf("%w: no legal command for P%d", engine.ErrInvalidState, seat)
	}
	return cmds[r.rng.IntN(len(cmds))], nil
}
