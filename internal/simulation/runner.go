// Package simulation plays policy-only matches in bulk and aggregates the
// outcomes.
package simulation

import (
	"context"
	"fmt"

	engine "github.com/jason-s-yu/mushtara/engine"
	"github.com/jason-s-yu/mushtara/engine/agent"
)

// Seats holds one policy per seat.
type Seats [engine.NumSeats]agent.Policy

// SeatFactory builds the policies for one match. It is called once per
// match so stateful policies are never shared between goroutines.
type SeatFactory func(seed uint64) Seats

// HeuristicSeats seats the standard policy everywhere.
func HeuristicSeats(uint64) Seats {
	h := agent.NewHeuristic()
	return Seats{h, h, h, h}
}

// MixedSeats puts the heuristic on Team A and the random baseline on Team B.
func MixedSeats(seed uint64) Seats {
	h := agent.NewHeuristic()
	return Seats{h, agent.NewRandom(seed + 1), h, agent.NewRandom(seed + 3)}
}

// MatchResult describes one simulated match.
type MatchResult struct {
	SimID    int
	Seed     uint64
	Finished bool        // a team took the bound point
	Winner   engine.Team // valid when Finished
	Reason   engine.MatchEndReason
	Rounds   int

	ContractsMade   int
	ContractsFailed int
	Malzoum         int
	Redeals         int
	BoundsOffered   int
	BoundsAccepted  int
	SpecialDeals    int
}

// RunMatch plays one match with seats from seed until a bound point is
// awarded or maxRounds rounds have been played.
func RunMatch(ctx context.Context, seed uint64, rules engine.Rules, seats Seats, maxRounds int) (MatchResult, error) {
	res := MatchResult{Seed: seed}
	m := engine.NewMatch(seed, rules)

	var evs []engine.Event
	var err error
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		seat := m.ActingSeat()
		var cmd engine.Command
		if seat == engine.NoSeat {
			if m.IsTerminal() || m.RoundsPlayed >= maxRounds {
				break
			}
			cmd = engine.Command{Kind: engine.CmdStartRound, Seat: m.NextDealer}
		} else {
			cmd, err = seats[seat].Decide(m, seat)
			if err != nil {
				return res, fmt.Errorf("seed %d: P%d decide: %w", seed, seat, err)
			}
		}

		m, evs, err = m.Apply(cmd)
		if err != nil {
			return res, fmt.Errorf("seed %d: apply %s: %w", seed, cmd, err)
		}
		res.tally(evs)
	}

	res.Rounds = m.RoundsPlayed
	if winner, ok := m.Winner(); ok {
		res.Finished = true
		res.Winner = winner
		res.Reason = m.Settlement.Reason
	}
	return res, nil
}

func (r *MatchResult) tally(evs []engine.Event) {
	for _, ev := range evs {
		switch ev.Kind {
		case engine.EventContractMade:
			r.ContractsMade++
		case engine.EventContractFailed:
			r.ContractsFailed++
		case engine.EventMalzoumDeclared:
			r.Malzoum++
		case engine.EventRedeal:
			r.Redeals++
		case engine.EventBoundOffered:
			r.BoundsOffered++
		case engine.EventBoundAccepted:
			r.BoundsAccepted++
		case engine.EventSpecialDeal:
			r.SpecialDeals++
		}
	}
}
