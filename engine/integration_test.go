//go:build integration

package engine

// Full-match sweeps over many seeds using only the public API: NewMatch,
// Apply, LegalCommands, ActingSeat and the query helpers.
//
// Run: go test -tags integration -run TestIntegration ./engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	sweepSeeds = 300
	sweepSteps = 20000
)

// pickRand returns a random legal command.
func pickRand(m MatchState, rng *rand.Rand) (Command, bool) {
	cmds := m.LegalCommands()
	if len(cmds) == 0 {
		return Command{}, false
	}
	return cmds[rng.IntN(len(cmds))], true
}

// checkRoundInvariants asserts card conservation and score sanity.
func checkRoundInvariants(t *testing.T, m MatchState, played map[Card]bool) {
	t.Helper()
	switch m.Phase {
	case PhaseBidding, PhaseChoosingTrump, PhasePlaying, PhaseBoundOffer:
		total := m.CardsPlayed()
		for _, n := range m.HandCounts() {
			total += n
		}
		require.Equal(t, PackSize, total, "cards in hands plus cards played")
		for s := Seat(0); s < NumSeats; s++ {
			for _, c := range m.HandOf(s) {
				require.False(t, played[c], "P%d still holds played card %s", s, c)
			}
		}
	}
	require.GreaterOrEqual(t, m.Scores[TeamA], 0)
	require.GreaterOrEqual(t, m.Scores[TeamB], 0)
	require.LessOrEqual(t, int(m.Round.TrickIndex), TricksPer)
}

// TestIntegrationRandomMatchesTerminate plays random legal commands until a
// bound point is awarded and checks invariants after every step.
func TestIntegrationRandomMatchesTerminate(t *testing.T) {
	for seed := uint64(1); seed <= sweepSeeds; seed++ {
		rng := rand.New(rand.NewPCG(seed, 17))
		m := NewMatch(seed, DefaultRules())
		played := map[Card]bool{}

		steps := 0
		for ; steps < sweepSteps && !m.IsTerminal(); steps++ {
			cmd, ok := pickRand(m, rng)
			require.True(t, ok, "seed %d: no legal command in %s", seed, m.Phase)

			next, evs, err := m.Apply(cmd)
			require.NoError(t, err, "seed %d: legal command %s rejected", seed, cmd)
			require.Equal(t, m.Token+1, next.Token)
			m = next

			for _, ev := range evs {
				switch ev.Kind {
				case EventRoundStarted:
					clear(played)
				case EventCardPlayed:
					require.False(t, played[ev.Card], "seed %d: %s played twice", seed, ev.Card)
					played[ev.Card] = true
				}
			}
			checkRoundInvariants(t, m, played)
		}
		require.True(t, m.IsTerminal(), "seed %d: match did not finish in %d steps", seed, sweepSteps)

		winner, ok := m.Winner()
		require.True(t, ok)
		require.Equal(t, 1, m.BoundPoints[winner])
		require.Equal(t, [2]int{}, m.Scores, "totals reset when the match ends")
	}
}

// TestIntegrationLegalCommandsAccepted checks that every listed command is
// accepted and every other seat is refused, across random positions.
func TestIntegrationLegalCommandsAccepted(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, 29))
		m := NewMatch(seed, DefaultRules())
		for steps := 0; steps < 400 && !m.IsTerminal(); steps++ {
			for _, cmd := range m.LegalCommands() {
				_, _, err := m.Apply(cmd)
				require.NoError(t, err, "seed %d: %s", seed, cmd)
			}
			if acting := m.ActingSeat(); acting != NoSeat {
				other := acting.Next()
				for _, cmd := range m.LegalCommands() {
					cmd.Seat = other
					_, _, err := m.Apply(cmd)
					require.Error(t, err, "seed %d: %s out of turn", seed, cmd)
				}
			}
			cmd, _ := pickRand(m, rng)
			m, _, _ = m.Apply(cmd)
		}
	}
}

// TestIntegrationSameSeedSameMatch replays a seed and expects identical
// states at every step.
func TestIntegrationSameSeedSameMatch(t *testing.T) {
	a := NewMatch(404, DefaultRules())
	b := NewMatch(404, DefaultRules())
	rng := rand.New(rand.NewPCG(1, 2))
	for steps := 0; steps < 2000 && !a.IsTerminal(); steps++ {
		cmd, _ := pickRand(a, rng)
		var err error
		a, _, err = a.Apply(cmd)
		require.NoError(t, err)
		b, _, err = b.Apply(cmd)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}
