package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSettle covers the contract outcomes and the match thresholds.
func TestSettle(t *testing.T) {
	tests := []struct {
		name        string
		ct          Contract
		won         [2]uint8
		bound       bool
		scores      [2]int
		wantDelta   [2]int
		wantScores  [2]int
		wantWinner  int8
		wantReason  MatchEndReason
		wantMadeRes bool
	}{
		{
			name:        "six made",
			ct:          Contract{Buyer: 0, Amount: 6},
			won:         [2]uint8{6, 1},
			wantDelta:   [2]int{6, 0},
			wantScores:  [2]int{6, 0},
			wantWinner:  -1,
			wantMadeRes: true,
		},
		{
			name:       "seven failed",
			ct:         Contract{Buyer: 2, Amount: 7},
			won:        [2]uint8{4, 3},
			scores:     [2]int{5, 5},
			wantDelta:  [2]int{0, 14},
			wantScores: [2]int{5, 19},
			wantWinner: -1,
		},
		{
			name:       "inzelli failed",
			ct:         Contract{Buyer: 1, Amount: 8},
			won:        [2]uint8{2, 7},
			scores:     [2]int{10, 3},
			wantDelta:  [2]int{16, 0},
			wantScores: [2]int{26, 3},
			wantWinner: -1,
		},
		{
			name:       "malzoum failed",
			ct:         Contract{Buyer: 3, Amount: 6, Malzoum: true},
			won:        [2]uint8{4, 5},
			wantDelta:  [2]int{6, 0},
			wantScores: [2]int{6, 0},
			wantWinner: -1,
		},
		{
			name:        "malzoum made",
			ct:          Contract{Buyer: 3, Amount: 6, Malzoum: true},
			won:         [2]uint8{3, 6},
			wantDelta:   [2]int{0, 6},
			wantScores:  [2]int{0, 6},
			wantWinner:  -1,
			wantMadeRes: true,
		},
		{
			name:        "shutout",
			ct:          Contract{Buyer: 0, Amount: 6},
			won:         [2]uint8{6, 0},
			scores:      [2]int{24, 0},
			wantDelta:   [2]int{6, 0},
			wantScores:  [2]int{0, 0},
			wantWinner:  int8(TeamA),
			wantReason:  ReasonShutout,
			wantMadeRes: true,
		},
		{
			name:        "no shutout when opponents scored",
			ct:          Contract{Buyer: 0, Amount: 6},
			won:         [2]uint8{6, 0},
			scores:      [2]int{24, 2},
			wantDelta:   [2]int{6, 0},
			wantScores:  [2]int{30, 2},
			wantWinner:  -1,
			wantMadeRes: true,
		},
		{
			name:        "target",
			ct:          Contract{Buyer: 1, Amount: 7},
			won:         [2]uint8{1, 7},
			scores:      [2]int{20, 50},
			wantDelta:   [2]int{0, 7},
			wantScores:  [2]int{0, 0},
			wantWinner:  int8(TeamB),
			wantReason:  ReasonTarget,
			wantMadeRes: true,
		},
		{
			name:        "bound kept",
			ct:          Contract{Buyer: 0, Amount: 6},
			won:         [2]uint8{9, 0},
			bound:       true,
			scores:      [2]int{12, 30},
			wantWinner:  int8(TeamA),
			wantReason:  ReasonBound,
			wantMadeRes: true,
		},
		{
			name:       "bound broken",
			ct:         Contract{Buyer: 2, Amount: 7},
			won:        [2]uint8{8, 1},
			bound:      true,
			scores:     [2]int{12, 30},
			wantWinner: int8(TeamB),
			wantReason: ReasonBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settle(tt.ct, tt.won, tt.bound, tt.scores)
			assert.True(t, s.Done)
			assert.Equal(t, tt.wantDelta, s.Delta)
			assert.Equal(t, tt.wantScores, s.Scores)
			assert.Equal(t, tt.wantWinner, s.BoundWinner)
			assert.Equal(t, tt.wantReason, s.Reason)
			assert.Equal(t, tt.wantMadeRes, s.Made)
			assert.Equal(t, tt.wantWinner >= 0, s.MatchOver())
		})
	}
}

// TestSettleDeterministic verifies identical inputs give identical output.
func TestSettleDeterministic(t *testing.T) {
	ct := Contract{Buyer: 1, Amount: 7, Trump: SuitClubs}
	a := Settle(ct, [2]uint8{3, 6}, false, [2]int{8, 12})
	b := Settle(ct, [2]uint8{3, 6}, false, [2]int{8, 12})
	assert.Equal(t, a, b)
}

// TestShutoutCheckedBeforeTarget verifies the threshold order: Team A's
// shutout first, then Team B's, then the 54-point target.
func TestShutoutCheckedBeforeTarget(t *testing.T) {
	team, reason, ok := thresholdWinner([2]int{60, 0})
	assert.True(t, ok)
	assert.Equal(t, TeamA, team)
	assert.Equal(t, ReasonShutout, reason)

	team, reason, ok = thresholdWinner([2]int{55, 54})
	assert.True(t, ok)
	assert.Equal(t, TeamA, team)
	assert.Equal(t, ReasonTarget, reason)

	_, _, ok = thresholdWinner([2]int{29, 0})
	assert.False(t, ok)
}

// TestNextDealerAfter verifies the deal passes only when the dealer's team
// leads.
func TestNextDealerAfter(t *testing.T) {
	assert.Equal(t, Seat(3), NextDealerAfter(0, [2]int{10, 4}))
	assert.Equal(t, Seat(0), NextDealerAfter(0, [2]int{4, 4}))
	assert.Equal(t, Seat(0), NextDealerAfter(0, [2]int{2, 4}))
	assert.Equal(t, Seat(0), NextDealerAfter(1, [2]int{2, 4}))
}

// TestMatchEndThenNewRound verifies a new round after match end starts from
// a clean running score while bound points persist.
func TestMatchEndThenNewRound(t *testing.T) {
	cards := map[Seat]Card{0: aceH, 3: sixH, 2: nineH, 1: card(SuitHearts, RankEight)}
	m := lateRound(t, Contract{Buyer: 0, Amount: 6, Trump: SuitSpades}, [2]uint8{5, 2}, 8, 0, cards)
	m.Scores = [2]int{50, 20}
	m.BoundPoints = [2]int{1, 2}

	m, _ = playTrick(t, m, cards)
	assert.Equal(t, PhaseMatchEnd, m.Phase)
	assert.Equal(t, [2]int{2, 2}, m.BoundPoints)
	assert.Equal(t, [2]int{0, 0}, m.Scores)
	assert.Equal(t, ReasonTarget, m.Settlement.Reason)
	assert.Equal(t, [2]int{56, 20}, m.Settlement.Totals)

	m, _ = mustApply(t, m, Command{Kind: CmdStartRound, Seat: m.NextDealer})
	assert.Equal(t, PhaseBidding, m.Phase)
	assert.Equal(t, [2]int{2, 2}, m.BoundPoints)
	assert.Equal(t, 0, m.RoundsPlayed)
}
