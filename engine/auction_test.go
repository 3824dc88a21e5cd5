package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allPass passes for every seat and returns the state at the dealer decision.
func allPass(t *testing.T, m MatchState) MatchState {
	t.Helper()
	for i := 0; i < NumSeats; i++ {
		m, _ = mustApply(t, m, Command{Kind: CmdPass, Seat: m.Turn})
	}
	require.Equal(t, AuctionDealerDecision, m.Auction.Stage)
	return m
}

// TestBidTurnOrder verifies calls rotate 0→3→2→1 starting after the dealer.
func TestBidTurnOrder(t *testing.T) {
	m := newDealtMatch(t) // dealer 0
	var order []Seat
	for i := 0; i < 3; i++ {
		order = append(order, m.Turn)
		m, _ = mustApply(t, m, Command{Kind: CmdPass, Seat: m.Turn})
	}
	order = append(order, m.Turn)
	assert.Equal(t, []Seat{3, 2, 1, 0}, order)
}

// TestBidMustExceed verifies each bid must beat the previous one.
func TestBidMustExceed(t *testing.T) {
	m := newDealtMatch(t)
	m, _, err := m.Bid(3, 7)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), m.Auction.HighBid)
	assert.Equal(t, Seat(3), m.Auction.HighBidder)

	_, _, err = m.Bid(2, 7)
	require.ErrorIs(t, err, ErrIllegalMove)
	_, _, err = m.Bid(2, 6)
	require.ErrorIs(t, err, ErrIllegalMove)
	_, _, err = m.Bid(2, 5)
	require.ErrorIs(t, err, ErrIllegalMove)

	m, _, err = m.Bid(2, 8)
	require.NoError(t, err)
	assert.Equal(t, uint8(8), m.Auction.HighBid)
}

// TestAuctionClosesAfterOneLap verifies the high bidder wins once all four
// seats have called, and chooses trump next.
func TestAuctionClosesAfterOneLap(t *testing.T) {
	m := newDealtMatch(t)
	m, _ = mustApply(t, m, Command{Kind: CmdPass, Seat: 3})
	m, _ = mustApply(t, m, Command{Kind: CmdBid, Seat: 2, Amount: 6})
	m, _ = mustApply(t, m, Command{Kind: CmdBid, Seat: 1, Amount: 7})
	require.Equal(t, PhaseBidding, m.Phase)

	m, evs := mustApply(t, m, Command{Kind: CmdPass, Seat: 0})
	assert.Equal(t, PhaseChoosingTrump, m.Phase)
	assert.Equal(t, Seat(1), m.Contract.Buyer)
	assert.Equal(t, uint8(7), m.Contract.Amount)
	assert.False(t, m.Contract.Malzoum)
	assert.Equal(t, Seat(1), m.Turn)
	assert.True(t, hasEvent(evs, EventAuctionWon))
	assert.True(t, m.Auction.HasPassed(0))
	assert.False(t, m.Auction.HasPassed(1))
}

// TestAllPassDealerDecision verifies the dealer is forced to decide and can
// only bid exactly 6.
func TestAllPassDealerDecision(t *testing.T) {
	m := allPass(t, newDealtMatch(t))
	assert.Equal(t, Seat(0), m.Turn)
	assert.True(t, m.Auction.DealerForced)

	_, _, err := m.Pass(0)
	require.ErrorIs(t, err, ErrInvalidState, "pass is not accepted once the dealer must decide")
	_, _, err = m.Bid(0, 7)
	require.ErrorIs(t, err, ErrIllegalMove)

	m, _, err = m.Bid(0, 6)
	require.NoError(t, err)
	assert.Equal(t, PhaseChoosingTrump, m.Phase)
	assert.Equal(t, Contract{Buyer: 0, Amount: 6}, m.Contract)
}

// TestDeclareMalzoum verifies Malzoum gives the dealer a 6-contract.
func TestDeclareMalzoum(t *testing.T) {
	m := newDealtMatch(t)
	_, _, err := m.DeclareMalzoum(m.Turn)
	require.ErrorIs(t, err, ErrInvalidState, "Malzoum before everyone passed")
	_, _, err = m.RequestRedeal(m.Turn)
	require.ErrorIs(t, err, ErrInvalidState, "redeal before everyone passed")

	m = allPass(t, m)
	m, evs, err := m.DeclareMalzoum(0)
	require.NoError(t, err)
	assert.True(t, m.Contract.Malzoum)
	assert.Equal(t, uint8(6), m.Contract.Amount)
	assert.Equal(t, Seat(0), m.Contract.Buyer)
	assert.True(t, hasEvent(evs, EventMalzoumDeclared))
}

// TestRedeal verifies the score cost and dealer rotation.
func TestRedeal(t *testing.T) {
	m := allPass(t, newDealtMatch(t))

	_, _, err := m.RequestRedeal(0)
	require.ErrorIs(t, err, ErrInsufficientScore)

	m.Scores = [2]int{3, 5}
	oldHands := m.Hands
	m, evs, err := m.RequestRedeal(0)
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 5}, m.Scores)
	assert.Equal(t, PhaseBidding, m.Phase)
	assert.Equal(t, AuctionOpen, m.Auction.Stage)
	assert.Equal(t, Seat(3), m.Dealer)
	assert.Equal(t, Seat(2), m.Turn)
	assert.NotEqual(t, oldHands, m.Hands)
	assert.True(t, hasEvent(evs, EventRedeal))
	assert.True(t, hasEvent(evs, EventRoundStarted))
}

// TestChooseTrump verifies the buyer names trump and the next seat leads.
func TestChooseTrump(t *testing.T) {
	m := allPass(t, newDealtMatch(t))
	m, _ = mustApply(t, m, Command{Kind: CmdBid, Seat: 0, Amount: 6})

	_, _, err := m.ChooseTrump(1, SuitHearts)
	require.ErrorIs(t, err, ErrInvalidState)
	_, _, err = m.ChooseTrump(0, SuitJoker)
	require.ErrorIs(t, err, ErrIllegalMove)

	m, _, err = m.ChooseTrump(0, SuitHearts)
	require.NoError(t, err)
	assert.Equal(t, PhasePlaying, m.Phase)
	assert.Equal(t, SuitHearts, m.Contract.Trump)
	assert.True(t, m.Contract.TrumpChosen)
	assert.Equal(t, Seat(3), m.Turn)
	assert.Equal(t, uint8(1), m.Round.TrickIndex)

	_, _, err = m.ChooseTrump(0, SuitSpades)
	require.ErrorIs(t, err, ErrInvalidState, "trump is fixed once chosen")
}

// TestAuctionAlwaysTerminates runs every pass/bid pattern for one lap and
// checks the auction always ends with a buyer or at the dealer decision.
func TestAuctionAlwaysTerminates(t *testing.T) {
	base := newDealtMatch(t)
	// Each seat either passes (0) or raises by one (1).
	for pattern := 0; pattern < 1<<NumSeats; pattern++ {
		m := base
		for i := 0; i < NumSeats; i++ {
			seat := m.Turn
			raise := pattern&(1<<i) != 0
			if raise && max(m.Auction.HighBid+1, MinBid) <= MaxBid {
				m, _ = mustApply(t, m, Command{Kind: CmdBid, Seat: seat, Amount: max(m.Auction.HighBid+1, MinBid)})
			} else {
				m, _ = mustApply(t, m, Command{Kind: CmdPass, Seat: seat})
			}
		}
		if pattern == 0 {
			assert.Equal(t, AuctionDealerDecision, m.Auction.Stage)
			continue
		}
		assert.Equal(t, PhaseChoosingTrump, m.Phase, "pattern %04b", pattern)
		assert.Equal(t, m.Auction.HighBidder, m.Contract.Buyer)
	}
}
