package agent

// Hand power weights: each joker, ace and king adds to a seat's power.
const (
	WeightJoker = 3
	WeightAce   = 2
	WeightKing  = 1
)

// Bidding thresholds. A seat bids 6 above PowerBidSix while the high bid is
// below 6, or 7 above PowerBidSeven while the high bid is below 7.
const (
	PowerBidSix   = 5
	PowerBidSeven = 8

	// A forced dealer weaker than this redeals when the team can pay for it.
	PowerRedeal = 2
)

// EarlyTricks is the window in which the small joker is released eagerly.
const EarlyTricks = 3
