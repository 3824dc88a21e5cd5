package engine

import "fmt"

// startRound deals a new round. Accepted before the first round, between
// rounds and after a match has ended.
func (m *MatchState) startRound(dealer Seat, out *events) error {
	switch m.Phase {
	case PhaseStart, PhaseRoundEnd:
	case PhaseMatchEnd:
		m.RoundsPlayed = 0
	default:
		return invalidStatef("cannot start a round during %s", m.Phase)
	}
	if dealer >= NumSeats {
		return illegalf("seat %d does not exist", dealer)
	}
	m.deal(dealer, out)
	return nil
}

// deal shuffles and distributes a fresh pack and opens the auction.
func (m *MatchState) deal(dealer Seat, out *events) {
	m.resetBoard()
	d := DealRound(m.random(), m.Rules.SpecialDeals)
	m.Hands = d.Hands
	m.DealLabel = d.Label
	m.Dealer = dealer
	m.NextDealer = dealer
	m.Turn = dealer.Next()
	m.Phase = PhaseBidding

	out.addf(EventRoundStarted, dealer, false, "New round. Dealer: P%d. Bidding starts with P%d.", dealer, m.Turn)
	if d.Special {
		out.addf(EventSpecialDeal, HumanSeat, true, "%s!", d.Label)
	}
}

func (m *MatchState) requireAuction(stage AuctionStage) error {
	if m.Phase != PhaseBidding {
		return invalidStatef("no auction in progress (phase %s)", m.Phase)
	}
	if m.Auction.Stage != stage {
		if stage == AuctionDealerDecision {
			return invalidStatef("only available once every seat has passed")
		}
		return invalidStatef("the dealer must bid 6, declare Malzoum or redeal")
	}
	return nil
}

func (m *MatchState) bid(seat Seat, amount uint8, out *events) error {
	if m.Phase != PhaseBidding {
		return invalidStatef("no auction in progress (phase %s)", m.Phase)
	}
	if err := m.expectTurn(seat); err != nil {
		return err
	}
	if amount < MinBid || amount > MaxBid {
		return illegalf("bid must be between %d and %d, got %d", MinBid, MaxBid, amount)
	}

	a := &m.Auction
	if a.Stage == AuctionDealerDecision {
		if amount != MinBid {
			return illegalf("the dealer may only bid %d", MinBid)
		}
		a.HighBid, a.HighBidder = amount, seat
		out.addf(EventBidPlaced, seat, false, "P%d bids %d.", seat, amount)
		m.award(Contract{Buyer: seat, Amount: amount}, out)
		return nil
	}

	if amount <= a.HighBid {
		return illegalf("bid must exceed the current bid of %d", a.HighBid)
	}
	a.HighBid, a.HighBidder = amount, seat
	a.Calls++
	out.addf(EventBidPlaced, seat, false, "P%d bids %d.", seat, amount)
	m.advanceAuction(out)
	return nil
}

func (m *MatchState) pass(seat Seat, out *events) error {
	if err := m.requireAuction(AuctionOpen); err != nil {
		return err
	}
	if err := m.expectTurn(seat); err != nil {
		return err
	}
	m.Auction.Passed |= 1 << seat
	m.Auction.Calls++
	out.addf(EventBidPassed, seat, false, "P%d passes.", seat)
	m.advanceAuction(out)
	return nil
}

// advanceAuction ends the auction after one full lap of calls, otherwise
// hands the call to the next seat.
func (m *MatchState) advanceAuction(out *events) {
	a := &m.Auction
	if a.Calls < NumSeats {
		m.Turn = m.Turn.Next()
		return
	}
	if a.HighBid > NoBid {
		m.award(Contract{Buyer: a.HighBidder, Amount: a.HighBid}, out)
		return
	}
	a.Stage = AuctionDealerDecision
	a.DealerForced = true
	m.Turn = m.Dealer
	out.addf(EventDealerDecision, m.Dealer, true, "Everyone passed. P%d (dealer) must decide.", m.Dealer)
}

// award closes the auction and hands the buyer the trump choice.
func (m *MatchState) award(ct Contract, out *events) {
	m.Contract = ct
	m.Auction.Stage = AuctionClosed
	m.Phase = PhaseChoosingTrump
	m.Turn = ct.Buyer
	if ct.Malzoum {
		out.addf(EventAuctionWon, ct.Buyer, true, "P%d is Malzoum for %d.", ct.Buyer, ct.Amount)
		return
	}
	out.addf(EventAuctionWon, ct.Buyer, true, "P%d buys for %d.", ct.Buyer, ct.Amount)
}

func (m *MatchState) declareMalzoum(seat Seat, out *events) error {
	if err := m.requireAuction(AuctionDealerDecision); err != nil {
		return err
	}
	if err := m.expectTurn(seat); err != nil {
		return err
	}
	out.addf(EventMalzoumDeclared, seat, true, "Dealer P%d declares Malzoum.", seat)
	m.award(Contract{Buyer: seat, Amount: MinBid, Malzoum: true}, out)
	return nil
}

func (m *MatchState) requestRedeal(seat Seat, out *events) error {
	if err := m.requireAuction(AuctionDealerDecision); err != nil {
		return err
	}
	if err := m.expectTurn(seat); err != nil {
		return err
	}
	team := seat.Team()
	if m.Scores[team] < RedealCost {
		return insufficientScoref("team %s has %d points, redeal costs %d", team, m.Scores[team], RedealCost)
	}
	m.Scores[team] -= RedealCost
	out.add(Event{
		Kind:      EventRedeal,
		Seat:      seat,
		Team:      team,
		Amount:    RedealCost,
		Card:      EmptyCard,
		Suit:      SuitJoker,
		Scores:    m.Scores,
		Important: true,
		Text:      fmt.Sprintf("Dealer P%d pays %d point to redeal.", seat, RedealCost),
	})
	m.deal(m.Dealer.Next(), out)
	return nil
}

func (m *MatchState) chooseTrump(seat Seat, suit uint8, out *events) error {
	if m.Phase != PhaseChoosingTrump {
		return invalidStatef("trump cannot be chosen during %s", m.Phase)
	}
	if err := m.expectTurn(seat); err != nil {
		return err
	}
	if suit >= NumSuits {
		return illegalf("trump must be one of S, H, C, D")
	}
	m.Contract.Trump = suit
	m.Contract.TrumpChosen = true
	m.Phase = PhasePlaying
	m.Round.TrickIndex = 1
	m.Turn = m.Contract.Buyer.Next()
	out.add(Event{
		Kind: EventTrumpChosen,
		Seat: seat,
		Card: EmptyCard,
		Suit: suit,
		Text: fmt.Sprintf("Hokum is %s. P%d leads.", SuitString(suit), m.Turn),
	})
	return nil
}
