package engine

// CheckPlay reports why seat may not play c right now, or nil when it may.
// A hand in which no card passes the rules may play any card.
func (m MatchState) CheckPlay(seat Seat, c Card) error {
	if m.Phase != PhasePlaying {
		return invalidStatef("cards cannot be played during %s", m.Phase)
	}
	if err := m.expectTurn(seat); err != nil {
		return err
	}
	if !m.Hands[seat].Contains(c) {
		return illegalf("%s is not in P%d's hand", c, seat)
	}
	err := m.playRule(seat, c)
	if err != nil && m.LegalMask(seat) == m.Hands[seat].fullMask() {
		return nil
	}
	return err
}

// LegalMask returns a bitmask over seat's hand positions: bit i is set when
// Hands[seat].Cards[i] may be played. When no card passes the rules every
// position is set. Zero heap allocation.
func (m MatchState) LegalMask(seat Seat) uint16 {
	if m.Phase != PhasePlaying || seat != m.Turn {
		return 0
	}
	h := &m.Hands[seat]
	var mask uint16
	for i := uint8(0); i < h.Len; i++ {
		if m.playRule(seat, h.Cards[i]) == nil {
			mask |= 1 << i
		}
	}
	if mask == 0 {
		return h.fullMask()
	}
	return mask
}

// LegalCards returns the playable cards for seat (allocates).
func (m MatchState) LegalCards(seat Seat) []Card {
	mask := m.LegalMask(seat)
	h := &m.Hands[seat]
	var out []Card
	for i := uint8(0); i < h.Len; i++ {
		if mask&(1<<i) != 0 {
			out = append(out, h.Cards[i])
		}
	}
	return out
}

// LegalCommands lists every command the acting seat may issue (allocates).
// Between rounds it offers StartRound with the scheduled dealer.
func (m MatchState) LegalCommands() []Command {
	seat := m.Turn
	switch m.Phase {
	case PhaseStart, PhaseRoundEnd, PhaseMatchEnd:
		return []Command{{Kind: CmdStartRound, Seat: m.NextDealer}}

	case PhaseBidding:
		if m.Auction.Stage == AuctionDealerDecision {
			cmds := []Command{
				{Kind: CmdBid, Seat: seat, Amount: MinBid},
				{Kind: CmdMalzoum, Seat: seat},
			}
			if m.Scores[seat.Team()] >= RedealCost {
				cmds = append(cmds, Command{Kind: CmdRedeal, Seat: seat})
			}
			return cmds
		}
		cmds := []Command{{Kind: CmdPass, Seat: seat}}
		for amt := max(m.Auction.HighBid+1, MinBid); amt <= MaxBid; amt++ {
			cmds = append(cmds, Command{Kind: CmdBid, Seat: seat, Amount: amt})
		}
		return cmds

	case PhaseChoosingTrump:
		cmds := make([]Command, 0, NumSuits)
		for s := uint8(0); s < NumSuits; s++ {
			cmds = append(cmds, Command{Kind: CmdChooseTrump, Seat: seat, Suit: s})
		}
		return cmds

	case PhasePlaying:
		var cmds []Command
		for _, c := range m.LegalCards(seat) {
			cmds = append(cmds, Command{Kind: CmdPlayCard, Seat: seat, Card: c})
		}
		return cmds

	case PhaseBoundOffer:
		return []Command{
			{Kind: CmdAcceptBound, Seat: seat},
			{Kind: CmdDeclineBound, Seat: seat},
		}
	}
	return nil
}

// playRule applies the card-play rules in order and returns the first
// violation. Turn, phase and hand membership are checked by the caller.
func (m MatchState) playRule(seat Seat, c Card) error {
	r := &m.Round
	ct := &m.Contract
	h := &m.Hands[seat]
	leading := r.Trick.Len == 0

	// The big joker waits for the small joker, unless the shield is up, the
	// hand holds nothing else, or this very play raises the shield.
	if c == BigJoker && !r.SmallJokerPlayed {
		switch {
		case r.Yidhamman:
		case h.NonJokers() == 0:
		case m.raisesYidhamman(seat, c):
		default:
			return illegalf("the small joker must be played before the big joker")
		}
	}

	if leading && r.TrickIndex == 1 {
		if ct.Amount == Inzelli {
			if h.HasSuit(ct.Trump) && (c.IsJoker() || c.Suit() != ct.Trump) {
				return illegalf("an Inzelli contract must open with Hokum")
			}
			if c.IsJoker() {
				return illegalf("a joker cannot open an Inzelli contract")
			}
		} else if !c.IsJoker() && c.Suit() == ct.Trump {
			return illegalf("Hokum cannot be led on the first trick")
		}
	}

	if leading && c.IsJoker() {
		lastTrickShield := r.TrickIndex == TricksPer && r.Yidhamman && c == SmallJoker
		if h.NonJokers() > 0 && !lastTrickShield {
			return illegalf("a joker cannot be led")
		}
	}

	if !leading {
		lead := r.Trick.Lead()
		if !lead.IsJoker() && !c.IsJoker() && c.Suit() != lead.Suit() && h.HasSuit(lead.Suit()) {
			return illegalf("must follow %s", SuitString(lead.Suit()))
		}
	}
	return nil
}

// raisesYidhamman reports whether seat playing c activates the joker shield:
// the buyer, holding both jokers, plays the big one within the first three
// tricks.
func (m MatchState) raisesYidhamman(seat Seat, c Card) bool {
	return c == BigJoker &&
		m.Hands[seat].Contains(SmallJoker) &&
		!m.Round.SmallJokerPlayed &&
		!m.Round.Yidhamman &&
		m.Round.TrickIndex <= 3 &&
		seat == m.Contract.Buyer
}
