package engine

import "fmt"

// Trick ranking. Trump ranks fall in [1006,1014] and the led suit in
// [506,514], both below either joker.
const (
	RankBigJokerScore   = 10000
	RankSmallJokerScore = 9000
	TrumpBonus          = 1000
	LeadBonus           = 500
)

// Rank returns the strength of c within a trick led with leadSuit under
// trump. Jokers outrank all trump, trump outranks the led suit, and every
// other card keeps its base value. When a joker leads, pass SuitJoker: no
// standard card then receives the lead bonus.
func Rank(c Card, leadSuit, trump uint8) int {
	switch {
	case c == BigJoker:
		return RankBigJokerScore
	case c == SmallJoker:
		return RankSmallJokerScore
	case c.Suit() == trump:
		return TrumpBonus + c.Value()
	case c.Suit() == leadSuit:
		return LeadBonus + c.Value()
	}
	return c.Value()
}

// TrickWinner returns the seat holding the highest-ranked card of a complete
// trick and that card's rank. Ranks are distinct within a trick.
func TrickWinner(t Trick, trump uint8) (Seat, int) {
	lead := t.Lead().Suit()
	best, bestRank := NoSeat, -1
	for i := uint8(0); i < t.Len; i++ {
		p := t.Plays[i]
		if r := Rank(p.Card, lead, trump); r > bestRank {
			best, bestRank = p.Seat, r
		}
	}
	return best, bestRank
}

func (m *MatchState) playCard(seat Seat, c Card, out *events) error {
	if err := m.CheckPlay(seat, c); err != nil {
		return err
	}
	r := &m.Round

	if m.raisesYidhamman(seat, c) {
		r.Yidhamman = true
		out.addf(EventYidhamman, seat, true, "Yidhamman! P%d's big joker shields the small joker.", seat)
	}
	m.Hands[seat].Remove(c)
	if c == SmallJoker {
		r.SmallJokerPlayed = true
	}
	r.Trick.Plays[r.Trick.Len] = Play{Seat: seat, Card: c}
	r.Trick.Len++
	out.add(Event{
		Kind: EventCardPlayed,
		Seat: seat,
		Team: seat.Team(),
		Card: c,
		Suit: SuitJoker,
		Text: fmt.Sprintf("P%d plays %s.", seat, c),
	})

	if r.Trick.Len < NumSeats {
		m.Turn = seat.Next()
		return nil
	}
	m.scoreTrick(out)
	return nil
}

// scoreTrick awards the completed trick and decides what happens next: a
// Bound offer, the end of the round, or the next lead.
func (m *MatchState) scoreTrick(out *events) {
	r := &m.Round
	ct := &m.Contract

	winner, _ := TrickWinner(r.Trick, ct.Trump)
	team := winner.Team()
	r.TricksWon[team]++
	r.LastTrick = r.Trick
	r.LastWinner = winner
	r.Trick = Trick{}
	out.add(Event{
		Kind:   EventTrickWon,
		Seat:   winner,
		Team:   team,
		Amount: int(r.TrickIndex),
		Card:   EmptyCard,
		Suit:   SuitJoker,
		Text:   fmt.Sprintf("P%d wins trick %d.", winner, r.TrickIndex),
	})

	if m.boundAvailable() {
		m.Phase = PhaseBoundOffer
		m.Turn = ct.Buyer
		out.addf(EventBoundOffered, ct.Buyer, true, "Bound available to P%d: win every trick for the match.", ct.Buyer)
		return
	}
	m.continueRound(out)
}

// boundAvailable reports whether the buyer's team just reached the trick
// before its contract having won every trick so far. Only Team A is offered
// Bound; a Malzoum buyer never is.
func (m *MatchState) boundAvailable() bool {
	r := &m.Round
	ct := &m.Contract
	bt := ct.BuyerTeam()
	won := r.TricksWon[bt]
	return bt == TeamA &&
		!ct.Malzoum &&
		!r.Bound &&
		won == r.TrickIndex &&
		won+1 == ct.Amount
}

// continueRound ends the round once the contract is decided (unless Bound
// is in force) or after the ninth trick, otherwise the trick winner leads.
func (m *MatchState) continueRound(out *events) {
	r := &m.Round
	ct := &m.Contract
	bt := ct.BuyerTeam()

	if !r.Bound {
		if r.TricksWon[bt.Other()] > ct.MaxLosses() {
			out.addf(EventContractFailed, ct.Buyer, true, "Team %s fails the contract of %d.", bt, ct.Amount)
			m.endRound(out)
			return
		}
		if r.TricksWon[bt] >= ct.Amount {
			out.addf(EventContractMade, ct.Buyer, true, "Team %s makes the contract of %d.", bt, ct.Amount)
			m.endRound(out)
			return
		}
	}
	if r.TrickIndex >= TricksPer {
		m.endRound(out)
		return
	}
	m.nextTrick()
}

func (m *MatchState) nextTrick() {
	m.Round.TrickIndex++
	m.Turn = m.Round.LastWinner
	m.Phase = PhasePlaying
}

func (m *MatchState) acceptBound(seat Seat, out *events) error {
	if m.Phase != PhaseBoundOffer {
		return invalidStatef("no Bound offer is open")
	}
	if err := m.expectTurn(seat); err != nil {
		return err
	}
	m.Round.Bound = true
	out.addf(EventBoundAccepted, seat, true, "P%d accepts Bound.", seat)
	m.nextTrick()
	return nil
}

func (m *MatchState) declineBound(seat Seat, out *events) error {
	if m.Phase != PhaseBoundOffer {
		return invalidStatef("no Bound offer is open")
	}
	if err := m.expectTurn(seat); err != nil {
		return err
	}
	out.addf(EventBoundDeclined, seat, false, "P%d declines Bound.", seat)
	m.Phase = PhasePlaying
	m.continueRound(out)
	return nil
}
