package engine

import "fmt"

// CommandKind enumerates the commands a seat (or the table) can issue.
type CommandKind uint8

const (
	CmdStartRound CommandKind = iota + 1
	CmdBid
	CmdPass
	CmdMalzoum
	CmdRedeal
	CmdChooseTrump
	CmdPlayCard
	CmdAcceptBound
	CmdDeclineBound
	CmdResetMatch
)

var commandNames = map[CommandKind]string{
	CmdStartRound:   "start-round",
	CmdBid:          "bid",
	CmdPass:         "pass",
	CmdMalzoum:      "malzoum",
	CmdRedeal:       "redeal",
	CmdChooseTrump:  "choose-trump",
	CmdPlayCard:     "play",
	CmdAcceptBound:  "accept-bound",
	CmdDeclineBound: "decline-bound",
	CmdResetMatch:   "reset-match",
}

func (k CommandKind) String() string {
	if s, ok := commandNames[k]; ok {
		return s
	}
	return fmt.Sprintf("command(%d)", uint8(k))
}

// Command is a single decision. Only the fields relevant to Kind are read:
// Amount for CmdBid, Suit for CmdChooseTrump, Card for CmdPlayCard and Seat
// (the dealer) for CmdStartRound.
type Command struct {
	Kind   CommandKind
	Seat   Seat
	Amount uint8
	Suit   uint8
	Card   Card
}

func (c Command) String() string {
	switch c.Kind {
	case CmdBid:
		return fmt.Sprintf("P%d bid %d", c.Seat, c.Amount)
	case CmdChooseTrump:
		return fmt.Sprintf("P%d trump %s", c.Seat, SuitString(c.Suit))
	case CmdPlayCard:
		return fmt.Sprintf("P%d play %s", c.Seat, c.Card)
	case CmdResetMatch:
		return c.Kind.String()
	}
	return fmt.Sprintf("P%d %s", c.Seat, c.Kind)
}

// Apply validates cmd against m and returns the successor state together with
// the events it produced. On error m is returned unchanged.
func (m MatchState) Apply(cmd Command) (MatchState, []Event, error) {
	next := m
	var out events

	var err error
	switch cmd.Kind {
	case CmdStartRound:
		err = next.startRound(cmd.Seat, &out)
	case CmdBid:
		err = next.bid(cmd.Seat, cmd.Amount, &out)
	case CmdPass:
		err = next.pass(cmd.Seat, &out)
	case CmdMalzoum:
		err = next.declareMalzoum(cmd.Seat, &out)
	case CmdRedeal:
		err = next.requestRedeal(cmd.Seat, &out)
	case CmdChooseTrump:
		err = next.chooseTrump(cmd.Seat, cmd.Suit, &out)
	case CmdPlayCard:
		err = next.playCard(cmd.Seat, cmd.Card, &out)
	case CmdAcceptBound:
		err = next.acceptBound(cmd.Seat, &out)
	case CmdDeclineBound:
		err = next.declineBound(cmd.Seat, &out)
	case CmdResetMatch:
		next.resetMatch(&out)
	default:
		err = invalidStatef("unhandled command %s", cmd.Kind)
	}
	if err != nil {
		return m, nil, err
	}
	next.Token++
	return next, out, nil
}

// StartRound deals a new round with dealer as the dealer.
func (m MatchState) StartRound(dealer Seat) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdStartRound, Seat: dealer})
}

// Bid places a bid of amount for seat.
func (m MatchState) Bid(seat Seat, amount uint8) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdBid, Seat: seat, Amount: amount})
}

// Pass records a pass for seat.
func (m MatchState) Pass(seat Seat) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdPass, Seat: seat})
}

// DeclareMalzoum makes the dealer the buyer of a forced 6-contract.
func (m MatchState) DeclareMalzoum(seat Seat) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdMalzoum, Seat: seat})
}

// RequestRedeal spends one point of the dealer's team to deal again.
func (m MatchState) RequestRedeal(seat Seat) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdRedeal, Seat: seat})
}

// ChooseTrump names the Hokum suit.
func (m MatchState) ChooseTrump(seat Seat, suit uint8) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdChooseTrump, Seat: seat, Suit: suit})
}

// PlayCard plays c from seat's hand.
func (m MatchState) PlayCard(seat Seat, c Card) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdPlayCard, Seat: seat, Card: c})
}

// AcceptBound commits the buyer's team to win every trick.
func (m MatchState) AcceptBound(seat Seat) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdAcceptBound, Seat: seat})
}

// DeclineBound turns down the Bound offer.
func (m MatchState) DeclineBound(seat Seat) (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdDeclineBound, Seat: seat})
}

// ResetMatch discards all scores, bound points included.
func (m MatchState) ResetMatch() (MatchState, []Event, error) {
	return m.Apply(Command{Kind: CmdResetMatch})
}

// expectTurn rejects commands from a seat other than the one to act.
func (m *MatchState) expectTurn(seat Seat) error {
	if seat >= NumSeats {
		return illegalf("seat %d does not exist", seat)
	}
	if seat != m.Turn {
		return invalidStatef("not P%d's turn (waiting on P%d)", seat, m.Turn)
	}
	return nil
}
