package game

import (
	"fmt"

	engine "github.com/jason-s-yu/mushtara/engine"
)

// Submit applies a command on behalf of a human seat. Table commands
// (StartRound, ResetMatch) are accepted from anyone.
func (s *Session) Submit(cmd engine.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if cmd.Kind != engine.CmdStartRound && cmd.Kind != engine.CmdResetMatch {
		if cmd.Seat >= engine.NumSeats {
			return fmt.Errorf("%w: seat %d does not exist", engine.ErrIllegalMove, cmd.Seat)
		}
		if !isHuman(s.sources[cmd.Seat]) {
			return fmt.Errorf("%w: P%d is not a human seat", engine.ErrInvalidState, cmd.Seat)
		}
	}
	return s.apply(cmd)
}

// apply runs cmd through the engine, records its events and schedules the
// next automated decision. A rejected command leaves the session untouched.
// Assumes lock is held by caller.
func (s *Session) apply(cmd engine.Command) error {
	next, evs, err := s.state.Apply(cmd)
	if err != nil {
		s.log.WithFields(s.fields()).WithError(err).Debugf("rejected %s", cmd)
		return err
	}
	s.state = next
	s.log.WithFields(s.fields()).WithField("token", s.state.Token).Debugf("applied %s", cmd)
	s.record(evs)
	s.scheduleNextDecision()
	return nil
}

// scheduleNextDecision cancels any pending decision and, when an automated
// seat is due to act, schedules its decision after the think delay. The
// task carries the state token so a decision for a superseded state is
// dropped.
// Assumes lock is held by caller.
func (s *Session) scheduleNextDecision() {
	s.stopPending()
	if s.closed {
		return
	}
	seat := s.state.ActingSeat()
	if seat == engine.NoSeat || isHuman(s.sources[seat]) {
		return
	}

	token := s.state.Token
	s.pending = s.scheduler.AfterFunc(s.thinkDelay, func() {
		s.runDecision(seat, token)
	})
}

func (s *Session) stopPending() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// runDecision asks seat's source for a command and applies it, unless the
// state moved on since the decision was scheduled.
func (s *Session) runDecision(seat engine.Seat, expectedToken uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state.Token != expectedToken || s.state.ActingSeat() != seat {
		s.log.WithFields(s.fields()).WithField("token", expectedToken).Debug("dropping stale decision")
		return
	}
	s.pending = nil

	cmd, ok, err := s.sources[seat].Decide(s.state, seat)
	if err != nil {
		s.log.WithFields(s.fields()).WithError(err).Warn("decision failed, falling back to first legal command")
		s.applyFallback(seat)
		return
	}
	if !ok {
		return
	}
	if err := s.apply(cmd); err != nil {
		s.log.WithFields(s.fields()).WithError(err).Warnf("policy issued a rejected command %s, falling back", cmd)
		s.applyFallback(seat)
	}
}

// applyFallback keeps the table moving when an automated seat fails to
// produce an accepted command: it plays the first legal command instead.
// Assumes lock is held by caller.
func (s *Session) applyFallback(seat engine.Seat) {
	cmds := s.state.LegalCommands()
	if len(cmds) == 0 || cmds[0].Seat != seat {
		s.log.WithFields(s.fields()).Error("no fallback command, table stalled")
		return
	}
	if err := s.apply(cmds[0]); err != nil {
		s.log.WithFields(s.fields()).WithError(err).Errorf("fallback %s rejected, table stalled", cmds[0])
	}
}

// ---------------------------------------------------------------------------
// Commands for the local (seat 0) player and the table
// ---------------------------------------------------------------------------

// PlaceBid bids amount for the human seat.
func (s *Session) PlaceBid(amount uint8) error {
	return s.Submit(engine.Command{Kind: engine.CmdBid, Seat: engine.HumanSeat, Amount: amount})
}

// Pass passes for the human seat.
func (s *Session) Pass() error {
	return s.Submit(engine.Command{Kind: engine.CmdPass, Seat: engine.HumanSeat})
}

// DeclareMalzoum declares Malzoum for the human seat as forced dealer.
func (s *Session) DeclareMalzoum() error {
	return s.Submit(engine.Command{Kind: engine.CmdMalzoum, Seat: engine.HumanSeat})
}

// RequestRedeal pays a point to redeal as the forced dealer.
func (s *Session) RequestRedeal() error {
	return s.Submit(engine.Command{Kind: engine.CmdRedeal, Seat: engine.HumanSeat})
}

// ChooseTrump names the Hokum suit for the human buyer.
func (s *Session) ChooseTrump(suit uint8) error {
	return s.Submit(engine.Command{Kind: engine.CmdChooseTrump, Seat: engine.HumanSeat, Suit: suit})
}

// PlayCard plays the card with the given id from the human seat's hand.
func (s *Session) PlayCard(id uint8) error {
	return s.Submit(engine.Command{Kind: engine.CmdPlayCard, Seat: engine.HumanSeat, Card: engine.Card(id)})
}

// AcceptBound accepts the Bound offer.
func (s *Session) AcceptBound() error {
	return s.Submit(engine.Command{Kind: engine.CmdAcceptBound, Seat: engine.HumanSeat})
}

// DeclineBound declines the Bound offer.
func (s *Session) DeclineBound() error {
	return s.Submit(engine.Command{Kind: engine.CmdDeclineBound, Seat: engine.HumanSeat})
}

// StartRound deals the next round with dealer.
func (s *Session) StartRound(dealer engine.Seat) error {
	return s.Submit(engine.Command{Kind: engine.CmdStartRound, Seat: dealer})
}

// NextRound deals the next round with the scheduled dealer.
func (s *Session) NextRound() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return s.apply(engine.Command{Kind: engine.CmdStartRound, Seat: s.state.NextDealer})
}

// ResetMatch discards all scores and bound points.
func (s *Session) ResetMatch() error {
	return s.Submit(engine.Command{Kind: engine.CmdResetMatch})
}
