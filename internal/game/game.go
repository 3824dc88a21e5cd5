// Package game hosts a Mushtara match for a local table: it owns the
// authoritative engine state, routes decisions to human or automated seats,
// and keeps the append-only event log.
package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	engine "github.com/jason-s-yu/mushtara/engine"
	"github.com/sirupsen/logrus"
)

// ErrSessionClosed is returned for commands submitted after Close.
var ErrSessionClosed = errors.New("session closed")

// LogEntry is one event of the session log.
type LogEntry struct {
	ID    uuid.UUID `json:"id"`
	At    time.Time `json:"at"`
	Round int       `json:"round"`
	engine.Event
}

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Seed       uint64
	Rules      engine.Rules
	Sources    [engine.NumSeats]DecisionSource
	ThinkDelay time.Duration
	Scheduler  Scheduler
	Logger     logrus.FieldLogger

	// OnEvent is called for every logged event, with the session lock held.
	OnEvent func(LogEntry)
}

// Session represents a single table: one match, four seats.
type Session struct {
	ID uuid.UUID // Unique identifier for this session.

	mu      sync.Mutex
	state   engine.MatchState // The authoritative match state.
	sources [engine.NumSeats]DecisionSource
	closed  bool

	// Decision pacing
	thinkDelay time.Duration
	scheduler  Scheduler
	pending    Task // Scheduled automated decision, if any.

	events  []LogEntry
	onEvent func(LogEntry)
	log     *logrus.Entry
}

// NewSession creates a session with a fresh match. No cards are dealt until
// StartRound.
func NewSession(opts Options) *Session {
	id, _ := uuid.NewRandom()

	s := &Session{
		ID:         id,
		state:      engine.NewMatch(opts.Seed, opts.Rules),
		sources:    opts.Sources,
		thinkDelay: opts.ThinkDelay,
		scheduler:  opts.Scheduler,
		onEvent:    opts.OnEvent,
	}
	for seat, src := range s.sources {
		if src == nil {
			s.sources[seat] = DefaultSources()[seat]
		}
	}
	if s.scheduler == nil {
		s.scheduler = TimerScheduler{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s.log = logger.WithField("session", id.String())
	return s
}

// Close cancels any pending automated decision. Further commands fail with
// ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopPending()
}

// State returns a snapshot of the match state.
func (s *Session) State() engine.MatchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Events returns a copy of the event log.
func (s *Session) Events() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LogEntry, len(s.events))
	copy(out, s.events)
	return out
}

// Source returns the decision source of seat.
func (s *Session) Source(seat engine.Seat) DecisionSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sources[seat]
}

// fields returns the standard log fields for the current state.
// Assumes lock is held by caller.
func (s *Session) fields() logrus.Fields {
	return logrus.Fields{
		"round": s.state.RoundsPlayed + 1,
		"seat":  s.state.ActingSeat(),
		"phase": s.state.Phase,
	}
}

// record appends events to the log and forwards them to OnEvent.
// Assumes lock is held by caller.
func (s *Session) record(evs []engine.Event) {
	now := time.Now()
	for _, ev := range evs {
		id, _ := uuid.NewRandom()
		entry := LogEntry{ID: id, At: now, Round: s.state.RoundsPlayed + 1, Event: ev}
		if ev.Kind == engine.EventRoundSettled || ev.Kind == engine.EventMatchEnded {
			entry.Round = s.state.RoundsPlayed
		}
		s.events = append(s.events, entry)

		if ev.Important {
			s.log.WithFields(s.fields()).WithField("event", ev.Kind).Info(ev.Text)
		}
		if s.onEvent != nil {
			s.onEvent(entry)
		}
	}
}
