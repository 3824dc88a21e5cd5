package game

import (
	"github.com/google/uuid"
	engine "github.com/jason-s-yu/mushtara/engine"
)

// ObfSeat is one seat as seen by a viewer. Cards are revealed only for the
// viewer's own seat.
type ObfSeat struct {
	Seat      engine.Seat   `json:"seat"`
	Team      engine.Team   `json:"team"`
	CardCount int           `json:"cardCount"`
	Hand      []engine.Card `json:"hand,omitempty"`
	Source    string        `json:"source"`
	IsTurn    bool          `json:"isTurn"`
	IsDealer  bool          `json:"isDealer"`
}

// View is the match state tailored to one seat.
type View struct {
	SessionID uuid.UUID    `json:"sessionId"`
	Viewer    engine.Seat  `json:"viewer"`
	Phase     engine.Phase `json:"phase"`
	Token     uint64       `json:"token"`

	Hand  []engine.Card            `json:"hand"`
	Legal []engine.Card            `json:"legal,omitempty"` // playable cards when it is the viewer's turn
	Seats [engine.NumSeats]ObfSeat `json:"seats"`
	Turn  engine.Seat              `json:"turn"`

	Dealer     engine.Seat `json:"dealer"`
	NextDealer engine.Seat `json:"nextDealer"`
	DealLabel  string      `json:"dealLabel,omitempty"`

	HighBid    uint8           `json:"highBid"`
	HighBidder engine.Seat     `json:"highBidder"`
	Contract   engine.Contract `json:"contract"`

	Trick      []engine.Play `json:"trick"`
	LastTrick  []engine.Play `json:"lastTrick,omitempty"`
	LastWinner engine.Seat   `json:"lastWinner"`
	TrickIndex uint8         `json:"trickIndex"`
	TricksWon  [2]uint8      `json:"tricksWon"`
	Yidhamman  bool          `json:"yidhamman"`
	Bound      bool          `json:"bound"`

	RoundsPlayed int               `json:"roundsPlayed"`
	Scores       [2]int            `json:"scores"`
	BoundPoints  [2]int            `json:"boundPoints"`
	Settlement   engine.Settlement `json:"settlement"`

	Log []LogEntry `json:"log"`
}

// View generates a snapshot of the session for viewer. Other seats' hands
// appear only as card counts.
func (s *Session) View(viewer engine.Seat) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.state
	v := View{
		SessionID:    s.ID,
		Viewer:       viewer,
		Phase:        m.Phase,
		Token:        m.Token,
		Turn:         m.ActingSeat(),
		Dealer:       m.Dealer,
		NextDealer:   m.NextDealer,
		DealLabel:    m.DealLabel,
		HighBid:      m.Auction.HighBid,
		HighBidder:   m.Auction.HighBidder,
		Contract:     m.Contract,
		Trick:        plays(m.Round.Trick),
		LastTrick:    plays(m.Round.LastTrick),
		LastWinner:   m.Round.LastWinner,
		TrickIndex:   m.Round.TrickIndex,
		TricksWon:    m.Round.TricksWon,
		Yidhamman:    m.Round.Yidhamman,
		Bound:        m.Round.Bound,
		RoundsPlayed: m.RoundsPlayed,
		Scores:       m.Scores,
		BoundPoints:  m.BoundPoints,
		Settlement:   m.Settlement,
	}

	if viewer < engine.NumSeats {
		v.Hand = m.HandOf(viewer)
		if v.Turn == viewer && m.Phase == engine.PhasePlaying {
			v.Legal = m.LegalCards(viewer)
		}
	}

	counts := m.HandCounts()
	for i := range v.Seats {
		seat := engine.Seat(i)
		obf := ObfSeat{
			Seat:      seat,
			Team:      seat.Team(),
			CardCount: counts[i],
			Source:    sourceName(s.sources[i]),
			IsTurn:    v.Turn == seat,
			IsDealer:  m.Dealer == seat && m.Phase != engine.PhaseStart,
		}
		if seat == viewer {
			obf.Hand = v.Hand
		}
		v.Seats[i] = obf
	}

	v.Log = make([]LogEntry, len(s.events))
	copy(v.Log, s.events)
	return v
}

func plays(t engine.Trick) []engine.Play {
	out := make([]engine.Play, t.Len)
	copy(out, t.Plays[:t.Len])
	return out
}
