package engine

import "fmt"

// EventKind identifies what happened in an accepted transition.
type EventKind string

const (
	EventRoundStarted    EventKind = "round_started"
	EventSpecialDeal     EventKind = "special_deal"
	EventBidPlaced       EventKind = "bid_placed"
	EventBidPassed       EventKind = "bid_passed"
	EventDealerDecision  EventKind = "dealer_decision"
	EventMalzoumDeclared EventKind = "malzoum_declared"
	EventRedeal          EventKind = "redeal"
	EventAuctionWon      EventKind = "auction_won"
	EventTrumpChosen     EventKind = "trump_chosen"
	EventCardPlayed      EventKind = "card_played"
	EventYidhamman       EventKind = "yidhamman_activated"
	EventTrickWon        EventKind = "trick_won"
	EventBoundOffered    EventKind = "bound_offered"
	EventBoundAccepted   EventKind = "bound_accepted"
	EventBoundDeclined   EventKind = "bound_declined"
	EventContractMade    EventKind = "contract_made"
	EventContractFailed  EventKind = "contract_failed"
	EventRoundSettled    EventKind = "round_settled"
	EventMatchEnded      EventKind = "match_ended"
	EventMatchReset      EventKind = "match_reset"
)

// Event is one entry of the game log. Important marks entries the table
// should highlight.
type Event struct {
	Kind      EventKind
	Seat      Seat
	Team      Team
	Amount    int
	Card      Card
	Suit      uint8
	Scores    [2]int
	Important bool
	Text      string
}

type events []Event

func (l *events) add(e Event) { *l = append(*l, e) }

func (l *events) addf(kind EventKind, seat Seat, important bool, format string, args ...any) {
	l.add(Event{
		Kind:      kind,
		Seat:      seat,
		Card:      EmptyCard,
		Suit:      SuitJoker,
		Important: important,
		Text:      fmt.Sprintf(format, args...),
	})
}
