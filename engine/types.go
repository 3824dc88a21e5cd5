package engine

// Suit constants, packed into the upper 4 bits of Card. The order S,H,C,D is the
// fixed order used for display sorting and tie-breaking.
const (
	SuitSpades   uint8 = 0
	SuitHearts   uint8 = 1
	SuitClubs    uint8 = 2
	SuitDiamonds uint8 = 3
	SuitJoker    uint8 = 4 // jokers carry no real suit
)

// NumSuits is the number of real suits.
const NumSuits = 4

// Rank constants, packed into the lower 4 bits of Card. Standard ranks equal
// their base value.
const (
	RankSix   uint8 = 6
	RankSeven uint8 = 7
	RankEight uint8 = 8
	RankNine  uint8 = 9
	RankTen   uint8 = 10
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
	RankAce   uint8 = 14

	RankSmallJoker uint8 = 1
	RankBigJoker   uint8 = 2
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
// The packed byte doubles as the card's unique id.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// BigJoker and SmallJoker are the two jokers of the pack.
const (
	BigJoker   = Card(SuitJoker<<4 | RankBigJoker)
	SmallJoker = Card(SuitJoker<<4 | RankSmallJoker)
)

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// ID returns the card's unique identifier.
func (c Card) ID() uint8 { return uint8(c) }

// IsJoker reports whether c is either joker.
func (c Card) IsJoker() bool { return c.Suit() == SuitJoker && c != EmptyCard }

// CardKind distinguishes standard cards from the two jokers.
type CardKind uint8

const (
	KindStandard CardKind = iota
	KindBigJoker
	KindSmallJoker
)

// Kind returns the card's kind.
func (c Card) Kind() CardKind {
	switch c {
	case BigJoker:
		return KindBigJoker
	case SmallJoker:
		return KindSmallJoker
	}
	return KindStandard
}

// Value returns the numeric base value of the card.
//   - Big joker → 20, small joker → 19
//   - Ace → 14, King → 13, Queen → 12, Jack → 11
//   - Ten..Six → face value
func (c Card) Value() int {
	switch c {
	case BigJoker:
		return 20
	case SmallJoker:
		return 19
	case EmptyCard:
		return 0
	}
	return int(c.Rank())
}

var suitLetters = [...]string{"S", "H", "C", "D"}

// SuitString returns the one-letter name of a real suit, or "" for jokers.
func SuitString(s uint8) string {
	if int(s) < len(suitLetters) {
		return suitLetters[s]
	}
	return ""
}

// ParseSuit converts a one-letter suit name to its constant.
func ParseSuit(s string) (uint8, bool) {
	for i, l := range suitLetters {
		if l == s {
			return uint8(i), true
		}
	}
	return 0, false
}

// RankString returns the display label of the card's rank.
func (c Card) RankString() string {
	switch c {
	case BigJoker:
		return "JN"
	case SmallJoker:
		return "NQ"
	}
	switch c.Rank() {
	case RankAce:
		return "A"
	case RankKing:
		return "K"
	case RankQueen:
		return "Q"
	case RankJack:
		return "J"
	case RankTen:
		return "10"
	case RankSix, RankSeven, RankEight, RankNine:
		return string(rune('0' + c.Rank()))
	}
	return "?"
}

// String renders the card as rank followed by suit letter, e.g. "10H" or "JN".
func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	if c.IsJoker() {
		return c.RankString()
	}
	return c.RankString() + SuitString(c.Suit())
}

// ---------------------------------------------------------------------------
// Seats and teams
// ---------------------------------------------------------------------------

// NumSeats is the fixed table size.
const NumSeats = 4

// Seat identifies a table position 0–3.
type Seat uint8

// HumanSeat is the seat controlled by the local player.
const HumanSeat Seat = 0

// NoSeat marks an unset seat reference.
const NoSeat Seat = 0xFF

var nextSeat = [NumSeats]Seat{3, 0, 1, 2}

// Next returns the seat that acts after s. Play runs 0→3→2→1→0.
func (s Seat) Next() Seat { return nextSeat[s] }

// Team returns the team the seat belongs to.
func (s Seat) Team() Team {
	if s%2 == 0 {
		return TeamA
	}
	return TeamB
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat { return (s + 2) % NumSeats }

// Team identifies a partnership: TeamA = seats {0,2}, TeamB = seats {1,3}.
type Team uint8

const (
	TeamA Team = 0
	TeamB Team = 1
)

// Other returns the opposing team.
func (t Team) Other() Team { return 1 - t }

func (t Team) String() string {
	if t == TeamA {
		return "A"
	}
	return "B"
}

// ---------------------------------------------------------------------------
// Phases
// ---------------------------------------------------------------------------

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	PhaseStart         Phase = "start"
	PhaseBidding       Phase = "bidding"
	PhaseChoosingTrump Phase = "choosing-trump"
	PhasePlaying       Phase = "playing"
	PhaseBoundOffer    Phase = "bound-offer"
	PhaseRoundEnd      Phase = "round-end"
	PhaseMatchEnd      Phase = "match-end"
)

// AuctionStage is the sub-state of the bidding phase.
type AuctionStage uint8

const (
	AuctionOpen           AuctionStage = iota // seats bid or pass in turn
	AuctionDealerDecision                     // everyone passed, dealer must act
	AuctionClosed                             // buyer known, trump pending
)

// ---------------------------------------------------------------------------
// Auction, contract and round records
// ---------------------------------------------------------------------------

// Bid limits. NoBid is the sentinel below the minimum biddable amount.
const (
	NoBid     = 5
	MinBid    = 6
	MaxBid    = 8
	Inzelli   = 8
	TricksPer = 9
)

// AuctionState tracks one lap of calls.
type AuctionState struct {
	Stage        AuctionStage
	HighBid      uint8
	HighBidder   Seat
	Calls        uint8
	Passed       uint8 // bitmask by seat
	DealerForced bool
}

// HasPassed reports whether seat passed in this auction.
func (a AuctionState) HasPassed(s Seat) bool { return a.Passed&(1<<s) != 0 }

// Contract is the outcome of the auction. Trump is set once, after the buyer
// is known; the record is otherwise immutable for the round.
type Contract struct {
	Buyer       Seat
	Amount      uint8
	Trump       uint8
	TrumpChosen bool
	Malzoum     bool
}

// BuyerTeam returns the team holding the contract.
func (c Contract) BuyerTeam() Team { return c.Buyer.Team() }

// MaxLosses is the number of tricks the defenders may take before the
// contract fails.
func (c Contract) MaxLosses() uint8 { return TricksPer - c.Amount }

// Play is a single card played into a trick.
type Play struct {
	Seat Seat
	Card Card
}

// Trick holds up to four plays in order.
type Trick struct {
	Plays [NumSeats]Play
	Len   uint8
}

// Lead returns the first card of the trick, or EmptyCard if none.
func (t Trick) Lead() Card {
	if t.Len == 0 {
		return EmptyCard
	}
	return t.Plays[0].Card
}

// Has reports whether seat already played to the trick.
func (t Trick) Has(s Seat) bool {
	for i := uint8(0); i < t.Len; i++ {
		if t.Plays[i].Seat == s {
			return true
		}
	}
	return false
}

// RoundState is the per-round trick bookkeeping.
type RoundState struct {
	Trick            Trick
	LastTrick        Trick
	LastWinner       Seat
	TrickIndex       uint8 // 1..9
	TricksWon        [2]uint8
	SmallJokerPlayed bool
	Yidhamman        bool
	Bound            bool
}

// CompletedTricks returns the number of tricks scored so far this round.
func (r RoundState) CompletedTricks() uint8 { return r.TricksWon[0] + r.TricksWon[1] }
