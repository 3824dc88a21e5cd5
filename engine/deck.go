package engine

import (
	"math/rand/v2"
	"slices"
)

const (
	PackSize = 36
	HandSize = 9
)

// BuildPack returns the fixed 36-card pack in canonical order: the four suits
// A..7 (plus the six for Spades and Hearts), then the big and small joker.
func BuildPack() []Card {
	pack := make([]Card, 0, PackSize)
	for suit := uint8(0); suit < NumSuits; suit++ {
		for rank := RankAce; rank >= RankSix; rank-- {
			if rank == RankSix && suit != SuitSpades && suit != SuitHearts {
				continue
			}
			pack = append(pack, NewCard(suit, rank))
		}
	}
	return append(pack, BigJoker, SmallJoker)
}

// Shuffle permutes cards in place with Fisher-Yates. IntN is unbiased, so every
// permutation is equally likely.
func Shuffle(r *rand.Rand, cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// ---------------------------------------------------------------------------
// Hand
// ---------------------------------------------------------------------------

// Hand is a fixed-capacity card set. Flat so MatchState copies stay deep.
type Hand struct {
	Cards [HandSize]Card
	Len   uint8
}

// List returns a copy of the cards currently held.
func (h Hand) List() []Card {
	out := make([]Card, h.Len)
	copy(out, h.Cards[:h.Len])
	return out
}

// Add appends c. It returns false when the hand is full.
func (h *Hand) Add(c Card) bool {
	if h.Len >= HandSize {
		return false
	}
	h.Cards[h.Len] = c
	h.Len++
	return true
}

// Remove deletes c while preserving the order of the remaining cards.
func (h *Hand) Remove(c Card) bool {
	for i := uint8(0); i < h.Len; i++ {
		if h.Cards[i] != c {
			continue
		}
		copy(h.Cards[i:h.Len], h.Cards[i+1:h.Len])
		h.Len--
		h.Cards[h.Len] = EmptyCard
		return true
	}
	return false
}

// Contains reports whether the hand holds c.
func (h Hand) Contains(c Card) bool {
	for i := uint8(0); i < h.Len; i++ {
		if h.Cards[i] == c {
			return true
		}
	}
	return false
}

// CountSuit returns how many non-joker cards of suit are held.
func (h Hand) CountSuit(suit uint8) int {
	n := 0
	for i := uint8(0); i < h.Len; i++ {
		if h.Cards[i].Suit() == suit && !h.Cards[i].IsJoker() {
			n++
		}
	}
	return n
}

// HasSuit reports whether any non-joker card of suit is held.
func (h Hand) HasSuit(suit uint8) bool { return h.CountSuit(suit) > 0 }

// NonJokers returns the number of standard cards held.
func (h Hand) NonJokers() int {
	n := 0
	for i := uint8(0); i < h.Len; i++ {
		if !h.Cards[i].IsJoker() {
			n++
		}
	}
	return n
}

func (h Hand) fullMask() uint16 { return uint16(1)<<h.Len - 1 }

// Sort orders the hand for display: jokers last, then suit in S,H,C,D order,
// then ascending value. Legality never depends on this order.
func (h *Hand) Sort() {
	slices.SortStableFunc(h.Cards[:h.Len], func(a, b Card) int {
		return sortKey(a) - sortKey(b)
	})
}

func sortKey(c Card) int {
	if c.IsJoker() {
		return 1000 + c.Value()
	}
	return int(c.Suit())*100 + c.Value()
}
