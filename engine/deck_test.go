package engine

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildPack verifies the 36-card pack composition.
func TestBuildPack(t *testing.T) {
	pack := BuildPack()
	require.Len(t, pack, PackSize)

	seen := make(map[Card]bool)
	perSuit := make(map[uint8]int)
	jokers := 0
	for _, c := range pack {
		require.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
		if c.IsJoker() {
			jokers++
			continue
		}
		perSuit[c.Suit()]++
		if c.Rank() == RankSix {
			assert.Contains(t, []uint8{SuitSpades, SuitHearts}, c.Suit(), "unexpected six %s", c)
		}
	}
	assert.Equal(t, 2, jokers)
	assert.Equal(t, 9, perSuit[SuitSpades])
	assert.Equal(t, 9, perSuit[SuitHearts])
	assert.Equal(t, 8, perSuit[SuitClubs])
	assert.Equal(t, 8, perSuit[SuitDiamonds])
	assert.True(t, seen[BigJoker])
	assert.True(t, seen[SmallJoker])
}

// TestCardEncoding verifies suit, rank, value and labels.
func TestCardEncoding(t *testing.T) {
	c := NewCard(SuitHearts, RankTen)
	assert.Equal(t, SuitHearts, c.Suit())
	assert.Equal(t, RankTen, c.Rank())
	assert.Equal(t, 10, c.Value())
	assert.Equal(t, "10H", c.String())
	assert.Equal(t, KindStandard, c.Kind())

	assert.Equal(t, 20, BigJoker.Value())
	assert.Equal(t, 19, SmallJoker.Value())
	assert.Equal(t, KindBigJoker, BigJoker.Kind())
	assert.Equal(t, KindSmallJoker, SmallJoker.Kind())
	assert.Equal(t, "JN", BigJoker.String())
	assert.Equal(t, "NQ", SmallJoker.String())
	assert.Equal(t, "AS", NewCard(SuitSpades, RankAce).String())
	assert.Equal(t, "6H", NewCard(SuitHearts, RankSix).String())
	assert.False(t, EmptyCard.IsJoker())
}

// TestSeatsAndTeams verifies turn order and partnerships.
func TestSeatsAndTeams(t *testing.T) {
	order := []Seat{0}
	for s := Seat(0).Next(); s != 0; s = s.Next() {
		order = append(order, s)
	}
	assert.Equal(t, []Seat{0, 3, 2, 1}, order)

	assert.Equal(t, TeamA, Seat(0).Team())
	assert.Equal(t, TeamA, Seat(2).Team())
	assert.Equal(t, TeamB, Seat(1).Team())
	assert.Equal(t, TeamB, Seat(3).Team())
	assert.Equal(t, Seat(2), Seat(0).Partner())
	assert.Equal(t, Seat(1), Seat(3).Partner())
	assert.Equal(t, TeamB, TeamA.Other())
}

// TestShufflePreservesCards verifies shuffling only reorders the pack.
func TestShufflePreservesCards(t *testing.T) {
	pack := BuildPack()
	shuffled := BuildPack()
	Shuffle(rand.New(rand.NewPCG(1, 2)), shuffled)

	assert.NotEqual(t, pack, shuffled)
	slices.Sort(pack)
	slices.Sort(shuffled)
	assert.Equal(t, pack, shuffled)
}

// TestHandOps exercises add, remove and suit queries.
func TestHandOps(t *testing.T) {
	var h Hand
	for _, c := range []Card{card(SuitSpades, RankAce), card(SuitHearts, RankSix), BigJoker} {
		require.True(t, h.Add(c))
	}
	assert.True(t, h.Contains(BigJoker))
	assert.True(t, h.HasSuit(SuitSpades))
	assert.False(t, h.HasSuit(SuitClubs))
	assert.Equal(t, 2, h.NonJokers())

	require.True(t, h.Remove(card(SuitSpades, RankAce)))
	assert.False(t, h.Remove(card(SuitSpades, RankAce)))
	assert.Equal(t, []Card{card(SuitHearts, RankSix), BigJoker}, h.List())

	var full Hand
	for i := 0; i < HandSize; i++ {
		require.True(t, full.Add(BuildPack()[i]))
	}
	assert.False(t, full.Add(SmallJoker))
	assert.Equal(t, uint16(0x1FF), full.fullMask())
}

// TestHandSort verifies suits in S,H,C,D order with jokers last.
func TestHandSort(t *testing.T) {
	var h Hand
	for _, c := range []Card{SmallJoker, card(SuitDiamonds, RankAce), card(SuitSpades, RankSeven), BigJoker, card(SuitSpades, RankSix)} {
		h.Add(c)
	}
	h.Sort()
	assert.Equal(t, []Card{
		card(SuitSpades, RankSix), card(SuitSpades, RankSeven),
		card(SuitDiamonds, RankAce), SmallJoker, BigJoker,
	}, h.List())
}
