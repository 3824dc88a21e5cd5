package engine

import "math/rand/v2"

// StandardDealLabel names the uniform deal.
const StandardDealLabel = "Standard Deal"

// DealShape is a themed set of cards handed to seat 0 before the rest of the
// pack is dealt normally.
type DealShape struct {
	Name        string
	Probability float64
	Cards       []Card
}

// DefaultShapes is the fixed special-deal table. The probabilities sum to
// 0.08, so the uniform deal covers the remaining 92%.
var DefaultShapes = []DealShape{
	{Name: "Both Jokers", Probability: 0.020, Cards: []Card{BigJoker, SmallJoker}},
	{Name: "Three Aces", Probability: 0.020, Cards: []Card{
		NewCard(SuitSpades, RankAce), NewCard(SuitHearts, RankAce), NewCard(SuitClubs, RankAce),
	}},
	{Name: "Long Spades", Probability: 0.015, Cards: suitRun(SuitSpades, RankAce, 7)},
	{Name: "Twin Crowns", Probability: 0.015, Cards: append(
		suitRun(SuitHearts, RankAce, 3), suitRun(SuitDiamonds, RankAce, 3)...,
	)},
	{Name: "Four Aces", Probability: 0.007, Cards: []Card{
		NewCard(SuitSpades, RankAce), NewCard(SuitHearts, RankAce),
		NewCard(SuitClubs, RankAce), NewCard(SuitDiamonds, RankAce),
	}},
	{Name: "Royal Court", Probability: 0.003, Cards: []Card{
		BigJoker, SmallJoker,
		NewCard(SuitSpades, RankAce), NewCard(SuitHearts, RankAce),
		NewCard(SuitSpades, RankKing), NewCard(SuitHearts, RankKing),
	}},
}

// suitRun returns n consecutive cards of suit counting down from top.
func suitRun(suit, top uint8, n int) []Card {
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewCard(suit, top-uint8(i)))
	}
	return out
}

// Deal is the result of distributing the pack.
type Deal struct {
	Hands   [NumSeats]Hand
	Label   string
	Special bool
}

// DealRound distributes a fresh pack. With specialDeals set, seat 0 may
// receive one of DefaultShapes.
func DealRound(r *rand.Rand, specialDeals bool) Deal {
	if !specialDeals {
		return uniformDeal(r)
	}
	return DealWith(r, DefaultShapes)
}

// DealWith runs the special-deal lottery against shapes. A shape that cannot
// produce four nine-card hands falls back to the uniform deal.
func DealWith(r *rand.Rand, shapes []DealShape) Deal {
	roll := r.Float64()
	cum := 0.0
	for _, shape := range shapes {
		cum += shape.Probability
		if roll >= cum {
			continue
		}
		if d, ok := shapedDeal(r, shape); ok {
			return d
		}
		break
	}
	return uniformDeal(r)
}

func uniformDeal(r *rand.Rand) Deal {
	pack := BuildPack()
	Shuffle(r, pack)

	var d Deal
	d.Label = StandardDealLabel
	for i, c := range pack {
		d.Hands[i%NumSeats].Add(c)
	}
	sortHands(&d)
	return d
}

func shapedDeal(r *rand.Rand, shape DealShape) (Deal, bool) {
	var d Deal
	rest := BuildPack()

	for _, c := range shape.Cards {
		idx := -1
		for i, pc := range rest {
			if pc == c {
				idx = i
				break
			}
		}
		if idx < 0 || !d.Hands[0].Add(c) {
			return Deal{}, false
		}
		rest = append(rest[:idx], rest[idx+1:]...)
	}

	Shuffle(r, rest)
	for len(rest) > 0 && d.Hands[0].Len < HandSize {
		d.Hands[0].Add(rest[0])
		rest = rest[1:]
	}
	for i, c := range rest {
		if !d.Hands[1+i%(NumSeats-1)].Add(c) {
			return Deal{}, false
		}
	}

	for s := range d.Hands {
		if d.Hands[s].Len != HandSize {
			return Deal{}, false
		}
	}
	d.Label = "Special Deal: " + shape.Name
	d.Special = true
	sortHands(&d)
	return d, true
}

func sortHands(d *Deal) {
	for s := range d.Hands {
		d.Hands[s].Sort()
	}
}
