package poker

import (
	"fmt"
	"pokerhands/pkg/deck"
	"sort"
)

// Hand is an evaluated five-card hand
// A Hand is immutable and safe for concurrent use
type Hand struct {
	cards    deck.Hand
	category Category
	tieBreak []int
}

// NewHand evaluates the cards
func NewHand(cards deck.Hand) (*Hand, error) {
	if len(cards) != deck.HandSize {
		return nil, fmt.Errorf("%w: expected %d cards, got %d", ErrUnclassified, deck.HandSize, len(cards))
	}

	category, tieBreak, err := Classify(cards)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cards, err)
	}

	return &Hand{
		cards:    cards.Clone(),
		category: category,
		tieBreak: tieBreak,
	}, nil
}

// ParseHand parses and evaluates a hand in the format of "KC KH KD 7C 5S"
func ParseHand(s string) (*Hand, error) {
	cards, err := deck.HandFromString(s)
	if err != nil {
		return nil, err
	}

	return NewHand(cards)
}

// MustParseHand is like ParseHand but panics on error
func MustParseHand(s string) *Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}

	return h
}

// Cards returns a copy of the cards in the order they were given
func (h *Hand) Cards() deck.Hand {
	return h.cards.Clone()
}

// Category returns the category of the hand
func (h *Hand) Category() Category {
	return h.category
}

// TieBreak returns a copy of the values used to break ties within a category
func (h *Hand) TieBreak() []int {
	tb := make([]int, len(h.tieBreak))
	copy(tb, h.tieBreak)
	return tb
}

// Total returns the sum of the card values
func (h *Hand) Total() int {
	total := 0
	for _, card := range h.cards {
		total += card.Rank
	}

	return total
}

func (h *Hand) String() string {
	return h.cards.String()
}

// Compare returns the result of h against other
func (h *Hand) Compare(other *Hand) Result {
	if h.category > other.category {
		return Win
	} else if h.category < other.category {
		return Loss
	}

	n := len(h.tieBreak)
	if len(other.tieBreak) < n {
		n = len(other.tieBreak)
	}

	for i := 0; i < n; i++ {
		if h.tieBreak[i] > other.tieBreak[i] {
			return Win
		} else if h.tieBreak[i] < other.tieBreak[i] {
			return Loss
		}
	}

	// unreachable for two valid hands, the key length is fixed per category
	if len(h.tieBreak) > len(other.tieBreak) {
		return Win
	} else if len(h.tieBreak) < len(other.tieBreak) {
		return Loss
	}

	return Draw
}

// Compare parses both hands and returns the result of a against b
func Compare(a, b string) (Result, error) {
	handA, err := ParseHand(a)
	if err != nil {
		return 0, err
	}

	handB, err := ParseHand(b)
	if err != nil {
		return 0, err
	}

	return handA.Compare(handB), nil
}

// SortHands orders the hands from strongest to weakest using pairwise comparisons
// Hands that draw keep their relative order
func SortHands(hands []*Hand) []*Hand {
	sorted := make([]*Hand, len(hands))
	copy(sorted, hands)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) == Win
	})

	return sorted
}
