package poker

import (
	"errors"
	"fmt"
)

// ErrUnclassified is returned when the cards match none of the known count profiles
var ErrUnclassified = errors.New("hand could not be classified")

// Category is the classification of a hand, i.e., royal flush
type Category int

// Constants for category
// The values are ordered, a higher category beats a lower one
const (
	Unclassified Category = -1

	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case Unclassified:
		return "Unclassified"
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// MarshalText encodes the category by name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category from its name
func (c *Category) UnmarshalText(text []byte) error {
	for cat := Unclassified; cat <= RoyalFlush; cat++ {
		if cat != 0 && cat.String() == string(text) {
			*c = cat
			return nil
		}
	}

	return fmt.Errorf("unknown category: %q", text)
}

// Result is the outcome of comparing one hand against another
type Result int

// Constants for result, from the perspective of the first hand
const (
	Win Result = iota
	Loss
	Draw
)

func (r Result) String() string {
	switch r {
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	case Draw:
		return "Draw"
	default:
		panic(fmt.Sprintf("unknown result: %d", r))
	}
}

// MarshalText encodes the result by name
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a result from its name
func (r *Result) UnmarshalText(text []byte) error {
	for res := Win; res <= Draw; res++ {
		if res.String() == string(text) {
			*r = res
			return nil
		}
	}

	return fmt.Errorf("unknown result: %q", text)
}

// Reverse returns the result from the other hand's perspective
func (r Result) Reverse() Result {
	switch r {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return r
	}
}
