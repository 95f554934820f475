package deck

import (
	"fmt"
	"strings"
)

// Hand represents a collection of cards in the order they were given
type Hand []Card

// HandFromString parses a hand in the format of "KC KH KD 7C 5S"
// Tokens must be separated by a single space. Duplicate cards are accepted.
func HandFromString(s string) (Hand, error) {
	tokens := strings.Split(s, " ")
	if len(tokens) != HandSize {
		return nil, &MalformedHandError{
			Input:  s,
			Token:  -1,
			Reason: fmt.Sprintf("expected %d cards, got %d", HandSize, len(tokens)),
		}
	}

	hand := make(Hand, len(tokens))
	for i, token := range tokens {
		card, err := CardFromString(token)
		if err != nil {
			return nil, &MalformedHandError{
				Input:  s,
				Token:  i,
				Reason: err.Error(),
			}
		}

		hand[i] = card
	}

	return hand, nil
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Duplicates returns every card that appears more than once, in order of first repeat
func (h Hand) Duplicates() []Card {
	var dupes []Card
	for i, c := range h {
		if Hand(dupes).HasCard(c) {
			continue
		}

		if h[i+1:].HasCard(c) {
			dupes = append(dupes, c)
		}
	}

	return dupes
}

func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
