package deck

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

var rankCodes = map[byte]int{
	'2': 2,
	'3': 3,
	'4': 4,
	'5': 5,
	'6': 6,
	'7': 7,
	'8': 8,
	'9': 9,
	'T': 10,
	'J': Jack,
	'Q': Queen,
	'K': King,
	'A': Ace,
}

var suitCodes = map[byte]Suit{
	'H': Hearts,
	'C': Clubs,
	'D': Diamonds,
	'S': Spades,
}

// String returns the compact token for the card, i.e., KC
func (c Card) String() string {
	var rank string
	switch c.Rank {
	case 10:
		rank = "T"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "C"
	case Diamonds:
		suit = "D"
	case Hearts:
		suit = "H"
	case Spades:
		suit = "S"
	default:
		panic(fmt.Sprintf("unknown suit: %q", c.Suit))
	}

	return rank + suit
}

// Pretty returns the card with a suit glyph, i.e., K♣
func (c Card) Pretty() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic(fmt.Sprintf("unknown suit: %q", c.Suit))
	}

	return c.String()[:1] + suit
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// CardFromString returns a Card from a two character token.
// The first character is the value (2-9, T, J, Q, K, A) and the second is the suit (H, C, D, S)
func CardFromString(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("token %q must be exactly 2 characters", s)
	}

	rank, ok := rankCodes[s[0]]
	if !ok {
		return Card{}, fmt.Errorf("token %q has unknown value %q", s, s[0])
	}

	suit, ok := suitCodes[s[1]]
	if !ok {
		return Card{}, fmt.Errorf("token %q has unknown suit %q", s, s[1])
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// MustCardFromString is like CardFromString but panics on bad input
// Useful for tests and constants
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}
