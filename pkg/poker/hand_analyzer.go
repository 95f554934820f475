package poker

import (
	"fmt"
	"pokerhands/pkg/deck"
	"sort"
	"strconv"
	"strings"
)

// count profiles, the number of cards sharing each distinct rank in descending order
const (
	profileHighCard     = "1,1,1,1,1"
	profilePair         = "2,1,1,1"
	profileTwoPair      = "2,2,1"
	profileThreeOfAKind = "3,1,1"
	profileFullHouse    = "3,2"
	profileFourOfAKind  = "4,1"
)

// HandAnalyzer can analyze a five-card hand
type HandAnalyzer struct {
	cards    deck.Hand
	counts   map[int]int
	ranks    []int
	flush    bool
	straight int
	profile  string

	category Category
	tieBreak []int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The order of the cards does not affect the analysis
func NewHandAnalyzer(cards deck.Hand) *HandAnalyzer {
	newCards := cards.Clone()
	sort.Sort(sort.Reverse(sortByRank(newCards)))

	h := &HandAnalyzer{
		cards: newCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()
	h.tieBreak = buildTieBreak(h.category, h.ranks, h.counts, h.straight)

	return h
}

// analyzeHand builds the rank counts and checks for a flush and a straight
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.counts = make(map[int]int)
	h.flush = len(h.cards) > 0

	for _, card := range h.cards {
		if h.counts[card.Rank] == 0 {
			// cards are sorted, so ranks are discovered in descending order
			h.ranks = append(h.ranks, card.Rank)
		}
		h.counts[card.Rank]++

		if card.Suit != h.cards[0].Suit {
			h.flush = false
		}
	}

	if high, ok := findStraight(h.ranks); ok {
		h.straight = high
	}

	profile := make([]int, 0, len(h.counts))
	for _, n := range h.counts {
		profile = append(profile, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(profile)))

	labels := make([]string, len(profile))
	for i, n := range profile {
		labels[i] = strconv.Itoa(n)
	}
	h.profile = strings.Join(labels, ",")
}

// calculateCategory maps the count profile onto a category
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateCategory() {
	switch h.profile {
	case profileHighCard:
		h.category = HighCard
		if h.flush {
			h.category = Flush
		}

		if h.straight > 0 {
			switch {
			case !h.flush:
				h.category = Straight
			case h.straight == deck.Ace:
				h.category = RoyalFlush
			default:
				h.category = StraightFlush
			}
		}
	case profilePair:
		h.category = OnePair
	case profileTwoPair:
		h.category = TwoPair
	case profileThreeOfAKind:
		h.category = ThreeOfAKind
	case profileFullHouse:
		h.category = FullHouse
	case profileFourOfAKind:
		h.category = FourOfAKind
	default:
		h.category = Unclassified
	}
}

// GetCategory returns the category of the hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// GetTieBreak returns the ordered values used to compare hands of the same category
func (h *HandAnalyzer) GetTieBreak() []int {
	tb := make([]int, len(h.tieBreak))
	copy(tb, h.tieBreak)
	return tb
}

// GetProfile returns the count profile, i.e., 3,2 for a full house
func (h *HandAnalyzer) GetProfile() string {
	return h.profile
}

// GetCounts returns a copy of the rank to count mapping
func (h *HandAnalyzer) GetCounts() map[int]int {
	counts := make(map[int]int, len(h.counts))
	for rank, n := range h.counts {
		counts[rank] = n
	}

	return counts
}

// GetFlush returns true if every card shares a suit
func (h *HandAnalyzer) GetFlush() bool {
	return h.flush
}

// GetStraight will return the high card of the straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// Classify returns the category and tie-break values of the cards
// An error is returned if the cards do not form a recognized five-card shape
func Classify(cards deck.Hand) (Category, []int, error) {
	h := NewHandAnalyzer(cards)
	if h.category == Unclassified {
		return Unclassified, nil, fmt.Errorf("%w: count profile %q", ErrUnclassified, h.profile)
	}

	return h.category, h.GetTieBreak(), nil
}
