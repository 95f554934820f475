package poker

import "pokerhands/pkg/deck"

// findStraight returns the highest rank of the straight formed by the distinct ranks
// ranks must be sorted in descending order
// A wheel (A-2-3-4-5) plays the ace low, so its high rank is 5
func findStraight(ranks []int) (int, bool) {
	if len(ranks) != deck.HandSize {
		return 0, false
	}

	run := ranks
	if isWheel(ranks) {
		run = make([]int, 0, len(ranks))
		run = append(run, ranks[1:]...)
		run = append(run, deck.LowAce)
	}

	for i := 1; i < len(run); i++ {
		if run[i]+1 != run[i-1] {
			return 0, false
		}
	}

	return run[0], true
}

// isWheel returns true if the ranks are exactly A, 5, 4, 3, 2
func isWheel(ranks []int) bool {
	wheel := []int{deck.Ace, 5, 4, 3, 2}
	if len(ranks) != len(wheel) {
		return false
	}

	for i, rank := range wheel {
		if ranks[i] != rank {
			return false
		}
	}

	return true
}
