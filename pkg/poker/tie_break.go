package poker

// buildTieBreak returns the ordered comparison keys for a category
// ranks must hold the distinct ranks in descending order
func buildTieBreak(category Category, ranks []int, counts map[int]int, straight int) []int {
	keys := make([]int, 0, len(ranks))

	switch category {
	case HighCard, Flush:
		keys = append(keys, ranks...)
	case Straight, StraightFlush, RoyalFlush:
		keys = append(keys, straight)
	case OnePair, ThreeOfAKind, FourOfAKind:
		keys = appendWhere(keys, ranks, func(rank int) bool { return counts[rank] != 1 })
		keys = appendWhere(keys, ranks, func(rank int) bool { return counts[rank] == 1 })
	case FullHouse:
		keys = appendWhere(keys, ranks, func(rank int) bool { return counts[rank] == 3 })
		keys = appendWhere(keys, ranks, func(rank int) bool { return counts[rank] == 2 })
	case TwoPair:
		// the pairs are already in descending order
		keys = appendWhere(keys, ranks, func(rank int) bool { return counts[rank] == 2 })
		keys = appendWhere(keys, ranks, func(rank int) bool { return counts[rank] == 1 })
	}

	return keys
}

func appendWhere(keys []int, ranks []int, fn func(rank int) bool) []int {
	for _, rank := range ranks {
		if fn(rank) {
			keys = append(keys, rank)
		}
	}

	return keys
}
