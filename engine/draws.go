package engine

// IsDrawByRule reports whether the position is a draw under the
// fifty-move rule or threefold repetition. Named after the source's
// HasPositionOccuredBefore-adjacent is_draw_by_rule, but deliberately
// scoped to the engine-level rule (repetition counting over
// hashHistory, fifty-move over halfmoveClock) rather than any
// search-avoidance heuristic — spec.md §9 Open Question 5 keeps
// "avoid even a single repetition" policy out of the engine and in
// whichever AI wants it.
func (b *Board) IsDrawByRule() bool {
	return b.halfmoveClock >= 100 || b.IsThreefoldRepetition()
}

// IsThreefoldRepetition reports whether the current position's Zobrist
// hash has occurred three or more times in hashHistory (which includes
// the current position itself).
func (b *Board) IsThreefoldRepetition() bool {
	target := b.zobristHash
	count := 0
	for _, h := range b.hashHistory {
		if h == target {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
