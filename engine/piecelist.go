package engine

// maxPieceListLen bounds the number of squares a single (color, type) piece
// list can ever hold. 10 comfortably covers the worst case of promoting
// every pawn to the same piece type while the original two pieces of that
// type survive; real games never come close.
const maxPieceListLen = 10

// PieceList is an unordered set of squares occupied by one (color, type)
// class of non-king piece. It supports O(1) add, remove, and move by
// keeping a dense array of occupied squares alongside an inverse index
// (square -> slot) so a removal can swap the removed slot with the last
// slot instead of shifting the array.
//
// Grounded on the swap-remove shape spec.md §4.5/§9 calls out explicitly
// ("Piece list with swap-remove ... keep this — it is what makes move
// generation cheap"); the teacher's goosemg package skips piece lists
// entirely in favor of bitboard-only occupancy, so this structure is new
// code written in the teacher's idiom (plain arrays, no container types)
// rather than adapted from a teacher file.
type PieceList struct {
	squares [maxPieceListLen]Square
	slotOf  [64]int8 // slotOf[sq] = index into squares, or -1 if absent
	count   int8
}

// NewPieceList returns an empty piece list.
func NewPieceList() PieceList {
	pl := PieceList{}
	for i := range pl.slotOf {
		pl.slotOf[i] = -1
	}
	return pl
}

// Len returns the number of squares currently tracked.
func (pl *PieceList) Len() int { return int(pl.count) }

// Contains reports whether sq is tracked by this list.
func (pl *PieceList) Contains(sq Square) bool { return pl.slotOf[sq] >= 0 }

// Squares returns the tracked squares. The slice aliases the list's backing
// array; callers must not retain it across a mutation.
func (pl *PieceList) Squares() []Square { return pl.squares[:pl.count] }

// Add inserts sq. Adding a square already present is a no-op.
func (pl *PieceList) Add(sq Square) {
	if pl.slotOf[sq] >= 0 {
		return
	}
	slot := pl.count
	pl.squares[slot] = sq
	pl.slotOf[sq] = slot
	pl.count++
}

// Remove deletes sq by swapping it with the last occupied slot.
func (pl *PieceList) Remove(sq Square) {
	slot := pl.slotOf[sq]
	if slot < 0 {
		return
	}
	last := pl.count - 1
	lastSq := pl.squares[last]
	pl.squares[slot] = lastSq
	pl.slotOf[lastSq] = slot
	pl.slotOf[sq] = -1
	pl.count = last
}

// Move relocates a tracked piece from `from` to `to` in place, preserving
// its slot (cheaper than Remove+Add, and preserves Squares() iteration
// order for callers that rely on slot stability within a single ply).
func (pl *PieceList) Move(from, to Square) {
	slot := pl.slotOf[from]
	if slot < 0 {
		return
	}
	pl.squares[slot] = to
	pl.slotOf[from] = -1
	pl.slotOf[to] = slot
}
