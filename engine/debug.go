//go:build chessforge_debug

package engine

// assertValid panics if the board's derived indices have drifted from its
// squares array. Only compiled into builds tagged chessforge_debug;
// release builds get the no-op in debug_release.go instead. Grounded on
// goosemg's Apply/Validate panic-on-illegal-state style, scoped down to a
// build-tagged assertion since spec.md §7 treats this as a debugging aid,
// not a release-path check.
func (b *Board) assertValid() {
	if !b.validate() {
		panic("engine: board invariants violated")
	}
}
