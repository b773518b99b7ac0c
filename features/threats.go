package features

// ThreatName is the auxiliary attacker/attacked-piece feature set carried
// only by the big network. It shares the same DirtyPiece and Position
// interfaces as HalfKAv2_hm but indexes attack relationships instead of
// occupancy, and its bucket function is coarser (board half only), so it
// exercises the same requires_refresh/append_changed_indices shape with a
// different granularity.
const ThreatName = "Full_Threats(Friend)"

// ThreatHashValue is embedded in the evaluation file for this feature set.
const ThreatHashValue uint32 = 0x8f234cb8

// ThreatDimensions is the number of input rows this feature set contributes.
const ThreatDimensions = 79856

// ThreatMaxActiveDimensions bounds simultaneously active threat features.
const ThreatMaxActiveDimensions = 128

// NumValidTargets is the count of attackable piece types for each attacker
// piece; indexed by the half_ka_v2_hm Piece encoding.
var NumValidTargets = [PIECE_NB]int{
	0, 6, 12, 10, 10, 12, 8, 0,
	0, 6, 12, 10, 10, 12, 8, 0,
}

// ThreatOrientTBL orients a square for threat features: only the board half
// (a-d vs e-h file) matters, unlike HalfKAv2_hm's per-square orientation.
var ThreatOrientTBL = [SQUARE_NB]int{
	SQ_A1, SQ_A1, SQ_A1, SQ_A1, SQ_H1, SQ_H1, SQ_H1, SQ_H1,
	SQ_A1, SQ_A1, SQ_A1, SQ_A1, SQ_H1, SQ_H1, SQ_H1, SQ_H1,
	SQ_A1, SQ_A1, SQ_A1, SQ_A1, SQ_H1, SQ_H1, SQ_H1, SQ_H1,
	SQ_A1, SQ_A1, SQ_A1, SQ_A1, SQ_H1, SQ_H1, SQ_H1, SQ_H1,
	SQ_A1, SQ_A1, SQ_A1, SQ_A1, SQ_H1, SQ_H1, SQ_H1, SQ_H1,
	SQ_A1, SQ_A1, SQ_A1, SQ_A1, SQ_H1, SQ_H1, SQ_H1, SQ_H1,
	SQ_A1, SQ_A1, SQ_A1, SQ_A1, SQ_H1, SQ_H1, SQ_H1, SQ_H1,
	SQ_A1, SQ_A1, SQ_A1, SQ_A1, SQ_H1, SQ_H1, SQ_H1, SQ_H1,
}

// ThreatMap maps attacker type to attacked-type feature index; -1 excludes
// the pair (e.g. a pawn never meaningfully "threatens" a same-color king
// slot in this encoding).
var ThreatMap = [6][6]int{
	{0, 1, -1, 2, -1, -1}, // Pawn attacks
	{0, 1, 2, 3, 4, 5},    // Knight attacks
	{0, 1, 2, 3, -1, 4},   // Bishop attacks
	{0, 1, 2, 3, -1, 4},   // Rook attacks
	{0, 1, 2, 3, 4, 5},    // Queen attacks
	{0, 1, 2, 3, -1, -1},  // King attacks
}

// ThreatEntry is one changed attacker/attacked relationship.
type ThreatEntry struct {
	Attacker   int
	AttackerSq int
	Attacked   int
	AttackedSq int
	IsAddition bool
}

// DirtyThreats is the changed-threats record for one move, alongside the
// perspective's king square before and after (threat bucket boundary
// detection needs only these, not a full DirtyPiece).
type DirtyThreats struct {
	Us      int
	Ksq     int
	PrevKsq int
	List    []ThreatEntry
}

// threatBucketKey is the threat feature set's bucket function: board half
// only. Unlike HalfKAv2_hm's bucketKey, two squares on the same half
// legitimately share this value, so a king move within one half does not
// require a refresh.
func threatBucketKey(sq int) int {
	if ThreatOrientTBL[sq] == SQ_A1 {
		return 0
	}
	return 1
}

// ThreatRequiresRefresh reports whether diff's king movement crossed the
// threat feature set's (coarser) bucket boundary for perspective.
func ThreatRequiresRefresh(diff *DirtyThreats, perspective int) bool {
	return perspective == diff.Us && threatBucketKey(diff.PrevKsq) != threatBucketKey(diff.Ksq)
}

// ThreatIndexList is a fixed-capacity list of threat feature indices.
type ThreatIndexList struct {
	Values [ThreatMaxActiveDimensions]int
	Size   int
}

// Push adds an index to the list.
func (l *ThreatIndexList) Push(idx int) {
	l.Values[l.Size] = idx
	l.Size++
}

// Clear resets the list.
func (l *ThreatIndexList) Clear() {
	l.Size = 0
}
