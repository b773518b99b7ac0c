// Package features computes NNUE feature indices for the HalfKAv2_hm
// feature set (king-relative piece placement) and its auxiliary
// full-threats companion set.
//
// Ported from Stockfish src/nnue/features/half_ka_v2_hm.h and .cpp.
package features

// Square constants.
const (
	SQ_A1 = 0
	SQ_H1 = 7
	SQ_A8 = 56
	SQ_H8 = 63

	SQ_NONE = 64

	SQUARE_NB = 64
)

// Color constants.
const (
	White = 0
	Black = 1

	COLOR_NB = 2
)

// Piece type constants.
const (
	NO_PIECE_TYPE = 0
	PAWN          = 1
	KNIGHT        = 2
	BISHOP        = 3
	ROOK          = 4
	QUEEN         = 5
	KING          = 6

	PIECE_TYPE_NB = 8
)

// Piece constants (color + type encoded: color = pc>>3, type = pc&7).
const (
	NO_PIECE = 0

	W_PAWN   = 1
	W_KNIGHT = 2
	W_BISHOP = 3
	W_ROOK   = 4
	W_QUEEN  = 5
	W_KING   = 6

	B_PAWN   = 9
	B_KNIGHT = 10
	B_BISHOP = 11
	B_ROOK   = 12
	B_QUEEN  = 13
	B_KING   = 14

	PIECE_NB = 16
)

// Unique number for each piece type on each square.
const (
	PS_NONE     = 0
	PS_W_PAWN   = 0
	PS_B_PAWN   = 1 * SQUARE_NB
	PS_W_KNIGHT = 2 * SQUARE_NB
	PS_B_KNIGHT = 3 * SQUARE_NB
	PS_W_BISHOP = 4 * SQUARE_NB
	PS_B_BISHOP = 5 * SQUARE_NB
	PS_W_ROOK   = 6 * SQUARE_NB
	PS_B_ROOK   = 7 * SQUARE_NB
	PS_W_QUEEN  = 8 * SQUARE_NB
	PS_B_QUEEN  = 9 * SQUARE_NB
	PS_KING     = 10 * SQUARE_NB
	PS_NB       = 11 * SQUARE_NB
)

// Name of the feature set, as embedded in a network file's description.
const Name = "HalfKAv2_hm(Friend)"

// HashValue is embedded in the evaluation file to detect a mismatched net.
const HashValue uint32 = 0x7f234cb8

// Dimensions is the number of input rows this feature set contributes.
const Dimensions = SQUARE_NB * PS_NB / 2 // = 22528

// MaxActiveDimensions bounds how many features can be active for one side
// in a legal chess position (used to size AppendActiveIndices buffers).
const MaxActiveDimensions = 32

// PieceSquareIndex maps piece to piece-square index for each perspective.
// Convention: W - us, B - them. Viewed from the other side, W and B swap.
var PieceSquareIndex = [COLOR_NB][PIECE_NB]int{
	// White perspective
	{PS_NONE, PS_W_PAWN, PS_W_KNIGHT, PS_W_BISHOP, PS_W_ROOK, PS_W_QUEEN, PS_KING, PS_NONE,
		PS_NONE, PS_B_PAWN, PS_B_KNIGHT, PS_B_BISHOP, PS_B_ROOK, PS_B_QUEEN, PS_KING, PS_NONE},
	// Black perspective
	{PS_NONE, PS_B_PAWN, PS_B_KNIGHT, PS_B_BISHOP, PS_B_ROOK, PS_B_QUEEN, PS_KING, PS_NONE,
		PS_NONE, PS_W_PAWN, PS_W_KNIGHT, PS_W_BISHOP, PS_W_ROOK, PS_W_QUEEN, PS_KING, PS_NONE},
}

// KingBuckets maps each king square to a bucket index, pre-multiplied by
// PS_NB. A square and its mirror across the d/e file split share a bucket
// number; orientation (OrientTBL) further distinguishes squares that
// KingBuckets alone does not.
var KingBuckets = [SQUARE_NB]int{
	28 * PS_NB, 29 * PS_NB, 30 * PS_NB, 31 * PS_NB, 31 * PS_NB, 30 * PS_NB, 29 * PS_NB, 28 * PS_NB,
	24 * PS_NB, 25 * PS_NB, 26 * PS_NB, 27 * PS_NB, 27 * PS_NB, 26 * PS_NB, 25 * PS_NB, 24 * PS_NB,
	20 * PS_NB, 21 * PS_NB, 22 * PS_NB, 23 * PS_NB, 23 * PS_NB, 22 * PS_NB, 21 * PS_NB, 20 * PS_NB,
	16 * PS_NB, 17 * PS_NB, 18 * PS_NB, 19 * PS_NB, 19 * PS_NB, 18 * PS_NB, 17 * PS_NB, 16 * PS_NB,
	12 * PS_NB, 13 * PS_NB, 14 * PS_NB, 15 * PS_NB, 15 * PS_NB, 14 * PS_NB, 13 * PS_NB, 12 * PS_NB,
	8 * PS_NB, 9 * PS_NB, 10 * PS_NB, 11 * PS_NB, 11 * PS_NB, 10 * PS_NB, 9 * PS_NB, 8 * PS_NB,
	4 * PS_NB, 5 * PS_NB, 6 * PS_NB, 7 * PS_NB, 7 * PS_NB, 6 * PS_NB, 5 * PS_NB, 4 * PS_NB,
	0 * PS_NB, 1 * PS_NB, 2 * PS_NB, 3 * PS_NB, 3 * PS_NB, 2 * PS_NB, 1 * PS_NB, 0 * PS_NB,
}

// OrientTBL orients a square according to the king square. SQ_H1 (xor 7)
// means flip horizontally, SQ_A1 (xor 0) means no flip; kings on the a..d
// files are flipped, so the king lives on the e..h files after orientation.
var OrientTBL = [SQUARE_NB]int{
	SQ_H1, SQ_H1, SQ_H1, SQ_H1, SQ_A1, SQ_A1, SQ_A1, SQ_A1,
	SQ_H1, SQ_H1, SQ_H1, SQ_H1, SQ_A1, SQ_A1, SQ_A1, SQ_A1,
	SQ_H1, SQ_H1, SQ_H1, SQ_H1, SQ_A1, SQ_A1, SQ_A1, SQ_A1,
	SQ_H1, SQ_H1, SQ_H1, SQ_H1, SQ_A1, SQ_A1, SQ_A1, SQ_A1,
	SQ_H1, SQ_H1, SQ_H1, SQ_H1, SQ_A1, SQ_A1, SQ_A1, SQ_A1,
	SQ_H1, SQ_H1, SQ_H1, SQ_H1, SQ_A1, SQ_A1, SQ_A1, SQ_A1,
	SQ_H1, SQ_H1, SQ_H1, SQ_H1, SQ_A1, SQ_A1, SQ_A1, SQ_A1,
	SQ_H1, SQ_H1, SQ_H1, SQ_H1, SQ_A1, SQ_A1, SQ_A1, SQ_A1,
}

// MakeIndex computes the feature index for a piece from a perspective.
// Ported from half_ka_v2_hm.cpp:32-36.
func MakeIndex(perspective, sq, pc, ksq int) int {
	flip := 56 * perspective
	return (sq ^ OrientTBL[ksq] ^ flip) + PieceSquareIndex[perspective][pc] + KingBuckets[ksq^flip]
}

// bucketKey combines KingBuckets and OrientTBL into one comparable value so
// requires_refresh can express "crossed a bucket boundary" directly instead
// of special-casing "any king move". For this feature set the two square
// tables have no pair of distinct squares sharing both components, so any
// king move changes bucketKey — but the comparison, not that fact, is what
// the code asserts.
func bucketKey(sq int) int {
	orient := 0
	if OrientTBL[sq] == SQ_A1 {
		orient = 1
	}
	return KingBuckets[sq]*2 + orient
}

// DirtyPiece is the minimal description of squares whose occupancy changed
// because of one move: up to 3 (piece, from, to) entries. A "removal"
// half-entry has To == SQ_NONE; an "addition" half-entry has From ==
// SQ_NONE. A quiet move or castling's king/rook leg uses 1 move entry each
// (castling is 2 total); a plain capture uses 1 move entry plus 1 removal;
// a promotion uses 1 removal (the pawn) plus 1 addition (the new piece);
// a promotion that also captures — the only 3-entry case — uses 2
// removals (pawn, captured piece) plus 1 addition (the new piece).
type DirtyPiece struct {
	Num  int
	Pc   [3]int
	From [3]int
	To   [3]int
}

// AddMove records a piece sliding from one square to another (a quiet move,
// the capturing piece of a capture, or one leg of castling).
func (dp *DirtyPiece) AddMove(pc, from, to int) {
	dp.Pc[dp.Num], dp.From[dp.Num], dp.To[dp.Num] = pc, from, to
	dp.Num++
}

// AddRemoval records a piece disappearing from a square (a capture).
func (dp *DirtyPiece) AddRemoval(pc, sq int) {
	dp.Pc[dp.Num], dp.From[dp.Num], dp.To[dp.Num] = pc, sq, SQ_NONE
	dp.Num++
}

// AddAddition records a piece appearing on a square (a promotion's new
// piece).
func (dp *DirtyPiece) AddAddition(pc, sq int) {
	dp.Pc[dp.Num], dp.From[dp.Num], dp.To[dp.Num] = pc, SQ_NONE, sq
	dp.Num++
}

// RequiresRefresh reports whether this change forces a full accumulator
// refresh for perspective: the perspective's king moved across a bucket
// boundary. Ported in spirit from half_ka_v2_hm.cpp:65-67, generalized to
// compare bucket identity rather than merely detecting a king move.
func RequiresRefresh(dp *DirtyPiece, perspective int) bool {
	for i := 0; i < dp.Num; i++ {
		pieceType := dp.Pc[i] & 7
		pieceColor := dp.Pc[i] >> 3
		if pieceType != KING || pieceColor != perspective {
			continue
		}
		if dp.From[i] == SQ_NONE || dp.To[i] == SQ_NONE {
			// A king can never be a pure addition/removal entry in a legal
			// move; treat the malformed case conservatively.
			return true
		}
		return bucketKey(dp.From[i]) != bucketKey(dp.To[i])
	}
	return false
}

// IndexList is a fixed-capacity list of feature indices, avoiding
// allocation on the hot incremental-update path.
type IndexList struct {
	Values [MaxActiveDimensions]int
	Size   int
}

// Push adds an index to the list.
func (l *IndexList) Push(idx int) {
	l.Values[l.Size] = idx
	l.Size++
}

// Clear resets the list.
func (l *IndexList) Clear() {
	l.Size = 0
}

// Slice returns the populated portion of the list.
func (l *IndexList) Slice() []int {
	return l.Values[:l.Size]
}

// Position is the query interface this package consumes; it never mutates
// or retains a Position.
type Position interface {
	KingSquare(color int) int
	PieceOn(sq int) int
	Pieces() uint64
}

// PopLSB pops and returns the least significant set bit's position, or -1
// if bb is empty.
func PopLSB(bb *uint64) int {
	if *bb == 0 {
		return -1
	}
	sq := TrailingZeros(*bb)
	*bb &= *bb - 1
	return sq
}

// TrailingZeros returns the number of trailing zero bits of bb.
func TrailingZeros(bb uint64) int {
	if bb == 0 {
		return 64
	}
	n := 0
	if bb&0xFFFFFFFF == 0 {
		n += 32
		bb >>= 32
	}
	if bb&0xFFFF == 0 {
		n += 16
		bb >>= 16
	}
	if bb&0xFF == 0 {
		n += 8
		bb >>= 8
	}
	if bb&0xF == 0 {
		n += 4
		bb >>= 4
	}
	if bb&0x3 == 0 {
		n += 2
		bb >>= 2
	}
	if bb&0x1 == 0 {
		n++
	}
	return n
}

// AppendActiveIndices lists every active feature for perspective in pos —
// the oracle used by full-refresh and by tests that check incremental
// results against a from-scratch sum. Ported from half_ka_v2_hm.cpp:40-48.
func AppendActiveIndices(perspective int, pos Position, active *IndexList) {
	ksq := pos.KingSquare(perspective)
	bb := pos.Pieces()
	for bb != 0 {
		sq := PopLSB(&bb)
		pc := pos.PieceOn(sq)
		if pc != NO_PIECE {
			active.Push(MakeIndex(perspective, sq, pc, ksq))
		}
	}
}

// AppendChangedIndices emits the feature indices vacated (removed) and
// occupied (added) by dp, from perspective, oriented around ksq. Ported
// from half_ka_v2_hm.cpp:52-63, generalized to the array-of-entries
// DirtyPiece.
func AppendChangedIndices(perspective, ksq int, dp *DirtyPiece, removed, added *IndexList) {
	for i := 0; i < dp.Num; i++ {
		if dp.From[i] != SQ_NONE {
			removed.Push(MakeIndex(perspective, dp.From[i], dp.Pc[i], ksq))
		}
		if dp.To[i] != SQ_NONE {
			added.Push(MakeIndex(perspective, dp.To[i], dp.Pc[i], ksq))
		}
	}
}

// IsKingMove reports whether pc is a king of either color.
func IsKingMove(pc int) bool {
	return (pc & 7) == KING
}
