package nnueaccum

import "github.com/hailam/nnueaccum/features"

// RefreshCacheEntry is a mutable snapshot for one (king-square,
// perspective) pair: the accumulator it last produced, plus the piece
// bitboards (by color, by type) of the position that produced it. The
// bitboards are the only source of truth for what the entry represents —
// an entry keyed by king-square ks may hold a snapshot of any position that
// happened to share that king-square.
type RefreshCacheEntry struct {
	Accumulation []int16
	PSQT         []int32
	ByColorBB    [2]uint64
	ByTypeBB     [6]uint64 // index pt-1 for features.PAWN..KING
}

// RefreshCache is the dense 64×2 table of RefreshCacheEntry for one
// network size. It is allocated once and persists across searches; a
// single cache must never be shared between two concurrently running
// stacks, since refresh both reads and writes the entry it touches.
type RefreshCache struct {
	Entries [64][2]RefreshCacheEntry
}

// NewRefreshCache builds a zero-initialized cache for ft: every entry's
// bitboards start at zero (the "empty board" position) and its
// accumulation starts at ft's biases, which is the correct accumulator for
// an empty board (no active features to add).
func NewRefreshCache(ft *FeatureTransformer) *RefreshCache {
	rc := &RefreshCache{}
	for ksq := 0; ksq < 64; ksq++ {
		for p := 0; p < 2; p++ {
			e := &rc.Entries[ksq][p]
			e.Accumulation = make([]int16, ft.HalfDimensions)
			copy(e.Accumulation, ft.Biases)
			e.PSQT = make([]int32, ft.PSQTBuckets)
		}
	}
	return rc
}

// RefreshCachePair bundles the big and small networks' caches, mirroring
// NetworkPair.
type RefreshCachePair struct {
	Big   *RefreshCache
	Small *RefreshCache
}

// NewRefreshCachePair builds both caches from a NetworkPair.
func NewRefreshCachePair(nets NetworkPair) RefreshCachePair {
	return RefreshCachePair{
		Big:   NewRefreshCache(nets.Big),
		Small: NewRefreshCache(nets.Small),
	}
}

// pieceAt encodes (color, pieceType) into the features package's combined
// Piece constant (color<<3 | pieceType).
func pieceAt(color, pieceType int) int {
	return color<<3 | pieceType
}

// Refresh implements the differential refresh of §4.4: for every (color,
// piece type), diff the entry's last-known occupancy against pos's current
// occupancy, apply the resulting fused delta to the entry's accumulator,
// then overwrite the entry's bitboards from pos. It returns the refreshed
// entry, now coherent with pos (invariant I4 / property P5).
func (rc *RefreshCache) Refresh(ft *FeatureTransformer, pos Position, perspective, ksq int) *RefreshCacheEntry {
	entry := &rc.Entries[ksq][perspective]

	var removed, added features.IndexList
	for color := 0; color < 2; color++ {
		for pt := features.PAWN; pt <= features.KING; pt++ {
			oldBB := entry.ByColorBB[color] & entry.ByTypeBB[pt-1]
			newBB := pos.Pieces(color, pt)
			toRemove := oldBB &^ newBB
			toAdd := newBB &^ oldBB
			pc := pieceAt(color, pt)
			for toRemove != 0 {
				sq := features.PopLSB(&toRemove)
				removed.Push(features.MakeIndex(perspective, sq, pc, ksq))
			}
			for toAdd != 0 {
				sq := features.PopLSB(&toAdd)
				added.Push(features.MakeIndex(perspective, sq, pc, ksq))
			}
		}
	}

	var rows16 [2 * features.MaxActiveDimensions]Row16
	var rows32 [2 * features.MaxActiveDimensions]Row32
	n := 0
	for _, idx := range added.Slice() {
		rows16[n] = Row16{Op: OpAdd, Weights: ft.row(idx)}
		rows32[n] = Row32{Op: OpAdd, Weights: ft.psqtRow(idx)}
		n++
	}
	for _, idx := range removed.Slice() {
		rows16[n] = Row16{Op: OpSub, Weights: ft.row(idx)}
		rows32[n] = Row32{Op: OpSub, Weights: ft.psqtRow(idx)}
		n++
	}
	if n > 0 {
		FusedRowReduce16(entry.Accumulation, entry.Accumulation, rows16[:n])
		FusedRowReduce32(entry.PSQT, entry.PSQT, rows32[:n])
	}

	entry.ByColorBB[features.White] = pos.PiecesByColor(features.White)
	entry.ByColorBB[features.Black] = pos.PiecesByColor(features.Black)
	for pt := features.PAWN; pt <= features.KING; pt++ {
		entry.ByTypeBB[pt-1] = pos.PiecesByType(pt)
	}

	return entry
}
