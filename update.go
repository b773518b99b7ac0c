package nnueaccum

import (
	"context"
	"log"

	"github.com/hailam/nnueaccum/features"
)

// Direction is which way along the stack an incremental update travels.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// updateIncremental applies one move's feature delta to target's
// accumulator (for size/perspective selected by acc), reading from
// source's already-computed accumulator. Forward reads target's own
// dirty-piece record in its natural (removed, added) order; Backward
// reads source's dirty-piece record with added and removed swapped,
// because walking backward along the stack applies the inverse of the
// move that produced source.
func updateIncremental(ft *FeatureTransformer, ksq, perspective int, target, source *AccumulatorState, acc accessor, dir Direction, m *Metrics) {
	var removed, added features.IndexList
	if dir == Forward {
		features.AppendChangedIndices(perspective, ksq, &target.Dirty, &removed, &added)
	} else {
		features.AppendChangedIndices(perspective, ksq, &source.Dirty, &added, &removed)
	}

	sa, ta := acc(source), acc(target)
	assert(sa.Computed[perspective], "update_incremental: source accumulator not computed")
	assert(!ta.Computed[perspective], "update_incremental: target accumulator already computed")

	applyFusedDelta(ft, ta, sa, perspective, removed.Slice(), added.Slice())
	ta.Computed[perspective] = true

	m.recordIncremental(context.Background(), dir, added.Size, removed.Size)
}

// applyFusedDelta performs the fused row-reduction step of
// update_incremental: it builds the op/row sequence for whichever of the
// four (|added|, |removed|) shapes applies — always at most 2 added and 2
// removed — and reduces both the hidden and PSQT accumulations in one pass
// each. FusedRowReduce16/32 pick the arch-specialized path for the 2-row
// shape and the portable path for 1, 3, or 4 rows.
func applyFusedDelta(ft *FeatureTransformer, target, source *Accumulator, perspective int, removed, added []int) {
	assert(len(added) >= 1 && len(added) <= 2, "fused update: added count out of range")
	assert(len(removed) >= 1 && len(removed) <= 2, "fused update: removed count out of range")

	var rows16 [4]Row16
	var rows32 [4]Row32
	n := 0
	for _, idx := range added {
		rows16[n] = Row16{Op: OpAdd, Weights: ft.row(idx)}
		rows32[n] = Row32{Op: OpAdd, Weights: ft.psqtRow(idx)}
		n++
	}
	for _, idx := range removed {
		rows16[n] = Row16{Op: OpSub, Weights: ft.row(idx)}
		rows32[n] = Row32{Op: OpSub, Weights: ft.psqtRow(idx)}
		n++
	}

	FusedRowReduce16(target.Accumulation[perspective], source.Accumulation[perspective], rows16[:n])
	FusedRowReduce32(target.PSQT[perspective], source.PSQT[perspective], rows32[:n])
}

// updateRefreshViaCache refreshes cache's entry for (ksq, perspective)
// against pos, then copies the entry's accumulator into target's (the
// finalization step of §4.6): memcpy plus marking Computed true.
func updateRefreshViaCache(ft *FeatureTransformer, pos Position, perspective, ksq int, target *AccumulatorState, cache *RefreshCache, acc accessor, m *Metrics) {
	entry := cache.Refresh(ft, pos, perspective, ksq)
	ta := acc(target)
	copy(ta.Accumulation[perspective], entry.Accumulation)
	copy(ta.PSQT[perspective], entry.PSQT)
	ta.Computed[perspective] = true

	m.recordRefresh(context.Background())
	if m != nil {
		log.Printf("nnueaccum: refresh ksq=%d perspective=%d fingerprint=%x", ksq, perspective, Fingerprint(pos))
	}
}
