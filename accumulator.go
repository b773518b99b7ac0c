package nnueaccum

import "github.com/hailam/nnueaccum/features"

// Accumulator holds one network size's pre-activation state for both
// perspectives: the hidden-layer accumulation vector and its parallel PSQT
// vector, each gated by a per-perspective Computed flag. Raw vector
// contents are meaningless until Computed is true.
type Accumulator struct {
	Accumulation [2][]int16
	PSQT         [2][]int32
	Computed     [2]bool
}

// newAccumulator allocates an Accumulator sized for halfDims hidden lanes
// and psqtBuckets PSQT lanes per perspective. Allocation happens once, at
// construction, never again on the hot path.
func newAccumulator(halfDims, psqtBuckets int) Accumulator {
	var a Accumulator
	for p := 0; p < 2; p++ {
		a.Accumulation[p] = make([]int16, halfDims)
		a.PSQT[p] = make([]int32, psqtBuckets)
	}
	return a
}

// AccumulatorState is one ply's record: both network sizes' accumulators
// plus the dirty-piece description of the move that produced this ply.
type AccumulatorState struct {
	Big   Accumulator
	Small Accumulator
	Dirty features.DirtyPiece
}

// Reset clears both sizes' Computed flags for both perspectives and
// installs dp as the move record for this ply. Vector contents are left
// as-is; they become meaningful again only once Computed is set true by
// an update path.
func (s *AccumulatorState) Reset(dp features.DirtyPiece) {
	s.Dirty = dp
	s.Big.Computed[0], s.Big.Computed[1] = false, false
	s.Small.Computed[0], s.Small.Computed[1] = false, false
}

// accessor selects one network size's Accumulator out of an
// AccumulatorState, letting the update routines in stack.go/update.go be
// written once and instantiated for both sizes (the "(Width D,
// slot-accessor) pair" of the design notes).
type accessor func(s *AccumulatorState) *Accumulator

// bigAccessor selects the big network's accumulator.
func bigAccessor(s *AccumulatorState) *Accumulator { return &s.Big }

// smallAccessor selects the small network's accumulator.
func smallAccessor(s *AccumulatorState) *Accumulator { return &s.Small }
