package nnueaccum

import "github.com/hailam/nnueaccum/features"

// AccumulatorStack is the per-search ply stack of AccumulatorState: slot 0
// is the root position, and each push/pop tracks a search thread's current
// move path without ever reallocating once constructed.
type AccumulatorStack struct {
	slots      []AccumulatorState
	currentIdx int

	// Metrics is an optional diagnostics sink; nil disables it entirely.
	Metrics *Metrics
}

// NewAccumulatorStack allocates a stack of capacity slots (slot 0 is the
// root), both network sizes' accumulators preallocated for every slot.
// Push keeps one slot spare, so at most capacity-1 plies, root included,
// are live at once.
func NewAccumulatorStack(capacity, halfDimsBig, halfDimsSmall, psqtBuckets int) *AccumulatorStack {
	slots := make([]AccumulatorState, capacity)
	for i := range slots {
		slots[i].Big = newAccumulator(halfDimsBig, psqtBuckets)
		slots[i].Small = newAccumulator(halfDimsSmall, psqtBuckets)
	}
	return &AccumulatorStack{slots: slots}
}

// Reset discards all pushed plies and fully refreshes slot 0 (the new root)
// for both perspectives and both network sizes from rootPos.
func (s *AccumulatorStack) Reset(rootPos Position, nets NetworkPair, caches RefreshCachePair) {
	s.currentIdx = 1
	for _, perspective := range [2]int{features.White, features.Black} {
		ksq := rootPos.KingSquare(perspective)
		updateRefreshViaCache(nets.Big, rootPos, perspective, ksq, &s.slots[0], caches.Big, bigAccessor, s.Metrics)
		updateRefreshViaCache(nets.Small, rootPos, perspective, ksq, &s.slots[0], caches.Small, smallAccessor, s.Metrics)
	}
}

// Push advances the stack by one ply, recording dp as that ply's move and
// marking both sizes' accumulators not-computed for both perspectives.
// Nothing is evaluated until Evaluate is next called.
func (s *AccumulatorStack) Push(dp features.DirtyPiece) {
	assert(s.currentIdx+1 < len(s.slots), "accumulator stack: push exceeds capacity")
	s.slots[s.currentIdx].Reset(dp)
	s.currentIdx++
}

// Pop retreats the stack by one ply. The root (slot 0) can never be popped.
func (s *AccumulatorStack) Pop() {
	assert(s.currentIdx > 1, "accumulator stack: pop below root")
	s.currentIdx--
}

// Latest returns the current ply's AccumulatorState.
func (s *AccumulatorStack) Latest() *AccumulatorState {
	return &s.slots[s.currentIdx-1]
}

// findLastUsableAccumulator walks backward from the current ply, looking
// for either an already-computed accumulator or a ply whose
// move crossed a bucket boundary for perspective (which can never be
// skipped over incrementally). It returns that ply's index, or 0 if the
// scan reaches the root without finding either — the root is always
// computed, so the scan terminates.
func (s *AccumulatorStack) findLastUsableAccumulator(perspective int, acc accessor) int {
	for k := s.currentIdx - 1; k > 0; k-- {
		if acc(&s.slots[k]).Computed[perspective] {
			return k
		}
		if features.RequiresRefresh(&s.slots[k].Dirty, perspective) {
			return k
		}
	}
	return 0
}

// forwardUpdateIncremental fills every ply from begin+1 up to (and
// including) the current one, each derived from its immediate predecessor.
// begin's accumulator must already be computed for perspective.
func (s *AccumulatorStack) forwardUpdateIncremental(perspective int, pos Position, ft *FeatureTransformer, acc accessor, begin int) {
	ksq := pos.KingSquare(perspective)
	for next := begin + 1; next < s.currentIdx; next++ {
		updateIncremental(ft, ksq, perspective, &s.slots[next], &s.slots[next-1], acc, Forward, s.Metrics)
	}
}

// backwardUpdateIncremental fills every ply from the one just below the
// current down to end, each derived from its immediate successor. The
// current ply's accumulator must already be computed for perspective
// (Latest is refreshed directly before this runs).
func (s *AccumulatorStack) backwardUpdateIncremental(perspective int, pos Position, ft *FeatureTransformer, acc accessor, end int) {
	ksq := pos.KingSquare(perspective)
	for next := s.currentIdx - 2; next >= end; next-- {
		updateIncremental(ft, ksq, perspective, &s.slots[next], &s.slots[next+1], acc, Backward, s.Metrics)
	}
}

// EvaluateSide makes the current ply's accumulator valid for one
// perspective and one network size. It finds the nearest usable ancestor;
// if that ancestor is itself computed, the whole span from there to the
// current ply fills forward. Otherwise the ancestor sits past a bucket
// boundary, so the current ply is refreshed directly from cache and the
// span back down to the ancestor fills backward instead.
func (s *AccumulatorStack) EvaluateSide(perspective int, pos Position, ft *FeatureTransformer, cache *RefreshCache, acc accessor) {
	if acc(s.Latest()).Computed[perspective] {
		return
	}

	begin := s.findLastUsableAccumulator(perspective, acc)

	if acc(&s.slots[begin]).Computed[perspective] {
		s.forwardUpdateIncremental(perspective, pos, ft, acc, begin)
	} else {
		ksq := pos.KingSquare(perspective)
		updateRefreshViaCache(ft, pos, perspective, ksq, s.Latest(), cache, acc, s.Metrics)
		s.backwardUpdateIncremental(perspective, pos, ft, acc, begin)
	}
}

// Evaluate makes the current ply's accumulators valid for both
// perspectives, both network sizes.
func (s *AccumulatorStack) Evaluate(pos Position, nets NetworkPair, caches RefreshCachePair) {
	for _, perspective := range [2]int{features.White, features.Black} {
		s.EvaluateSide(perspective, pos, nets.Big, caches.Big, bigAccessor)
		s.EvaluateSide(perspective, pos, nets.Small, caches.Small, smallAccessor)
	}
}
