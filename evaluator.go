package nnueaccum

import "github.com/hailam/nnueaccum/features"

// Evaluator bundles a NetworkPair, RefreshCachePair, and AccumulatorStack
// behind the outer interface a search drives: reset once per search,
// push/pop per move, evaluate per leaf. The big/small specialization lives
// entirely in AccumulatorStack's accessor-parameterized methods; Evaluator
// just owns the three pieces together and forwards to them.
type Evaluator struct {
	Nets   NetworkPair
	Caches RefreshCachePair
	Stack  *AccumulatorStack
}

// NewEvaluator builds an Evaluator with a freshly allocated stack of
// capacity slots (see NewAccumulatorStack) and a refresh-cache pair for
// nets. metrics may be
// nil to disable diagnostics entirely.
func NewEvaluator(nets NetworkPair, capacity int, metrics *Metrics) *Evaluator {
	caches := NewRefreshCachePair(nets)
	stack := NewAccumulatorStack(capacity, nets.Big.HalfDimensions, nets.Small.HalfDimensions, nets.Big.PSQTBuckets)
	stack.Metrics = metrics
	return &Evaluator{Nets: nets, Caches: caches, Stack: stack}
}

// Reset re-roots the evaluator at pos, discarding any pushed plies.
func (e *Evaluator) Reset(pos Position) {
	e.Stack.Reset(pos, e.Nets, e.Caches)
}

// Push records one move's feature delta without evaluating it.
func (e *Evaluator) Push(dp features.DirtyPiece) {
	e.Stack.Push(dp)
}

// Pop retreats one ply.
func (e *Evaluator) Pop() {
	e.Stack.Pop()
}

// Evaluate makes the current ply's accumulators valid for both
// perspectives and both network sizes, then returns the top state.
func (e *Evaluator) Evaluate(pos Position) *AccumulatorState {
	e.Stack.Evaluate(pos, e.Nets, e.Caches)
	return e.Stack.Latest()
}

// Latest returns the current ply's accumulator state without evaluating it.
func (e *Evaluator) Latest() *AccumulatorState {
	return e.Stack.Latest()
}
