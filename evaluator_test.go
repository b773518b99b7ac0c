package nnueaccum

import (
	"testing"

	"github.com/hailam/nnueaccum/features"
)

func TestEvaluatorResetPushPopEvaluate(t *testing.T) {
	nets, _ := newTestNets()
	eval := NewEvaluator(nets, 8, nil)

	board := newTestBoard()
	board.place(features.White, features.KING, 4)
	board.place(features.Black, features.KING, 60)
	board.place(features.White, features.PAWN, 12)
	eval.Reset(board)

	rootAcc := append([]int16(nil), eval.Latest().Big.Accumulation[features.White]...)

	board.remove(12)
	board.place(features.White, features.PAWN, 20)
	var dp features.DirtyPiece
	dp.AddMove(features.W_PAWN, 12, 20)
	eval.Push(dp)

	state := eval.Evaluate(board)
	wantAcc, _ := oracleAccumulation(nets.Big, featuresPosition{board}, features.White)
	for i := range wantAcc {
		if state.Big.Accumulation[features.White][i] != wantAcc[i] {
			t.Errorf("Accumulation[%d] = %d, want %d", i, state.Big.Accumulation[features.White][i], wantAcc[i])
		}
	}

	board.remove(20)
	board.place(features.White, features.PAWN, 12)
	eval.Pop()

	got := eval.Latest().Big.Accumulation[features.White]
	for i := range rootAcc {
		if got[i] != rootAcc[i] {
			t.Errorf("Accumulation[%d] = %d, want %d after Pop", i, got[i], rootAcc[i])
		}
	}
}

func TestNewEvaluatorAcceptsNilMetrics(t *testing.T) {
	nets, _ := newTestNets()
	eval := NewEvaluator(nets, 4, nil)
	if eval.Stack.Metrics != nil {
		t.Fatalf("Stack.Metrics should stay nil when NewEvaluator is given nil")
	}

	board := newTestBoard()
	board.place(features.White, features.KING, 4)
	board.place(features.Black, features.KING, 60)
	eval.Reset(board) // must not panic with nil metrics
}
