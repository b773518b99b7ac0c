package nnueaccum

import (
	"testing"

	"github.com/hailam/nnueaccum/features"
)

func TestNewAccumulatorAllocatesBothPerspectives(t *testing.T) {
	acc := newAccumulator(16, 4)
	for p := 0; p < 2; p++ {
		if len(acc.Accumulation[p]) != 16 {
			t.Errorf("perspective %d: Accumulation length = %d, want 16", p, len(acc.Accumulation[p]))
		}
		if len(acc.PSQT[p]) != 4 {
			t.Errorf("perspective %d: PSQT length = %d, want 4", p, len(acc.PSQT[p]))
		}
		if acc.Computed[p] {
			t.Errorf("perspective %d: Computed should start false", p)
		}
	}
}

func TestAccumulatorStateResetClearsComputedFlags(t *testing.T) {
	var s AccumulatorState
	s.Big = newAccumulator(8, 2)
	s.Small = newAccumulator(4, 2)
	s.Big.Computed[0], s.Big.Computed[1] = true, true
	s.Small.Computed[0], s.Small.Computed[1] = true, true

	var dp features.DirtyPiece
	dp.AddMove(features.W_PAWN, 12, 20)
	s.Reset(dp)

	if s.Big.Computed[0] || s.Big.Computed[1] || s.Small.Computed[0] || s.Small.Computed[1] {
		t.Fatalf("Reset should clear every Computed flag")
	}
	if s.Dirty.Num != 1 || s.Dirty.Pc[0] != features.W_PAWN {
		t.Fatalf("Reset should install the new dirty-piece record, got %+v", s.Dirty)
	}
}

func TestAccessorsSelectDistinctAccumulators(t *testing.T) {
	var s AccumulatorState
	s.Big = newAccumulator(8, 2)
	s.Small = newAccumulator(4, 2)

	if bigAccessor(&s) != &s.Big {
		t.Errorf("bigAccessor should return &s.Big")
	}
	if smallAccessor(&s) != &s.Small {
		t.Errorf("smallAccessor should return &s.Small")
	}
}
