package common

import "testing"

func TestCeilToMultipleExactMultiple(t *testing.T) {
	if got := CeilToMultiple(16, 8); got != 16 {
		t.Errorf("CeilToMultiple(16, 8) = %d, want 16", got)
	}
}

func TestCeilToMultipleRoundsUp(t *testing.T) {
	if got := CeilToMultiple(17, 8); got != 24 {
		t.Errorf("CeilToMultiple(17, 8) = %d, want 24", got)
	}
}

func TestNumRegsCoversPartialTile(t *testing.T) {
	if got := NumRegs(1024, 16); got != 64 {
		t.Errorf("NumRegs(1024, 16) = %d, want 64", got)
	}
	if got := NumRegs(1025, 16); got != 65 {
		t.Errorf("NumRegs(1025, 16) = %d, want 65", got)
	}
}
