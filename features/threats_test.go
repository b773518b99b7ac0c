package features

import "testing"

func TestThreatBucketKeySameHalf(t *testing.T) {
	// a1 (0) and d1 (3) are both on the a-d half.
	if threatBucketKey(0) != threatBucketKey(3) {
		t.Fatalf("a1 and d1 should share a threat bucket")
	}
}

func TestThreatBucketKeyOppositeHalf(t *testing.T) {
	// d1 (3) and e1 (4) sit on opposite halves.
	if threatBucketKey(3) == threatBucketKey(4) {
		t.Fatalf("d1 and e1 should sit in different threat buckets")
	}
}

func TestThreatRequiresRefreshWithinHalf(t *testing.T) {
	diff := &DirtyThreats{Us: White, PrevKsq: 0, Ksq: 3}
	if ThreatRequiresRefresh(diff, White) {
		t.Fatalf("king move within one board half should not require a threat refresh")
	}
}

func TestThreatRequiresRefreshAcrossHalf(t *testing.T) {
	diff := &DirtyThreats{Us: White, PrevKsq: 3, Ksq: 4}
	if !ThreatRequiresRefresh(diff, White) {
		t.Fatalf("king move crossing the a-d/e-h boundary should require a threat refresh")
	}
}

func TestThreatRequiresRefreshIgnoresOtherPerspective(t *testing.T) {
	diff := &DirtyThreats{Us: White, PrevKsq: 3, Ksq: 4}
	if ThreatRequiresRefresh(diff, Black) {
		t.Fatalf("a White king crossing must not require a refresh for Black's perspective")
	}
}

func TestThreatIndexListPushAndClear(t *testing.T) {
	var l ThreatIndexList
	l.Push(5)
	l.Push(10)
	if l.Size != 2 || l.Values[0] != 5 || l.Values[1] != 10 {
		t.Fatalf("unexpected list contents after Push: %+v", l)
	}
	l.Clear()
	if l.Size != 0 {
		t.Fatalf("Clear should reset Size to 0, got %d", l.Size)
	}
}

func TestThreatMapExcludesPawnAndSliderColumns(t *testing.T) {
	// Pawn (row 0) excludes columns 2, 4 and 5; bishop and rook (rows 2, 3)
	// exclude column 4 only (-1); these are pairs the network never trains on.
	if ThreatMap[0][2] != -1 {
		t.Fatalf("pawn attacks should exclude column 2, got %d", ThreatMap[0][2])
	}
	if ThreatMap[2][4] != -1 || ThreatMap[3][4] != -1 {
		t.Fatalf("bishop/rook attacks should exclude column 4")
	}
}

func TestNumValidTargetsZeroForEmptySquare(t *testing.T) {
	if NumValidTargets[NO_PIECE] != 0 {
		t.Fatalf("NumValidTargets[NO_PIECE] should be 0, got %d", NumValidTargets[NO_PIECE])
	}
	if NumValidTargets[W_KNIGHT] != 12 {
		t.Fatalf("NumValidTargets[W_KNIGHT] should be 12, got %d", NumValidTargets[W_KNIGHT])
	}
}
