package nnueaccum

import "github.com/hailam/nnueaccum/features"

// testBoard is a hand-rollable Position for exercising the accumulator
// engine without a real move generator: pieces are placed and removed
// directly, and testBoard derives every bitboard the Position interface
// needs from that placement.
type testBoard struct {
	king  [2]int
	board [64]int // features.NO_PIECE or a features.Piece constant
}

func newTestBoard() *testBoard {
	var b testBoard
	for i := range b.board {
		b.board[i] = features.NO_PIECE
	}
	return &b
}

func (b *testBoard) place(color, pieceType, sq int) {
	pc := color<<3 | pieceType
	b.board[sq] = pc
	if pieceType == features.KING {
		b.king[color] = sq
	}
}

func (b *testBoard) remove(sq int) {
	b.board[sq] = features.NO_PIECE
}

func (b *testBoard) KingSquare(color int) int { return b.king[color] }

func (b *testBoard) Pieces(color, pieceType int) uint64 {
	var bb uint64
	for sq, pc := range b.board {
		if pc == features.NO_PIECE {
			continue
		}
		if pc>>3 == color && pc&7 == pieceType {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}

func (b *testBoard) PiecesByColor(color int) uint64 {
	var bb uint64
	for sq, pc := range b.board {
		if pc != features.NO_PIECE && pc>>3 == color {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}

func (b *testBoard) PiecesByType(pieceType int) uint64 {
	var bb uint64
	for sq, pc := range b.board {
		if pc != features.NO_PIECE && pc&7 == pieceType {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}

// featuresPosition adapts testBoard to features.Position (PieceOn/Pieces()
// instead of the split by-color/by-type queries the root package uses),
// for driving the oracle AppendActiveIndices directly in tests.
type featuresPosition struct{ b *testBoard }

func (p featuresPosition) KingSquare(color int) int { return p.b.KingSquare(color) }
func (p featuresPosition) PieceOn(sq int) int       { return p.b.board[sq] }
func (p featuresPosition) Pieces() uint64 {
	var bb uint64
	for sq, pc := range p.b.board {
		if pc != features.NO_PIECE {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}

// smallTestNet builds a tiny deterministic FeatureTransformer for tests:
// weights are a simple function of (index, lane) so results are easy to
// hand-verify, and biases are all zero so refresh-of-empty-board is exactly
// the zero accumulator.
func smallTestNet(halfDims, psqtBuckets int) *FeatureTransformer {
	numIndices := features.Dimensions
	biases := make([]int16, halfDims)
	weights := make([]int16, numIndices*halfDims)
	psqt := make([]int32, numIndices*psqtBuckets)
	for idx := 0; idx < numIndices; idx++ {
		for lane := 0; lane < halfDims; lane++ {
			weights[idx*halfDims+lane] = int16((idx%7)*halfDims + lane%5)
		}
		for lane := 0; lane < psqtBuckets; lane++ {
			psqt[idx*psqtBuckets+lane] = int32(idx%11 + lane)
		}
	}
	ft, err := NewFeatureTransformer(halfDims, numIndices, psqtBuckets, biases, weights, psqt)
	if err != nil {
		panic(err)
	}
	return ft
}
