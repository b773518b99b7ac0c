package nnueaccum

import (
	"fmt"
	"log"

	"github.com/hailam/nnueaccum/common"
)

// Position is the query interface the engine consumes. It never mutates or
// retains a Position; every call happens synchronously inside Reset or
// Evaluate.
// Bitboards are 64-bit with LSB = a1.
type Position interface {
	// KingSquare is square<KING>(color).
	KingSquare(color int) int
	// Pieces is pieces(color, pieceType): squares occupied by a piece of
	// that color and type. pieceType uses the features package's PAWN..KING
	// constants (1..6).
	Pieces(color, pieceType int) uint64
	// PiecesByColor is pieces(color): every square occupied by that color.
	PiecesByColor(color int) uint64
	// PiecesByType is pieces(pieceType): every square occupied by a piece
	// of that type, either color.
	PiecesByType(pieceType int) uint64
}

// FeatureTransformer is the consumed network interface: the linear part of
// the NNUE that maps sparse binary features onto the accumulator. Loading
// its weights from a file is out of scope for this package — a caller
// constructs one from whatever weights it already has in memory.
type FeatureTransformer struct {
	HalfDimensions int
	PSQTBuckets    int
	NumIndices     int

	Biases []int16

	// Weights is row-major: index i occupies Weights[i*HalfDimensions : (i+1)*HalfDimensions].
	Weights []int16
	// PSQTWeights is row-major: index i occupies PSQTWeights[i*PSQTBuckets : (i+1)*PSQTBuckets].
	PSQTWeights []int32
}

// NewFeatureTransformer builds a FeatureTransformer over already-decoded
// weights. It does not copy its slice arguments. Malformed dimensions are a
// construction-time error, not a programmer-enforced assertion: a caller
// may be decoding an untrusted or corrupted network file.
func NewFeatureTransformer(halfDims, numIndices, psqtBuckets int, biases []int16, weights []int16, psqtWeights []int32) (*FeatureTransformer, error) {
	if len(biases) != halfDims {
		return nil, fmt.Errorf("nnueaccum: feature transformer: biases length %d, want %d", len(biases), halfDims)
	}
	if len(weights) != numIndices*halfDims {
		return nil, fmt.Errorf("nnueaccum: feature transformer: weights length %d, want %d", len(weights), numIndices*halfDims)
	}
	if len(psqtWeights) != numIndices*psqtBuckets {
		return nil, fmt.Errorf("nnueaccum: feature transformer: psqt weights length %d, want %d", len(psqtWeights), numIndices*psqtBuckets)
	}

	regWidth := common.MaxSimdWidth / 2 // int16 lanes per widest SIMD register this module tiles against
	log.Printf("nnueaccum: feature transformer halfDims=%d numIndices=%d regs=%d(width=%d)",
		halfDims, numIndices, common.NumRegs(halfDims, regWidth), regWidth)

	return &FeatureTransformer{
		HalfDimensions: halfDims,
		PSQTBuckets:    psqtBuckets,
		NumIndices:     numIndices,
		Biases:         biases,
		Weights:        weights,
		PSQTWeights:    psqtWeights,
	}, nil
}

// row returns the weight row for feature index idx.
func (ft *FeatureTransformer) row(idx int) []int16 {
	return ft.Weights[idx*ft.HalfDimensions : (idx+1)*ft.HalfDimensions]
}

// psqtRow returns the PSQT weight row for feature index idx.
func (ft *FeatureTransformer) psqtRow(idx int) []int32 {
	return ft.PSQTWeights[idx*ft.PSQTBuckets : (idx+1)*ft.PSQTBuckets]
}

// NetworkPair bundles the big and small networks' feature transformers.
// The two sizes are updated by the same code, parameterized by accessor,
// never duplicated.
type NetworkPair struct {
	Big   *FeatureTransformer
	Small *FeatureTransformer
}
