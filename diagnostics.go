package nnueaccum

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/hailam/nnueaccum/features"
)

// Fingerprint returns an xxhash-derived 64-bit value over pos's piece
// bitboards. It is stable for any two positions with identical occupancy
// and is used purely to correlate a stack/cache pair's log lines across a
// search — nothing in evaluation correctness depends on it.
func Fingerprint(pos Position) uint64 {
	var buf [64]byte
	binary.LittleEndian.PutUint64(buf[0:8], pos.PiecesByColor(features.White))
	binary.LittleEndian.PutUint64(buf[8:16], pos.PiecesByColor(features.Black))
	for pt := features.PAWN; pt <= features.KING; pt++ {
		off := 16 + (pt-1)*8
		binary.LittleEndian.PutUint64(buf[off:off+8], pos.PiecesByType(pt))
	}
	return xxhash.Sum64(buf[:])
}
