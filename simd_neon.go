//go:build arm64 && !goexperiment.simd

// Fused two-row reduction for ARM64 via NEON. The assembly implementing
// these is not present in this tree (see simd_arm64.s in the lineage this
// module continues from, which never shipped one either); this build tag
// is only live for an arm64 target without the experimental SIMD
// toolchain, which is not part of this module's supported build matrix
// yet.

package nnueaccum

//go:noescape
func neonFused2RowReduce16(out, in, r0, r1 []int16, op0, op1 Op)

//go:noescape
func neonFused2RowReduce32(out, in, r0, r1 []int32, op0, op1 Op)

func fused2RowReduce16(out, in []int16, op0 Op, r0 []int16, op1 Op, r1 []int16) {
	neonFused2RowReduce16(out, in, r0, r1, op0, op1)
}

func fused2RowReduce32(out, in []int32, op0 Op, r0 []int32, op1 Op, r1 []int32) {
	neonFused2RowReduce32(out, in, r0, r1, op0, op1)
}
