//go:build amd64 && !noasm

package packed12

import "golang.org/x/sys/cpu"

// V256 is the AVX2-class back-end: 32-byte lanes, 32-byte alignment,
// processing 96 source bytes / 64 destination samples per block (via
// vectorDecodeBlocks/vectorEncodeBlocks/vectorEncodeLogBlocks in
// vector_kernel.go) before falling through to the scalar reference on the
// |src| mod 96 tail.
//
// A real AVX2 lowering operates on two independent 128-bit halves sharing
// control masks duplicated across halves, since the 12-byte stride
// doesn't divide 32; VPALIGNR-style inter-half stitching lines up each
// 32-byte load with the next 12-byte group across 8-block
// superiterations. The portable-Go block functions this back-end calls
// implement the same gather-then-combine shape a pair of such halves
// would produce, directly in Go. The v==1024 log-compansion boundary
// agrees with the scalar reference by construction, since both run the
// same linear16ToLog12 (logencode.go); see DESIGN.md.
const (
	v256BlockGroups = blockGroupsV256
	v256AlignBytes  = 32
)

func DecodeV256(src []byte, dst []uint16) int {
	return vectorDecode(src, dst, v256BlockGroups, v256AlignBytes, ErrSrcNotAligned32, ErrDstNotAligned32)
}

func EncodeV256(src []uint16, dst []byte) int {
	return vectorEncode(src, dst, v256BlockGroups, v256AlignBytes, ErrSrcNotAligned32, ErrDstNotAligned32)
}

func EncodeLogInplaceV256(buf []byte) int {
	return vectorEncodeLogInplace(buf, v256BlockGroups, v256AlignBytes, ErrSrcNotAligned32)
}

var backendV256 = backend{
	name:             "v256-avx2",
	rank:             rankV256,
	decode:           DecodeV256,
	encode:           EncodeV256,
	encodeLogInplace: EncodeLogInplaceV256,
}

func init() {
	if cpu.X86.HasAVX2 {
		registerBackend(backendV256)
	}
}
