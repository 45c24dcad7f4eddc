//go:build arm64 && !noasm

package packed12

import "golang.org/x/sys/cpu"

// V128A is the NEON-class back-end: 16-byte lanes, 16-byte alignment,
// processing 48 source bytes / 32 destination samples per block (via
// vectorDecodeBlocks/vectorEncodeBlocks/vectorEncodeLogBlocks in
// vector_kernel.go) before falling through to the scalar reference on the
// |src| mod 48 tail.
//
// A real NEON lowering would produce the high/low byte lanes with two
// table-lookup permutations (TBL) and combine them with shift/mask/OR;
// internal/avogen sketches only the amd64 (SSE4/AVX2) form of that
// lowering, not a NEON one. The portable-Go
// block functions this back-end calls implement that same gather-then-
// combine shape directly in Go (DESIGN.md), rather than hand-assembled
// TBL/USHR/AND/ORR sequences.
const (
	v128ABlockGroups = blockGroupsV128
	v128AAlignBytes  = 16
)

func DecodeV128A(src []byte, dst []uint16) int {
	return vectorDecode(src, dst, v128ABlockGroups, v128AAlignBytes, ErrSrcNotAligned16, ErrDstNotAligned16)
}

func EncodeV128A(src []uint16, dst []byte) int {
	return vectorEncode(src, dst, v128ABlockGroups, v128AAlignBytes, ErrSrcNotAligned16, ErrDstNotAligned16)
}

func EncodeLogInplaceV128A(buf []byte) int {
	return vectorEncodeLogInplace(buf, v128ABlockGroups, v128AAlignBytes, ErrSrcNotAligned16)
}

var backendV128A = backend{
	name:             "v128a-neon",
	rank:             rankV128,
	decode:           DecodeV128A,
	encode:           EncodeV128A,
	encodeLogInplace: EncodeLogInplaceV128A,
}

func init() {
	if cpu.ARM64.HasASIMD {
		registerBackend(backendV128A)
	}
}
