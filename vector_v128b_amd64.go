//go:build amd64 && !noasm

package packed12

import "golang.org/x/sys/cpu"

// V128B is the SSE4-class back-end: 16-byte lanes, 16-byte alignment,
// processing 48 source bytes / 32 destination samples per block (via
// vectorDecodeBlocks/vectorEncodeBlocks/vectorEncodeLogBlocks in
// vector_kernel.go) before falling through to the scalar reference on the
// |src| mod 48 tail.
//
// A real SSE4 lowering would use PSHUFB for the byte permutations and
// PAND/PSLL/PSRL/POR for the mask/shift/combine steps; see
// internal/avogen. The portable-Go block functions this back-end calls
// implement that same gather-then-combine shape directly in Go
// (DESIGN.md), rather than hand-assembled PSHUFB/PAND/PSLL/PSRL/POR.
const (
	v128BBlockGroups = blockGroupsV128
	v128BAlignBytes  = 16
)

func DecodeV128B(src []byte, dst []uint16) int {
	return vectorDecode(src, dst, v128BBlockGroups, v128BAlignBytes, ErrSrcNotAligned16, ErrDstNotAligned16)
}

func EncodeV128B(src []uint16, dst []byte) int {
	return vectorEncode(src, dst, v128BBlockGroups, v128BAlignBytes, ErrSrcNotAligned16, ErrDstNotAligned16)
}

func EncodeLogInplaceV128B(buf []byte) int {
	return vectorEncodeLogInplace(buf, v128BBlockGroups, v128BAlignBytes, ErrSrcNotAligned16)
}

var backendV128B = backend{
	name:             "v128b-sse4",
	rank:             rankV128,
	decode:           DecodeV128B,
	encode:           EncodeV128B,
	encodeLogInplace: EncodeLogInplaceV128B,
}

func init() {
	if cpu.X86.HasSSE41 {
		registerBackend(backendV128B)
	}
}
