//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file sketches the SSE4/AVX2 lowering of the decodeLanes gather +
// shift/mask/OR combine that vectorDecodeBlocks (vector_kernel.go)
// performs in portable Go: for each of the 8 output samples per group, a
// "high" source byte is shifted into the word's upper bits and a "low"
// source byte contributes the rest, masked and OR'd together.
//
// decodeShuffleHi/decodeShuffleLo are PSHUFB control vectors: byte 2*k
// picks decodeLanes[k]'s hiByte/loByte out of a 16-byte load, byte 2*k+1
// is 0x80 (PSHUFB zeroes the destination byte for any control byte with
// bit 7 set), so each resulting word is the raw source byte value
// zero-extended to 16 bits — no separate widen step needed.
//
// decodeLanes alternates between two shift amounts by lane parity (8 for
// even lanes, 4 for odd), which no single PSLLW/PSRLW can produce across
// all 8 lanes at once. The combine splits into an even-lane path shifted
// by 8/0 and an odd-lane path shifted by 4, each masked down to its own
// lanes by a dedicated constant, then OR'd back together — the technique
// a real kernel needs for a per-lane-parity shift width.
var (
	decodeShuffleHi   = GLOBL("decodeShuffleHi", RODATA|NOPTR)
	decodeShuffleLo   = GLOBL("decodeShuffleLo", RODATA|NOPTR)
	decodeHiEvenMask  = GLOBL("decodeHiEvenMask", RODATA|NOPTR)
	decodeHiOddMask   = GLOBL("decodeHiOddMask", RODATA|NOPTR)
	decodeLoEvenMask  = GLOBL("decodeLoEvenMask", RODATA|NOPTR)
	decodeLoOddMask   = GLOBL("decodeLoOddMask", RODATA|NOPTR)
)

// decodeHiByteIdx/decodeLoByteIdx are decodeLanes' hiByte/loByte fields
// (vector_kernel.go), duplicated here as literal data since this program
// cannot import the main module's package. GroupBytesConst/
// GroupSamplesConst mirror GroupBytes/GroupSamples (layout.go) for the
// same reason.
var (
	decodeHiByteIdx = [8]byte{2, 3, 7, 0, 4, 5, 9, 10}
	decodeLoByteIdx = [8]byte{1, 2, 6, 7, 11, 4, 8, 9}
)

const (
	GroupBytesConst   = 12
	GroupSamplesConst = 8
)

func init() {
	const ignore = 0x80 // PSHUFB: any control byte with bit 7 set zeroes the destination byte.

	for k := 0; k < 8; k++ {
		DATA(2*k, op.U8(decodeHiByteIdx[k]))
		DATA(2*k+1, op.U8(ignore))
	}
	for k := 0; k < 8; k++ {
		DATA(2*k, op.U8(decodeLoByteIdx[k]))
		DATA(2*k+1, op.U8(ignore))
	}

	for k := 0; k < 8; k++ {
		if k%2 == 0 {
			DATA(2*k, op.U8(0x00))
			DATA(2*k+1, op.U8(0x0F)) // 0x0F00 at even word lanes
		} else {
			DATA(2*k, op.U8(0x00))
			DATA(2*k+1, op.U8(0x00))
		}
	}
	for k := 0; k < 8; k++ {
		if k%2 == 1 {
			DATA(2*k, op.U8(0xF0))
			DATA(2*k+1, op.U8(0x0F)) // 0x0FF0 at odd word lanes
		} else {
			DATA(2*k, op.U8(0x00))
			DATA(2*k+1, op.U8(0x00))
		}
	}
	for k := 0; k < 8; k++ {
		if k%2 == 0 {
			DATA(2*k, op.U8(0xFF))
			DATA(2*k+1, op.U8(0x00)) // 0x00FF at even word lanes
		} else {
			DATA(2*k, op.U8(0x00))
			DATA(2*k+1, op.U8(0x00))
		}
	}
	for k := 0; k < 8; k++ {
		if k%2 == 1 {
			DATA(2*k, op.U8(0x0F))
			DATA(2*k+1, op.U8(0x00)) // 0x000F at odd word lanes
		} else {
			DATA(2*k, op.U8(0x00))
			DATA(2*k+1, op.U8(0x00))
		}
	}
}

func genDecodeKernelSSE4() {
	TEXT("decodeGroupSSE4Asm", NOSPLIT, "func(src *byte, dst *uint16, groups int)")
	Doc("decodeGroupSSE4Asm decodes whole groups one at a time using SSE4 byte shuffles.")
	Doc("Each iteration overreads up to 4 bytes past the current 12-byte group; callers pad src accordingly.")

	srcBase := Load(Param("src"), GP64()).(reg.GPVirtual)
	dstBase := Load(Param("dst"), GP64()).(reg.GPVirtual)
	groups := Load(Param("groups"), GP64())

	hiShuffle, loShuffle := XMM(), XMM()
	MOVOU(decodeShuffleHi, hiShuffle)
	MOVOU(decodeShuffleLo, loShuffle)

	hiEvenMask, hiOddMask := XMM(), XMM()
	MOVOU(decodeHiEvenMask, hiEvenMask)
	MOVOU(decodeHiOddMask, hiOddMask)
	loEvenMask, loOddMask := XMM(), XMM()
	MOVOU(decodeLoEvenMask, loEvenMask)
	MOVOU(decodeLoOddMask, loOddMask)

	index := GP64()
	XORQ(index, index)

	loop, done := "decode_sse4_group_loop", "decode_sse4_group_done"
	Label(loop)
	CMPQ(index, groups)
	JAE(op.LabelRef(done))

	raw := XMM()
	MOVOU(op.Mem{Base: srcBase}, raw)

	hi := XMM()
	MOVOU(raw, hi)
	PSHUFB(hiShuffle, hi)
	hiBy8, hiBy4 := XMM(), XMM()
	MOVOU(hi, hiBy8)
	PSLLW(op.Imm(8), hiBy8)
	MOVOU(hi, hiBy4)
	PSLLW(op.Imm(4), hiBy4)
	PAND(hiEvenMask, hiBy8)
	PAND(hiOddMask, hiBy4)
	POR(hiBy4, hiBy8) // hiBy8 now holds the combined, lane-parity-correct high contribution

	lo := XMM()
	MOVOU(raw, lo)
	PSHUFB(loShuffle, lo)
	loBy0, loBy4 := XMM(), XMM()
	MOVOU(lo, loBy0)
	MOVOU(lo, loBy4)
	PSRLW(op.Imm(4), loBy4)
	PAND(loEvenMask, loBy0)
	PAND(loOddMask, loBy4)
	POR(loBy4, loBy0) // loBy0 now holds the combined low contribution

	result := XMM()
	MOVOU(hiBy8, result)
	POR(loBy0, result)
	MOVOU(result, op.Mem{Base: dstBase})

	ADDQ(op.Imm(GroupBytesConst), srcBase)
	ADDQ(op.Imm(GroupSamplesConst*2), dstBase)
	ADDQ(op.Imm(1), index)
	JMP(op.LabelRef(loop))

	Label(done)
	RET()
}

// genDecodeKernelAVX2 runs the same gather-then-combine shape two groups
// at a time: VPSHUFB applies its 16-byte control mask independently to
// each 128-bit lane of a YMM register, so decodeShuffleHi/decodeShuffleLo
// broadcast into both halves (via VINSERTI128, loading the same 16-byte
// mask into each half) reproduce the SSE4 per-group gather across two
// groups in one instruction; VPSLLW/VPSRLW/VPAND/VPOR operate uniformly
// across all 256 bits, so the even/odd lane split from the SSE4 path
// carries over unchanged.
func genDecodeKernelAVX2() {
	TEXT("decodeGroupAVX2Asm", NOSPLIT, "func(src *byte, dst *uint16, groups int)")
	Doc("decodeGroupAVX2Asm decodes whole groups two at a time using AVX2 byte shuffles.")
	Doc("groups must be even; the caller reduces the tail to the SSE4 or scalar path.")

	srcBase := Load(Param("src"), GP64()).(reg.GPVirtual)
	dstBase := Load(Param("dst"), GP64()).(reg.GPVirtual)
	groups := Load(Param("groups"), GP64())

	hiShuffleLo, loShuffleLo := XMM(), XMM()
	MOVOU(decodeShuffleHi, hiShuffleLo)
	MOVOU(decodeShuffleLo, loShuffleLo)
	hiShuffle, loShuffle := YMM(), YMM()
	VINSERTI128(op.Imm(1), hiShuffleLo, hiShuffle, hiShuffle)
	VINSERTI128(op.Imm(1), loShuffleLo, loShuffle, loShuffle)

	hiEvenLo, hiOddLo := XMM(), XMM()
	MOVOU(decodeHiEvenMask, hiEvenLo)
	MOVOU(decodeHiOddMask, hiOddLo)
	hiEvenMask, hiOddMask := YMM(), YMM()
	VINSERTI128(op.Imm(1), hiEvenLo, hiEvenMask, hiEvenMask)
	VINSERTI128(op.Imm(1), hiOddLo, hiOddMask, hiOddMask)

	loEvenLo, loOddLo := XMM(), XMM()
	MOVOU(decodeLoEvenMask, loEvenLo)
	MOVOU(decodeLoOddMask, loOddLo)
	loEvenMask, loOddMask := YMM(), YMM()
	VINSERTI128(op.Imm(1), loEvenLo, loEvenMask, loEvenMask)
	VINSERTI128(op.Imm(1), loOddLo, loOddMask, loOddMask)

	index := GP64()
	XORQ(index, index)

	loop, done := "decode_avx2_pair_loop", "decode_avx2_pair_done"
	Label(loop)
	CMPQ(index, groups)
	JAE(op.LabelRef(done))

	raw := YMM()
	VMOVDQU(op.Mem{Base: srcBase}, raw)

	hi := YMM()
	VPSHUFB(hiShuffle, raw, hi)
	hiBy8, hiBy4 := YMM(), YMM()
	VPSLLW(op.Imm(8), hi, hiBy8)
	VPSLLW(op.Imm(4), hi, hiBy4)
	VPAND(hiEvenMask, hiBy8, hiBy8)
	VPAND(hiOddMask, hiBy4, hiBy4)
	VPOR(hiBy4, hiBy8, hiBy8)

	lo := YMM()
	VPSHUFB(loShuffle, raw, lo)
	loBy0, loBy4 := YMM(), YMM()
	VPSRLW(op.Imm(4), lo, loBy4)
	VPAND(loEvenMask, lo, loBy0)
	VPAND(loOddMask, loBy4, loBy4)
	VPOR(loBy4, loBy0, loBy0)

	result := YMM()
	VPOR(hiBy8, loBy0, result)
	VMOVDQU(result, op.Mem{Base: dstBase})

	ADDQ(op.Imm(2*GroupBytesConst), srcBase)
	ADDQ(op.Imm(2*GroupSamplesConst*2), dstBase)
	ADDQ(op.Imm(2), index)
	JMP(op.LabelRef(loop))

	Label(done)
	RET()
}
