//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file sketches the inverse of decode.go: encodeLanes' gather (by
// shift amount, not by destination byte position) and combine, per
// encodeGroup (layout.go, vector_kernel.go).
//
// Each of the 12 output bytes needs the low byte of one sample shifted
// right by 0, 4, or 8 (its "a" contribution), and about half also need
// the low byte of a second sample shifted left by 4 OR'd in (its "b"
// contribution). Samples arrive pre-masked to 12 bits, so the low byte
// of each shifted copy already equals the wanted value with no further
// masking: >>8 of a 12-bit value fits in 4 bits, >>4 fits in 8 bits, and
// the low byte of <<4 is exactly (sample&0x0F)<<4.
//
// Four shifted copies of the input lanes (right by 0/4/8, left by 4) are
// each shuffled into one 16-byte result with one PSHUFB: encodeGatherSh0/
// Sh4/Sh8 pick off the "a" contributions per their shift amount,
// encodeGatherSh4L picks off the "b" contributions, each control byte
// either naming a source word's low-byte offset or 0x80 to zero the
// destination byte. The three "a" results and the "b" result OR together
// into the 12 (of 16) output bytes that matter.
var (
	encodeGatherSh0  = GLOBL("encodeGatherSh0", RODATA|NOPTR)
	encodeGatherSh4  = GLOBL("encodeGatherSh4", RODATA|NOPTR)
	encodeGatherSh8  = GLOBL("encodeGatherSh8", RODATA|NOPTR)
	encodeGatherSh4L = GLOBL("encodeGatherSh4L", RODATA|NOPTR)
)

// encodeAByShift/encodeBByShift are encodeLanes' (aSample, aShiftRight)
// and (bSample, bShiftLeft) pairs (vector_kernel.go), regrouped by shift
// amount since that's what each PSHUFB control vector selects on. -1
// means "no output byte uses this shift/sample combination".
var (
	encodeAOfSh0 = [12]int{-1, 0, -1, -1, -1, -1, 2, -1, 6, -1, -1, 4}
	encodeAOfSh4 = [12]int{3, -1, -1, 1, -1, 5, -1, -1, -1, -1, 7, -1}
	encodeAOfSh8 = [12]int{-1, -1, 0, -1, 4, -1, -1, 2, -1, 6, -1, -1}
	encodeBOfSh4L = [12]int{-1, -1, 1, -1, 5, -1, -1, 3, -1, 7, -1, -1}
)

func init() {
	const ignore = 0x80

	fill := func(table [12]int) {
		for j := 0; j < 12; j++ {
			if table[j] < 0 {
				DATA(j, op.U8(ignore))
				continue
			}
			DATA(j, op.U8(byte(2*table[j]))) // low byte of the word lane at sample index table[j]
		}
		for j := 12; j < 16; j++ {
			DATA(j, op.U8(ignore))
		}
	}
	fill(encodeAOfSh0)
	fill(encodeAOfSh4)
	fill(encodeAOfSh8)
	fill(encodeBOfSh4L)
}

func genEncodeKernelSSE4() {
	TEXT("encodeGroupSSE4Asm", NOSPLIT, "func(src *uint16, dst *byte, groups int)")
	Doc("encodeGroupSSE4Asm encodes whole groups one at a time using SSE4 byte shuffles.")
	Doc("Each iteration overwrites up to 4 bytes past the current 12-byte group; callers pad dst accordingly.")

	srcBase := Load(Param("src"), GP64()).(reg.GPVirtual)
	dstBase := Load(Param("dst"), GP64()).(reg.GPVirtual)
	groups := Load(Param("groups"), GP64())

	gatherSh0, gatherSh4, gatherSh8, gatherSh4L := XMM(), XMM(), XMM(), XMM()
	MOVOU(encodeGatherSh0, gatherSh0)
	MOVOU(encodeGatherSh4, gatherSh4)
	MOVOU(encodeGatherSh8, gatherSh8)
	MOVOU(encodeGatherSh4L, gatherSh4L)

	index := GP64()
	XORQ(index, index)

	loop, done := "encode_sse4_group_loop", "encode_sse4_group_done"
	Label(loop)
	CMPQ(index, groups)
	JAE(op.LabelRef(done))

	samples := XMM()
	MOVOU(op.Mem{Base: srcBase}, samples)

	sh4r, sh8r, sh4l := XMM(), XMM(), XMM()
	MOVOU(samples, sh4r)
	PSRLW(op.Imm(4), sh4r)
	MOVOU(samples, sh8r)
	PSRLW(op.Imm(8), sh8r)
	MOVOU(samples, sh4l)
	PSLLW(op.Imm(4), sh4l)

	aSh0, aSh4, aSh8 := XMM(), XMM(), XMM()
	MOVOU(samples, aSh0)
	PSHUFB(gatherSh0, aSh0)
	MOVOU(sh4r, aSh4)
	PSHUFB(gatherSh4, aSh4)
	MOVOU(sh8r, aSh8)
	PSHUFB(gatherSh8, aSh8)

	bSh4L := XMM()
	MOVOU(sh4l, bSh4L)
	PSHUFB(gatherSh4L, bSh4L)

	result := XMM()
	MOVOU(aSh0, result)
	POR(aSh4, result)
	POR(aSh8, result)
	POR(bSh4L, result)
	MOVOU(result, op.Mem{Base: dstBase})

	ADDQ(op.Imm(GroupSamplesConst*2), srcBase)
	ADDQ(op.Imm(GroupBytesConst), dstBase)
	ADDQ(op.Imm(1), index)
	JMP(op.LabelRef(loop))

	Label(done)
	RET()
}

// genEncodeKernelAVX2 runs the same gather-then-combine shape two groups
// at a time, the same way genDecodeKernelAVX2 does: the four 16-byte
// control masks broadcast into both 128-bit halves of a YMM register via
// VINSERTI128, and VPSHUFB/VPSRLW/VPSLLW/VPOR operate uniformly across
// all 256 bits.
func genEncodeKernelAVX2() {
	TEXT("encodeGroupAVX2Asm", NOSPLIT, "func(src *uint16, dst *byte, groups int)")
	Doc("encodeGroupAVX2Asm encodes whole groups two at a time using AVX2 byte shuffles.")
	Doc("groups must be even; the caller reduces the tail to the SSE4 or scalar path.")

	srcBase := Load(Param("src"), GP64()).(reg.GPVirtual)
	dstBase := Load(Param("dst"), GP64()).(reg.GPVirtual)
	groups := Load(Param("groups"), GP64())

	broadcast := func(mem op.Op) reg.VirtualRegister {
		half := XMM()
		MOVOU(mem, half)
		full := YMM()
		VINSERTI128(op.Imm(1), half, full, full)
		return full
	}
	gatherSh0 := broadcast(encodeGatherSh0)
	gatherSh4 := broadcast(encodeGatherSh4)
	gatherSh8 := broadcast(encodeGatherSh8)
	gatherSh4L := broadcast(encodeGatherSh4L)

	index := GP64()
	XORQ(index, index)

	loop, done := "encode_avx2_pair_loop", "encode_avx2_pair_done"
	Label(loop)
	CMPQ(index, groups)
	JAE(op.LabelRef(done))

	samples := YMM()
	VMOVDQU(op.Mem{Base: srcBase}, samples)

	sh4r, sh8r, sh4l := YMM(), YMM(), YMM()
	VPSRLW(op.Imm(4), samples, sh4r)
	VPSRLW(op.Imm(8), samples, sh8r)
	VPSLLW(op.Imm(4), samples, sh4l)

	aSh0, aSh4, aSh8, bSh4L := YMM(), YMM(), YMM(), YMM()
	VPSHUFB(gatherSh0, samples, aSh0)
	VPSHUFB(gatherSh4, sh4r, aSh4)
	VPSHUFB(gatherSh8, sh8r, aSh8)
	VPSHUFB(gatherSh4L, sh4l, bSh4L)

	result := YMM()
	VPOR(aSh0, aSh4, result)
	VPOR(aSh8, result, result)
	VPOR(bSh4L, result, result)
	VMOVDQU(result, op.Mem{Base: dstBase})

	ADDQ(op.Imm(2*GroupSamplesConst*2), srcBase)
	ADDQ(op.Imm(2*GroupBytesConst), dstBase)
	ADDQ(op.Imm(2), index)
	JMP(op.LabelRef(loop))

	Label(done)
	RET()
}
