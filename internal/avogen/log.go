//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// genLog16Kernel sketches the vector log-companding lane (logencode.go's
// linear16ToLog12, chained with the decode/encode bodies.
// The vector computation is:
//
//	shift4 = v << 4
//	q      = bsr16(shift4) - 9
//	result = (shift4 < 1024) ? shift4 : (q<<9) + (shift4 >> q)
//
// A 16-bit leading-bit scan has no single SSE/AVX2 instruction (a nibble
// lookup table via PSHUFB and a max-combine can build one), and there is
// no SSE4/AVX2 16-bit variable shift for shift4 >> q (widening to 32-bit,
// where AVX2 has VPSRLVD, and narrowing back can stand in for one).
//
// The kernel emitted below covers only the first step: it shifts each
// lane left by 4 in place. The bsr16, the q computation, the compare and
// the variable shift are not emitted.
func genLog16Kernel() {
	TEXT("log16SSE4Asm", NOSPLIT, "func(v *uint16, n int)")
	Doc("log16SSE4Asm shifts n packed uint16 lanes left by 4 in place (n is a multiple of 8); it does not log-compand them.")

	vBase := Load(Param("v"), GP64()).(reg.GPVirtual)
	n := Load(Param("n"), GP64())

	index := GP64()
	XORQ(index, index)

	loop, done := "log16_loop", "log16_done"
	Label(loop)
	CMPQ(index, n)
	JAE(op.LabelRef(done))

	lanes := XMM()
	MOVOU(op.Mem{Base: vBase}, lanes)
	PSLLW(op.Imm(4), lanes)
	MOVOU(lanes, op.Mem{Base: vBase})

	ADDQ(op.Imm(8), index)
	ADDQ(op.Imm(16), vBase)
	JMP(op.LabelRef(loop))

	Label(done)
	RET()
}
