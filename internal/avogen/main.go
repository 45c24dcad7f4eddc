//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var component = flag.String("component", "all", "component to generate")

// main emits the packed-12-bit decode/encode/log-encode kernels so
// go:generate stays simple.
//
// This program is not built by any normal `go build`/`go test` invocation
// (it is gated behind the avogen tag); it documents the machine lowering
// the amd64 portable-Go back-ends in vector_v128b_amd64.go /
// vector_v256_amd64.go stand in for, per the resolution in DESIGN.md. It
// emits no arm64 kernels.
func main() {
	flag.Parse()
	comp := strings.ToLower(*component)

	Package("github.com/Akron/packed12")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "decode" || comp == "all" {
		genDecodeKernelSSE4()
		genDecodeKernelAVX2()
	}
	if comp == "encode" || comp == "all" {
		genEncodeKernelSSE4()
		genEncodeKernelAVX2()
	}
	if comp == "log" || comp == "all" {
		genLog16Kernel()
	}

	Generate()
}
