// Package packed12 implements a bit-exact codec for a packed 12-bit-per-
// sample image format and an in-place transform pipeline over it.
//
// The wire format interleaves two channels (conventionally "G" and "R") at
// 12 bits per sample, packed into groups of 12 bytes that decode to 8
// 16-bit samples (top 4 bits always zero) in the order G0 R0 G1 R1 G2 R2 G3
// R3:
//
//	u[0] = ((b2 << 8) & 0x0F00) | b1
//	u[1] = ((b3 << 4) & 0x0FF0) | ((b2 >> 4) & 0x0F)
//	u[2] = ((b7 << 8) & 0x0F00) | b6
//	u[3] = ((b0 << 4) & 0x0FF0) | ((b7 >> 4) & 0x0F)
//	u[4] = ((b4 << 8) & 0x0F00) | b11
//	u[5] = ((b5 << 4) & 0x0FF0) | ((b4 >> 4) & 0x0F)
//	u[6] = ((b9 << 8) & 0x0F00) | b8
//	u[7] = ((b10 << 4) & 0x0FF0) | ((b9 >> 4) & 0x0F)
//
// The package never allocates and never performs I/O; callers own every
// buffer it touches, and every entry point is a pure function of its inputs
// modulo an in-place buffer's own mutation. It is not safe for two calls to
// operate on overlapping buffer regions concurrently; independent regions
// need no synchronization.
//
// Decode, Encode and EncodeLogInplace are dispatched: at package init,
// whichever of the scalar, V128A (NEON-class), V128B (SSE4-class) or V256
// (AVX2-class) back-ends the running CPU supports the widest of is
// selected once and used for every call (see dispatch.go). The
// non-dispatched *Scalar/*V128A/*V128B/*V256 variants are exposed so tests
// can compare back-ends directly.
package packed12
