//go:build arm64 && !noasm

package packed12

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func alignedBytes(n int, align uintptr) []byte {
	buf := make([]byte, n+int(align))
	off := uintptr(0)
	if base := uintptr(unsafe.Pointer(&buf[0])); base%align != 0 {
		off = align - base%align
	}
	return buf[off : off+uintptr(n) : off+uintptr(n)]
}

func alignedUint16s(n int, align uintptr) []uint16 {
	buf := make([]uint16, n+int(align)/2)
	off := uintptr(0)
	if base := uintptr(unsafe.Pointer(&buf[0])); base%align != 0 {
		off = (align - base%align) / 2
	}
	return buf[off : off+uintptr(n) : off+uintptr(n)]
}

func TestBackendAgreementDecodeV128A(t *testing.T) {
	rng := rand.New(rand.NewSource(3024))
	sizes := []int{0, 12, 48, 60, 96, 108, 12 * 2880}

	for _, n := range sizes {
		src := alignedBytes(n, 16)
		rng.Read(src)
		groups := n / 12

		scalarOut := make([]uint16, groups*8)
		assert.Equal(t, OK, DecodeScalar(src, scalarOut))

		vecOut := alignedUint16s(groups*8, 16)
		assert.Equal(t, OK, DecodeV128A(src, vecOut), "size %d", n)
		assert.Equal(t, scalarOut, vecOut, "V128A size %d", n)
	}
}

func TestBackendAgreementEncodeV128A(t *testing.T) {
	rng := rand.New(rand.NewSource(3025))
	groupCounts := []int{0, 1, 4, 5, 8, 9, 2880 * 128 / 8}

	for _, groups := range groupCounts {
		n := groups * 8
		src := alignedUint16s(n, 16)
		for i := range src {
			src[i] = uint16(rng.Intn(4096))
		}

		scalarOut := make([]byte, groups*12)
		assert.Equal(t, OK, EncodeScalar(src, scalarOut))

		vecOut := alignedBytes(groups*12, 16)
		assert.Equal(t, OK, EncodeV128A(src, vecOut), "groups %d", groups)
		assert.Equal(t, scalarOut, vecOut, "V128A groups %d", groups)
	}
}

func TestBackendAgreementEncodeLogInplaceV128A(t *testing.T) {
	rng := rand.New(rand.NewSource(3026))
	sizes := []int{0, 12, 48, 60, 96, 108, 12 * 400}

	for _, n := range sizes {
		base := alignedBytes(n, 16)
		rng.Read(base)

		scalarBuf := append([]byte(nil), base...)
		assert.Equal(t, OK, EncodeLogInplaceScalar(scalarBuf))

		vecBuf := alignedBytes(n, 16)
		copy(vecBuf, base)
		assert.Equal(t, OK, EncodeLogInplaceV128A(vecBuf), "size %d", n)
		assert.Equal(t, scalarBuf, vecBuf, "V128A size %d", n)
	}
}

func TestV128ARejectsMisalignedBuffers(t *testing.T) {
	aligned := alignedBytes(1+48, 16)
	misaligned := aligned[1 : 1+48 : 1+48]
	dst := alignedUint16s(32, 16)

	if uintptr(unsafe.Pointer(&misaligned[0]))%16 == 0 {
		t.Skip("got lucky with allocator alignment")
	}
	assert.Equal(t, ErrSrcNotAligned16, DecodeV128A(misaligned, dst))
}
