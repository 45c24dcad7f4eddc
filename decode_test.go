package packed12

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeScalarEmpty(t *testing.T) {
	code := DecodeScalar(nil, nil)
	assert.Equal(t, OK, code)
}

func TestDecodeScalarFixture(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C}
	dst := make([]uint16, 8)
	code := DecodeScalar(src, dst)
	assert.Equal(t, OK, code)
	assert.Equal(t, []uint16{0x302, 0x040, 0x807, 0x010, 0x50C, 0x060, 0xA09, 0x0B0}, dst)

	out := make([]byte, 12)
	assert.Equal(t, OK, EncodeScalar(dst, out))
	assert.Equal(t, src, out)
}

func TestDecodeScalarShapeError(t *testing.T) {
	src := make([]byte, 11)
	dst := make([]uint16, 8)
	assert.Equal(t, ErrSrcNotMultipleOf12, DecodeScalar(src, dst))
}

func TestDecodeScalarCapacityError(t *testing.T) {
	src := make([]byte, 12)
	dst := make([]uint16, 7)
	want := []uint16{9, 9, 9, 9, 9, 9, 9}
	copy(dst, want)

	assert.Equal(t, ErrDstTooSmall, DecodeScalar(src, dst))
	assert.Equal(t, want, dst, "destination must be untouched on error")
}
