package packed12

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeScalarEmpty(t *testing.T) {
	assert.Equal(t, OK, EncodeScalar(nil, nil))
}

func TestEncodeScalarShapeError(t *testing.T) {
	src := make([]uint16, 7)
	dst := make([]byte, 12)
	assert.Equal(t, ErrSrcNotMultipleOf8, EncodeScalar(src, dst))
}

func TestEncodeScalarCapacityError(t *testing.T) {
	src := make([]uint16, 8)
	dst := make([]byte, 5)
	want := []byte{9, 9, 9, 9, 9}
	copy(dst, want)

	assert.Equal(t, ErrDstTooSmall, EncodeScalar(src, dst))
	assert.Equal(t, want, dst, "destination must be untouched on error")
}

func TestEncodeDecodeRoundTripAllIn12Bits(t *testing.T) {
	src := make([]uint16, 800)
	for i := range src {
		src[i] = uint16((i * 37) % 4096)
	}
	packed := make([]byte, (len(src)/8)*12)
	assert.Equal(t, OK, EncodeScalar(src, packed))

	back := make([]uint16, len(src))
	assert.Equal(t, OK, DecodeScalar(packed, back))
	assert.Equal(t, src, back)
}
