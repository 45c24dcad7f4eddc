package packed12

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformInplaceEmpty(t *testing.T) {
	called := false
	code := TransformInplace(nil, func(*[8]uint16) { called = true })
	assert.Equal(t, OK, code)
	assert.False(t, called)
}

func TestTransformInplaceShapeError(t *testing.T) {
	buf := make([]byte, 11)
	called := false
	code := TransformInplace(buf, func(*[8]uint16) { called = true })
	assert.Equal(t, ErrSrcNotMultipleOf12, code)
	assert.False(t, called, "no mutation observable on a precondition failure")
}

func TestTransformInplaceIdentityRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 12*5)
	rng.Read(buf)
	orig := append([]byte(nil), buf...)

	code := TransformInplace(buf, func(*[8]uint16) {})
	assert.Equal(t, OK, code)
	assert.Equal(t, orig, buf)
}

func TestTransformInplaceMasksUpperBits(t *testing.T) {
	buf := make([]byte, 12)
	code := TransformInplace(buf, func(s *[8]uint16) {
		for i := range s {
			s[i] = 0xFFFF
		}
	})
	assert.Equal(t, OK, code)

	var got [8]uint16
	decodeGroup(buf, &got)
	for _, w := range got {
		assert.Equal(t, uint16(sampleMask), w)
	}
}

func TestEncodeLogInplaceScalarMatchesCallback(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	buf1 := make([]byte, 12*20)
	rng.Read(buf1)
	buf2 := append([]byte(nil), buf1...)

	assert.Equal(t, OK, TransformInplace(buf1, encodeLogCallback))
	assert.Equal(t, OK, EncodeLogInplaceScalar(buf2))
	assert.Equal(t, buf1, buf2)
}
