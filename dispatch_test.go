package packed12

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// dispatchBytes and dispatchUint16s return buffers whose base is 32-byte
// aligned, which meets the alignment of every back-end the dispatcher can
// select.
func dispatchBytes(n int) []byte {
	buf := make([]byte, n+32)
	off := int((32 - uintptr(unsafe.Pointer(&buf[0]))%32) % 32)
	return buf[off : off+n : off+n]
}

func dispatchUint16s(n int) []uint16 {
	buf := make([]uint16, n+16)
	off := int((32 - uintptr(unsafe.Pointer(&buf[0]))%32) % 32 / 2)
	return buf[off : off+n : off+n]
}

func TestDispatcherAgreesWithScalarDecodeEncode(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	sizes := []int{0, 12, 48, 60, 96, 12 * 400}
	for _, n := range sizes {
		src := dispatchBytes(n)
		rng.Read(src)

		wantDst := make([]uint16, (n/12)*8)
		assert.Equal(t, OK, DecodeScalar(src, wantDst))

		gotDst := dispatchUint16s((n / 12) * 8)
		assert.Equal(t, OK, Decode(src, gotDst))
		assert.Equal(t, wantDst, gotDst, "size %d", n)

		wantBack := make([]byte, n)
		assert.Equal(t, OK, EncodeScalar(wantDst, wantBack))
		gotBack := dispatchBytes(n)
		assert.Equal(t, OK, Encode(gotDst, gotBack))
		assert.Equal(t, wantBack, gotBack, "size %d", n)
	}
}

func TestDispatcherEncodeLogInplaceAgreesWithScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(456))
	sizes := []int{0, 12, 48, 60, 96, 12 * 250}
	for _, n := range sizes {
		buf1 := make([]byte, n)
		rng.Read(buf1)
		buf2 := dispatchBytes(n)
		copy(buf2, buf1)

		assert.Equal(t, OK, EncodeLogInplaceScalar(buf1))
		assert.Equal(t, OK, EncodeLogInplace(buf2))
		assert.Equal(t, buf1, buf2, "size %d", n)
	}
}

func TestMessageFromCode(t *testing.T) {
	msg, ok := MessageFromCode(OK)
	assert.True(t, ok)
	assert.Equal(t, "success", msg)

	msg, ok = MessageFromCode(ErrSrcNotMultipleOf8)
	assert.True(t, ok)
	assert.Equal(t, "source length not divisible by 8", msg)

	_, ok = MessageFromCode(-101)
	assert.False(t, ok, "driver-extended codes are not this package's to describe")

	_, ok = MessageFromCode(1)
	assert.False(t, ok)
}

func TestActiveBackendNameIsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, ActiveBackendName())
}
