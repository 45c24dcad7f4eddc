package packed12

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeGroupFixture(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C}
	want := [8]uint16{0x302, 0x040, 0x807, 0x010, 0x50C, 0x060, 0xA09, 0x0B0}

	var got [8]uint16
	decodeGroup(src, &got)
	assert.Equal(t, want, got)
}

func TestEncodeGroupIsDecodeGroupInverse(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C}

	var u [8]uint16
	decodeGroup(src, &u)

	out := make([]byte, GroupBytes)
	encodeGroup(&u, out)

	assert.Equal(t, src, out)
}

func TestDecodeGroupHighNibbleAlwaysZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := make([]byte, GroupBytes)
	var u [8]uint16
	for iter := 0; iter < 256; iter++ {
		rng.Read(src)
		decodeGroup(src, &u)
		for _, w := range u {
			assert.Zero(t, w&0xF000)
		}
	}
}

func TestEncodeGroupIgnoresUpperBits(t *testing.T) {
	var u [8]uint16
	for i := range u {
		u[i] = 0xF000 | uint16(i*100)
	}
	var masked [8]uint16
	for i := range u {
		masked[i] = u[i] & sampleMask
	}

	out1 := make([]byte, GroupBytes)
	out2 := make([]byte, GroupBytes)
	encodeGroup(&u, out1)
	encodeGroup(&masked, out2)

	assert.Equal(t, out2, out1)
}

func TestGroupRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 1000; iter++ {
		src := make([]byte, GroupBytes)
		rng.Read(src)

		var u [8]uint16
		decodeGroup(src, &u)
		out := make([]byte, GroupBytes)
		encodeGroup(&u, out)
		assert.Equal(t, src, out)
	}
}
