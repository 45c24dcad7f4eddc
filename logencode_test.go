package packed12

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinear16ToLog12Boundaries(t *testing.T) {
	assert.Equal(t, uint16(1023), linear16ToLog12(1023))
	assert.Equal(t, uint16(1024), linear16ToLog12(1024))
	assert.Equal(t, uint16((6<<9)+(0xFFFF>>6)), linear16ToLog12(0xFFFF))
	assert.Equal(t, uint16(4095), linear16ToLog12(0xFFFF))
}

func TestLinear16ToLog12Identity(t *testing.T) {
	for v := uint16(0); v < linearThreshold; v++ {
		assert.Equal(t, v, linear16ToLog12(v))
	}
}

func TestLinear16ToLog12Range(t *testing.T) {
	prev := uint16(0)
	v := uint32(0)
	for ; v < 65536; v++ {
		got := linear16ToLog12(uint16(v))
		assert.Less(t, int(got), 4096)
		assert.GreaterOrEqual(t, got, prev, "monotone non-decreasing at v=%d", v)
		prev = got
	}
}
