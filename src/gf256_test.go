package microqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGFTables(t *testing.T) {
	assert.Equal(t, byte(1), gfExp[0])
	assert.Equal(t, byte(2), gfExp[1])
	assert.Equal(t, byte(0x80), gfExp[7])
	assert.Equal(t, byte(0x1d), gfExp[8], "x^8 reduces to x^4 + x^3 + x^2 + 1")
	assert.Equal(t, byte(3), gfExp[25])
	assert.Equal(t, byte(32), gfExp[5])
	assert.Equal(t, byte(1), gfExp[255], "alpha^255 wraps around to 1")

	// Every non-zero element appears exactly once in the first 255 powers.
	var seen = map[byte]bool{}
	for i := range gfOrder {
		assert.NotZero(t, gfExp[i])
		assert.False(t, seen[gfExp[i]], "alpha^%d repeats", i)
		seen[gfExp[i]] = true
	}
	assert.Len(t, seen, 255)

	for i := range gfOrder {
		assert.Equal(t, byte(i), gfLog[gfExp[i]])
	}
}

func TestGFExpLog(t *testing.T) {
	assert.Equal(t, byte(1), GFExp(0))
	assert.Equal(t, byte(1), GFExp(255))
	assert.Equal(t, GFExp(1), GFExp(256))
	assert.Equal(t, GFExp(254), GFExp(-1))

	var _, ok = GFLog(0)
	assert.False(t, ok)

	var l, ok2 = GFLog(0x1d)
	assert.True(t, ok2)
	assert.Equal(t, 8, l)
}

func TestGFMultiplyKnownValues(t *testing.T) {
	assert.Equal(t, byte(9), GFMultiply(3, 7))
	assert.Equal(t, byte(0x1d), GFMultiply(2, 0x80))
	assert.Equal(t, byte(0x8f), GFMultiply(0x53, 0xca))
	assert.Equal(t, byte(0x53), GFMultiply(1, 0x53))
}

func TestGFMultiplyZero(t *testing.T) {
	for a := range 256 {
		assert.Zero(t, GFMultiply(byte(a), 0))
		assert.Zero(t, GFMultiply(0, byte(a)))
	}
}

func TestGFMultiplyCommutative(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			if GFMultiply(byte(a), byte(b)) != GFMultiply(byte(b), byte(a)) {
				t.Fatalf("%d * %d is not commutative", a, b)
			}
		}
	}
}

func TestGFMultiplyLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Byte().Draw(t, "a")
		var b = rapid.Byte().Draw(t, "b")
		var c = rapid.Byte().Draw(t, "c")

		assert.Equal(t, GFMultiply(GFMultiply(a, b), c), GFMultiply(a, GFMultiply(b, c)), "associative")
		assert.Equal(t, GFMultiply(a, b^c), GFMultiply(a, b)^GFMultiply(a, c), "distributes over addition")

		if a != 0 {
			var l, _ = GFLog(a)
			assert.Equal(t, byte(1), GFMultiply(a, GFExp(gfOrder-l)), "has an inverse")
		}
	})
}
