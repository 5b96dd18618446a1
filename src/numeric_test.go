package microqr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeNumericSingleDigit(t *testing.T) {
	var bits, err = EncodeNumeric("1")
	require.NoError(t, err)

	// count 001, value 0001, terminator 000, then padding to 20 bits.
	assert.Equal(t, "001"+"0001"+"000"+"0000000000", bits.String())
	assert.Equal(t, "001", bits[:3].String())
}

func TestEncodeNumericGroups(t *testing.T) {
	var tests = []struct {
		data string
		bits string
	}{
		{"0", "00100000000000000000"},
		{"12", "010" + "0001100" + "000" + "0000000"},
		{"123", "011" + "0001111011" + "000" + "0000"},
		{"999", "011" + "1111100111" + "000" + "0000"},
		{"1234", "100" + "0001111011" + "0100" + "000"},
		{"12345", "101" + "0001111011" + "0101101" + "000" + "0"},
		{"1234567", "111" + "0001111011" + "0111001000" + "0111" + "000" + "00"},
	}

	for _, tt := range tests {
		var bits, err = EncodeNumeric(tt.data)
		require.NoError(t, err, tt.data)
		assert.Equal(t, tt.bits, bits.String(), tt.data)
	}
}

func TestEncodeNumericLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var data = rapid.StringMatching(`[0-9]{1,7}`).Draw(t, "data")

		var bits, err = EncodeNumeric(data)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(bits), minMessageBits)
		assert.Zero(t, len(bits)%messageAlign)
		assert.Equal(t, uint(len(data)), uint(bits.Codewords()[0]>>5), "character count")
	})
}

func TestEncodeNumericInvalid(t *testing.T) {
	var tests = []struct {
		data     string
		position int
	}{
		{"", -1},
		{"12a", 2},
		{"-1", 0},
		{" 1", 0},
		{"1.5", 1},
		{"١", 0}, // ARABIC-INDIC DIGIT ONE is a digit, but not 0-9.
		{"12345678", -1},
		{"00000000000", -1},
	}

	for _, tt := range tests {
		var bits, err = EncodeNumeric(tt.data)
		assert.Nil(t, bits, tt.data)
		require.Error(t, err, tt.data)
		assert.ErrorIs(t, err, ErrInvalidInput)

		var invalid *InvalidInputError
		require.True(t, errors.As(err, &invalid), tt.data)
		assert.Equal(t, tt.data, invalid.Input)
		assert.Equal(t, tt.position, invalid.Position, tt.data)
		assert.NotEmpty(t, invalid.Error())
	}
}
