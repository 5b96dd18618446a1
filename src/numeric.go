package microqr

/*------------------------------------------------------------------
 *
 * Purpose:	Numeric mode data encoding for an M1 symbol.
 *
 * Description:	M1 only knows numeric mode so there is no mode indicator.
 *		The message is:
 *
 *			character count		3 bits
 *			digits, 3 at a time	10 bits (3), 7 bits (2), 4 bits (1)
 *			terminator		3 zero bits
 *			padding			zero bits
 *
 *		The padding brings the total to a multiple of 4 bits and
 *		to at least 20 bits, the M1 data capacity of 2.5 codewords.
 *
 *------------------------------------------------------------------*/

const (
	countBits      = 3
	maxDigits      = 1<<countBits - 1
	terminatorBits = 3
	minMessageBits = 20
	messageAlign   = 4
)

// Width in bits of a group of 1, 2 or 3 digits.
var numericGroupBits = [4]int{0, 4, 7, 10}

/*-------------------------------------------------------------
 *
 * Name:	EncodeNumeric
 *
 * Purpose:	Turn a string of decimal digits into the M1 bit sequence.
 *
 * Inputs:	data	- 1 to 7 ASCII digits.
 *
 * Returns:	The bit sequence, ready to be packed into codewords.
 *		*InvalidInputError if data is empty, too long, or holds
 *		anything other than 0-9.
 *
 *--------------------------------------------------------------*/

func EncodeNumeric(data string) (BitSequence, error) {
	if len(data) == 0 {
		return nil, &InvalidInputError{Input: data, Position: -1, Reason: "no digits"}
	}

	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return nil, &InvalidInputError{Input: data, Position: i, Reason: "not a decimal digit"}
		}
	}

	if len(data) > maxDigits {
		return nil, &InvalidInputError{
			Input:    data,
			Position: -1,
			Reason:   "more digits than the character count field can hold",
		}
	}

	var bits = make(BitSequence, 0, 32)
	bits = bits.appendBits(uint(len(data)), countBits)

	for start := 0; start < len(data); start += 3 {
		var group = data[start:min(start+3, len(data))]
		var width = numericGroupBits[len(group)]

		var value uint
		for i := 0; i < len(group); i++ {
			value = value*10 + uint(group[i]-'0')
		}
		if value >= 1<<uint(width) {
			return nil, &InvalidInputError{Input: data, Position: start, Reason: "digit group overflows its field"}
		}

		bits = bits.appendBits(value, width)
	}

	bits = bits.appendBits(0, terminatorBits)

	for len(bits) < minMessageBits || len(bits)%messageAlign != 0 {
		bits = append(bits, false)
	}

	return bits, nil
}
