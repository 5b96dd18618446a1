package microqr

import "strings"

// BitSequence is an ordered run of bits, most significant first.
type BitSequence []bool

// appendBits adds the low n bits of v, most significant first.
func (b BitSequence) appendBits(v uint, n int) BitSequence {
	for i := n - 1; i >= 0; i-- {
		b = append(b, v&(1<<uint(i)) != 0)
	}
	return b
}

func (b BitSequence) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

/*-------------------------------------------------------------
 *
 * Name:	Codewords
 *
 * Purpose:	Pack the bits into 8 bit codewords.
 *
 * Description:	A final partial byte keeps its bits at the top and is
 *		filled with zeros at the bottom, e.g. the 4 bits 1010 at
 *		the end of an M1 message become 0xa0.
 *
 *--------------------------------------------------------------*/

func (b BitSequence) Codewords() []byte {
	var out = make([]byte, 0, (len(b)+7)/8)
	var acc byte
	var n = 0

	for _, bit := range b {
		acc <<= 1
		if bit {
			acc |= 1
		}
		n++
		if n == 8 {
			out = append(out, acc)
			acc = 0
			n = 0
		}
	}

	if n > 0 {
		out = append(out, acc<<(8-n))
	}

	return out
}

// codewordBits expands codewords back into bits, most significant first.
func codewordBits(codewords []byte) BitSequence {
	var b = make(BitSequence, 0, 8*len(codewords))
	for _, c := range codewords {
		b = b.appendBits(uint(c), 8)
	}
	return b
}
