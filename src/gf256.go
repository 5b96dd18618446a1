package microqr

/*------------------------------------------------------------------
 *
 * Purpose:	Galois field GF(2^8) arithmetic used by the error
 *		detection codewords.
 *
 * Description:	The field is generated by the primitive polynomial
 *		x^8 + x^4 + x^3 + x^2 + 1 (0x11d), the same field used
 *		by every member of the QR family.
 *
 *		Elements are kept as bytes.  Multiplication goes through
 *		a pair of lookup tables built once, before anything else
 *		in the package is initialized, and never written again.
 *
 *------------------------------------------------------------------*/

const (
	gfPrimitive = 0x11d // x^8 + x^4 + x^3 + x^2 + 1
	gfOrder     = 255   // Number of non-zero elements.
)

// gfExp[i] = alpha**i, gfLog[gfExp[i]] = i.
// gfLog[0] is meaningless; callers special case zero operands.
var gfExp, gfLog = gfBuildTables()

/*-------------------------------------------------------------
 *
 * Name:	gfBuildTables
 *
 * Purpose:	Generate the exponential and logarithm tables.
 *
 * Description:	Start with alpha**0 = 1 and keep doubling.  Whenever the
 *		shifted value no longer fits in a byte, reduce it with the
 *		field generator polynomial.
 *
 *		The exponential table must be complete before the log
 *		table is derived from it.  Index 255 wraps back to 1 and
 *		is left out of the log table.
 *
 *--------------------------------------------------------------*/

func gfBuildTables() (expTable [256]byte, logTable [256]byte) {
	var x = 1
	for i := range 256 {
		expTable[i] = byte(x)
		x <<= 1
		if x > 0xff {
			x ^= gfPrimitive
		}
	}

	for i := range gfOrder {
		logTable[expTable[i]] = byte(i)
	}

	return expTable, logTable
}

// GFExp returns alpha raised to the power n.  Negative powers are
// reduced modulo 255 like the positive ones.
func GFExp(n int) byte {
	n %= gfOrder
	if n < 0 {
		n += gfOrder
	}
	return gfExp[n]
}

// GFLog returns the discrete logarithm of a.  The second result is false
// for zero, which has no logarithm.
func GFLog(a byte) (int, bool) {
	if a == 0 {
		return 0, false
	}
	return int(gfLog[a]), true
}

// GFMultiply returns the product of a and b in GF(256).
func GFMultiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[(int(gfLog[a])+int(gfLog[b]))%gfOrder]
}
