package microqr

/*------------------------------------------------------------------
 *
 * Purpose:	Error detection codewords for an M1 symbol.
 *
 * Description:	M1 carries 2 check codewords, enough to detect errors
 *		but not to correct them.  They are the remainder of the
 *		message polynomial, shifted up by x^2, divided by a fixed
 *		degree 2 generator polynomial over GF(256).
 *
 *------------------------------------------------------------------*/

// ECCodewords is the number of error detection codewords in an M1 symbol.
const ECCodewords = 2

// Generator polynomial coefficients, highest degree first:
// x^2 + alpha^25 x + alpha^5.
var m1Generator = [ECCodewords + 1]byte{1, gfExp[25], gfExp[5]}

/*-------------------------------------------------------------
 *
 * Name:	GenerateErrorDetection
 *
 * Purpose:	Compute the check codewords for a message.
 *
 * Inputs:	message	- Data codewords, most significant first.
 *
 * Returns:	The 2 check codewords, to be sent after the data.
 *
 * Description:	Systematic long division.  The remainder buffer starts
 *		as the message followed by 2 zero bytes.  Walking the
 *		message left to right, a non-zero leading coefficient is
 *		multiplied into the generator and the product is added
 *		(xor) to the buffer at that position, which clears it.
 *		What is left in the last 2 bytes is the remainder.
 *
 *--------------------------------------------------------------*/

func GenerateErrorDetection(message []byte) [ECCodewords]byte {
	var remainder = make([]byte, len(message)+ECCodewords)
	copy(remainder, message)

	for i := range message {
		var lead = remainder[i]
		if lead == 0 {
			continue
		}
		for j, g := range m1Generator {
			remainder[i+j] ^= GFMultiply(g, lead)
		}
	}

	var ec [ECCodewords]byte
	copy(ec[:], remainder[len(message):])
	return ec
}
