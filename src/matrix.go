package microqr

/*------------------------------------------------------------------
 *
 * Purpose:	Build the module matrix of an M1 symbol.
 *
 * Description:	Construction happens in five phases, always in this
 *		order and always on a fresh matrix:
 *
 *		finder		7x7 finder pattern in the top left corner.
 *		timing		alternating modules along row 0 and column 0.
 *		format		the fixed 15 bit format information.
 *		placement	data and check bits, two columns at a time.
 *		mask		pattern 0 over the data region only.
 *
 *------------------------------------------------------------------*/

import "strings"

// Matrix is an M1 symbol, indexed [row][col].  true is a dark module.
// It is a value type, so a returned Matrix can't be changed behind the
// caller's back.
type Matrix [Size][Size]bool

// At reports whether the module at row, col is dark.  Out of range
// positions are light, the colour of the quiet zone.
func (m *Matrix) At(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	return m[row][col]
}

// String draws the matrix with '#' for dark and '.' for light, one row
// per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for row := range Size {
		for col := range Size {
			if m[row][col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Format information for M1 with mask pattern 0.
var m1FormatBits = [15]bool{
	true, false, false, false, true, false, false, false,
	true, false, false, false, true, false, true,
}

func (m *Matrix) placeFinder() {
	for row := range 7 {
		for col := range 7 {
			var ring = row == 0 || row == 6 || col == 0 || col == 6
			var core = row >= 2 && row <= 4 && col >= 2 && col <= 4
			if ring || core {
				m[row][col] = true
			}
		}
	}
}

func (m *Matrix) placeTiming() {
	for i := 7; i < Size; i++ {
		m[0][i] = i%2 == 0
		m[i][0] = i%2 == 0
	}
}

// placeFormat puts bits 0-7 down column 8 (rows 1-8) and bits 8-14 along
// row 8, right to left (columns 7-1).
func (m *Matrix) placeFormat() {
	for row := 1; row <= 8; row++ {
		m[row][8] = m1FormatBits[row-1]
	}
	for col := 7; col >= 1; col-- {
		m[8][col] = m1FormatBits[15-col]
	}
}

/*-------------------------------------------------------------
 *
 * Name:	placeData
 *
 * Purpose:	Fill the data region with the message and check bits.
 *
 * Inputs:	bits	- Everything to be placed, in order.
 *
 * Returns:	Number of bits placed.  Anything past the data region
 *		capacity is not placed.
 *
 * Description:	Columns are taken in pairs from the right, {10,9},
 *		{8,7} and so on.  Within a pair, rows are scanned from
 *		the bottom up and the right column is tried before the
 *		left one.  Modules outside the data region are skipped.
 *
 *--------------------------------------------------------------*/

func (m *Matrix) placeData(bits BitSequence) int {
	var next = 0

	for col := Size - 1; col >= 0; col -= 2 {
		for row := Size - 1; row >= 0; row-- {
			for _, c := range [2]int{col, col - 1} {
				if next >= len(bits) {
					return next
				}
				if IsDataRegion(row, c) {
					m[row][c] = bits[next]
					next++
				}
			}
		}
	}

	return next
}

// applyMask inverts every data region module where (row + col) is even.
func (m *Matrix) applyMask() {
	for row := range Size {
		for col := range Size {
			if IsDataRegion(row, col) && (row+col)%2 == 0 {
				m[row][col] = !m[row][col]
			}
		}
	}
}

// buildMatrix runs all five construction phases and returns the finished
// matrix with the number of bits that were placed.
func buildMatrix(bits BitSequence) (Matrix, int) {
	var m Matrix

	m.placeFinder()
	m.placeTiming()
	m.placeFormat()
	var placed = m.placeData(bits)
	m.applyMask()

	return m, placed
}
