package microqr

// Size is the width and height of an M1 symbol in modules.
const Size = 11

// IsDataRegion reports whether the module at row, col may hold a data or
// check bit.  Placement and masking both rely on this, and nothing else,
// to decide which modules they may touch.  Anything outside the symbol is
// not data region.
func IsDataRegion(row, col int) bool {
	switch {
	case row < 0 || row >= Size || col < 0 || col >= Size:
		return false
	case row <= 6 && col <= 6: // Finder.
		return false
	case row == 7 && col <= 7, col == 7 && row <= 7: // Separator.
		return false
	case row == 0 || col == 0: // Timing.
		return false
	case row == 8 && col >= 1 && col <= 8, col == 8 && row >= 1 && row <= 7: // Format information.
		return false
	}
	return true
}

// DataCapacity is the number of modules in the data region, which is the
// most data and check bits a symbol can hold.
var DataCapacity = countDataRegion()

func countDataRegion() int {
	var n = 0
	for row := range Size {
		for col := range Size {
			if IsDataRegion(row, col) {
				n++
			}
		}
	}
	return n
}
