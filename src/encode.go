// Package microqr encodes short strings of digits as Micro QR M1 symbols.
//
// An M1 symbol is an 11x11 module matrix with a single finder pattern,
// numeric mode data and two error detection codewords.  The whole encoding
// is a pure function of the input digits; Encode is the entry point.
package microqr

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// OverflowPolicy decides what happens when the data and check bits don't
// fit in the data region.
type OverflowPolicy int

const (
	// OverflowTruncate places as many bits as fit and drops the rest.
	OverflowTruncate OverflowPolicy = iota

	// OverflowStrict fails with *CapacityExceededError instead.
	OverflowStrict
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowTruncate:
		return "truncate"
	case OverflowStrict:
		return "strict"
	}
	return fmt.Sprintf("OverflowPolicy(%d)", int(p))
}

// ParseOverflowPolicy is the inverse of OverflowPolicy.String.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch s {
	case "truncate", "":
		return OverflowTruncate, nil
	case "strict":
		return OverflowStrict, nil
	}
	return 0, fmt.Errorf("unknown overflow policy %q (want truncate or strict)", s)
}

// Symbol holds the result of every stage of encoding one message.
type Symbol struct {
	Data          string
	Bits          BitSequence
	DataCodewords []byte
	ECCodewords   [ECCodewords]byte
	Placed        int // Data and check bits that made it into the matrix.
	Dropped       int // Bits left over once the data region was full.
	Matrix        Matrix
}

// Encoder turns digit strings into M1 symbols.  The zero value truncates
// on overflow and logs to the package logger.  An Encoder is safe for
// concurrent use.
type Encoder struct {
	Overflow OverflowPolicy
	Logger   *log.Logger
}

func (e *Encoder) activeLogger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return logger
}

/*-------------------------------------------------------------
 *
 * Name:	EncodeSymbol
 *
 * Purpose:	Run the complete M1 encoding pipeline.
 *
 * Inputs:	data	- 1 to 7 decimal digits.
 *
 * Returns:	All intermediate stages and the finished matrix.
 *		Nothing is returned along with an error.
 *
 * Description:	digits -> bit sequence -> codewords -> check codewords,
 *		then the message bits followed by the check bits are laid
 *		into a fresh matrix.
 *
 *--------------------------------------------------------------*/

func (e *Encoder) EncodeSymbol(data string) (*Symbol, error) {
	var l = e.activeLogger()

	var bits, err = EncodeNumeric(data)
	if err != nil {
		return nil, err
	}

	var codewords = bits.Codewords()
	var ec = GenerateErrorDetection(codewords)

	var all = make(BitSequence, 0, len(bits)+8*ECCodewords)
	all = append(all, bits...)
	all = append(all, codewordBits(ec[:])...)

	if len(all) > DataCapacity && e.Overflow == OverflowStrict {
		return nil, &CapacityExceededError{Bits: len(all), Capacity: DataCapacity}
	}

	var matrix, placed = buildMatrix(all)

	var sym = &Symbol{
		Data:          data,
		Bits:          bits,
		DataCodewords: codewords,
		ECCodewords:   ec,
		Placed:        placed,
		Dropped:       len(all) - placed,
		Matrix:        matrix,
	}

	if sym.Dropped > 0 {
		l.Warn("data region full, bits dropped", "data", data, "bits", len(all), "capacity", DataCapacity, "dropped", sym.Dropped)
	}

	if debugLevel >= DebugStages {
		l.Debug("encoded", "data", data, "bits", len(bits), "codewords", len(codewords), "ec", fmt.Sprintf("%02x %02x", ec[0], ec[1]), "placed", placed)
	}
	if debugLevel >= DebugDump {
		l.Debug("message bits " + bits.String())
		l.Debug("data codewords\n" + hexDump(codewords))
		l.Debug("check codewords\n" + hexDump(ec[:]))
	}

	return sym, nil
}

// Encode returns the M1 matrix for data.  On error the zero Matrix is
// returned.
func (e *Encoder) Encode(data string) (Matrix, error) {
	var sym, err = e.EncodeSymbol(data)
	if err != nil {
		return Matrix{}, err
	}
	return sym.Matrix, nil
}

var defaultEncoder Encoder

// EncodeSymbol encodes data with the default, truncating, encoder.
func EncodeSymbol(data string) (*Symbol, error) {
	return defaultEncoder.EncodeSymbol(data)
}

// Encode returns the M1 matrix for data using the default, truncating,
// encoder.
func Encode(data string) (Matrix, error) {
	return defaultEncoder.Encode(data)
}
