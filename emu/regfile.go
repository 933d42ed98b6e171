// Package emu provides functional MMIX emulation.
package emu

const (
	// NumGeneralRegs is the number of general-purpose registers. Every
	// 8-bit operand field names a valid one.
	NumGeneralRegs = 256

	// NumSpecialRegs is the number of special-purpose registers.
	NumSpecialRegs = 32
)

// SpecialReg names a special-purpose register.
type SpecialReg uint8

// Special-purpose registers.
const (
	SpecialRA SpecialReg = iota // arithmetic status
	SpecialRB
	SpecialRC
	SpecialRD
	SpecialRE
	SpecialRF
	SpecialRG
	SpecialRH
	SpecialRI
	SpecialRJ
	SpecialRK
	SpecialRL
	SpecialRM
	SpecialRN
	SpecialRO
	SpecialRP
	SpecialRQ
	SpecialRR
	SpecialRS
	SpecialRT
	SpecialRU
	SpecialRV
	SpecialRW
	SpecialRX
	SpecialRY
	SpecialRZ
	SpecialRBB
	SpecialRTT
	SpecialRWW
	SpecialRXX
	SpecialRYY
	SpecialRZZ
)

var specialRegNames = [NumSpecialRegs]string{
	"rA", "rB", "rC", "rD", "rE", "rF", "rG", "rH",
	"rI", "rJ", "rK", "rL", "rM", "rN", "rO", "rP",
	"rQ", "rR", "rS", "rT", "rU", "rV", "rW", "rX",
	"rY", "rZ", "rBB", "rTT", "rWW", "rXX", "rYY", "rZZ",
}

// Valid reports whether the register number is below NumSpecialRegs.
func (r SpecialReg) Valid() bool {
	return int(r) < NumSpecialRegs
}

func (r SpecialReg) String() string {
	if !r.Valid() {
		return "r?"
	}
	return specialRegNames[r]
}

// RegFile represents the MMIX register file.
// The zero value has every register cleared.
type RegFile struct {
	// GP holds general-purpose registers $0-$255.
	GP [NumGeneralRegs]uint64

	// SP holds special-purpose registers rA-rZZ.
	SP [NumSpecialRegs]uint64
}

// ReadGP reads a general-purpose register.
func (r *RegFile) ReadGP(reg uint8) uint64 {
	return r.GP[reg]
}

// WriteGP writes a general-purpose register.
func (r *RegFile) WriteGP(reg uint8, value uint64) {
	r.GP[reg] = value
}

// ReadSP reads a special-purpose register. Register numbers at or above
// NumSpecialRegs fail with a *RegisterIndexError.
func (r *RegFile) ReadSP(reg SpecialReg) (uint64, error) {
	if !reg.Valid() {
		return 0, &RegisterIndexError{Index: uint8(reg)}
	}
	return r.SP[reg], nil
}

// WriteSP writes a special-purpose register. Register numbers at or above
// NumSpecialRegs fail with a *RegisterIndexError and change nothing.
func (r *RegFile) WriteSP(reg SpecialReg, value uint64) error {
	if !reg.Valid() {
		return &RegisterIndexError{Index: uint8(reg)}
	}
	r.SP[reg] = value
	return nil
}

// IsZero reports whether every register is zero.
func (r *RegFile) IsZero() bool {
	return *r == RegFile{}
}
