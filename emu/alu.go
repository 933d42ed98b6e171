package emu

// ALU implements MMIX integer arithmetic.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADDU performs unsigned addition: $X = $Y + $Z (mod 2^64)
func (a *ALU) ADDU(x, y, z uint8) {
	op1 := a.regFile.ReadGP(y)
	op2 := a.regFile.ReadGP(z)
	a.regFile.WriteGP(x, op1+op2)
}

// ADDUImm performs unsigned addition with immediate: $X = $Y + imm (mod 2^64)
func (a *ALU) ADDUImm(x, y, imm uint8) {
	op1 := a.regFile.ReadGP(y)
	a.regFile.WriteGP(x, op1+uint64(imm))
}
