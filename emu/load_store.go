package emu

// LoadStoreUnit implements MMIX memory loads.
//
// Every load reads memory before touching the register file, so a fault
// leaves the destination register as it was.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile: regFile,
		memory:  memory,
	}
}

// LDB loads a signed byte with sign extension: $X = sign_extend(mem[addr])
func (lsu *LoadStoreUnit) LDB(x uint8, addr uint64) error {
	value, err := lsu.memory.Read8(addr)
	if err != nil {
		return err
	}
	// Sign extend from 8 to 64 bits
	lsu.regFile.WriteGP(x, uint64(int64(int8(value))))
	return nil
}

// LDBU loads an unsigned byte with zero extension: $X = zero_extend(mem[addr])
func (lsu *LoadStoreUnit) LDBU(x uint8, addr uint64) error {
	value, err := lsu.memory.Read8(addr)
	if err != nil {
		return err
	}
	lsu.regFile.WriteGP(x, uint64(value))
	return nil
}
