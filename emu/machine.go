package emu

import "fmt"

// Machine is the complete state of one simulated MMIX processor: a register
// file and a memory arena. There is no program counter; callers sequence
// instructions themselves through an Engine.
//
// A Machine must be driven by one goroutine at a time. Independent programs
// that run concurrently each get their own Machine.
type Machine struct {
	regFile *RegFile
	memory  *Memory

	// Execution units
	alu *ALU
	lsu *LoadStoreUnit
}

// NewMachine creates a machine with every register and every memory byte
// zero. The machine owns its memory arena until Close is called.
func NewMachine() (*Machine, error) {
	memory, err := NewMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to create machine: %w", err)
	}

	regFile := &RegFile{}

	return &Machine{
		regFile: regFile,
		memory:  memory,
		alu:     NewALU(regFile),
		lsu:     NewLoadStoreUnit(regFile, memory),
	}, nil
}

// RegFile returns the machine's register file.
func (m *Machine) RegFile() *RegFile {
	return m.regFile
}

// Memory returns the machine's memory.
func (m *Machine) Memory() *Memory {
	return m.memory
}

// GP reads general-purpose register reg.
func (m *Machine) GP(reg uint8) uint64 {
	return m.regFile.ReadGP(reg)
}

// SP reads special-purpose register reg.
func (m *Machine) SP(reg SpecialReg) (uint64, error) {
	return m.regFile.ReadSP(reg)
}

// IsZero reports whether all registers and all of memory are zero, which
// holds for a freshly created machine.
func (m *Machine) IsZero() bool {
	return m.regFile.IsZero() && m.memory.IsZero()
}

// Close releases the memory arena. It is safe to call more than once.
func (m *Machine) Close() error {
	return m.memory.Close()
}

// Closed reports whether Close has released the machine.
func (m *Machine) Closed() bool {
	return m.memory.Closed()
}
