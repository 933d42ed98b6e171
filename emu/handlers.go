package emu

import "github.com/sarchlab/mmixsim/insts"

// Handler executes one instruction against a machine. A handler that
// returns an error must leave the machine unchanged.
type Handler func(m *Machine, inst insts.Instruction) error

// defaultHandlers lists the built-in rows of the dispatch table. Extending
// the instruction set means adding a row here or passing WithHandler.
func defaultHandlers() map[insts.Op]Handler {
	return map[insts.Op]Handler{
		insts.OpADDU:  execADDU,
		insts.OpADDUI: execADDUI,
		insts.OpLDB:   execSignedByteLoad,
		insts.OpLDBI:  execSignedByteLoad,
		insts.OpLDBU:  execUnsignedByteLoad,
		insts.OpLDBUI: execUnsignedByteLoad,
		insts.OpGET:   execGET,
		insts.OpPUT:   execPUT,
	}
}

// EffectiveAddress returns the address a load or store instruction
// accesses: $Y+Z for immediate forms and $Y+$Z otherwise, wrapping modulo
// 2^64. The second result is false for opcodes that do not access memory.
// The address is not range-checked.
func EffectiveAddress(m *Machine, inst insts.Instruction) (uint64, bool) {
	if !inst.Op.IsLoad() && !inst.Op.IsStore() {
		return 0, false
	}

	base := m.regFile.ReadGP(inst.Y)
	if inst.Op.IsImmediate() {
		return base + uint64(inst.Z), true
	}
	return base + m.regFile.ReadGP(inst.Z), true
}

func execADDU(m *Machine, inst insts.Instruction) error {
	m.alu.ADDU(inst.X, inst.Y, inst.Z)
	return nil
}

func execADDUI(m *Machine, inst insts.Instruction) error {
	m.alu.ADDUImm(inst.X, inst.Y, inst.Z)
	return nil
}

func execSignedByteLoad(m *Machine, inst insts.Instruction) error {
	addr, _ := EffectiveAddress(m, inst)
	return m.lsu.LDB(inst.X, addr)
}

func execUnsignedByteLoad(m *Machine, inst insts.Instruction) error {
	addr, _ := EffectiveAddress(m, inst)
	return m.lsu.LDBU(inst.X, addr)
}

// execGET copies special register Z into $X.
func execGET(m *Machine, inst insts.Instruction) error {
	value, err := m.regFile.ReadSP(SpecialReg(inst.Z))
	if err != nil {
		return err
	}
	m.regFile.WriteGP(inst.X, value)
	return nil
}

// execPUT copies $Z into special register X.
func execPUT(m *Machine, inst insts.Instruction) error {
	return m.regFile.WriteSP(SpecialReg(inst.X), m.regFile.ReadGP(inst.Z))
}
