// Package insts provides MMIX instruction definitions.
//
// Instructions arrive already decoded: an opcode byte plus the three
// operand bytes X, Y and Z. Operand meaning depends on the opcode. For the
// immediate forms (the opcodes ending in I), Z is an unsigned constant
// rather than a register number.
//
// Usage:
//
//	inst := insts.New(insts.OpADDUI, 0, 1, 42) // ADDU $0,$1,42
//	fmt.Printf("%v\n", inst)
package insts

import "fmt"

// Instruction is a decoded MMIX instruction. It is a plain value and is
// never modified after construction.
type Instruction struct {
	// Op is the opcode.
	Op Op

	// X, Y and Z are the operand fields.
	X uint8
	Y uint8
	Z uint8
}

// New creates an instruction from an opcode and its three operand fields.
func New(op Op, x, y, z uint8) Instruction {
	return Instruction{Op: op, X: x, Y: y, Z: z}
}

// String formats the instruction in assembler-like syntax, e.g.
// "LDB $0,$1,$2" or "ADDUI $0,$1,42".
func (i Instruction) String() string {
	switch {
	case i.Op == OpGET:
		return fmt.Sprintf("%v $%d,%d", i.Op, i.X, i.Z)
	case i.Op == OpPUT:
		return fmt.Sprintf("%v %d,$%d", i.Op, i.X, i.Z)
	case i.Op.IsImmediate():
		return fmt.Sprintf("%v $%d,$%d,%d", i.Op, i.X, i.Y, i.Z)
	default:
		return fmt.Sprintf("%v $%d,$%d,$%d", i.Op, i.X, i.Y, i.Z)
	}
}
