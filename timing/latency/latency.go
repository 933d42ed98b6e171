// Package latency provides the MMIX instruction cost model.
//
// Every instruction costs a number of oops (υ) plus, for memory
// instructions, a number of mems (μ). The model follows the MMIX reference
// costs and can be tuned via TimingConfig.
package latency

import (
	"github.com/sarchlab/mmixsim/insts"
)

// Table provides instruction cost lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new cost table with default MMIX values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a new cost table with custom configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// GetOops returns the number of oops the instruction costs.
func (t *Table) GetOops(inst insts.Instruction) uint64 {
	switch op := inst.Op; {
	case op >= insts.OpMUL && op <= insts.OpMULUI:
		return t.config.MultiplyOops

	case op >= insts.OpDIV && op <= insts.OpDIVUI:
		return t.config.DivideOops

	case op == insts.OpFDIV, op == insts.OpFSQRT:
		return t.config.FloatDivideOops

	case op >= insts.OpFCMP && op <= insts.OpFINT:
		return t.config.FloatOops

	case op == insts.OpTRAP, op == insts.OpTRIP, op == insts.OpRESUME:
		return t.config.TrapOops

	case op == insts.OpCSWAP, op == insts.OpCSWAPI:
		return 2

	case op == insts.OpGO, op == insts.OpGOI,
		op == insts.OpPUSHJ, op == insts.OpPUSHJB,
		op == insts.OpPUSHGO, op == insts.OpPUSHGOI,
		op == insts.OpPOP:
		return 3

	default:
		return 1
	}
}

// GetMems returns the number of memory accesses the instruction costs.
func (t *Table) GetMems(inst insts.Instruction) uint64 {
	switch {
	case inst.Op == insts.OpCSWAP, inst.Op == insts.OpCSWAPI:
		return 2
	case t.IsMemoryOp(inst):
		return 1
	default:
		return 0
	}
}

// GetLatency returns the cost of the instruction in cycles, charging
// MemCycles for every mem.
func (t *Table) GetLatency(inst insts.Instruction) uint64 {
	return t.GetOops(inst)*t.config.OopCycles + t.GetMems(inst)*t.config.MemCycles
}

// IsMemoryOp returns true if the instruction accesses memory.
func (t *Table) IsMemoryOp(inst insts.Instruction) bool {
	return t.IsLoadOp(inst) || t.IsStoreOp(inst)
}

// IsLoadOp returns true if the instruction is a load operation.
func (t *Table) IsLoadOp(inst insts.Instruction) bool {
	return inst.Op.IsLoad()
}

// IsStoreOp returns true if the instruction is a store operation.
func (t *Table) IsStoreOp(inst insts.Instruction) bool {
	return inst.Op.IsStore()
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}
