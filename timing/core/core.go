// Package core provides the cost-accounting MMIX core model.
// It drives an emu.Engine over a Machine and charges each completed
// instruction its oops and mems.
package core

import (
	"github.com/sarchlab/mmixsim/emu"
	"github.com/sarchlab/mmixsim/insts"
	"github.com/sarchlab/mmixsim/timing/cache"
	"github.com/sarchlab/mmixsim/timing/latency"
)

// Stats holds performance statistics for the core.
type Stats struct {
	// Cycles is the total number of cycles charged.
	Cycles uint64
	// Instructions is the number of instructions that completed.
	Instructions uint64
	// Oops is the total oop count of completed instructions.
	Oops uint64
	// Mems is the total mem count of completed instructions.
	Mems uint64
	// Faults is the number of instructions that failed.
	Faults uint64
}

// Core charges cycles for instructions executed on one machine.
type Core struct {
	engine  *emu.Engine
	machine *emu.Machine

	table  *latency.Table
	dcache *cache.Cache

	stats Stats
}

// Option is a functional option for configuring the Core.
type Option func(*Core)

// WithLatencyTable sets the cost table. The default is latency.NewTable().
func WithLatencyTable(table *latency.Table) Option {
	return func(c *Core) {
		c.table = table
	}
}

// WithDataCache charges memory accesses through a cache model instead of
// a flat MemCycles per mem.
func WithDataCache(dcache *cache.Cache) Option {
	return func(c *Core) {
		c.dcache = dcache
	}
}

// NewCore creates a new Core driving engine over machine.
func NewCore(engine *emu.Engine, machine *emu.Machine, opts ...Option) *Core {
	c := &Core{
		engine:  engine,
		machine: machine,
		table:   latency.NewTable(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Machine returns the machine the core drives.
func (c *Core) Machine() *emu.Machine {
	return c.machine
}

// Apply executes one instruction and charges its cost. A failed
// instruction is counted in Faults and costs nothing.
func (c *Core) Apply(inst insts.Instruction) error {
	// The address must be taken before execution; a load may overwrite
	// its own base register.
	addr, accessesMemory := emu.EffectiveAddress(c.machine, inst)

	if err := c.engine.Apply(c.machine, inst); err != nil {
		c.stats.Faults++
		return err
	}

	config := c.table.Config()
	oops := c.table.GetOops(inst)
	mems := c.table.GetMems(inst)

	cycles := oops * config.OopCycles
	if mems > 0 {
		if c.dcache != nil && accessesMemory {
			for i := uint64(0); i < mems; i++ {
				cycles += c.dcache.Access(addr).Latency
			}
		} else {
			cycles += mems * config.MemCycles
		}
	}

	c.stats.Instructions++
	c.stats.Oops += oops
	c.stats.Mems += mems
	c.stats.Cycles += cycles

	return nil
}

// Run applies prog in order and stops at the first failure.
// It returns the number of instructions that completed.
func (c *Core) Run(prog []insts.Instruction) (int, error) {
	for i, inst := range prog {
		if err := c.Apply(inst); err != nil {
			return i, err
		}
	}
	return len(prog), nil
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	return c.stats
}

// ResetStats clears the statistics, leaving machine and cache state alone.
func (c *Core) ResetStats() {
	c.stats = Stats{}
}
