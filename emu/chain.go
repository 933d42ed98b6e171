package emu

import "github.com/sarchlab/mmixsim/insts"

// Chain threads a machine through a sequence of instructions:
//
//	err := engine.Chain(m).Apply(i1).Apply(i2).Err()
//
// After the first failure the remaining Apply calls do nothing, so the
// chain ends in the same state as Fold over the same instructions.
type Chain struct {
	engine  *Engine
	machine *Machine
	applied int
	err     error
}

// Chain starts a chain on m.
func (e *Engine) Chain(m *Machine) *Chain {
	return &Chain{engine: e, machine: m}
}

// Apply executes inst unless an earlier instruction failed.
func (c *Chain) Apply(inst insts.Instruction) *Chain {
	if c.err != nil {
		return c
	}

	if err := c.engine.Apply(c.machine, inst); err != nil {
		c.err = err
		return c
	}

	c.applied++
	return c
}

// Machine returns the machine threaded through the chain.
func (c *Chain) Machine() *Machine {
	return c.machine
}

// Applied returns how many instructions completed.
func (c *Chain) Applied() int {
	return c.applied
}

// Err returns the first failure, if any.
func (c *Chain) Err() error {
	return c.err
}
