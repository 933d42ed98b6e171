package emu

import (
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/mmixsim/insts"
)

// Engine executes decoded instructions against machines.
//
// The dispatch table is fixed when the engine is built, so one Engine may
// be shared by goroutines that each drive their own Machine.
type Engine struct {
	handlers [256]Handler

	// I/O
	trace io.Writer
}

// EngineOption is a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithHandler installs h as the handler for op, replacing any built-in
// handler. A nil handler removes the opcode from the table.
func WithHandler(op insts.Op, h Handler) EngineOption {
	return func(e *Engine) {
		e.handlers[op] = h
	}
}

// WithTrace writes one line per applied instruction, and one per failure,
// to w.
func WithTrace(w io.Writer) EngineOption {
	return func(e *Engine) {
		e.trace = w
	}
}

// NewEngine creates an engine with the built-in opcode handlers.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{}

	for op, h := range defaultHandlers() {
		e.handlers[op] = h
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Implemented reports whether op has a handler.
func (e *Engine) Implemented(op insts.Op) bool {
	return e.handlers[op] != nil
}

// Apply executes a single instruction against m.
//
// Opcodes without a handler fail with *UnimplementedOpcodeError before
// anything is touched. A failing instruction leaves registers and memory
// unchanged. Apply never panics on bad operands.
func (e *Engine) Apply(m *Machine, inst insts.Instruction) error {
	if m.Closed() {
		e.tracef("%v: %v\n", inst, ErrMachineClosed)
		return ErrMachineClosed
	}

	h := e.handlers[inst.Op]
	if h == nil {
		err := &UnimplementedOpcodeError{Op: inst.Op}
		e.tracef("%v: %v\n", inst, err)
		return err
	}

	if err := h(m, inst); err != nil {
		e.tracef("%v: %v\n", inst, err)
		return err
	}

	e.tracef("%v\n", inst)
	return nil
}

// Fold applies prog to m in order and stops at the first failure. It
// returns m together with that failure, so the result is the same as
// chaining the instructions one by one.
func (e *Engine) Fold(m *Machine, prog []insts.Instruction) (*Machine, error) {
	c := e.Chain(m)
	for _, inst := range prog {
		if c.Err() != nil {
			break
		}
		c = c.Apply(inst)
	}
	return c.Machine(), c.Err()
}

// ErrorPolicy tells Run what to do when an instruction fails.
type ErrorPolicy int

const (
	// StopOnError ends the run at the first failing instruction.
	StopOnError ErrorPolicy = iota
	// ContinueOnError records the failure and moves on.
	ContinueOnError
)

// InstructionError ties a failure to its position in a program.
type InstructionError struct {
	Index int
	Inst  insts.Instruction
	Err   error
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("instruction %d (%v): %v", e.Index, e.Inst, e.Err)
}

func (e *InstructionError) Unwrap() error {
	return e.Err
}

// RunReport summarizes a call to Run.
type RunReport struct {
	// Applied is the number of instructions that completed.
	Applied int

	// Failures lists failed instructions in program order.
	Failures []*InstructionError
}

// Err joins all failures, or returns nil if there were none.
func (r RunReport) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}

	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Run applies prog to m and handles failures according to policy.
func (e *Engine) Run(m *Machine, prog []insts.Instruction, policy ErrorPolicy) RunReport {
	var report RunReport

	for i, inst := range prog {
		err := e.Apply(m, inst)
		if err == nil {
			report.Applied++
			continue
		}

		report.Failures = append(report.Failures, &InstructionError{
			Index: i,
			Inst:  inst,
			Err:   err,
		})

		if policy == StopOnError || errors.Is(err, ErrMachineClosed) {
			break
		}
	}

	return report
}

func (e *Engine) tracef(format string, args ...any) {
	if e.trace == nil {
		return
	}
	_, _ = fmt.Fprintf(e.trace, format, args...)
}
