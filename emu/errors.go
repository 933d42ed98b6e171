package emu

import (
	"errors"
	"fmt"

	"github.com/sarchlab/mmixsim/insts"
)

var (
	// ErrMemoryFault is reported when an access falls outside the memory
	// arena.
	ErrMemoryFault = errors.New("memory fault")

	// ErrUnimplementedOpcode is reported for opcodes without a handler.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")

	// ErrInvalidRegisterIndex is reported when a special register number is
	// not below NumSpecialRegs.
	ErrInvalidRegisterIndex = errors.New("invalid register index")

	// ErrMachineClosed is reported when a machine is used after Close.
	ErrMachineClosed = errors.New("machine closed")
)

// MemoryFaultError describes an out-of-range memory access.
// It matches ErrMemoryFault with errors.Is.
type MemoryFaultError struct {
	// Address is the first byte of the rejected access.
	Address uint64
	// Size is the access width in bytes.
	Size int
}

func (e *MemoryFaultError) Error() string {
	return fmt.Sprintf("memory fault: %d-byte access at 0x%X outside [0, 0x%X)",
		e.Size, e.Address, MemorySize)
}

func (e *MemoryFaultError) Unwrap() error {
	return ErrMemoryFault
}

// UnimplementedOpcodeError reports an opcode with no registered handler.
// It matches ErrUnimplementedOpcode with errors.Is.
type UnimplementedOpcodeError struct {
	Op insts.Op
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode %v (0x%02X)", e.Op, uint8(e.Op))
}

func (e *UnimplementedOpcodeError) Unwrap() error {
	return ErrUnimplementedOpcode
}

// RegisterIndexError reports a special register number out of range.
// It matches ErrInvalidRegisterIndex with errors.Is.
type RegisterIndexError struct {
	Index uint8
}

func (e *RegisterIndexError) Error() string {
	return fmt.Sprintf("invalid special register %d (must be < %d)", e.Index, NumSpecialRegs)
}

func (e *RegisterIndexError) Unwrap() error {
	return ErrInvalidRegisterIndex
}
