package emu

import (
	"bytes"
	"fmt"

	"github.com/edsrzf/mmap-go"
)

const (
	// MaxAddress is the highest valid byte address.
	MaxAddress uint64 = 1<<32 - 1

	// MemorySize is the size of the memory arena in bytes (4 GiB).
	MemorySize uint64 = MaxAddress + 1
)

// zeroScanChunk is the block size used by IsZero.
const zeroScanChunk = 64 * 1024

var zeroChunk [zeroScanChunk]byte

// Memory is the flat byte-addressable memory of a machine.
//
// The arena is one anonymous mapping of MemorySize bytes. Pages are
// supplied zeroed by the operating system and only become resident once
// touched, so a fresh arena costs address space rather than RAM. All
// accesses are bounds-checked; the mapping itself is never handed out.
type Memory struct {
	data mmap.MMap
}

// NewMemory maps a zeroed arena of MemorySize bytes. The caller owns the
// arena and must release it with Close.
func NewMemory() (*Memory, error) {
	length, err := mapLength(MemorySize)
	if err != nil {
		return nil, err
	}

	data, err := mmap.MapRegion(nil, length, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to map %d bytes of memory: %w", MemorySize, err)
	}

	return &Memory{data: data}, nil
}

// mapLength converts an arena size to a mapping length, failing where the
// size does not fit in an int (32-bit platforms).
func mapLength(size uint64) (int, error) {
	n := int(size)
	if n <= 0 || uint64(n) != size {
		return 0, fmt.Errorf("memory size %d does not fit in an int on this platform", size)
	}
	return n, nil
}

// Close releases the arena. Calling Close again does nothing; accesses
// after Close fail with ErrMachineClosed.
func (m *Memory) Close() error {
	if m.data == nil {
		return nil
	}

	if err := m.data.Unmap(); err != nil {
		return fmt.Errorf("failed to unmap memory: %w", err)
	}
	m.data = nil

	return nil
}

// Closed reports whether the arena has been released.
func (m *Memory) Closed() bool {
	return m.data == nil
}

// Size returns the arena size in bytes.
func (m *Memory) Size() uint64 {
	return MemorySize
}

// check validates an access of size bytes starting at addr.
func (m *Memory) check(addr uint64, size int) error {
	if m.data == nil {
		return ErrMachineClosed
	}
	if addr >= MemorySize || uint64(size) > MemorySize-addr {
		return &MemoryFaultError{Address: addr, Size: size}
	}
	return nil
}

// Read8 reads the byte at addr.
func (m *Memory) Read8(addr uint64) (uint8, error) {
	if err := m.check(addr, 1); err != nil {
		return 0, err
	}
	return m.data[addr], nil
}

// Write8 writes the byte at addr.
func (m *Memory) Write8(addr uint64, value uint8) error {
	if err := m.check(addr, 1); err != nil {
		return err
	}
	m.data[addr] = value
	return nil
}

// ReadBytes copies n bytes starting at addr. Either the whole range is
// readable or nothing is returned.
func (m *Memory) ReadBytes(addr uint64, n int) ([]byte, error) {
	if n < 0 {
		return nil, &MemoryFaultError{Address: addr, Size: n}
	}
	if err := m.check(addr, n); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, m.data[addr:addr+uint64(n)])
	return out, nil
}

// LoadBytes copies data into memory starting at addr. Either the whole
// range is written or memory is left unchanged.
func (m *Memory) LoadBytes(addr uint64, data []byte) error {
	if err := m.check(addr, len(data)); err != nil {
		return err
	}
	copy(m.data[addr:], data)
	return nil
}

// IsZero reports whether every byte of the arena is zero. It scans in
// fixed-size blocks and gives the same answer as a byte-by-byte scan.
// A released arena reports false.
func (m *Memory) IsZero() bool {
	if m.data == nil {
		return false
	}

	for off := 0; off < len(m.data); off += zeroScanChunk {
		end := off + zeroScanChunk
		if end > len(m.data) {
			end = len(m.data)
		}
		if !bytes.Equal(m.data[off:end], zeroChunk[:end-off]) {
			return false
		}
	}
	return true
}
