package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimingConfig holds the cost parameters of the MMIX timing model.
// Costs are counted in oops (υ, one processor cycle of work) and mems
// (μ, one main memory access).
type TimingConfig struct {
	// OopCycles is the number of cycles one oop takes. Default: 1.
	OopCycles uint64 `json:"oop_cycles"`

	// MemCycles is the number of cycles one mem takes when no cache model
	// is attached. Default: 4.
	MemCycles uint64 `json:"mem_cycles"`

	// MultiplyOops is the cost of integer multiplication. Default: 10.
	MultiplyOops uint64 `json:"multiply_oops"`

	// DivideOops is the cost of integer division. Default: 60.
	DivideOops uint64 `json:"divide_oops"`

	// FloatOops is the cost of most floating point operations. Default: 4.
	FloatOops uint64 `json:"float_oops"`

	// FloatDivideOops is the cost of floating division and square root.
	// Default: 40.
	FloatDivideOops uint64 `json:"float_divide_oops"`

	// TrapOops is the cost of TRAP, TRIP and RESUME. Default: 5.
	TrapOops uint64 `json:"trap_oops"`
}

// DefaultTimingConfig returns a TimingConfig with the costs from the MMIX
// reference documentation.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		OopCycles:       1,
		MemCycles:       4,
		MultiplyOops:    10,
		DivideOops:      60,
		FloatOops:       4,
		FloatDivideOops: 40,
		TrapOops:        5,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Fields missing from
// the file keep their default values.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that all cost values are valid (> 0).
func (c *TimingConfig) Validate() error {
	if c.OopCycles == 0 {
		return fmt.Errorf("oop_cycles must be > 0")
	}
	if c.MemCycles == 0 {
		return fmt.Errorf("mem_cycles must be > 0")
	}
	if c.MultiplyOops == 0 {
		return fmt.Errorf("multiply_oops must be > 0")
	}
	if c.DivideOops == 0 {
		return fmt.Errorf("divide_oops must be > 0")
	}
	if c.FloatOops == 0 {
		return fmt.Errorf("float_oops must be > 0")
	}
	if c.FloatDivideOops == 0 {
		return fmt.Errorf("float_divide_oops must be > 0")
	}
	if c.TrapOops == 0 {
		return fmt.Errorf("trap_oops must be > 0")
	}
	return nil
}

// Clone returns a deep copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}
