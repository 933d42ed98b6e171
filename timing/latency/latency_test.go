package latency_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mmixsim/insts"
	"github.com/sarchlab/mmixsim/timing/latency"
)

var _ = Describe("Latency", func() {
	var table *latency.Table

	BeforeEach(func() {
		table = latency.NewTable()
	})

	Describe("Default Timing Values", func() {
		It("should charge one cycle per oop", func() {
			Expect(table.Config().OopCycles).To(Equal(uint64(1)))
		})

		It("should charge four cycles per mem", func() {
			Expect(table.Config().MemCycles).To(Equal(uint64(4)))
		})
	})

	DescribeTable("oops and mems",
		func(op insts.Op, oops, mems uint64) {
			inst := insts.New(op, 0, 1, 2)
			Expect(table.GetOops(inst)).To(Equal(oops))
			Expect(table.GetMems(inst)).To(Equal(mems))
		},
		Entry("ADDU", insts.OpADDU, uint64(1), uint64(0)),
		Entry("ADDUI", insts.OpADDUI, uint64(1), uint64(0)),
		Entry("LDB", insts.OpLDB, uint64(1), uint64(1)),
		Entry("LDBI", insts.OpLDBI, uint64(1), uint64(1)),
		Entry("LDBU", insts.OpLDBU, uint64(1), uint64(1)),
		Entry("STO", insts.OpSTO, uint64(1), uint64(1)),
		Entry("GET", insts.OpGET, uint64(1), uint64(0)),
		Entry("PUT", insts.OpPUT, uint64(1), uint64(0)),
		Entry("MULU", insts.OpMULU, uint64(10), uint64(0)),
		Entry("DIVI", insts.OpDIVI, uint64(60), uint64(0)),
		Entry("FADD", insts.OpFADD, uint64(4), uint64(0)),
		Entry("FSQRT", insts.OpFSQRT, uint64(40), uint64(0)),
		Entry("CSWAP", insts.OpCSWAP, uint64(2), uint64(2)),
		Entry("PUSHJ", insts.OpPUSHJ, uint64(3), uint64(0)),
		Entry("TRAP", insts.OpTRAP, uint64(5), uint64(0)),
	)

	Describe("GetLatency", func() {
		It("should return 1 cycle for ADDUI", func() {
			Expect(table.GetLatency(insts.New(insts.OpADDUI, 0, 1, 2))).To(Equal(uint64(1)))
		})

		It("should return oop plus mem cycles for LDB", func() {
			Expect(table.GetLatency(insts.New(insts.OpLDB, 0, 1, 2))).To(Equal(uint64(5)))
		})
	})

	Describe("Instruction Type Detection", func() {
		It("should detect memory operations", func() {
			Expect(table.IsMemoryOp(insts.New(insts.OpLDBU, 0, 0, 0))).To(BeTrue())
			Expect(table.IsMemoryOp(insts.New(insts.OpSTB, 0, 0, 0))).To(BeTrue())
			Expect(table.IsMemoryOp(insts.New(insts.OpADDUI, 0, 0, 0))).To(BeFalse())
		})

		It("should separate loads from stores", func() {
			Expect(table.IsLoadOp(insts.New(insts.OpLDBI, 0, 0, 0))).To(BeTrue())
			Expect(table.IsStoreOp(insts.New(insts.OpLDBI, 0, 0, 0))).To(BeFalse())
			Expect(table.IsStoreOp(insts.New(insts.OpSTBU, 0, 0, 0))).To(BeTrue())
		})
	})

	Describe("Custom Configuration", func() {
		It("should use custom config values", func() {
			config := latency.DefaultTimingConfig()
			config.OopCycles = 2
			config.MemCycles = 100
			config.MultiplyOops = 3

			custom := latency.NewTableWithConfig(config)

			Expect(custom.GetLatency(insts.New(insts.OpADDUI, 0, 0, 0))).To(Equal(uint64(2)))
			Expect(custom.GetLatency(insts.New(insts.OpLDB, 0, 0, 0))).To(Equal(uint64(102)))
			Expect(custom.GetLatency(insts.New(insts.OpMUL, 0, 0, 0))).To(Equal(uint64(6)))
		})
	})
})

var _ = Describe("TimingConfig", func() {
	Describe("Default Config", func() {
		It("should create valid default config", func() {
			Expect(latency.DefaultTimingConfig().Validate()).To(Succeed())
		})
	})

	Describe("Validation", func() {
		DescribeTable("should reject zero values",
			func(mutate func(*latency.TimingConfig), msg string) {
				config := latency.DefaultTimingConfig()
				mutate(config)
				Expect(config.Validate()).To(MatchError(ContainSubstring(msg)))
			},
			Entry("oop cycles", func(c *latency.TimingConfig) { c.OopCycles = 0 }, "oop_cycles"),
			Entry("mem cycles", func(c *latency.TimingConfig) { c.MemCycles = 0 }, "mem_cycles"),
			Entry("multiply", func(c *latency.TimingConfig) { c.MultiplyOops = 0 }, "multiply_oops"),
			Entry("divide", func(c *latency.TimingConfig) { c.DivideOops = 0 }, "divide_oops"),
			Entry("float", func(c *latency.TimingConfig) { c.FloatOops = 0 }, "float_oops"),
			Entry("float divide", func(c *latency.TimingConfig) { c.FloatDivideOops = 0 }, "float_divide_oops"),
			Entry("trap", func(c *latency.TimingConfig) { c.TrapOops = 0 }, "trap_oops"),
		)
	})

	Describe("Clone", func() {
		It("should create independent copy", func() {
			original := latency.DefaultTimingConfig()
			clone := original.Clone()

			clone.OopCycles = 100

			Expect(original.OopCycles).To(Equal(uint64(1)))
			Expect(clone.OopCycles).To(Equal(uint64(100)))
		})
	})

	Describe("File Operations", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "latency-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should save and load config", func() {
			original := latency.DefaultTimingConfig()
			original.OopCycles = 5
			original.MemCycles = 10

			path := filepath.Join(tempDir, "timing.json")
			Expect(original.SaveConfig(path)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(original))
		})

		It("should keep defaults for fields missing from the file", func() {
			path := filepath.Join(tempDir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"mem_cycles": 7}`), 0644)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.MemCycles).To(Equal(uint64(7)))
			Expect(loaded.OopCycles).To(Equal(uint64(1)))
		})

		It("should return error for non-existent file", func() {
			_, err := latency.LoadConfig("/nonexistent/path/timing.json")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid JSON", func() {
			path := filepath.Join(tempDir, "invalid.json")
			err := os.WriteFile(path, []byte("not valid json"), 0644)
			Expect(err).NotTo(HaveOccurred())

			_, err = latency.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
