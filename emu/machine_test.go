package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mmixsim/emu"
	"github.com/sarchlab/mmixsim/insts"
)

var _ = Describe("Machine", func() {
	Describe("NewMachine", func() {
		It("should zero every register and every memory byte", func() {
			m := newMachine()

			for i := 0; i < emu.NumGeneralRegs; i++ {
				Expect(m.GP(uint8(i))).To(BeZero())
			}
			for i := 0; i < emu.NumSpecialRegs; i++ {
				Expect(m.SP(emu.SpecialReg(i))).To(BeZero())
			}
			Expect(m.IsZero()).To(BeTrue())
		})

		It("should give each machine its own state", func() {
			a := newMachine()
			b := newMachine()

			a.RegFile().WriteGP(1, 5)
			Expect(a.Memory().Write8(10, 3)).To(Succeed())

			Expect(b.GP(1)).To(BeZero())
			Expect(b.Memory().Read8(10)).To(BeZero())
		})
	})

	Describe("Close", func() {
		It("should be safe to call twice", func() {
			m, err := emu.NewMachine()
			Expect(err).NotTo(HaveOccurred())

			Expect(m.Close()).To(Succeed())
			Expect(m.Closed()).To(BeTrue())
			Expect(m.Close()).To(Succeed())
		})

		It("should make the engine refuse the machine", func() {
			m, err := emu.NewMachine()
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Close()).To(Succeed())

			err = emu.NewEngine().Apply(m, insts.New(insts.OpADDUI, 0, 0, 1))
			Expect(err).To(MatchError(emu.ErrMachineClosed))
			Expect(m.GP(0)).To(BeZero())
		})
	})
})
