package emu_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mmixsim/emu"
)

var _ = Describe("RegFile", func() {
	var regFile *emu.RegFile

	BeforeEach(func() {
		regFile = &emu.RegFile{}
	})

	It("should start cleared", func() {
		Expect(regFile.IsZero()).To(BeTrue())
	})

	It("should read and write every general-purpose register", func() {
		for i := 0; i < emu.NumGeneralRegs; i++ {
			regFile.WriteGP(uint8(i), uint64(i)*0x0101010101010101)
		}
		for i := 0; i < emu.NumGeneralRegs; i++ {
			Expect(regFile.ReadGP(uint8(i))).To(Equal(uint64(i) * 0x0101010101010101))
		}
		Expect(regFile.IsZero()).To(BeFalse())
	})

	It("should read and write every special-purpose register", func() {
		for i := 0; i < emu.NumSpecialRegs; i++ {
			Expect(regFile.WriteSP(emu.SpecialReg(i), uint64(i+1))).To(Succeed())
		}
		Expect(regFile.ReadSP(emu.SpecialRA)).To(Equal(uint64(1)))
		Expect(regFile.ReadSP(emu.SpecialRZZ)).To(Equal(uint64(32)))
	})

	DescribeTable("should reject special register numbers from 32 up",
		func(index uint8) {
			_, err := regFile.ReadSP(emu.SpecialReg(index))
			Expect(err).To(MatchError(emu.ErrInvalidRegisterIndex))

			var indexErr *emu.RegisterIndexError
			Expect(errors.As(err, &indexErr)).To(BeTrue())
			Expect(indexErr.Index).To(Equal(index))

			err = regFile.WriteSP(emu.SpecialReg(index), 7)
			Expect(err).To(MatchError(emu.ErrInvalidRegisterIndex))
			Expect(regFile.IsZero()).To(BeTrue())
		},
		Entry("32", uint8(32)),
		Entry("33", uint8(33)),
		Entry("255", uint8(255)),
	)

	It("should name special registers", func() {
		Expect(emu.SpecialRA.String()).To(Equal("rA"))
		Expect(emu.SpecialRBB.String()).To(Equal("rBB"))
		Expect(emu.SpecialRZZ.String()).To(Equal("rZZ"))
		Expect(emu.SpecialReg(40).String()).To(Equal("r?"))
	})
})
