package insts

// Op identifies an MMIX opcode. Every value of the byte is a valid Op; the
// engine decides which of them it can execute.
type Op uint8

// Opcodes, numbered as in the MMIX opcode table.
const (
	// Floating point.
	OpTRAP Op = iota
	OpFCMP
	OpFUN
	OpFEQL
	OpFADD
	OpFIX
	OpFSUB
	OpFIXU
	OpFLOT
	OpFLOTI
	OpFLOTU
	OpFLOTUI
	OpSFLOT
	OpSFLOTI
	OpSFLOTU
	OpSFLOTUI
	OpFMUL
	OpFCMPE
	OpFUNE
	OpFEQLE
	OpFDIV
	OpFSQRT
	OpFREM
	OpFINT

	// Integer multiply and divide.
	OpMUL
	OpMULI
	OpMULU
	OpMULUI
	OpDIV
	OpDIVI
	OpDIVU
	OpDIVUI

	// Add and subtract.
	OpADD
	OpADDI
	// OpADDU adds $Z to $Y with wraparound.
	OpADDU
	// OpADDUI adds the unsigned immediate Z to $Y with wraparound.
	OpADDUI
	OpSUB
	OpSUBI
	OpSUBU
	OpSUBUI
	Op2ADDU
	Op2ADDUI
	Op4ADDU
	Op4ADDUI
	Op8ADDU
	Op8ADDUI
	Op16ADDU
	Op16ADDUI

	// Compare, negate and shift.
	OpCMP
	OpCMPI
	OpCMPU
	OpCMPUI
	OpNEG
	OpNEGI
	OpNEGU
	OpNEGUI
	OpSL
	OpSLI
	OpSLU
	OpSLUI
	OpSR
	OpSRI
	OpSRU
	OpSRUI

	// Branches.
	OpBN
	OpBNB
	OpBZ
	OpBZB
	OpBP
	OpBPB
	OpBOD
	OpBODB
	OpBNN
	OpBNNB
	OpBNZ
	OpBNZB
	OpBNP
	OpBNPB
	OpBEV
	OpBEVB

	// Probable branches.
	OpPBN
	OpPBNB
	OpPBZ
	OpPBZB
	OpPBP
	OpPBPB
	OpPBOD
	OpPBODB
	OpPBNN
	OpPBNNB
	OpPBNZ
	OpPBNZB
	OpPBNP
	OpPBNPB
	OpPBEV
	OpPBEVB

	// Conditional set.
	OpCSN
	OpCSNI
	OpCSZ
	OpCSZI
	OpCSP
	OpCSPI
	OpCSOD
	OpCSODI
	OpCSNN
	OpCSNNI
	OpCSNZ
	OpCSNZI
	OpCSNP
	OpCSNPI
	OpCSEV
	OpCSEVI

	// Zero or set.
	OpZSN
	OpZSNI
	OpZSZ
	OpZSZI
	OpZSP
	OpZSPI
	OpZSOD
	OpZSODI
	OpZSNN
	OpZSNNI
	OpZSNZ
	OpZSNZI
	OpZSNP
	OpZSNPI
	OpZSEV
	OpZSEVI

	// Loads.
	// OpLDB loads the signed byte at $Y+$Z.
	OpLDB
	// OpLDBI loads the signed byte at $Y+Z.
	OpLDBI
	// OpLDBU loads the unsigned byte at $Y+$Z.
	OpLDBU
	// OpLDBUI loads the unsigned byte at $Y+Z.
	OpLDBUI
	OpLDW
	OpLDWI
	OpLDWU
	OpLDWUI
	OpLDT
	OpLDTI
	OpLDTU
	OpLDTUI
	OpLDO
	OpLDOI
	OpLDOU
	OpLDOUI

	// Special loads, prefetch and GO.
	OpLDSF
	OpLDSFI
	OpLDHT
	OpLDHTI
	OpCSWAP
	OpCSWAPI
	OpLDUNC
	OpLDUNCI
	OpLDVTS
	OpLDVTSI
	OpPRELD
	OpPRELDI
	OpPREGO
	OpPREGOI
	OpGO
	OpGOI

	// Stores.
	OpSTB
	OpSTBI
	OpSTBU
	OpSTBUI
	OpSTW
	OpSTWI
	OpSTWU
	OpSTWUI
	OpSTT
	OpSTTI
	OpSTTU
	OpSTTUI
	OpSTO
	OpSTOI
	OpSTOU
	OpSTOUI

	// Special stores, sync and PUSHGO.
	OpSTSF
	OpSTSFI
	OpSTHT
	OpSTHTI
	OpSTCO
	OpSTCOI
	OpSTUNC
	OpSTUNCI
	OpSYNCD
	OpSYNCDI
	OpPREST
	OpPRESTI
	OpSYNCID
	OpSYNCIDI
	OpPUSHGO
	OpPUSHGOI

	// Bitwise logic.
	OpOR
	OpORI
	OpORN
	OpORNI
	OpNOR
	OpNORI
	OpXOR
	OpXORI
	OpAND
	OpANDI
	OpANDN
	OpANDNI
	OpNAND
	OpNANDI
	OpNXOR
	OpNXORI

	// Bytewise logic and multiplexing.
	OpBDIF
	OpBDIFI
	OpWDIF
	OpWDIFI
	OpTDIF
	OpTDIFI
	OpODIF
	OpODIFI
	OpMUX
	OpMUXI
	OpSADD
	OpSADDI
	OpMOR
	OpMORI
	OpMXOR
	OpMXORI

	// Wyde immediates.
	OpSETH
	OpSETMH
	OpSETML
	OpSETL
	OpINCH
	OpINCMH
	OpINCML
	OpINCL
	OpORH
	OpORMH
	OpORML
	OpORL
	OpANDNH
	OpANDNMH
	OpANDNML
	OpANDNL

	// Jumps and system operations.
	OpJMP
	OpJMPB
	OpPUSHJ
	OpPUSHJB
	OpGETA
	OpGETAB
	// OpPUT copies $Z into special register X.
	OpPUT
	OpPUTI
	OpPOP
	OpRESUME
	OpSAVE
	OpUNSAVE
	OpSYNC
	OpSWYM
	// OpGET copies special register Z into $X.
	OpGET
	OpTRIP
)

var opNames = [256]string{
	"TRAP", "FCMP", "FUN", "FEQL", "FADD", "FIX", "FSUB", "FIXU", "FLOT", "FLOTI", "FLOTU", "FLOTUI", "SFLOT", "SFLOTI", "SFLOTU", "SFLOTUI",
	"FMUL", "FCMPE", "FUNE", "FEQLE", "FDIV", "FSQRT", "FREM", "FINT", "MUL", "MULI", "MULU", "MULUI", "DIV", "DIVI", "DIVU", "DIVUI",
	"ADD", "ADDI", "ADDU", "ADDUI", "SUB", "SUBI", "SUBU", "SUBUI", "2ADDU", "2ADDUI", "4ADDU", "4ADDUI", "8ADDU", "8ADDUI", "16ADDU", "16ADDUI",
	"CMP", "CMPI", "CMPU", "CMPUI", "NEG", "NEGI", "NEGU", "NEGUI", "SL", "SLI", "SLU", "SLUI", "SR", "SRI", "SRU", "SRUI",
	"BN", "BNB", "BZ", "BZB", "BP", "BPB", "BOD", "BODB", "BNN", "BNNB", "BNZ", "BNZB", "BNP", "BNPB", "BEV", "BEVB",
	"PBN", "PBNB", "PBZ", "PBZB", "PBP", "PBPB", "PBOD", "PBODB", "PBNN", "PBNNB", "PBNZ", "PBNZB", "PBNP", "PBNPB", "PBEV", "PBEVB",
	"CSN", "CSNI", "CSZ", "CSZI", "CSP", "CSPI", "CSOD", "CSODI", "CSNN", "CSNNI", "CSNZ", "CSNZI", "CSNP", "CSNPI", "CSEV", "CSEVI",
	"ZSN", "ZSNI", "ZSZ", "ZSZI", "ZSP", "ZSPI", "ZSOD", "ZSODI", "ZSNN", "ZSNNI", "ZSNZ", "ZSNZI", "ZSNP", "ZSNPI", "ZSEV", "ZSEVI",
	"LDB", "LDBI", "LDBU", "LDBUI", "LDW", "LDWI", "LDWU", "LDWUI", "LDT", "LDTI", "LDTU", "LDTUI", "LDO", "LDOI", "LDOU", "LDOUI",
	"LDSF", "LDSFI", "LDHT", "LDHTI", "CSWAP", "CSWAPI", "LDUNC", "LDUNCI", "LDVTS", "LDVTSI", "PRELD", "PRELDI", "PREGO", "PREGOI", "GO", "GOI",
	"STB", "STBI", "STBU", "STBUI", "STW", "STWI", "STWU", "STWUI", "STT", "STTI", "STTU", "STTUI", "STO", "STOI", "STOU", "STOUI",
	"STSF", "STSFI", "STHT", "STHTI", "STCO", "STCOI", "STUNC", "STUNCI", "SYNCD", "SYNCDI", "PREST", "PRESTI", "SYNCID", "SYNCIDI", "PUSHGO", "PUSHGOI",
	"OR", "ORI", "ORN", "ORNI", "NOR", "NORI", "XOR", "XORI", "AND", "ANDI", "ANDN", "ANDNI", "NAND", "NANDI", "NXOR", "NXORI",
	"BDIF", "BDIFI", "WDIF", "WDIFI", "TDIF", "TDIFI", "ODIF", "ODIFI", "MUX", "MUXI", "SADD", "SADDI", "MOR", "MORI", "MXOR", "MXORI",
	"SETH", "SETMH", "SETML", "SETL", "INCH", "INCMH", "INCML", "INCL", "ORH", "ORMH", "ORML", "ORL", "ANDNH", "ANDNMH", "ANDNML", "ANDNL",
	"JMP", "JMPB", "PUSHJ", "PUSHJB", "GETA", "GETAB", "PUT", "PUTI", "POP", "RESUME", "SAVE", "UNSAVE", "SYNC", "SWYM", "GET", "TRIP",
}

// String returns the mnemonic of the opcode.
func (op Op) String() string {
	return opNames[op]
}

// IsImmediate reports whether the Z field of the opcode is an unsigned
// constant instead of a register number.
func (op Op) IsImmediate() bool {
	switch {
	case op >= OpFLOT && op <= OpSFLOTUI,
		op >= OpMUL && op <= OpSRUI,
		op >= OpCSN && op <= OpMXORI:
		return op&1 == 1
	case op == OpPUTI:
		return true
	default:
		return false
	}
}

// IsLoad reports whether the opcode reads memory into a general-purpose
// register.
func (op Op) IsLoad() bool {
	return op >= OpLDB && op <= OpLDOUI ||
		op == OpLDSF || op == OpLDSFI ||
		op == OpLDHT || op == OpLDHTI ||
		op == OpLDUNC || op == OpLDUNCI
}

// IsStore reports whether the opcode writes a register value to memory.
func (op Op) IsStore() bool {
	return op >= OpSTB && op <= OpSTOUI ||
		op >= OpSTSF && op <= OpSTUNCI
}

// AccessSize returns the number of bytes a load or store of this opcode
// moves, or 0 for opcodes that do not access memory.
func (op Op) AccessSize() int {
	if op >= OpLDB && op <= OpLDOUI || op >= OpSTB && op <= OpSTOUI {
		return 1 << ((op & 0x0F) >> 2)
	}
	switch op {
	case OpLDSF, OpLDSFI, OpLDHT, OpLDHTI, OpSTSF, OpSTSFI, OpSTHT, OpSTHTI:
		return 4
	case OpLDUNC, OpLDUNCI, OpSTCO, OpSTCOI, OpSTUNC, OpSTUNCI:
		return 8
	default:
		return 0
	}
}

// Lookup returns the opcode with the given mnemonic.
func Lookup(name string) (Op, bool) {
	op, ok := opsByName[name]
	return op, ok
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, len(opNames))
	for i, name := range opNames {
		m[name] = Op(i)
	}
	return m
}()
