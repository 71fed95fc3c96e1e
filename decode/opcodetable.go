package decode

// InstructionID is the numeric identity of one opcode. Values 0x00-0xFC are
// single-byte opcodes; 0xFD/0xFE/0xFF-prefixed opcodes are folded into the
// 16-bit space as prefixByte | secondByte<<8, matching how Decode recovers
// them from the instruction stream.
type InstructionID uint16

// FieldDescriptor is one (access class, operand width) pair in an
// instruction's operand list. OpcodeTable stores each instruction as a
// single []FieldDescriptor rather than the historical parallel
// mode-list/width-list pair, so the two can never drift out of sync.
type FieldDescriptor struct {
	Mode  FieldMode
	Width OperandWidth
}

// OpcodeEntry describes one instruction's mnemonic and operand field list.
type OpcodeEntry struct {
	Name   string
	Fields []FieldDescriptor
}

func f(mode FieldMode, width OperandWidth) FieldDescriptor { return FieldDescriptor{mode, width} }

// No-operand control instructions.
const (
	HALT   InstructionID = 0x00
	NOP    InstructionID = 0x01
	REI    InstructionID = 0x02
	BPT    InstructionID = 0x03
	RET    InstructionID = 0x04
	RSB    InstructionID = 0x05
	LDPCTX InstructionID = 0x06
	SVPCTX InstructionID = 0x07
	XFC    InstructionID = 0xFC
)

// Self-relative and absolute queue instructions.
const (
	INSQHI InstructionID = 0x5C
	INSQTI InstructionID = 0x5D
	INSQUE InstructionID = 0x0E
	REMQHI InstructionID = 0x5E
	REMQTI InstructionID = 0x5F
	REMQUE InstructionID = 0x0F
)

// Arithmetic: 2-operand and 3-operand ADD/SUB/MUL/DIV/BIC/BIS/XOR, byte/word/long, plus the carry/extend variants.
const (
	ADAWI InstructionID = 0x58
	ADWC  InstructionID = 0xD8
	SBWC  InstructionID = 0xD9
	ADDB2 InstructionID = 0x80
	ADDB3 InstructionID = 0x81
	ADDW2 InstructionID = 0xA0
	ADDW3 InstructionID = 0xA1
	ADDL2 InstructionID = 0xC0
	ADDL3 InstructionID = 0xC1
	SUBB2 InstructionID = 0x82
	SUBB3 InstructionID = 0x83
	SUBW2 InstructionID = 0xA2
	SUBW3 InstructionID = 0xA3
	SUBL2 InstructionID = 0xC2
	SUBL3 InstructionID = 0xC3
	MULB2 InstructionID = 0x84
	MULB3 InstructionID = 0x85
	MULW2 InstructionID = 0xA4
	MULW3 InstructionID = 0xA5
	MULL2 InstructionID = 0xC4
	MULL3 InstructionID = 0xC5
	DIVB2 InstructionID = 0x86
	DIVB3 InstructionID = 0x87
	DIVW2 InstructionID = 0xA6
	DIVW3 InstructionID = 0xA7
	DIVL2 InstructionID = 0xC6
	DIVL3 InstructionID = 0xC7
	BICB2 InstructionID = 0x8A
	BICB3 InstructionID = 0x8B
	BICW2 InstructionID = 0xAA
	BICW3 InstructionID = 0xAB
	BICL2 InstructionID = 0xCA
	BICL3 InstructionID = 0xCB
	BISB2 InstructionID = 0x88
	BISB3 InstructionID = 0x89
	BISW2 InstructionID = 0xA8
	BISW3 InstructionID = 0xA9
	BISL2 InstructionID = 0xC8
	BISL3 InstructionID = 0xC9
	XORB2 InstructionID = 0x8C
	XORB3 InstructionID = 0x8D
	XORW2 InstructionID = 0xAC
	XORW3 InstructionID = 0xAD
	XORL2 InstructionID = 0xCC
	XORL3 InstructionID = 0xCD
)

// Unary and compare operators: CLR/DEC/INC/MCOM/MNEG/MOV/TST/BIT/CMP, byte/word/long(/quad/octa for CLR/MOV), plus zero-extend, rotate, and extended arithmetic.
const (
	CLRB   InstructionID = 0x94
	CLRW   InstructionID = 0xB4
	CLRL   InstructionID = 0xD4
	CLRQ   InstructionID = 0x7C
	CLRO   InstructionID = 0x7CFD
	DECB   InstructionID = 0x97
	DECW   InstructionID = 0xB7
	DECL   InstructionID = 0xD7
	INCB   InstructionID = 0x96
	INCW   InstructionID = 0xB6
	INCL   InstructionID = 0xD6
	MCOMB  InstructionID = 0x92
	MCOMW  InstructionID = 0xB2
	MCOML  InstructionID = 0xD2
	MNEGB  InstructionID = 0x8E
	MNEGW  InstructionID = 0xAE
	MNEGL  InstructionID = 0xCE
	MOVB   InstructionID = 0x90
	MOVW   InstructionID = 0xB0
	MOVL   InstructionID = 0xD0
	MOVQ   InstructionID = 0x7D
	MOVO   InstructionID = 0x7DFD
	TSTB   InstructionID = 0x95
	TSTW   InstructionID = 0xB5
	TSTL   InstructionID = 0xD5
	BITB   InstructionID = 0x93
	BITW   InstructionID = 0xB3
	BITL   InstructionID = 0xD3
	CMPB   InstructionID = 0x91
	CMPW   InstructionID = 0xB1
	CMPL   InstructionID = 0xD1
	MOVZBW InstructionID = 0x9B
	MOVZBL InstructionID = 0x9A
	MOVZWL InstructionID = 0x3C
	ROTL   InstructionID = 0x9C
	ASHL   InstructionID = 0x78
	ASHQ   InstructionID = 0x79
	EDIV   InstructionID = 0x7B
	EMUL   InstructionID = 0x7A
)

// Integer-to-integer conversions.
const (
	CVTBW InstructionID = 0x99
	CVTBL InstructionID = 0x98
	CVTWB InstructionID = 0x33
	CVTWL InstructionID = 0x32
	CVTLB InstructionID = 0xF6
	CVTLW InstructionID = 0xF7
)

// Address-load and stack-push-address instructions.
const (
	MOVAB  InstructionID = 0x9E
	MOVAW  InstructionID = 0x3E
	MOVAL  InstructionID = 0xDE
	MOVAQ  InstructionID = 0x7E
	MOVAO  InstructionID = 0x7EFD
	PUSHAB InstructionID = 0x9F
	PUSHAW InstructionID = 0x3F
	PUSHAL InstructionID = 0xDF
	PUSHAQ InstructionID = 0x7F
	PUSHAO InstructionID = 0x7FFD
	PUSHL  InstructionID = 0xDD
)

// Bit-field, compare-field, and array-index instructions.
const (
	CMPV  InstructionID = 0xEC
	CMPZV InstructionID = 0xED
	EXTV  InstructionID = 0xEE
	EXTZV InstructionID = 0xEF
	FFC   InstructionID = 0xEB
	FFS   InstructionID = 0xEA
	INSV  InstructionID = 0xF0
	INDEX InstructionID = 0x0A
)

// Add-compare-and-branch, one per data type including F/D/G/H floating.
const (
	ACBB InstructionID = 0x9D
	ACBW InstructionID = 0x3D
	ACBL InstructionID = 0xF1
	ACBF InstructionID = 0x4F
	ACBD InstructionID = 0x6F
	ACBG InstructionID = 0x4FFD
	ACBH InstructionID = 0x6FFD
)

// Loop-control instructions.
const (
	AOBLEQ InstructionID = 0xF3
	AOBLSS InstructionID = 0xF2
	SOBGEQ InstructionID = 0xF4
	SOBGTR InstructionID = 0xF5
)

// Conditional and unconditional branches: signed-byte or signed-word displacement Data field.
const (
	BGTR  InstructionID = 0x14
	BLEQ  InstructionID = 0x15
	BNEQ  InstructionID = 0x12
	BEQL  InstructionID = 0x13
	BGEQ  InstructionID = 0x18
	BLSS  InstructionID = 0x19
	BGTRU InstructionID = 0x1A
	BLEQU InstructionID = 0x1B
	BVC   InstructionID = 0x1C
	BVS   InstructionID = 0x1D
	BCC   InstructionID = 0x1E
	BCS   InstructionID = 0x1F
	BRB   InstructionID = 0x11
	BRW   InstructionID = 0x31
	BSBB  InstructionID = 0x10
	BSBW  InstructionID = 0x30
)

// Bit-test-and-branch instructions.
const (
	BBS   InstructionID = 0xE0
	BBC   InstructionID = 0xE1
	BBSS  InstructionID = 0xE2
	BBCS  InstructionID = 0xE3
	BBSC  InstructionID = 0xE4
	BBCC  InstructionID = 0xE5
	BBSSI InstructionID = 0xE6
	BBCCI InstructionID = 0xE7
	BLBS  InstructionID = 0xE8
	BLBC  InstructionID = 0xE9
)

// CASE instructions: terminate their operand sequence in a VariableLengthTable field rather than an error.
const (
	CASEB InstructionID = 0x8F
	CASEW InstructionID = 0xAF
	CASEL InstructionID = 0xCF
)

// Procedure call and jump instructions.
const (
	JMP   InstructionID = 0x17
	JSB   InstructionID = 0x16
	CALLG InstructionID = 0xFA
	CALLS InstructionID = 0xFB
)

// PSL and register-mask stack instructions.
const (
	BICPSW InstructionID = 0xB9
	BISPSW InstructionID = 0xB8
	MOVPSL InstructionID = 0xDC
	POPR   InstructionID = 0xBA
	PUSHR  InstructionID = 0xBB
)

// Two-byte diagnostic trap opcodes, prefix 0xFF, second byte 0xFE/0xFD. Combined ID = prefix | second<<8.
const (
	BUGW InstructionID = 0xFEFF
	BUGL InstructionID = 0xFDFF
)

// Privileged / mode-change instructions.
const (
	MTPR InstructionID = 0xDA
	MFPR InstructionID = 0xDB
	CHMK InstructionID = 0xBC
	CHME InstructionID = 0xBD
	CHMS InstructionID = 0xBE
	CHMU InstructionID = 0xBF
)

// F-floating (32-bit) instructions: single-byte opcodes.
const (
	ADDF2  InstructionID = 0x40
	ADDF3  InstructionID = 0x41
	SUBF2  InstructionID = 0x42
	SUBF3  InstructionID = 0x43
	MULF2  InstructionID = 0x44
	MULF3  InstructionID = 0x45
	DIVF2  InstructionID = 0x46
	DIVF3  InstructionID = 0x47
	CMPF   InstructionID = 0x51
	TSTF   InstructionID = 0x53
	MOVF   InstructionID = 0x50
	MNEGF  InstructionID = 0x52
	EMODF  InstructionID = 0x54
	POLYF  InstructionID = 0x55
	CVTBF  InstructionID = 0x4C
	CVTWF  InstructionID = 0x4D
	CVTLF  InstructionID = 0x4E
	CVTFB  InstructionID = 0x48
	CVTFW  InstructionID = 0x49
	CVTFL  InstructionID = 0x4A
	CVTRFL InstructionID = 0x4B
)

// G-floating (64-bit) instructions: two-byte 0xFD-prefixed opcodes.
const (
	ADDG2  InstructionID = 0x40FD
	ADDG3  InstructionID = 0x41FD
	SUBG2  InstructionID = 0x42FD
	SUBG3  InstructionID = 0x43FD
	MULG2  InstructionID = 0x44FD
	MULG3  InstructionID = 0x45FD
	DIVG2  InstructionID = 0x46FD
	DIVG3  InstructionID = 0x47FD
	CMPG   InstructionID = 0x51FD
	TSTG   InstructionID = 0x53FD
	MOVG   InstructionID = 0x50FD
	MNEGG  InstructionID = 0x52FD
	EMODG  InstructionID = 0x54FD
	POLYG  InstructionID = 0x55FD
	CVTBG  InstructionID = 0x4CFD
	CVTWG  InstructionID = 0x4DFD
	CVTLG  InstructionID = 0x4EFD
	CVTGB  InstructionID = 0x48FD
	CVTGW  InstructionID = 0x49FD
	CVTGL  InstructionID = 0x4AFD
	CVTRGL InstructionID = 0x4BFD
	CVTFG  InstructionID = 0x99FD
	CVTGF  InstructionID = 0x33FD
)

// D-floating (64-bit) instructions: single-byte opcodes, structurally recognized but not arithmetically supported (host conversion rules undefined; see SPEC_FULL.md §5).
const (
	ADDD2  InstructionID = 0x60
	ADDD3  InstructionID = 0x61
	SUBD2  InstructionID = 0x62
	SUBD3  InstructionID = 0x63
	MULD2  InstructionID = 0x64
	MULD3  InstructionID = 0x65
	DIVD2  InstructionID = 0x66
	DIVD3  InstructionID = 0x67
	CMPD   InstructionID = 0x71
	TSTD   InstructionID = 0x73
	MOVD   InstructionID = 0x70
	MNEGD  InstructionID = 0x72
	EMODD  InstructionID = 0x74
	POLYD  InstructionID = 0x75
	CVTBD  InstructionID = 0x6C
	CVTWD  InstructionID = 0x6D
	CVTLD  InstructionID = 0x6E
	CVTDB  InstructionID = 0x68
	CVTDW  InstructionID = 0x69
	CVTDL  InstructionID = 0x6A
	CVTRDL InstructionID = 0x6B
	CVTFD  InstructionID = 0x56
	CVTDF  InstructionID = 0x76
)

// H-floating (128-bit) instructions: two-byte 0xFD-prefixed opcodes, structurally recognized but not arithmetically supported (host conversion rules undefined; see SPEC_FULL.md §5).
const (
	ADDH2  InstructionID = 0x60FD
	ADDH3  InstructionID = 0x61FD
	SUBH2  InstructionID = 0x62FD
	SUBH3  InstructionID = 0x63FD
	MULH2  InstructionID = 0x64FD
	MULH3  InstructionID = 0x65FD
	DIVH2  InstructionID = 0x66FD
	DIVH3  InstructionID = 0x67FD
	CMPH   InstructionID = 0x71FD
	TSTH   InstructionID = 0x73FD
	MOVH   InstructionID = 0x70FD
	MNEGH  InstructionID = 0x72FD
	EMODH  InstructionID = 0x74FD
	POLYH  InstructionID = 0x75FD
	CVTBH  InstructionID = 0x6CFD
	CVTWH  InstructionID = 0x6DFD
	CVTLH  InstructionID = 0x6EFD
	CVTHB  InstructionID = 0x68FD
	CVTHW  InstructionID = 0x69FD
	CVTHL  InstructionID = 0x6AFD
	CVTRHL InstructionID = 0x6BFD
	CVTFH  InstructionID = 0x98FD
	CVTHF  InstructionID = 0xF6FD
	CVTDH  InstructionID = 0x32FD
	CVTHD  InstructionID = 0xF7FD
	CVTGH  InstructionID = 0x56FD
	CVTHG  InstructionID = 0x76FD
)

// OpcodeTable is the authoritative per-opcode (name, operand field list)
// map consulted by Decode. Every entry's Fields length equals the number
// of operands the instruction consumes. D- and H-floating entries are
// structurally recognized (a decoder must be able to walk past them) even
// though nothing in this core evaluates their arithmetic.
var OpcodeTable = map[InstructionID]OpcodeEntry{
	// No-operand control instructions.
	HALT: {"HALT", nil},
	NOP: {"NOP", nil},
	REI: {"REI", nil},
	BPT: {"BPT", nil},
	RET: {"RET", nil},
	RSB: {"RSB", nil},
	LDPCTX: {"LDPCTX", nil},
	SVPCTX: {"SVPCTX", nil},
	XFC: {"XFC", nil},

	// Self-relative and absolute queue instructions.
	INSQHI: {"INSQHI", []FieldDescriptor{f(Address, Byte), f(Address, Quadword)}},
	INSQTI: {"INSQTI", []FieldDescriptor{f(Address, Byte), f(Address, Quadword)}},
	INSQUE: {"INSQUE", []FieldDescriptor{f(Address, Byte), f(Address, Byte)}},
	REMQHI: {"REMQHI", []FieldDescriptor{f(Address, Quadword), f(Write, Longword)}},
	REMQTI: {"REMQTI", []FieldDescriptor{f(Address, Quadword), f(Write, Longword)}},
	REMQUE: {"REMQUE", []FieldDescriptor{f(Address, Byte), f(Write, Longword)}},

	// Arithmetic: 2-operand and 3-operand ADD/SUB/MUL/DIV/BIC/BIS/XOR, byte/word/long, plus the carry/extend variants.
	ADAWI: {"ADAWI", []FieldDescriptor{f(Read, Word), f(Modify, Word)}},
	ADWC: {"ADWC", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	SBWC: {"SBWC", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	ADDB2: {"ADDB2", []FieldDescriptor{f(Read, Byte), f(Modify, Byte)}},
	ADDB3: {"ADDB3", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Write, Byte)}},
	ADDW2: {"ADDW2", []FieldDescriptor{f(Read, Word), f(Modify, Word)}},
	ADDW3: {"ADDW3", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Write, Word)}},
	ADDL2: {"ADDL2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	ADDL3: {"ADDL3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	SUBB2: {"SUBB2", []FieldDescriptor{f(Read, Byte), f(Modify, Byte)}},
	SUBB3: {"SUBB3", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Write, Byte)}},
	SUBW2: {"SUBW2", []FieldDescriptor{f(Read, Word), f(Modify, Word)}},
	SUBW3: {"SUBW3", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Write, Word)}},
	SUBL2: {"SUBL2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	SUBL3: {"SUBL3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	MULB2: {"MULB2", []FieldDescriptor{f(Read, Byte), f(Modify, Byte)}},
	MULB3: {"MULB3", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Write, Byte)}},
	MULW2: {"MULW2", []FieldDescriptor{f(Read, Word), f(Modify, Word)}},
	MULW3: {"MULW3", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Write, Word)}},
	MULL2: {"MULL2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	MULL3: {"MULL3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	DIVB2: {"DIVB2", []FieldDescriptor{f(Read, Byte), f(Modify, Byte)}},
	DIVB3: {"DIVB3", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Write, Byte)}},
	DIVW2: {"DIVW2", []FieldDescriptor{f(Read, Word), f(Modify, Word)}},
	DIVW3: {"DIVW3", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Write, Word)}},
	DIVL2: {"DIVL2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	DIVL3: {"DIVL3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	BICB2: {"BICB2", []FieldDescriptor{f(Read, Byte), f(Modify, Byte)}},
	BICB3: {"BICB3", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Write, Byte)}},
	BICW2: {"BICW2", []FieldDescriptor{f(Read, Word), f(Modify, Word)}},
	BICW3: {"BICW3", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Write, Word)}},
	BICL2: {"BICL2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	BICL3: {"BICL3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	BISB2: {"BISB2", []FieldDescriptor{f(Read, Byte), f(Modify, Byte)}},
	BISB3: {"BISB3", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Write, Byte)}},
	BISW2: {"BISW2", []FieldDescriptor{f(Read, Word), f(Modify, Word)}},
	BISW3: {"BISW3", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Write, Word)}},
	BISL2: {"BISL2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	BISL3: {"BISL3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	XORB2: {"XORB2", []FieldDescriptor{f(Read, Byte), f(Modify, Byte)}},
	XORB3: {"XORB3", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Write, Byte)}},
	XORW2: {"XORW2", []FieldDescriptor{f(Read, Word), f(Modify, Word)}},
	XORW3: {"XORW3", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Write, Word)}},
	XORL2: {"XORL2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	XORL3: {"XORL3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},

	// Unary and compare operators: CLR/DEC/INC/MCOM/MNEG/MOV/TST/BIT/CMP, byte/word/long(/quad/octa for CLR/MOV), plus zero-extend, rotate, and extended arithmetic.
	CLRB: {"CLRB", []FieldDescriptor{f(Write, Byte)}},
	CLRW: {"CLRW", []FieldDescriptor{f(Write, Word)}},
	CLRL: {"CLRL", []FieldDescriptor{f(Write, Longword)}},
	CLRQ: {"CLRQ", []FieldDescriptor{f(Write, Quadword)}},
	CLRO: {"CLRO", []FieldDescriptor{f(Write, Octaword)}},
	DECB: {"DECB", []FieldDescriptor{f(Modify, Byte)}},
	DECW: {"DECW", []FieldDescriptor{f(Modify, Word)}},
	DECL: {"DECL", []FieldDescriptor{f(Modify, Longword)}},
	INCB: {"INCB", []FieldDescriptor{f(Modify, Byte)}},
	INCW: {"INCW", []FieldDescriptor{f(Modify, Word)}},
	INCL: {"INCL", []FieldDescriptor{f(Modify, Longword)}},
	MCOMB: {"MCOMB", []FieldDescriptor{f(Read, Byte), f(Write, Byte)}},
	MCOMW: {"MCOMW", []FieldDescriptor{f(Read, Word), f(Write, Word)}},
	MCOML: {"MCOML", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},
	MNEGB: {"MNEGB", []FieldDescriptor{f(Read, Byte), f(Write, Byte)}},
	MNEGW: {"MNEGW", []FieldDescriptor{f(Read, Word), f(Write, Word)}},
	MNEGL: {"MNEGL", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},
	MOVB: {"MOVB", []FieldDescriptor{f(Read, Byte), f(Write, Byte)}},
	MOVW: {"MOVW", []FieldDescriptor{f(Read, Word), f(Write, Word)}},
	MOVL: {"MOVL", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},
	MOVQ: {"MOVQ", []FieldDescriptor{f(Read, Quadword), f(Write, Quadword)}},
	MOVO: {"MOVO", []FieldDescriptor{f(Read, Octaword), f(Write, Octaword)}},
	TSTB: {"TSTB", []FieldDescriptor{f(Read, Byte)}},
	TSTW: {"TSTW", []FieldDescriptor{f(Read, Word)}},
	TSTL: {"TSTL", []FieldDescriptor{f(Read, Longword)}},
	BITB: {"BITB", []FieldDescriptor{f(Read, Byte), f(Read, Byte)}},
	BITW: {"BITW", []FieldDescriptor{f(Read, Word), f(Read, Word)}},
	BITL: {"BITL", []FieldDescriptor{f(Read, Longword), f(Read, Longword)}},
	CMPB: {"CMPB", []FieldDescriptor{f(Read, Byte), f(Read, Byte)}},
	CMPW: {"CMPW", []FieldDescriptor{f(Read, Word), f(Read, Word)}},
	CMPL: {"CMPL", []FieldDescriptor{f(Read, Longword), f(Read, Longword)}},
	MOVZBW: {"MOVZBW", []FieldDescriptor{f(Read, Byte), f(Write, Word)}},
	MOVZBL: {"MOVZBL", []FieldDescriptor{f(Read, Byte), f(Write, Longword)}},
	MOVZWL: {"MOVZWL", []FieldDescriptor{f(Read, Word), f(Write, Longword)}},
	ROTL: {"ROTL", []FieldDescriptor{f(Read, Byte), f(Read, Longword), f(Write, Longword)}},
	ASHL: {"ASHL", []FieldDescriptor{f(Read, Byte), f(Read, Longword), f(Write, Longword)}},
	ASHQ: {"ASHQ", []FieldDescriptor{f(Read, Byte), f(Read, Quadword), f(Write, Quadword)}},
	EDIV: {"EDIV", []FieldDescriptor{f(Read, Longword), f(Read, Quadword), f(Write, Longword), f(Write, Longword)}},
	EMUL: {"EMUL", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Read, Longword), f(Write, Quadword)}},

	// Integer-to-integer conversions.
	CVTBW: {"CVTBW", []FieldDescriptor{f(Read, Byte), f(Write, Word)}},
	CVTBL: {"CVTBL", []FieldDescriptor{f(Read, Byte), f(Write, Longword)}},
	CVTWB: {"CVTWB", []FieldDescriptor{f(Read, Word), f(Write, Byte)}},
	CVTWL: {"CVTWL", []FieldDescriptor{f(Read, Word), f(Write, Longword)}},
	CVTLB: {"CVTLB", []FieldDescriptor{f(Read, Longword), f(Write, Byte)}},
	CVTLW: {"CVTLW", []FieldDescriptor{f(Read, Longword), f(Write, Word)}},

	// Address-load and stack-push-address instructions.
	MOVAB: {"MOVAB", []FieldDescriptor{f(Address, Byte), f(Write, Longword)}},
	MOVAW: {"MOVAW", []FieldDescriptor{f(Address, Word), f(Write, Longword)}},
	MOVAL: {"MOVAL", []FieldDescriptor{f(Address, Longword), f(Write, Longword)}},
	MOVAQ: {"MOVAQ", []FieldDescriptor{f(Address, Quadword), f(Write, Longword)}},
	MOVAO: {"MOVAO", []FieldDescriptor{f(Address, Octaword), f(Write, Longword)}},
	PUSHAB: {"PUSHAB", []FieldDescriptor{f(Address, Byte)}},
	PUSHAW: {"PUSHAW", []FieldDescriptor{f(Address, Word)}},
	PUSHAL: {"PUSHAL", []FieldDescriptor{f(Address, Longword)}},
	PUSHAQ: {"PUSHAQ", []FieldDescriptor{f(Address, Quadword)}},
	PUSHAO: {"PUSHAO", []FieldDescriptor{f(Address, Octaword)}},
	PUSHL: {"PUSHL", []FieldDescriptor{f(Read, Longword)}},

	// Bit-field, compare-field, and array-index instructions.
	CMPV: {"CMPV", []FieldDescriptor{f(Read, Longword), f(Read, Byte), f(Bitfield, Byte), f(Read, Longword)}},
	CMPZV: {"CMPZV", []FieldDescriptor{f(Read, Longword), f(Read, Byte), f(Bitfield, Byte), f(Read, Longword)}},
	EXTV: {"EXTV", []FieldDescriptor{f(Read, Longword), f(Read, Byte), f(Bitfield, Byte), f(Write, Longword)}},
	EXTZV: {"EXTZV", []FieldDescriptor{f(Read, Longword), f(Read, Byte), f(Bitfield, Byte), f(Write, Longword)}},
	FFC: {"FFC", []FieldDescriptor{f(Read, Longword), f(Read, Byte), f(Bitfield, Byte), f(Write, Longword)}},
	FFS: {"FFS", []FieldDescriptor{f(Read, Longword), f(Read, Byte), f(Bitfield, Byte), f(Write, Longword)}},
	INSV: {"INSV", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Read, Byte), f(Bitfield, Byte)}},
	INDEX: {"INDEX", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Read, Longword), f(Read, Longword), f(Read, Longword), f(Write, Longword)}},

	// Add-compare-and-branch, one per data type including F/D/G/H floating.
	ACBB: {"ACBB", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Modify, Byte), f(Data, Word)}},
	ACBW: {"ACBW", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Modify, Word), f(Data, Word)}},
	ACBL: {"ACBL", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Modify, Longword), f(Data, Word)}},
	ACBF: {"ACBF", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Modify, Longword), f(Data, Word)}},
	ACBD: {"ACBD", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Modify, Quadword), f(Data, Word)}},
	ACBG: {"ACBG", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Modify, Quadword), f(Data, Word)}},
	ACBH: {"ACBH", []FieldDescriptor{f(Read, Octaword), f(Read, Octaword), f(Modify, Octaword), f(Data, Word)}},

	// Loop-control instructions.
	AOBLEQ: {"AOBLEQ", []FieldDescriptor{f(Read, Longword), f(Modify, Longword), f(Data, Byte)}},
	AOBLSS: {"AOBLSS", []FieldDescriptor{f(Read, Longword), f(Modify, Longword), f(Data, Byte)}},
	SOBGEQ: {"SOBGEQ", []FieldDescriptor{f(Modify, Longword), f(Data, Byte)}},
	SOBGTR: {"SOBGTR", []FieldDescriptor{f(Modify, Longword), f(Data, Byte)}},

	// Conditional and unconditional branches: signed-byte or signed-word displacement Data field.
	BGTR: {"BGTR", []FieldDescriptor{f(Data, Byte)}},
	BLEQ: {"BLEQ", []FieldDescriptor{f(Data, Byte)}},
	BNEQ: {"BNEQ", []FieldDescriptor{f(Data, Byte)}},
	BEQL: {"BEQL", []FieldDescriptor{f(Data, Byte)}},
	BGEQ: {"BGEQ", []FieldDescriptor{f(Data, Byte)}},
	BLSS: {"BLSS", []FieldDescriptor{f(Data, Byte)}},
	BGTRU: {"BGTRU", []FieldDescriptor{f(Data, Byte)}},
	BLEQU: {"BLEQU", []FieldDescriptor{f(Data, Byte)}},
	BVC: {"BVC", []FieldDescriptor{f(Data, Byte)}},
	BVS: {"BVS", []FieldDescriptor{f(Data, Byte)}},
	BCC: {"BCC", []FieldDescriptor{f(Data, Byte)}},
	BCS: {"BCS", []FieldDescriptor{f(Data, Byte)}},
	BRB: {"BRB", []FieldDescriptor{f(Data, Byte)}},
	BRW: {"BRW", []FieldDescriptor{f(Data, Word)}},
	BSBB: {"BSBB", []FieldDescriptor{f(Data, Byte)}},
	BSBW: {"BSBW", []FieldDescriptor{f(Data, Word)}},

	// Bit-test-and-branch instructions.
	BBS: {"BBS", []FieldDescriptor{f(Read, Longword), f(Bitfield, Byte), f(Data, Byte)}},
	BBC: {"BBC", []FieldDescriptor{f(Read, Longword), f(Bitfield, Byte), f(Data, Byte)}},
	BBSS: {"BBSS", []FieldDescriptor{f(Read, Longword), f(Bitfield, Byte), f(Data, Byte)}},
	BBCS: {"BBCS", []FieldDescriptor{f(Read, Longword), f(Bitfield, Byte), f(Data, Byte)}},
	BBSC: {"BBSC", []FieldDescriptor{f(Read, Longword), f(Bitfield, Byte), f(Data, Byte)}},
	BBCC: {"BBCC", []FieldDescriptor{f(Read, Longword), f(Bitfield, Byte), f(Data, Byte)}},
	BBSSI: {"BBSSI", []FieldDescriptor{f(Read, Longword), f(Bitfield, Byte), f(Data, Byte)}},
	BBCCI: {"BBCCI", []FieldDescriptor{f(Read, Longword), f(Bitfield, Byte), f(Data, Byte)}},
	BLBS: {"BLBS", []FieldDescriptor{f(Read, Longword), f(Data, Byte)}},
	BLBC: {"BLBC", []FieldDescriptor{f(Read, Longword), f(Data, Byte)}},

	// CASE instructions: terminate their operand sequence in a VariableLengthTable field rather than an error.
	CASEB: {"CASEB", []FieldDescriptor{f(Read, Byte), f(Read, Byte), f(Read, Byte), f(VariableLengthTable, Word)}},
	CASEW: {"CASEW", []FieldDescriptor{f(Read, Word), f(Read, Word), f(Read, Word), f(VariableLengthTable, Word)}},
	CASEL: {"CASEL", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Read, Longword), f(VariableLengthTable, Word)}},

	// Procedure call and jump instructions.
	JMP: {"JMP", []FieldDescriptor{f(Address, Byte)}},
	JSB: {"JSB", []FieldDescriptor{f(Address, Byte)}},
	CALLG: {"CALLG", []FieldDescriptor{f(Address, Byte), f(Address, Byte)}},
	CALLS: {"CALLS", []FieldDescriptor{f(Read, Longword), f(Address, Byte)}},

	// PSL and register-mask stack instructions.
	BICPSW: {"BICPSW", []FieldDescriptor{f(Read, Word)}},
	BISPSW: {"BISPSW", []FieldDescriptor{f(Read, Word)}},
	MOVPSL: {"MOVPSL", []FieldDescriptor{f(Write, Longword)}},
	POPR: {"POPR", []FieldDescriptor{f(Read, Word)}},
	PUSHR: {"PUSHR", []FieldDescriptor{f(Read, Word)}},

	// Two-byte diagnostic trap opcodes, prefix 0xFF, second byte 0xFE/0xFD. Combined ID = prefix | second<<8.
	BUGW: {"BUGW", []FieldDescriptor{f(Data, Word)}},
	BUGL: {"BUGL", []FieldDescriptor{f(Data, Longword)}},

	// Privileged / mode-change instructions.
	MTPR: {"MTPR", []FieldDescriptor{f(Read, Longword), f(Read, Longword)}},
	MFPR: {"MFPR", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},
	CHMK: {"CHMK", []FieldDescriptor{f(Read, Word)}},
	CHME: {"CHME", []FieldDescriptor{f(Read, Word)}},
	CHMS: {"CHMS", []FieldDescriptor{f(Read, Word)}},
	CHMU: {"CHMU", []FieldDescriptor{f(Read, Word)}},

	// F-floating (32-bit) instructions: single-byte opcodes.
	ADDF2: {"ADDF2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	ADDF3: {"ADDF3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	SUBF2: {"SUBF2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	SUBF3: {"SUBF3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	MULF2: {"MULF2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	MULF3: {"MULF3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	DIVF2: {"DIVF2", []FieldDescriptor{f(Read, Longword), f(Modify, Longword)}},
	DIVF3: {"DIVF3", []FieldDescriptor{f(Read, Longword), f(Read, Longword), f(Write, Longword)}},
	CMPF: {"CMPF", []FieldDescriptor{f(Read, Longword), f(Read, Longword)}},
	TSTF: {"TSTF", []FieldDescriptor{f(Read, Longword)}},
	MOVF: {"MOVF", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},
	MNEGF: {"MNEGF", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},
	EMODF: {"EMODF", []FieldDescriptor{f(Read, Longword), f(Read, Byte), f(Read, Longword), f(Write, Longword), f(Write, Longword)}},
	POLYF: {"POLYF", []FieldDescriptor{f(Read, Longword), f(Read, Word), f(Address, Byte)}},
	CVTBF: {"CVTBF", []FieldDescriptor{f(Read, Byte), f(Write, Longword)}},
	CVTWF: {"CVTWF", []FieldDescriptor{f(Read, Word), f(Write, Longword)}},
	CVTLF: {"CVTLF", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},
	CVTFB: {"CVTFB", []FieldDescriptor{f(Read, Longword), f(Write, Byte)}},
	CVTFW: {"CVTFW", []FieldDescriptor{f(Read, Longword), f(Write, Word)}},
	CVTFL: {"CVTFL", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},
	CVTRFL: {"CVTRFL", []FieldDescriptor{f(Read, Longword), f(Write, Longword)}},

	// G-floating (64-bit) instructions: two-byte 0xFD-prefixed opcodes.
	ADDG2: {"ADDG2", []FieldDescriptor{f(Read, Quadword), f(Modify, Quadword)}},
	ADDG3: {"ADDG3", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Write, Quadword)}},
	SUBG2: {"SUBG2", []FieldDescriptor{f(Read, Quadword), f(Modify, Quadword)}},
	SUBG3: {"SUBG3", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Write, Quadword)}},
	MULG2: {"MULG2", []FieldDescriptor{f(Read, Quadword), f(Modify, Quadword)}},
	MULG3: {"MULG3", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Write, Quadword)}},
	DIVG2: {"DIVG2", []FieldDescriptor{f(Read, Quadword), f(Modify, Quadword)}},
	DIVG3: {"DIVG3", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Write, Quadword)}},
	CMPG: {"CMPG", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword)}},
	TSTG: {"TSTG", []FieldDescriptor{f(Read, Quadword)}},
	MOVG: {"MOVG", []FieldDescriptor{f(Read, Quadword), f(Write, Quadword)}},
	MNEGG: {"MNEGG", []FieldDescriptor{f(Read, Quadword), f(Write, Quadword)}},
	EMODG: {"EMODG", []FieldDescriptor{f(Read, Quadword), f(Read, Word), f(Read, Quadword), f(Write, Longword), f(Write, Quadword)}},
	POLYG: {"POLYG", []FieldDescriptor{f(Read, Quadword), f(Read, Word), f(Address, Byte)}},
	CVTBG: {"CVTBG", []FieldDescriptor{f(Read, Byte), f(Write, Quadword)}},
	CVTWG: {"CVTWG", []FieldDescriptor{f(Read, Word), f(Write, Quadword)}},
	CVTLG: {"CVTLG", []FieldDescriptor{f(Read, Longword), f(Write, Quadword)}},
	CVTGB: {"CVTGB", []FieldDescriptor{f(Read, Quadword), f(Write, Byte)}},
	CVTGW: {"CVTGW", []FieldDescriptor{f(Read, Quadword), f(Write, Word)}},
	CVTGL: {"CVTGL", []FieldDescriptor{f(Read, Quadword), f(Write, Longword)}},
	CVTRGL: {"CVTRGL", []FieldDescriptor{f(Read, Quadword), f(Write, Longword)}},
	CVTFG: {"CVTFG", []FieldDescriptor{f(Read, Longword), f(Write, Quadword)}},
	CVTGF: {"CVTGF", []FieldDescriptor{f(Read, Quadword), f(Write, Longword)}},

	// D-floating (64-bit) instructions: single-byte opcodes, structurally recognized but not arithmetically supported (host conversion rules undefined; see SPEC_FULL.md §5).
	ADDD2: {"ADDD2", []FieldDescriptor{f(Read, Quadword), f(Modify, Quadword)}},
	ADDD3: {"ADDD3", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Write, Quadword)}},
	SUBD2: {"SUBD2", []FieldDescriptor{f(Read, Quadword), f(Modify, Quadword)}},
	SUBD3: {"SUBD3", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Write, Quadword)}},
	MULD2: {"MULD2", []FieldDescriptor{f(Read, Quadword), f(Modify, Quadword)}},
	MULD3: {"MULD3", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Write, Quadword)}},
	DIVD2: {"DIVD2", []FieldDescriptor{f(Read, Quadword), f(Modify, Quadword)}},
	DIVD3: {"DIVD3", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword), f(Write, Quadword)}},
	CMPD: {"CMPD", []FieldDescriptor{f(Read, Quadword), f(Read, Quadword)}},
	TSTD: {"TSTD", []FieldDescriptor{f(Read, Quadword)}},
	MOVD: {"MOVD", []FieldDescriptor{f(Read, Quadword), f(Write, Quadword)}},
	MNEGD: {"MNEGD", []FieldDescriptor{f(Read, Quadword), f(Write, Quadword)}},
	EMODD: {"EMODD", []FieldDescriptor{f(Read, Quadword), f(Read, Byte), f(Read, Quadword), f(Write, Longword), f(Write, Quadword)}},
	POLYD: {"POLYD", []FieldDescriptor{f(Read, Quadword), f(Read, Word), f(Address, Byte)}},
	CVTBD: {"CVTBD", []FieldDescriptor{f(Read, Byte), f(Write, Quadword)}},
	CVTWD: {"CVTWD", []FieldDescriptor{f(Read, Word), f(Write, Quadword)}},
	CVTLD: {"CVTLD", []FieldDescriptor{f(Read, Longword), f(Write, Quadword)}},
	CVTDB: {"CVTDB", []FieldDescriptor{f(Read, Quadword), f(Write, Byte)}},
	CVTDW: {"CVTDW", []FieldDescriptor{f(Read, Quadword), f(Write, Word)}},
	CVTDL: {"CVTDL", []FieldDescriptor{f(Read, Quadword), f(Write, Longword)}},
	CVTRDL: {"CVTRDL", []FieldDescriptor{f(Read, Quadword), f(Write, Longword)}},
	CVTFD: {"CVTFD", []FieldDescriptor{f(Read, Longword), f(Write, Quadword)}},
	CVTDF: {"CVTDF", []FieldDescriptor{f(Read, Quadword), f(Write, Longword)}},

	// H-floating (128-bit) instructions: two-byte 0xFD-prefixed opcodes, structurally recognized but not arithmetically supported (host conversion rules undefined; see SPEC_FULL.md §5).
	ADDH2: {"ADDH2", []FieldDescriptor{f(Read, Octaword), f(Modify, Octaword)}},
	ADDH3: {"ADDH3", []FieldDescriptor{f(Read, Octaword), f(Read, Octaword), f(Write, Octaword)}},
	SUBH2: {"SUBH2", []FieldDescriptor{f(Read, Octaword), f(Modify, Octaword)}},
	SUBH3: {"SUBH3", []FieldDescriptor{f(Read, Octaword), f(Read, Octaword), f(Write, Octaword)}},
	MULH2: {"MULH2", []FieldDescriptor{f(Read, Octaword), f(Modify, Octaword)}},
	MULH3: {"MULH3", []FieldDescriptor{f(Read, Octaword), f(Read, Octaword), f(Write, Octaword)}},
	DIVH2: {"DIVH2", []FieldDescriptor{f(Read, Octaword), f(Modify, Octaword)}},
	DIVH3: {"DIVH3", []FieldDescriptor{f(Read, Octaword), f(Read, Octaword), f(Write, Octaword)}},
	CMPH: {"CMPH", []FieldDescriptor{f(Read, Octaword), f(Read, Octaword)}},
	TSTH: {"TSTH", []FieldDescriptor{f(Read, Octaword)}},
	MOVH: {"MOVH", []FieldDescriptor{f(Read, Octaword), f(Write, Octaword)}},
	MNEGH: {"MNEGH", []FieldDescriptor{f(Read, Octaword), f(Write, Octaword)}},
	EMODH: {"EMODH", []FieldDescriptor{f(Read, Octaword), f(Read, Byte), f(Read, Octaword), f(Write, Octaword), f(Write, Octaword)}},
	POLYH: {"POLYH", []FieldDescriptor{f(Read, Octaword), f(Read, Word), f(Address, Byte)}},
	CVTBH: {"CVTBH", []FieldDescriptor{f(Read, Byte), f(Write, Octaword)}},
	CVTWH: {"CVTWH", []FieldDescriptor{f(Read, Word), f(Write, Octaword)}},
	CVTLH: {"CVTLH", []FieldDescriptor{f(Read, Longword), f(Write, Octaword)}},
	CVTHB: {"CVTHB", []FieldDescriptor{f(Read, Octaword), f(Write, Byte)}},
	CVTHW: {"CVTHW", []FieldDescriptor{f(Read, Octaword), f(Write, Word)}},
	CVTHL: {"CVTHL", []FieldDescriptor{f(Read, Octaword), f(Write, Longword)}},
	CVTRHL: {"CVTRHL", []FieldDescriptor{f(Read, Octaword), f(Write, Longword)}},
	CVTFH: {"CVTFH", []FieldDescriptor{f(Read, Longword), f(Write, Octaword)}},
	CVTHF: {"CVTHF", []FieldDescriptor{f(Read, Octaword), f(Write, Longword)}},
	CVTDH: {"CVTDH", []FieldDescriptor{f(Read, Quadword), f(Write, Octaword)}},
	CVTHD: {"CVTHD", []FieldDescriptor{f(Read, Octaword), f(Write, Quadword)}},
	CVTGH: {"CVTGH", []FieldDescriptor{f(Read, Quadword), f(Write, Octaword)}},
	CVTHG: {"CVTHG", []FieldDescriptor{f(Read, Octaword), f(Write, Quadword)}},
}

// String returns the instruction's mnemonic, or a RESERVED marker for any
// opcode value absent from OpcodeTable.
func (id InstructionID) String() string {
	if e, ok := OpcodeTable[id]; ok {
		return e.Name
	}
	return "RESERVED"
}

// IsTwoByte reports whether id encodes as a 0xFD/0xFE/0xFF-prefixed opcode.
func (id InstructionID) IsTwoByte() bool {
	return id > 0xFF
}
