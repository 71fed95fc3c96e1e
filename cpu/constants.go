package cpu

// ============================================================================
// VAX Processor Architecture Constants
// ============================================================================
// Bit positions and widths fixed by the VAX architecture: register roles,
// PSL field layout, and the page geometry shared between the MMU and the
// decoder's operand-width arithmetic.

// General register roles. Slots 0-13 are unrestricted; 14 and 15 carry
// architectural meaning regardless of which instruction addresses them.
const (
	SPRegister = 14 // active stack pointer, shadowed per privilege mode
	PCRegister = 15 // program counter
	NumRegisters = 16
)

// PSL bit positions (LSB = 0).
const (
	PSLBitCarry                = 0
	PSLBitZero                 = 1
	PSLBitNegative             = 3
	PSLBitTraceEnable          = 4
	PSLBitIntOverflowEnable    = 5
	PSLBitFPUnderflowEnable    = 6
	PSLBitDecimalOverflowEnable = 7
	PSLBitPreviousModeShift    = 22 // bits 22-23
	PSLBitCurrentModeShift     = 24 // bits 24-25
	PSLBitInterruptStack       = 26
	PSLBitFirstPartDone        = 27
	PSLBitTracePending         = 30
)

// PSLModeMask isolates a two-bit privilege-mode field once shifted into
// position at bit 0.
const PSLModeMask = 0x3

// Page geometry, shared by the MMU and by any PFN arithmetic elsewhere in
// the core.
const (
	PageSizeBytes = 512
	PageShift     = 9 // log2(PageSizeBytes)
	PFNMask       = 0x1FFFFF
)
