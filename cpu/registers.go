package cpu

// RegID identifies one of the 16 general registers. It is a 4-bit value;
// callers decoding an operand mode byte narrow the nibble into this type.
type RegID uint8

// IsSP reports whether id names the stack-pointer slot. The actual value
// observed through that slot depends on the active privilege mode and the
// interrupt-stack bit — see RegisterFile.Get.
func (id RegID) IsSP() bool { return id == SPRegister }

// IsPC reports whether id names the program-counter slot.
func (id RegID) IsPC() bool { return id == PCRegister }

// RegisterFile holds the 16 general registers plus the five shadow stack
// pointers (one per privilege mode, plus the interrupt stack) that are
// multiplexed onto slot 14.
//
// Register values are owned by the executor across a step; this type only
// models the storage and the mode-dependent aliasing of R14.
type RegisterFile struct {
	r [NumRegisters]uint32

	ksp uint32
	esp uint32
	ssp uint32
	usp uint32
	isp uint32
}

// NewRegisterFile returns a zeroed register file.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{}
}

// Get returns the value of register id. For id other than 14 this is a
// direct read of the backing array; for 14 it resolves the shadow stack
// pointer selected by the current privilege mode and the interrupt-stack
// bit of psl.
func (f *RegisterFile) Get(id RegID, psl PSL) uint32 {
	if id == SPRegister {
		return f.activeSP(psl)
	}
	return f.r[id&0xF]
}

// Set writes the value of register id, routing slot 14 through the same
// shadow-stack-pointer resolution as Get.
func (f *RegisterFile) Set(id RegID, psl PSL, value uint32) {
	if id == SPRegister {
		f.setActiveSP(psl, value)
		return
	}
	f.r[id&0xF] = value
}

func (f *RegisterFile) activeSP(psl PSL) uint32 {
	if psl.InterruptStack() {
		return f.isp
	}
	switch psl.CurrentMode() {
	case Kernel:
		return f.ksp
	case Executive:
		return f.esp
	case Supervisor:
		return f.ssp
	case User:
		return f.usp
	default:
		return f.ksp
	}
}

func (f *RegisterFile) setActiveSP(psl PSL, value uint32) {
	if psl.InterruptStack() {
		f.isp = value
		return
	}
	switch psl.CurrentMode() {
	case Kernel:
		f.ksp = value
	case Executive:
		f.esp = value
	case Supervisor:
		f.ssp = value
	case User:
		f.usp = value
	}
}

// ShadowSP returns the stack pointer belonging to a specific mode directly,
// bypassing the current-mode lookup. Used by MTPR/MFPR on KSP/ESP/SSP/USP
// and by context-switch code that must see a non-active mode's stack.
func (f *RegisterFile) ShadowSP(m PrivilegeMode) uint32 {
	switch m {
	case Kernel:
		return f.ksp
	case Executive:
		return f.esp
	case Supervisor:
		return f.ssp
	case User:
		return f.usp
	default:
		return 0
	}
}

// SetShadowSP writes the stack pointer belonging to a specific mode
// directly, bypassing the current-mode lookup.
func (f *RegisterFile) SetShadowSP(m PrivilegeMode, value uint32) {
	switch m {
	case Kernel:
		f.ksp = value
	case Executive:
		f.esp = value
	case Supervisor:
		f.ssp = value
	case User:
		f.usp = value
	}
}

// InterruptSP returns the interrupt-stack pointer directly.
func (f *RegisterFile) InterruptSP() uint32 { return f.isp }

// SetInterruptSP writes the interrupt-stack pointer directly.
func (f *RegisterFile) SetInterruptSP(value uint32) { f.isp = value }
