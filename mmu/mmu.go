package mmu

import "fmt"

const (
	pageSizeBytes = 512
	pageShift     = 9
	maxLengthPages = 1 << 23
	regionMask    = 0x3
	regionShift   = 30
	baseMask      = 0x3FFFFFFF // bits 31-30 ignored
)

// FaultKind categorizes why a translation failed.
type FaultKind int

const (
	LengthViolation FaultKind = iota
	AccessViolation
	TranslationNotValid
	ModifyBitNotSet
)

func (k FaultKind) String() string {
	switch k {
	case LengthViolation:
		return "length violation"
	case AccessViolation:
		return "access violation"
	case TranslationNotValid:
		return "translation not valid"
	case ModifyBitNotSet:
		return "modify bit transition"
	default:
		return "unknown fault"
	}
}

// Fault is returned by Translate on any translation failure. It carries
// enough of the offending PTE for the executor to synthesize the correct
// exception and, for ModifyBitNotSet, to retry after updating the PTE.
type Fault struct {
	Kind    FaultKind
	Address uint32
	Access  AccessKind
	PTE     *PTE // nil when the fault occurs before a PTE is read
}

func (f *Fault) Error() string {
	if f.PTE != nil {
		return fmt.Sprintf("mmu: %s at %#08x (pte=%#08x)", f.Kind, f.Address, f.PTE.Raw)
	}
	return fmt.Sprintf("mmu: %s at %#08x", f.Kind, f.Address)
}

// Bus is the physical-memory side of the MMU, satisfied by the system bus.
type Bus interface {
	ReadPhysicalLongword(addr uint32) uint32
	WritePhysicalLongword(addr uint32, val uint32)
}

// region holds one of the three translated regions' base+length registers.
type region struct {
	base uint32 // region_base, already trimmed to 30 bits
	len  uint32 // length in 512-byte pages
}

// MMU implements the three-region segmented page-table walk described for
// the P0, P1, and System address spaces.
type MMU struct {
	p0      region
	p1      region
	sys     region
	enabled bool
	bus     Bus
}

// New returns a disabled MMU with zeroed region registers, bound to bus for
// PTE reads.
func New(bus Bus) *MMU {
	return &MMU{bus: bus}
}

// SetEnabled toggles translation. While disabled, region 0 addresses pass
// through unchanged; all other regions fault.
func (m *MMU) SetEnabled(enabled bool) { m.enabled = enabled }

// Enabled reports the current enable state.
func (m *MMU) Enabled() bool { return m.enabled }

func clampLength(len uint32) uint32 {
	if len > maxLengthPages {
		return maxLengthPages
	}
	return len
}

func (m *MMU) SetP0Base(base uint32)   { m.p0.base = base & baseMask }
func (m *MMU) SetP0Length(len uint32)  { m.p0.len = clampLength(len) }
func (m *MMU) SetP1Base(base uint32)   { m.p1.base = base & baseMask }
func (m *MMU) SetP1Length(len uint32)  { m.p1.len = clampLength(len) }
func (m *MMU) SetSysBase(base uint32)  { m.sys.base = base & baseMask }
func (m *MMU) SetSysLength(len uint32) { m.sys.len = clampLength(len) }

func (m *MMU) P0Base() uint32   { return m.p0.base }
func (m *MMU) P0Length() uint32 { return m.p0.len }
func (m *MMU) P1Base() uint32   { return m.p1.base }
func (m *MMU) P1Length() uint32 { return m.p1.len }
func (m *MMU) SysBase() uint32  { return m.sys.base }
func (m *MMU) SysLength() uint32 { return m.sys.len }

// Region returns 0 (P0), 1 (P1), 2 (System), or 3 (reserved) for addr.
func Region(addr uint32) uint8 {
	return uint8((addr >> regionShift) & regionMask)
}

// pageNumber extracts bits 9-29: the virtual page number within its region.
func pageNumber(addr uint32) uint32 {
	return (addr >> pageShift) & 0x1FFFFF
}

// byteInPage extracts bits 0-8: the offset within a 512-byte page.
func byteInPage(addr uint32) uint32 {
	return addr & (pageSizeBytes - 1)
}

// validForRegion applies the direction rule for region's growth: P0 grows
// upward from base (page < length), P1 grows downward (page >= 2^21 -
// length), System grows upward like P0.
func validForRegion(reg uint8, page uint32, r region) bool {
	switch reg {
	case 0, 2:
		return page < r.len
	case 1:
		return page >= (1<<21)-r.len
	default:
		return false
	}
}

func (m *MMU) regionFor(reg uint8) (region, bool) {
	switch reg {
	case 0:
		return m.p0, true
	case 1:
		return m.p1, true
	case 2:
		return m.sys, true
	default:
		return region{}, false
	}
}

// Translate resolves a virtual address to a physical one for the given
// privilege mode and access kind, implementing the full 8-step pipeline:
// region/page extraction, disabled-MMU identity map for region 0, length
// validation, PTE fetch and decode, protection check, and modify-bit
// signaling on a first write.
func (m *MMU) Translate(virt uint32, mode uint8, access AccessKind) (uint32, error) {
	reg := Region(virt)
	page := pageNumber(virt)
	offset := byteInPage(virt)

	if !m.enabled {
		if reg == 0 {
			return virt, nil
		}
		return 0, &Fault{Kind: TranslationNotValid, Address: virt, Access: access}
	}

	r, ok := m.regionFor(reg)
	if !ok {
		return 0, &Fault{Kind: TranslationNotValid, Address: virt, Access: access}
	}
	if !validForRegion(reg, page, r) {
		return 0, &Fault{Kind: LengthViolation, Address: virt, Access: access}
	}

	pteAddr := r.base + page*4
	raw := m.bus.ReadPhysicalLongword(pteAddr)
	pte := DecodePTE(raw)
	if !pte.Valid {
		return 0, &Fault{Kind: TranslationNotValid, Address: virt, Access: access, PTE: &pte}
	}

	if !pte.Protection.CanAccess(mode, access) {
		return 0, &Fault{Kind: AccessViolation, Address: virt, Access: access, PTE: &pte}
	}

	if access == Write && !pte.Modify {
		return 0, &Fault{Kind: ModifyBitNotSet, Address: virt, Access: access, PTE: &pte}
	}

	return (pte.PFN << pageShift) | offset, nil
}
