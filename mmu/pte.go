package mmu

import "vaxcore/cpu"

// ProtectionCode is the 4-bit protection class stored in bits 27-30 of a
// page table entry. Each code fixes a Kernel/Executive/Supervisor/User
// access matrix; see protectionMatrix.
type ProtectionCode uint8

const (
	NoAccess       ProtectionCode = 0x0
	ZeroPage       ProtectionCode = 0x1
	KernW          ProtectionCode = 0x2
	KernR          ProtectionCode = 0x3
	UserW          ProtectionCode = 0x4
	ExecW          ProtectionCode = 0x5
	ExecRKernW     ProtectionCode = 0x6
	ExecR          ProtectionCode = 0x7
	SuperW         ProtectionCode = 0x8
	SuperRExecW    ProtectionCode = 0x9
	SuperRKernW    ProtectionCode = 0xA
	SuperR         ProtectionCode = 0xB
	UserRSuperW    ProtectionCode = 0xC
	UserRExecW     ProtectionCode = 0xD
	UserRKernW     ProtectionCode = 0xE
	UserR          ProtectionCode = 0xF
)

// accessCell is one column's permission for a protection code: none, read-only,
// or read-write.
type accessCell uint8

const (
	cellNone accessCell = iota
	cellRead
	cellWrite
)

// protectionMatrix is the fixed 16x4 table cross-indexing every protection
// code against the four privilege modes, in K/E/S/U column order.
var protectionMatrix = map[ProtectionCode][4]accessCell{
	NoAccess:    {cellNone, cellNone, cellNone, cellNone},
	ZeroPage:    {cellRead, cellRead, cellRead, cellRead},
	KernW:       {cellWrite, cellNone, cellNone, cellNone},
	KernR:       {cellRead, cellNone, cellNone, cellNone},
	UserW:       {cellWrite, cellWrite, cellWrite, cellWrite},
	ExecW:       {cellWrite, cellWrite, cellNone, cellNone},
	ExecRKernW:  {cellWrite, cellRead, cellNone, cellNone},
	ExecR:       {cellRead, cellRead, cellNone, cellNone},
	SuperW:      {cellWrite, cellWrite, cellWrite, cellNone},
	SuperRExecW: {cellWrite, cellWrite, cellRead, cellNone},
	SuperRKernW: {cellWrite, cellRead, cellRead, cellNone},
	SuperR:      {cellRead, cellRead, cellRead, cellNone},
	UserRSuperW: {cellWrite, cellWrite, cellWrite, cellRead},
	UserRExecW:  {cellWrite, cellWrite, cellRead, cellRead},
	UserRKernW:  {cellWrite, cellRead, cellRead, cellRead},
	UserR:       {cellRead, cellRead, cellRead, cellRead},
}

// AccessKind distinguishes a read access from a write access for
// protection checks.
type AccessKind uint8

const (
	Read AccessKind = iota
	Write
)

// modeColumn maps a cpu.PrivilegeMode ordinal (Kernel=0..User=3) onto the
// matrix's column index; the two share the same numbering so this is an
// identity, kept as a named step for readability at call sites.
func modeColumn(mode uint8) int { return int(mode) }

// CanAccess reports whether a privilege mode may perform the requested
// access kind against a page carrying this protection code.
func (p ProtectionCode) CanAccess(mode uint8, kind AccessKind) bool {
	row, ok := protectionMatrix[p]
	if !ok || mode > 3 {
		return false
	}
	cell := row[modeColumn(mode)]
	switch kind {
	case Read:
		return cell == cellRead || cell == cellWrite
	case Write:
		return cell == cellWrite
	default:
		return false
	}
}

// PTE is a decoded 32-bit page table entry.
type PTE struct {
	Valid      bool
	Protection ProtectionCode
	Modify     bool
	PFN        uint32 // 21-bit page frame number
	Raw        uint32 // original longword, preserved for fault payloads
}

// DecodePTE unpacks a raw longword read from physical memory into its
// valid/protection/modify/PFN fields, per the bit layout: valid (31),
// protection code (27-30), modify (26), PFN (0-20). Fields the core treats
// as opaque (owner/type bits, GPTX metadata on invalid entries) are not
// interpreted; Raw preserves them for the executor.
func DecodePTE(raw uint32) PTE {
	pfn, _ := cpu.SafeUint32ToPFN(raw & 0x1FFFFF)
	return PTE{
		Valid:      raw&(1<<31) != 0,
		Protection: ProtectionCode((raw >> 27) & 0xF),
		Modify:     raw&(1<<26) != 0,
		PFN:        pfn,
		Raw:        raw,
	}
}

// EncodePTE packs a page frame number and protection code into a raw
// longword suitable for writing into a page table, the inverse of
// DecodePTE. Unlike the decode path, pfn here is caller-supplied and not
// already masked, so SafeUint32ToPFN's range check is the only thing
// standing between a bad physical address and a corrupted table entry.
func EncodePTE(pfn uint32, prot ProtectionCode, valid, modify bool) (uint32, error) {
	checked, err := cpu.SafeUint32ToPFN(pfn)
	if err != nil {
		return 0, err
	}
	var raw uint32
	if valid {
		raw |= 1 << 31
	}
	raw |= uint32(prot&0xF) << 27
	if modify {
		raw |= 1 << 26
	}
	raw |= checked
	return raw, nil
}
