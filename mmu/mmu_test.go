package mmu

import "testing"

type fakeBus struct {
	mem map[uint32]uint32
}

func newFakeBus() *fakeBus { return &fakeBus{mem: map[uint32]uint32{}} }

func (b *fakeBus) ReadPhysicalLongword(addr uint32) uint32 { return b.mem[addr] }
func (b *fakeBus) WritePhysicalLongword(addr uint32, val uint32) { b.mem[addr] = val }

const (
	kernelMode     = 0
	executiveMode  = 1
	supervisorMode = 2
	userMode       = 3
)

func TestTranslateDisabledRegionZeroIdentityMaps(t *testing.T) {
	m := New(newFakeBus())
	got, err := m.Translate(0x00001234, kernelMode, Read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x00001234 {
		t.Errorf("got %#x, want identity map", got)
	}
}

func TestTranslateDisabledOtherRegionFaults(t *testing.T) {
	m := New(newFakeBus())
	_, err := m.Translate(0x40000000, kernelMode, Read)
	fault, ok := err.(*Fault)
	if !ok || fault.Kind != TranslationNotValid {
		t.Fatalf("err = %v, want TranslationNotValid fault", err)
	}
}

func TestTranslateRegion0KernelRead(t *testing.T) {
	bus := newFakeBus()
	m := New(bus)
	m.SetEnabled(true)
	m.SetP0Base(0x1000)
	m.SetP0Length(16)

	raw := uint32(1<<31) | uint32(KernR)<<27 | 0x42
	bus.mem[0x1000] = raw // page 0 PTE lives at base + 0*4

	phys, err := m.Translate(0x00000003, kernelMode, Read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phys != 0x00008403 {
		t.Errorf("phys = %#08x, want 0x00008403", phys)
	}

	if _, err := m.Translate(0x00000003, userMode, Read); err == nil {
		t.Fatalf("expected user read to fault AccessViolation")
	} else if f, ok := err.(*Fault); !ok || f.Kind != AccessViolation {
		t.Errorf("err = %v, want AccessViolation fault", err)
	}
}

func TestTranslateLengthViolationP0(t *testing.T) {
	m := New(newFakeBus())
	m.SetEnabled(true)
	m.SetP0Length(4) // valid pages 0-3

	virt := uint32(4) << pageShift // page 4, out of range
	_, err := m.Translate(virt, kernelMode, Read)
	f, ok := err.(*Fault)
	if !ok || f.Kind != LengthViolation {
		t.Fatalf("err = %v, want LengthViolation fault", err)
	}
}

func TestTranslateP1GrowsDownward(t *testing.T) {
	bus := newFakeBus()
	m := New(bus)
	m.SetEnabled(true)
	m.SetP1Base(0x2000)
	m.SetP1Length(4) // valid pages >= 2^21 - 4

	region1Base := uint32(1) << 30
	highPage := uint32((1 << 21) - 1) // well within the valid top-4-pages band
	virt := region1Base | (highPage << pageShift)

	pteOffset := m.P1Base() + highPage*4
	raw := uint32(1<<31) | uint32(UserR)<<27 | 0x10
	bus.mem[pteOffset] = raw

	phys, err := m.Translate(virt, userMode, Read)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint32(0x10)<<pageShift | (virt & 0x1FF)
	if phys != want {
		t.Errorf("phys = %#08x, want %#08x", phys, want)
	}

	// A page well below the grows-downward threshold should fault.
	lowVirt := region1Base | (uint32(10) << pageShift)
	if _, err := m.Translate(lowVirt, userMode, Read); err == nil {
		t.Fatalf("expected LengthViolation for a P1 page below the threshold")
	}
}

func TestTranslateTranslationNotValidOnInvalidPTE(t *testing.T) {
	bus := newFakeBus()
	m := New(bus)
	m.SetEnabled(true)
	m.SetSysLength(4)
	bus.mem[0] = 0 // valid bit unset

	_, err := m.Translate(uint32(2)<<30, kernelMode, Read)
	f, ok := err.(*Fault)
	if !ok || f.Kind != TranslationNotValid {
		t.Fatalf("err = %v, want TranslationNotValid fault", err)
	}
	if f.PTE == nil {
		t.Errorf("expected fault to carry the offending PTE")
	}
}

func TestTranslateModifyBitTransitionOnWrite(t *testing.T) {
	bus := newFakeBus()
	m := New(bus)
	m.SetEnabled(true)
	m.SetP0Length(4)
	bus.mem[0] = uint32(1<<31) | uint32(UserW)<<27 // modify bit clear

	_, err := m.Translate(0, userMode, Write)
	f, ok := err.(*Fault)
	if !ok || f.Kind != ModifyBitNotSet {
		t.Fatalf("err = %v, want ModifyBitNotSet fault", err)
	}
}

func TestRegionDecode(t *testing.T) {
	if Region(0x00000000) != 0 {
		t.Errorf("Region(0) = %d, want 0", Region(0))
	}
	if Region(0xC0000000) != 3 {
		t.Errorf("Region(0xC0000000) = %d, want 3", Region(0xC0000000))
	}
}

func TestReservedRegionThreeAlwaysFaults(t *testing.T) {
	m := New(newFakeBus())
	m.SetEnabled(true)
	_, err := m.Translate(0xC0000000, kernelMode, Read)
	if _, ok := err.(*Fault); !ok {
		t.Fatalf("expected a fault for region 3, got %v", err)
	}
}
