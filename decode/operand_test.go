package decode

import "testing"

func TestDecodeOperandLiteral(t *testing.T) {
	s := NewStream([]byte{0x02})
	op, err := DecodeOperand(s, Byte, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != KindLiteral || op.Literal != 2 {
		t.Errorf("got %+v, want KindLiteral(2)", op)
	}
}

func TestDecodeOperandRegister(t *testing.T) {
	s := NewStream([]byte{0x51})
	op, err := DecodeOperand(s, Longword, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != KindRegister || op.Reg != 1 {
		t.Errorf("got %+v, want KindRegister(R1)", op)
	}
}

func TestDecodeOperandRegisterDeferred(t *testing.T) {
	s := NewStream([]byte{0x63})
	op, err := DecodeOperand(s, Longword, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != KindRegisterDeferred || op.Reg != 3 {
		t.Errorf("got %+v, want KindRegisterDeferred(R3)", op)
	}
}

func TestDecodeOperandImmediateByWidth(t *testing.T) {
	cases := []struct {
		name  string
		width OperandWidth
		bytes []byte
		kind  OperandKind
	}{
		{"imm8", Byte, []byte{0x8F, 0x42}, KindImmediate8},
		{"imm16", Word, []byte{0x8F, 0x34, 0x12}, KindImmediate16},
		{"imm32", Longword, []byte{0x8F, 0x78, 0x56, 0x34, 0x12}, KindImmediate32},
		{"imm64", Quadword, []byte{0x8F, 1, 2, 3, 4, 5, 6, 7, 8}, KindImmediate64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStream(c.bytes)
			op, err := DecodeOperand(s, c.width, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if op.Kind != c.kind {
				t.Errorf("got Kind=%v, want %v", op.Kind, c.kind)
			}
		})
	}
}

func TestDecodeOperandImmediate8NotEnoughBytes(t *testing.T) {
	s := NewStream([]byte{0x8F})
	if _, err := DecodeOperand(s, Byte, true); err != ErrOutOfBytes {
		t.Errorf("got err=%v, want ErrOutOfBytes", err)
	}
}

func TestDecodeOperandNoBytes(t *testing.T) {
	s := NewStream(nil)
	if _, err := DecodeOperand(s, Byte, true); err != ErrOutOfBytes {
		t.Errorf("got err=%v, want ErrOutOfBytes", err)
	}
}

func TestDecodeOperandAutoIncrement(t *testing.T) {
	s := NewStream([]byte{0x82})
	op, err := DecodeOperand(s, Longword, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != KindAutoIncrement || op.Reg != 2 {
		t.Errorf("got %+v, want KindAutoIncrement(R2)", op)
	}
}

func TestDecodeOperandAutoIncrementDeferred(t *testing.T) {
	s := NewStream([]byte{0x94})
	op, err := DecodeOperand(s, Longword, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != KindAutoIncrementDeferred || op.Reg != 4 {
		t.Errorf("got %+v, want KindAutoIncrementDeferred(R4)", op)
	}
}

func TestDecodeOperandAbsolute(t *testing.T) {
	s := NewStream([]byte{0x9F, 0x78, 0x56, 0x34, 0x12})
	op, err := DecodeOperand(s, Longword, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != KindAbsolute || op.Abs != 0x12345678 {
		t.Errorf("got %+v, want KindAbsolute(0x12345678)", op)
	}
}

func TestDecodeOperandDoublyIndexedInvalid(t *testing.T) {
	s := NewStream([]byte{0x40, 0x40})
	if _, err := DecodeOperand(s, Longword, true); err != ErrInvalidMode {
		t.Errorf("got err=%v, want ErrInvalidMode", err)
	}
}

func TestDecodeOperandIndexedValidBase(t *testing.T) {
	// 0x41 = Indexed, index reg R1; 0x63 = RegisterDeferred R3 (a valid base).
	s := NewStream([]byte{0x41, 0x63})
	op, err := DecodeOperand(s, Longword, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != KindIndexed || op.Index != 1 {
		t.Errorf("got %+v, want KindIndexed(index=R1)", op)
	}
	if op.Inner.Kind != KindRegisterDeferred || op.Inner.Reg != 3 {
		t.Errorf("got Inner=%+v, want RegisterDeferred(R3)", op.Inner)
	}
}

func TestDecodeOperandIndexedNotAllowedWhenNested(t *testing.T) {
	s := NewStream([]byte{0x41})
	if _, err := DecodeOperand(s, Longword, false); err != ErrInvalidMode {
		t.Errorf("got err=%v, want ErrInvalidMode", err)
	}
}

func TestIsValidInFieldMode(t *testing.T) {
	lit := Operand{baseOperand: baseOperand{Kind: KindLiteral}}
	reg := Operand{baseOperand: baseOperand{Kind: KindRegister}}
	imm := Operand{baseOperand: baseOperand{Kind: KindImmediate32}}

	if isValidInFieldMode(lit, Write) {
		t.Errorf("literal should be invalid in Write field")
	}
	if isValidInFieldMode(imm, Modify) {
		t.Errorf("immediate should be invalid in Modify field")
	}
	if !isValidInFieldMode(reg, Write) {
		t.Errorf("register should be valid in Write field")
	}
	if isValidInFieldMode(reg, Address) {
		t.Errorf("register should be invalid in Address field")
	}
	if !isValidInFieldMode(lit, Read) {
		t.Errorf("literal should be valid in Read field")
	}
}
