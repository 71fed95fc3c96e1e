package decode

import "testing"

func TestDecodeADDB2ImmediateAndRegister(t *testing.T) {
	// ADDB2 #2, R1
	s := NewStream([]byte{0x80, 0x8F, 0x02, 0x51})
	id, seq, err := Decode(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != ADDB2 {
		t.Fatalf("id = %v, want ADDB2", id)
	}

	op1, more, err := seq.Next()
	if err != nil {
		t.Fatalf("first operand unexpected error: %v", err)
	}
	if !more {
		t.Fatalf("expected a second operand to follow")
	}
	if op1.Kind != KindImmediate8 || op1.Imm8 != 2 {
		t.Errorf("operand 1 = %+v, want Immediate8(2)", op1)
	}

	op2, more, err := seq.Next()
	if err != nil {
		t.Fatalf("second operand unexpected error: %v", err)
	}
	if more {
		t.Errorf("expected no further operands")
	}
	if op2.Kind != KindRegister || op2.Reg != 1 {
		t.Errorf("operand 2 = %+v, want Register(R1)", op2)
	}
}

func TestDecodeADDL2RegisterToRegister(t *testing.T) {
	// ADDL2 R0, R1
	s := NewStream([]byte{0xC0, 0x50, 0x51})
	id, seq, err := Decode(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != ADDL2 {
		t.Fatalf("id = %v, want ADDL2", id)
	}
	op1, _, err := seq.Next()
	if err != nil || op1.Kind != KindRegister || op1.Reg != 0 {
		t.Errorf("operand 1 = %+v, err=%v, want Register(R0)", op1, err)
	}
	op2, more, err := seq.Next()
	if err != nil || op2.Kind != KindRegister || op2.Reg != 1 {
		t.Errorf("operand 2 = %+v, err=%v, want Register(R1)", op2, err)
	}
	if more {
		t.Errorf("expected no further operands")
	}
}

func TestDecodeTwoByteOpcode(t *testing.T) {
	// BUGW #2 — prefix 0xFF, second byte 0xFE, little-endian word data 2.
	s := NewStream([]byte{0xFF, 0xFE, 0x02, 0x00})
	id, seq, err := Decode(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != BUGW {
		t.Fatalf("id = %v, want BUGW", id)
	}
	op, more, err := seq.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != KindDataWord || op.Data16 != 2 {
		t.Errorf("operand = %+v, want DataWord(2)", op)
	}
	if more {
		t.Errorf("expected no further operands")
	}
}

func TestDecodeRETEmptyOperandSequence(t *testing.T) {
	s := NewStream([]byte{0x04})
	id, seq, err := Decode(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != RET {
		t.Fatalf("id = %v, want RET", id)
	}
	op, more, err := seq.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if more {
		t.Errorf("expected RET to have no operands")
	}
	if (op != Operand{}) {
		t.Errorf("expected zero Operand, got %+v", op)
	}
}

func TestDecodeInvalidTwoByteOpcode(t *testing.T) {
	s := NewStream([]byte{0xFF, 0xFF})
	if _, _, err := Decode(s); err != ErrInvalidInstruction {
		t.Errorf("err = %v, want ErrInvalidInstruction", err)
	}
}

func TestDecodeDataFieldUnsupportedWidth(t *testing.T) {
	s := NewStream([]byte{0x00})
	if _, err := decodeDataField(s, Quadword); err != ErrUnsupportedWidth {
		t.Errorf("err = %v, want ErrUnsupportedWidth", err)
	}
	if _, err := decodeDataField(s, Octaword); err != ErrUnsupportedWidth {
		t.Errorf("err = %v, want ErrUnsupportedWidth", err)
	}
}

func TestDecodeOutOfBytes(t *testing.T) {
	s := NewStream(nil)
	if _, _, err := Decode(s); err != ErrOutOfBytes {
		t.Errorf("err = %v, want ErrOutOfBytes", err)
	}
}

func TestDecodeCASEBStopsAtVariableLengthTable(t *testing.T) {
	// CASEB selector, base, limit — table itself is left for the caller.
	s := NewStream([]byte{0x8F, 0x51, 0x8F, 0x03, 0x8F, 0x02})
	id, seq, err := Decode(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != CASEB {
		t.Fatalf("id = %v, want CASEB", id)
	}
	for i := 0; i < 3; i++ {
		if _, _, err := seq.Next(); err != nil {
			t.Fatalf("operand %d: unexpected error: %v", i, err)
		}
	}
	op, more, err := seq.Next()
	if err != nil {
		t.Fatalf("unexpected error reaching table field: %v", err)
	}
	if more {
		t.Errorf("expected sequence to end at the table field")
	}
	if (op != Operand{}) {
		t.Errorf("expected zero Operand at table boundary, got %+v", op)
	}
	if s.Pos() != 6 {
		t.Errorf("stream Pos() = %d, want 6 (positioned after fixed operands)", s.Pos())
	}
}
