package decode

import (
	"errors"

	"vaxcore/cpu"
)

// ErrOutOfBytes is returned when the stream is exhausted mid-operand.
var ErrOutOfBytes = errors.New("decode: out of bytes")

// ErrInvalidMode is returned when a decoded operand mode is incompatible
// with the field's access class, or an Indexed operand wraps an invalid base.
var ErrInvalidMode = errors.New("decode: invalid operand mode")

// OperandKind tags which of the 16 primary addressing-mode variants an
// Operand carries.
type OperandKind uint8

const (
	KindLiteral OperandKind = iota
	KindRegister
	KindRegisterDeferred
	KindAutoDecrement
	KindAutoIncrement
	KindAutoIncrementDeferred
	KindByteDisplacement
	KindByteDisplacementDeferred
	KindWordDisplacement
	KindWordDisplacementDeferred
	KindLongwordDisplacement
	KindLongwordDisplacementDeferred
	KindAbsolute
	KindIndexed
	KindImmediate8
	KindImmediate16
	KindImmediate32
	KindImmediate64
	KindImmediate128
	KindDataByte
	KindDataWord
	KindDataLong
)

// baseOperand carries every field a non-Indexed operand variant needs. It
// is also embedded by value inside Operand.Inner so an Indexed operand's
// single level of nesting costs no heap allocation; the architecture never
// nests an Indexed operand inside another.
type baseOperand struct {
	Kind    OperandKind
	Reg     cpu.RegID
	Disp    int32    // sign-extended displacement for *Displacement(Deferred) kinds
	Literal uint8    // KindLiteral
	Abs     uint32   // KindAbsolute
	Imm8    uint8    // KindImmediate8
	Imm16   uint16   // KindImmediate16
	Imm32   uint32   // KindImmediate32, KindDataLong
	Imm64   uint64   // KindImmediate64
	Imm128  [16]byte // KindImmediate128, little-endian
	Data16  uint16   // KindDataWord
}

// Operand is a tagged variant over the 16 primary VAX addressing modes
// plus the inline Data* forms produced directly by the instruction decoder.
// It is a plain struct rather than an interface so decoding an operand
// sequence never allocates.
type Operand struct {
	baseOperand
	Index cpu.RegID   // index register, valid only when Kind == KindIndexed
	Inner baseOperand // the wrapped base operand, valid only when Kind == KindIndexed
}

// isValidIndexBase reports whether op may serve as the inner operand of an
// Indexed mode. Literal, Register, AutoDecrement, AutoIncrement,
// AutoIncrementDeferred, any Immediate*, and another Indexed are forbidden;
// everything else (the deferred/displacement forms and Absolute) is valid.
func isValidIndexBase(op Operand) bool {
	switch op.Kind {
	case KindLiteral, KindIndexed, KindRegister, KindAutoDecrement,
		KindAutoIncrement, KindAutoIncrementDeferred,
		KindImmediate8, KindImmediate16, KindImmediate32, KindImmediate64, KindImmediate128:
		return false
	default:
		return true
	}
}

// isValidInFieldMode checks a decoded operand against the access class its
// field position declared, per §4.3.
func isValidInFieldMode(op Operand, mode FieldMode) bool {
	switch mode {
	case Read:
		return true
	case Write, Modify:
		switch op.Kind {
		case KindLiteral, KindImmediate8, KindImmediate16, KindImmediate32, KindImmediate64, KindImmediate128:
			return false
		default:
			return true
		}
	case Address:
		switch op.Kind {
		case KindLiteral, KindRegister:
			return false
		default:
			return true
		}
	case Bitfield:
		return op.Kind != KindLiteral
	default:
		// Data and VariableLengthTable fields never reach the operand
		// decoder; they're consumed directly by the instruction decoder.
		return true
	}
}

// byteReader is satisfied by *Stream; kept narrow so DecodeOperand only
// depends on the pull operations it actually uses.
type byteReader interface {
	Next() (byte, bool)
	NextWord() (uint16, bool)
	NextLongword() (uint32, bool)
	NextQuadword() (uint64, bool)
	NextOctaword() ([16]byte, bool)
}

// DecodeOperand decodes exactly one operand from s. width is the field's
// declared operand width (used only when the mode byte selects an
// immediate); allowIndexed permits one level of Indexed-mode recursion and
// must be false when decoding an Indexed operand's inner base.
func DecodeOperand(s byteReader, width OperandWidth, allowIndexed bool) (Operand, error) {
	head, ok := s.Next()
	if !ok {
		return Operand{}, ErrOutOfBytes
	}

	if head>>6 == 0 {
		return Operand{baseOperand: baseOperand{Kind: KindLiteral, Literal: head & 0x3F}}, nil
	}

	mode := (head >> 4) & 0xF
	reg := cpu.RegID(head & 0xF)

	switch mode {
	case 4:
		if !allowIndexed {
			return Operand{}, ErrInvalidMode
		}
		inner, err := DecodeOperand(s, width, false)
		if err != nil {
			return Operand{}, err
		}
		if !isValidIndexBase(inner) {
			return Operand{}, ErrInvalidMode
		}
		return Operand{
			baseOperand: baseOperand{Kind: KindIndexed},
			Index:       reg,
			Inner:       inner.baseOperand,
		}, nil

	case 5:
		return Operand{baseOperand: baseOperand{Kind: KindRegister, Reg: reg}}, nil
	case 6:
		return Operand{baseOperand: baseOperand{Kind: KindRegisterDeferred, Reg: reg}}, nil
	case 7:
		return Operand{baseOperand: baseOperand{Kind: KindAutoDecrement, Reg: reg}}, nil

	case 8:
		if reg != 0xF {
			return Operand{baseOperand: baseOperand{Kind: KindAutoIncrement, Reg: reg}}, nil
		}
		return decodeImmediate(s, width)

	case 9:
		if reg != 0xF {
			return Operand{baseOperand: baseOperand{Kind: KindAutoIncrementDeferred, Reg: reg}}, nil
		}
		v, ok := s.NextLongword()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindAbsolute, Abs: v}}, nil

	case 10:
		v, ok := s.Next()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindByteDisplacement, Reg: reg, Disp: int32(int8(v))}}, nil

	case 11:
		v, ok := s.NextWord()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindWordDisplacement, Reg: reg, Disp: int32(int16(v))}}, nil

	case 12:
		v, ok := s.NextLongword()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindLongwordDisplacement, Reg: reg, Disp: int32(v)}}, nil

	case 13:
		v, ok := s.Next()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindByteDisplacementDeferred, Reg: reg, Disp: int32(int8(v))}}, nil

	case 14:
		v, ok := s.NextWord()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindWordDisplacementDeferred, Reg: reg, Disp: int32(int16(v))}}, nil

	case 15:
		v, ok := s.NextLongword()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindLongwordDisplacementDeferred, Reg: reg, Disp: int32(v)}}, nil

	default:
		// unreachable: mode is a 4-bit field and every value 0-15 is handled
		// above (0-3 is caught by the literal shortcut).
		return Operand{}, ErrInvalidMode
	}
}

func decodeImmediate(s byteReader, width OperandWidth) (Operand, error) {
	switch width {
	case Byte:
		v, ok := s.Next()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindImmediate8, Imm8: v}}, nil
	case Word:
		v, ok := s.NextWord()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindImmediate16, Imm16: v}}, nil
	case Longword:
		v, ok := s.NextLongword()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindImmediate32, Imm32: v}}, nil
	case Quadword:
		v, ok := s.NextQuadword()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindImmediate64, Imm64: v}}, nil
	case Octaword:
		v, ok := s.NextOctaword()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindImmediate128, Imm128: v}}, nil
	default:
		return Operand{}, ErrInvalidMode
	}
}
