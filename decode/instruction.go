package decode

import "errors"

// ErrInvalidInstruction is returned when an opcode byte (or two-byte
// prefix/second-byte pair) has no entry in OpcodeTable.
var ErrInvalidInstruction = errors.New("decode: invalid instruction")

// ErrUnsupportedWidth is returned by decodeDataField for a Data-field width
// no VAX instruction actually uses (Quadword, Octaword). It is distinct from
// ErrInvalidMode, which signals an operand that decoded fine but violates
// its field's access class.
var ErrUnsupportedWidth = errors.New("decode: unsupported data field width")

const (
	prefixFD byte = 0xFD
	prefixFE byte = 0xFE
	prefixFF byte = 0xFF
)

// Decode reads one opcode from s and returns its identity along with a
// pull-style iterator over its operand fields. The stream's cursor is left
// positioned immediately after the opcode (and any two-byte prefix); the
// returned OperandSeq consumes further bytes from the same Stream as its
// Next method is called.
func Decode(s *Stream) (InstructionID, *OperandSeq, error) {
	b, ok := s.Next()
	if !ok {
		return 0, nil, ErrOutOfBytes
	}

	var id InstructionID
	switch b {
	case prefixFD, prefixFE, prefixFF:
		second, ok := s.Next()
		if !ok {
			return 0, nil, ErrOutOfBytes
		}
		id = InstructionID(b) | InstructionID(second)<<8
	default:
		id = InstructionID(b)
	}

	entry, ok := OpcodeTable[id]
	if !ok {
		return 0, nil, ErrInvalidInstruction
	}
	return id, &OperandSeq{stream: s, fields: entry.Fields}, nil
}

// OperandSeq lazily decodes one instruction's operand fields in order. A
// VariableLengthTable field (CASE instructions' jump table) ends the
// sequence without error; the stream is left positioned right after the
// fixed operands so the caller can read the table itself.
type OperandSeq struct {
	stream *Stream
	fields []FieldDescriptor
	idx    int
}

// Len returns the instruction's total field count (fixed operands plus,
// for CASE instructions, the table field that Next never actually yields).
func (it *OperandSeq) Len() int { return len(it.fields) }

// Next decodes the next operand. hasMore reports whether further fields
// remain; it is false once the fixed fields are exhausted or a
// VariableLengthTable field is reached. For a CASE instruction it is still
// true after the last fixed operand, and the following call returns the
// zero Operand with hasMore false. err is non-nil
// only on a genuine decode failure (exhausted bytes, invalid mode, or an
// operand that violates its field's access class).
func (it *OperandSeq) Next() (op Operand, hasMore bool, err error) {
	if it.idx >= len(it.fields) {
		return Operand{}, false, nil
	}

	field := it.fields[it.idx]
	if field.Mode == VariableLengthTable {
		it.idx = len(it.fields)
		return Operand{}, false, nil
	}

	if field.Mode == Data {
		op, err = decodeDataField(it.stream, field.Width)
	} else {
		op, err = DecodeOperand(it.stream, field.Width, true)
		if err == nil && !isValidInFieldMode(op, field.Mode) {
			err = ErrInvalidMode
		}
	}
	if err != nil {
		return Operand{}, false, err
	}

	it.idx++
	return op, it.idx < len(it.fields), nil
}

// decodeDataField reads a raw literal value for a Data field: these carry
// branch displacements and similar immediates that are never reached
// through the mode-byte dispatch DecodeOperand implements.
func decodeDataField(s byteReader, width OperandWidth) (Operand, error) {
	switch width {
	case Byte:
		v, ok := s.Next()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindDataByte, Literal: v}}, nil
	case Word:
		v, ok := s.NextWord()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindDataWord, Data16: v}}, nil
	case Longword:
		v, ok := s.NextLongword()
		if !ok {
			return Operand{}, ErrOutOfBytes
		}
		return Operand{baseOperand: baseOperand{Kind: KindDataLong, Imm32: v}}, nil
	default:
		return Operand{}, ErrUnsupportedWidth
	}
}
