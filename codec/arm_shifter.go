package codec

import "github.com/lookbusy1344/armcodec/arm"

// encodeShifterField lays the second-operand field (the I bit at position
// 25 plus bits 11-0) of a data-processing-style opcode, dispatching on the
// shifter's concrete shape the same way add_shifter in the original Arm
// encoder does.
func encodeShifterField(opcode uint32, s arm.Shifter) (uint32, error) {
	switch src := s.(type) {
	case arm.Immediate:
		imm8, rotate, ok := encodeRotatedImmediate(src.Value)
		if !ok {
			return 0, arm.New(arm.IllegalImmediate, "immediate cannot be expressed as an 8-bit value rotated right by an even amount")
		}
		opcode |= 1 << armIBitShift
		opcode |= imm8
		opcode |= rotate << 8
		return opcode, nil

	case arm.LogicalShiftLeftImmediate:
		if src.Shift == 0 {
			opcode |= uint32(src.Source)
			return opcode, nil
		}
		return encodeImmediateShift(opcode, src.Source, 0b00, src.Shift)

	case arm.LogicalShiftRightImmediate:
		if src.Shift == 0 {
			return 0, arm.New(arm.IllegalImmediate, "immediate shift cannot be null on arm")
		}
		return encodeImmediateShift(opcode, src.Source, 0b01, src.Shift)

	case arm.ArithmeticShiftRightImmediate:
		if src.Shift == 0 {
			return 0, arm.New(arm.IllegalImmediate, "immediate shift cannot be null on arm")
		}
		return encodeImmediateShift(opcode, src.Source, 0b10, src.Shift)

	case arm.RotateRightImmediate:
		if src.Shift == 0 {
			return 0, arm.New(arm.IllegalImmediate, "immediate shift cannot be null on arm")
		}
		return encodeImmediateShift(opcode, src.Source, 0b11, src.Shift)

	case arm.LogicalShiftLeftRegister:
		return encodeRegisterShift(opcode, src.Source, 0b00, src.Shift), nil

	case arm.LogicalShiftRightRegister:
		return encodeRegisterShift(opcode, src.Source, 0b01, src.Shift), nil

	case arm.ArithmeticShiftRightRegister:
		return encodeRegisterShift(opcode, src.Source, 0b10, src.Shift), nil

	case arm.RotateRightRegister:
		return encodeRegisterShift(opcode, src.Source, 0b11, src.Shift), nil

	case arm.RotateRightExtend:
		opcode |= uint32(src.Source)
		opcode |= 0b11 << armShiftTypeShift
		return opcode, nil

	default:
		return 0, arm.New(arm.IllegalShifter, "unrecognised shifter variant")
	}
}

// encodeImmediateShift lays bits 3-0 (source), 6-5 (shift code), and 11-7
// (shift amount, with 32 stored as 0) for the four immediate-shift forms.
func encodeImmediateShift(opcode uint32, source arm.Register, code uint32, shift uint32) (uint32, error) {
	limit := uint32(32)
	if code == 0b00 || code == 0b11 {
		limit = 31
	}
	if shift > limit {
		return 0, arm.New(arm.IllegalImmediate, "immediate shift amount out of range on arm")
	}
	amount := shift % 32
	opcode |= uint32(source)
	opcode |= code << armShiftTypeShift
	opcode |= amount << armShiftAmountShift
	return opcode, nil
}

// encodeRegisterShift lays bit 4 (set), bits 6-5 (shift code), bits 11-8
// (shift register), and bits 3-0 (source register) for the four
// register-shift forms.
func encodeRegisterShift(opcode uint32, source arm.Register, code uint32, shiftReg arm.Register) uint32 {
	opcode |= 1 << armRegShiftBit
	opcode |= code << armShiftTypeShift
	opcode |= uint32(shiftReg) << armRsShift
	opcode |= uint32(source)
	return opcode
}

// encodeRotatedImmediate finds an 8-bit value and an even rotate amount
// (0..=30) such that rotating the 8-bit value right by that amount
// reproduces v, as required by the Arm immediate operand encoding.
func encodeRotatedImmediate(v uint32) (imm8, rotateField uint32, ok bool) {
	if v <= 0xFF {
		return v, 0, true
	}
	for r := uint32(2); r <= 30; r += 2 {
		candidate := (v << r) | (v >> (32 - r))
		if candidate <= 0xFF {
			return candidate, r / 2, true
		}
	}
	return 0, 0, false
}
