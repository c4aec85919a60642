package codec

import (
	"github.com/lookbusy1344/armcodec/arm"
	"github.com/lookbusy1344/armcodec/opcode"
)

// DecodeThumb decodes a single 16-bit Thumb opcode into an Instruction.
// second, when non-nil, supplies the following halfword and is consumed
// only when first is the low half of a BranchLink pair; its absence is not
// an error for any other form. On success the cursor advances by the
// number of halfwords consumed; on failure it is left unchanged.
func (c *InstructionCodec) DecodeThumb(first opcode.ThumbOpcode, second *opcode.ThumbOpcode) (arm.Instruction, error) {
	word := first.Uint16()
	cursor := c.address

	switch {
	case word&0b1111_1111_0000_0000 == 0b1101_1111_0000_0000:
		instr := arm.SoftwareInterrupt{Predicate: arm.AL, Immediate: uint32(word & 0xFF)}
		c.SkipHalfwords(1)
		return instr, nil

	case word&0b1111_1111_0000_0000 == 0b1011_1110_0000_0000:
		instr := arm.Breakpoint{Immediate: uint32(word & 0xFF)}
		c.SkipHalfwords(1)
		return instr, nil

	case word&0b1111_0000_0000_0000 == 0b1101_0000_0000_0000 && (word>>8)&0xF != 0xF:
		pred := arm.Predicate((word >> 8) & 0xF)
		offset := signExtend(uint32(word&0xFF), 8) * 2
		target := int32(cursor) + 4 + offset
		instr := arm.Branch{Predicate: pred, Immediate: target}
		c.SkipHalfwords(1)
		return instr, nil

	case word&0b1111_1000_0000_0000 == 0b1110_0000_0000_0000:
		offset := signExtend(uint32(word&0x7FF), 11) * 2
		target := int32(cursor) + 4 + offset
		instr := arm.Branch{Predicate: arm.AL, Immediate: target}
		c.SkipHalfwords(1)
		return instr, nil

	case word&0b1111_1000_0000_0000 == 0b1111_0000_0000_0000:
		if second == nil {
			return nil, arm.New(arm.InvalidOpcode, "branch-link low half requires the following opcode")
		}
		low := word
		high := second.Uint16()
		if high&0b1111_1000_0000_0000 != 0b1111_1000_0000_0000 {
			return nil, arm.New(arm.InvalidOpcode, "branch-link high half has the wrong prefix")
		}
		u := (uint32(low&0x7FF) << 11) | uint32(high&0x7FF)
		offset := signExtend(u, 22) * 2
		target := int32(cursor) + 4 + offset
		instr := arm.BranchLink{Predicate: arm.AL, Immediate: target}
		c.SkipHalfwords(2)
		return instr, nil

	case word&0b1111_1111_1000_0111 == 0b0100_0111_0000_0000:
		reg := arm.Register((word >> 3) & 0xF)
		c.SkipHalfwords(1)
		return arm.BranchExchange{Predicate: arm.AL, Source: reg}, nil

	case word&0b1111_1111_1000_0111 == 0b0100_0111_1000_0000:
		reg := arm.Register((word >> 3) & 0xF)
		c.SkipHalfwords(1)
		return arm.BranchLinkExchange{Predicate: arm.AL, Source: reg}, nil

	case word&0b1111_1000_0000_0000 == 0b0001_1000_0000_0000:
		rd := arm.Register(word & 0x7)
		rn := arm.Register((word >> 3) & 0x7)
		subtract := word&(1<<9) != 0
		var source arm.Shifter
		if word&(1<<10) != 0 {
			source = arm.Immediate{Value: uint32((word >> 6) & 0x7)}
		} else {
			source = arm.FromRegister(arm.Register((word >> 6) & 0x7))
		}
		c.SkipHalfwords(1)
		if subtract {
			return arm.Subtract{Predicate: arm.AL, Destination: rd, Base: rn, Source: source, S: arm.On}, nil
		}
		return arm.Add{Predicate: arm.AL, Destination: rd, Base: rn, Source: source, S: arm.On}, nil

	case word&0b1110_0000_0000_0000 == 0b0000_0000_0000_0000 && word&0b1111_1000_0000_0000 != 0b0001_1000_0000_0000:
		op := (word >> 11) & 0x3
		amount := uint32((word >> 6) & 0x1F)
		rm := arm.Register((word >> 3) & 0x7)
		rd := arm.Register(word & 0x7)
		var source arm.Shifter
		switch op {
		case 0b00:
			source = arm.LogicalShiftLeftImmediate{Source: rm, Shift: amount}
		case 0b01:
			source = arm.LogicalShiftRightImmediate{Source: rm, Shift: normalizeShift32(amount)}
		case 0b10:
			source = arm.ArithmeticShiftRightImmediate{Source: rm, Shift: normalizeShift32(amount)}
		default:
			return nil, arm.New(arm.InvalidOpcode, "unrecognised thumb shift group opcode")
		}
		c.SkipHalfwords(1)
		return arm.Move{Predicate: arm.AL, Destination: rd, Source: source, S: arm.On}, nil

	case word&0b1111_1000_0000_0000 == 0b0010_0000_0000_0000:
		rd := arm.Register((word >> 8) & 0x7)
		instr := arm.Move{Predicate: arm.AL, Destination: rd, Source: arm.Immediate{Value: uint32(word & 0xFF)}, S: arm.On}
		c.SkipHalfwords(1)
		return instr, nil

	case word&0b1111_1111_0000_0000 == 0b0100_0110_0000_0000:
		destination := arm.Register(word&0x7 | (word>>3)&0x8)
		source := arm.Register((word>>3)&0x7 | (word>>4)&0x8)
		instr := arm.Move{Predicate: arm.AL, Destination: destination, Source: arm.FromRegister(source), S: arm.Off}
		c.SkipHalfwords(1)
		return instr, nil

	case word&0b1111_1100_0000_0000 == 0b0100_0000_0000_0000:
		op := (word >> 6) & 0xF
		rm := arm.Register((word >> 3) & 0x7)
		rd := arm.Register(word & 0x7)
		instr, err := decodeThumbAluOp(op, rd, rm)
		if err != nil {
			return nil, err
		}
		c.SkipHalfwords(1)
		return instr, nil

	default:
		return nil, arm.New(arm.InvalidOpcode, "unrecognised thumb opcode")
	}
}

func decodeThumbAluOp(op uint16, rd, rm arm.Register) (arm.Instruction, error) {
	switch op {
	case thumbOpAND:
		return arm.And{Predicate: arm.AL, Destination: rd, Base: rd, Source: arm.FromRegister(rm), S: arm.On}, nil
	case thumbOpEOR:
		return arm.ExclusiveOr{Predicate: arm.AL, Destination: rd, Base: rd, Source: arm.FromRegister(rm), S: arm.On}, nil
	case thumbOpLSL:
		return arm.Move{Predicate: arm.AL, Destination: rd, Source: arm.LogicalShiftLeftRegister{Source: rd, Shift: rm}, S: arm.On}, nil
	case thumbOpLSR:
		return arm.Move{Predicate: arm.AL, Destination: rd, Source: arm.LogicalShiftRightRegister{Source: rd, Shift: rm}, S: arm.On}, nil
	case thumbOpASR:
		return arm.Move{Predicate: arm.AL, Destination: rd, Source: arm.ArithmeticShiftRightRegister{Source: rd, Shift: rm}, S: arm.On}, nil
	case thumbOpADC:
		return arm.AddCarry{Predicate: arm.AL, Destination: rd, Base: rd, Source: arm.FromRegister(rm), S: arm.On}, nil
	case thumbOpSBC:
		return arm.SubtractCarry{Predicate: arm.AL, Destination: rd, Base: rd, Source: arm.FromRegister(rm), S: arm.On}, nil
	case thumbOpROR:
		return arm.Move{Predicate: arm.AL, Destination: rd, Source: arm.RotateRightRegister{Source: rd, Shift: rm}, S: arm.On}, nil
	case thumbOpTST:
		return arm.Test{Predicate: arm.AL, Lhs: rd, Rhs: arm.FromRegister(rm)}, nil
	case thumbOpNEG:
		return arm.ReverseSubtract{Predicate: arm.AL, Destination: rd, Base: rm, Source: arm.Immediate{Value: 0}, S: arm.On}, nil
	case thumbOpCMP:
		return arm.Compare{Predicate: arm.AL, Lhs: rd, Rhs: arm.FromRegister(rm)}, nil
	case thumbOpCMN:
		return arm.CompareNegated{Predicate: arm.AL, Lhs: rd, Rhs: arm.FromRegister(rm)}, nil
	case thumbOpORR:
		return arm.InclusiveOr{Predicate: arm.AL, Destination: rd, Base: rd, Source: arm.FromRegister(rm), S: arm.On}, nil
	case thumbOpMUL:
		return arm.Multiply{Predicate: arm.AL, Destination: rd, Base: rd, Source: rm, S: arm.On}, nil
	case thumbOpBIC:
		return arm.BitClear{Predicate: arm.AL, Destination: rd, Base: rd, Source: arm.FromRegister(rm), S: arm.On}, nil
	case thumbOpMVN:
		return arm.MoveNot{Predicate: arm.AL, Destination: rd, Source: arm.FromRegister(rm), S: arm.On}, nil
	default:
		return nil, arm.New(arm.InvalidOpcode, "unrecognised thumb ALU opcode")
	}
}

// normalizeShift32 maps the Thumb 5-bit immediate-shift encoding, where a
// stored amount of 0 denotes a shift of 32 for LSR/ASR, back to the
// explicit 1..32 range this package's Shifter model uses.
func normalizeShift32(amount uint32) uint32 {
	if amount == 0 {
		return 32
	}
	return amount
}

// signExtend sign-extends the low bits-wide field of v to an int32.
func signExtend(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}
