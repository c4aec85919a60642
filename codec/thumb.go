package codec

import (
	"github.com/lookbusy1344/armcodec/arm"
	"github.com/lookbusy1344/armcodec/opcode"
)

// EncodeThumb encodes instr as one 16-bit Thumb opcode, or two for the
// BranchLink pair (first == nil is never returned; second is non-nil only
// for BranchLink). On success the cursor advances by a single halfword
// regardless of whether a second opcode was emitted — this reproduces the
// upstream Thumb encoder's cursor bookkeeping (see the doc comment on the
// BranchLink case in encodeThumbHalfwords) rather than the halfword count
// the emitted opcodes would otherwise suggest. On failure the cursor is
// left unchanged.
func (c *InstructionCodec) EncodeThumb(instr arm.Instruction) (opcode.ThumbOpcode, *opcode.ThumbOpcode, error) {
	first, second, err := encodeThumbHalfwords(c.address, instr)
	if err != nil {
		return 0, nil, wrapErr(c.address, "failed to encode thumb instruction", err)
	}
	c.SkipHalfwords(1)
	if second != nil {
		s := opcode.NewThumb(*second)
		return opcode.NewThumb(first), &s, nil
	}
	return opcode.NewThumb(first), nil, nil
}

func encodeThumbHalfwords(cursor uint32, instr arm.Instruction) (uint16, *uint16, error) {
	switch i := instr.(type) {

	case arm.Add:
		return encodeThumbAddSub(i.Predicate, i.Destination, i.Base, i.Source, i.S, false)
	case arm.Subtract:
		return encodeThumbAddSub(i.Predicate, i.Destination, i.Base, i.Source, i.S, true)

	case arm.AddCarry:
		return encodeThumbAlu(i.Predicate, i.Base, i.Destination, i.Source, i.S, thumbOpADC)
	case arm.And:
		return encodeThumbAlu(i.Predicate, i.Base, i.Destination, i.Source, i.S, thumbOpAND)
	case arm.BitClear:
		return encodeThumbAlu(i.Predicate, i.Base, i.Destination, i.Source, i.S, thumbOpBIC)
	case arm.ExclusiveOr:
		return encodeThumbAlu(i.Predicate, i.Base, i.Destination, i.Source, i.S, thumbOpEOR)
	case arm.InclusiveOr:
		return encodeThumbAlu(i.Predicate, i.Base, i.Destination, i.Source, i.S, thumbOpORR)
	case arm.SubtractCarry:
		return encodeThumbAlu(i.Predicate, i.Base, i.Destination, i.Source, i.S, thumbOpSBC)

	case arm.Multiply:
		return encodeThumbAlu(i.Predicate, i.Base, i.Destination, arm.FromRegister(i.Source), i.S, thumbOpMUL)

	case arm.MoveNot:
		return encodeThumbAlu(i.Predicate, i.Destination, i.Destination, i.Source, i.S, thumbOpMVN)

	case arm.Compare:
		return encodeThumbCompareLike(i.Predicate, i.Lhs, i.Rhs, thumbOpCMP)
	case arm.CompareNegated:
		return encodeThumbCompareLike(i.Predicate, i.Lhs, i.Rhs, thumbOpCMN)
	case arm.Test:
		return encodeThumbCompareLike(i.Predicate, i.Lhs, i.Rhs, thumbOpTST)

	case arm.ReverseSubtract:
		imm, ok := i.Source.(arm.Immediate)
		if !ok || imm.Value != 0 {
			return 0, nil, arm.New(arm.IllegalShifter, "thumb RSB only supports the NEG (#0) form")
		}
		return encodeThumbNeg(i.Predicate, i.Destination, i.Base, i.S)

	case arm.Move:
		return encodeThumbMove(i.Predicate, i.Destination, i.Source, i.S)

	case arm.BranchExchange:
		if err := checkThumbUnconditional(i.Predicate); err != nil {
			return 0, nil, err
		}
		word := uint16(0b0100_0111_0000_0000)
		word |= uint16(i.Source) << 3
		return word, nil, nil

	case arm.BranchLinkExchange:
		if err := checkThumbUnconditional(i.Predicate); err != nil {
			return 0, nil, err
		}
		word := uint16(0b0100_0111_1000_0000)
		word |= uint16(i.Source) << 3
		return word, nil, nil

	case arm.Breakpoint:
		if i.Immediate > 0xFF {
			return 0, nil, arm.New(arm.IllegalImmediate, "thumb BKPT immediate must fit in 8 bits")
		}
		return uint16(0b1011_1110_0000_0000) | uint16(i.Immediate), nil, nil

	case arm.SoftwareInterrupt:
		if err := checkThumbUnconditional(i.Predicate); err != nil {
			return 0, nil, err
		}
		if i.Immediate > 0xFF {
			return 0, nil, arm.New(arm.IllegalImmediate, "thumb SWI immediate must fit in 8 bits")
		}
		return uint16(0b1101_1111_0000_0000) | uint16(i.Immediate), nil, nil

	case arm.Branch:
		return encodeThumbBranch(cursor, i.Predicate, i.Immediate)

	case arm.BranchLink:
		// The cursor advances by one halfword for this instruction despite
		// emitting a pair, matching upstream's encode_thumb, whose
		// self.address += ThumbOpcode::SIZE runs once regardless of how
		// many opcodes the match arm produced; the following Branch in
		// scenario 6 is pinned against that bookkeeping.
		return encodeThumbBranchLink(cursor, i.Predicate, i.Immediate)

	default:
		return 0, nil, arm.New(arm.IllegalInstruction, "not supported on thumb")
	}
}

// shifterAsLowRegister collapses a shifter to a bare low register, as
// required by the Thumb ALU group's Rm operand.
func shifterAsLowRegister(s arm.Shifter) (arm.Register, error) {
	r, err := arm.AsRegister(s)
	if err != nil {
		return 0, arm.New(arm.IllegalShifter, "thumb requires a bare register operand here")
	}
	if r.IsHigh() {
		return 0, arm.New(arm.IllegalRegister, "thumb data-processing requires low registers")
	}
	return r, nil
}

func checkThumbUnconditional(predicate arm.Predicate) error {
	if predicate != arm.AL {
		return arm.New(arm.IllegalPredicate, "thumb branch-exchange forms are unconditional")
	}
	return nil
}

// encodeThumbAlu lays the 0100 00 oooo mmm ddd ALU-group form shared by
// ADC, AND, BIC, EOR, ORR, MUL, MVN and SBC.
func encodeThumbAlu(predicate arm.Predicate, base, destination arm.Register, source arm.Shifter, s arm.Flag, op uint16) (uint16, *uint16, error) {
	if err := checkThumbTwoOperand(predicate, base, destination, s); err != nil {
		return 0, nil, err
	}
	rm, err := shifterAsLowRegister(source)
	if err != nil {
		return 0, nil, err
	}
	word := uint16(0b0100_0000_0000_0000)
	word |= op << 6
	word |= uint16(rm) << 3
	word |= uint16(destination)
	return word, nil, nil
}

// encodeThumbNeg lays NEG Rd, Rm: unlike the rest of the ALU group it
// does not require Rm == Rd.
func encodeThumbNeg(predicate arm.Predicate, destination, source arm.Register, s arm.Flag) (uint16, *uint16, error) {
	if predicate != arm.AL {
		return 0, nil, arm.New(arm.IllegalPredicate, "thumb data-processing requires AL")
	}
	if err := checkThumbLowRegister(destination); err != nil {
		return 0, nil, err
	}
	if err := checkThumbLowRegister(source); err != nil {
		return 0, nil, err
	}
	if s.IsOff() {
		return 0, nil, arm.New(arm.IllegalFlag, "thumb NEG requires the S flag on")
	}
	word := uint16(0b0100_0000_0000_0000)
	word |= thumbOpNEG << 6
	word |= uint16(source) << 3
	word |= uint16(destination)
	return word, nil, nil
}

// encodeThumbCompareLike lays the same ALU-group shape for CMP/CMN/TST,
// which carry no destination (Lhs doubles as Rd in the bit layout).
func encodeThumbCompareLike(predicate arm.Predicate, lhs arm.Register, rhs arm.Shifter, op uint16) (uint16, *uint16, error) {
	if predicate != arm.AL {
		return 0, nil, arm.New(arm.IllegalPredicate, "thumb data-processing requires AL")
	}
	if err := checkThumbLowRegister(lhs); err != nil {
		return 0, nil, err
	}
	rm, err := shifterAsLowRegister(rhs)
	if err != nil {
		return 0, nil, err
	}
	word := uint16(0b0100_0000_0000_0000)
	word |= op << 6
	word |= uint16(rm) << 3
	word |= uint16(lhs)
	return word, nil, nil
}

// encodeThumbAddSub lays the 3-register/3-bit-immediate "add/subtract"
// form: 000 11 I op mmm nnn ddd.
func encodeThumbAddSub(predicate arm.Predicate, destination, base arm.Register, source arm.Shifter, s arm.Flag, subtract bool) (uint16, *uint16, error) {
	if predicate != arm.AL {
		return 0, nil, arm.New(arm.IllegalPredicate, "thumb data-processing requires AL")
	}
	if s.IsOff() {
		return 0, nil, arm.New(arm.IllegalFlag, "thumb add/subtract requires the S flag on")
	}
	if err := checkThumbLowRegister(destination); err != nil {
		return 0, nil, err
	}
	if err := checkThumbLowRegister(base); err != nil {
		return 0, nil, err
	}
	word := uint16(0b0001_1000_0000_0000)
	if subtract {
		word |= 1 << 9
	}
	if imm, ok := source.(arm.Immediate); ok {
		if imm.Value > 7 {
			return 0, nil, arm.New(arm.IllegalImmediate, "thumb add/subtract immediate must fit in 3 bits")
		}
		word |= 1 << 10
		word |= uint16(imm.Value) << 6
	} else {
		rm, err := shifterAsLowRegister(source)
		if err != nil {
			return 0, nil, err
		}
		word |= uint16(rm) << 6
	}
	word |= uint16(base) << 3
	word |= uint16(destination)
	return word, nil, nil
}

// encodeThumbMove covers MOV Rd,#imm8; MOV Rd,Rm (high/low, S off); and
// the LSL/LSR/ASR/ROR-via-Move re-dispatch forms.
func encodeThumbMove(predicate arm.Predicate, destination arm.Register, source arm.Shifter, s arm.Flag) (uint16, *uint16, error) {
	if predicate != arm.AL {
		return 0, nil, arm.New(arm.IllegalPredicate, "thumb data-processing requires AL")
	}

	switch src := source.(type) {
	case arm.Immediate:
		if err := checkThumbLowRegister(destination); err != nil {
			return 0, nil, err
		}
		if s.IsOff() {
			return 0, nil, arm.New(arm.IllegalFlag, "thumb MOV Rd,#imm8 requires the S flag on")
		}
		if src.Value > 0xFF {
			return 0, nil, arm.New(arm.IllegalImmediate, "thumb MOV immediate must fit in 8 bits")
		}
		word := uint16(0b0010_0000_0000_0000)
		word |= uint16(destination) << 8
		word |= uint16(src.Value)
		return word, nil, nil

	case arm.LogicalShiftLeftImmediate:
		if src.Shift == 0 {
			return encodeThumbMoveRegister(destination, src.Source, s)
		}
		return encodeThumbShiftImmediate(destination, src.Source, s, 0b00, src.Shift)

	case arm.LogicalShiftRightImmediate:
		return encodeThumbShiftImmediate(destination, src.Source, s, 0b01, src.Shift)

	case arm.ArithmeticShiftRightImmediate:
		return encodeThumbShiftImmediate(destination, src.Source, s, 0b10, src.Shift)

	case arm.LogicalShiftLeftRegister:
		return encodeThumbShiftRegister(destination, src.Source, src.Shift, s, thumbOpLSL)
	case arm.LogicalShiftRightRegister:
		return encodeThumbShiftRegister(destination, src.Source, src.Shift, s, thumbOpLSR)
	case arm.ArithmeticShiftRightRegister:
		return encodeThumbShiftRegister(destination, src.Source, src.Shift, s, thumbOpASR)
	case arm.RotateRightRegister:
		return encodeThumbShiftRegister(destination, src.Source, src.Shift, s, thumbOpROR)

	default:
		return 0, nil, arm.New(arm.IllegalShifter, "not supported on thumb")
	}
}

// encodeThumbMoveRegister is MOV Rd, Rm (S off; Rd/Rm may each be a high
// or low register).
func encodeThumbMoveRegister(destination, source arm.Register, s arm.Flag) (uint16, *uint16, error) {
	if s.IsOn() {
		return 0, nil, arm.New(arm.IllegalFlag, "thumb MOV Rd,Rm requires the S flag off")
	}
	word := uint16(0b0100_0110_0000_0000)
	if destination.IsHigh() {
		word |= 1 << 6
	}
	if source.IsHigh() {
		word |= 1 << 7
	}
	word |= uint16(source&0x7) << 3
	word |= uint16(destination & 0x7)
	return word, nil, nil
}

// encodeThumbShiftImmediate lays the 000 oo iiiii mmm ddd immediate-shift
// group shared by LSL, LSR and ASR.
func encodeThumbShiftImmediate(destination, source arm.Register, s arm.Flag, op uint16, shift uint32) (uint16, *uint16, error) {
	if err := checkThumbLowRegister(destination); err != nil {
		return 0, nil, err
	}
	if err := checkThumbLowRegister(source); err != nil {
		return 0, nil, err
	}
	if s.IsOff() {
		return 0, nil, arm.New(arm.IllegalFlag, "thumb shift requires the S flag on")
	}
	if op == 0b00 {
		if shift == 0 || shift > 31 {
			return 0, nil, arm.New(arm.IllegalImmediate, "thumb LSL immediate shift must be 1..31")
		}
	} else {
		if shift == 0 || shift > 32 {
			return 0, nil, arm.New(arm.IllegalImmediate, "thumb shift amount must be 1..32")
		}
	}
	amount := shift % 32
	word := op << 11
	word |= uint16(amount) << 6
	word |= uint16(source) << 3
	word |= uint16(destination)
	return word, nil, nil
}

// encodeThumbShiftRegister lays the ALU-group Rd,Rd,Rs shift-by-register
// form; it requires base == destination like the rest of the group.
func encodeThumbShiftRegister(destination, source, shiftReg arm.Register, s arm.Flag, op uint16) (uint16, *uint16, error) {
	if err := checkThumbTwoOperand(arm.AL, source, destination, s); err != nil {
		return 0, nil, err
	}
	if err := checkThumbLowRegister(shiftReg); err != nil {
		return 0, nil, err
	}
	word := uint16(0b0100_0000_0000_0000)
	word |= op << 6
	word |= uint16(shiftReg) << 3
	word |= uint16(destination)
	return word, nil, nil
}

// encodeThumbBranch lays the short conditional/unconditional B form. The
// PC-relative offset is target - cursor - 4 and must be halfword-aligned
// in both forms.
func encodeThumbBranch(cursor uint32, predicate arm.Predicate, target int32) (uint16, *uint16, error) {
	offset := target - int32(cursor) - 4
	if offset%2 != 0 {
		return 0, nil, arm.New(arm.IllegalImmediate, "thumb branch offset must be halfword-aligned")
	}
	half := offset / 2

	if predicate == arm.AL {
		if half < -1024 || half > 1023 {
			return 0, nil, arm.New(arm.IllegalImmediate, "thumb unconditional branch out of range")
		}
		word := uint16(0b1110_0000_0000_0000)
		word |= uint16(half) & 0x7FF
		return word, nil, nil
	}

	if predicate == arm.Reserved {
		return 0, nil, arm.New(arm.IllegalPredicate, "reserved predicate is not a valid branch condition")
	}
	if half < -128 || half > 127 {
		return 0, nil, arm.New(arm.IllegalImmediate, "thumb conditional branch out of range")
	}
	word := uint16(0b1101_0000_0000_0000)
	word |= uint16(predicate) << 8
	word |= uint16(half) & 0xFF
	return word, nil, nil
}

// encodeThumbBranchLink lays the two-halfword BL form: bits 22-12 of the
// offset in the first opcode, bits 11-1 in the second.
func encodeThumbBranchLink(cursor uint32, predicate arm.Predicate, target int32) (uint16, *uint16, error) {
	if predicate != arm.AL {
		return 0, nil, arm.New(arm.IllegalPredicate, "thumb BL is unconditional")
	}
	offset := target - int32(cursor) - 4
	if offset%2 != 0 {
		return 0, nil, arm.New(arm.IllegalImmediate, "thumb branch-link offset must be halfword-aligned")
	}
	half := offset / 2
	if half < -(1<<21) || half > (1<<21)-1 {
		return 0, nil, arm.New(arm.IllegalImmediate, "thumb branch-link out of range")
	}
	u := uint32(half) & 0x3FFFFF

	first := uint16(0b1111_0000_0000_0000)
	first |= uint16((u >> 11) & 0x7FF)
	second := uint16(0b1111_1000_0000_0000)
	second |= uint16(u & 0x7FF)
	return first, &second, nil
}
