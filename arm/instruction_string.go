package arm

import "strconv"

// String renders Add in canonical assembly form, e.g. "ADDEQS r0, r1, r2".
func (i Add) String() string {
	return "ADD" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i AddCarry) String() string {
	return "ADC" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i And) String() string {
	return "AND" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i BitClear) String() string {
	return "BIC" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i Branch) String() string {
	return "B" + i.Predicate.String() + " #" + strconv.FormatInt(int64(i.Immediate), 10)
}

func (i BranchExchange) String() string {
	return "BX" + i.Predicate.String() + " " + i.Source.String()
}

func (i BranchLink) String() string {
	return "BL" + i.Predicate.String() + " #" + strconv.FormatInt(int64(i.Immediate), 10)
}

func (i BranchLinkExchange) String() string {
	return "BLX" + i.Predicate.String() + " " + i.Source.String()
}

func (i Breakpoint) String() string {
	return "BKPT #" + strconv.FormatUint(uint64(i.Immediate), 10)
}

func (i CountLeadingZeroes) String() string {
	return "CLZ" + i.Predicate.String() + " " + i.Destination.String() + ", " + i.Source.String()
}

func (i Compare) String() string {
	return "CMP" + i.Predicate.String() + " " + i.Lhs.String() + ", " + i.Rhs.String()
}

func (i CompareNegated) String() string {
	return "CMN" + i.Predicate.String() + " " + i.Lhs.String() + ", " + i.Rhs.String()
}

func (i ExclusiveOr) String() string {
	return "EOR" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i InclusiveOr) String() string {
	return "ORR" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i Load) String() string {
	return "LDR" + i.Predicate.String() + flagSuffix(i.B, "B") + flagSuffix(i.T, "T") + " " +
		i.Register.String() + ", " + i.Address.String()
}

// String renders Move, collapsing to the CPY/LSL/LSR/ASR/ROR aliases the
// way the teacher's display logic does: the mnemonic is chosen from the
// shape of Source rather than always printing "MOV".
func (i Move) String() string {
	switch src := i.Source.(type) {
	case LogicalShiftLeftImmediate:
		if src.Shift == 0 {
			if i.S.IsOff() {
				return "CPY" + i.Predicate.String() + " " + i.Destination.String() + ", " + src.Source.String()
			}
			return "MOV" + i.Predicate.String() + "S " + i.Destination.String() + ", " + src.Source.String()
		}
		return "LSL" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String() + ", #" + strconv.FormatUint(uint64(src.Shift), 10)
	case LogicalShiftLeftRegister:
		return "LSL" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String() + ", " + src.Shift.String()
	case LogicalShiftRightImmediate:
		return "LSR" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String() + ", #" + strconv.FormatUint(uint64(src.Shift), 10)
	case LogicalShiftRightRegister:
		return "LSR" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String() + ", " + src.Shift.String()
	case ArithmeticShiftRightImmediate:
		return "ASR" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String() + ", #" + strconv.FormatUint(uint64(src.Shift), 10)
	case ArithmeticShiftRightRegister:
		return "ASR" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String() + ", " + src.Shift.String()
	case RotateRightImmediate:
		return "ROR" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String() + ", #" + strconv.FormatUint(uint64(src.Shift), 10)
	case RotateRightRegister:
		return "ROR" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String() + ", " + src.Shift.String()
	case RotateRightExtend:
		return "RRX" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
			i.Destination.String() + ", " + src.Source.String()
	default:
		return "MOV" + i.Predicate.String() + flagSuffix(i.S, "S") + " " + i.Destination.String() + ", " + i.Source.String()
	}
}

func (i MoveNot) String() string {
	return "MVN" + i.Predicate.String() + flagSuffix(i.S, "S") + " " + i.Destination.String() + ", " + i.Source.String()
}

func (i Multiply) String() string {
	return "MUL" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i MultiplyAccumulate) String() string {
	return "MLA" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String() + ", " + i.Accumulate.String()
}

func (i Reverse) String() string {
	return "REV" + i.Predicate.String() + " " + i.Destination.String() + ", " + i.Source.String()
}

// String renders ReverseSubtract, collapsing to NEG when Source is the
// literal zero immediate.
func (i ReverseSubtract) String() string {
	if imm, ok := i.Source.(Immediate); ok && imm.Value == 0 {
		return "NEG" + i.Predicate.String() + flagSuffix(i.S, "S") + " " + i.Destination.String() + ", " + i.Base.String()
	}
	return "RSB" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i ReverseSubtractCarry) String() string {
	return "RSC" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i SaturatingAdd) String() string {
	return "QADD" + i.Predicate.String() + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i SaturatingSubtract) String() string {
	return "QSUB" + i.Predicate.String() + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i SoftwareInterrupt) String() string {
	return "SWI" + i.Predicate.String() + " #" + strconv.FormatUint(uint64(i.Immediate), 10)
}

func (i Store) String() string {
	return "STR" + i.Predicate.String() + flagSuffix(i.B, "B") + flagSuffix(i.T, "T") + " " +
		i.Register.String() + ", " + i.Address.String()
}

func (i Subtract) String() string {
	return "SUB" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i SubtractCarry) String() string {
	return "SBC" + i.Predicate.String() + flagSuffix(i.S, "S") + " " +
		i.Destination.String() + ", " + i.Base.String() + ", " + i.Source.String()
}

func (i Swap) String() string {
	return "SWP" + i.Predicate.String() + flagSuffix(i.B, "B") + " " + i.Register.String() + ", " + i.Address.String()
}

func (i UnsignedSaturate) String() string {
	return "USAT" + i.Predicate.String() + " " +
		i.Destination.String() + ", #" + strconv.FormatUint(uint64(i.Immediate), 10) + ", " + i.Source.String()
}

func (i Test) String() string {
	return "TST" + i.Predicate.String() + " " + i.Lhs.String() + ", " + i.Rhs.String()
}

func (i TestEquivalence) String() string {
	return "TEQ" + i.Predicate.String() + " " + i.Lhs.String() + ", " + i.Rhs.String()
}
