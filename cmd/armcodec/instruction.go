package main

import (
	"strings"

	"github.com/lookbusy1344/armcodec/arm"
)

// operandFlags is the flat set of flag-bound operands every mnemonic
// draws from; buildInstruction below picks out only the ones it needs.
type operandFlags struct {
	mnemonic string
	pred     string
	rd, rn, rm, rs string
	shifter  string
	address  string
	imm      string
	flagS    bool
	flagB    bool
	flagT    bool
}

func buildInstruction(f operandFlags) (arm.Instruction, error) {
	pred, err := arm.ParsePredicate(f.pred)
	if err != nil {
		return nil, err
	}
	s := boolFlag(f.flagS)
	b := boolFlag(f.flagB)
	t := boolFlag(f.flagT)

	reg := func(spec string) (arm.Register, error) { return arm.ParseRegister(spec) }

	switch strings.ToLower(f.mnemonic) {
	case "add", "adc", "and", "bic", "eor", "orr", "rsb", "rsc", "sub", "sbc":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		rn, err := reg(f.rn)
		if err != nil {
			return nil, err
		}
		shifter, err := parseShifter(f.shifter)
		if err != nil {
			return nil, err
		}
		return dataProcessingInstruction(f.mnemonic, pred, rd, rn, shifter, s)

	case "mov":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		shifter, err := parseShifter(f.shifter)
		if err != nil {
			return nil, err
		}
		return arm.Move{Predicate: pred, Destination: rd, Source: shifter, S: s}, nil

	case "mvn":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		shifter, err := parseShifter(f.shifter)
		if err != nil {
			return nil, err
		}
		return arm.MoveNot{Predicate: pred, Destination: rd, Source: shifter, S: s}, nil

	case "cmp", "cmn", "tst", "teq":
		rn, err := reg(f.rn)
		if err != nil {
			return nil, err
		}
		shifter, err := parseShifter(f.shifter)
		if err != nil {
			return nil, err
		}
		return compareInstruction(f.mnemonic, pred, rn, shifter)

	case "mul":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		rm, err := reg(f.rm)
		if err != nil {
			return nil, err
		}
		rs, err := reg(f.rs)
		if err != nil {
			return nil, err
		}
		return arm.Multiply{Predicate: pred, Destination: rd, Base: rm, Source: rs, S: s}, nil

	case "mla":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		rm, err := reg(f.rm)
		if err != nil {
			return nil, err
		}
		rs, err := reg(f.rs)
		if err != nil {
			return nil, err
		}
		rn, err := reg(f.rn)
		if err != nil {
			return nil, err
		}
		return arm.MultiplyAccumulate{Predicate: pred, Destination: rd, Base: rm, Source: rs, Accumulate: rn, S: s}, nil

	case "b":
		imm, err := parseImm32Signed(f.imm)
		if err != nil {
			return nil, err
		}
		return arm.Branch{Predicate: pred, Immediate: imm}, nil

	case "bl":
		imm, err := parseImm32Signed(f.imm)
		if err != nil {
			return nil, err
		}
		return arm.BranchLink{Predicate: pred, Immediate: imm}, nil

	case "bx":
		rm, err := reg(f.rm)
		if err != nil {
			return nil, err
		}
		return arm.BranchExchange{Predicate: pred, Source: rm}, nil

	case "blx":
		rm, err := reg(f.rm)
		if err != nil {
			return nil, err
		}
		return arm.BranchLinkExchange{Predicate: pred, Source: rm}, nil

	case "bkpt":
		imm, err := parseImm32(f.imm)
		if err != nil {
			return nil, err
		}
		return arm.Breakpoint{Immediate: imm}, nil

	case "swi", "svc":
		imm, err := parseImm32(f.imm)
		if err != nil {
			return nil, err
		}
		return arm.SoftwareInterrupt{Predicate: pred, Immediate: imm}, nil

	case "clz":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		rm, err := reg(f.rm)
		if err != nil {
			return nil, err
		}
		return arm.CountLeadingZeroes{Predicate: pred, Destination: rd, Source: rm}, nil

	case "rev":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		rm, err := reg(f.rm)
		if err != nil {
			return nil, err
		}
		return arm.Reverse{Predicate: pred, Destination: rd, Source: rm}, nil

	case "qadd":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		rm, err := reg(f.rm)
		if err != nil {
			return nil, err
		}
		rn, err := reg(f.rn)
		if err != nil {
			return nil, err
		}
		return arm.SaturatingAdd{Predicate: pred, Destination: rd, Base: rm, Source: rn}, nil

	case "qsub":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		rm, err := reg(f.rm)
		if err != nil {
			return nil, err
		}
		rn, err := reg(f.rn)
		if err != nil {
			return nil, err
		}
		return arm.SaturatingSubtract{Predicate: pred, Destination: rd, Base: rm, Source: rn}, nil

	case "usat":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		imm, err := parseImm32(f.imm)
		if err != nil {
			return nil, err
		}
		shifter, err := parseShifter(f.shifter)
		if err != nil {
			return nil, err
		}
		return arm.UnsignedSaturate{Predicate: pred, Destination: rd, Immediate: imm, Source: shifter}, nil

	case "ldr":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		addr, err := parseAddress(f.address)
		if err != nil {
			return nil, err
		}
		return arm.Load{Predicate: pred, Register: rd, Address: addr, B: b, T: t}, nil

	case "str":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		addr, err := parseAddress(f.address)
		if err != nil {
			return nil, err
		}
		return arm.Store{Predicate: pred, Register: rd, Address: addr, B: b, T: t}, nil

	case "swp":
		rd, err := reg(f.rd)
		if err != nil {
			return nil, err
		}
		addr, err := parseAddress(f.address)
		if err != nil {
			return nil, err
		}
		return arm.Swap{Predicate: pred, Register: rd, Address: addr, B: b}, nil

	default:
		return nil, &arm.UnknownMnemonicError{Name: f.mnemonic}
	}
}

func dataProcessingInstruction(mnemonic string, pred arm.Predicate, rd, rn arm.Register, shifter arm.Shifter, s arm.Flag) (arm.Instruction, error) {
	switch strings.ToLower(mnemonic) {
	case "add":
		return arm.Add{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "adc":
		return arm.AddCarry{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "and":
		return arm.And{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "bic":
		return arm.BitClear{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "eor":
		return arm.ExclusiveOr{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "orr":
		return arm.InclusiveOr{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "rsb":
		return arm.ReverseSubtract{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "rsc":
		return arm.ReverseSubtractCarry{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "sub":
		return arm.Subtract{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	case "sbc":
		return arm.SubtractCarry{Predicate: pred, Destination: rd, Base: rn, Source: shifter, S: s}, nil
	default:
		return nil, &arm.UnknownMnemonicError{Name: mnemonic}
	}
}

func compareInstruction(mnemonic string, pred arm.Predicate, rn arm.Register, shifter arm.Shifter) (arm.Instruction, error) {
	switch strings.ToLower(mnemonic) {
	case "cmp":
		return arm.Compare{Predicate: pred, Lhs: rn, Rhs: shifter}, nil
	case "cmn":
		return arm.CompareNegated{Predicate: pred, Lhs: rn, Rhs: shifter}, nil
	case "tst":
		return arm.Test{Predicate: pred, Lhs: rn, Rhs: shifter}, nil
	case "teq":
		return arm.TestEquivalence{Predicate: pred, Lhs: rn, Rhs: shifter}, nil
	default:
		return nil, &arm.UnknownMnemonicError{Name: mnemonic}
	}
}
