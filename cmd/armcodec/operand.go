package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lookbusy1344/armcodec/arm"
)

func boolFlag(on bool) arm.Flag {
	if on {
		return arm.On
	}
	return arm.Off
}

func parseImm32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid immediate %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseImm32Signed(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid immediate %q: %w", s, err)
	}
	return int32(v), nil
}

// parseShifter parses a shifter spec in one of these shapes:
//
//	rN                     bare register
//	#N                     immediate
//	rN,lsl,#N / lsr / asr / ror   immediate shift
//	rN,lsl,rM / lsr / asr / ror   register shift
//	rN,rrx                 rotate-right-extend
func parseShifter(spec string) (arm.Shifter, error) {
	if strings.HasPrefix(spec, "#") {
		v, err := parseImm32(spec)
		if err != nil {
			return nil, err
		}
		return arm.Immediate{Value: v}, nil
	}

	parts := strings.Split(spec, ",")
	src, err := arm.ParseRegister(parts[0])
	if err != nil {
		return nil, err
	}
	if len(parts) == 1 {
		return arm.FromRegister(src), nil
	}

	op := strings.ToLower(parts[1])
	if op == "rrx" {
		return arm.RotateRightExtend{Source: src}, nil
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid shifter spec %q", spec)
	}

	if reg, regErr := arm.ParseRegister(parts[2]); regErr == nil {
		switch op {
		case "lsl":
			return arm.LogicalShiftLeftRegister{Source: src, Shift: reg}, nil
		case "lsr":
			return arm.LogicalShiftRightRegister{Source: src, Shift: reg}, nil
		case "asr":
			return arm.ArithmeticShiftRightRegister{Source: src, Shift: reg}, nil
		case "ror":
			return arm.RotateRightRegister{Source: src, Shift: reg}, nil
		}
	}

	amount, err := parseImm32(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid shifter spec %q: %w", spec, err)
	}
	switch op {
	case "lsl":
		return arm.LogicalShiftLeftImmediate{Source: src, Shift: amount}, nil
	case "lsr":
		return arm.LogicalShiftRightImmediate{Source: src, Shift: amount}, nil
	case "asr":
		return arm.ArithmeticShiftRightImmediate{Source: src, Shift: amount}, nil
	case "ror":
		return arm.RotateRightImmediate{Source: src, Shift: amount}, nil
	default:
		return nil, fmt.Errorf("unrecognised shift operator %q", op)
	}
}

// parseAddress parses an address spec in one of these shapes:
//
//	[rN]
//	[rN,#N]
//	[rN,rM]
//	[rN,rM,lsl,#N] (or lsr/asr/ror)
func parseAddress(spec string) (arm.Address, error) {
	spec = strings.TrimSpace(spec)
	if !strings.HasPrefix(spec, "[") || !strings.HasSuffix(spec, "]") {
		return nil, fmt.Errorf("address spec must be bracketed: %q", spec)
	}
	inner := spec[1 : len(spec)-1]
	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	base, err := arm.ParseRegister(parts[0])
	if err != nil {
		return nil, err
	}
	if len(parts) == 1 {
		return arm.ImmediateOffset{Base: base, Source: 0}, nil
	}
	if strings.HasPrefix(parts[1], "#") {
		v, err := parseImm32Signed(parts[1])
		if err != nil {
			return nil, err
		}
		return arm.ImmediateOffset{Base: base, Source: v}, nil
	}

	offsetReg, err := arm.ParseRegister(parts[1])
	if err != nil {
		return nil, err
	}
	if len(parts) == 2 {
		return arm.RegisterOffset{Base: base, Source: offsetReg}, nil
	}
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid address spec %q", spec)
	}
	amount, err := parseImm32(parts[3])
	if err != nil {
		return nil, err
	}
	var shift arm.Shifter
	switch strings.ToLower(parts[2]) {
	case "lsl":
		shift = arm.LogicalShiftLeftImmediate{Source: offsetReg, Shift: amount}
	case "lsr":
		shift = arm.LogicalShiftRightImmediate{Source: offsetReg, Shift: amount}
	case "asr":
		shift = arm.ArithmeticShiftRightImmediate{Source: offsetReg, Shift: amount}
	case "ror":
		shift = arm.RotateRightImmediate{Source: offsetReg, Shift: amount}
	default:
		return nil, fmt.Errorf("unrecognised shift operator in address spec %q", spec)
	}
	return arm.ScaledRegisterOffset{Base: base, Source: offsetReg, Shift: shift}, nil
}
