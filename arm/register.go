// Package arm defines the instruction model for the 32-bit Arm family:
// registers, predicates, flags, shifter and address operands, and the
// Instruction sum type itself. It has no notion of a register file,
// memory, or program execution — see package codec for turning these
// values into opcode bits and back.
package arm

import (
	"fmt"
	"strconv"
	"strings"
)

// Register is a 4-bit Arm general-purpose register identifier.
type Register uint8

// Register aliases, following the canonical Arm mapping. R13-R15 carry
// the architectural names SP, LR and PC throughout this package.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	SP
	LR
	PC
)

// RegisterCount is the number of addressable registers (R0-R15).
const RegisterCount = 16

// RegisterFromByte constructs a Register from a raw nibble value.
// It fails for any value outside 0-15.
func RegisterFromByte(value uint8) (Register, error) {
	if value >= RegisterCount {
		return 0, newErr(IllegalRegister, fmt.Sprintf("register value %d out of range 0-15", value))
	}
	return Register(value), nil
}

// IsLow reports whether the register fits in 3 bits (r0-r7).
func (r Register) IsLow() bool { return r <= R7 }

// IsHigh reports whether the register requires the full 4 bits (r8-pc).
func (r Register) IsHigh() bool { return r > R7 }

// String renders the register using its primary lowercase Arm name.
func (r Register) String() string {
	switch r {
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	default:
		return "r" + strconv.Itoa(int(r))
	}
}

// registerAliases maps every accepted textual spelling (primary names and
// historical aliases) to its register, lowercase.
var registerAliases = map[string]Register{
	"r0": R0, "a1": R0,
	"r1": R1, "a2": R1,
	"r2": R2, "a3": R2,
	"r3": R3, "a4": R3,
	"r4": R4, "v1": R4,
	"r5": R5, "v2": R5,
	"r6": R6, "v3": R6,
	"r7": R7, "v4": R7,
	"r8": R8, "v5": R8,
	"r9": R9, "v6": R9, "sb": R9,
	"r10": R10, "v7": R10, "sl": R10,
	"r11": R11, "v8": R11,
	"r12": R12, "ip": R12,
	"r13": SP, "sp": SP,
	"r14": LR, "lr": LR,
	"r15": PC, "pc": PC,
}

// ParseRegister parses a register name, case-insensitively. It accepts the
// primary r0...r15 spellings, the architectural sp/lr/pc names, and the
// historical aliases a1-a4, v1-v8, sb, sl, ip.
func ParseRegister(s string) (Register, error) {
	reg, ok := registerAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, &UnknownRegisterError{Name: s}
	}
	return reg, nil
}
