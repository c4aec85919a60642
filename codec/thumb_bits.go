package codec

import "github.com/lookbusy1344/armcodec/arm"

// Thumb ALU-group opcode field (bits 11-6 style 4-bit code at bits 9-6,
// with the fixed 0100 00 prefix at bits 15-10) for the two-register
// "Rd, Rd, Rm" forms.
const (
	thumbOpAND = 0x0
	thumbOpEOR = 0x1
	thumbOpLSL = 0x2
	thumbOpLSR = 0x3
	thumbOpASR = 0x4
	thumbOpADC = 0x5
	thumbOpSBC = 0x6
	thumbOpROR = 0x7
	thumbOpTST = 0x8
	thumbOpNEG = 0x9
	thumbOpCMP = 0xA
	thumbOpCMN = 0xB
	thumbOpORR = 0xC
	thumbOpMUL = 0xD
	thumbOpBIC = 0xE
	thumbOpMVN = 0xF
)

// checkThumbTwoOperand enforces the general constraints shared by most
// Thumb data-processing forms: unconditional, two-operand (base ==
// destination), both operands low registers, flags always set.
func checkThumbTwoOperand(predicate arm.Predicate, base, destination arm.Register, s arm.Flag) error {
	if predicate != arm.AL {
		return arm.New(arm.IllegalPredicate, "thumb data-processing requires AL")
	}
	if base != destination {
		return arm.New(arm.IllegalRegister, "thumb two-operand form requires base == destination")
	}
	if destination.IsHigh() {
		return arm.New(arm.IllegalRegister, "thumb data-processing requires low registers")
	}
	if s.IsOff() {
		return arm.New(arm.IllegalFlag, "thumb data-processing requires the S flag on")
	}
	return nil
}

func checkThumbLowRegister(r arm.Register) error {
	if r.IsHigh() {
		return arm.New(arm.IllegalRegister, "thumb data-processing requires low registers")
	}
	return nil
}
