package arm

// Instruction is a tagged sum over every supported mnemonic. It is a
// closed, sealed interface, like Shifter and Address: every mnemonic is
// its own comparable struct carrying exactly and only the operand fields
// that mnemonic needs, so package codec's encoders can type-switch
// exhaustively instead of picking fields out of one flat record.
type Instruction interface {
	isInstruction()
	String() string
}

// Add is ADD Rd, Rn, <shifter>.
type Add struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (Add) isInstruction() {}

// AddCarry is ADC Rd, Rn, <shifter>.
type AddCarry struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (AddCarry) isInstruction() {}

// And is AND Rd, Rn, <shifter>.
type And struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (And) isInstruction() {}

// BitClear is BIC Rd, Rn, <shifter>.
type BitClear struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (BitClear) isInstruction() {}

// Branch is B <target>. Immediate is the branch target address (not a
// pre-computed offset) — the Thumb encoder derives the PC-relative
// encoding; the Arm encoder does not place the immediate.
type Branch struct {
	Predicate Predicate
	Immediate int32
}

func (Branch) isInstruction() {}

// BranchExchange is BX Rm.
type BranchExchange struct {
	Predicate Predicate
	Source    Register
}

func (BranchExchange) isInstruction() {}

// BranchLink is BL <target>. Immediate is the branch target address.
type BranchLink struct {
	Predicate Predicate
	Immediate int32
}

func (BranchLink) isInstruction() {}

// BranchLinkExchange is BLX Rm (Thumb only in this codec).
type BranchLinkExchange struct {
	Predicate Predicate
	Source    Register
}

func (BranchLinkExchange) isInstruction() {}

// Breakpoint is BKPT #imm. Predicate is always fixed at encode time; the
// type carries no predicate field because the encoding has none.
type Breakpoint struct {
	Immediate uint32
}

func (Breakpoint) isInstruction() {}

// CountLeadingZeroes is CLZ Rd, Rm (Arm only).
type CountLeadingZeroes struct {
	Predicate   Predicate
	Destination Register
	Source      Register
}

func (CountLeadingZeroes) isInstruction() {}

// Compare is CMP Rn, <shifter>. Always sets flags; S is implicit.
type Compare struct {
	Predicate Predicate
	Lhs       Register
	Rhs       Shifter
}

func (Compare) isInstruction() {}

// CompareNegated is CMN Rn, <shifter>.
type CompareNegated struct {
	Predicate Predicate
	Lhs       Register
	Rhs       Shifter
}

func (CompareNegated) isInstruction() {}

// ExclusiveOr is EOR Rd, Rn, <shifter>.
type ExclusiveOr struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (ExclusiveOr) isInstruction() {}

// InclusiveOr is ORR Rd, Rn, <shifter>.
type InclusiveOr struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (InclusiveOr) isInstruction() {}

// Load is LDR Rd, <address>.
type Load struct {
	Predicate Predicate
	Register  Register
	Address   Address
	B         Flag
	T         Flag
}

func (Load) isInstruction() {}

// Move is MOV Rd, <shifter>. When Source is the canonical bare-register
// shifter and S is off, this renders as CPY; when Source is an
// immediate/register shift function, it renders (and, on Thumb,
// re-encodes) as the corresponding LSL/LSR/ASR/ROR mnemonic.
type Move struct {
	Predicate   Predicate
	Destination Register
	Source      Shifter
	S           Flag
}

func (Move) isInstruction() {}

// MoveNot is MVN Rd, <shifter>.
type MoveNot struct {
	Predicate   Predicate
	Destination Register
	Source      Shifter
	S           Flag
}

func (MoveNot) isInstruction() {}

// Multiply is MUL Rd, Rm, Rs.
type Multiply struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Register
	S           Flag
}

func (Multiply) isInstruction() {}

// MultiplyAccumulate is MLA Rd, Rm, Rs, Rn.
type MultiplyAccumulate struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Register
	Accumulate  Register
	S           Flag
}

func (MultiplyAccumulate) isInstruction() {}

// Reverse is REV Rd, Rm (Arm only): byte-reverses a word.
type Reverse struct {
	Predicate   Predicate
	Destination Register
	Source      Register
}

func (Reverse) isInstruction() {}

// ReverseSubtract is RSB Rd, Rn, <shifter>. When Source is Immediate(0)
// this renders as the NEG alias.
type ReverseSubtract struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (ReverseSubtract) isInstruction() {}

// ReverseSubtractCarry is RSC Rd, Rn, <shifter>.
type ReverseSubtractCarry struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (ReverseSubtractCarry) isInstruction() {}

// SaturatingAdd is QADD Rd, Rm, Rn (Arm only).
type SaturatingAdd struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Register
}

func (SaturatingAdd) isInstruction() {}

// SaturatingSubtract is QSUB Rd, Rm, Rn (Arm only).
type SaturatingSubtract struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Register
}

func (SaturatingSubtract) isInstruction() {}

// SoftwareInterrupt is SWI #imm (SVC on later architecture revisions).
type SoftwareInterrupt struct {
	Predicate Predicate
	Immediate uint32
}

func (SoftwareInterrupt) isInstruction() {}

// Store is STR Rd, <address>.
type Store struct {
	Predicate Predicate
	Register  Register
	Address   Address
	B         Flag
	T         Flag
}

func (Store) isInstruction() {}

// Subtract is SUB Rd, Rn, <shifter>.
type Subtract struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (Subtract) isInstruction() {}

// SubtractCarry is SBC Rd, Rn, <shifter>.
type SubtractCarry struct {
	Predicate   Predicate
	Destination Register
	Base        Register
	Source      Shifter
	S           Flag
}

func (SubtractCarry) isInstruction() {}

// Swap is SWP Rd, Rm, [Rn] (Arm only): atomic load/store exchange.
type Swap struct {
	Predicate Predicate
	Register  Register
	Address   Address
	B         Flag
}

func (Swap) isInstruction() {}

// UnsignedSaturate is USAT Rd, #imm, <shifter> (Arm only).
type UnsignedSaturate struct {
	Predicate   Predicate
	Destination Register
	Immediate   uint32
	Source      Shifter
}

func (UnsignedSaturate) isInstruction() {}

// Test is TST Rn, <shifter>.
type Test struct {
	Predicate Predicate
	Lhs       Register
	Rhs       Shifter
}

func (Test) isInstruction() {}

// TestEquivalence is TEQ Rn, <shifter>.
type TestEquivalence struct {
	Predicate Predicate
	Lhs       Register
	Rhs       Shifter
}

func (TestEquivalence) isInstruction() {}
