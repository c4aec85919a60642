package arm

import "fmt"

// ErrorKind identifies one of the closed set of ways an operand, opcode,
// or textual name can fail to round-trip through this package and codec.
type ErrorKind int

const (
	// IllegalFlag means an instruction flag has a value the target
	// encoding does not permit.
	IllegalFlag ErrorKind = iota
	// IllegalImmediate means an immediate does not fit the encoding's
	// range, granularity, or rotation constraints.
	IllegalImmediate
	// IllegalInstruction means the instruction variant is valid in the
	// abstract model but has no encoding in the requested target.
	IllegalInstruction
	// IllegalPredicate means the predicate is not permitted in this slot.
	IllegalPredicate
	// IllegalRegister means a register operand is not permitted in this
	// slot (e.g. Thumb requiring a low register).
	IllegalRegister
	// IllegalShifter means a shifter variant is not permitted in this
	// operand slot.
	IllegalShifter
	// InvalidOpcode means a decoder could not match the bit pattern to
	// any known instruction.
	InvalidOpcode
	// UnknownMnemonic means textual parsing found no mnemonic by that name.
	UnknownMnemonic
	// UnknownRegister means textual parsing found no register by that name.
	UnknownRegister
)

func (k ErrorKind) String() string {
	switch k {
	case IllegalFlag:
		return "IllegalFlag"
	case IllegalImmediate:
		return "IllegalImmediate"
	case IllegalInstruction:
		return "IllegalInstruction"
	case IllegalPredicate:
		return "IllegalPredicate"
	case IllegalRegister:
		return "IllegalRegister"
	case IllegalShifter:
		return "IllegalShifter"
	case InvalidOpcode:
		return "InvalidOpcode"
	case UnknownMnemonic:
		return "UnknownMnemonic"
	case UnknownRegister:
		return "UnknownRegister"
	default:
		return "Unknown"
	}
}

// Error is the single closed error type this package and package codec
// return. Every Kind carries a short, human-readable Reason; Name is set
// only for the two parsing-failure kinds that carry the offending literal.
type Error struct {
	Kind   ErrorKind
	Reason string
	Name   string
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %q", e.Kind, e.Name)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return e.Kind.String()
}

// Is supports errors.Is(err, &arm.Error{Kind: arm.IllegalRegister}) and
// friends: any *Error target with the same Kind matches, whatever its
// Reason or Name.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind ErrorKind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// New constructs an *Error of the given kind with a reason, for use by
// package codec when it rejects an operand combination.
func New(kind ErrorKind, reason string) *Error {
	return newErr(kind, reason)
}

// UnknownRegisterError is returned by ParseRegister for an unrecognised name.
type UnknownRegisterError struct {
	Name string
}

func (e *UnknownRegisterError) Error() string {
	return fmt.Sprintf("%s: %q", UnknownRegister, e.Name)
}

// Unwrap exposes the Kind via a matching *Error for errors.Is comparisons.
func (e *UnknownRegisterError) Unwrap() error {
	return &Error{Kind: UnknownRegister, Name: e.Name}
}

// UnknownMnemonicError is returned by mnemonic-name parsing for an
// unrecognised name.
type UnknownMnemonicError struct {
	Name string
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("%s: %q", UnknownMnemonic, e.Name)
}

func (e *UnknownMnemonicError) Unwrap() error {
	return &Error{Kind: UnknownMnemonic, Name: e.Name}
}
