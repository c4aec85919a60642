package arm

// Flag is a single-bit instruction toggle. The teacher's original source
// carries the toggle's render symbol as a type parameter (Flag<const C:
// char>); Go has no const generics over characters, and per the
// specification's own design note the symbol is a presentation concern
// that does not belong in the data model, so Flag is a plain bool and
// each call site supplies its own one-character suffix via flagSuffix.
type Flag bool

const (
	Off Flag = false
	On  Flag = true
)

// IsOn reports whether the flag is set.
func (f Flag) IsOn() bool { return bool(f) }

// IsOff reports whether the flag is clear.
func (f Flag) IsOff() bool { return !bool(f) }

// flagSuffix renders symbol when f is on, or the empty string when off —
// the S/B/T suffix convention used throughout Instruction's String method.
func flagSuffix(f Flag, symbol string) string {
	if f.IsOn() {
		return symbol
	}
	return ""
}
