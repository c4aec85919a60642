package arm

import "testing"

func TestParseRegisterAliases(t *testing.T) {
	cases := []struct {
		s    string
		want Register
	}{
		{"r0", R0}, {"a1", R0},
		{"r3", R3}, {"a4", R3},
		{"r4", R4}, {"v1", R4},
		{"r9", R9}, {"sb", R9},
		{"r10", R10}, {"sl", R10},
		{"r13", SP}, {"SP", SP},
		{"r14", LR}, {"LR", LR},
		{"r15", PC}, {"Pc", PC},
	}
	for _, c := range cases {
		got, err := ParseRegister(c.s)
		if err != nil {
			t.Errorf("ParseRegister(%q): unexpected error: %v", c.s, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRegister(%q) = %s, want %s", c.s, got, c.want)
		}
	}
}

func TestParseRegisterUnknown(t *testing.T) {
	if _, err := ParseRegister("r16"); err == nil {
		t.Error("ParseRegister(\"r16\") should fail")
	}
}

func TestRegisterFromByte(t *testing.T) {
	r, err := RegisterFromByte(15)
	if err != nil || r != PC {
		t.Errorf("RegisterFromByte(15) = %v, %v, want PC, nil", r, err)
	}
	if _, err := RegisterFromByte(16); err == nil {
		t.Error("RegisterFromByte(16) should fail")
	}
}

func TestRegisterIsLowIsHigh(t *testing.T) {
	for r := R0; r <= R7; r++ {
		if !r.IsLow() || r.IsHigh() {
			t.Errorf("%s should be low", r)
		}
	}
	for r := R8; r <= PC; r++ {
		if r.IsLow() || !r.IsHigh() {
			t.Errorf("%s should be high", r)
		}
	}
}

func TestRegisterString(t *testing.T) {
	cases := []struct {
		r    Register
		want string
	}{
		{R0, "r0"}, {R7, "r7"}, {R12, "r12"}, {SP, "sp"}, {LR, "lr"}, {PC, "pc"},
	}
	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.r, got, c.want)
		}
	}
}
