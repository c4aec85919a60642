package arm

import "testing"

func TestParsePredicateAliases(t *testing.T) {
	cases := []struct {
		s    string
		want Predicate
	}{
		{"eq", EQ}, {"ne", NE},
		{"hs", HS}, {"cs", HS},
		{"lo", LO}, {"cc", LO},
		{"ge", GE}, {"lt", LT},
		{"gt", GT}, {"le", LE},
		{"al", AL}, {"", AL},
		{"GE", GE},
	}
	for _, c := range cases {
		got, err := ParsePredicate(c.s)
		if err != nil {
			t.Errorf("ParsePredicate(%q): unexpected error: %v", c.s, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParsePredicate(%q) = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestParsePredicateUnknown(t *testing.T) {
	if _, err := ParsePredicate("zz"); err == nil {
		t.Error(`ParsePredicate("zz") should fail`)
	}
}

func TestPredicateStringAndALIsEmpty(t *testing.T) {
	if AL.String() != "" {
		t.Errorf("AL.String() = %q, want empty", AL.String())
	}
	cases := []struct {
		p    Predicate
		want string
	}{
		{EQ, "EQ"}, {NE, "NE"}, {GE, "GE"}, {LT, "LT"}, {GT, "GT"}, {LE, "LE"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.p, got, c.want)
		}
	}
}
