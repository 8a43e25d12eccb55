package validate

import "testing"

func TestID(t *testing.T) {
	for _, s := range []string{"smp-velvet-white", "cat_1", "2f1e4d6a-1b2c-4d5e-8f9a-0b1c2d3e4f5a"} {
		if _, ok := ID(s); !ok {
			t.Errorf("%q should be a valid id", s)
		}
	}
	for _, s := range []string{"", "has space", "semi;colon", "a/b"} {
		if _, ok := ID(s); ok {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestEmail(t *testing.T) {
	if _, ok := Email("admin@alwan.iq"); !ok {
		t.Error("plain address should pass")
	}
	for _, s := range []string{"", "nope", "a@b", "@alwan.iq"} {
		if _, ok := Email(s); ok {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestName(t *testing.T) {
	if s, ok := Name("  شركة الألوان  "); !ok || s != "شركة الألوان" {
		t.Errorf("arabic name should pass trimmed, got %q ok=%v", s, ok)
	}
	long := make([]rune, 101)
	for i := range long {
		long[i] = 'م'
	}
	if _, ok := Name(string(long)); ok {
		t.Error("names over 100 runes should be rejected")
	}
}

func TestQty(t *testing.T) {
	cases := map[string]int{"3": 3, "0": 1, "-5": 1, "junk": 1, "9999": 500, " 7 ": 7}
	for in, want := range cases {
		if got := Qty(in); got != want {
			t.Errorf("Qty(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestPrice(t *testing.T) {
	if v, ok := Price("24.5"); !ok || v != 24.5 {
		t.Errorf("got %v ok=%v", v, ok)
	}
	if _, ok := Price("-1"); ok {
		t.Error("negative price should be rejected")
	}
	if _, ok := Price("abc"); ok {
		t.Error("non-numeric price should be rejected")
	}
}

func TestTxType(t *testing.T) {
	for _, s := range []string{"in", "out"} {
		if _, ok := TxType(s); !ok {
			t.Errorf("%q should pass", s)
		}
	}
	if _, ok := TxType("sideways"); ok {
		t.Error("unknown direction should be rejected")
	}
}

func TestRating(t *testing.T) {
	if n, ok := Rating("5"); !ok || n != 5 {
		t.Errorf("got %d ok=%v", n, ok)
	}
	for _, s := range []string{"0", "6", "-1", "x"} {
		if _, ok := Rating(s); ok {
			t.Errorf("%q should be rejected", s)
		}
	}
}
