package residue

import "testing"

func TestTableHasExactlyTwentyCodes(t *testing.T) {
	codes := Codes()
	if len(codes) != 20 {
		t.Fatalf("expected 20 codes, got %d", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %c before %c", codes[i-1], codes[i])
		}
	}
}

func TestLookupConstantsArePlausible(t *testing.T) {
	for _, code := range Codes() {
		c, ok := Lookup(code)
		if !ok {
			t.Fatalf("lookup failed for %c", code)
		}
		if c.N < 1 {
			t.Fatalf("%c: every amino acid has at least one nitrogen, got %d", code, c.N)
		}
		if c.C < 2 {
			t.Fatalf("%c: carbon count too small: %d", code, c.C)
		}
		if c.Mass <= 0 {
			t.Fatalf("%c: non-positive mass %v", code, c.Mass)
		}
	}
}

func TestLookupSulfurBearers(t *testing.T) {
	for _, code := range Codes() {
		c, _ := Lookup(code)
		want := uint(0)
		if code == 'C' || code == 'M' {
			want = 1
		}
		if c.S != want {
			t.Fatalf("%c: expected %d sulfur atoms, got %d", code, want, c.S)
		}
	}
}

func TestLookupRejectsNonStandard(t *testing.T) {
	for _, code := range []rune{'X', 'B', 'Z', 'U', 'O', '*', '-', 'a', ' '} {
		if _, ok := Lookup(code); ok {
			t.Fatalf("lookup unexpectedly succeeded for %q", code)
		}
	}
}
