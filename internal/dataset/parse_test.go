package dataset

import "testing"

func TestParseDuration(t *testing.T) {
	if v, ok := ParseDuration("142 min"); !ok || v != 142 {
		t.Fatalf("ParseDuration(142 min) = %v, %v", v, ok)
	}
	if v, ok := ParseDuration("90min"); !ok || v != 90 {
		t.Fatalf("ParseDuration(90min) = %v, %v", v, ok)
	}
	for _, in := range []string{"", "min", "1h 30m", "abc min", "12"} {
		if _, ok := ParseDuration(in); ok {
			t.Fatalf("ParseDuration(%q) should be absent", in)
		}
	}
}

func TestParseGroupedNumber(t *testing.T) {
	if v, ok := ParseGroupedNumber("28,341,469"); !ok || v != 28341469 {
		t.Fatalf("grouped = %v, %v", v, ok)
	}
	if v, ok := ParseGroupedNumber(" 8.5 "); !ok || v != 8.5 {
		t.Fatalf("decimal = %v, %v", v, ok)
	}
	for _, in := range []string{"", "  ", "PG", "NaN", "12 min"} {
		if _, ok := ParseGroupedNumber(in); ok {
			t.Fatalf("ParseGroupedNumber(%q) should be absent", in)
		}
	}
}

func TestSplitMultiValue(t *testing.T) {
	got := SplitMultiValue("Crime, Drama,, Drama ,")
	want := []string{"Crime", "Drama", "Drama"}
	if len(got) != len(want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %#v, want %#v", got, want)
		}
	}
	if len(SplitMultiValue("")) != 0 {
		t.Fatalf("empty input should give no tokens")
	}
}

func TestParseFlag(t *testing.T) {
	if v, ok := ParseFlag("1"); !ok || !v {
		t.Fatalf("flag 1 = %v, %v", v, ok)
	}
	if v, ok := ParseFlag("False"); !ok || v {
		t.Fatalf("flag False = %v, %v", v, ok)
	}
	if _, ok := ParseFlag("maybe"); ok {
		t.Fatalf("flag maybe should be absent")
	}
}
