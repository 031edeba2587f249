package catalog

import (
	"testing"
	"time"
)

func TestNormalizeDigits(t *testing.T) {
	got := NormalizeDigits("۱۲۳۴۵۶۷۸۹۰")
	if got != "1234567890" {
		t.Fatalf("expected 1234567890, got %q", got)
	}

	// non-digit runes pass through untouched, ASCII digits included
	got = NormalizeDigits("قیمت ۲۵۰ toman, 40% off")
	if got != "قیمت 250 toman, 40% off" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestNormalizeDigitsIdempotent(t *testing.T) {
	inputs := []string{"", "۱۲.۵ گرم", "abc", "123", "۰۰۷"}
	for _, s := range inputs {
		once := NormalizeDigits(s)
		twice := NormalizeDigits(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q vs %q", s, once, twice)
		}
	}
}

func TestExtractLeadingNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5 گرم", 12.5, true},
		{"۱۲.۵ گرم", 12.5, true}, // persian digits parse too
		{"10 گرم", 10, true},
		{"7", 7, true},
		{"گرم", 0, false},
		{"", 0, false},
		{"about 12", 0, false}, // prefix only, no scanning ahead
	}
	for _, tc := range cases {
		got, ok := ExtractLeadingNumber(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ExtractLeadingNumber(%q) = %v,%v; want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseScore(t *testing.T) {
	if v, ok := ParseScore("۴.۲"); !ok || v != 4.2 {
		t.Fatalf("expected 4.2, got %v,%v", v, ok)
	}
	if _, ok := ParseScore("no score"); ok {
		t.Fatal("expected non-numeric score to be absent")
	}
	if _, ok := ParseScore(""); ok {
		t.Fatal("expected empty score to be absent")
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-01-02")
	if !ok {
		t.Fatal("expected 2024-01-02 to parse")
	}
	if !d.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", d)
	}

	if _, ok := ParseDate("yesterday"); ok {
		t.Fatal("expected unparseable date to be absent")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatal("expected empty date to be absent")
	}
}

func TestNameKey(t *testing.T) {
	if got := NameKey("  Diamond Ring "); got != "diamond ring" {
		t.Fatalf("unexpected key %q", got)
	}
}
