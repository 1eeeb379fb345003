package aycode

import "testing"

func TestParse_AcceptedFormats(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"2025-26", 2025},
		{"2025/26", 2025},
		{"AY2025-26", 2025},
		{"AY2025/26", 2025},
		{"  2099-00  ", 2099},
	}
	for _, tc := range cases {
		got, err := Parse(tc.code)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.code, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestParse_Rejected(t *testing.T) {
	cases := []string{
		"",
		"2025",
		"2025-2026",
		"25-26",
		"2025_26",
		"AY 2025-26",
		"2025-27", // suffix must be start year + 1
		"abcd-ef",
	}
	for _, code := range cases {
		if _, err := Parse(code); err == nil {
			t.Errorf("Parse(%q) should fail", code)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, year := range []int{1999, 2024, 2025, 2099} {
		code := Format(year)
		got, err := Parse(code)
		if err != nil {
			t.Fatalf("Parse(Format(%d)) error: %v", year, err)
		}
		if got != year {
			t.Errorf("Parse(Format(%d)) = %d", year, got)
		}
	}
}
