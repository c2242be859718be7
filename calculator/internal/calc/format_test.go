package calc

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{-5, "-5"},
		{0.125, "0.125"},
		{1234, "1,234"},
		{-1234.5, "-1,234.5"},
		{1234567.25, "1,234,567.25"},
		{100000000000, "100,000,000,000"},
		{1e12, "1e+12"},
		{-2.5e13, "-2.5e+13"},
		{5e-11, "5e-11"},
		{1e-10, "0.0000000001"},
		{1e-15, "0"},              // below the zero tolerance
		{-0.0, "0"},               // negative zero is suppressed
		{0.1 + 0.2, "0.3"},        // residual noise rounds away
		{1.0 / 3, "0.3333333333"}, // ten fractional digits
	}
	for _, test := range tests {
		if got := formatValue(test.in); got != test.want {
			t.Errorf("formatValue(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestFormatRaw(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{400, "400"},
		{0.5, "0.5"},
		{1e13, "10000000000000"}, // still plain below 1e14
		{1e14, "1e+14"},
		{1e-12, "0.000000000001"},
		{5e-13, "5e-13"},
		{1.0 / 3, "0.333333333333"}, // twelve fractional digits, no grouping
	}
	for _, test := range tests {
		if got := formatRaw(test.in); got != test.want {
			t.Errorf("formatRaw(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestFormatEntry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"7", "7"},
		{"1234", "1,234"},
		{"-1234", "-1,234"},
		{"1234567", "1,234,567"},
		{"1234.5", "1,234.5"},
		{"0.", "0."},
		{"12e", "12e"},
		{"12e-", "12e-"},
		{"1234e5", "1,234e5"},
		{"-0.25", "-0.25"},
	}
	for _, test := range tests {
		if got := formatEntry(test.in); got != test.want {
			t.Errorf("formatEntry(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"42", 42},
		{"-42.5", -42.5},
		{"12.", 12},
		{"12e", 12},
		{"12e-", 12},
		{"12e-3", 0.012},
		{"1e+5", 100000},
	}
	for _, test := range tests {
		if got := parseEntry(test.in); got != test.want {
			t.Errorf("parseEntry(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestGroupNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"100", "100"},
		{"1000", "1,000"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1000.25", "-1,000.25"},
	}
	for _, test := range tests {
		if got := groupNumber(test.in); got != test.want {
			t.Errorf("groupNumber(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}
