package utils

import "testing"

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			if got := FormatCount(test.input); got != test.expected {
				t.Errorf("FormatCount(%d) = %q, want %q", test.input, got, test.expected)
			}
		})
	}
}

func TestFormatOptionalCount(t *testing.T) {
	if got := FormatOptionalCount(nil); got != "N/A" {
		t.Errorf("nil count should be N/A, got %q", got)
	}
	views := int64(1500)
	if got := FormatOptionalCount(&views); got != "1,500" {
		t.Errorf("got %q, want 1,500", got)
	}
}

func TestStringOr(t *testing.T) {
	empty := ""
	value := "20240101"
	if StringOr(nil, "N/A") != "N/A" || StringOr(&empty, "N/A") != "N/A" {
		t.Error("missing string should fall back")
	}
	if StringOr(&value, "N/A") != value {
		t.Error("present string should be returned")
	}
}
