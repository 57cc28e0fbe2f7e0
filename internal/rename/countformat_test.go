package rename

import (
	"errors"
	"testing"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		value  int
		format string
		want   string
	}{
		{5, "", "5"},
		{5, "0", "5"},
		{5, "00", "05"},
		{5, "_00", "_05"},
		{123, "00", "123"},
		{0, "#", ""},
		{0, "0", "0"},
		{7, "D3", "007"},
		{-7, "D3", "-007"},
		{255, "X", "FF"},
		{255, "x4", "00ff"},
		{-1, "X", "FFFFFFFF"},
		{1234, "N0", "1,234"},
		{1234, "N", "1,234.00"},
		{7, "F1", "7.0"},
		{42, "G", "42"},
		{1234567, "#,##0", "1,234,567"},
		{12, "0.00", "12.00"},
		{12, "#.##", "12"},
		{3, "'v'0", "v3"},
		{3, "\\#0", "#3"},
		{3, "\"No.\" 00", "No. 03"},
		{-5, "_00", "-_05"},
		{-5, "0;(0)", "(5)"},
		{0, "0;(0);zero", "zero"},
		{5, "0;(0);zero", "5"},
		{1, "0%", "100%"},
		{4, "abc", "abc"},
		{1234, "0,", "1"},
		{1500, "0,", "2"},
		{12, "0,", "0"},
		{-1234, "0,", "-1"},
		{-12, "0,", "0"},
		{1234567, "#,##0,", "1,235"},
		{1234567890, "0,,", "1235"},
		{1234, "0,.00", "1.23"},
		{1200, "0,.##", "1.2"},
		{1234, "0,K", "1K"},
		{42, "G0", "42"},
		{12345, "G5", "12345"},
		{1234567, "G3", "1.23E+06"},
		{1234567, "g2", "1.2e+06"},
		{99999, "G3", "1E+05"},
		{-1234567, "G3", "-1.23E+06"},
	}

	for _, tt := range tests {
		got, err := FormatCount(tt.value, tt.format)
		if err != nil {
			t.Errorf("FormatCount(%d, %q) returned error: %v", tt.value, tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatCount(%d, %q) = %q, expected %q", tt.value, tt.format, got, tt.want)
		}
	}
}

func TestFormatCountInvalid(t *testing.T) {
	formats := []string{"Q", "z2", "0\\", "'open", "\"open"}

	for _, format := range formats {
		_, err := FormatCount(1, format)
		if !errors.Is(err, ErrInvalidCountFormat) {
			t.Errorf("FormatCount(1, %q) expected ErrInvalidCountFormat, got %v", format, err)
		}
		if ValidCountFormat(format) {
			t.Errorf("ValidCountFormat(%q) expected false", format)
		}
	}
}
