package globalization

import (
	"strings"
	"testing"
	"time"
)

func testContext(t *testing.T, code string, opts ...LocaleOption) *LocaleContext {
	t.Helper()

	ctx, err := NewLocaleContext(code, opts...)
	if err != nil {
		t.Fatalf("NewLocaleContext(%q): %v", code, err)
	}
	return ctx
}

func TestDerivePatternDateAndTime(t *testing.T) {
	ctx := testContext(t, "en")

	tests := []struct {
		length       FormatLength
		wantDatePart string
	}{
		{FormatShort, "MM/DD/YYYY"},
		{FormatMedium, "MMMM D, YYYY"},
		{FormatLong, "MMMM D, YYYY"},
		{FormatFull, "dddd, MMMM D, YYYY"},
	}

	for _, tc := range tests {
		t.Run(string(tc.length), func(t *testing.T) {
			spec, err := DerivePattern(ctx, PatternOptions{
				FormatLength: tc.length,
				Date:         boolPtr(true),
				Time:         boolPtr(true),
			})
			if err != nil {
				t.Fatalf("DerivePattern: %v", err)
			}

			if !strings.Contains(spec.Pattern, tc.wantDatePart) {
				t.Fatalf("pattern %q missing date part %q", spec.Pattern, tc.wantDatePart)
			}
			if !strings.Contains(spec.Pattern, "h:mm A") {
				t.Fatalf("pattern %q missing time expansion", spec.Pattern)
			}
			if spec.Pattern != strings.TrimSpace(spec.Pattern) {
				t.Fatalf("pattern %q not trimmed", spec.Pattern)
			}
			if strings.Contains(spec.Pattern, "  ") {
				t.Fatalf("pattern %q contains doubled spaces", spec.Pattern)
			}
			if spec.DSTOffsetSeconds != 0 {
				t.Fatalf("dst offset = %d, want 0", spec.DSTOffsetSeconds)
			}
		})
	}
}

func TestDerivePatternDateOnly(t *testing.T) {
	ctx := testContext(t, "en")

	spec, err := DerivePattern(ctx, PatternOptions{
		FormatLength: FormatShort,
		Date:         boolPtr(true),
		Time:         boolPtr(false),
	})
	if err != nil {
		t.Fatalf("DerivePattern: %v", err)
	}

	if spec.Pattern != "MM/DD/YYYY" {
		t.Fatalf("pattern = %q, want MM/DD/YYYY", spec.Pattern)
	}
	if strings.Contains(spec.Pattern, "LT") {
		t.Fatalf("pattern %q retains the literal time token", spec.Pattern)
	}
	if strings.Contains(spec.Pattern, "h:mm A") {
		t.Fatalf("pattern %q contains the time expansion", spec.Pattern)
	}
}

func TestDerivePatternTimeOnly(t *testing.T) {
	ctx := testContext(t, "en")

	for _, length := range []FormatLength{FormatShort, FormatMedium, FormatLong, FormatFull} {
		spec, err := DerivePattern(ctx, PatternOptions{
			FormatLength: length,
			Date:         boolPtr(false),
			Time:         boolPtr(true),
		})
		if err != nil {
			t.Fatalf("DerivePattern(%s): %v", length, err)
		}

		if spec.Pattern != "h:mm A" {
			t.Fatalf("DerivePattern(%s) = %q, want the direct LT expansion", length, spec.Pattern)
		}
	}
}

func TestDerivePatternDefaults(t *testing.T) {
	ctx := testContext(t, "en")

	// Neither field provided: both default to true.
	spec, err := DerivePattern(ctx, PatternOptions{})
	if err != nil {
		t.Fatalf("DerivePattern: %v", err)
	}
	if spec.Pattern != "MM/DD/YYYY h:mm A" {
		t.Fatalf("pattern = %q, want MM/DD/YYYY h:mm A", spec.Pattern)
	}

	// One field provided: the absent one stays false.
	spec, err = DerivePattern(ctx, PatternOptions{Date: boolPtr(true)})
	if err != nil {
		t.Fatalf("DerivePattern: %v", err)
	}
	if spec.Pattern != "MM/DD/YYYY" {
		t.Fatalf("pattern = %q, want MM/DD/YYYY", spec.Pattern)
	}

	// Both explicitly false: empty pattern, still trimmed.
	spec, err = DerivePattern(ctx, PatternOptions{Date: boolPtr(false), Time: boolPtr(false)})
	if err != nil {
		t.Fatalf("DerivePattern: %v", err)
	}
	if spec.Pattern != "" {
		t.Fatalf("pattern = %q, want empty", spec.Pattern)
	}
}

func TestDerivePatternUnknownLength(t *testing.T) {
	ctx := testContext(t, "en")

	_, err := DerivePattern(ctx, PatternOptions{FormatLength: "huge"})
	if err == nil {
		t.Fatal("expected error for unknown format length")
	}
	if !IsInvalidFormatLength(err) {
		t.Fatalf("expected InvalidFormatLength, got %v", err)
	}
}

func TestDerivePatternZoneSnapshot(t *testing.T) {
	ctx := testContext(t, "en")

	named := time.Date(2023, 1, 1, 12, 0, 0, 0, time.FixedZone("AEST", 10*3600))
	spec, err := derivePatternAt(ctx, PatternOptions{}, named)
	if err != nil {
		t.Fatalf("derivePatternAt: %v", err)
	}
	if spec.Timezone != "AEST" {
		t.Fatalf("timezone = %q, want AEST", spec.Timezone)
	}
	if spec.UTCOffsetSeconds != 10*3600 {
		t.Fatalf("utc offset = %d, want %d", spec.UTCOffsetSeconds, 10*3600)
	}

	// Zones without an abbreviation fall back to the signed numeric form.
	anonymous := time.Date(2023, 1, 1, 12, 0, 0, 0, time.FixedZone("", 3600))
	spec, err = derivePatternAt(ctx, PatternOptions{}, anonymous)
	if err != nil {
		t.Fatalf("derivePatternAt: %v", err)
	}
	if spec.Timezone != "+0100" {
		t.Fatalf("timezone = %q, want +0100", spec.Timezone)
	}
}
