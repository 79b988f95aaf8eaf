package globalization

import (
	"time"

	"github.com/goodsign/monday"
)

// FormatDateTime renders t according to the pattern derived for opts, with
// month and weekday names localized for the context's locale.
func FormatDateTime(ctx *LocaleContext, t time.Time, opts PatternOptions) (string, error) {
	spec, err := DerivePattern(ctx, opts)
	if err != nil {
		return "", err
	}
	return monday.Format(t, GoLayout(spec.Pattern), ctx.MondayLocale()), nil
}

// IsDST reports whether t falls inside daylight saving time in its location.
// Pure delegation; the context is accepted for call-site symmetry with the
// other helpers.
func IsDST(_ *LocaleContext, t time.Time) bool {
	return t.IsDST()
}

// FirstDayOfWeek returns the ISO weekday (1=Monday..7=Sunday) the context's
// locale starts its week on. Idempotent; no side effects.
func FirstDayOfWeek(ctx *LocaleContext) int {
	return ctx.FirstDay()
}

// ParseToFields parses a free-form date string and decomposes it into
// structured fields. Which fields are populated follows the same default
// rule as DerivePattern: both date and time when neither was requested
// explicitly, otherwise exactly what the caller asked for.
//
// The parse itself is heuristic: candidate layouts are tried in order, ISO
// forms first, then the locale's own expansions. Ambiguous inputs resolve to
// the first layout that accepts them, so cross-locale results for ambiguous
// strings may differ. That is a property of free-form parsing, not an error.
func ParseToFields(ctx *LocaleContext, value string, opts PatternOptions) (DateFields, error) {
	t, err := parseFreeForm(ctx, value)
	if err != nil {
		return DateFields{}, err
	}

	wantDate, wantTime := opts.resolved()

	var fields DateFields
	if wantDate {
		fields.Year = intPtr(t.Year())
		fields.Month = intPtr(int(t.Month()) - 1)
		fields.Day = intPtr(t.Day())
	}
	if wantTime {
		fields.Hour = intPtr(t.Hour())
		fields.Minute = intPtr(t.Minute())
		fields.Second = intPtr(t.Second())
		fields.Millisecond = intPtr(t.Nanosecond() / int(time.Millisecond))
	}

	return fields, nil
}

// isoLayouts are tried before any locale-specific expansion so deterministic
// machine formats never depend on the locale.
var isoLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseFreeForm(ctx *LocaleContext, value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	for _, layout := range localeLayouts(ctx) {
		if t, err := monday.ParseInLocation(layout, value, time.Local, ctx.MondayLocale()); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errUnparsableDate(value)
}

// localeLayouts builds the candidate Go layouts for a locale: each date
// expansion alone and combined with the time expansions, then the time
// expansions by themselves.
func localeLayouts(ctx *LocaleContext) []string {
	dateTokens := []string{"L", "LL", "LLL", "LLLL"}
	timeTokens := []string{"LTS", "LT"}

	var layouts []string
	appendLayout := func(pattern string) {
		if pattern == "" {
			return
		}
		layouts = append(layouts, GoLayout(pattern))
	}

	for _, token := range dateTokens {
		expansion, ok := ctx.LongDateFormat(token)
		if !ok {
			continue
		}
		for _, timeTok := range timeTokens {
			if timeExpansion, found := ctx.LongDateFormat(timeTok); found {
				appendLayout(expansion + " " + timeExpansion)
			}
		}
		appendLayout(expansion)
	}

	for _, timeTok := range timeTokens {
		if timeExpansion, found := ctx.LongDateFormat(timeTok); found {
			appendLayout(timeExpansion)
		}
	}

	return layouts
}

func intPtr(v int) *int { return &v }
