package globalization

import (
	"regexp"
	"strings"
	"time"
)

// timeToken is the skeleton token reserved for the time portion of a
// pattern. Date expansion leaves it alone; a dedicated second pass resolves
// or strips it.
const timeToken = "LT"

// lengthSkeletons maps format lengths to skeleton strings built from
// long-date-format tokens. Each skeleton pairs a date token with the time
// token; which halves survive depends on the requested selection.
var lengthSkeletons = map[FormatLength]string{
	FormatShort:  "L LT",
	FormatMedium: "LL LT",
	FormatLong:   "LLL LT",
	FormatFull:   "LLLL LT",
}

var zoneNamePattern = regexp.MustCompile(`\((.+)\)$`)

// jsDateLayout mirrors the JS Date#toString shape the zone descriptor is
// scraped from.
const jsDateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// DerivePattern builds the locale display pattern for the requested format
// length and date/time selection, together with a zone snapshot taken at the
// current moment. Unknown format lengths fail with InvalidFormatLength
// rather than guessing a default.
func DerivePattern(ctx *LocaleContext, opts PatternOptions) (DateFormatSpec, error) {
	return derivePatternAt(ctx, opts, time.Now())
}

// derivePatternAt is the testable core of DerivePattern with an injected
// reference moment.
func derivePatternAt(ctx *LocaleContext, opts PatternOptions, now time.Time) (DateFormatSpec, error) {
	length := opts.FormatLength
	if length == "" {
		length = FormatShort
	}

	skeleton, ok := lengthSkeletons[length]
	if !ok {
		return DateFormatSpec{}, errInvalidFormatLength(string(length))
	}

	wantDate, wantTime := opts.resolved()

	var pattern string
	switch {
	case wantDate:
		tokens := strings.Fields(skeleton)
		for i, token := range tokens {
			if token == timeToken {
				continue
			}
			if expansion, found := ctx.LongDateFormat(token); found {
				tokens[i] = expansion
			}
		}
		pattern = strings.Join(tokens, " ")

		// The literal time token survives date expansion; this second
		// pass resolves it (or strips it) wherever it landed.
		if wantTime {
			expansion, found := ctx.LongDateFormat(timeToken)
			if !found {
				return DateFormatSpec{}, errMissingLocaleData(ctx.Code(), timeToken)
			}
			pattern = strings.ReplaceAll(pattern, timeToken, expansion)
		} else {
			pattern = strings.ReplaceAll(pattern, timeToken, "")
		}
	case wantTime:
		expansion, found := ctx.LongDateFormat(timeToken)
		if !found {
			return DateFormatSpec{}, errMissingLocaleData(ctx.Code(), timeToken)
		}
		pattern = expansion
	}

	_, offset := now.Zone()

	return DateFormatSpec{
		Pattern:          strings.TrimSpace(pattern),
		Timezone:         zoneDescriptor(now),
		UTCOffsetSeconds: offset,
	}, nil
}

// zoneDescriptor extracts the parenthesized zone name from the JS-style
// string representation of t, falling back to a signed +HHMM offset when the
// zone has no abbreviation.
func zoneDescriptor(t time.Time) string {
	repr := t.Format(jsDateLayout)
	if match := zoneNamePattern.FindStringSubmatch(repr); match != nil {
		name := match[1]
		// Zones without an abbreviation render as a numeric offset.
		if !strings.HasPrefix(name, "+") && !strings.HasPrefix(name, "-") {
			return name
		}
	}
	return t.Format("-0700")
}
