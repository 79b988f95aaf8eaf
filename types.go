package globalization

import "strings"

// FormatLength selects which long-date-format skeleton drives pattern
// derivation.
type FormatLength string

const (
	FormatShort  FormatLength = "short"
	FormatMedium FormatLength = "medium"
	FormatLong   FormatLength = "long"
	FormatFull   FormatLength = "full"
)

// ParseFormatLength normalizes a caller supplied length. An absent value
// resolves to FormatShort; unknown values pass through so the skeleton lookup
// can reject them.
func ParseFormatLength(value string) FormatLength {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return FormatShort
	}
	return FormatLength(trimmed)
}

// Selector mirrors the caller-facing selector strings used by option bags.
type Selector string

const (
	SelectorDate        Selector = "date"
	SelectorTime        Selector = "time"
	SelectorDateAndTime Selector = "date and time"
)

// PatternOptions is the tagged configuration for pattern derivation and
// structured parsing. Date and Time use *bool so an absent field stays
// distinguishable from an explicit false.
type PatternOptions struct {
	FormatLength FormatLength
	Date         *bool
	Time         *bool
}

// resolved returns the effective date/time selection. Defaults (both true)
// apply only when neither field was provided; an explicitly set field leaves
// the absent one false.
func (o PatternOptions) resolved() (wantDate, wantTime bool) {
	if o.Date == nil && o.Time == nil {
		return true, true
	}
	if o.Date != nil {
		wantDate = *o.Date
	}
	if o.Time != nil {
		wantTime = *o.Time
	}
	return wantDate, wantTime
}

// OptionsFromSelector derives PatternOptions from a {formatLength, selector}
// option bag. An empty or unknown selector leaves both fields unset so the
// default resolution applies.
func OptionsFromSelector(formatLength string, selector Selector) PatternOptions {
	opts := PatternOptions{FormatLength: ParseFormatLength(formatLength)}

	switch Selector(strings.ToLower(strings.TrimSpace(string(selector)))) {
	case SelectorDate:
		opts.Date = boolPtr(true)
		opts.Time = boolPtr(false)
	case SelectorTime:
		opts.Date = boolPtr(false)
		opts.Time = boolPtr(true)
	case SelectorDateAndTime:
		opts.Date = boolPtr(true)
		opts.Time = boolPtr(true)
	}

	return opts
}

func boolPtr(v bool) *bool { return &v }

// DateFormatSpec is the derived display pattern plus the zone snapshot taken
// at derivation time. Immutable once returned.
type DateFormatSpec struct {
	Pattern  string `json:"pattern"`
	Timezone string `json:"timezone"`
	// UTCOffsetSeconds follows the time.Time.Zone convention: seconds east
	// of UTC are positive.
	UTCOffsetSeconds int `json:"utc_offset"`
	// DSTOffsetSeconds is always zero; DST offsets are not computed.
	DSTOffsetSeconds int `json:"dst_offset"`
}

// DateFields is the structured decomposition of a parsed date. Month is zero
// based (0 = January). Fields are pointers so the populated subset tracks the
// requested date/time selection.
type DateFields struct {
	Year        *int `json:"year,omitempty"`
	Month       *int `json:"month,omitempty"`
	Day         *int `json:"day,omitempty"`
	Hour        *int `json:"hour,omitempty"`
	Minute      *int `json:"minute,omitempty"`
	Second      *int `json:"second,omitempty"`
	Millisecond *int `json:"millisecond,omitempty"`
}

// NameItem selects which name table DeriveNames reads.
type NameItem string

const (
	NameMonths NameItem = "months"
	NameDays   NameItem = "days"
)

// NameVariant selects full or abbreviated name forms.
type NameVariant string

const (
	NameWide   NameVariant = "wide"
	NameNarrow NameVariant = "narrow"
)

// NameOptions configures DeriveNames. Zero values fall back to months/wide.
type NameOptions struct {
	Item    NameItem
	Variant NameVariant
}

// normalized applies the defaults and case-insensitivity rules. Anything that
// is not "days" reads the month table, matching the source behavior.
func (o NameOptions) normalized() (NameItem, NameVariant) {
	item := NameMonths
	if NameItem(strings.ToLower(strings.TrimSpace(string(o.Item)))) == NameDays {
		item = NameDays
	}

	variant := NameWide
	if NameVariant(strings.ToLower(strings.TrimSpace(string(o.Variant)))) == NameNarrow {
		variant = NameNarrow
	}

	return item, variant
}
