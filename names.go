package globalization

// DeriveNames returns the locale's month or weekday names. Weekday lists are
// in calendar order starting at the table's first configured entry (Sunday
// for the built-in data), independent of the locale's first day of week.
// Missing table data surfaces as MissingLocaleData instead of an empty
// sequence.
func DeriveNames(ctx *LocaleContext, opts NameOptions) ([]string, error) {
	item, variant := opts.normalized()

	var source []string
	switch item {
	case NameDays:
		source = ctx.weekdayNames(variant)
	default:
		source = ctx.monthNames(variant)
	}

	if len(source) == 0 {
		return nil, errMissingLocaleData(ctx.Code(), string(item)+" "+string(variant)+" names")
	}

	return append([]string(nil), source...), nil
}
