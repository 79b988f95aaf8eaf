package globalization

// LocaleTable bundles everything pattern derivation needs for one locale:
// moment-style long-date-format expansions, name tables in calendar order
// (Sunday first), the locale's first day of week, and the monday locale id
// used for localized rendering.
type LocaleTable struct {
	Code           string            `yaml:"code"`
	LongDateFormat map[string]string `yaml:"long_date_format"`
	Months         []string          `yaml:"months"`
	MonthsShort    []string          `yaml:"months_short"`
	Weekdays       []string          `yaml:"weekdays"`
	WeekdaysShort  []string          `yaml:"weekdays_short"`
	// FirstDay is the ISO weekday (1=Monday..7=Sunday) the locale starts
	// its week on.
	FirstDay     int    `yaml:"first_day"`
	MondayLocale string `yaml:"monday_locale"`
}

// builtinLocaleTables carries the locales we ship by default. The token
// expansions follow the conventions of moment-style locale bundles; keeping
// the map hardcoded next to the lookup code mirrors how formatting rules are
// maintained elsewhere in this family of libraries.
var builtinLocaleTables = map[string]LocaleTable{
	"en": {
		Code: "en",
		LongDateFormat: map[string]string{
			"LT":   "h:mm A",
			"LTS":  "h:mm:ss A",
			"L":    "MM/DD/YYYY",
			"LL":   "MMMM D, YYYY",
			"LLL":  "MMMM D, YYYY h:mm A",
			"LLLL": "dddd, MMMM D, YYYY h:mm A",
		},
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsShort: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Weekdays: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		FirstDay:      7,
		MondayLocale:  "en_US",
	},
	"en-GB": {
		Code: "en-GB",
		LongDateFormat: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD/MM/YYYY",
			"LL":   "D MMMM YYYY",
			"LLL":  "D MMMM YYYY HH:mm",
			"LLLL": "dddd, D MMMM YYYY HH:mm",
		},
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsShort: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Weekdays: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		FirstDay:      1,
		MondayLocale:  "en_GB",
	},
	"es": {
		Code: "es",
		LongDateFormat: map[string]string{
			"LT":   "H:mm",
			"LTS":  "H:mm:ss",
			"L":    "DD/MM/YYYY",
			"LL":   "D [de] MMMM [de] YYYY",
			"LLL":  "D [de] MMMM [de] YYYY H:mm",
			"LLLL": "dddd, D [de] MMMM [de] YYYY H:mm",
		},
		Months: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthsShort: []string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		Weekdays: []string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		WeekdaysShort: []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		FirstDay:      1,
		MondayLocale:  "es_ES",
	},
	"fr": {
		Code: "fr",
		LongDateFormat: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD/MM/YYYY",
			"LL":   "D MMMM YYYY",
			"LLL":  "D MMMM YYYY HH:mm",
			"LLLL": "dddd D MMMM YYYY HH:mm",
		},
		Months: []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		MonthsShort: []string{
			"janv", "févr", "mars", "avr", "mai", "juin",
			"juil", "août", "sept", "oct", "nov", "déc",
		},
		Weekdays: []string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		WeekdaysShort: []string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
		FirstDay:      1,
		MondayLocale:  "fr_FR",
	},
	"de": {
		Code: "de",
		LongDateFormat: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD.MM.YYYY",
			"LL":   "D. MMMM YYYY",
			"LLL":  "D. MMMM YYYY HH:mm",
			"LLLL": "dddd, D. MMMM YYYY HH:mm",
		},
		Months: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthsShort: []string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		Weekdays: []string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		WeekdaysShort: []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		FirstDay:      1,
		MondayLocale:  "de_DE",
	},
	"ja": {
		Code: "ja",
		LongDateFormat: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "YYYY/MM/DD",
			"LL":   "YYYY[年]M[月]D[日]",
			"LLL":  "YYYY[年]M[月]D[日] HH:mm",
			"LLLL": "YYYY[年]M[月]D[日] dddd HH:mm",
		},
		Months: []string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
		MonthsShort: []string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
		Weekdays: []string{
			"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日",
		},
		WeekdaysShort: []string{"日", "月", "火", "水", "木", "金", "土"},
		FirstDay:      7,
		MondayLocale:  "ja_JP",
	},
}

// BuiltinLocales lists the locale codes shipped with the package.
func BuiltinLocales() []string {
	out := make([]string, 0, len(builtinLocaleTables))
	for code := range builtinLocaleTables {
		out = append(out, code)
	}
	return out
}

// mergeLocaleTable copies the non-empty fields of src over dst.
func mergeLocaleTable(dst *LocaleTable, src LocaleTable) {
	if src.Code != "" {
		dst.Code = src.Code
	}
	if len(src.LongDateFormat) > 0 {
		if dst.LongDateFormat == nil {
			dst.LongDateFormat = make(map[string]string, len(src.LongDateFormat))
		}
		for token, expansion := range src.LongDateFormat {
			dst.LongDateFormat[token] = expansion
		}
	}
	if len(src.Months) > 0 {
		dst.Months = append([]string(nil), src.Months...)
	}
	if len(src.MonthsShort) > 0 {
		dst.MonthsShort = append([]string(nil), src.MonthsShort...)
	}
	if len(src.Weekdays) > 0 {
		dst.Weekdays = append([]string(nil), src.Weekdays...)
	}
	if len(src.WeekdaysShort) > 0 {
		dst.WeekdaysShort = append([]string(nil), src.WeekdaysShort...)
	}
	if src.FirstDay != 0 {
		dst.FirstDay = src.FirstDay
	}
	if src.MondayLocale != "" {
		dst.MondayLocale = src.MondayLocale
	}
}

// cloneLocaleTable returns a deep copy so contexts never share mutable state.
func cloneLocaleTable(table LocaleTable) LocaleTable {
	out := LocaleTable{
		Code:         table.Code,
		FirstDay:     table.FirstDay,
		MondayLocale: table.MondayLocale,
	}
	if len(table.LongDateFormat) > 0 {
		out.LongDateFormat = make(map[string]string, len(table.LongDateFormat))
		for token, expansion := range table.LongDateFormat {
			out.LongDateFormat[token] = expansion
		}
	}
	out.Months = append([]string(nil), table.Months...)
	out.MonthsShort = append([]string(nil), table.MonthsShort...)
	out.Weekdays = append([]string(nil), table.Weekdays...)
	out.WeekdaysShort = append([]string(nil), table.WeekdaysShort...)
	return out
}
