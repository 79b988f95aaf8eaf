package globalization

import (
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// fallbackLocale is the table of last resort when neither the requested
// locale nor any of its parents has data.
const fallbackLocale = "en"

// LocaleContext is the explicit per-call locale state every helper operates
// on. It replaces the process-wide "current locale" of the original design:
// construct one at startup (or per test) and pass it around. Immutable after
// construction.
type LocaleContext struct {
	code  string
	tag   language.Tag
	table LocaleTable
}

type localeConfig struct {
	tables map[string]LocaleTable
}

// LocaleOption mutates locale context construction.
type LocaleOption func(*localeConfig)

// WithLocaleTables overlays custom locale tables on top of the built-ins.
// Overlay fields win; fields left empty keep the built-in values for the same
// code.
func WithLocaleTables(tables map[string]LocaleTable) LocaleOption {
	return func(cfg *localeConfig) {
		if len(tables) == 0 {
			return
		}
		if cfg.tables == nil {
			cfg.tables = make(map[string]LocaleTable, len(tables))
		}
		for code, table := range tables {
			cfg.tables[normalizeLocale(code)] = table
		}
	}
}

// NewLocaleContext resolves code against the available locale tables. The
// lookup tries the exact code, then its parent chain, then "en"; when no
// candidate has data the error carries MissingLocaleData.
func NewLocaleContext(code string, opts ...LocaleOption) (*LocaleContext, error) {
	cfg := localeConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	normalized := normalizeLocale(code)
	if normalized == "" {
		normalized = fallbackLocale
	}

	candidates := append(localeCandidates(normalized), fallbackLocale)
	for _, candidate := range candidates {
		table, ok := resolveLocaleTable(candidate, cfg.tables)
		if !ok {
			continue
		}

		return &LocaleContext{
			code:  normalized,
			tag:   language.Make(normalized),
			table: table,
		}, nil
	}

	return nil, errMissingLocaleData(normalized, "locale table")
}

// resolveLocaleTable merges a custom overlay for code over the built-in table
// with the same code, returning ok=false when neither exists.
func resolveLocaleTable(code string, overlays map[string]LocaleTable) (LocaleTable, bool) {
	builtin, haveBuiltin := builtinLocaleTables[code]
	overlay, haveOverlay := overlays[code]

	switch {
	case haveBuiltin && haveOverlay:
		merged := cloneLocaleTable(builtin)
		mergeLocaleTable(&merged, overlay)
		merged.Code = code
		return merged, true
	case haveBuiltin:
		return cloneLocaleTable(builtin), true
	case haveOverlay:
		merged := cloneLocaleTable(overlay)
		merged.Code = code
		return merged, true
	default:
		return LocaleTable{}, false
	}
}

// Code returns the normalized locale identifier the context was built for.
func (c *LocaleContext) Code() string {
	return c.code
}

// Tag returns the parsed language tag.
func (c *LocaleContext) Tag() language.Tag {
	return c.tag
}

// LongDateFormat looks up the locale expansion for a skeleton token such as
// "L" or "LT".
func (c *LocaleContext) LongDateFormat(token string) (string, bool) {
	expansion, ok := c.table.LongDateFormat[token]
	return expansion, ok
}

// FirstDay returns the ISO weekday (1=Monday..7=Sunday) the locale starts
// its week on.
func (c *LocaleContext) FirstDay() int {
	if c.table.FirstDay < 1 || c.table.FirstDay > 7 {
		return 1
	}
	return c.table.FirstDay
}

// MondayLocale returns the locale id used for localized rendering through
// the monday library.
func (c *LocaleContext) MondayLocale() monday.Locale {
	if c.table.MondayLocale == "" {
		return monday.LocaleEnUS
	}
	return monday.Locale(c.table.MondayLocale)
}

func (c *LocaleContext) monthNames(variant NameVariant) []string {
	if variant == NameNarrow {
		return c.table.MonthsShort
	}
	return c.table.Months
}

func (c *LocaleContext) weekdayNames(variant NameVariant) []string {
	if variant == NameNarrow {
		return c.table.WeekdaysShort
	}
	return c.table.Weekdays
}
