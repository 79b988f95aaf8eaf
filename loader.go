package globalization

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LocaleDataFile is the YAML document shape consumed by the locale data
// loader:
//
//	locales:
//	  en-AU:
//	    long_date_format:
//	      L: DD/MM/YYYY
//	    first_day: 1
type LocaleDataFile struct {
	Locales map[string]LocaleTable `yaml:"locales"`
}

// LoadLocaleData reads locale table overlays from a YAML file. The returned
// map feeds WithLocaleTables; overlay fields win over built-ins at context
// construction time.
func LoadLocaleData(path string) (map[string]LocaleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("globalization: read %s: %w", path, err)
	}

	tables, err := ParseLocaleData(data)
	if err != nil {
		return nil, fmt.Errorf("globalization: decode %s: %w", path, err)
	}
	return tables, nil
}

// ParseLocaleData decodes locale table overlays from YAML bytes.
func ParseLocaleData(data []byte) (map[string]LocaleTable, error) {
	var doc LocaleDataFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make(map[string]LocaleTable, len(doc.Locales))
	for code, table := range doc.Locales {
		normalized := normalizeLocale(code)
		if normalized == "" {
			continue
		}
		table.Code = normalized
		out[normalized] = table
	}
	return out, nil
}

// MergeLocaleData folds overlay sets together, later sets winning per field.
func MergeLocaleData(sets ...map[string]LocaleTable) map[string]LocaleTable {
	out := make(map[string]LocaleTable)
	for _, set := range sets {
		for code, table := range set {
			existing, ok := out[code]
			if !ok {
				out[code] = cloneLocaleTable(table)
				continue
			}
			mergeLocaleTable(&existing, table)
			out[code] = existing
		}
	}
	return out
}
