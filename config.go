package globalization

// Config captures locale wiring for a process: which locales are expected,
// which one is the default, and any locale table overlays loaded from data
// files.
type Config struct {
	DefaultLocale string
	Locales       []string

	tables    map[string]LocaleTable
	dataFiles []string
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	for _, path := range cfg.dataFiles {
		tables, err := LoadLocaleData(path)
		if err != nil {
			return nil, err
		}
		cfg.tables = MergeLocaleData(cfg.tables, tables)
	}

	cfg.Locales = normalizeLocales(cfg.Locales)
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)

	if cfg.DefaultLocale == "" {
		if len(cfg.Locales) > 0 {
			cfg.DefaultLocale = cfg.Locales[0]
		} else {
			cfg.DefaultLocale = fallbackLocale
		}
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when a caller does not name one.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales registers the locales the process expects to serve.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithLocaleData overlays custom locale tables on the built-ins.
func WithLocaleData(tables map[string]LocaleTable) Option {
	return func(c *Config) error {
		c.tables = MergeLocaleData(c.tables, tables)
		return nil
	}
}

// WithDataFiles queues YAML locale data files to load during NewConfig.
func WithDataFiles(paths ...string) Option {
	return func(c *Config) error {
		c.dataFiles = append(c.dataFiles, paths...)
		return nil
	}
}

// Context resolves a LocaleContext for the given locale using the configured
// overlays. An empty locale resolves the default.
func (c *Config) Context(locale string) (*LocaleContext, error) {
	if locale == "" {
		locale = c.DefaultLocale
	}
	return NewLocaleContext(locale, WithLocaleTables(c.tables))
}

// DefaultContext resolves the default locale.
func (c *Config) DefaultContext() (*LocaleContext, error) {
	return c.Context(c.DefaultLocale)
}
