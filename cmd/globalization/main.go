// Command globalization drives the bridge entry points from the command
// line, standing in for the host shell during development.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	globalization "github.com/goliatone/go-globalization"
	"github.com/goliatone/go-globalization/bridge"
)

type cliConfig struct {
	locale    string
	action    string
	payload   string
	dataFiles []string
	verbose   bool
}

type fileFlag struct {
	items []string
}

func (f *fileFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *fileFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value != "" {
		f.items = append(f.items, value)
	}
	return nil
}

func main() {
	cfg := parseFlags()

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "globalization: %v\n", err)
	os.Exit(1)
}

func parseFlags() cliConfig {
	var cfg cliConfig
	var files fileFlag

	flag.StringVar(&cfg.locale, "locale", "en", "locale the bridge environment resolves")
	flag.StringVar(&cfg.action, "action", "getDatePattern", "bridge action to invoke")
	flag.StringVar(&cfg.payload, "payload", "", "JSON payload passed as the action argument")
	flag.Var(&files, "data", "YAML locale data file to overlay. Repeat flag to add more.")
	flag.BoolVar(&cfg.verbose, "v", false, "enable debug tracing")

	flag.Parse()

	cfg.dataFiles = files.items
	return cfg
}

func run(cfg cliConfig) error {
	opts := []globalization.Option{
		globalization.WithDefaultLocale(cfg.locale),
	}
	if len(cfg.dataFiles) > 0 {
		opts = append(opts, globalization.WithDataFiles(cfg.dataFiles...))
	}

	conf, err := globalization.NewConfig(opts...)
	if err != nil {
		return err
	}

	ctx, err := conf.DefaultContext()
	if err != nil {
		return err
	}

	level := glog.Error
	if cfg.verbose {
		level = glog.Debug
	}

	b := bridge.New(bridge.WithLogger(glog.NewLogger(
		glog.WithLevel(level),
		glog.WithLoggerTypeConsole(),
	)))

	env := &bridge.Env{
		Locale:            ctx,
		PreferredLanguage: conf.DefaultLocale,
	}

	var args []string
	if cfg.payload != "" {
		args = []string{url.QueryEscape(cfg.payload)}
	}

	var callErr error
	b.Exec(cfg.action,
		func(result any) {
			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				callErr = err
				return
			}
			fmt.Println(string(encoded))
		},
		func(failure *bridge.Failure) {
			callErr = fmt.Errorf("%s: %s", failure.Code, failure.Message)
		},
		args, env)

	return callErr
}
