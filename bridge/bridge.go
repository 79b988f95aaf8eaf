// Package bridge exposes the globalization helpers to a host shell through
// callback-style entry points. Each entry point decodes a single URI-escaped
// JSON argument, invokes the locale helpers, and reports through a success or
// failure callback. Handlers hold no mutable state and may be invoked
// concurrently.
package bridge

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	globalization "github.com/goliatone/go-globalization"
)

// SuccessFunc receives the handler result payload.
type SuccessFunc func(result any)

// FailureFunc receives the failure report for an entry point.
type FailureFunc func(failure *Failure)

// Failure carries the closed error taxonomy across the bridge boundary:
// Code is one of the globalization.Code* values, Message the short
// human-readable reason the host displays.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (f *Failure) Error() string {
	return f.Message
}

// Env is the per-process host environment handed to every entry point. It is
// built once at startup from the platform-reported language tag and never
// mutated by handlers.
type Env struct {
	Locale            *globalization.LocaleContext
	PreferredLanguage string
}

// Handler is one bridge capability.
type Handler func(success SuccessFunc, failure FailureFunc, args []string, env *Env)

// Bridge routes host actions to their handlers.
type Bridge struct {
	handlers map[string]Handler
	logger   glog.Logger
}

type bridgeConfig struct {
	logger glog.Logger
}

// BridgeOption mutates bridge construction.
type BridgeOption func(*bridgeConfig)

// WithLogger installs the logger used for debug-level call tracing. Errors
// are never logged; they only flow to the failure callback.
func WithLogger(logger glog.Logger) BridgeOption {
	return func(cfg *bridgeConfig) {
		cfg.logger = logger
	}
}

// New builds a bridge with every entry point registered.
func New(opts ...BridgeOption) *Bridge {
	cfg := bridgeConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = glog.NewLogger(glog.WithLevel(glog.Error))
	}

	b := &Bridge{
		handlers: make(map[string]Handler),
		logger:   cfg.logger,
	}

	b.register("getPreferredLanguage", getPreferredLanguage)
	b.register("getLocaleName", getLocaleName)
	b.register("dateToString", dateToString)
	b.register("stringToDate", stringToDate)
	b.register("getDatePattern", getDatePattern)
	b.register("getDateNames", getDateNames)
	b.register("isDayLightSavingsTime", isDayLightSavingsTime)
	b.register("getFirstDayOfWeek", getFirstDayOfWeek)
	b.register("numberToString", unsupported)
	b.register("stringToNumber", unsupported)
	b.register("getNumberPattern", unsupported)
	b.register("getCurrencyPattern", unsupported)

	return b
}

func (b *Bridge) register(action string, handler Handler) {
	b.handlers[action] = handler
}

// Handler returns the entry point registered for action.
func (b *Bridge) Handler(action string) (Handler, bool) {
	handler, ok := b.handlers[action]
	return handler, ok
}

// Actions lists the registered entry point names.
func (b *Bridge) Actions() []string {
	out := make([]string, 0, len(b.handlers))
	for action := range b.handlers {
		out = append(out, action)
	}
	return out
}

// Exec dispatches one call. Unknown actions report through the failure
// callback like any other bad input.
func (b *Bridge) Exec(action string, success SuccessFunc, failure FailureFunc, args []string, env *Env) {
	b.logger.Debug("bridge: dispatch", "action", action, "args", len(args))

	handler, ok := b.handlers[action]
	if !ok {
		failure(&Failure{
			Code:    globalization.CodeUnsupported,
			Message: "unknown action " + action,
		})
		return
	}

	handler(success, failure, args, env)
}

// decodeArgs unmarshals the single URI-escaped JSON argument into dst.
func decodeArgs(args []string, dst any) error {
	if len(args) == 0 {
		return goerrors.New("missing arguments", goerrors.CategoryValidation).
			WithTextCode(globalization.CodeMissingArgument)
	}

	raw, err := url.QueryUnescape(args[0])
	if err != nil {
		return malformedArgs(err)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return malformedArgs(nil)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return malformedArgs(err)
	}

	return nil
}

func malformedArgs(cause error) error {
	if cause == nil {
		return goerrors.New("malformed arguments", goerrors.CategoryValidation).
			WithTextCode(globalization.CodeMalformedArguments)
	}
	return goerrors.Wrap(cause, goerrors.CategoryValidation, "malformed arguments").
		WithTextCode(globalization.CodeMalformedArguments)
}

// fail converts an internal error into the failure payload, preserving the
// taxonomy code when one is attached.
func fail(failure FailureFunc, err error) {
	code := globalization.TextCode(err)
	if code == "" {
		code = globalization.CodeMalformedArguments
	}

	message := err.Error()
	var gerr *goerrors.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		message = gerr.Message
	}

	failure(&Failure{Code: code, Message: message})
}
