package bridge

import (
	"time"

	globalization "github.com/goliatone/go-globalization"
)

// optionsPayload is the {formatLength, selector} bag callers attach to
// date-related actions.
type optionsPayload struct {
	FormatLength string `json:"formatLength"`
	Selector     string `json:"selector"`
}

func (p *optionsPayload) patternOptions() globalization.PatternOptions {
	if p == nil {
		return globalization.PatternOptions{}
	}
	return globalization.OptionsFromSelector(p.FormatLength, globalization.Selector(p.Selector))
}

type datePayload struct {
	// Date is milliseconds since the Unix epoch, the host's native date
	// representation.
	Date    float64         `json:"date"`
	Options *optionsPayload `json:"options"`
}

type dateStringPayload struct {
	DateString string          `json:"dateString"`
	Options    *optionsPayload `json:"options"`
}

type namesPayload struct {
	Options *struct {
		Item string `json:"item"`
		Type string `json:"type"`
	} `json:"options"`
}

func getPreferredLanguage(success SuccessFunc, _ FailureFunc, _ []string, env *Env) {
	success(map[string]any{"value": env.PreferredLanguage})
}

func getLocaleName(success SuccessFunc, _ FailureFunc, _ []string, env *Env) {
	success(map[string]any{"value": env.Locale.Code()})
}

func dateToString(success SuccessFunc, failure FailureFunc, args []string, env *Env) {
	var payload datePayload
	if err := decodeArgs(args, &payload); err != nil {
		fail(failure, err)
		return
	}

	t := time.UnixMilli(int64(payload.Date))
	value, err := globalization.FormatDateTime(env.Locale, t, payload.Options.patternOptions())
	if err != nil {
		fail(failure, err)
		return
	}

	success(map[string]any{"value": value})
}

func stringToDate(success SuccessFunc, failure FailureFunc, args []string, env *Env) {
	var payload dateStringPayload
	if err := decodeArgs(args, &payload); err != nil {
		fail(failure, err)
		return
	}

	fields, err := globalization.ParseToFields(env.Locale, payload.DateString, payload.Options.patternOptions())
	if err != nil {
		fail(failure, err)
		return
	}

	success(fields)
}

func getDatePattern(success SuccessFunc, failure FailureFunc, args []string, env *Env) {
	var payload struct {
		Options *optionsPayload `json:"options"`
	}
	if err := decodeArgs(args, &payload); err != nil {
		fail(failure, err)
		return
	}

	spec, err := globalization.DerivePattern(env.Locale, payload.Options.patternOptions())
	if err != nil {
		fail(failure, err)
		return
	}

	success(spec)
}

func getDateNames(success SuccessFunc, failure FailureFunc, args []string, env *Env) {
	var payload namesPayload
	if err := decodeArgs(args, &payload); err != nil {
		fail(failure, err)
		return
	}

	opts := globalization.NameOptions{}
	if payload.Options != nil {
		opts.Item = globalization.NameItem(payload.Options.Item)
		opts.Variant = globalization.NameVariant(payload.Options.Type)
	}

	names, err := globalization.DeriveNames(env.Locale, opts)
	if err != nil {
		fail(failure, err)
		return
	}

	success(map[string]any{"value": names})
}

func isDayLightSavingsTime(success SuccessFunc, failure FailureFunc, args []string, env *Env) {
	var payload datePayload
	if err := decodeArgs(args, &payload); err != nil {
		fail(failure, err)
		return
	}

	t := time.UnixMilli(int64(payload.Date))
	success(map[string]any{"dst": globalization.IsDST(env.Locale, t)})
}

func getFirstDayOfWeek(success SuccessFunc, _ FailureFunc, _ []string, env *Env) {
	iso := globalization.FirstDayOfWeek(env.Locale)

	// Host convention: 1 when the week starts on Sunday, 2 otherwise.
	value := 2
	if iso == 7 {
		value = 1
	}

	success(map[string]any{"value": value})
}

// unsupported serves the number and currency entry points. They never
// compute anything; the reason string is part of the contract.
func unsupported(_ SuccessFunc, failure FailureFunc, _ []string, _ *Env) {
	failure(&Failure{
		Code:    globalization.CodeUnsupported,
		Message: "not supported",
	})
}
