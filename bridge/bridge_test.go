package bridge

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	globalization "github.com/goliatone/go-globalization"
)

func newEnv(t *testing.T, locale string) *Env {
	t.Helper()

	ctx, err := globalization.NewLocaleContext(locale)
	if err != nil {
		t.Fatalf("NewLocaleContext(%q): %v", locale, err)
	}
	return &Env{Locale: ctx, PreferredLanguage: locale}
}

func encodeArgs(t *testing.T, payload any) []string {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return []string{url.QueryEscape(string(raw))}
}

// exec runs one action and returns whichever callback fired.
func exec(t *testing.T, b *Bridge, action string, args []string, env *Env) (any, *Failure) {
	t.Helper()

	var result any
	var failure *Failure
	called := 0

	b.Exec(action,
		func(r any) { result = r; called++ },
		func(f *Failure) { failure = f; called++ },
		args, env)

	if called != 1 {
		t.Fatalf("%s: callbacks fired %d times, want exactly one", action, called)
	}
	return result, failure
}

func TestUnsupportedActions(t *testing.T) {
	b := New()
	env := newEnv(t, "en")

	actions := []string{"numberToString", "stringToNumber", "getNumberPattern", "getCurrencyPattern"}
	for _, action := range actions {
		t.Run(action, func(t *testing.T) {
			// Arguments, valid or not, must never trigger computation.
			for _, args := range [][]string{nil, encodeArgs(t, map[string]any{"value": 42})} {
				result, failure := exec(t, b, action, args, env)
				if result != nil {
					t.Fatalf("unexpected success: %v", result)
				}
				if failure.Message != "not supported" {
					t.Fatalf("message = %q, want %q", failure.Message, "not supported")
				}
				if failure.Code != globalization.CodeUnsupported {
					t.Fatalf("code = %q, want %q", failure.Code, globalization.CodeUnsupported)
				}
			}
		})
	}
}

func TestMissingAndMalformedArguments(t *testing.T) {
	b := New()
	env := newEnv(t, "en")

	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{
			name:     "no arguments",
			args:     nil,
			wantCode: globalization.CodeMissingArgument,
		},
		{
			name:     "empty payload",
			args:     []string{""},
			wantCode: globalization.CodeMalformedArguments,
		},
		{
			name:     "invalid json",
			args:     []string{url.QueryEscape("{not-json")},
			wantCode: globalization.CodeMalformedArguments,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, failure := exec(t, b, "getDatePattern", tc.args, env)
			if result != nil {
				t.Fatalf("unexpected success: %v", result)
			}
			if failure.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", failure.Code, tc.wantCode)
			}
		})
	}
}

func TestGetPreferredLanguageAndLocaleName(t *testing.T) {
	b := New()
	env := newEnv(t, "es")

	result, failure := exec(t, b, "getPreferredLanguage", nil, env)
	if failure != nil {
		t.Fatalf("failure: %v", failure)
	}
	if got := result.(map[string]any)["value"]; got != "es" {
		t.Fatalf("preferred language = %v, want es", got)
	}

	result, failure = exec(t, b, "getLocaleName", nil, env)
	if failure != nil {
		t.Fatalf("failure: %v", failure)
	}
	if got := result.(map[string]any)["value"]; got != "es" {
		t.Fatalf("locale name = %v, want es", got)
	}
}

func TestGetDatePattern(t *testing.T) {
	b := New()
	env := newEnv(t, "en")

	args := encodeArgs(t, map[string]any{
		"options": map[string]any{
			"formatLength": "short",
			"selector":     "date and time",
		},
	})

	result, failure := exec(t, b, "getDatePattern", args, env)
	if failure != nil {
		t.Fatalf("failure: %v", failure)
	}

	spec, ok := result.(globalization.DateFormatSpec)
	if !ok {
		t.Fatalf("result type %T, want DateFormatSpec", result)
	}
	if spec.Pattern != "MM/DD/YYYY h:mm A" {
		t.Fatalf("pattern = %q, want MM/DD/YYYY h:mm A", spec.Pattern)
	}
	if spec.DSTOffsetSeconds != 0 {
		t.Fatalf("dst offset = %d, want 0", spec.DSTOffsetSeconds)
	}
}

func TestGetDatePatternInvalidLength(t *testing.T) {
	b := New()
	env := newEnv(t, "en")

	args := encodeArgs(t, map[string]any{
		"options": map[string]any{"formatLength": "gigantic"},
	})

	_, failure := exec(t, b, "getDatePattern", args, env)
	if failure == nil {
		t.Fatal("expected failure")
	}
	if failure.Code != globalization.CodeInvalidFormatLength {
		t.Fatalf("code = %q, want %q", failure.Code, globalization.CodeInvalidFormatLength)
	}
}

func TestStringToDate(t *testing.T) {
	b := New()
	env := newEnv(t, "en")

	args := encodeArgs(t, map[string]any{
		"dateString": "2011-04-11T10:30:00",
		"options":    map[string]any{"selector": "date"},
	})

	result, failure := exec(t, b, "stringToDate", args, env)
	if failure != nil {
		t.Fatalf("failure: %v", failure)
	}

	fields, ok := result.(globalization.DateFields)
	if !ok {
		t.Fatalf("result type %T, want DateFields", result)
	}
	if *fields.Year != 2011 || *fields.Month != 3 || *fields.Day != 11 {
		t.Fatalf("fields = %d-%d-%d, want 2011-3-11", *fields.Year, *fields.Month, *fields.Day)
	}
	if fields.Hour != nil {
		t.Fatalf("hour populated for date selector: %d", *fields.Hour)
	}
}

func TestDateToStringRoundTrip(t *testing.T) {
	b := New()
	env := newEnv(t, "en")

	moment := time.Date(2011, time.April, 11, 10, 30, 0, 0, time.Local)
	args := encodeArgs(t, map[string]any{
		"date": moment.UnixMilli(),
		"options": map[string]any{
			"formatLength": "short",
			"selector":     "date",
		},
	})

	result, failure := exec(t, b, "dateToString", args, env)
	if failure != nil {
		t.Fatalf("failure: %v", failure)
	}
	rendered := result.(map[string]any)["value"].(string)
	if rendered != "04/11/2011" {
		t.Fatalf("rendered = %q, want 04/11/2011", rendered)
	}

	back := encodeArgs(t, map[string]any{
		"dateString": rendered,
		"options":    map[string]any{"selector": "date"},
	})
	result, failure = exec(t, b, "stringToDate", back, env)
	if failure != nil {
		t.Fatalf("failure: %v", failure)
	}
	fields := result.(globalization.DateFields)
	if *fields.Year != 2011 || *fields.Month != 3 || *fields.Day != 11 {
		t.Fatalf("round trip = %d-%d-%d, want 2011-3-11", *fields.Year, *fields.Month, *fields.Day)
	}
}

func TestGetDateNames(t *testing.T) {
	b := New()
	env := newEnv(t, "en")

	args := encodeArgs(t, map[string]any{
		"options": map[string]any{"item": "days", "type": "narrow"},
	})

	result, failure := exec(t, b, "getDateNames", args, env)
	if failure != nil {
		t.Fatalf("failure: %v", failure)
	}

	names := result.(map[string]any)["value"].([]string)
	if len(names) != 7 {
		t.Fatalf("len = %d, want 7", len(names))
	}
	if names[0] != "Sun" {
		t.Fatalf("first = %q, want Sun", names[0])
	}
}

func TestIsDayLightSavingsTime(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	b := New()
	env := newEnv(t, "en")

	july := time.Date(2023, time.July, 1, 12, 0, 0, 0, loc)
	args := encodeArgs(t, map[string]any{"date": july.UnixMilli()})

	result, failure := exec(t, b, "isDayLightSavingsTime", args, env)
	if failure != nil {
		t.Fatalf("failure: %v", failure)
	}

	// UnixMilli pins the instant but the evaluation happens in the host
	// zone, so only assert the shape of the answer.
	if _, ok := result.(map[string]any)["dst"].(bool); !ok {
		t.Fatal("dst flag missing from result")
	}
}

func TestGetFirstDayOfWeek(t *testing.T) {
	b := New()

	tests := []struct {
		locale string
		want   int
	}{
		{"en", 1}, // Sunday-first remaps to 1
		{"es", 2}, // Monday-first remaps to 2
		{"de", 2},
		{"ja", 1},
	}

	for _, tc := range tests {
		env := newEnv(t, tc.locale)
		result, failure := exec(t, b, "getFirstDayOfWeek", nil, env)
		if failure != nil {
			t.Fatalf("failure for %s: %v", tc.locale, failure)
		}
		if got := result.(map[string]any)["value"].(int); got != tc.want {
			t.Fatalf("first day(%s) = %d, want %d", tc.locale, got, tc.want)
		}
	}
}

func TestUnknownAction(t *testing.T) {
	b := New()
	env := newEnv(t, "en")

	result, failure := exec(t, b, "teleport", nil, env)
	if result != nil {
		t.Fatalf("unexpected success: %v", result)
	}
	if failure.Code != globalization.CodeUnsupported {
		t.Fatalf("code = %q, want %q", failure.Code, globalization.CodeUnsupported)
	}
}
