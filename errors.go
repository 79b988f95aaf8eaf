package globalization

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes form the closed error taxonomy this package reports. The bridge
// maps them onto its failure payloads so hosts can switch on a code instead of
// matching message strings.
const (
	CodeMissingArgument     = "MissingArgument"
	CodeMalformedArguments  = "MalformedArguments"
	CodeInvalidFormatLength = "InvalidFormatLength"
	CodeMissingLocaleData   = "MissingLocaleData"
	CodeUnsupported         = "Unsupported"
)

func errInvalidFormatLength(length string) error {
	return goerrors.New(fmt.Sprintf("unknown format length %q", length), goerrors.CategoryValidation).
		WithTextCode(CodeInvalidFormatLength)
}

func errMissingLocaleData(locale, what string) error {
	return goerrors.New(fmt.Sprintf("locale %q has no %s data", locale, what), goerrors.CategoryValidation).
		WithTextCode(CodeMissingLocaleData)
}

func errUnparsableDate(value string) error {
	return goerrors.New(fmt.Sprintf("unable to parse date %q", value), goerrors.CategoryValidation).
		WithTextCode(CodeMalformedArguments)
}

// IsInvalidFormatLength reports whether err came from an unknown format length lookup.
func IsInvalidFormatLength(err error) bool {
	return HasTextCode(err, CodeInvalidFormatLength)
}

// IsMissingLocaleData reports whether err came from a missing locale table entry.
func IsMissingLocaleData(err error) bool {
	return HasTextCode(err, CodeMissingLocaleData)
}

// HasTextCode reports whether err carries the given taxonomy code.
func HasTextCode(err error, code string) bool {
	var gerr *goerrors.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.TextCode == code
}

// TextCode extracts the taxonomy code from err, or "" when err carries none.
func TextCode(err error) string {
	var gerr *goerrors.Error
	if !errors.As(err, &gerr) {
		return ""
	}
	return gerr.TextCode
}
