package argv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorMode defines how many errors the validators report.
type ErrorMode uint8

const (
	ShortCircuit ErrorMode = iota // report the first error only (default)
	Accumulate                    // report every error found
)

// String returns a lower-case ASCII representation of the mode.
func (m ErrorMode) String() string {
	switch m {
	case ShortCircuit:
		return "first"
	case Accumulate:
		return "all"
	}

	return fmt.Sprintf("mode(%d)", m)
}

// ParseErrorMode parses the mode name (case is ignored).
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(s) {
	case "first", "short-circuit", "": // make the zero value useful
		return ShortCircuit, nil
	case "all", "accumulate":
		return Accumulate, nil
	}

	return ErrorMode(0), fmt.Errorf("unrecognized error mode: %q", s)
}

// EnsureRequiredOptions checks that every required option (in the given order) is present. The options map
// is returned unchanged on success.
func EnsureRequiredOptions(mode ErrorMode, required []string, opts Options) (Options, error) {
	var errs ErrorList

	for _, name := range required {
		if opts.Has(name) {
			continue
		}

		errs = append(errs, MissingOption(name))

		if mode == ShortCircuit {
			break
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return opts, nil
}

// EnsureArgCount checks the positional arguments count. Arguments are returned unchanged on success.
func EnsureArgCount(n int, args []string) ([]string, error) {
	if len(args) != n {
		return nil, ErrorList{InvalidArgCount}
	}

	return args, nil
}

// Validate runs the required options check and then the arguments count check. In the ShortCircuit mode the
// first failure wins, in the Accumulate mode the errors of both checks are concatenated.
func Validate(mode ErrorMode, argCount int, required []string, inv Invocation) error {
	var errs ErrorList

	if _, err := EnsureRequiredOptions(mode, required, inv.opts); err != nil {
		if mode == ShortCircuit {
			return err
		}

		errs = append(errs, asErrorList(err)...)
	}

	if _, err := EnsureArgCount(argCount, inv.args); err != nil {
		errs = append(errs, asErrorList(err)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// asErrorList converts any error into the ErrorList.
func asErrorList(err error) ErrorList {
	if err == nil {
		return nil
	}

	var l ErrorList

	if errors.As(err, &l) {
		return l
	}

	return ErrorList{err.Error()}
}
