package argv

import "strings"

// OptionPrefix is the prefix every option marker starts with.
const OptionPrefix = "--"

// IsOption reports whether the argument is an option marker.
func IsOption(arg string) bool { return strings.HasPrefix(arg, OptionPrefix) }

// Option is a single `--name [value...]` occurrence in the arguments list:
//   - no values: the option is a flag
//   - one value: the option has a single value
//   - more values: the option has multiple values
type Option struct {
	Name   string
	Values []string
}

// IsFlag reports whether the option has no values.
func (o Option) IsFlag() bool { return len(o.Values) == 0 }

// Parse tokenizes the arguments list. The first element is always expected to be the command name.
// It never fails: an empty list produces an invocation with an empty name.
func Parse(args []string) Invocation {
	if len(args) == 0 {
		return Invocation{opts: Options{}}
	}

	return Invocation{
		name: args[0],
		args: PositionalArgs(args),
		opts: BuildOptions(OptionList(args[1:])),
	}
}

// PositionalArgs returns the arguments placed after the command name and before the first option marker.
func PositionalArgs(args []string) []string {
	var positional = make([]string, 0)

	if len(args) < 2 { //nolint:gomnd
		return positional
	}

	for _, arg := range args[1:] {
		if IsOption(arg) {
			break // positional scanning stops permanently on the first option
		}

		positional = append(positional, arg)
	}

	return positional
}

// OptionList scans the arguments from left to right and returns every option occurrence in order.
// Non-marker elements found before the first option marker belong to no option and are skipped.
func OptionList(args []string) []Option {
	var list = make([]Option, 0)

	for _, arg := range args {
		if IsOption(arg) {
			list = append(list, Option{Name: arg[len(OptionPrefix):], Values: make([]string, 0)})

			continue
		}

		if last := len(list) - 1; last >= 0 {
			list[last].Values = append(list[last].Values, arg)
		}
	}

	return list
}

// OptionValues returns a lookup function for the options of the given arguments list.
func OptionValues(args []string) func(name string) ([]string, bool) {
	var opts = BuildOptions(OptionList(args))

	return opts.Get
}
