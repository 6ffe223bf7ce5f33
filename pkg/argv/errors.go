package argv

import "strings"

// ErrorList is an ordered list of human-readable validation errors.
type ErrorList []string

// Error joins all the messages.
func (l ErrorList) Error() string { return strings.Join(l, "; ") }

// MissingOption returns the message for the required but absent option.
func MissingOption(name string) string { return "Option " + name + " is missing" }

// OptionWithoutValue returns the message for the required option that was given as a flag.
func OptionWithoutValue(name string) string { return "Option " + name + " requires a value" }

// InvalidArgCount is the message for the wrong positional arguments count.
const InvalidArgCount = "Invalid number of args"
