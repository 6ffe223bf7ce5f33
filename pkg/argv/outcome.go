package argv

import "fmt"

// OutcomeKind is a resolution result kind.
type OutcomeKind uint8

const (
	NoMatch          OutcomeKind = iota // no descriptor name matched the invocation name
	ValidationFailed                    // the name matched, but the validation (or building) failed
	Matched                             // the command was built
)

// String returns a human-readable representation of the kind.
func (k OutcomeKind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case ValidationFailed:
		return "validation failed"
	case Matched:
		return "matched"
	}

	return fmt.Sprintf("kind(%d)", k)
}

// Outcome is the result of the arguments resolution.
type Outcome[C any] struct {
	kind    OutcomeKind
	command C
	errs    ErrorList
	index   int
}

func noMatch[C any]() Outcome[C] { return Outcome[C]{kind: NoMatch, index: -1} }

func failed[C any](index int, errs ErrorList) Outcome[C] {
	return Outcome[C]{kind: ValidationFailed, errs: errs, index: index}
}

func matched[C any](index int, c C) Outcome[C] {
	return Outcome[C]{kind: Matched, command: c, index: index}
}

// Kind returns the outcome kind.
func (o Outcome[C]) Kind() OutcomeKind { return o.kind }

// Command returns the built command. The boolean flag is true for the Matched outcome only.
func (o Outcome[C]) Command() (C, bool) { return o.command, o.kind == Matched }

// Errors returns a copy of the validation errors (non-empty for the ValidationFailed outcome only).
func (o Outcome[C]) Errors() ErrorList {
	if len(o.errs) == 0 {
		return nil
	}

	var out = make(ErrorList, len(o.errs))

	copy(out, o.errs)

	return out
}

// Err returns the validation errors as an error (nil unless the outcome is ValidationFailed).
func (o Outcome[C]) Err() error {
	if o.kind != ValidationFailed {
		return nil
	}

	return o.Errors()
}

// DescriptorIndex returns the index of the descriptor that decided the outcome, or -1 for NoMatch.
func (o Outcome[C]) DescriptorIndex() int { return o.index }
