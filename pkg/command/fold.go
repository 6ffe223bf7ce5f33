package command

import (
	"fmt"

	"github.com/tarampampam/clparser/pkg/argv"
)

// Handlers holds one handler per known command. All of them must be set.
type Handlers[X any] struct {
	OnCommand1 func(Command1) X
	OnCommand2 func(Command2) X
	OnCommand3 func(Command3) X
}

// Fold invokes exactly one handler, selected by the command kind. It panics on a nil command or a missing
// handler, since both are programming errors.
func Fold[X any](h Handlers[X], c Command) X {
	switch c := c.(type) {
	case Command1:
		return call(h.OnCommand1, c)
	case Command2:
		return call(h.OnCommand2, c)
	case Command3:
		return call(h.OnCommand3, c)
	}

	panic(fmt.Sprintf("command: unexpected command %T", c))
}

func call[C Command, X any](fn func(C) X, c C) X {
	if fn == nil {
		panic("command: no handler for " + c.Tag().String())
	}

	return fn(c)
}

// OutcomeHandlers extends Handlers with the "no match" and "validation failed" handlers.
type OutcomeHandlers[X any] struct {
	Handlers[X]

	OnNoMatch func() X
	OnError   func(argv.ErrorList) X
}

// FoldOutcome invokes exactly one handler, selected by the outcome kind (and the command kind for the
// matched outcome).
func FoldOutcome[X any](h OutcomeHandlers[X], out argv.Outcome[Command]) X {
	switch out.Kind() {
	case argv.NoMatch:
		if h.OnNoMatch == nil {
			panic("command: no handler for the no match outcome")
		}

		return h.OnNoMatch()
	case argv.ValidationFailed:
		if h.OnError == nil {
			panic("command: no handler for the validation failed outcome")
		}

		return h.OnError(out.Errors())
	}

	c, _ := out.Command()

	return Fold(h.Handlers, c)
}
