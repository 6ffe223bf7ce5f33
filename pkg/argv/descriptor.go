package argv

// BuildFunc builds the command value from already validated invocation data.
type BuildFunc[C any] func(Invocation) (C, error)

// Descriptor declares, for one command kind, its name, how many positional arguments are required, which
// options must be present and how to build the final value.
type Descriptor[C any] struct {
	Tag             string   // command name
	ArgCount        int      // exact positional arguments count
	RequiredOptions []string // checked in this order
	Build           BuildFunc[C]
}

// Matches reports whether the invocation name equals the descriptor tag.
func (d Descriptor[C]) Matches(inv Invocation) bool { return inv.name == d.Tag }

// Construct validates the invocation and builds the command. The matched flag is false (and the error is
// nil) when the invocation name differs from the descriptor tag - that is not a failure, just "try the
// next descriptor".
func (d Descriptor[C]) Construct(mode ErrorMode, inv Invocation) (_ C, matched bool, _ error) {
	var empty C

	if !d.Matches(inv) {
		return empty, false, nil
	}

	if err := Validate(mode, d.ArgCount, d.RequiredOptions, inv); err != nil {
		return empty, true, err
	}

	if d.Build == nil {
		return empty, true, ErrorList{"Command " + d.Tag + " has no builder"}
	}

	c, err := d.Build(inv)
	if err != nil {
		if errs := asErrorList(err); len(errs) > 0 {
			return empty, true, errs
		}

		return empty, true, ErrorList{"Command " + d.Tag + " can't be built"}
	}

	if any(c) == nil { // nil interface value is never a complete command
		return empty, true, ErrorList{"Command " + d.Tag + " can't be built"}
	}

	return c, true, nil
}
