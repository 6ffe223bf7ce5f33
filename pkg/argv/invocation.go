package argv

// Invocation is a tokenized, not yet validated command call. It can't be changed after creation: every
// accessor returns a copy.
type Invocation struct {
	name string
	args []string
	opts Options
}

// NewInvocation creates an Invocation from already tokenized parts.
func NewInvocation(name string, args []string, opts Options) Invocation {
	var a = make([]string, len(args))

	copy(a, args)

	if opts == nil {
		opts = Options{}
	}

	return Invocation{name: name, args: a, opts: opts.Clone()}
}

// Name returns the command name.
func (i Invocation) Name() string { return i.name }

// Args returns the positional arguments.
func (i Invocation) Args() []string {
	var out = make([]string, len(i.args))

	copy(out, i.args)

	return out
}

// Arg returns the positional argument by index.
func (i Invocation) Arg(n int) (string, bool) {
	if n < 0 || n >= len(i.args) {
		return "", false
	}

	return i.args[n], true
}

// Options returns the options map.
func (i Invocation) Options() Options { return i.opts.Clone() }

// Option returns the option values.
func (i Invocation) Option(name string) ([]string, bool) { return i.opts.Get(name) }
