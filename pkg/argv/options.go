package argv

// Options maps an option name to all of its values (in the order they were found). A present key with no
// values means the option is a flag.
type Options map[string][]string

// BuildOptions folds the options list into the Options map. Values of repeated options are merged (appended)
// into the same key, never overwritten.
func BuildOptions(list []Option) Options {
	var opts = make(Options, len(list))

	for _, o := range list {
		if existing, ok := opts[o.Name]; ok {
			opts[o.Name] = append(existing, o.Values...)

			continue
		}

		var values = make([]string, len(o.Values))

		copy(values, o.Values)

		opts[o.Name] = values
	}

	return opts
}

// Has reports whether the option is present.
func (o Options) Has(name string) bool { _, ok := o[name]; return ok }

// Get returns a copy of the option values and a boolean flag indicating whether the option is present.
func (o Options) Get(name string) ([]string, bool) {
	values, ok := o[name]
	if !ok {
		return nil, false
	}

	var out = make([]string, len(values))

	copy(out, values)

	return out, true
}

// First returns the first value of the option. The boolean flag is false when the option is missing or
// has no values.
func (o Options) First(name string) (string, bool) {
	if values := o[name]; len(values) > 0 {
		return values[0], true
	}

	return "", false
}

// Names returns the options names (order is not guaranteed).
func (o Options) Names() []string {
	var names = make([]string, 0, len(o))

	for name := range o {
		names = append(names, name)
	}

	return names
}

// Clone returns a deep copy of the options.
func (o Options) Clone() Options {
	var out = make(Options, len(o))

	for name, values := range o {
		var v = make([]string, len(values))

		copy(v, values)

		out[name] = v
	}

	return out
}
