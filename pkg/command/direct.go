package command

import "github.com/tarampampam/clparser/pkg/argv"

// Comm1 builds the Command1 from already tokenized parts. The matched flag is false when the name is not
// "comm1". Validation stops on the first error.
func Comm1(name string, args []string, opts argv.Options) (_ Command1, matched bool, _ error) {
	c, ok, err := construct(Descriptor1(), name, args, opts)
	if c == nil {
		return Command1{}, ok, err
	}

	return c.(Command1), ok, err //nolint:forcetypeassert
}

// Comm2 builds the Command2. See Comm1 for details.
func Comm2(name string, args []string, opts argv.Options) (_ Command2, matched bool, _ error) {
	c, ok, err := construct(Descriptor2(), name, args, opts)
	if c == nil {
		return Command2{}, ok, err
	}

	return c.(Command2), ok, err //nolint:forcetypeassert
}

// Comm3 builds the Command3. See Comm1 for details.
func Comm3(name string, args []string, opts argv.Options) (_ Command3, matched bool, _ error) {
	c, ok, err := construct(Descriptor3(), name, args, opts)
	if c == nil {
		return Command3{}, ok, err
	}

	return c.(Command3), ok, err //nolint:forcetypeassert
}

func construct(d argv.Descriptor[Command], name string, args []string, opts argv.Options) (Command, bool, error) {
	return d.Construct(argv.ShortCircuit, argv.NewInvocation(name, args, opts))
}
