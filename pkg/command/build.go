package command

import (
	"github.com/tarampampam/clparser/pkg/argv"
	"github.com/tarampampam/clparser/pkg/optional"
)

// Descriptor1 describes the "comm1" command.
func Descriptor1() argv.Descriptor[Command] {
	return argv.Descriptor[Command]{
		Tag:             Tag1.String(),
		ArgCount:        1,
		RequiredOptions: []string{"o1", "o2"},
		Build: func(inv argv.Invocation) (Command, error) {
			var (
				v  = newExtractor(inv)
				c1 = Command1{arg: v.arg(), o1: v.first("o1"), o2: v.first("o2")}
			)

			if err := v.err(); err != nil {
				return nil, err
			}

			return c1, nil
		},
	}
}

// Descriptor2 describes the "comm2" command.
func Descriptor2() argv.Descriptor[Command] {
	return argv.Descriptor[Command]{
		Tag:             Tag2.String(),
		ArgCount:        1,
		RequiredOptions: []string{"o3", "o4"},
		Build: func(inv argv.Invocation) (Command, error) {
			var (
				v  = newExtractor(inv)
				c2 = Command2{arg: v.arg(), o3: v.first("o3"), o4: v.first("o4")}
			)

			if err := v.err(); err != nil {
				return nil, err
			}

			return c2, nil
		},
	}
}

// Descriptor3 describes the "comm3" command. The "opt" option is optional and may have any values count.
func Descriptor3() argv.Descriptor[Command] {
	return argv.Descriptor[Command]{
		Tag:             Tag3.String(),
		ArgCount:        1,
		RequiredOptions: []string{"req"},
		Build: func(inv argv.Invocation) (Command, error) {
			var (
				v  = newExtractor(inv)
				c3 = Command3{arg: v.arg(), req: v.first("req"), opt: v.all("opt")}
			)

			if err := v.err(); err != nil {
				return nil, err
			}

			return c3, nil
		},
	}
}

// Descriptors returns descriptors of all the known commands.
func Descriptors() []argv.Descriptor[Command] {
	return []argv.Descriptor[Command]{Descriptor1(), Descriptor2(), Descriptor3()}
}

// NewResolver creates a resolver for all the known commands.
func NewResolver(opts ...argv.ResolverOption) *argv.Resolver[Command] {
	return argv.NewResolver(Descriptors(), opts...)
}

// Resolve resolves the arguments list into one of the known commands.
func Resolve(args []string, opts ...argv.ResolverOption) argv.Outcome[Command] {
	return NewResolver(opts...).Resolve(args)
}

// extractor extracts the command fields from the validated invocation, collecting the extraction errors.
type extractor struct {
	inv  argv.Invocation
	errs argv.ErrorList
}

func newExtractor(inv argv.Invocation) *extractor { return &extractor{inv: inv} }

func (v *extractor) arg() string { a, _ := v.inv.Arg(0); return a }

// first returns the first option value. The option given as a flag is an error.
func (v *extractor) first(name string) string {
	values, _ := v.inv.Option(name)
	if len(values) == 0 {
		v.errs = append(v.errs, argv.OptionWithoutValue(name))

		return ""
	}

	return values[0]
}

func (v *extractor) all(name string) optional.Optional[[]string] {
	if values, ok := v.inv.Option(name); ok {
		return optional.Some(values)
	}

	return optional.None[[]string]()
}

func (v *extractor) err() error {
	if len(v.errs) == 0 {
		return nil
	}

	return v.errs
}
