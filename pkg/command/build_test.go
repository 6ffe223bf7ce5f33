package command_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarampampam/clparser/pkg/argv"
	"github.com/tarampampam/clparser/pkg/command"
)

func ExampleResolve() {
	var out = command.Resolve([]string{"comm3", "file.txt", "--req", "yes", "--opt", "a", "b"})

	c, _ := out.Command()

	fmt.Println(command.Fold(command.Handlers[string]{
		OnCommand1: func(c command.Command1) string { return "comm1 " + c.Arg() },
		OnCommand2: func(c command.Command2) string { return "comm2 " + c.Arg() },
		OnCommand3: func(c command.Command3) string {
			opt, _ := c.Opt().Get()

			return fmt.Sprintf("comm3 %s %s %v", c.Arg(), c.Req(), opt)
		},
	}, c))

	// output:
	// comm3 file.txt yes [a b]
}

func TestDescriptors(t *testing.T) {
	var tags = make([]string, 0, 3)

	for _, d := range command.Descriptors() {
		tags = append(tags, d.Tag)

		assert.Equal(t, 1, d.ArgCount)
		assert.NotNil(t, d.Build)
	}

	assert.Equal(t, []string{"comm1", "comm2", "comm3"}, tags)
	assert.Equal(t, []string{"o1", "o2"}, command.Descriptor1().RequiredOptions)
	assert.Equal(t, []string{"o3", "o4"}, command.Descriptor2().RequiredOptions)
	assert.Equal(t, []string{"req"}, command.Descriptor3().RequiredOptions)
}

func TestResolve(t *testing.T) {
	t.Run("matched", func(t *testing.T) {
		var out = command.Resolve([]string{"comm1", "arg1", "--o1", "a", "--o2", "b"})

		assert.Equal(t, argv.Matched, out.Kind())

		c, ok := out.Command()

		assert.True(t, ok)
		assert.Equal(t, command.Tag1, c.Tag())

		c1, ok := c.(command.Command1)

		assert.True(t, ok)
		assert.Equal(t, "arg1", c1.Arg())
		assert.Equal(t, "a", c1.O1())
		assert.Equal(t, "b", c1.O2())
	})

	t.Run("o1 is missing", func(t *testing.T) {
		var out = command.Resolve([]string{"comm1", "arg1", "--o2", "b"})

		assert.Equal(t, argv.ValidationFailed, out.Kind())
		assert.Equal(t, argv.ErrorList{"Option o1 is missing"}, out.Errors())
	})

	t.Run("accumulate", func(t *testing.T) {
		var out = command.Resolve([]string{"comm1"}, argv.WithErrorMode(argv.Accumulate))

		assert.Equal(t,
			argv.ErrorList{"Option o1 is missing", "Option o2 is missing", "Invalid number of args"},
			out.Errors(),
		)
	})

	t.Run("flag instead of value, accumulate", func(t *testing.T) {
		var out = command.Resolve([]string{"comm1", "x", "--o1", "--o2"}, argv.WithErrorMode(argv.Accumulate))

		assert.Equal(t, argv.ErrorList{"Option o1 requires a value", "Option o2 requires a value"}, out.Errors())
	})

	t.Run("unknown name", func(t *testing.T) {
		assert.Equal(t, argv.NoMatch, command.Resolve([]string{"unknown", "arg1", "--o1", "a", "--o2", "b"}).Kind())
	})

	t.Run("option values are never positional", func(t *testing.T) {
		var out = command.Resolve([]string{"comm3", "--req", "a", "arg"})

		assert.Equal(t, argv.ErrorList{"Invalid number of args"}, out.Errors())
	})

	t.Run("the resolver is reusable", func(t *testing.T) {
		var r = command.NewResolver(argv.WithMatchPolicy(argv.FirstSuccess))

		assert.Equal(t, argv.FirstSuccess, r.MatchPolicy())

		for i := 0; i < 3; i++ {
			assert.Equal(t, argv.Matched, r.Resolve([]string{"comm2", "a", "--o3", "x", "--o4", "y"}).Kind())
		}
	})
}
