package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/tarampampam/clparser/internal/cli/shared"
	"github.com/tarampampam/clparser/internal/ui"
	"github.com/tarampampam/clparser/pkg/argv"
	"github.com/tarampampam/clparser/pkg/command"
)

// ErrNoMatch is returned when no known command matches the arguments.
var ErrNoMatch = errors.New("no matching command")

// NewCommand creates `parse` command.
func NewCommand(log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "Resolve the arguments into one of the known commands (comm1, comm2, comm3)",
		ArgsUsage: "[--] <name> [args...] [--option [values...]...]",
		Flags: []cli.Flag{
			shared.NewErrorModeFlag(),
			shared.NewMatchPolicyFlag(),
		},
		Action: func(c *cli.Context) error {
			opts, err := shared.ResolverOptions(c)
			if err != nil {
				return err
			}

			var (
				resolver = command.NewResolver(append(opts, argv.WithLogger(log))...)
				args     = c.Args().Slice()
			)

			log.Debug("Resolving",
				zap.Strings("args", args),
				zap.Stringer("error mode", resolver.ErrorMode()),
				zap.Stringer("match policy", resolver.MatchPolicy()),
			)

			return Print(c.App.Writer, args, resolver.Resolve(args))
		},
	}
}

// Print writes the resolution outcome into the writer. An error is returned for any outcome but Matched.
func Print(w io.Writer, args []string, out argv.Outcome[command.Command]) error {
	return command.FoldOutcome(command.OutcomeHandlers[error]{
		OnNoMatch: func() error {
			var name string

			if len(args) > 0 {
				name = args[0]
			}

			return errors.Wrapf(ErrNoMatch, "%q", name)
		},
		OnError: func(errs argv.ErrorList) error {
			for _, e := range errs {
				if _, err := fmt.Fprintln(w, ui.Red.Wrap("✗"), e); err != nil {
					return err
				}
			}

			return errors.Errorf("validation failed (%d %s)", len(errs), plural(len(errs), "error"))
		},
		Handlers: command.Handlers[error]{
			OnCommand1: func(c command.Command1) error {
				return write(w, out, c, field{"o1", c.O1()}, field{"o2", c.O2()})
			},
			OnCommand2: func(c command.Command2) error {
				return write(w, out, c, field{"o3", c.O3()}, field{"o4", c.O4()})
			},
			OnCommand3: func(c command.Command3) error {
				var opt = "<none>"

				if values, ok := c.Opt().Get(); ok {
					opt = "[" + strings.Join(values, ", ") + "]"
				}

				return write(w, out, c, field{"req", c.Req()}, field{"opt", opt})
			},
		},
	}, out)
}

type field struct{ name, value string }

func write(w io.Writer, out argv.Outcome[command.Command], c command.Command, fields ...field) error {
	var b strings.Builder

	b.WriteString(ui.Green.Wrap("✓ " + c.Tag().String()))
	b.WriteString(ui.Faint.Wrap(fmt.Sprintf(
		" (resolved by the %s descriptor)", humanize.Ordinal(out.DescriptorIndex()+1),
	)))
	b.WriteString("\n  " + ui.Cyan.Wrap("arg") + ": " + c.Arg() + "\n")

	for _, f := range fields {
		b.WriteString("  " + ui.Cyan.Wrap(f.name) + ": " + f.value + "\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
