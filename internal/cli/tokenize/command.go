package tokenize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/tarampampam/clparser/pkg/argv"
)

// NewCommand creates `tokenize` command.
func NewCommand(log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "tokenize",
		Aliases:   []string{"t"},
		Usage:     "Show how the arguments are split into the name, positional arguments and options",
		ArgsUsage: "[--] <name> [args...] [--option [values...]...]",
		Action: func(c *cli.Context) error {
			var inv = argv.Parse(c.Args().Slice())

			log.Debug("Tokenized",
				zap.String("name", inv.Name()),
				zap.Strings("args", inv.Args()),
				zap.Int("options", len(inv.Options())),
			)

			table, err := pterm.DefaultTable.WithHasHeader().WithData(Rows(inv)).Srender()
			if err != nil {
				return errors.Wrap(err, "failed to render the table")
			}

			_, err = fmt.Fprintln(c.App.Writer, table)

			return err
		},
	}
}

// Rows returns the invocation parts as table rows (the first row is a header). Options are sorted by name.
func Rows(inv argv.Invocation) [][]string {
	var rows = [][]string{
		{"Kind", "Name", "Values"},
		{"command", inv.Name(), ""},
	}

	for i, arg := range inv.Args() {
		rows = append(rows, []string{"argument", strconv.Itoa(i), arg})
	}

	var (
		opts  = inv.Options()
		names = opts.Names()
	)

	sort.Strings(names)

	for _, name := range names {
		var kind = "option"

		if len(opts[name]) == 0 {
			kind = "flag"
		}

		rows = append(rows, []string{kind, argv.OptionPrefix + name, strings.Join(opts[name], ", ")})
	}

	return rows
}
