// Package command contains the closed set of known commands, their descriptors and the folding helpers.
package command

import (
	"github.com/tarampampam/clparser/pkg/optional"
)

// Tag is a command discriminant.
type Tag string

const (
	Tag1 Tag = "comm1"
	Tag2 Tag = "comm2"
	Tag3 Tag = "comm3"
)

// String returns the tag in a string representation.
func (t Tag) String() string { return string(t) }

// Command is one of Command1, Command2 or Command3. The set is closed: the interface can't be implemented
// outside this package.
type Command interface {
	Tag() Tag
	Arg() string

	sealed()
}

// Ensures that all the known commands implement the Command interface.
var (
	_ Command = Command1{}
	_ Command = Command2{}
	_ Command = Command3{}
)

// Command1 is built from `comm1 <arg> --o1 <value> --o2 <value>`.
type Command1 struct{ arg, o1, o2 string }

func (Command1) Tag() Tag { return Tag1 }
func (c Command1) Arg() string { return c.arg }
func (c Command1) O1() string { return c.o1 }
func (c Command1) O2() string { return c.o2 }
func (Command1) sealed() {}

// Command2 is built from `comm2 <arg> --o3 <value> --o4 <value>`.
type Command2 struct{ arg, o3, o4 string }

func (Command2) Tag() Tag { return Tag2 }
func (c Command2) Arg() string { return c.arg }
func (c Command2) O3() string { return c.o3 }
func (c Command2) O4() string { return c.o4 }
func (Command2) sealed() {}

// Command3 is built from `comm3 <arg> --req <value> [--opt <values...>]`.
type Command3 struct {
	arg, req string
	opt      optional.Optional[[]string]
}

func (Command3) Tag() Tag { return Tag3 }
func (c Command3) Arg() string { return c.arg }
func (c Command3) Req() string { return c.req }
func (Command3) sealed() {}

// Opt returns the optional multi-value option. A copy of the values is returned.
func (c Command3) Opt() optional.Optional[[]string] {
	values, ok := c.opt.Get()
	if !ok {
		return optional.None[[]string]()
	}

	var out = make([]string, len(values))

	copy(out, values)

	return optional.Some(out)
}
