package ui

import (
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/mattn/go-isatty"

	"github.com/tarampampam/clparser/internal/env"
)

var colorsEnabled atomic.Bool //nolint:gochecknoglobals

func init() { colorsEnabled.Store(detectColors()) } //nolint:gochecknoinits

// detectColors returns initialization value for the colors enabled state.
func detectColors() bool {
	if _, exists := env.ForceColors.Lookup(); exists {
		return true
	} else if _, exists = env.NoColors.Lookup(); exists {
		return false
	} else if v, _ := env.Term.Lookup(); v == "dumb" {
		return false
	}

	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ColorsEnabled returns true if colors are enabled. Also, you can set a new state (enable or disable colors).
func ColorsEnabled(newState ...bool) bool {
	if len(newState) > 0 {
		colorsEnabled.Store(newState[0])
	}

	return colorsEnabled.Load()
}

// Style is an SGR text style code set.
type Style []uint8

// Predefined text styles.
var (
	Faint = Style{2}     //nolint:gochecknoglobals
	Red   = Style{1, 31} //nolint:gochecknoglobals
	Green = Style{1, 32} //nolint:gochecknoglobals
	Cyan  = Style{36}    //nolint:gochecknoglobals
)

// Wrap wraps provided string with the styling codes. The string returns without any modifications when
// colors are disabled.
func (s Style) Wrap(str string) string {
	if len(s) == 0 || !ColorsEnabled() {
		return str
	}

	var b strings.Builder

	b.Grow(len(str) + len(s)*3 + 8) //nolint:gomnd
	b.WriteString("\x1b[")

	for i, code := range s {
		if i > 0 {
			b.WriteRune(';')
		}

		b.WriteString(strconv.Itoa(int(code)))
	}

	b.WriteRune('m')
	b.WriteString(str)
	b.WriteString("\x1b[0m")

	return b.String()
}
