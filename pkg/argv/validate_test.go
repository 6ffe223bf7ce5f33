package argv_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarampampam/clparser/pkg/argv"
)

func TestErrorList_Error(t *testing.T) {
	assert.Equal(t, "", argv.ErrorList{}.Error())
	assert.Equal(t, "Option o1 is missing", argv.ErrorList{argv.MissingOption("o1")}.Error())
	assert.Equal(t,
		"Option o1 is missing; Invalid number of args",
		argv.ErrorList{argv.MissingOption("o1"), argv.InvalidArgCount}.Error(),
	)
}

func TestErrorMode_String(t *testing.T) {
	assert.Equal(t, "first", argv.ShortCircuit.String())
	assert.Equal(t, "all", argv.Accumulate.String())
	assert.Equal(t, "mode(255)", argv.ErrorMode(255).String())
}

func TestParseErrorMode(t *testing.T) {
	for name, tt := range map[string]struct {
		giveText  string
		wantMode  argv.ErrorMode
		wantError error
	}{
		"<empty value>": {giveText: "", wantMode: argv.ShortCircuit},
		"first":         {giveText: "first", wantMode: argv.ShortCircuit},
		"short-circuit": {giveText: "Short-Circuit", wantMode: argv.ShortCircuit},
		"all":           {giveText: "ALL", wantMode: argv.Accumulate},
		"accumulate":    {giveText: "accumulate", wantMode: argv.Accumulate},
		"foobar":        {giveText: "foobar", wantError: errors.New("unrecognized error mode: \"foobar\"")},
	} {
		t.Run(name, func(t *testing.T) {
			m, err := argv.ParseErrorMode(tt.giveText)

			if tt.wantError == nil {
				require.NoError(t, err)
				require.Equal(t, tt.wantMode, m)
			} else {
				require.EqualError(t, err, tt.wantError.Error())
			}
		})
	}
}

func TestEnsureRequiredOptions(t *testing.T) {
	for name, tt := range map[string]struct {
		giveMode     argv.ErrorMode
		giveRequired []string
		giveOpts     argv.Options
		wantErrors   argv.ErrorList
	}{
		"nothing required": {
			giveMode: argv.ShortCircuit,
			giveOpts: argv.Options{},
		},
		"all present": {
			giveMode:     argv.ShortCircuit,
			giveRequired: []string{"o1", "o2"},
			giveOpts:     argv.Options{"o1": {"a"}, "o2": {}},
		},
		"first missing, short circuit": {
			giveMode:     argv.ShortCircuit,
			giveRequired: []string{"o1", "o2"},
			giveOpts:     argv.Options{"o4": {"asd"}, "o2": {"qewr"}},
			wantErrors:   argv.ErrorList{"Option o1 is missing"},
		},
		"second missing, short circuit": {
			giveMode:     argv.ShortCircuit,
			giveRequired: []string{"o1", "o2"},
			giveOpts:     argv.Options{"o1": {"asd"}, "o5": {"qewr"}},
			wantErrors:   argv.ErrorList{"Option o2 is missing"},
		},
		"both missing, short circuit": {
			giveMode:     argv.ShortCircuit,
			giveRequired: []string{"o1", "o2"},
			giveOpts:     argv.Options{},
			wantErrors:   argv.ErrorList{"Option o1 is missing"},
		},
		"both missing, accumulate": {
			giveMode:     argv.Accumulate,
			giveRequired: []string{"o2", "o1", "o3"},
			giveOpts:     argv.Options{"o1": {}},
			wantErrors:   argv.ErrorList{"Option o2 is missing", "Option o3 is missing"},
		},
		"all present, accumulate": {
			giveMode:     argv.Accumulate,
			giveRequired: []string{"o1"},
			giveOpts:     argv.Options{"o1": {}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			opts, err := argv.EnsureRequiredOptions(tt.giveMode, tt.giveRequired, tt.giveOpts)

			if tt.wantErrors == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.giveOpts, opts)

				return
			}

			var errs argv.ErrorList

			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.wantErrors, errs)
			assert.Nil(t, opts)
		})
	}
}

func TestEnsureArgCount(t *testing.T) {
	args, err := argv.EnsureArgCount(1, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, args)

	args, err = argv.EnsureArgCount(0, []string{})
	require.NoError(t, err)
	assert.Equal(t, []string{}, args)

	for _, give := range [][]string{nil, {}, {"a", "b"}} {
		args, err = argv.EnsureArgCount(1, give)

		assert.Equal(t, argv.ErrorList{"Invalid number of args"}, err)
		assert.Nil(t, args)
	}
}

func TestValidate(t *testing.T) {
	var (
		required = []string{"o1", "o2"}
		broken   = argv.Parse([]string{"comm1", "a", "b"}) // no options, wrong args count
		good     = argv.Parse([]string{"comm1", "a", "--o1", "x", "--o2", "y"})
	)

	assert.NoError(t, argv.Validate(argv.ShortCircuit, 1, required, good))
	assert.NoError(t, argv.Validate(argv.Accumulate, 1, required, good))

	assert.Equal(t,
		argv.ErrorList{"Option o1 is missing"},
		argv.Validate(argv.ShortCircuit, 1, required, broken),
	)

	assert.Equal(t,
		argv.ErrorList{"Option o1 is missing", "Option o2 is missing", "Invalid number of args"},
		argv.Validate(argv.Accumulate, 1, required, broken),
	)

	assert.Equal(t,
		argv.ErrorList{"Invalid number of args"},
		argv.Validate(argv.ShortCircuit, 2, required, good),
	)
}
