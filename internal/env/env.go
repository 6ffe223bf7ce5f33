// Package env contains all about environment variables, that can be used by current application.
package env

import "os"

type envVariable string

const (
	LogLevel  envVariable = "LOG_LEVEL"  // logging level
	LogFormat envVariable = "LOG_FORMAT" // logging format

	ConfigFile  envVariable = "CLPARSER_CONFIG"       // path to the configuration file
	ConfigDir   envVariable = "CLPARSER_CONFIG_DIR"   // overrides the default configuration directory path
	ErrorMode   envVariable = "CLPARSER_ERROR_MODE"   // validation errors reporting mode
	MatchPolicy envVariable = "CLPARSER_MATCH_POLICY" // command descriptors match policy

	ForceColors envVariable = "FORCE_COLOR" // force colored output
	NoColors    envVariable = "NO_COLOR"    // disable colored output <https://no-color.org/>
	Term        envVariable = "TERM"        // terminal type
)

// String returns environment variable name in the string representation.
func (e envVariable) String() string { return string(e) }

// Lookup retrieves the value of the environment variable. If the variable is present in the environment the value
// (which may be empty) is returned and the boolean is true. Otherwise the returned value will be empty and the
// boolean will be false.
func (e envVariable) Lookup() (string, bool) { return os.LookupEnv(string(e)) }
