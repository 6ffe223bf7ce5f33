// Package shared contains the flags, used by more than one command.
package shared

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tarampampam/clparser/internal/config"
	"github.com/tarampampam/clparser/internal/env"
	"github.com/tarampampam/clparser/pkg/argv"
)

const (
	configFileFlagName  = "config"
	errorModeFlagName   = "error-mode"
	matchPolicyFlagName = "match-policy"
)

// NewConfigFileFlag creates a global flag with the path to the configuration file.
func NewConfigFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    configFileFlagName,
		Aliases: []string{"c"},
		Usage:   "path to the configuration file (YAML, default: <config dir>/" + config.FileName + ")",
		EnvVars: []string{env.ConfigFile.String()},
	}
}

// NewErrorModeFlag creates a flag for the validation errors reporting mode selection.
func NewErrorModeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    errorModeFlagName,
		Aliases: []string{"e"},
		Usage:   "validation errors reporting mode (first|all)",
		Value:   argv.ShortCircuit.String(),
		EnvVars: []string{env.ErrorMode.String()},
	}
}

// NewMatchPolicyFlag creates a flag for the command descriptors match policy selection.
func NewMatchPolicyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    matchPolicyFlagName,
		Aliases: []string{"m"},
		Usage:   "command descriptors match policy (first-name|first-success)",
		Value:   argv.FirstNameMatch.String(),
		EnvVars: []string{env.MatchPolicy.String()},
	}
}

// ResolverOptions collects the resolver options from the configuration file and the flags. When the
// configuration file path is not set, the config.FileName file in the config.DefaultDirPath directory is
// used (if it exists). Explicitly set flags override the configuration file values.
func ResolverOptions(c *cli.Context) ([]argv.ResolverOption, error) {
	var cfg config.Config

	var path = c.String(configFileFlagName)

	if path == "" {
		path, _ = config.DefaultFilePath() // the file in the default directory is optional
	}

	if path != "" {
		if err := cfg.FromFile(path); err != nil {
			return nil, err
		}
	}

	if c.IsSet(errorModeFlagName) {
		v := c.String(errorModeFlagName)
		cfg.ErrorMode = &v
	}

	if c.IsSet(matchPolicyFlagName) {
		v := c.String(matchPolicyFlagName)
		cfg.MatchPolicy = &v
	}

	opts, err := cfg.ResolverOptions()
	if err != nil {
		return nil, errors.Wrap(err, "wrong resolver options")
	}

	return opts, nil
}
