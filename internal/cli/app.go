// Package cli contains CLI command handlers.
package cli

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/tarampampam/clparser/internal/cli/parse"
	"github.com/tarampampam/clparser/internal/cli/shared"
	"github.com/tarampampam/clparser/internal/cli/tokenize"
	"github.com/tarampampam/clparser/internal/env"
	"github.com/tarampampam/clparser/internal/logger"
	"github.com/tarampampam/clparser/internal/ui"
	"github.com/tarampampam/clparser/internal/version"
)

// NewApp creates new console application.
func NewApp() *cli.App {
	const (
		logLevelFlagName  = "log-level"
		logFormatFlagName = "log-format"
		envFileFlagName   = "env-file"
		noColorsFlagName  = "no-colors"

		defaultLogLevel  = logger.InfoLevel
		defaultLogFormat = logger.ConsoleFormat
	)

	// create "default" logger (will be overwritten later with customized)
	log, _ := logger.New(defaultLogLevel, defaultLogFormat)

	return &cli.App{
		Name:      "clparser",
		Usage:     "Parse command line arguments into typed commands",
		Writer:    ui.StdOut(),
		ErrWriter: ui.StdErr(),
		Before: func(c *cli.Context) error {
			_ = log.Sync() // sync previous logger instance

			if path := c.String(envFileFlagName); path != "" {
				if err := godotenv.Load(path); err != nil { // already defined variables are not overridden
					return errors.Wrap(err, "failed to load the env file")
				}
			}

			if c.Bool(noColorsFlagName) {
				ui.ColorsEnabled(false)
			}

			if !ui.ColorsEnabled() {
				pterm.DisableColor()
			}

			logLevel, err := logger.ParseLevel(flagOrEnv(c, logLevelFlagName, env.LogLevel.Lookup))
			if err != nil {
				return err
			}

			logFormat, err := logger.ParseFormat(flagOrEnv(c, logFormatFlagName, env.LogFormat.Lookup))
			if err != nil {
				return err
			}

			configured, err := logger.New(logLevel, logFormat) // create new logger instance
			if err != nil {
				return errors.Wrap(err, "failed to create the logger")
			}

			*log = *configured // replace "default" logger with customized

			return nil
		},
		After: func(*cli.Context) error {
			// error ignoring reasons:
			// - <https://github.com/uber-go/zap/issues/772>
			// - <https://github.com/uber-go/zap/issues/328>
			_ = log.Sync()

			return nil
		},
		Commands: []*cli.Command{
			tokenize.NewCommand(log),
			parse.NewCommand(log),
		},
		Flags: []cli.Flag{ // global flags
			&cli.StringFlag{
				Name:    logLevelFlagName,
				Value:   defaultLogLevel.String(),
				Usage:   "logging level (" + strings.Join(logger.Levels(), "|") + ")",
				EnvVars: []string{env.LogLevel.String()},
			},
			&cli.StringFlag{
				Name:    logFormatFlagName,
				Value:   defaultLogFormat.String(),
				Usage:   "logging format (" + strings.Join(logger.Formats(), "|") + ")",
				EnvVars: []string{env.LogFormat.String()},
			},
			&cli.StringFlag{
				Name:  envFileFlagName,
				Usage: "path to the dotenv file to load the environment variables from",
			},
			&cli.BoolFlag{
				Name:  noColorsFlagName,
				Usage: "disable colored output",
			},
			shared.NewConfigFileFlag(),
		},
		Version: version.Version(),
	}
}

// flagOrEnv returns the flag value when it was set explicitly (or from the environment at the start),
// otherwise the environment value loaded later (e.g. from the dotenv file), falling back to the flag
// default.
func flagOrEnv(c *cli.Context, flagName string, lookup func() (string, bool)) string {
	if !c.IsSet(flagName) {
		if v, ok := lookup(); ok {
			return v
		}
	}

	return c.String(flagName)
}
