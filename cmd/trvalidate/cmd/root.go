// Package cmd implements the trvalidate command line tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/trvalidator/pkg/config"
	"github.com/dmitrymomot/trvalidator/pkg/logger"
)

// ErrInvalidInput is returned in strict mode when at least one input fails validation.
var ErrInvalidInput = errors.New("one or more inputs are invalid")

// Config is read from TRVALIDATE_* environment variables and .env files.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Output    string `env:"OUTPUT" envDefault:"text"`
	Strict    bool   `env:"STRICT" envDefault:"false"`
}

const envPrefix = "TRVALIDATE_"

type commandKey struct{}

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfg     Config
	envFile string
	log     *slog.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "trvalidate",
		Short: "Validate Turkish identifiers offline",
		Long: `trvalidate checks Turkish national ID numbers (TCKN), mobile phone
numbers, tax numbers and IBANs with the official checksum algorithms.

Inputs are taken from the arguments or, when none are given, one per line
from standard input. Nothing is sent over the network.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Output, "output", "o", "", "output format: text, json or yaml (env TRVALIDATE_OUTPUT)")
	flags.BoolVar(&a.cfg.Strict, "strict", false, "exit with an error if any input is invalid (env TRVALIDATE_STRICT)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", "", "log level: debug, info, warn, error (env TRVALIDATE_LOG_LEVEL)")
	flags.StringVar(&a.envFile, "env-file", "", "load configuration from this .env file")

	root.AddCommand(
		newTCKNCmd(a),
		newPhoneCmd(a),
		newTaxNoCmd(a),
		newIBANCmd(a),
		newBankCmd(a),
		newCheckDigitCmd(a),
	)

	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup merges env configuration under explicitly set flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	if err := config.LoadEnv(files...); err != nil {
		return err
	}

	var envCfg Config
	if err := config.Load(&envCfg, config.WithPrefix(envPrefix)); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("output") {
		a.cfg.Output = envCfg.Output
	}
	if !flags.Changed("strict") {
		a.cfg.Strict = envCfg.Strict
	}
	if !flags.Changed("log-level") {
		a.cfg.LogLevel = envCfg.LogLevel
	}
	a.cfg.LogFormat = envCfg.LogFormat

	if _, err := encoderFor(a.cfg.Output); err != nil {
		return err
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("command", commandKey{}),
	)

	cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
	return nil
}

func (a *app) print(w io.Writer, records []record) error {
	enc, err := encoderFor(a.cfg.Output)
	if err != nil {
		return err
	}
	if err := enc(w, records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
