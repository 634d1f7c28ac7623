package main

import (
	"io"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/crillab/gophertable/render"
)

const defaultMaxVars = 16

type config struct {
	program     string
	format      render.Format
	maxVars     int
	ast         bool
	classify    bool
	verbose     bool
	silent      bool
	showHelp    bool
	showVersion bool
}

var errUsage = errors.New("invalid usage")

// parseFlags reads the configuration from the command-line arguments, program name excluded.
// Usage is written on usage when the arguments are invalid or help is requested.
func parseFlags(args []string, usage io.Writer) (*config, error) {
	var (
		cfg    config
		format string
	)
	fs := flag.NewFlagSet("gophertable", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVarP(&cfg.program, "program", "p", "", "Evaluate the \"name = formula;\" statements of the given file over a shared truth table, rather than reading formulas from stdin")
	fs.StringVarP(&format, "format", "f", string(render.FormatText), "Output format of truth tables: text, json or cbor")
	fs.IntVar(&cfg.maxVars, "max-vars", defaultMaxVars, "Reject formulas with more distinct variables, since truth tables grow as 2^n; 0 means no limit")
	fs.BoolVar(&cfg.ast, "ast", false, "Print the parsed formula before its truth table")
	fs.BoolVar(&cfg.classify, "classify", false, "Tell whether the formula is a tautology, a contradiction or neither")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Logs additional information; incompatible with \"silent\"")
	fs.BoolVar(&cfg.silent, "silent", false, "Produce no log except fatal errors; incompatible with \"verbose\"")
	fs.BoolVarP(&cfg.showHelp, "help", "h", false, "Print usage information (this message) and quit")
	fs.BoolVarP(&cfg.showVersion, "version", "v", false, "Print version information and quit")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(errUsage, err.Error())
	}
	if cfg.showHelp {
		fs.PrintDefaults()
		return &cfg, nil
	}
	if fs.NArg() != 0 {
		fs.PrintDefaults()
		return nil, errors.Wrapf(errUsage, "unexpected arguments %v", fs.Args())
	}
	var err error
	if cfg.format, err = render.ParseFormat(format); err != nil {
		return nil, errors.Wrap(errUsage, err.Error())
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *config) validate() error {
	if c.verbose && c.silent {
		return errors.Wrap(errUsage, "\"verbose\" and \"silent\" are mutually exclusive")
	}
	if c.maxVars < 0 {
		return errors.Wrapf(errUsage, "invalid maximum number of variables %d", c.maxVars)
	}
	return nil
}
