package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crillab/gophertable/bf"
	"github.com/crillab/gophertable/render"
)

var version = "(devel)"

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] < formulas\n       %s [options] --program file\n%v\n", os.Args[0], os.Args[0], err)
		os.Exit(1)
	}
	if cfg.showHelp {
		os.Exit(0)
	}
	if cfg.showVersion {
		fmt.Printf("gophertable %s\n", version)
		os.Exit(0)
	}
	logger := newLogger(cfg, os.Stderr)
	defer logger.Sync()
	a := &app{cfg: cfg, fs: afero.NewOsFs(), in: os.Stdin, out: os.Stdout, log: logger.Sugar()}
	if err := a.run(); err != nil {
		a.log.Errorf("Failed: %v", err)
		logger.Sync()
		os.Exit(2)
	}
}

func newLogger(cfg *config, w io.Writer) *zap.Logger {
	al := zap.NewAtomicLevelAt(zap.InfoLevel)
	ec := zap.NewDevelopmentEncoderConfig()
	if cfg.verbose {
		al.SetLevel(zap.DebugLevel)
	}
	if cfg.silent {
		al.SetLevel(zap.FatalLevel)
	}
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), al))
}

// app evaluates formulas read either from in, one per line, or from a program file.
type app struct {
	cfg *config
	fs  afero.Fs
	in  io.Reader
	out io.Writer
	log *zap.SugaredLogger
}

func (a *app) run() error {
	if a.cfg.program != "" {
		return a.runProgram(a.cfg.program)
	}
	return a.runInteractive()
}

// runInteractive reads formulas from a.in, one per line, and writes their truth table.
// Invalid formulas are reported and skipped.
func (a *app) runInteractive() error {
	sc := bufio.NewScanner(a.in)
	nb := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f, err := a.parseFormula(line)
		if err != nil {
			a.log.Errorf("Invalid formula %q: %v", line, err)
			continue
		}
		if err := a.writeFormula(f); err != nil {
			return err
		}
		nb++
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "could not read formulas")
	}
	a.log.Debugf("%d formulas evaluated", nb)
	return nil
}

func (a *app) parseFormula(line string) (bf.Formula, error) {
	f, err := bf.ParseString(line)
	if err != nil {
		return nil, err
	}
	if err := a.checkVars(bf.FreeVars(f)); err != nil {
		return nil, err
	}
	return f, nil
}

func (a *app) writeFormula(f bf.Formula) error {
	if a.cfg.ast {
		a.note("ast: %s", f.Tree())
	}
	if a.cfg.classify {
		a.note("kind: %v", bf.Classify(f))
	}
	return render.Table(a.out, a.cfg.format, bf.TruthTable(f))
}

func (a *app) runProgram(path string) error {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return errors.Wrapf(err, "could not read program %q", path)
	}
	prog, err := bf.ParseProgramString(string(data))
	if err != nil {
		return errors.Wrapf(err, "could not parse program %q", path)
	}
	a.log.Debugf("Program %q defines %d formulas: %v", path, len(prog), prog.Names())
	if err := a.checkVars(prog.Vars()); err != nil {
		return errors.Wrapf(err, "invalid program %q", path)
	}
	table, err := prog.Table()
	if err != nil {
		return errors.Wrapf(err, "invalid program %q", path)
	}
	for _, nf := range prog {
		if a.cfg.ast {
			a.note("ast: %s = %s", nf.Name, nf.Formula.Tree())
		}
		if a.cfg.classify {
			a.note("kind: %s: %v", nf.Name, bf.Classify(nf.Formula))
		}
	}
	return render.ProgramTable(a.out, a.cfg.format, table)
}

// checkVars enforces the configured limit on the number of variables.
func (a *app) checkVars(vars []string) error {
	if a.cfg.maxVars > 0 && len(vars) > a.cfg.maxVars {
		return errors.Errorf("%d distinct variables, the maximum is %d", len(vars), a.cfg.maxVars)
	}
	rows, err := bf.RowCount(len(vars))
	if err != nil {
		return err
	}
	a.log.Debugf("Enumerating %d rows over variables %v", rows, vars)
	return nil
}

// note writes an informative line before a text table.
// Binary and JSON outputs must stay parsable, so notes are logged instead.
func (a *app) note(format string, args ...interface{}) {
	if a.cfg.format != render.FormatText {
		a.log.Infof(format, args...)
		return
	}
	fmt.Fprintf(a.out, "# "+format+"\n", args...)
}
