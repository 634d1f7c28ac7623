package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/crillab/gophertable/bf"
	"github.com/crillab/gophertable/render"
)

func TestParseFlags(t *testing.T) {
	var usage bytes.Buffer
	cfg, err := parseFlags(nil, &usage)
	require.NoError(t, err)
	assert.Equal(t, &config{format: render.FormatText, maxVars: defaultMaxVars}, cfg)

	cfg, err = parseFlags([]string{"-p", "prog.bf", "--format", "json", "--max-vars", "4", "--ast", "--classify", "--verbose"}, &usage)
	require.NoError(t, err)
	assert.Equal(t, &config{
		program:  "prog.bf",
		format:   render.FormatJSON,
		maxVars:  4,
		ast:      true,
		classify: true,
		verbose:  true,
	}, cfg)

	cfg, err = parseFlags([]string{"-h"}, &usage)
	require.NoError(t, err)
	assert.True(t, cfg.showHelp)
	assert.Contains(t, usage.String(), "--max-vars")
}

func TestParseFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--verbose", "--silent"},
		{"--format", "xml"},
		{"--max-vars", "-1"},
		{"--unknown"},
		{"extra"},
	} {
		_, err := parseFlags(args, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUsage, "for arguments %v", args)
	}
}

func newTestApp(t *testing.T, cfg *config, in string) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &app{
		cfg: cfg,
		fs:  afero.NewMemMapFs(),
		in:  strings.NewReader(in),
		out: &out,
		log: zaptest.NewLogger(t).Sugar(),
	}, &out
}

func TestRunInteractive(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := &config{format: render.FormatText, maxVars: defaultMaxVars}
	a, out := newTestApp(t, cfg, "a & b\n\n(a & b\n  true\n")
	require.NoError(t, a.run())
	const expected = "a b =\n" +
		"F F F\n" +
		"F T F\n" +
		"T F F\n" +
		"T T T\n" +
		"=\n" +
		"T\n"
	assert.Equal(t, expected, out.String())
}

func TestRunInteractiveNotes(t *testing.T) {
	cfg := &config{format: render.FormatText, ast: true, classify: true}
	a, out := newTestApp(t, cfg, "a | !a\n")
	require.NoError(t, a.run())
	assert.True(t, strings.HasPrefix(out.String(), "# ast: or(a, not(a))\n# kind: tautology\na =\n"), out.String())
}

func TestRunInteractiveMaxVars(t *testing.T) {
	cfg := &config{format: render.FormatText, maxVars: 2}
	a, out := newTestApp(t, cfg, "a & b & c\na\n")
	require.NoError(t, a.run())
	assert.Equal(t, "a =\nF F\nT T\n", out.String())
}

func TestRunProgram(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := &config{program: "/progs/eq.bf", format: render.FormatJSON, maxVars: defaultMaxVars, classify: true}
	a, out := newTestApp(t, cfg, "")
	require.NoError(t, afero.WriteFile(a.fs, "/progs/eq.bf", []byte("x = a & b;\ny = a | b;\n"), 0o644))
	require.NoError(t, a.run())
	doc := gjson.Parse(out.String())
	assert.Equal(t, `["x","y"]`, doc.Get("names").Raw)
	assert.Len(t, doc.Get("rows").Array(), 4)
	assert.Equal(t, `{"x":true,"y":true}`, doc.Get("rows.3.results").Raw)
}

func TestRunProgramErrors(t *testing.T) {
	for _, test := range []struct {
		name    string
		content string
		maxVars int
		check   func(t *testing.T, err error)
	}{
		{"missing", "", 0, func(t *testing.T, err error) {
			assert.ErrorContains(t, err, `could not read program "/missing.bf"`)
		}},
		{"syntax", "x = (a;", 0, func(t *testing.T, err error) {
			var pe *bf.ParseError
			assert.ErrorAs(t, err, &pe)
		}},
		{"duplicate", "x = a; x = b;", 0, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, bf.ErrDuplicateName)
		}},
		{"too large", "x = a & b; y = c;", 2, func(t *testing.T, err error) {
			assert.ErrorContains(t, err, "3 distinct variables, the maximum is 2")
		}},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := "/" + test.name + ".bf"
			cfg := &config{program: path, format: render.FormatText, maxVars: test.maxVars}
			a, out := newTestApp(t, cfg, "")
			if test.name != "missing" {
				require.NoError(t, afero.WriteFile(a.fs, path, []byte(test.content), 0o644))
			}
			err := a.run()
			require.Error(t, err)
			test.check(t, err)
			assert.Empty(t, out.String())
		})
	}
}
