// Package render writes truth tables computed by package bf in various output formats.
package render

import (
	"io"

	"github.com/pkg/errors"

	"github.com/crillab/gophertable/bf"
)

// Format is an output format for truth tables.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatCBOR:
		return f, nil
	default:
		return "", errors.Errorf("unknown output format %q", s)
	}
}

// Table writes t on w using the given format.
func Table(w io.Writer, format Format, t *bf.Table) error {
	switch format {
	case FormatText:
		return Text(w, t)
	case FormatJSON:
		return JSON(w, t)
	case FormatCBOR:
		return CBOR(w, t)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

// ProgramTable writes t on w using the given format.
func ProgramTable(w io.Writer, format Format, t *bf.ProgramTable) error {
	switch format {
	case FormatText:
		return TextProgram(w, t)
	case FormatJSON:
		return JSONProgram(w, t)
	case FormatCBOR:
		return CBORProgram(w, t)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func cell(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
