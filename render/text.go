package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/crillab/gophertable/bf"
)

// ResultHeader is the header of the result column of a single formula table.
const ResultHeader = "="

// Text writes t as an aligned table: one column per variable, in t.Vars order,
// then the result column. Values are written as "T" or "F".
func Text(w io.Writer, t *bf.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	header := append(append([]string{}, t.Vars...), ResultHeader)
	if err := writeLine(tw, header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		cells := make([]string, 0, len(t.Vars)+1)
		for _, v := range t.Vars {
			cells = append(cells, cell(row.Assignment[v]))
		}
		cells = append(cells, cell(row.Value))
		if err := writeLine(tw, cells); err != nil {
			return err
		}
	}
	return errors.Wrap(tw.Flush(), "could not write table")
}

// TextProgram writes t as an aligned table: one column per variable,
// then one column per formula, in source order, separated by "|".
func TextProgram(w io.Writer, t *bf.ProgramTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	header := append(append(append([]string{}, t.Vars...), "|"), t.Names...)
	if err := writeLine(tw, header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		cells := make([]string, 0, len(header))
		for _, v := range t.Vars {
			cells = append(cells, cell(row.Assignment[v]))
		}
		cells = append(cells, "|")
		for el := row.Results.Front(); el != nil; el = el.Next() {
			cells = append(cells, cell(el.Value))
		}
		if err := writeLine(tw, cells); err != nil {
			return err
		}
	}
	return errors.Wrap(tw.Flush(), "could not write table")
}

func writeLine(w io.Writer, cells []string) error {
	if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
		return errors.Wrap(err, "could not write table")
	}
	return nil
}
