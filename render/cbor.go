package render

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/crillab/gophertable/bf"
)

// TableDoc is the CBOR document written for a truth table.
// Value is set for a single formula, Results for a program.
type TableDoc struct {
	Vars  []string `cbor:"vars"`
	Names []string `cbor:"names,omitempty"`
	Rows  []RowDoc `cbor:"rows"`
}

// RowDoc is a row of a TableDoc.
type RowDoc struct {
	Assignment map[string]bool `cbor:"assignment"`
	Value      *bool           `cbor:"value,omitempty"`
	Results    map[string]bool `cbor:"results,omitempty"`
}

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// CBOR writes t as a canonical CBOR TableDoc.
func CBOR(w io.Writer, t *bf.Table) error {
	doc := TableDoc{Vars: t.Vars, Rows: make([]RowDoc, len(t.Rows))}
	for i, row := range t.Rows {
		v := row.Value
		doc.Rows[i] = RowDoc{Assignment: row.Assignment, Value: &v}
	}
	return writeCBOR(w, doc)
}

// CBORProgram writes t as a canonical CBOR TableDoc.
func CBORProgram(w io.Writer, t *bf.ProgramTable) error {
	doc := TableDoc{Vars: t.Vars, Names: t.Names, Rows: make([]RowDoc, len(t.Rows))}
	for i, row := range t.Rows {
		results := make(map[string]bool, row.Results.Len())
		for el := row.Results.Front(); el != nil; el = el.Next() {
			results[el.Key] = el.Value
		}
		doc.Rows[i] = RowDoc{Assignment: row.Assignment, Results: results}
	}
	return writeCBOR(w, doc)
}

func writeCBOR(w io.Writer, doc TableDoc) error {
	if err := encMode.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, "could not write CBOR output")
	}
	return nil
}
