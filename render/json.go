package render

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"

	"github.com/crillab/gophertable/bf"
)

// JSON writes t as a JSON document:
//
//	{"vars":["a","b"],"rows":[{"assignment":{"a":false,"b":false},"value":false},...]}
func JSON(w io.Writer, t *bf.Table) error {
	doc, err := sjson.Set(`{"vars":[],"rows":[]}`, "vars", t.Vars)
	if err != nil {
		return errors.Wrap(err, "could not encode variables")
	}
	for _, row := range t.Rows {
		r, err := assignmentJSON(t.Vars, row.Assignment)
		if err != nil {
			return err
		}
		if r, err = sjson.Set(r, "value", row.Value); err != nil {
			return errors.Wrap(err, "could not encode row value")
		}
		if doc, err = sjson.SetRaw(doc, "rows.-1", r); err != nil {
			return errors.Wrap(err, "could not encode row")
		}
	}
	return writeDoc(w, doc)
}

// JSONProgram writes t as a JSON document:
//
//	{"vars":["a","b"],"names":["x","y"],"rows":[{"assignment":{"a":false,"b":false},"results":{"x":false,"y":false}},...]}
func JSONProgram(w io.Writer, t *bf.ProgramTable) error {
	doc, err := sjson.Set(`{"vars":[],"names":[],"rows":[]}`, "vars", t.Vars)
	if err != nil {
		return errors.Wrap(err, "could not encode variables")
	}
	if doc, err = sjson.Set(doc, "names", t.Names); err != nil {
		return errors.Wrap(err, "could not encode names")
	}
	for _, row := range t.Rows {
		r, err := assignmentJSON(t.Vars, row.Assignment)
		if err != nil {
			return err
		}
		if r, err = sjson.SetRaw(r, "results", "{}"); err != nil {
			return errors.Wrap(err, "could not encode row results")
		}
		for el := row.Results.Front(); el != nil; el = el.Next() {
			if r, err = sjson.Set(r, "results."+el.Key, el.Value); err != nil {
				return errors.Wrapf(err, "could not encode result of %q", el.Key)
			}
		}
		if doc, err = sjson.SetRaw(doc, "rows.-1", r); err != nil {
			return errors.Wrap(err, "could not encode row")
		}
	}
	return writeDoc(w, doc)
}

// assignmentJSON returns {"assignment":{...}} with the bindings in vars order.
// Variable names are made of letters only, so they never need escaping in a path.
func assignmentJSON(vars []string, a bf.Assignment) (string, error) {
	r := `{"assignment":{}}`
	for _, v := range vars {
		var err error
		if r, err = sjson.Set(r, "assignment."+v, a[v]); err != nil {
			return "", errors.Wrapf(err, "could not encode binding of %q", v)
		}
	}
	return r, nil
}

func writeDoc(w io.Writer, doc string) error {
	if _, err := io.WriteString(w, doc+"\n"); err != nil {
		return errors.Wrap(err, "could not write JSON output")
	}
	return nil
}
