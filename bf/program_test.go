package bf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramTable(t *testing.T) {
	prog, err := ParseProgramString("x = a & b; y = a | b;")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, prog.Vars())
	table, err := prog.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Vars)
	assert.Equal(t, []string{"x", "y"}, table.Names)
	require.Len(t, table.Rows, 4)
	expected := []struct{ x, y bool }{
		{false, false},
		{false, true},
		{false, true},
		{true, true},
	}
	for i, row := range table.Rows {
		require.Equal(t, 2, row.Results.Len())
		assert.Equal(t, []string{"x", "y"}, row.Results.Keys())
		x, ok := row.Results.Get("x")
		require.True(t, ok)
		y, ok := row.Results.Get("y")
		require.True(t, ok)
		assert.Equal(t, expected[i].x, x, "x under %v", row.Assignment)
		assert.Equal(t, expected[i].y, y, "y under %v", row.Assignment)
	}
}

func TestProgramTableSharedUniverse(t *testing.T) {
	prog, err := ParseProgramString("first = a => b; second = c; third = true;")
	require.NoError(t, err)
	table, err := prog.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, table.Vars)
	require.Len(t, table.Rows, 8)
	for _, row := range table.Rows {
		require.Len(t, row.Assignment, 3)
		for _, nf := range prog {
			v, ok := row.Results.Get(nf.Name)
			require.True(t, ok)
			assert.Equal(t, MustEval(nf.Formula, row.Assignment), v)
		}
	}
}

func TestProgramTableEquivalence(t *testing.T) {
	prog, err := ParseProgramString("lhs = !(a & b); rhs = !a | !b;")
	require.NoError(t, err)
	table, err := prog.Table()
	require.NoError(t, err)
	for _, row := range table.Rows {
		lhs, _ := row.Results.Get("lhs")
		rhs, _ := row.Results.Get("rhs")
		assert.Equal(t, lhs, rhs, "under %v", row.Assignment)
	}
}

func TestProgramTableEmpty(t *testing.T) {
	table, err := Program(nil).Table()
	require.NoError(t, err)
	assert.Empty(t, table.Vars)
	assert.Empty(t, table.Names)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, 0, table.Rows[0].Results.Len())
}

func TestProgramTableDuplicateName(t *testing.T) {
	prog, err := ParseProgramString("x = a; y = b; x = !a;")
	require.NoError(t, err)
	table, err := prog.Table()
	assert.Nil(t, table)
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.EqualError(t, err, `formula "x": duplicate formula name`)
}

func ExampleProgram_Table() {
	prog, err := ParseProgramString("x = a & b;\ny = a | b;\n")
	if err != nil {
		fmt.Printf("Could not parse program: %v", err)
		return
	}
	table, err := prog.Table()
	if err != nil {
		fmt.Printf("Could not evaluate program: %v", err)
		return
	}
	for _, row := range table.Rows {
		fmt.Print(row.Assignment)
		for el := row.Results.Front(); el != nil; el = el.Next() {
			fmt.Printf(" %s=%t", el.Key, el.Value)
		}
		fmt.Println()
	}
	// Output:
	// {a:false b:false} x=false y=false
	// {a:false b:true} x=false y=true
	// {a:true b:false} x=false y=true
	// {a:true b:true} x=true y=true
}
