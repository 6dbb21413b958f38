package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func applyScript(ops []diffOp) []string {
	var out []string
	for _, op := range ops {
		if op.kind != opDelete {
			out = append(out, op.line)
		}
	}
	return out
}

func TestDiffLinesIdentical(t *testing.T) {
	a := []string{"one", "two"}
	ops := diffLines(a, a)

	for _, op := range ops {
		assert.Equal(t, opEqual, op.kind)
	}
	assert.Equal(t, a, applyScript(ops))
}

func TestDiffLinesEmptySides(t *testing.T) {
	assert.Nil(t, diffLines(nil, nil))

	ops := diffLines(nil, []string{"a", "b"})
	assert.Len(t, ops, 2)
	assert.Equal(t, opInsert, ops[0].kind)

	ops = diffLines([]string{"a", "b"}, nil)
	assert.Len(t, ops, 2)
	assert.Equal(t, opDelete, ops[0].kind)
}

func TestDiffLinesReconstructsTarget(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{"replace middle", []string{"a", "b", "c"}, []string{"a", "x", "c"}},
		{"insert", []string{"a", "c"}, []string{"a", "b", "c"}},
		{"delete", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"disjoint", []string{"a", "b"}, []string{"x", "y"}},
		{"common prefix suffix", []string{"p", "1", "2", "s"}, []string{"p", "9", "s"}},
		{"duplicated lines", []string{"x", "x", "y"}, []string{"x", "y", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := diffLines(tt.a, tt.b)
			assert.Equal(t, tt.b, applyScript(ops))

			// The script must also account for every line of a.
			fromA := 0
			for _, op := range ops {
				if op.kind != opInsert {
					fromA++
				}
			}
			assert.Equal(t, len(tt.a), fromA)
		})
	}
}

func TestDiffLinesMinimalForSingleEdit(t *testing.T) {
	a := []string{"1", "2", "3", "4"}
	b := []string{"1", "2", "changed", "4"}

	ops := diffLines(a, b)

	edits := 0
	for _, op := range ops {
		if op.kind != opEqual {
			edits++
		}
	}
	assert.Equal(t, 2, edits) // one delete plus one insert
}
