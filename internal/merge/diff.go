package merge

// opKind classifies a line in an edit script.
type opKind int

const (
	opEqual  opKind = iota // line is unchanged between a and b
	opInsert               // line is present in b only
	opDelete               // line is present in a only
)

// diffOp is a single operation in an edit script produced by diffLines.
type diffOp struct {
	kind opKind
	line string
}

// diffLines computes the shortest edit script to transform a into b using
// the Myers diff algorithm operating on whole lines. It runs in
// O((N+M)*D) time where D is the size of the minimum edit script.
func diffLines(a, b []string) []diffOp {
	n := len(a)
	m := len(b)

	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		ops := make([]diffOp, m)
		for i, line := range b {
			ops[i] = diffOp{kind: opInsert, line: line}
		}
		return ops
	}
	if m == 0 {
		ops := make([]diffOp, n)
		for i, line := range a {
			ops[i] = diffOp{kind: opDelete, line: line}
		}
		return ops
	}

	maxD := n + m
	size := 2*maxD + 1
	v := make([]int, size)

	// trace[d] holds a snapshot of v after processing edit distance d.
	var trace [][]int

	for d := 0; d <= maxD; d++ {
		for k := -d; k <= d; k += 2 {
			idx := k + maxD
			var x int
			if k == -d || (k != d && v[idx-1] < v[idx+1]) {
				x = v[idx+1] // move down (insert)
			} else {
				x = v[idx-1] + 1 // move right (delete)
			}
			y := x - k

			// Follow the diagonal through equal lines.
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}

			v[idx] = x

			if x >= n && y >= m {
				snap := make([]int, size)
				copy(snap, v)
				trace = append(trace, snap)
				return backtrack(trace, a, b, d)
			}
		}

		snap := make([]int, size)
		copy(snap, v)
		trace = append(trace, snap)
	}

	// Unreachable for valid inputs.
	return nil
}

// backtrack reconstructs the edit script from the trace of v snapshots.
func backtrack(trace [][]int, a, b []string, dFinal int) []diffOp {
	n := len(a)
	m := len(b)
	maxD := n + m

	x := n
	y := m

	// Build the edit script in reverse.
	var ops []diffOp

	for d := dFinal; d > 0; d-- {
		k := x - y
		idx := k + maxD

		vPrev := trace[d-1]

		var prevK int
		if k == -d || (k != d && vPrev[idx-1] < vPrev[idx+1]) {
			prevK = k + 1 // came from an insert (down move)
		} else {
			prevK = k - 1 // came from a delete (right move)
		}

		prevX := vPrev[prevK+maxD]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			ops = append(ops, diffOp{kind: opEqual, line: a[x]})
		}

		if k == prevK+1 {
			x--
			ops = append(ops, diffOp{kind: opDelete, line: a[x]})
		} else {
			y--
			ops = append(ops, diffOp{kind: opInsert, line: b[y]})
		}
	}

	// Remaining diagonal at d=0.
	for x > 0 && y > 0 {
		x--
		y--
		ops = append(ops, diffOp{kind: opEqual, line: a[x]})
	}

	// Reverse to get forward order.
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	return ops
}
