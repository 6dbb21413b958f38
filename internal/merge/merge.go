package merge

import (
	"bytes"
	"fmt"
	"strings"
)

// Result holds the outcome of a strategy-resolved three-way merge.
// The merged content never contains conflict marker text: every strategy
// in the closed set resolves conflicting regions by construction.
type Result struct {
	Merged          []byte // full merged content
	ConflictRegions int    // exact count of conflicting hunks that were resolved
}

// Merge performs a three-way merge of base, ours and theirs, resolving
// conflicting regions according to strategy.
//
// Algorithm:
//  1. Split base, ours, theirs into lines.
//  2. Compute diff(base, ours) and diff(base, theirs).
//  3. Convert each diff into a sequence of spans, contiguous runs of
//     unchanged or changed regions relative to the base.
//  4. Walk through base lines, consulting both span sequences to decide
//     how each base region is handled. Regions changed on one side take
//     that side's lines; regions changed identically on both sides are
//     taken once.
//  5. When both sides change the same base region differently, resolve the
//     region with the strategy's lines instead of emitting marker text.
//
// Binary content (any NUL byte) is rejected rather than silently merged.
func Merge(base, ours, theirs []byte, strategy Strategy) (Result, error) {
	for _, input := range []struct {
		name    string
		content []byte
	}{
		{"base", base}, {"ours", ours}, {"theirs", theirs},
	} {
		if bytes.IndexByte(input.content, 0) >= 0 {
			return Result{}, fmt.Errorf("%s version contains binary content", input.name)
		}
	}

	baseLines := splitLines(string(base))
	oursLines := splitLines(string(ours))
	theirsLines := splitLines(string(theirs))

	oursSpans := buildSpans(baseLines, oursLines)
	theirsSpans := buildSpans(baseLines, theirsLines)

	result := mergeSpans(baseLines, oursSpans, theirsSpans, strategy)

	if !wantsTrailingNewline(ours, theirs, base) {
		result.Merged = bytes.TrimSuffix(result.Merged, []byte("\n"))
	}

	return result, nil
}

// splitLines splits s into lines. A trailing newline does not produce an
// extra empty element.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// wantsTrailingNewline decides whether the merged output ends with a
// newline: it does unless every non-empty input lacks one.
func wantsTrailingNewline(ours, theirs, base []byte) bool {
	sawContent := false
	for _, content := range [][]byte{ours, theirs, base} {
		if len(content) == 0 {
			continue
		}
		sawContent = true
		if content[len(content)-1] == '\n' {
			return true
		}
	}
	return !sawContent
}

// span represents a contiguous region relative to the base: the base line
// range it covers and the side's replacement lines for that range.
type span struct {
	baseStart, baseEnd int // range [baseStart, baseEnd) in base
	lines              []string
	changed            bool
}

// buildSpans converts a two-way diff (base → side) into base-aligned spans.
func buildSpans(base, side []string) []span {
	ops := diffLines(base, side)

	var spans []span
	baseIdx := 0

	i := 0
	for i < len(ops) {
		op := ops[i]

		if op.kind == opEqual {
			spans = append(spans, span{
				baseStart: baseIdx,
				baseEnd:   baseIdx + 1,
				lines:     []string{op.line},
			})
			baseIdx++
			i++
			continue
		}

		// Accumulate a contiguous changed region (deletes and/or inserts).
		spanStart := baseIdx
		var sideLines []string

		for i < len(ops) && ops[i].kind != opEqual {
			if ops[i].kind == opDelete {
				baseIdx++
			} else {
				sideLines = append(sideLines, ops[i].line)
			}
			i++
		}

		spans = append(spans, span{
			baseStart: spanStart,
			baseEnd:   baseIdx,
			lines:     sideLines,
			changed:   true,
		})
	}

	return spans
}

// mergeSpans walks the two span sequences in parallel, aligned by base-line
// positions, producing strategy-resolved output.
func mergeSpans(baseLines []string, oursSpans, theirsSpans []span, strategy Strategy) Result {
	var merged bytes.Buffer
	conflicts := 0

	oi := 0
	ti := 0

	for oi < len(oursSpans) || ti < len(theirsSpans) {
		var os, ts *span
		if oi < len(oursSpans) {
			os = &oursSpans[oi]
		}
		if ti < len(theirsSpans) {
			ts = &theirsSpans[ti]
		}

		if os == nil {
			writeLines(&merged, ts.lines)
			ti++
			continue
		}
		if ts == nil {
			writeLines(&merged, os.lines)
			oi++
			continue
		}

		if os.baseStart == ts.baseStart && os.baseEnd == ts.baseEnd {
			// Spans cover the same base region.
			switch {
			case !os.changed && !ts.changed:
				writeLines(&merged, os.lines)
			case os.changed && !ts.changed:
				writeLines(&merged, os.lines)
			case !os.changed && ts.changed:
				writeLines(&merged, ts.lines)
			default:
				if linesEqual(os.lines, ts.lines) {
					writeLines(&merged, os.lines)
				} else {
					conflicts++
					writeResolution(&merged, os.lines, ts.lines, strategy)
				}
			}
			oi++
			ti++
			continue
		}

		// Spans are misaligned: one side's change covers several
		// base-aligned spans on the other side. Coalesce every overlapping
		// span from both sides into one region and decide once.
		regionEnd := max(os.baseEnd, ts.baseEnd)

		var oursRegion, theirsRegion []span

		// Growing one side's region can extend past the other side's spans,
		// so alternate until neither side overlaps the region anymore.
		for {
			grew := false
			for oi < len(oursSpans) && oursSpans[oi].baseStart < regionEnd {
				oursRegion = append(oursRegion, oursSpans[oi])
				if oursSpans[oi].baseEnd > regionEnd {
					regionEnd = oursSpans[oi].baseEnd
				}
				oi++
				grew = true
			}
			for ti < len(theirsSpans) && theirsSpans[ti].baseStart < regionEnd {
				theirsRegion = append(theirsRegion, theirsSpans[ti])
				if theirsSpans[ti].baseEnd > regionEnd {
					regionEnd = theirsSpans[ti].baseEnd
				}
				ti++
				grew = true
			}
			if !grew {
				break
			}
		}

		oursOut := assembleRegion(oursRegion)
		theirsOut := assembleRegion(theirsRegion)
		oursChanged := anyChanged(oursRegion)
		theirsChanged := anyChanged(theirsRegion)

		switch {
		case !oursChanged && !theirsChanged:
			writeLines(&merged, oursOut)
		case oursChanged && !theirsChanged:
			writeLines(&merged, oursOut)
		case !oursChanged && theirsChanged:
			writeLines(&merged, theirsOut)
		default:
			if linesEqual(oursOut, theirsOut) {
				writeLines(&merged, oursOut)
			} else {
				conflicts++
				writeResolution(&merged, oursOut, theirsOut, strategy)
			}
		}
	}

	return Result{Merged: merged.Bytes(), ConflictRegions: conflicts}
}

// writeResolution emits the strategy's resolution of a conflicting region.
func writeResolution(buf *bytes.Buffer, oursLines, theirsLines []string, strategy Strategy) {
	switch strategy {
	case StrategyOurs:
		writeLines(buf, oursLines)
	case StrategyTheirs:
		writeLines(buf, theirsLines)
	case StrategyUnion:
		writeLines(buf, oursLines)
		writeLines(buf, theirsLines)
	}
}

func writeLines(buf *bytes.Buffer, lines []string) {
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assembleRegion(spans []span) []string {
	var lines []string
	for _, s := range spans {
		lines = append(lines, s.lines...)
	}
	return lines
}

func anyChanged(spans []span) bool {
	for _, s := range spans {
		if s.changed {
			return true
		}
	}
	return false
}
