package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMerge(t *testing.T, base, ours, theirs string, strategy Strategy) Result {
	t.Helper()
	result, err := Merge([]byte(base), []byte(ours), []byte(theirs), strategy)
	require.NoError(t, err)
	return result
}

func assertNoMarkers(t *testing.T, merged []byte) {
	t.Helper()
	for _, marker := range []string{"<<<<<<<", "=======", ">>>>>>>"} {
		assert.NotContains(t, string(merged), marker)
	}
}

func TestMergeVersionField(t *testing.T) {
	base := `{"version":"1.0.0"}`
	ours := `{"version":"1.1.0"}`
	theirs := `{"version":"1.2.0"}`

	result := mustMerge(t, base, ours, theirs, StrategyOurs)

	assert.Equal(t, `{"version":"1.1.0"}`, string(result.Merged))
	assert.Equal(t, 1, result.ConflictRegions)

	result = mustMerge(t, base, ours, theirs, StrategyTheirs)
	assert.Equal(t, `{"version":"1.2.0"}`, string(result.Merged))
	assert.Equal(t, 1, result.ConflictRegions)
}

func TestMergeNonConflictingChanges(t *testing.T) {
	// Ours changes B to X, theirs inserts Y after B. Different regions, so
	// a classic three-way merge combines both regardless of strategy.
	base := "A\nB\nC\n"
	ours := "A\nX\nC\n"
	theirs := "A\nB\nY\nC\n"

	for _, strategy := range Strategies() {
		result := mustMerge(t, base, ours, theirs, strategy)
		assert.Equal(t, "A\nX\nY\nC\n", string(result.Merged), "strategy %s", strategy)
		assert.Equal(t, 0, result.ConflictRegions, "strategy %s", strategy)
	}
}

func TestMergeUnionKeepsBothSidesInOrder(t *testing.T) {
	result := mustMerge(t, "", "foo\n", "bar\n", StrategyUnion)

	assert.Equal(t, "foo\nbar\n", string(result.Merged))
	assert.Equal(t, 1, result.ConflictRegions)
	assertNoMarkers(t, result.Merged)
}

func TestMergeUnionDoesNotDeduplicate(t *testing.T) {
	base := "start\nmiddle\nend\n"
	ours := "start\nshared\nours only\nend\n"
	theirs := "start\nshared\ntheirs only\nend\n"

	result := mustMerge(t, base, ours, theirs, StrategyUnion)

	assert.Equal(t, "start\nshared\nours only\nshared\ntheirs only\nend\n", string(result.Merged))
	assert.Equal(t, 1, result.ConflictRegions)
}

func TestMergeNoMarkersForAnyStrategy(t *testing.T) {
	base := "one\ntwo\nthree\nfour\nfive\n"
	ours := "one\nTWO\nthree\nFOUR\nfive\n"
	theirs := "one\n2\nthree\n4\nfive\n"

	for _, strategy := range Strategies() {
		result := mustMerge(t, base, ours, theirs, strategy)
		assertNoMarkers(t, result.Merged)
		assert.Equal(t, 2, result.ConflictRegions, "strategy %s", strategy)
	}
}

func TestMergeSelectedSidePrecedence(t *testing.T) {
	// Line changed only in the selected side appears as the selected
	// side's version; the other side's independent change is still merged.
	base := "alpha\nbeta\ngamma\n"
	ours := "ALPHA\nbeta\ngamma\n"   // changed alpha
	theirs := "alpha\nbeta\nGAMMA\n" // changed gamma

	for _, strategy := range Strategies() {
		result := mustMerge(t, base, ours, theirs, strategy)
		assert.Equal(t, "ALPHA\nbeta\nGAMMA\n", string(result.Merged), "strategy %s", strategy)
		assert.Equal(t, 0, result.ConflictRegions)
	}
}

func TestMergeIdenticalChangesAreClean(t *testing.T) {
	base := "v = 1\n"
	ours := "v = 2\n"
	theirs := "v = 2\n"

	result := mustMerge(t, base, ours, theirs, StrategyOurs)

	assert.Equal(t, "v = 2\n", string(result.Merged))
	assert.Equal(t, 0, result.ConflictRegions)
}

func TestMergeBothSidesUnchanged(t *testing.T) {
	content := "unchanged\ncontent\n"
	result := mustMerge(t, content, content, content, StrategyUnion)

	assert.Equal(t, content, string(result.Merged))
	assert.Equal(t, 0, result.ConflictRegions)
}

func TestMergeOneSideDeleted(t *testing.T) {
	base := "keep\nremove me\nkeep too\n"
	ours := "keep\nkeep too\n"
	theirs := base

	for _, strategy := range Strategies() {
		result := mustMerge(t, base, ours, theirs, strategy)
		assert.Equal(t, "keep\nkeep too\n", string(result.Merged), "strategy %s", strategy)
	}
}

func TestMergeDeleteVersusEditConflict(t *testing.T) {
	base := "a\nb\nc\n"
	ours := "a\nc\n"           // deleted b
	theirs := "a\nB edited\nc\n" // edited b

	result := mustMerge(t, base, ours, theirs, StrategyOurs)
	assert.Equal(t, "a\nc\n", string(result.Merged))
	assert.Equal(t, 1, result.ConflictRegions)

	result = mustMerge(t, base, ours, theirs, StrategyTheirs)
	assert.Equal(t, "a\nB edited\nc\n", string(result.Merged))

	result = mustMerge(t, base, ours, theirs, StrategyUnion)
	assert.Equal(t, "a\nB edited\nc\n", string(result.Merged))
}

func TestMergeOverlappingMultiLineConflict(t *testing.T) {
	base := "1\n2\n3\n4\n5\n"
	ours := "1\nX\nY\n4\n5\n"
	theirs := "1\n2\nZ\nW\n5\n"

	result := mustMerge(t, base, ours, theirs, StrategyUnion)

	assert.Equal(t, 1, result.ConflictRegions)
	merged := string(result.Merged)
	assertNoMarkers(t, result.Merged)
	// Ours block precedes theirs block within the resolved region.
	assert.Less(t, strings.Index(merged, "X"), strings.Index(merged, "Z"))
	assert.True(t, strings.HasPrefix(merged, "1\n"))
	assert.True(t, strings.HasSuffix(merged, "5\n"))
}

func TestMergeConflictCountIsExact(t *testing.T) {
	base := "a\n-\nb\n-\nc\n-\nd\n"
	ours := "A1\n-\nB1\n-\nc\n-\nD1\n"
	theirs := "A2\n-\nB2\n-\nc\n-\nd\n"

	result := mustMerge(t, base, ours, theirs, StrategyOurs)

	// a and b conflict, c is untouched, d changed only by ours.
	assert.Equal(t, 2, result.ConflictRegions)
	assert.Equal(t, "A1\n-\nB1\n-\nc\n-\nD1\n", string(result.Merged))
}

func TestMergeEmptyInputs(t *testing.T) {
	result := mustMerge(t, "", "", "", StrategyOurs)
	assert.Empty(t, result.Merged)
	assert.Equal(t, 0, result.ConflictRegions)
}

func TestMergeRejectsBinaryContent(t *testing.T) {
	binary := []byte{'P', 'K', 0x00, 0x01}

	_, err := Merge(binary, []byte("text\n"), []byte("text\n"), StrategyOurs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binary")

	_, err = Merge([]byte("text\n"), binary, []byte("text\n"), StrategyOurs)
	assert.Error(t, err)

	_, err = Merge([]byte("text\n"), []byte("text\n"), binary, StrategyOurs)
	assert.Error(t, err)
}

func TestMergePreservesMissingTrailingNewline(t *testing.T) {
	base := "a"
	ours := "b"
	theirs := "a"

	result := mustMerge(t, base, ours, theirs, StrategyOurs)
	assert.Equal(t, "b", string(result.Merged))
}

func TestMergeKeepsTrailingNewlineWhenPresent(t *testing.T) {
	result := mustMerge(t, "a\n", "b\n", "a\n", StrategyOurs)
	assert.Equal(t, "b\n", string(result.Merged))
}
