package seq

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/fingertree/maybe"
)

func TestMapPreservesCount(t *testing.T) {
	s := rangeSeq(20)
	doubled := Map(s, func(x int) int { return x * 2 })
	require.Equal(t, s.Count(), doubled.Count())
	for i, x := range doubled.ToSlice() {
		assert.Equal(t, i*2, x)
	}
}

// TestMapComposeFusesLikeSeparateMaps: MapCompose(s, f, g) must equal
// Map(Map(s, f), g) element-for-element.
func TestMapComposeFusesLikeSeparateMaps(t *testing.T) {
	s := rangeSeq(30)
	toStr := func(x int) string { return strconv.Itoa(x) }
	length := func(x string) int { return len(x) }

	fused := MapCompose(s, toStr, length)
	separate := Map(Map(s, toStr), length)
	assert.Equal(t, separate.ToSlice(), fused.ToSlice())
}

func TestFlatMapConcatenatesInOrder(t *testing.T) {
	s := Of(1, 2, 3)
	got := FlatMap(s, func(x int) Sequence[int] {
		return Of(x, x*10)
	})
	assert.Equal(t, []int{1, 10, 2, 20, 3, 30}, got.ToSlice())
}

func TestFilterKeepsRelativeOrder(t *testing.T) {
	s := rangeSeq(20)
	evens := Filter(s, func(x int) bool { return x%2 == 0 })
	for _, x := range evens.ToSlice() {
		assert.Equal(t, 0, x%2)
	}
	assert.Equal(t, 10, evens.Count())
}

func TestFoldSumsLeftToRight(t *testing.T) {
	s := Of(1, 2, 3, 4)
	sum := Fold(s, 0, func(acc, x int) int { return acc + x })
	assert.Equal(t, 10, sum)

	// order-sensitive: string concatenation reveals left-to-right traversal.
	letters := Of("a", "b", "c")
	joined := Fold(letters, "", func(acc, x string) string { return acc + x })
	assert.Equal(t, "abc", joined)
}

func TestFoldBackIsRightToLeft(t *testing.T) {
	letters := Of("a", "b", "c")
	joined := FoldBack(letters, "", func(x, acc string) string { return x + acc })
	assert.Equal(t, "abc", joined)

	reversed := FoldBack(letters, "", func(x, acc string) string { return acc + x })
	assert.Equal(t, "cba", reversed)
}

func TestAllAndAny(t *testing.T) {
	s := rangeSeq(10)
	assert.True(t, s.All(func(x int) bool { return x >= 0 }))
	assert.False(t, s.All(func(x int) bool { return x < 5 }))
	assert.True(t, s.Any(func(x int) bool { return x == 5 }))
	assert.False(t, s.Any(func(x int) bool { return x == 999 }))

	e := Empty[int]()
	assert.True(t, e.All(func(int) bool { return false }), "All is vacuously true on empty")
	assert.False(t, e.Any(func(int) bool { return true }))
}

func TestIndexOfFoundAndNotFound(t *testing.T) {
	s := Of(10, 20, 30, 40)
	found := s.IndexOf(func(x int) bool { return x == 30 })
	var idx int
	switch m := found.Match(); m {
	case m.Just(&idx):
		assert.Equal(t, 2, idx)
	case m.Nothing():
		t.Fatal("expected a match")
	}

	notFound := s.IndexOf(func(x int) bool { return x == 999 })
	assert.Equal(t, maybe.Nothing[int](), notFound)
}

func TestSequenceEqual(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	c := Of(1, 2, 4)
	d := Of(1, 2)
	assert.True(t, a.SequenceEqual(b))
	assert.False(t, a.SequenceEqual(c))
	assert.False(t, a.SequenceEqual(d))
}

func TestSequenceEqualWithCustomComparator(t *testing.T) {
	a := Of("Foo", "Bar")
	b := Of("foo", "bar")
	caseInsensitive := func(x, y string) bool { return strings.EqualFold(x, y) }
	assert.True(t, a.SequenceEqualWith(b, caseInsensitive))
	assert.False(t, a.SequenceEqual(b), "default comparator must stay case-sensitive")
}
