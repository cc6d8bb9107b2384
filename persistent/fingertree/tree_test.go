package fingertree

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

func TestEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	e := Empty[int]()
	if e.Measure() != 0 {
		t.Errorf("expected Measure() of empty tree to be 0, is %d", e.Measure())
	}
	if !e.IsEmpty() {
		t.Error("expected IsEmpty() of empty tree to be true, isn't")
	}
	if _, err := e.Left(); err == nil {
		t.Error("expected Left() on empty tree to fail, didn't")
	}
}

func TestPushLeftRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	tr := Empty[int]()
	for i := 1; i <= 10; i++ {
		tr = tr.PushRight(i)
	}
	require.Equal(t, 10, tr.Measure())
	first, err := tr.Left()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	last, err := tr.Right()
	require.NoError(t, err)
	assert.Equal(t, 10, last)
	t.Log(dumpTree(tr))
}

func TestPushLeftManyTriggersOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	tr := Empty[int]()
	for i := 100; i > 0; i-- {
		tr = tr.PushLeft(i)
	}
	require.Equal(t, 100, tr.Measure())
	require.NoError(t, Check(tr))
	for i := 0; i < 100; i++ {
		v, err := tr.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i+1, v)
	}
}

func TestPopEnds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	tr := FromSlice([]int{1, 2, 3, 4, 5})
	x, rest, err := tr.PopLeft()
	require.NoError(t, err)
	assert.Equal(t, 1, x)
	assert.Equal(t, 4, rest.Measure())

	y, rest2, err := rest.PopRight()
	require.NoError(t, err)
	assert.Equal(t, 5, y)
	assert.Equal(t, 3, rest2.Measure())
	require.NoError(t, Check(rest2))
}

func TestPopRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	tr := Empty[int]()
	for i := 0; i < 500; i++ {
		tr = tr.PushRight(i)
	}
	for i := 0; i < 500; i++ {
		var x int
		var err error
		x, tr, err = tr.PopLeft()
		require.NoError(t, err)
		assert.Equal(t, i, x)
	}
	assert.True(t, tr.IsEmpty())
	if _, _, err := tr.PopLeft(); err == nil {
		t.Error("expected PopLeft on now-empty tree to fail, didn't")
	}
}

func TestGetSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	xs := make([]int, 200)
	for i := range xs {
		xs[i] = i
	}
	tr := FromSlice(xs)
	for i := 0; i < 200; i++ {
		v, err := tr.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	updated, err := tr.Set(150, 9999)
	require.NoError(t, err)
	v, err := updated.Get(150)
	require.NoError(t, err)
	assert.Equal(t, 9999, v)
	// original tree is unaffected: structural sharing must not leak writes.
	orig, err := tr.Get(150)
	require.NoError(t, err)
	assert.Equal(t, 150, orig)
	require.Equal(t, 200, updated.Measure())
	require.NoError(t, Check(updated))
}

func TestGetOutOfRange(t *testing.T) {
	tr := FromSlice([]int{1, 2, 3})
	if _, err := tr.Get(3); err == nil {
		t.Error("expected Get(3) on 3-element tree to fail, didn't")
	}
	if _, err := tr.Get(-1); err == nil {
		t.Error("expected Get(-1) to fail, didn't")
	}
}

func TestForEach(t *testing.T) {
	tr := FromSlice([]int{1, 2, 3, 4, 5})
	var got []int
	tr.ForEach(func(x int) bool {
		got = append(got, x)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	got = nil
	tr.ForEach(func(x int) bool {
		got = append(got, x)
		return x < 3
	})
	assert.Equal(t, []int{1, 2, 3}, got)

	got = nil
	tr.ForEachBack(func(x int) bool {
		got = append(got, x)
		return true
	})
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)
}

// --- Dump tree for diagnostics ----------------------------------------------

func dumpTree[T any](tr Tree[T]) string {
	header := fmt.Sprintf("\nTree(measure=%d)\n", tr.Measure())
	printer := tp.New()
	dumpNode(printer, tr.t)
	return header + printer.String() + "\n"
}

func dumpNode(printer tp.Tree, t tree) {
	switch t.kind {
	case emptyKind:
		printer.AddNode("Empty")
	case singleKind:
		printer.AddNode(fmt.Sprintf("Single(measure=%d)", t.measure))
	default:
		branch := printer.AddBranch(fmt.Sprintf("Deep(measure=%d)", t.measure))
		branch.AddNode(fmt.Sprintf("left digit (size=%d)", t.left.size()))
		dumpNode(branch, *t.spine)
		branch.AddNode(fmt.Sprintf("right digit (size=%d)", t.right.size()))
	}
}
