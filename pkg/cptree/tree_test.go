package cptree

import (
	"sync"
	"testing"

	"CP-Tree/pkg/system/sysPrint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants 校验：边标签非空、兄弟边首字符唯一、除根外每个节点恰有一条入边
func checkInvariants(t *testing.T, tree *Tree) {
	t.Helper()
	incoming := make([]int, len(tree.nodes))
	for i, n := range tree.nodes {
		seen := make(map[byte]struct{})
		for _, e := range n.children {
			require.Greater(t, e.length(), 0, "empty edge under node %d", i)
			require.LessOrEqual(t, e.right, tree.stash.len())
			first := tree.stash.charAt(e.span, 0)
			_, dup := seen[first]
			require.False(t, dup, "node %d has two edges starting with %q", i, first)
			seen[first] = struct{}{}
			incoming[e.destination]++
		}
	}
	require.Equal(t, 0, incoming[rootIndex])
	for i := 1; i < len(incoming); i++ {
		require.Equal(t, 1, incoming[i], "node %d", i)
	}
}

func existsAll(tree *Tree, queries []string) []bool {
	res := make([]bool, len(queries))
	for i, q := range queries {
		res[i] = tree.Exists(q)
	}
	return res
}

func TestNewEmptyDictionary(t *testing.T) {
	tree := New(nil)

	assert.Equal(t, 1, tree.NodeCount())
	assert.Equal(t, 0, tree.EdgeCount())
	assert.Equal(t, 0, tree.StashLen())
	assert.Equal(t, Terminal, tree.Mode())

	assert.True(t, tree.Exists(""))
	assert.False(t, tree.Exists("a"))
	assert.False(t, tree.Exists("anything"))
}

func TestExistsScenarioCatCar(t *testing.T) {
	tree := New([]string{"cat", "car", "care", "dog"})
	checkInvariants(t, tree)

	queries := []string{"cat", "ca", "car", "care", "careful", "dog", "do", "d"}
	expect := []bool{true, false, true, true, false, true, false, false}
	assert.Equal(t, expect, existsAll(tree, queries))
}

func TestExistsEdgeSplit(t *testing.T) {
	tree := New([]string{"abc", "abd"})
	checkInvariants(t, tree)

	assert.False(t, tree.Exists("ab"))
	assert.True(t, tree.Exists("abc"))
	assert.True(t, tree.Exists("abd"))
	assert.False(t, tree.Exists("a"))
	assert.False(t, tree.Exists("abx"))
	assert.False(t, tree.Exists("abcd"))
}

func TestStructuralModeCountsBranchNodes(t *testing.T) {
	tree := New([]string{"abc", "abd"}, WithMatchMode(Structural))

	assert.Equal(t, Structural, tree.Mode())
	assert.True(t, tree.Exists("ab"))
	assert.True(t, tree.Exists("abc"))
	assert.False(t, tree.Exists("a"))
	assert.True(t, tree.Exists(""))

	tree = New([]string{"cat", "car", "care", "dog"}, WithMatchMode(Structural))
	queries := []string{"cat", "ca", "car", "care", "careful", "dog", "do", "d"}
	expect := []bool{true, true, true, true, false, true, false, false}
	assert.Equal(t, expect, existsAll(tree, queries))
}

func TestRecordEndingMidEdge(t *testing.T) {
	dict := []string{"care", "car"}

	tree := New(dict)
	checkInvariants(t, tree)
	assert.True(t, tree.Exists("care"))
	assert.False(t, tree.Exists("car"))
	assert.Equal(t, 2, tree.NodeCount())

	tree = New(dict, WithSplitOnRecordEnd())
	checkInvariants(t, tree)
	assert.True(t, tree.Exists("care"))
	assert.True(t, tree.Exists("car"))
	assert.False(t, tree.Exists("ca"))
	assert.Equal(t, 3, tree.NodeCount())
}

func TestInsertIdempotent(t *testing.T) {
	dict := []string{"team", "tea", "ten", "to", "inn"}
	queries := []string{"", "t", "te", "tea", "team", "teams", "ten", "to", "i", "in", "inn", "x"}

	once := New(dict)
	twice := New(append(append([]string{}, dict...), dict...))
	checkInvariants(t, twice)

	assert.Equal(t, existsAll(once, queries), existsAll(twice, queries))
	assert.Equal(t, once.NodeCount(), twice.NodeCount())
	assert.Equal(t, once.StashLen(), twice.StashLen())
}

func TestParseMatchMode(t *testing.T) {
	mode, err := ParseMatchMode("terminal")
	require.NoError(t, err)
	assert.Equal(t, Terminal, mode)

	mode, err = ParseMatchMode("structural")
	require.NoError(t, err)
	assert.Equal(t, Structural, mode)

	_, err = ParseMatchMode("prefix")
	require.ErrorIs(t, err, sysPrint.ErrUnknownMatchMode)
}

func TestExistsConcurrentReaders(t *testing.T) {
	dict := []string{"cat", "car", "care", "dog"}
	queries := []string{"cat", "ca", "car", "care", "careful", "dog", "do", "d"}
	tree := New(dict)
	expect := existsAll(tree, queries)

	const readers = 8
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for k := 0; k < 1000; k++ {
				for i, q := range queries {
					if tree.Exists(q) != expect[i] {
						t.Errorf("query %q: expect %v", q, expect[i])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
