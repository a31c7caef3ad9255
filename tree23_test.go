package tree23

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkTree(t *testing.T, m *Map[int, int]) {
	t.Helper()
	require.NoError(t, m.Check())
}

func TestEmpty(t *testing.T) {
	m := New[int, int]()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	require.Equal(t, 0, m.Height())
	require.False(t, m.Delete(1))
	_, ok := m.Find(1)
	require.False(t, ok)
	checkTree(t, m)
	require.Equal(t, "empty tree\n", m.String())
}

func TestSimple(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{2, 1, 3, 5, 4} {
		m.Insert(k, k)
		checkTree(t, m)
	}
	require.Equal(t, 5, m.Len())

	el, ok := m.Find(3)
	require.True(t, ok)
	require.Equal(t, 3, el.Value)

	require.True(t, m.Delete(3))
	checkTree(t, m)
	_, ok = m.Find(3)
	require.False(t, ok)
	require.Equal(t, 4, m.Len())

	for _, k := range []int{1, 2, 4, 5} {
		require.True(t, m.Delete(k))
		checkTree(t, m)
	}
	require.True(t, m.IsEmpty())
	require.False(t, m.Delete(1))
}

func TestDeleteAbsentLeavesTreeUnchanged(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{10, 20, 30, 40, 50} {
		m.Insert(k, k)
	}
	before := m.String()
	require.False(t, m.Delete(25))
	require.Equal(t, before, m.String())
	require.Equal(t, 5, m.Len())
	checkTree(t, m)
}

func TestOrderedInsertDelete(t *testing.T) {
	const n = 512

	m := New[int, int]()
	for i := 0; i < n; i++ {
		m.Insert(i, i)
		// Every leaf must sit at the same depth after every single
		// insert, not just at the end.
		checkTree(t, m)
	}
	require.Equal(t, n, m.Len())
	require.LessOrEqual(t, m.Height(), 10) // <= log2(n+1)
	for i := 0; i < n; i++ {
		require.True(t, m.Delete(i))
		checkTree(t, m)
	}
	require.True(t, m.IsEmpty())

	for i := n - 1; i >= 0; i-- {
		m.Insert(i, i)
		checkTree(t, m)
	}
	for i := 0; i < n; i++ {
		require.True(t, m.Delete(i))
		checkTree(t, m)
	}
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
}

func TestFindRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := New[int, int]()
	inserted := make(map[int]int)
	for len(inserted) < 1000 {
		k := rng.Intn(1 << 20)
		if _, dup := inserted[k]; dup {
			continue
		}
		inserted[k] = k * 3
		m.Insert(k, k*3)
	}
	checkTree(t, m)
	for k, v := range inserted {
		el, ok := m.Find(k)
		require.True(t, ok, "key %d", k)
		require.Equal(t, k, el.Key)
		require.Equal(t, v, el.Value)
	}
	for i := 0; i < 1000; i++ {
		k := (1 << 20) + i // never inserted
		_, ok := m.Find(k)
		require.False(t, ok)
	}

	// Deleted keys become absent, the rest stay reachable.
	deleted := make(map[int]struct{})
	for k := range inserted {
		if len(deleted) == 500 {
			break
		}
		require.True(t, m.Delete(k))
		deleted[k] = struct{}{}
	}
	checkTree(t, m)
	for k, v := range inserted {
		el, ok := m.Find(k)
		if _, gone := deleted[k]; gone {
			require.False(t, ok, "key %d", k)
		} else {
			require.True(t, ok, "key %d", k)
			require.Equal(t, v, el.Value)
		}
	}
}

func TestRandomStorm(t *testing.T) {
	const n = 10000

	rng := rand.New(rand.NewSource(0x23))
	m := New[int, int]()
	seen := make(map[int]struct{}, n)
	keys := make([]int, 0, n)
	for len(keys) < n {
		k := rng.Intn(10_000_000)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
		m.Insert(k, k)
	}
	require.Equal(t, n, m.Len())
	checkTree(t, m)

	// Delete everything in random order, drawing from a shrinking
	// candidate list.
	candidates := append([]int(nil), keys...)
	for len(candidates) > 0 {
		i := rng.Intn(len(candidates))
		k := candidates[i]
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
		require.True(t, m.Delete(k), "key %d", k)
		checkTree(t, m)
	}
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
}

func TestDuplicateKeysCoexist(t *testing.T) {
	m := New[int, int]()
	m.Insert(7, 1)
	m.Insert(7, 2)
	require.Equal(t, 2, m.Len())
	checkTree(t, m)

	_, ok := m.Find(7)
	require.True(t, ok)
	require.True(t, m.Delete(7))
	require.True(t, m.Delete(7))
	require.False(t, m.Delete(7))
	require.True(t, m.IsEmpty())
}

func TestString(t *testing.T) {
	m := New[int, int]()
	m.Insert(2, 2)
	m.Insert(1, 1)
	m.Insert(3, 3)
	require.Equal(t, "Tree(3):\n2\n| 1\n| 3\n", m.String())
}

func BenchmarkInsert(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(b.N)
	b.ResetTimer()
	m := New[int, int]()
	for _, k := range keys {
		m.Insert(k, k)
	}
}

func BenchmarkFind(b *testing.B) {
	const n = 1 << 16
	m := New[int, int]()
	for _, k := range rand.New(rand.NewSource(1)).Perm(n) {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Find(i & (n - 1))
	}
}

func BenchmarkInsertDelete(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(b.N)
	b.ResetTimer()
	m := New[int, int]()
	for _, k := range keys {
		m.Insert(k, k)
	}
	for _, k := range keys {
		m.Delete(k)
	}
}
