package order

import (
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortbench/model"
	"github.com/hupe1980/sortbench/testutil"
)

func randomInts(seed int64, n int) []int {
	r := testutil.NewRNG(seed)
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(1_000_000)
	}
	return out
}

func sortedCopy(s []int) []int {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

func TestSort(t *testing.T) {
	data := randomInts(1, 1000)
	want := sortedCopy(data)

	Sort(sort.IntSlice(data))

	assert.Equal(t, want, data)
}

func TestPartialSort(t *testing.T) {
	sizes := []int{0, 1, 2, 7, 100, 1000}
	ranks := []int{-1, 0, 1, 3, 10, 100, 1000, 5000}

	for _, n := range sizes {
		for _, k := range ranks {
			data := randomInts(int64(n*31+k), n)
			want := sortedCopy(data)

			PartialSort(sort.IntSlice(data), k)

			kk := min(max(k, 0), n)
			assert.Equal(t, want[:kk], data[:kk], "n=%d k=%d", n, k)
			// the whole collection is still a permutation of the input
			assert.Equal(t, want, sortedCopy(data), "n=%d k=%d", n, k)
		}
	}
}

func TestSelectSort(t *testing.T) {
	sizes := []int{0, 1, 2, 7, 100, 1000}
	ranks := []int{-1, 0, 1, 3, 10, 100, 1000, 5000}

	for _, n := range sizes {
		for _, k := range ranks {
			data := randomInts(int64(n*17+k), n)
			want := sortedCopy(data)

			require.NoError(t, SelectSort(sort.IntSlice(data), k))

			kk := min(max(k, 0), n)
			assert.Equal(t, want[:kk], data[:kk], "n=%d k=%d", n, k)
			assert.Equal(t, want, sortedCopy(data), "n=%d k=%d", n, k)
		}
	}
}

func TestPartialAndSelectAgree(t *testing.T) {
	const k = 50
	a := randomInts(99, 2000)
	b := slices.Clone(a)

	PartialSort(sort.IntSlice(a), k)
	require.NoError(t, SelectSort(sort.IntSlice(b), k))

	assert.ElementsMatch(t, a[:k], b[:k])
	assert.Equal(t, a[:k], b[:k])
}

func TestPartialSort_Duplicates(t *testing.T) {
	data := []int{5, 1, 5, 1, 5, 1, 3, 3}
	PartialSort(sort.IntSlice(data), 5)

	assert.Equal(t, []int{1, 1, 1, 3, 3}, data[:5])
}

func TestPrefix(t *testing.T) {
	data := sort.IntSlice{3, 2, 1, 0}

	assert.Equal(t, 2, Prefix(data, 2).Len())
	assert.Equal(t, 4, Prefix(data, 10).Len())
	assert.Equal(t, 0, Prefix(data, -3).Len())

	sort.Sort(Prefix(data, 2))
	assert.Equal(t, sort.IntSlice{2, 3, 1, 0}, data)

	assert.True(t, IsSortedPrefix(data, 2))
	assert.False(t, IsSortedPrefix(data, 3))
}

func TestViews(t *testing.T) {
	recs := testutil.NewRNG(5).Records(500)
	want := model.Keys(slices.Clone(recs))
	slices.Sort(want)

	t.Run("values", func(t *testing.T) {
		vals := model.Values(slices.Clone(recs))
		PartialSort(vals, 20)
		assert.Equal(t, want[:20], model.PrefixKeys(vals, 20))
	})

	t.Run("indexes", func(t *testing.T) {
		v := model.NewIndexView(recs)
		require.NoError(t, SelectSort(v, 20))
		assert.Equal(t, want[:20], model.PrefixKeys(v, 20))
	})

	t.Run("pointers", func(t *testing.T) {
		ptrs := make(model.Pointers, len(recs))
		for i := range recs {
			ptrs[i] = &recs[i]
		}
		Sort(ptrs)
		assert.Equal(t, want, model.PrefixKeys(ptrs, len(ptrs)))
	})
}

func TestKeyPatterns(t *testing.T) {
	const n, k = 1000, 100
	rng := testutil.NewRNG(7)

	patterns := map[string][]model.Key{
		"ascending":    testutil.AscendingKeys(n),
		"descending":   testutil.DescendingKeys(n),
		"shuffled":     rng.ShuffledKeys(n),
		"few_distinct": rng.DuplicateKeys(n, 4),
	}

	for name, keys := range patterns {
		t.Run(name, func(t *testing.T) {
			want := testutil.SmallestKeys(testutil.RecordsFromKeys(keys), k)

			heap := model.Values(testutil.RecordsFromKeys(keys))
			PartialSort(heap, k)
			assert.Equal(t, want, model.PrefixKeys(heap, k))

			sel := model.Values(testutil.RecordsFromKeys(keys))
			require.NoError(t, SelectSort(sel, k))
			assert.Equal(t, want, model.PrefixKeys(sel, k))
		})
	}
}
