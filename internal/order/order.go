package order

import (
	"sort"

	"github.com/wangjohn/quickselect"
)

// Sort orders all of data ascending.
func Sort(data sort.Interface) {
	sort.Sort(data)
}

// PartialSort rearranges data so that positions [0,k) hold the k smallest
// elements in ascending order. k is clamped to [0, data.Len()].
//
// The prefix is kept as a max-heap while the rest of data is scanned; an
// element smaller than the heap top replaces it. The heap is then sorted in
// place. Cost is O(n log k).
func PartialSort(data sort.Interface, k int) {
	n := data.Len()
	k = clamp(k, n)
	if k == 0 {
		return
	}

	buildMaxHeap(data, k)

	for i := k; i < n; i++ {
		if data.Less(i, 0) {
			data.Swap(i, 0)
			siftDown(data, 0, k)
		}
	}

	for end := k - 1; end > 0; end-- {
		data.Swap(0, end)
		siftDown(data, 0, end)
	}
}

// SelectSort rearranges data so that positions [0,k) hold the k smallest
// elements in ascending order, using selection followed by a sort of the
// prefix only. k is clamped to [0, data.Len()].
//
// Expected cost is O(n + k log k).
func SelectSort(data sort.Interface, k int) error {
	n := data.Len()
	k = clamp(k, n)
	if k == 0 {
		return nil
	}

	if k < n {
		// QuickSelect only fails when k is outside [1, n]
		if err := quickselect.QuickSelect(data, k); err != nil {
			return err
		}
	}

	sort.Sort(Prefix(data, k))
	return nil
}

// Prefix returns a view of the first k positions of data.
// k is clamped to [0, data.Len()].
func Prefix(data sort.Interface, k int) sort.Interface {
	return prefix{Interface: data, n: clamp(k, data.Len())}
}

type prefix struct {
	sort.Interface
	n int
}

func (p prefix) Len() int { return p.n }

// IsSortedPrefix reports whether the first k positions of data are ascending.
func IsSortedPrefix(data sort.Interface, k int) bool {
	return sort.IsSorted(Prefix(data, k))
}

func clamp(k, n int) int {
	return min(max(k, 0), n)
}

// buildMaxHeap turns data[0,n) into a max-heap (largest element at 0).
func buildMaxHeap(data sort.Interface, n int) {
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
}

// siftDown restores the max-heap property of data[0,n) below position i.
func siftDown(data sort.Interface, i, n int) {
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && data.Less(left, right) {
			child = right
		}
		if !data.Less(i, child) {
			return
		}
		data.Swap(i, child)
		i = child
	}
}
