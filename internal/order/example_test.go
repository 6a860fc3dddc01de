package order_test

import (
	"fmt"

	"github.com/hupe1980/sortbench/internal/order"
)

// byValue orders positions into values without moving the values.
type byValue struct {
	idx    []int
	values []int
}

func (b byValue) Len() int           { return len(b.idx) }
func (b byValue) Less(i, j int) bool { return b.values[b.idx[i]] < b.values[b.idx[j]] }
func (b byValue) Swap(i, j int)      { b.idx[i], b.idx[j] = b.idx[j], b.idx[i] }

func ExamplePartialSort() {
	values := []int{1000, 2, 10, 9, 4, 3, 20, 40, 0, 5, 100}
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}

	order.PartialSort(byValue{idx: idx, values: values}, len(idx)/2)

	for _, i := range idx[:len(idx)/2] {
		fmt.Println(i, "=>", values[i])
	}
	// Output:
	// 8 => 0
	// 1 => 2
	// 5 => 3
	// 4 => 4
	// 9 => 5
}
