// Package order implements the ordering strategies compared by sortbench.
//
// Every strategy works in place on a sort.Interface, so the same code orders
// inline records, index permutations and pointer handles:
//
//   - Sort: full ascending ordering
//   - PartialSort: heap-based; the first k positions hold the k smallest
//     elements in ascending order
//   - SelectSort: quickselect partitions the k smallest elements to the front,
//     then only that prefix is sorted
//
// Elements beyond position k are left in unspecified order by both partial
// strategies, but the collection is always a permutation of its input.
package order
