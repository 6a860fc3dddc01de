package model

import "sort"

var (
	_ sort.Interface = Values(nil)
	_ sort.Interface = Pointers(nil)
	_ sort.Interface = (*IndexView)(nil)
)

// Values orders records stored inline.
// Less compares through the slice so no record is copied.
type Values []Record

func (v Values) Len() int           { return len(v) }
func (v Values) Less(i, j int) bool { return v[i].Less(&v[j]) }
func (v Values) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }

// KeyAt returns the key at position i.
func (v Values) KeyAt(i int) Key { return v[i].Key }

// Pointers orders handles to records that live elsewhere (typically an arena).
type Pointers []*Record

func (p Pointers) Len() int           { return len(p) }
func (p Pointers) Less(i, j int) bool { return p[i].Less(p[j]) }
func (p Pointers) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// KeyAt returns the key of the record referenced at position i.
func (p Pointers) KeyAt(i int) Key { return p[i].Key }

// IndexView orders a permutation of positions into Records.
// Dereferencing position i after ordering yields the i-th smallest record;
// Records itself is never modified.
type IndexView struct {
	Index   []int
	Records []Record
}

// NewIndexView returns a view whose Index is the identity permutation over recs.
func NewIndexView(recs []Record) *IndexView {
	idx := make([]int, len(recs))
	for i := range idx {
		idx[i] = i
	}
	return &IndexView{Index: idx, Records: recs}
}

func (v *IndexView) Len() int { return len(v.Index) }

func (v *IndexView) Less(i, j int) bool {
	return v.Records[v.Index[i]].Less(&v.Records[v.Index[j]])
}

func (v *IndexView) Swap(i, j int) { v.Index[i], v.Index[j] = v.Index[j], v.Index[i] }

// KeyAt returns the key of the record referenced at position i.
func (v *IndexView) KeyAt(i int) Key { return v.Records[v.Index[i]].Key }

// KeyView is a collection that exposes the key at each position.
type KeyView interface {
	Len() int
	KeyAt(i int) Key
}

// PrefixKeys returns the keys at positions [0, n) of v, clamped to v.Len().
func PrefixKeys(v KeyView, n int) []Key {
	n = min(max(n, 0), v.Len())
	out := make([]Key, n)
	for i := range out {
		out[i] = v.KeyAt(i)
	}
	return out
}
