package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/sortbench/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random 64-bit value.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Records returns n records with random keys and empty payloads.
func (r *RNG) Records(n int) []model.Record {
	recs := make([]model.Record, n)
	for i := range recs {
		recs[i].Key = model.Key(r.Uint64())
	}
	return recs
}

// ShuffledKeys returns a random permutation of the keys 0..n-1.
func (r *RNG) ShuffledKeys(n int) []model.Key {
	keys := AscendingKeys(n)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

// DuplicateKeys returns n keys drawn from [0, distinct), so values repeat.
func (r *RNG) DuplicateKeys(n, distinct int) []model.Key {
	keys := make([]model.Key, n)
	for i := range keys {
		keys[i] = model.Key(r.Intn(distinct))
	}
	return keys
}

// AscendingKeys returns the keys 0..n-1 in order.
func AscendingKeys(n int) []model.Key {
	keys := make([]model.Key, n)
	for i := range keys {
		keys[i] = model.Key(i)
	}
	return keys
}

// DescendingKeys returns the keys n-1..0.
func DescendingKeys(n int) []model.Key {
	keys := make([]model.Key, n)
	for i := range keys {
		keys[i] = model.Key(n - 1 - i)
	}
	return keys
}

// RecordsFromKeys wraps keys into records with empty payloads.
func RecordsFromKeys(keys []model.Key) []model.Record {
	recs := make([]model.Record, len(keys))
	for i, k := range keys {
		recs[i].Key = k
	}
	return recs
}

// SmallestKeys returns the k smallest keys of recs in ascending order.
func SmallestKeys(recs []model.Record, k int) []model.Key {
	keys := model.Keys(recs)
	slices.Sort(keys)
	if len(keys) > k {
		keys = keys[:k]
	}
	return keys
}

// SameKeySet reports whether a and b have the same length and hold the same
// distinct keys, ignoring order.
func SameKeySet(a, b []model.Key) bool {
	if len(a) != len(b) {
		return false
	}
	return keyBitmap(a).Equals(keyBitmap(b))
}

// KeyOverlap returns the fraction of distinct keys in want that also occur
// in got.
func KeyOverlap(want, got []model.Key) float64 {
	if len(want) == 0 {
		return 1.0
	}
	wb := keyBitmap(want)
	hits := roaring64.And(wb, keyBitmap(got)).GetCardinality()
	return float64(hits) / float64(wb.GetCardinality())
}

func keyBitmap(keys []model.Key) *roaring64.Bitmap {
	bm := roaring64.New()
	for _, k := range keys {
		bm.Add(uint64(k))
	}
	return bm
}
