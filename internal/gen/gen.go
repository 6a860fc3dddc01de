package gen

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/sortbench/internal/arena"
	"github.com/hupe1980/sortbench/model"
)

// Alphabet is the character set of the string payload fields.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Source is an infinite stream of pseudo-random unsigned integers.
type Source interface {
	Uint64() uint64
}

// RNG is a seeded PCG source that remembers its seed.
// It is not safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	pcg  *rand.PCG
	seed uint64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &RNG{
		rand: rand.New(pcg),
		pcg:  pcg,
		seed: seed,
	}
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	return r.rand.Uint64()
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.pcg.Seed(r.seed, r.seed^0x9e3779b97f4a7c15)
}

// RandomSeed returns a non-reproducible seed from the OS entropy source.
func RandomSeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Fill overwrites r with values drawn from src.
// Every string field gets its own allocation.
func Fill(r *model.Record, src Source) {
	r.Key = model.Key(src.Uint64())

	for i := range r.Floats {
		r.Floats[i] = float64(src.Uint64())
	}

	var buf [model.StringLen]byte
	for i := range r.Strings {
		for j := range buf {
			buf[j] = Alphabet[src.Uint64()%uint64(len(Alphabet))]
		}
		r.Strings[i] = string(buf[:])
	}
}

// Records returns n records stored inline, filled in place.
func Records(n int, src Source) []model.Record {
	recs := make([]model.Record, n)
	for i := range recs {
		Fill(&recs[i], src)
	}
	return recs
}

// Pointers allocates n records from a and returns their handles in
// generation order. On error the handles allocated so far are returned.
func Pointers(ctx context.Context, a *arena.Arena[model.Record], n int, src Source) ([]*model.Record, error) {
	ptrs := make([]*model.Record, 0, n)
	for range n {
		r, err := a.Alloc(ctx)
		if err != nil {
			return ptrs, err
		}
		Fill(r, src)
		ptrs = append(ptrs, r)
	}
	return ptrs, nil
}
