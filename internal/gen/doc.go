// Package gen builds synthetic records from a pseudo-random source.
//
// The draw order for a record is fixed: key, then every float field, then
// every character of every string field. For a fixed seed the generated
// collection is therefore fully deterministic, whether records are stored
// inline (Records) or allocated from an arena (Pointers):
//
//	rng := gen.NewRNG(gen.RandomSeed())
//	recs := gen.Records(1_000_000, rng)
package gen
