// Package model defines the record type ordered by sortbench and the
// collection views the ordering strategies operate on.
//
// # Data Types
//
//   - Record: ordering key plus inert float and string payload
//   - Key: the unsigned integer a Record is ordered by
//
// # Collection Views
//
// Every view implements sort.Interface and compares records by Key only:
//
//	model.Values(recs)             // reorders the records themselves
//	model.NewIndexView(recs)       // reorders positions, records untouched
//	model.Pointers(ptrs)           // reorders handles to arena-allocated records
package model
