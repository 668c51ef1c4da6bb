package zplane

import "image"

// RingRecord is one derivative stamp: the clicked point, its image and the
// directional derivatives measured there. Records are immutable.
type RingRecord struct {
	Input   image.Point
	Output  image.Point
	Samples []DerivativeSample
}

// Summary describes the record's samples.
func (r RingRecord) Summary() Summary {
	return Summarize(r.Samples)
}

// RingStore holds stamped rings in insertion order, which is also the
// drawing order. It only grows until Clear.
//
// Every mutation bumps Generation; caches of rendered rings compare
// generations to know when to rebuild.
type RingStore struct {
	records    []RingRecord
	generation uint64
}

// Append adds a record. The samples slice is owned by the store afterwards.
func (s *RingStore) Append(r RingRecord) {
	s.records = append(s.records, r)
	s.generation++
}

// Clear removes all records.
func (s *RingStore) Clear() {
	s.records = nil
	s.generation++
}

// Len returns the number of records.
func (s *RingStore) Len() int {
	return len(s.records)
}

// Records returns the records in drawing order.
// The returned slice must not be modified.
func (s *RingStore) Records() []RingRecord {
	return s.records
}

// Last returns the most recent record.
func (s *RingStore) Last() (RingRecord, bool) {
	if len(s.records) == 0 {
		return RingRecord{}, false
	}
	return s.records[len(s.records)-1], true
}

// Generation returns a counter that changes on every mutation.
func (s *RingStore) Generation() uint64 {
	return s.generation
}
