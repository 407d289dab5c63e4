package rds

// Staged implements the "accept on second identical reception" rule
// that IEC 62106 decoders use to resist single-block bit corruption: PI,
// PTY, ECC, LC, MJD and TMC's two "same group twice" gates all follow
// the identical shape, so it lives once here instead of seven times.
//
// The zero value is ready to use.
type Staged[T comparable] struct {
	candidate    T
	hasCandidate bool
}

// Observe compares x against the candidate recorded by the previous call
// to Observe, then stores x as the new candidate. It reports true when x
// matches that previous candidate, i.e. the same value was just observed
// twice in a row.
func (s *Staged[T]) Observe(x T) bool {
	confirmed := s.hasCandidate && s.candidate == x
	s.candidate = x
	s.hasCandidate = true
	return confirmed
}

// Invalidate clears the staged candidate without changing any accepted
// value. Used by TMC group decoding to prevent a message that was just
// accepted on its second reception from being accepted again by its
// third (the source's "sentinel mutation" of the match buffer).
func (s *Staged[T]) Invalidate() {
	var zero T
	s.candidate = zero
	s.hasCandidate = false
}
