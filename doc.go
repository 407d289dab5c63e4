// Package rds decodes Radio Data System (RDS) and Radio Broadcast Data
// System (RBDS) sideband groups, as specified by IEC 62106 and NRSC-4.
//
// A Decoder consumes 16-bit RDS blocks one at a time via Add. Blocks are
// reassembled into 104-bit groups by an internal state machine, dispatched
// to a decoder for their group type, and validated against a "receive
// twice before accepting" rule that resists bit-flip corruption on noisy
// FM channels. Decoded fields accumulate on the Decoder and are reported
// back to the caller as an UpdateMask from each Add call.
//
// The package performs no I/O of its own; it has no opinion about where
// blocks come from (tuner hardware, a capture file, a test fixture) and
// no presentation layer beyond the four lookup-string accessors required
// by the original v4l2 RDS API (PTYString, CountryString, LanguageString,
// CoverageString), which delegate to the rdsdata subpackage.
package rds
