package rds

// Statistics accumulates per-decoder counters across every call to Add.
// It survives Reset when preserveStatistics is true.
type Statistics struct {
	// GroupTypeCount is indexed by group id (0..15); it is incremented
	// for every successfully assembled group regardless of whether a
	// decoder is registered for that group id.
	GroupTypeCount     [16]uint32
	BlockCount          uint64
	BlockErrorCount     uint64
	BlockCorrectedCount uint64
	GroupCount          uint64
	GroupErrorCount     uint64
}
