package rds

// BlockLabel identifies the semantic position of a received block within
// an RDS group. It mirrors the V4L2_RDS_BLOCK field values used by Linux's
// v4l2 RDS tuner API: 0..3 for A..D, 4 for C' (block C of a version-B
// group, handled identically to C by the assembler).
type BlockLabel uint8

const (
	BlockA BlockLabel = 0
	BlockB BlockLabel = 1
	BlockC BlockLabel = 2
	BlockD BlockLabel = 3
	BlockCPrime BlockLabel = 4
)

func (l BlockLabel) String() string {
	switch l {
	case BlockA:
		return "A"
	case BlockB:
		return "B"
	case BlockC:
		return "C"
	case BlockD:
		return "D"
	case BlockCPrime:
		return "C'"
	default:
		return "?"
	}
}

// RawBlock is one 16-bit RDS block as received from the demodulator,
// annotated with the block's label and the error-correction outcome that
// the demodulator applied to it.
type RawBlock struct {
	// Data is the 16-bit payload of the block.
	Data uint16
	// Label identifies this block's position (A, B, C, C', D).
	Label BlockLabel
	// Corrected reports that the demodulator applied forward error
	// correction to recover this block; it is still usable.
	Corrected bool
	// Uncorrectable reports that the demodulator could not recover this
	// block. An uncorrectable block is discarded and its label is
	// treated as invalid for the purposes of the assembler state
	// machine.
	Uncorrectable bool
}

func (b RawBlock) msb() uint8 { return uint8(b.Data >> 8) }
func (b RawBlock) lsb() uint8 { return uint8(b.Data) }
